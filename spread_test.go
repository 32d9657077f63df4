// Copyright ©2026 The zoc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package zoc

import (
	"testing"

	"golang.org/x/exp/rand"
)

// TestSpreadBitLayout checks the bit-layout invariant from spec.md section
// 4.1 directly: bit i of x must land at bit i*dims of spread(x, w, dims).
func TestSpreadBitLayout(t *testing.T) {
	for _, dims := range []int{2, 3, 4, 5, 7, 16} {
		w := 8
		for i := 0; i < w; i++ {
			got := spread(uint128From(1<<i), w, dims)
			want := uint128{}.withBit(i*dims, true)
			if !got.equal(want) {
				t.Errorf("spread(1<<%d, %d, %d) = %v, want %v", i, w, dims, got, want)
			}
		}
	}
}

// TestSpreadGatherRoundTrip is spec.md section 8 property 1: for every
// supported (width, dims) pair, deinterlace(interlace(p)) == p.
func TestSpreadGatherRoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	widths := []int{8, 16, 32, 64}
	for _, w := range widths {
		min, max, ok := Dims(w)
		if !ok {
			t.Fatalf("Dims(%d) reported unsupported", w)
		}
		for dims := min; dims <= max; dims++ {
			for trial := 0; trial < 200; trial++ {
				switch w {
				case 8:
					roundTrip[uint8](t, r, dims)
				case 16:
					roundTrip[uint16](t, r, dims)
				case 32:
					roundTrip[uint32](t, r, dims)
				case 64:
					roundTrip[uint64](t, r, dims)
				}
			}
		}
	}
}

func roundTrip[T Coord](t *testing.T, r *rand.Rand, dims int) {
	t.Helper()
	parts := make([]T, dims)
	for d := range parts {
		parts[d] = T(r.Uint64())
	}
	z := interlace(parts)
	got := deinterlace[T](z, dims)
	for d := range parts {
		if got[d] != parts[d] {
			t.Fatalf("deinterlace(interlace(%v))[%d] = %v, want %v", parts, d, got[d], parts[d])
		}
	}
}

// TestFastMatchesSlow is spec.md section 8 property 3: the divide-and-conquer
// spread/gather codec must agree with the bit-by-bit reference
// implementation on every input.
func TestFastMatchesSlow(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	for trial := 0; trial < 500; trial++ {
		dims := 2 + int(r.Uint32()%6)
		parts := make([]uint16, dims)
		for d := range parts {
			parts[d] = uint16(r.Uint64())
		}
		fast := interlace(parts)
		slow := interlaceSlow(parts)
		if !fast.equal(slow) {
			t.Fatalf("interlace(%v) = %v, interlaceSlow = %v", parts, fast, slow)
		}
		gotFast := deinterlace[uint16](fast, dims)
		gotSlow := deinterlaceSlow[uint16](slow, dims)
		for d := range parts {
			if gotFast[d] != gotSlow[d] {
				t.Fatalf("deinterlace/deinterlaceSlow disagree at dim %d: %v vs %v", d, gotFast[d], gotSlow[d])
			}
		}
	}
}

func TestSpreadZero(t *testing.T) {
	for _, dims := range []int{2, 3, 4} {
		got := spread(uint128{}, 8, dims)
		if !got.isZero() {
			t.Errorf("spread(0, 8, %d) = %v, want 0", dims, got)
		}
	}
}

// Copyright ©2026 The zoc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package search

import (
	"sort"
	"testing"

	"github.com/twittner/zoc"
	"golang.org/x/exp/rand"
)

// point pairs a payload value with its Z-code, satisfying zoc.Zer[uint8].
// This is the shape spec.md section 9's "has a Z-code" capability exists
// for: callers store whatever payload they like alongside the code.
type point struct {
	value int
	z     zoc.Z[uint8]
}

func (p point) Z() zoc.Z[uint8] { return p.z }

func newGrid(xMax, yMax int) []point {
	var pts []point
	n := 0
	for x := 0; x < xMax; x++ {
		for y := 0; y < yMax; y++ {
			pts = append(pts, point{value: n, z: zoc.New2[uint8](uint8(y), uint8(x))})
			n++
		}
	}
	sort.Slice(pts, func(i, j int) bool { return pts[i].z.Less(pts[j].z) })
	return pts
}

func bruteForce(pts []point, low, high zoc.Z[uint8]) []int {
	box := zoc.NewBbox(low, high)
	var out []int
	for _, p := range pts {
		if box.Contains(p.z) {
			out = append(out, p.value)
		}
	}
	sort.Ints(out)
	return out
}

func collect(r *Range[uint8, point]) []int {
	var out []int
	for {
		p, ok := r.Next()
		if !ok {
			break
		}
		out = append(out, p.value)
	}
	sort.Ints(out)
	return out
}

// TestRangeDenseGrid is spec.md section 8's dense-grid scenario, grounded on
// original_source/src/search.rs's "area" test: a 9x17 grid of 2D points,
// queried against a small sub-rectangle. The expected set is computed by a
// brute-force scan rather than transcribed as a literal constant list, which
// exercises the same scenario without depending on reproducing another
// language's exact intermediate Z-code values.
func TestRangeDenseGrid(t *testing.T) {
	pts := newGrid(9, 17)
	low := zoc.New2[uint8](3, 5)
	high := zoc.New2[uint8](5, 10)

	want := bruteForce(pts, low, high)
	r := New(pts, low, high)
	got := collect(r)

	if len(got) != len(want) {
		t.Fatalf("Range returned %d points, brute force found %d: got %v want %v", len(got), len(want), got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Range result mismatch at %d: got %v want %v", i, got, want)
		}
	}
}

func TestRangeEmptyQuery(t *testing.T) {
	pts := newGrid(9, 17)
	// A box entirely above the grid's coordinate range.
	low := zoc.New2[uint8](200, 200)
	high := zoc.New2[uint8](210, 210)
	r := New(pts, low, high)
	if _, ok := r.Next(); ok {
		t.Error("expected no results for a query box outside the grid")
	}
}

func TestRangeWholeSpace(t *testing.T) {
	pts := newGrid(9, 17)
	low := zoc.New2[uint8](0, 0)
	high := zoc.New2[uint8](255, 255)
	r := New(pts, low, high)
	got := collect(r)
	if len(got) != len(pts) {
		t.Fatalf("whole-space query returned %d of %d points", len(got), len(pts))
	}
}

func TestRangeDegenerateBox(t *testing.T) {
	pts := newGrid(9, 17)
	target := pts[len(pts)/2]
	tx, ty := target.z.Deinterlace()[1], target.z.Deinterlace()[0]
	z := zoc.New2[uint8](ty, tx)
	r := New(pts, z, z)
	got := collect(r)
	if len(got) != 1 || got[0] != target.value {
		t.Fatalf("degenerate box query = %v, want exactly [%d]", got, target.value)
	}
}

// TestThresholdInvariance is spec.md section 8 property 8: for any
// threshold >= 0, the sequence of results (as a set) must be identical.
func TestThresholdInvariance(t *testing.T) {
	pts := newGrid(9, 17)
	low := zoc.New2[uint8](1, 2)
	high := zoc.New2[uint8](7, 12)

	base := New(pts, low, high)
	base.SetThreshold(0)
	want := collect(base)

	for _, threshold := range []int{0, 1, 2, 5, 10, 50, 1000} {
		r := New(pts, low, high)
		r.SetThreshold(threshold)
		got := collect(r)
		if len(got) != len(want) {
			t.Fatalf("threshold %d: got %d results, want %d", threshold, len(got), len(want))
		}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("threshold %d: result mismatch at %d: got %v want %v", threshold, i, got, want)
			}
		}
	}
}

func TestRangeAllIterator(t *testing.T) {
	pts := newGrid(9, 17)
	low := zoc.New2[uint8](3, 5)
	high := zoc.New2[uint8](5, 10)

	want := bruteForce(pts, low, high)
	var got []int
	for p := range New(pts, low, high).All() {
		got = append(got, p.value)
	}
	sort.Ints(got)
	if len(got) != len(want) {
		t.Fatalf("All() returned %d points, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("All() result mismatch at %d: got %v want %v", i, got, want)
		}
	}
}

func TestRangeRandomizedAgainstBruteForce(t *testing.T) {
	r := rand.New(rand.NewSource(5))
	pts := newGrid(9, 17)
	for trial := 0; trial < 50; trial++ {
		a := zoc.New2[uint8](uint8(r.Uint32()%20), uint8(r.Uint32()%12))
		b := zoc.New2[uint8](uint8(r.Uint32()%20), uint8(r.Uint32()%12))
		want := bruteForce(pts, a, b)
		got := collect(New(pts, a, b))
		if len(got) != len(want) {
			t.Fatalf("trial %d: got %d results, want %d (a=%v b=%v)", trial, len(got), len(want), a, b)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("trial %d: mismatch at %d: got %v want %v", trial, i, got, want)
			}
		}
	}
}

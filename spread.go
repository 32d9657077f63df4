// Copyright ©2026 The zoc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package zoc

// spread and gather implement the interleave codec described in spec.md
// section 4.1: spread takes a w-bit value and produces a code in which bit i
// of the input lands at bit i*dims of the result (all other bits zero);
// gather is its inverse. Both are generated directly from that bit-layout
// invariant by divide and conquer rather than hand-tabulated per (w, dims)
// pair, per spec.md section 9's "generate, do not hand-tabulate" guidance:
// at each level the w-bit value is split into two w/2-bit halves (w is
// always a power of two -- 8, 16, 32, or 64), each half is spread
// independently, and the high half's result is shifted left by (w/2)*dims
// to land just past the low half's occupied range. Unrolling the recursion
// for any fixed w reproduces the classic "magic constant" shift/mask stage
// sequence; expressing it recursively avoids hand-deriving ~30 constant
// tables for every supported (width, dims) pair.
func spread(x uint128, w, dims int) uint128 {
	if w <= 1 {
		return x
	}
	half := w / 2
	shift := half * dims
	lo := x.and(maskLow(half))
	hi := x.shr(half)
	return spread(lo, half, dims).or(spread(hi, half, dims).shl(shift))
}

// gather inverts spread: given a code in which the meaningful bits occupy
// every dims-th position (bit i*dims, for i in [0, w)), it reassembles them
// into a contiguous w-bit value. Any other bits present in y -- such as a
// neighboring dimension's interleaved bits, after aligning that dimension to
// bit 0 -- fall on positions that are never multiples of dims relative to
// this recursion's splits and are discarded by the masking at each level.
func gather(y uint128, w, dims int) uint128 {
	if w <= 1 {
		return y.and(maskLow(1))
	}
	half := w / 2
	shift := half * dims
	lo := gather(y.and(maskLow(shift)), half, dims)
	hi := gather(y.shr(shift), half, dims)
	return lo.or(hi.shl(half))
}

// interlace spreads each of parts[d]'s w bits so that bit i of parts[d]
// lands at bit i*dims+d of the result, then ORs the spread values together,
// per spec.md section 4.1.
func interlace[T Coord](parts []T) uint128 {
	dims := len(parts)
	w := bitsOf[T]()
	var z uint128
	for d, p := range parts {
		z = z.or(spread(uint128From(uint64(p)), w, dims).shl(d))
	}
	return z
}

// deinterlace recovers the per-dimension coordinates of a code produced by
// interlace.
func deinterlace[T Coord](z uint128, dims int) []T {
	w := bitsOf[T]()
	parts := make([]T, dims)
	for d := range parts {
		parts[d] = T(gather(z.shr(d), w, dims).lo64())
	}
	return parts
}

// interlaceSlow is the loop-over-every-bit reference implementation from
// spec.md section 4.1 ("a slow but correct fallback implementation... must
// exist for testing"). It is intentionally written without any of the
// divide-and-conquer structure above so that the two can be compared
// bit-for-bit in tests (spec.md section 8, property 3).
func interlaceSlow[T Coord](parts []T) uint128 {
	dims := len(parts)
	w := bitsOf[T]()
	var z uint128
	for i := 0; i < w; i++ {
		for d, p := range parts {
			b := uint64(p)&(1<<i) != 0
			z = z.withBit(i*dims+d, b)
		}
	}
	return z
}

// deinterlaceSlow is the bit-by-bit reference inverse of interlaceSlow.
func deinterlaceSlow[T Coord](z uint128, dims int) []T {
	w := bitsOf[T]()
	parts := make([]T, dims)
	for i := 0; i < w; i++ {
		for d := range parts {
			if z.bit(i*dims + d) {
				parts[d] |= T(1) << i
			}
		}
	}
	return parts
}

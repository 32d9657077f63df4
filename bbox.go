// Copyright ©2026 The zoc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package zoc

import "fmt"

// Bbox is a closed, axis-aligned bounding box in Z-order coordinate space.
// Its shape -- two corners, normalized on construction, immutable
// afterwards, with a Contains predicate -- mirrors gonum's spatial/r2.Box
// and spatial/r3.Box; Litmax and Bigmin are the Tropf/Herzog additions that
// a plain geometric box doesn't need.
type Bbox[T Coord] struct {
	min, max           Z[T]
	minParts, maxParts []T
}

// NewBbox normalizes the two corners a and b into a well-formed Bbox: for
// each dimension independently, the smaller of the two corners' coordinates
// becomes the box's minimum and the larger becomes its maximum. a and b need
// not be in Z-code order and need not already be a well-formed box corner
// pair -- this is exactly what normalization is for.
//
// NewBbox panics if a and b have different dimension counts; constructing
// such a pair requires misusing New directly; it cannot happen if both
// codes came from the same call site or from search.Range's own bookkeeping.
func NewBbox[T Coord](a, b Z[T]) Bbox[T] {
	if a.dims != b.dims {
		panic(fmt.Sprintf("zoc: mismatched dimensions %d and %d", a.dims, b.dims))
	}
	dims := a.dims
	ap, bp := a.Deinterlace(), b.Deinterlace()
	minParts := make([]T, dims)
	maxParts := make([]T, dims)
	for d := 0; d < dims; d++ {
		if ap[d] <= bp[d] {
			minParts[d], maxParts[d] = ap[d], bp[d]
		} else {
			minParts[d], maxParts[d] = bp[d], ap[d]
		}
	}
	minZ, _ := New(minParts...)
	maxZ, _ := New(maxParts...)
	return Bbox[T]{min: minZ, max: maxZ, minParts: minParts, maxParts: maxParts}
}

// Min returns the box's low-corner Z-code.
func (b Bbox[T]) Min() Z[T] { return b.min }

// Max returns the box's high-corner Z-code.
func (b Bbox[T]) Max() Z[T] { return b.max }

// MinParts returns the box's per-dimension minimum coordinates.
func (b Bbox[T]) MinParts() []T { return append([]T(nil), b.minParts...) }

// MaxParts returns the box's per-dimension maximum coordinates.
func (b Bbox[T]) MaxParts() []T { return append([]T(nil), b.maxParts...) }

// Contains reports whether z's coordinates fall within the box on every
// dimension. This is strictly stronger than Min() <= z && z <= Max() as
// Z-codes: between Min and Max lie codes whose projected coordinates fall
// outside the box. Litmax and Bigmin exist to skip those.
func (b Bbox[T]) Contains(z Z[T]) bool {
	parts := z.Deinterlace()
	for d, p := range parts {
		if p < b.minParts[d] || p > b.maxParts[d] {
			return false
		}
	}
	return true
}

func (b Bbox[T]) totalBits() int {
	return bitsOf[T]() * b.min.dims
}

// Litmax computes the LITMAX code of z relative to b, per spec.md section
// 4.3: if z lies strictly between b.Min and b.Max (as codes) and falls
// outside b by the coordinate test, Litmax returns the greatest in-box code
// strictly less than z. Otherwise it returns a code within [b.Min, b.Max].
func (b Bbox[T]) Litmax(z Z[T]) Z[T] {
	dims := b.min.dims
	min, max := b.min.code, b.max.code
	litmax := max
	for i := b.totalBits() - 1; i >= 0; i-- {
		zb, minb, maxb := z.code.bit(i), min.bit(i), max.bit(i)
		switch {
		case !zb && !minb && !maxb:
			// (0,0,0): continue.
		case !zb && !minb && maxb:
			max = max.withBit(i, false)
			max = setLowerDimBits(max, i, dims)
		case !zb && minb && !maxb:
			panic("zoc: invariant violated: min <= max")
		case !zb && minb && maxb:
			goto done
		case zb && !minb && !maxb:
			litmax = max
			goto done
		case zb && !minb && maxb:
			litmax = max.withBit(i, false)
			litmax = setLowerDimBits(litmax, i, dims)
			min = min.withBit(i, true)
			min = clearLowerDimBits(min, i, dims)
		case zb && minb && !maxb:
			panic("zoc: invariant violated: min <= max")
		case zb && minb && maxb:
			// (1,1,1): continue.
		}
	}
done:
	return Z[T]{dims: dims, code: litmax}
}

// Bigmin computes the BIGMIN code of z relative to b, per spec.md section
// 4.3: if z lies between b.Min and b.Max (as codes, Min inclusive, Max
// exclusive) and falls outside b by the coordinate test, Bigmin returns the
// smallest in-box code strictly greater than z. Otherwise it returns a code
// within [b.Min, b.Max].
func (b Bbox[T]) Bigmin(z Z[T]) Z[T] {
	dims := b.min.dims
	min, max := b.min.code, b.max.code
	bigmin := min
	for i := b.totalBits() - 1; i >= 0; i-- {
		zb, minb, maxb := z.code.bit(i), min.bit(i), max.bit(i)
		switch {
		case !zb && !minb && !maxb:
			// (0,0,0): continue.
		case !zb && !minb && maxb:
			bigmin = min.withBit(i, true)
			bigmin = clearLowerDimBits(bigmin, i, dims)
			max = max.withBit(i, false)
			max = setLowerDimBits(max, i, dims)
		case !zb && minb && !maxb:
			panic("zoc: invariant violated: min <= max")
		case !zb && minb && maxb:
			bigmin = min
			goto done
		case zb && !minb && !maxb:
			goto done
		case zb && !minb && maxb:
			min = min.withBit(i, true)
			min = clearLowerDimBits(min, i, dims)
		case zb && minb && !maxb:
			panic("zoc: invariant violated: min <= max")
		case zb && minb && maxb:
			// (1,1,1): continue.
		}
	}
done:
	return Z[T]{dims: dims, code: bigmin}
}

// setLowerDimBits sets every bit belonging to dimension i%dims at an order
// lower than i -- i.e. bits {d, d+dims, d+2*dims, ..., i-dims} where
// d = i%dims. clearLowerDimBits is its complement. Both are runtime loops
// over at most bitsOf[T]() positions, mirroring the equivalent
// ".skip(i % D).step_by(D)" loop in original_source/src/z.rs's litmax and
// bigmin.
func setLowerDimBits(x uint128, i, dims int) uint128 {
	d := i % dims
	for j := d; j < i; j += dims {
		x = x.withBit(j, true)
	}
	return x
}

func clearLowerDimBits(x uint128, i, dims int) uint128 {
	d := i % dims
	for j := d; j < i; j += dims {
		x = x.withBit(j, false)
	}
	return x
}

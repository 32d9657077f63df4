// Copyright ©2026 The zoc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package search implements the range query over a Z-sorted slice described
// in spec.md section 4.4: a LIFO stack of (sub-slice, frame-min, frame-max)
// frames that descends a pre-sorted slice the way a binary search does,
// using Bbox.Litmax and Bbox.Bigmin to skip runs of elements that cannot
// possibly lie in the query box instead of visiting them one at a time.
// This mirrors original_source/src/search.rs's Zrange/Frame, with one
// correction: original_source/src/search.rs returns a contained median
// immediately, ahead of the lower half's still-unprocessed (and
// Z-smaller) elements -- its own "area" test masks this by sorting the
// collected results before comparing. spec.md section 4.4's ordering
// guarantee ("successive next() results are strictly increasing in
// Z-code") and section 8 property 7 require genuine ascending order, so
// a contained median here is held back as a pushed "emit" frame sitting
// between its lower and upper sub-ranges on the stack, and is only
// returned once every smaller, still-pending frame has been popped.
package search

import (
	"iter"

	"github.com/twittner/zoc"
)

// DefaultThreshold is the sub-slice length at or below which Range skips the
// LITMAX/BIGMIN computation in favor of a conservative bound, per spec.md
// section 4.4's threshold optimization.
const DefaultThreshold = 10

// Range is a resumable, stack-based iterator over the elements of a
// Z-sorted slice whose Z-codes fall within a query box. zs must already be
// sorted in Z-order (ascending, by Z.Less); Range never sorts or copies it.
//
// Range's zero value is not usable; construct one with New.
type Range[T zoc.Coord, A zoc.Zer[T]] struct {
	stack     []frame[T, A]
	bbox      zoc.Bbox[T]
	threshold int
}

// frame is either a sub-slice still to be descended (zs non-nil) or a
// deferred emission of a single already-resolved contained element
// (emit non-nil, zs nil) -- see the package doc comment.
type frame[T zoc.Coord, A zoc.Zer[T]] struct {
	zs       []A
	min, max zoc.Z[T]
	emit     *A
}

// New builds a Range over zs restricted to the closed box spanning low and
// high (in any corner order; see zoc.NewBbox for normalization). zs must be
// sorted ascending by Z-order.
func New[T zoc.Coord, A zoc.Zer[T]](zs []A, low, high zoc.Z[T]) *Range[T, A] {
	bbox := zoc.NewBbox(low, high)
	return &Range[T, A]{
		stack:     []frame[T, A]{{zs: zs, min: bbox.Min(), max: bbox.Max()}},
		bbox:      bbox,
		threshold: DefaultThreshold,
	}
}

// SetThreshold overrides the sub-slice length at or below which Range forgoes
// LITMAX/BIGMIN in favor of a conservative bound. It only affects how many
// elements Range visits internally while skipping gaps, never which
// elements it yields; see spec.md section 8's threshold-invariance property.
func (r *Range[T, A]) SetThreshold(n int) {
	if n < 0 {
		n = 0
	}
	r.threshold = n
}

// Next advances the iterator and reports its next matching element, or
// reports ok == false once the box has been fully walked.
func (r *Range[T, A]) Next() (a A, ok bool) {
	for len(r.stack) > 0 {
		f := r.stack[len(r.stack)-1]
		r.stack = r.stack[:len(r.stack)-1]

		if f.emit != nil {
			return *f.emit, true
		}
		if len(f.zs) == 0 {
			continue
		}
		mid := len(f.zs) / 2
		lower, m, upper := f.zs[:mid], f.zs[mid], f.zs[mid+1:]
		midz := m.Z()

		switch {
		case midz.Less(f.min):
			if len(upper) > 0 {
				r.push(upper, f.min, f.max)
			}
		case f.max.Less(midz):
			if len(lower) > 0 {
				r.push(lower, f.min, f.max)
			}
		case r.bbox.Contains(midz):
			if len(upper) > 0 {
				r.push(upper, midz, f.max)
			}
			r.pushEmit(m)
			if len(lower) > 0 {
				r.push(lower, f.min, midz)
			}
		default:
			if len(upper) > 0 {
				r.push(upper, r.bound(len(upper), midz, true), f.max)
			}
			if len(lower) > 0 {
				r.push(lower, f.min, r.bound(len(lower), midz, false))
			}
		}
	}
	var zero A
	return zero, false
}

// bound computes the frame bound to use on one side of a gap: the exact
// Bigmin/Litmax, or -- when the remaining sub-slice is at or below the
// configured threshold -- the probe itself, which is conservative (it never
// excludes an in-box element) and cheaper than the bit-level computation for
// very small spans. upperSide selects Bigmin (true) or Litmax (false).
func (r *Range[T, A]) bound(n int, midz zoc.Z[T], upperSide bool) zoc.Z[T] {
	if n <= r.threshold {
		return midz
	}
	if upperSide {
		return r.bbox.Bigmin(midz)
	}
	return r.bbox.Litmax(midz)
}

func (r *Range[T, A]) push(zs []A, min, max zoc.Z[T]) {
	r.stack = append(r.stack, frame[T, A]{zs: zs, min: min, max: max})
}

func (r *Range[T, A]) pushEmit(a A) {
	r.stack = append(r.stack, frame[T, A]{emit: &a})
}

// All returns a range-over-func iterator equivalent to repeatedly calling
// Next, for use with Go's range statement.
func (r *Range[T, A]) All() iter.Seq[A] {
	return func(yield func(A) bool) {
		for {
			a, ok := r.Next()
			if !ok {
				return
			}
			if !yield(a) {
				return
			}
		}
	}
}

// Copyright ©2026 The zoc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package zoc

import "fmt"

// Z is a Z-order code over dims coordinates of type T. Its zero value is not
// meaningful on its own -- construct a Z with New or New2.
//
// Go has no const generics, so unlike the Rust Z<const D: usize, T> this
// library is ported from, dims is a runtime field rather than a type
// parameter; New validates it against the table in Dims at construction
// time, which is this library's equivalent of spec.md section 7's
// "rejected at type-check time" (see DESIGN.md, "D as a runtime field").
type Z[T Coord] struct {
	dims int
	code uint128
}

// New interlaces parts into a Z-code. It reports ErrDimension if
// len(parts) and T's bit width are not one of the supported combinations in
// Dims.
func New[T Coord](parts ...T) (Z[T], error) {
	dims := len(parts)
	if err := validateDims(bitsOf[T](), dims); err != nil {
		return Z[T]{}, err
	}
	return Z[T]{dims: dims, code: interlace(parts)}, nil
}

// New2 interlaces two coordinates into a Z-code. Two dimensions are always
// supported for every coordinate width, so unlike New this constructor
// cannot fail.
func New2[T Coord](a, b T) Z[T] {
	z, err := New(a, b)
	if err != nil {
		// Unreachable: Dims always permits 2 dimensions for every
		// supported coordinate width.
		panic(err)
	}
	return z
}

// Dims returns the number of dimensions this code was built with.
func (z Z[T]) Dims() int { return z.dims }

// Deinterlace recovers the coordinates that produced z.
func (z Z[T]) Deinterlace() []T {
	return deinterlace[T](z.code, z.dims)
}

// Less reports whether z sorts before o in Z-order. Z-codes of differing
// dimension count are not comparable and Less panics in that case, since
// comparing them would silently compare unrelated coordinate spaces.
func (z Z[T]) Less(o Z[T]) bool {
	z.checkComparable(o)
	return z.code.less(o.code)
}

// Compare returns -1, 0, or 1 as z sorts before, equal to, or after o in
// Z-order.
func (z Z[T]) Compare(o Z[T]) int {
	z.checkComparable(o)
	return z.code.cmp(o.code)
}

// Equal reports whether z and o are the same code.
func (z Z[T]) Equal(o Z[T]) bool {
	return z.dims == o.dims && z.code.equal(o.code)
}

func (z Z[T]) checkComparable(o Z[T]) {
	if z.dims != o.dims {
		panic(fmt.Sprintf("zoc: cannot compare Z codes of dimension %d and %d", z.dims, o.dims))
	}
}

// String renders the underlying interleaved integer in base 10.
func (z Z[T]) String() string { return z.code.String() }

// Z implements Zer[T], so a Z-code can stand in anywhere a record with an
// embedded Z-code is expected -- see spec.md section 9's "has a Z-code"
// capability and Zer's doc comment.
func (z Z[T]) Z() Z[T] { return z }

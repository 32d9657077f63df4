// Copyright ©2026 The zoc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package zoc

import "unsafe"

// Coord is the set of types usable as Z-order coordinates. A coordinate is
// always an unsigned integer; signed or floating-point coordinates are a
// Non-goal (see spec.md Non-goals).
type Coord interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// bitsOf returns the bit width of T. Go has no way to ask a type parameter
// for its size without a value, so we synthesize a zero one; this never
// allocates and is folded to a constant by the compiler for every
// instantiation of T.
func bitsOf[T Coord]() int {
	var zero T
	return int(unsafe.Sizeof(zero)) * 8
}

// Copyright ©2026 The zoc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package zoc

// Dims reports the inclusive range of dimension counts supported for a
// coordinate of the given bit width, and whether that width is supported at
// all. The table is exactly the one in spec.md section 3: the interleaved
// code must fit in 128 bits, so width*dims <= 128.
func Dims(width int) (min, max int, ok bool) {
	switch width {
	case 8:
		return 2, 16, true
	case 16:
		return 2, 8, true
	case 32:
		return 2, 4, true
	case 64:
		return 2, 2, true
	default:
		return 0, 0, false
	}
}

// containerBits returns the smallest of {16, 32, 64, 128} able to hold
// width*dims bits. It documents the conceptual interleaved width U from
// spec.md section 3; zoc's actual in-memory representation is always a
// uint128 regardless of this value (see DESIGN.md, "U as a uniform 128-bit
// container").
func containerBits(width, dims int) int {
	n := width * dims
	switch {
	case n <= 16:
		return 16
	case n <= 32:
		return 32
	case n <= 64:
		return 64
	default:
		return 128
	}
}

// validateDims reports ErrDimension if width and dims fall outside the
// supported table.
func validateDims(width, dims int) error {
	min, max, ok := Dims(width)
	if !ok || dims < min || dims > max {
		return &dimensionError{width: width, dims: dims}
	}
	return nil
}

// Copyright ©2026 The zoc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package zoc

import "fmt"

// ErrDimension is returned, wrapped with the offending width and dimension
// count, when New or Blank is asked for a (width, dims) pair that falls
// outside the table documented in package zoc's doc comment.
var ErrDimension = fmt.Errorf("zoc: unsupported dimension count")

// dimensionError wraps ErrDimension with the specific combination that was
// rejected, so callers can use errors.Is(err, ErrDimension) while still
// getting a useful message.
type dimensionError struct {
	width, dims int
}

func (e *dimensionError) Error() string {
	return fmt.Sprintf("zoc: %d dimensions of width %d bits is not a supported combination", e.dims, e.width)
}

func (e *dimensionError) Unwrap() error { return ErrDimension }

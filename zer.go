// Copyright ©2026 The zoc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package zoc

// Zer is implemented by any value that has an associated Z-code. Package
// zoc/search accepts a slice of any type satisfying Zer so that callers can
// store a Z-code alongside arbitrary payload fields rather than being
// forced to sort and search slices of bare Z values. This mirrors
// original_source/src/lib.rs's GetZ<const D, T> trait and its blanket
// implementation for Z itself (see Z.Z).
type Zer[T Coord] interface {
	Z() Z[T]
}

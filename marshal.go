// Copyright ©2026 The zoc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package zoc

import (
	"encoding/binary"
	"fmt"
)

// Blank returns a zero-valued Z[T] configured with dims, suitable as an
// UnmarshalJSON/UnmarshalBinary target. Per spec.md section 6, a Z-code
// carries no framing of its own on the wire -- only the raw integer -- so
// the receiving dims must already be known from context, the same way a
// caller already knows T.
func Blank[T Coord](dims int) (Z[T], error) {
	if err := validateDims(bitsOf[T](), dims); err != nil {
		return Z[T]{}, err
	}
	return Z[T]{dims: dims}, nil
}

// MarshalBinary encodes z as its raw interleaved integer, big-endian, with
// no length prefix or version byte: 16 bytes, the full width of zoc's
// internal uint128 container regardless of dims and T. This mirrors
// mat.Dense.MarshalBinary's role in gonum.org/v1/gonum/mat, but without that
// type's header fields, since spec.md section 6 specifies no framing beyond
// the integer itself.
func (z Z[T]) MarshalBinary() ([]byte, error) {
	buf := make([]byte, 16)
	binary.BigEndian.PutUint64(buf[0:8], z.code.hi)
	binary.BigEndian.PutUint64(buf[8:16], z.code.lo)
	return buf, nil
}

// UnmarshalBinary decodes data produced by MarshalBinary into z. z.dims
// must already be set -- via Blank, New, or a prior successful unmarshal --
// since the wire format carries no dims field to restore it from.
func (z *Z[T]) UnmarshalBinary(data []byte) error {
	if z.dims == 0 {
		return fmt.Errorf("zoc: UnmarshalBinary target has no dims set; construct it with Blank first")
	}
	if len(data) != 16 {
		return fmt.Errorf("zoc: UnmarshalBinary: want 16 bytes, got %d", len(data))
	}
	z.code = uint128{
		hi: binary.BigEndian.Uint64(data[0:8]),
		lo: binary.BigEndian.Uint64(data[8:16]),
	}
	return nil
}

// MarshalJSON encodes z as its raw interleaved integer, rendered as a bare
// JSON number with no surrounding object or quoting -- the same convention
// math/big.Int uses for values that may exceed float64's precision.
func (z Z[T]) MarshalJSON() ([]byte, error) {
	return []byte(z.code.String()), nil
}

// UnmarshalJSON decodes a JSON number produced by MarshalJSON into z. As
// with UnmarshalBinary, z.dims must already be set.
func (z *Z[T]) UnmarshalJSON(data []byte) error {
	if z.dims == 0 {
		return fmt.Errorf("zoc: UnmarshalJSON target has no dims set; construct it with Blank first")
	}
	u, err := parseUint128(string(data))
	if err != nil {
		return fmt.Errorf("zoc: UnmarshalJSON: %w", err)
	}
	z.code = u
	return nil
}

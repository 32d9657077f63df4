// Copyright ©2026 The zoc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package zocio provides optional adapters for persisting a Z-sorted
// dataset -- a []zoc.Z[T] -- as a whole, built on top of zoc.Z's own
// MarshalBinary/MarshalJSON. The streaming shape here (a count header
// followed by one encoded value per element, written directly to an
// io.Writer rather than buffered into a single []byte) mirrors
// mat.Dense.MarshalBinaryTo/UnmarshalBinaryFrom in gonum.org/v1/gonum/mat.
package zocio

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/twittner/zoc"
)

// EncodeBinary writes zs to w as a dims field, a count field, and then each
// element's 16-byte MarshalBinary encoding in order. It returns the number
// of bytes written.
func EncodeBinary[T zoc.Coord](w io.Writer, zs []zoc.Z[T]) (int, error) {
	header := make([]byte, 8)
	dims := 0
	if len(zs) > 0 {
		dims = zs[0].Dims()
	}
	binary.BigEndian.PutUint32(header[0:4], uint32(dims))
	binary.BigEndian.PutUint32(header[4:8], uint32(len(zs)))
	n, err := w.Write(header)
	if err != nil {
		return n, err
	}
	for i, z := range zs {
		if z.Dims() != dims {
			return n, fmt.Errorf("zocio: element %d has %d dims, want %d", i, z.Dims(), dims)
		}
		data, err := z.MarshalBinary()
		if err != nil {
			return n, err
		}
		m, err := w.Write(data)
		n += m
		if err != nil {
			return n, err
		}
	}
	return n, nil
}

// DecodeBinary reads a stream written by EncodeBinary back into a slice of
// Z[T].
func DecodeBinary[T zoc.Coord](r io.Reader) ([]zoc.Z[T], error) {
	header := make([]byte, 8)
	if _, err := io.ReadFull(r, header); err != nil {
		return nil, fmt.Errorf("zocio: reading header: %w", err)
	}
	dims := int(binary.BigEndian.Uint32(header[0:4]))
	count := int(binary.BigEndian.Uint32(header[4:8]))
	if count == 0 {
		return nil, nil
	}
	out := make([]zoc.Z[T], count)
	buf := make([]byte, 16)
	for i := 0; i < count; i++ {
		if _, err := io.ReadFull(r, buf); err != nil {
			return nil, fmt.Errorf("zocio: reading element %d: %w", i, err)
		}
		z, err := zoc.Blank[T](dims)
		if err != nil {
			return nil, fmt.Errorf("zocio: element %d: %w", i, err)
		}
		if err := z.UnmarshalBinary(buf); err != nil {
			return nil, fmt.Errorf("zocio: element %d: %w", i, err)
		}
		out[i] = z
	}
	return out, nil
}

// Copyright ©2026 The zoc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package zocio

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/twittner/zoc"
)

// doc is the on-wire JSON shape: dims recorded once for the whole dataset
// (since zoc.Z[T]'s own MarshalJSON carries only the integer, per spec.md
// section 6) alongside the array of codes.
type doc struct {
	Dims  int               `json:"dims"`
	Codes []json.RawMessage `json:"codes"`
}

// EncodeJSON writes zs to w as a single JSON object holding the shared
// dimension count and the array of codes.
func EncodeJSON[T zoc.Coord](w io.Writer, zs []zoc.Z[T]) error {
	d := doc{Codes: make([]json.RawMessage, len(zs))}
	if len(zs) > 0 {
		d.Dims = zs[0].Dims()
	}
	for i, z := range zs {
		if z.Dims() != d.Dims {
			return fmt.Errorf("zocio: element %d has %d dims, want %d", i, z.Dims(), d.Dims)
		}
		raw, err := json.Marshal(z)
		if err != nil {
			return err
		}
		d.Codes[i] = raw
	}
	return json.NewEncoder(w).Encode(d)
}

// DecodeJSON reads a document written by EncodeJSON back into a slice of
// Z[T].
func DecodeJSON[T zoc.Coord](r io.Reader) ([]zoc.Z[T], error) {
	var d doc
	if err := json.NewDecoder(r).Decode(&d); err != nil {
		return nil, fmt.Errorf("zocio: decoding document: %w", err)
	}
	if len(d.Codes) == 0 {
		return nil, nil
	}
	out := make([]zoc.Z[T], len(d.Codes))
	for i, raw := range d.Codes {
		z, err := zoc.Blank[T](d.Dims)
		if err != nil {
			return nil, fmt.Errorf("zocio: element %d: %w", i, err)
		}
		if err := json.Unmarshal(raw, &z); err != nil {
			return nil, fmt.Errorf("zocio: element %d: %w", i, err)
		}
		out[i] = z
	}
	return out, nil
}

// Copyright ©2026 The zoc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package zoc

import "testing"

func TestDimsTable(t *testing.T) {
	cases := []struct {
		width    int
		min, max int
		ok       bool
	}{
		{width: 8, min: 2, max: 16, ok: true},
		{width: 16, min: 2, max: 8, ok: true},
		{width: 32, min: 2, max: 4, ok: true},
		{width: 64, min: 2, max: 2, ok: true},
		{width: 24, ok: false},
		{width: 0, ok: false},
	}
	for _, c := range cases {
		min, max, ok := Dims(c.width)
		if ok != c.ok {
			t.Errorf("Dims(%d) ok = %v, want %v", c.width, ok, c.ok)
			continue
		}
		if !ok {
			continue
		}
		if min != c.min || max != c.max {
			t.Errorf("Dims(%d) = (%d, %d), want (%d, %d)", c.width, min, max, c.min, c.max)
		}
	}
}

// TestContainerBits checks that containerBits reports the smallest of
// {16, 32, 64, 128} that fits width*dims bits, for a sample of supported
// combinations that includes each width's largest dims -- the conceptual U
// from spec.md section 3 (see
// DESIGN.md, "U as a uniform 128-bit container", for why this is
// documentation only and not zoc's actual in-memory representation).
func TestContainerBits(t *testing.T) {
	cases := []struct {
		width, dims, want int
	}{
		{width: 8, dims: 2, want: 16},
		{width: 8, dims: 16, want: 128},
		{width: 16, dims: 2, want: 32},
		{width: 16, dims: 4, want: 64},
		{width: 16, dims: 8, want: 128},
		{width: 32, dims: 2, want: 64},
		{width: 32, dims: 4, want: 128},
		{width: 64, dims: 2, want: 128},
	}
	for _, c := range cases {
		if got := containerBits(c.width, c.dims); got != c.want {
			t.Errorf("containerBits(%d, %d) = %d, want %d", c.width, c.dims, got, c.want)
		}
	}
}

func TestValidateDims(t *testing.T) {
	if err := validateDims(8, 2); err != nil {
		t.Errorf("validateDims(8, 2) = %v, want nil", err)
	}
	if err := validateDims(64, 3); err == nil {
		t.Error("validateDims(64, 3) should reject an unsupported combination")
	}
}

// Copyright ©2026 The zoc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package zoc

import (
	"fmt"
	"math/big"
)

// uint128 is an unsigned 128-bit integer, stored as two 64-bit words. It is
// zoc's uniform representation for the interleaved code U described in
// spec.md section 3, for every supported (width, dims) pair -- see
// DESIGN.md, "U as a uniform 128-bit container", for why a single container
// width is used instead of dispatching to uint16/32/64 per combination.
//
// The zero value is 0. Comparing two uint128 values with cmp produces the
// same ordering as comparing the widest-container unsigned integers they
// represent, which is the Z-order ordering spec.md section 3 requires.
type uint128 struct {
	hi, lo uint64
}

func uint128From(v uint64) uint128 { return uint128{lo: v} }

func (x uint128) isZero() bool { return x.hi == 0 && x.lo == 0 }

func (x uint128) or(y uint128) uint128  { return uint128{x.hi | y.hi, x.lo | y.lo} }
func (x uint128) and(y uint128) uint128 { return uint128{x.hi & y.hi, x.lo & y.lo} }
func (x uint128) not() uint128          { return uint128{^x.hi, ^x.lo} }
func (x uint128) andNot(y uint128) uint128 { return x.and(y.not()) }

// shl returns x << n for 0 <= n <= 128.
func (x uint128) shl(n int) uint128 {
	switch {
	case n <= 0:
		return x
	case n >= 128:
		return uint128{}
	case n >= 64:
		return uint128{hi: x.lo << (n - 64)}
	default:
		return uint128{hi: x.hi<<n | x.lo>>(64-n), lo: x.lo << n}
	}
}

// shr returns x >> n for 0 <= n <= 128.
func (x uint128) shr(n int) uint128 {
	switch {
	case n <= 0:
		return x
	case n >= 128:
		return uint128{}
	case n >= 64:
		return uint128{lo: x.hi >> (n - 64)}
	default:
		return uint128{hi: x.hi >> n, lo: x.lo>>n | x.hi<<(64-n)}
	}
}

// maskLow returns a uint128 with the low n bits set, 0 <= n <= 128.
func maskLow(n int) uint128 {
	switch {
	case n <= 0:
		return uint128{}
	case n >= 128:
		return uint128{hi: ^uint64(0), lo: ^uint64(0)}
	case n >= 64:
		return uint128{hi: ^uint64(0) >> (128 - n), lo: ^uint64(0)}
	default:
		return uint128{lo: ^uint64(0) >> (64 - n)}
	}
}

// bit reports the value of bit i, 0 <= i < 128.
func (x uint128) bit(i int) bool {
	if i >= 64 {
		return x.hi&(1<<(i-64)) != 0
	}
	return x.lo&(1<<i) != 0
}

// withBit returns x with bit i set to b, 0 <= i < 128.
func (x uint128) withBit(i int, b bool) uint128 {
	if i >= 64 {
		if b {
			x.hi |= 1 << (i - 64)
		} else {
			x.hi &^= 1 << (i - 64)
		}
		return x
	}
	if b {
		x.lo |= 1 << i
	} else {
		x.lo &^= 1 << i
	}
	return x
}

// cmp returns -1, 0, or 1 as x is less than, equal to, or greater than y,
// using the natural unsigned ordering of the 128-bit value.
func (x uint128) cmp(y uint128) int {
	if x.hi != y.hi {
		if x.hi < y.hi {
			return -1
		}
		return 1
	}
	switch {
	case x.lo < y.lo:
		return -1
	case x.lo > y.lo:
		return 1
	default:
		return 0
	}
}

func (x uint128) less(y uint128) bool  { return x.cmp(y) < 0 }
func (x uint128) equal(y uint128) bool { return x.hi == y.hi && x.lo == y.lo }

// lo64 returns the low 64 bits of x. Every code zoc produces for a
// supported (width, dims) pair fits within the low 64 bits once the
// dimension's own bits have been gathered out, since no supported
// coordinate width exceeds 64.
func (x uint128) lo64() uint64 { return x.lo }

// parseUint128 parses a decimal string into a uint128, accepting the full
// 128-bit range -- every code zoc's supported (width, dims) table can
// produce, including the wide ones (dims*width > 64) that don't fit in a
// uint64, per spec.md section 6's "raw U integer" wire format.
func parseUint128(s string) (uint128, error) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return uint128{}, fmt.Errorf("zoc: %q is not a decimal integer", s)
	}
	if v.Sign() < 0 || v.BitLen() > 128 {
		return uint128{}, fmt.Errorf("zoc: %q does not fit in 128 bits", s)
	}
	mask64 := new(big.Int).SetUint64(^uint64(0))
	lo := new(big.Int).And(v, mask64).Uint64()
	hi := new(big.Int).Rsh(v, 64).Uint64()
	return uint128{hi: hi, lo: lo}, nil
}

// String renders x as a plain decimal integer, exact for the full 128-bit
// range -- this is the wire form MarshalJSON emits, not a debugging
// abbreviation, so it must stay a valid bare JSON number even when hi != 0.
func (x uint128) String() string {
	v := new(big.Int).SetUint64(x.hi)
	v.Lsh(v, 64)
	v.Or(v, new(big.Int).SetUint64(x.lo))
	return v.String()
}

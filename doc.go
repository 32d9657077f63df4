// Copyright ©2026 The zoc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package zoc implements Z-order (Morton) curve encoding and the LITMAX/BIGMIN
// range-search codes described by Tropf and Herzog in "Multidimensional Range
// Search in Dynamically Balanced Trees" (Angewandte Informatik 2/1981, pp.
// 71-77).
//
// A Z-code is formed by bit-interleaving the coordinates of a D-dimensional
// point so that comparing the resulting scalars induces the Z-order (Morton
// order) on the points. Z holds one such code together with its dimension
// count. Bbox is an axis-aligned box expressed in the same coordinate space;
// its Litmax and Bigmin methods compute the codes used to prune the gaps
// between a query box and a Z-sorted sequence of candidate codes, which
// package zoc/search uses to answer range queries without building an index.
//
// Supported dimension/width combinations
//
// A coordinate is one of uint8, uint16, uint32, or uint64. The number of
// dimensions D is bounded by the width of the interleaved code: a Z-code must
// fit in 128 bits, so W*D <= 128 where W is the coordinate's bit width.
//
//	width W   allowed D
//	8         2..16
//	16        2..8
//	32        2..4
//	64        2
//
// New validates (W, D) against this table and reports ErrDimension for
// combinations outside it; NewBbox builds on already-validated Z values, so
// there is no way to construct a Z or Bbox whose bit layout would be
// ambiguous.
package zoc

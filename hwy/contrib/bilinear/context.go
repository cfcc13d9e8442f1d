// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package bilinear

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument reports geometrically inconsistent or out-of-range
// parameters for a coefficient context.
var ErrInvalidArgument = errors.New("bilinear: invalid argument")

// Context is the immutable coefficient bundle for one axis.
//
// Row j of the banded matrix holds RowSize() taps starting at source sample
// RowOffset(j). The LU arrays factor the tridiagonal normal-equations system
// and are indexed by destination position.
//
// A Context is read-only after construction and may be shared by any number
// of filters and goroutines. Slices returned by its accessors must not be
// modified.
type Context struct {
	matrix     []float32
	rowStride  int
	rowSize    int
	rowOffsets []int

	lower      []float32 // lu_l
	upper      []float32 // lu_u
	correction []float32 // lu_c

	srcExtent int
	dstExtent int
}

// Parts is the raw coefficient data an external builder hands to FromParts.
type Parts struct {
	Matrix     []float32
	RowStride  int
	RowSize    int
	RowOffsets []int
	Lower      []float32
	Upper      []float32
	Correction []float32
	SrcExtent  int
	DstExtent  int
}

// FromParts validates p and wraps it in a Context. The slices are retained,
// not copied; the caller must not modify them afterwards.
func FromParts(p Parts) (*Context, error) {
	if p.SrcExtent <= 0 || p.DstExtent <= 0 {
		return nil, fmt.Errorf("%w: extents must be positive, got src=%d dst=%d", ErrInvalidArgument, p.SrcExtent, p.DstExtent)
	}
	if p.DstExtent > p.SrcExtent {
		return nil, fmt.Errorf("%w: dst extent %d exceeds src extent %d", ErrInvalidArgument, p.DstExtent, p.SrcExtent)
	}
	if p.RowSize <= 0 || p.RowSize > p.SrcExtent {
		return nil, fmt.Errorf("%w: row size %d outside [1, %d]", ErrInvalidArgument, p.RowSize, p.SrcExtent)
	}
	if p.RowStride < p.RowSize {
		return nil, fmt.Errorf("%w: row stride %d smaller than row size %d", ErrInvalidArgument, p.RowStride, p.RowSize)
	}
	if len(p.Matrix) < (p.DstExtent-1)*p.RowStride+p.RowSize {
		return nil, fmt.Errorf("%w: matrix has %d coefficients, need %d", ErrInvalidArgument, len(p.Matrix), (p.DstExtent-1)*p.RowStride+p.RowSize)
	}
	if len(p.RowOffsets) != p.DstExtent {
		return nil, fmt.Errorf("%w: %d row offsets for %d rows", ErrInvalidArgument, len(p.RowOffsets), p.DstExtent)
	}
	for j, off := range p.RowOffsets {
		if off < 0 || off+p.RowSize > p.SrcExtent {
			return nil, fmt.Errorf("%w: row %d window [%d, %d) outside [0, %d)", ErrInvalidArgument, j, off, off+p.RowSize, p.SrcExtent)
		}
	}
	if len(p.Lower) != p.DstExtent || len(p.Upper) != p.DstExtent || len(p.Correction) != p.DstExtent {
		return nil, fmt.Errorf("%w: LU arrays must have length %d", ErrInvalidArgument, p.DstExtent)
	}
	return &Context{
		matrix:     p.Matrix,
		rowStride:  p.RowStride,
		rowSize:    p.RowSize,
		rowOffsets: p.RowOffsets,
		lower:      p.Lower,
		upper:      p.Upper,
		correction: p.Correction,
		srcExtent:  p.SrcExtent,
		dstExtent:  p.DstExtent,
	}, nil
}

// Row returns the RowSize() coefficients of matrix row j.
func (c *Context) Row(j int) []float32 {
	start := j * c.rowStride
	return c.matrix[start : start+c.rowSize]
}

// RowOffset returns the first source sample row j reads.
func (c *Context) RowOffset(j int) int { return c.rowOffsets[j] }

// RowSize returns the number of taps per matrix row.
func (c *Context) RowSize() int { return c.rowSize }

// RowStride returns the element count between successive matrix rows.
func (c *Context) RowStride() int { return c.rowStride }

// Lower returns the lu_l coefficients.
func (c *Context) Lower() []float32 { return c.lower }

// Upper returns the lu_u coefficients.
func (c *Context) Upper() []float32 { return c.upper }

// Correction returns the lu_c (sub-diagonal) coefficients.
func (c *Context) Correction() []float32 { return c.correction }

// SrcExtent returns the upsampled (input) length along this axis.
func (c *Context) SrcExtent() int { return c.srcExtent }

// DstExtent returns the unresized (output) length along this axis.
func (c *Context) DstExtent() int { return c.dstExtent }

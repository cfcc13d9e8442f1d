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
	"fmt"
	"math"
)

// rowAlign pads matrix rows to a multiple of this many coefficients.
const rowAlign = 4

// The factors are applied in float32, so conditioning is judged at that
// precision. pivotEpsilon is the smallest pivot, relative to its diagonal
// entry, that the factorization accepts. maxErrorGrowth bounds how much the
// forward and backward substitution chains together can amplify a rounding
// error; at the limit, growth times the float32 epsilon is about 1e-3.
const (
	pivotEpsilon   = 1e-6
	maxErrorGrowth = 1 << 13
)

// tap is the contribution of one upsampled sample: weight w0 on original
// sample left and w1 on left+1.
type tap struct {
	left   int
	w0, w1 float64
}

// sampleTap returns the bilinear weights of upsampled sample i.
// The sample's center maps to pos = (i + 0.5 + shift) * dst/src - 0.5 in
// original coordinates; out-of-range neighbors are clamped to the edge.
func sampleTap(i, src, dst int, shift float64) tap {
	pos := (float64(i)+0.5+shift)*float64(dst)/float64(src) - 0.5
	left := math.Floor(pos)
	frac := pos - left

	i0 := clampIndex(int(left), dst)
	i1 := clampIndex(int(left)+1, dst)
	if i0 == i1 {
		return tap{left: i0, w0: 1}
	}
	return tap{left: i0, w0: 1 - frac, w1: frac}
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

// NewContext builds the coefficient context that inverts a bilinear
// upsampling from dst samples to src samples along one axis.
//
// shift is the sub-pixel center shift of the upsampled grid, in upsampled
// samples.
//
// The banded matrix is the transpose of the upsampling matrix A (src x dst),
// so row j collects every upsampled sample that original sample j touched.
// The LU arrays factor AᵀA, which is tridiagonal because each upsampled
// sample depends on at most two adjacent originals.
func NewContext(src, dst int, shift float64) (*Context, error) {
	if src <= 0 || dst <= 0 {
		return nil, fmt.Errorf("%w: dimensions must be positive, got src=%d dst=%d", ErrInvalidArgument, src, dst)
	}
	if dst > src {
		return nil, fmt.Errorf("%w: dst %d exceeds src %d", ErrInvalidArgument, dst, src)
	}
	if math.IsNaN(shift) || math.IsInf(shift, 0) || math.Abs(shift) >= float64(src) {
		return nil, fmt.Errorf("%w: shift %v out of range for %d samples", ErrInvalidArgument, shift, src)
	}

	taps := make([]tap, src)
	first := make([]int, dst)
	last := make([]int, dst)
	for j := range dst {
		first[j] = src
		last[j] = -1
	}
	touch := func(j, i int) {
		first[j] = min(first[j], i)
		last[j] = max(last[j], i)
	}
	for i := range src {
		t := sampleTap(i, src, dst, shift)
		taps[i] = t
		if t.w0 != 0 {
			touch(t.left, i)
		}
		if t.w1 != 0 {
			touch(t.left+1, i)
		}
	}

	rowSize := 0
	for j := range dst {
		if last[j] < 0 {
			return nil, fmt.Errorf("%w: shift %v leaves sample %d of %d unconstrained", ErrInvalidArgument, shift, j, dst)
		}
		rowSize = max(rowSize, last[j]-first[j]+1)
	}
	rowStride := (rowSize + rowAlign - 1) / rowAlign * rowAlign

	offsets := make([]int, dst)
	for j := range dst {
		offsets[j] = min(first[j], src-rowSize)
	}

	// Aᵀ band and the three diagonals of AᵀA, accumulated in float64.
	band := make([]float64, dst*rowStride)
	diag := make([]float64, dst)
	sub := make([]float64, dst)
	super := make([]float64, dst)
	for i, t := range taps {
		band[t.left*rowStride+i-offsets[t.left]] += t.w0
		diag[t.left] += t.w0 * t.w0
		if t.w1 != 0 {
			r := t.left + 1
			band[r*rowStride+i-offsets[r]] += t.w1
			diag[r] += t.w1 * t.w1
			super[t.left] += t.w0 * t.w1
			sub[r] += t.w0 * t.w1
		}
	}

	lower := make([]float32, dst)
	upper := make([]float32, dst)
	correction := make([]float32, dst)
	var uPrev, forward, forwardMax float64
	for j := range dst {
		den := diag[j] - sub[j]*uPrev
		if !(den > pivotEpsilon*diag[j]) {
			return nil, fmt.Errorf("%w: singular normal equations at sample %d (pivot %g)", ErrInvalidArgument, j, den)
		}
		l := 1 / den
		u := super[j] * l
		lower[j] = float32(l)
		upper[j] = float32(u)
		correction[j] = float32(sub[j])
		uPrev = u

		// z[j] depends on z[j-1] with weight sub[j]*l.
		forward = 1 + math.Abs(sub[j]*l)*forward
		forwardMax = max(forwardMax, forward)
	}
	var backward, backwardMax float64
	for j := dst - 1; j >= 0; j-- {
		backward = 1 + math.Abs(float64(upper[j]))*backward
		backwardMax = max(backwardMax, backward)
	}
	if growth := forwardMax * backwardMax; !(growth <= maxErrorGrowth) {
		return nil, fmt.Errorf("%w: normal equations too ill-conditioned for float32 (error growth %.3g)", ErrInvalidArgument, growth)
	}

	matrix := make([]float32, len(band))
	for i, v := range band {
		matrix[i] = float32(v)
	}

	return &Context{
		matrix:     matrix,
		rowStride:  rowStride,
		rowSize:    rowSize,
		rowOffsets: offsets,
		lower:      lower,
		upper:      upper,
		correction: correction,
		srcExtent:  src,
		dstExtent:  dst,
	}, nil
}

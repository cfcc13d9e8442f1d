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

package unresize

import (
	"fmt"

	"github.com/ajroetker/go-unresize/hwy"
	"github.com/ajroetker/go-unresize/hwy/contrib/bilinear"
)

// lanesFilter is the optimized backend. The substitution recurrences stay
// sequential; what runs side by side is independent scanlines:
//   - horizontal: lanes rows are solved together, one destination column
//     per step, so the lanes recurrence chains overlap instead of stalling
//   - vertical: every column of a row is independent, so each step is a
//     contiguous row kernel (hwy.RowOps) over the whole row, four taps per
//     pass
//
// Rows left over after the last full horizontal block use the Base kernels.
type lanesFilter struct {
	h, v  *bilinear.Context
	level hwy.DispatchLevel
	lanes int
	ops   hwy.RowOps
}

func newLanesFilter(h, v *bilinear.Context, level hwy.DispatchLevel) (*lanesFilter, error) {
	if !level.HasVectors() {
		return nil, fmt.Errorf("%w: dispatch level %s has no vector unit", ErrUnsupported, level)
	}
	lanes := hwy.LanesFor[float32](level)

	// The horizontal pass fills lanes from source rows, the vertical pass
	// from destination columns.
	if v.SrcExtent() < lanes {
		return nil, fmt.Errorf("%w: %d rows is fewer than %d %s lanes", ErrUnsupported, v.SrcExtent(), lanes, level)
	}
	if h.DstExtent() < lanes {
		return nil, fmt.Errorf("%w: %d columns is fewer than %d %s lanes", ErrUnsupported, h.DstExtent(), lanes, level)
	}
	return &lanesFilter{h: h, v: v, level: level, lanes: lanes, ops: hwy.RowOpsFor(level)}, nil
}

func (f *lanesFilter) Name() string { return "optimized/" + f.level.String() }

func (f *lanesFilter) ApplyHorizontal(src, dst, tmp []float32, srcWidth, srcHeight, srcStride, dstStride int) {
	n := f.h.DstExtent()
	hwy.ProcessWithTail(srcHeight, f.lanes,
		func(i int) {
			f.solveRowsH(src, dst, srcStride, dstStride, i)
		},
		func(i, count int) {
			for r := i; r < i+count; r++ {
				BaseForwardH(f.h, src, tmp, srcStride, r, 0, n)
				BaseBackH(f.h, tmp, dst, dstStride, r, n, 0)
			}
		},
	)
}

// solveRowsH solves rows [i, i+lanes). Forward substitution parks z in dst,
// then backward substitution overwrites each z in place with the final
// value. Taps are summed in order and the recurrences match BaseForwardH and
// BaseBackH, so every row gets the same bits as the generic kernels.
func (f *lanesFilter) solveRowsH(src, dst []float32, srcStride, dstStride, i int) {
	ctx := f.h
	c, l, u := ctx.Correction(), ctx.Lower(), ctx.Upper()
	n := ctx.DstExtent()
	in := src[i*srcStride:]
	out := dst[i*dstStride:]

	var zState, accState [hwy.MaxVecLanes]float32
	z := zState[:f.lanes]
	acc := accState[:f.lanes]

	for j := range n {
		left := ctx.RowOffset(j)
		taps := ctx.Row(j)
		clear(acc)

		k := 0
		for ; k+4 <= len(taps); k += 4 {
			a0, a1, a2, a3 := taps[k], taps[k+1], taps[k+2], taps[k+3]
			for r := range acc {
				x := in[r*srcStride+left+k:][:4]
				s := acc[r]
				s += a0 * x[0]
				s += a1 * x[1]
				s += a2 * x[2]
				s += a3 * x[3]
				acc[r] = s
			}
		}
		for ; k < len(taps); k++ {
			a := taps[k]
			for r := range acc {
				acc[r] += a * in[r*srcStride+left+k]
			}
		}

		cj, lj := c[j], l[j]
		for r := range z {
			z[r] = (acc[r] - cj*z[r]) * lj
			out[r*dstStride+j] = z[r]
		}
	}

	clear(z)
	for j := n; j > 0; j-- {
		uj := u[j-1]
		for r := range z {
			p := r*dstStride + j - 1
			z[r] = out[p] - uj*z[r]
			out[p] = z[r]
		}
	}
}

func (f *lanesFilter) ApplyVertical(src, dst, tmp []float32, srcWidth, srcHeight, srcStride, dstStride int) {
	ctx := f.v
	ops := f.ops
	c, l, u := ctx.Correction(), ctx.Lower(), ctx.Upper()
	n := ctx.DstExtent()

	srcRow := func(r int) []float32 { return src[r*srcStride:][:srcWidth] }
	dstRow := func(r int) []float32 { return dst[r*dstStride:][:srcWidth] }

	for i := range n {
		out := dstRow(i)
		taps := ctx.Row(i)
		top := ctx.RowOffset(i)

		clear(out)
		k := 0
		for ; k+4 <= len(taps); k += 4 {
			ops.MulAdd4(out, srcRow(top+k), srcRow(top+k+1), srcRow(top+k+2), srcRow(top+k+3),
				taps[k], taps[k+1], taps[k+2], taps[k+3])
		}
		for ; k < len(taps); k++ {
			ops.MulAdd(out, srcRow(top+k), taps[k])
		}

		if i > 0 {
			ops.SubMulScale(out, dstRow(i-1), c[i], l[i])
		} else {
			ops.Scale(out, out, l[i])
		}
	}

	// The last row has no solved neighbor, so it is already final.
	for i := n - 1; i > 0; i-- {
		ops.SubMul(dstRow(i-1), dstRow(i), u[i-1])
	}
}

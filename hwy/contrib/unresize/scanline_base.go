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

import "github.com/ajroetker/go-unresize/hwy/contrib/bilinear"

// BaseForwardH computes the banded matrix-vector product and forward
// substitution for row i of src over destination positions [jBegin, jEnd),
// storing the running value z in tmp[j].
//
// The recurrence is seeded with tmp[jBegin-1] when jBegin > 0, so a row may
// be processed as consecutive sub-ranges sharing one tmp.
func BaseForwardH(ctx *bilinear.Context, src, tmp []float32, srcStride, i, jBegin, jEnd int) {
	c := ctx.Correction()
	l := ctx.Lower()
	in := src[i*srcStride:]

	var z float32
	if jBegin > 0 {
		z = tmp[jBegin-1]
	}

	for j := jBegin; j < jEnd; j++ {
		left := ctx.RowOffset(j)

		var accum float32
		for k, coeff := range ctx.Row(j) {
			accum += coeff * in[left+k]
		}

		z = (accum - c[j]*z) * l[j]
		tmp[j] = z
	}
}

// BaseBackH runs backward substitution for row i from position jBegin down
// to jEnd (exclusive, jBegin > jEnd), reading tmp and writing dst[j-1].
//
// The recurrence is seeded with the already solved dst[jBegin] unless
// jBegin is the end of the row.
func BaseBackH(ctx *bilinear.Context, tmp, dst []float32, dstStride, i, jBegin, jEnd int) {
	u := ctx.Upper()
	out := dst[i*dstStride:]

	var w float32
	if jBegin < ctx.DstExtent() {
		w = out[jBegin]
	}

	for j := jBegin; j > jEnd; j-- {
		w = tmp[j-1] - u[j-1]*w
		out[j-1] = w
	}
}

// BaseForwardV computes output row i of the vertical pass for columns
// [jBegin, jEnd): the banded product down each column of src followed by the
// forward step against dst row i-1.
func BaseForwardV(ctx *bilinear.Context, src, dst []float32, srcStride, dstStride, i, jBegin, jEnd int) {
	c := ctx.Correction()[i]
	l := ctx.Lower()[i]
	row := ctx.Row(i)
	top := ctx.RowOffset(i)

	out := dst[i*dstStride:]
	var prev []float32
	if i > 0 {
		prev = dst[(i-1)*dstStride:]
	}

	for j := jBegin; j < jEnd; j++ {
		var z float32
		if prev != nil {
			z = prev[j]
		}

		var accum float32
		for k, coeff := range row {
			accum += coeff * src[(top+k)*srcStride+j]
		}

		out[j] = (accum - c*z) * l
	}
}

// BaseBackV runs the backward step that finalizes dst row i-1 for columns
// [jBegin, jEnd), using row i as the already solved neighbor unless i is the
// last output row.
func BaseBackV(ctx *bilinear.Context, dst []float32, dstStride, i, jBegin, jEnd int) {
	u := ctx.Upper()[i-1]
	cur := dst[(i-1)*dstStride:]

	var next []float32
	if i < ctx.DstExtent() {
		next = dst[i*dstStride:]
	}

	for j := jBegin; j < jEnd; j++ {
		var w float32
		if next != nil {
			w = next[j]
		}
		cur[j] = cur[j] - u*w
	}
}

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

// Upsample applies the bilinear upsampling this context inverts to one
// scanline: dst[:SrcExtent()] = A * src[:DstExtent()].
func (c *Context) Upsample(src, dst []float32) {
	out := dst[:c.srcExtent]
	clear(out)
	for j := range c.dstExtent {
		x := src[j]
		off := c.rowOffsets[j]
		for k, a := range c.Row(j) {
			out[off+k] += a * x
		}
	}
}

// UpsamplePlane bilinearly enlarges a plane of h.DstExtent() x v.DstExtent()
// samples into h.SrcExtent() x v.SrcExtent() samples, using exactly the
// weights h and v invert. Strides are in elements.
func UpsamplePlane(h, v *Context, src []float32, srcStride int, dst []float32, dstStride int) {
	width := h.SrcExtent()

	// Horizontal pass into an intermediate of v.DstExtent() rows.
	mid := make([]float32, width*v.DstExtent())
	for y := range v.DstExtent() {
		h.Upsample(src[y*srcStride:], mid[y*width:])
	}

	// Vertical pass: scatter each intermediate row into the output rows it
	// contributes to.
	for y := range v.SrcExtent() {
		clear(dst[y*dstStride : y*dstStride+width])
	}
	for j := range v.DstExtent() {
		midRow := mid[j*width : (j+1)*width]
		off := v.RowOffset(j)
		for k, a := range v.Row(j) {
			if a == 0 {
				continue
			}
			dstRow := dst[(off+k)*dstStride : (off+k)*dstStride+width]
			for x, s := range midRow {
				dstRow[x] += a * s
			}
		}
	}
}

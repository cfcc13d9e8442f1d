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

// Package image provides stride-addressed sample planes for the unresize
// filters.
//
// An Image stores one channel with rows padded to the widest vector
// register, so lane-blocked passes never straddle a row boundary. Region
// returns a view into a larger plane that shares its storage, which is how
// a sub-rectangle of an image is filtered in place.
//
// Example usage:
//
//	img := image.NewImage[float32](640, 480)
//	for y := 0; y < img.Height(); y++ {
//	    row := img.RowSlice(y)
//	    // fill row
//	}
//	f.ApplyHorizontal(img.Data(), mid.Data(), tmp, img.Width(), img.Height(), img.Stride(), mid.Stride())
package image

import "github.com/ajroetker/go-unresize/hwy"

// Image is a single-channel 2D plane. Row y starts at Data()[y*Stride()].
type Image[T hwy.Floats] struct {
	data   []T
	width  int
	height int
	stride int // elements per row (includes padding)
}

// NewImage creates a zeroed image. Rows are padded to a multiple of
// hwy.MaxVecLanes elements. Non-positive dimensions give an empty image.
func NewImage[T hwy.Floats](width, height int) *Image[T] {
	if width <= 0 || height <= 0 {
		return &Image[T]{}
	}
	stride := hwy.AlignedSize(width, hwy.MaxVecLanes)
	return &Image[T]{
		data:   make([]T, stride*height),
		width:  width,
		height: height,
		stride: stride,
	}
}

// Width returns the image width in samples.
func (img *Image[T]) Width() int {
	return img.width
}

// Height returns the image height in samples.
func (img *Image[T]) Height() int {
	return img.height
}

// Stride returns the number of elements between row starts.
func (img *Image[T]) Stride() int {
	return img.stride
}

// Data returns the backing slice starting at sample (0, 0).
// For a Region the slice ends after the last sample of the last row.
func (img *Image[T]) Data() []T {
	return img.data
}

// Row returns row y including padding, or nil when y is out of range.
// For a Region the last row has no padding.
func (img *Image[T]) Row(y int) []T {
	if y < 0 || y >= img.height || img.data == nil {
		return nil
	}
	start := y * img.stride
	return img.data[start:min(start+img.stride, len(img.data))]
}

// RowSlice returns row y limited to the image width.
func (img *Image[T]) RowSlice(y int) []T {
	if y < 0 || y >= img.height || img.data == nil {
		return nil
	}
	start := y * img.stride
	return img.data[start : start+img.width]
}

// At returns the value at (x, y), or zero outside the image.
func (img *Image[T]) At(x, y int) T {
	if x < 0 || x >= img.width || y < 0 || y >= img.height {
		var zero T
		return zero
	}
	return img.data[y*img.stride+x]
}

// Set sets the value at (x, y). Writes outside the image are ignored.
func (img *Image[T]) Set(x, y int, value T) {
	if x < 0 || x >= img.width || y < 0 || y >= img.height {
		return
	}
	img.data[y*img.stride+x] = value
}

// Fill sets every sample inside the image to value. Padding is untouched.
func (img *Image[T]) Fill(value T) {
	for y := range img.height {
		row := img.RowSlice(y)
		for x := range row {
			row[x] = value
		}
	}
}

// Clone returns a deep copy with its own storage and the same stride.
func (img *Image[T]) Clone() *Image[T] {
	clone := &Image[T]{
		data:   make([]T, len(img.data)),
		width:  img.width,
		height: img.height,
		stride: img.stride,
	}
	copy(clone.data, img.data)
	return clone
}

// Region returns the w x h view whose top-left sample is (x, y). The view
// shares storage with img. It returns nil if the rectangle is empty or not
// fully inside img.
func (img *Image[T]) Region(x, y, w, h int) *Image[T] {
	if w <= 0 || h <= 0 || x < 0 || y < 0 || x+w > img.width || y+h > img.height {
		return nil
	}
	start := y*img.stride + x
	end := (y+h-1)*img.stride + x + w
	return &Image[T]{
		data:   img.data[start:end],
		width:  w,
		height: h,
		stride: img.stride,
	}
}

// SameSize returns true if both images have the same dimensions.
func SameSize[T, U hwy.Floats](a *Image[T], b *Image[U]) bool {
	return a.width == b.width && a.height == b.height
}

// Image3 bundles three same-sized planes, e.g. RGB.
type Image3[T hwy.Floats] struct {
	planes [3]*Image[T]
}

// NewImage3 creates a 3-plane image.
func NewImage3[T hwy.Floats](width, height int) *Image3[T] {
	return &Image3[T]{
		planes: [3]*Image[T]{
			NewImage[T](width, height),
			NewImage[T](width, height),
			NewImage[T](width, height),
		},
	}
}

// Plane returns plane i (0, 1, or 2), or nil.
func (img *Image3[T]) Plane(i int) *Image[T] {
	if i < 0 || i > 2 {
		return nil
	}
	return img.planes[i]
}

// Width returns the image width (all planes have the same size).
func (img *Image3[T]) Width() int {
	return img.planes[0].Width()
}

// Height returns the image height.
func (img *Image3[T]) Height() int {
	return img.planes[0].Height()
}

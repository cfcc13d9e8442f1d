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
	"errors"
	"fmt"

	"github.com/ajroetker/go-unresize/hwy"
	"github.com/ajroetker/go-unresize/hwy/contrib/bilinear"
)

var (
	// ErrInvalidArgument reports dimensions, shifts or contexts that cannot
	// describe a bilinear unresize. Errors wrapping it also wrap
	// bilinear.ErrInvalidArgument when the context builder rejected the input.
	ErrInvalidArgument = errors.New("unresize: invalid argument")

	// ErrUnsupported reports that the optimized backend cannot serve the
	// request. Retrying with Options.Optimize unset always succeeds for
	// otherwise valid input.
	ErrUnsupported = errors.New("unresize: unsupported configuration")
)

// Filter applies the two separable passes of a bilinear unresize.
//
// Both methods are synchronous and keep no state between calls; a Filter may
// be used concurrently on disjoint buffers. Strides are in elements. tmp must
// hold at least one destination scanline.
type Filter interface {
	// ApplyHorizontal solves every row in [0, srcHeight) of src, writing
	// the horizontal destination extent of each row to dst.
	ApplyHorizontal(src, dst, tmp []float32, srcWidth, srcHeight, srcStride, dstStride int)

	// ApplyVertical solves the columns [0, srcWidth) of a horizontally
	// filtered src, writing the vertical destination extent of rows to dst.
	ApplyVertical(src, dst, tmp []float32, srcWidth, srcHeight, srcStride, dstStride int)

	// Name identifies the backend.
	Name() string
}

// Options selects the backend built by New and NewFilter.
type Options struct {
	// Optimize requests the lane-parallel backend.
	Optimize bool

	// Level is the platform capability the optimized backend may use.
	// It is never detected here; pass hwy.CurrentLevel() to use the
	// running CPU.
	Level hwy.DispatchLevel
}

// New builds the coefficient contexts for unresizing a srcWidth x srcHeight
// upsampled image back to dstWidth x dstHeight and returns a Filter over
// them. shiftW and shiftH are the sub-pixel center shifts of the upsampled
// grid along each axis.
func New(srcWidth, srcHeight, dstWidth, dstHeight int, shiftW, shiftH float64, opts Options) (Filter, error) {
	h, err := bilinear.NewContext(srcWidth, dstWidth, shiftW)
	if err != nil {
		return nil, fmt.Errorf("%w: horizontal: %w", ErrInvalidArgument, err)
	}
	v, err := bilinear.NewContext(srcHeight, dstHeight, shiftH)
	if err != nil {
		return nil, fmt.Errorf("%w: vertical: %w", ErrInvalidArgument, err)
	}
	return NewFilter(h, v, opts)
}

// NewFilter returns a Filter over prebuilt contexts. The contexts are
// retained by reference and must outlive the Filter.
func NewFilter(h, v *bilinear.Context, opts Options) (Filter, error) {
	if h == nil || v == nil {
		return nil, fmt.Errorf("%w: nil coefficient context", ErrInvalidArgument)
	}

	var f Filter
	lanes := 1
	if opts.Optimize {
		lf, err := newLanesFilter(h, v, opts.Level)
		if err != nil {
			return nil, err
		}
		f = lf
		lanes = lf.lanes
	} else {
		f = &baseFilter{h: h, v: v}
	}

	Logger().Debug("unresize: filter created",
		"backend", f.Name(),
		"lanes", lanes,
		"src", fmt.Sprintf("%dx%d", h.SrcExtent(), v.SrcExtent()),
		"dst", fmt.Sprintf("%dx%d", h.DstExtent(), v.DstExtent()),
	)
	return f, nil
}

// baseFilter is the portable backend: one scanline at a time through the
// Base kernels.
type baseFilter struct {
	h, v *bilinear.Context
}

func (f *baseFilter) Name() string { return "generic" }

func (f *baseFilter) ApplyHorizontal(src, dst, tmp []float32, srcWidth, srcHeight, srcStride, dstStride int) {
	n := f.h.DstExtent()
	for i := range srcHeight {
		BaseForwardH(f.h, src, tmp, srcStride, i, 0, n)
		BaseBackH(f.h, tmp, dst, dstStride, i, n, 0)
	}
}

func (f *baseFilter) ApplyVertical(src, dst, tmp []float32, srcWidth, srcHeight, srcStride, dstStride int) {
	n := f.v.DstExtent()
	for i := range n {
		BaseForwardV(f.v, src, dst, srcStride, dstStride, i, 0, srcWidth)
	}
	for i := n; i > 0; i-- {
		BaseBackV(f.v, dst, dstStride, i, 0, srcWidth)
	}
}

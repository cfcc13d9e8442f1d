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
	"github.com/ajroetker/go-unresize/hwy/contrib/image"
	"github.com/ajroetker/go-unresize/hwy/contrib/workerpool"
)

// Config describes a plane-level unresize.
type Config struct {
	// SrcWidth and SrcHeight are the dimensions of the upsampled input.
	SrcWidth, SrcHeight int

	// DstWidth and DstHeight are the dimensions to recover.
	DstWidth, DstHeight int

	// ShiftW and ShiftH are the sub-pixel center shifts of the upsampled
	// grid, in upsampled samples.
	ShiftW, ShiftH float64

	// Optimize requests the lane-parallel backend at Level.
	Optimize bool
	Level    hwy.DispatchLevel

	// Fallback makes NewUnresizer use the generic backend when the
	// optimized one reports ErrUnsupported.
	Fallback bool
}

// Unresizer runs both passes of a Filter over whole planes, splitting each
// pass across a worker pool. It is safe for concurrent use on distinct
// images.
type Unresizer struct {
	cfg    Config
	filter Filter
	lanes  int
	pool   *workerpool.Pool
}

// NewUnresizer builds the filter described by cfg. pool may be nil, in which
// case Process runs on the calling goroutine. The pool is not owned by the
// Unresizer and is not closed by it.
func NewUnresizer(cfg Config, pool *workerpool.Pool) (*Unresizer, error) {
	opts := Options{Optimize: cfg.Optimize, Level: cfg.Level}
	f, err := New(cfg.SrcWidth, cfg.SrcHeight, cfg.DstWidth, cfg.DstHeight, cfg.ShiftW, cfg.ShiftH, opts)
	if err != nil && cfg.Fallback && errors.Is(err, ErrUnsupported) {
		Logger().Warn("unresize: optimized backend unavailable, using generic",
			"dispatch", cfg.Level.String(),
			"err", err,
		)
		opts.Optimize = false
		f, err = New(cfg.SrcWidth, cfg.SrcHeight, cfg.DstWidth, cfg.DstHeight, cfg.ShiftW, cfg.ShiftH, opts)
	}
	if err != nil {
		return nil, err
	}

	lanes := 1
	if lf, ok := f.(*lanesFilter); ok {
		lanes = lf.lanes
	}
	return &Unresizer{cfg: cfg, filter: f, lanes: lanes, pool: pool}, nil
}

// Filter returns the backend in use.
func (u *Unresizer) Filter() Filter {
	return u.filter
}

// Process unresizes src into dst. src must be SrcWidth x SrcHeight and dst
// DstWidth x DstHeight; either may be a Region of a larger image. Only the
// dst samples are written.
func (u *Unresizer) Process(src, dst *image.Image[float32]) error {
	cfg := u.cfg
	if src == nil || dst == nil {
		return fmt.Errorf("%w: nil image", ErrInvalidArgument)
	}
	if src.Width() != cfg.SrcWidth || src.Height() != cfg.SrcHeight {
		return fmt.Errorf("%w: source is %dx%d, want %dx%d",
			ErrInvalidArgument, src.Width(), src.Height(), cfg.SrcWidth, cfg.SrcHeight)
	}
	if dst.Width() != cfg.DstWidth || dst.Height() != cfg.DstHeight {
		return fmt.Errorf("%w: destination is %dx%d, want %dx%d",
			ErrInvalidArgument, dst.Width(), dst.Height(), cfg.DstWidth, cfg.DstHeight)
	}

	// Horizontal pass: DstWidth x SrcHeight.
	mid := image.NewImage[float32](cfg.DstWidth, cfg.SrcHeight)
	srcData, srcStride := src.Data(), src.Stride()
	midData, midStride := mid.Data(), mid.Stride()
	u.pool.ParallelForAligned(cfg.SrcHeight, u.lanes, func(start, end int) {
		tmp := make([]float32, cfg.DstWidth)
		u.filter.ApplyHorizontal(srcData[start*srcStride:], midData[start*midStride:], tmp,
			cfg.SrcWidth, end-start, srcStride, midStride)
	})

	// Vertical pass over column ranges; the recurrence runs down the rows.
	dstData, dstStride := dst.Data(), dst.Stride()
	u.pool.ParallelForAligned(cfg.DstWidth, u.lanes, func(start, end int) {
		tmp := make([]float32, cfg.DstHeight)
		u.filter.ApplyVertical(midData[start:], dstData[start:], tmp,
			end-start, cfg.SrcHeight, midStride, dstStride)
	})
	return nil
}

// ProcessImage3 runs Process on each plane.
func (u *Unresizer) ProcessImage3(src, dst *image.Image3[float32]) error {
	if src == nil || dst == nil {
		return fmt.Errorf("%w: nil image", ErrInvalidArgument)
	}
	for p := range 3 {
		if err := u.Process(src.Plane(p), dst.Plane(p)); err != nil {
			return fmt.Errorf("plane %d: %w", p, err)
		}
	}
	return nil
}

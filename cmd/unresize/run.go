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

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-unresize/hwy"
	hwyimage "github.com/ajroetker/go-unresize/hwy/contrib/image"
	"github.com/ajroetker/go-unresize/hwy/contrib/unresize"
	"github.com/ajroetker/go-unresize/hwy/contrib/workerpool"
)

type runFlags struct {
	in, out        string
	width, height  int
	shiftW, shiftH float64
	generic        bool
}

func newRunCmd(g *globalFlags) *cobra.Command {
	f := &runFlags{}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Recover the pre-upsampling image",
		RunE: func(cmd *cobra.Command, args []string) error {
			img, err := readImage(f.in)
			if err != nil {
				return err
			}
			src := toPlanes(img)

			pool := g.pool()
			defer pool.Close()
			u, err := newUnresizer(src.Width(), src.Height(), f.width, f.height, f.shiftW, f.shiftH, f.generic, pool)
			if err != nil {
				return err
			}

			dst := hwyimage.NewImage3[float32](f.width, f.height)
			if err := u.ProcessImage3(src, dst); err != nil {
				return err
			}
			if err := writeImage(f.out, fromPlanes(dst)); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %dx%d -> %dx%d (%s)\n",
				f.out, src.Width(), src.Height(), f.width, f.height, u.Filter().Name())
			return nil
		},
	}
	fl := cmd.Flags()
	fl.StringVar(&f.in, "in", "", "upsampled input image")
	fl.StringVar(&f.out, "out", "", "output image (.png, .tif, .tiff, .bmp)")
	fl.IntVar(&f.width, "width", 0, "output width")
	fl.IntVar(&f.height, "height", 0, "output height")
	fl.Float64Var(&f.shiftW, "shift-w", 0, "horizontal sub-pixel shift of the upsampled grid")
	fl.Float64Var(&f.shiftH, "shift-h", 0, "vertical sub-pixel shift of the upsampled grid")
	fl.BoolVar(&f.generic, "generic", false, "force the generic backend")
	for _, name := range []string{"in", "out", "width", "height"} {
		_ = cmd.MarkFlagRequired(name)
	}
	return cmd
}

// newUnresizer configures an Unresizer for the running CPU, falling back to
// the generic backend when the optimized one cannot serve the geometry.
func newUnresizer(srcW, srcH, dstW, dstH int, shiftW, shiftH float64, generic bool, pool *workerpool.Pool) (*unresize.Unresizer, error) {
	return unresize.NewUnresizer(unresize.Config{
		SrcWidth:  srcW,
		SrcHeight: srcH,
		DstWidth:  dstW,
		DstHeight: dstH,
		ShiftW:    shiftW,
		ShiftH:    shiftH,
		Optimize:  !generic,
		Level:     hwy.CurrentLevel(),
		Fallback:  true,
	}, pool)
}

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
	"math"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	hwyimage "github.com/ajroetker/go-unresize/hwy/contrib/image"
)

type roundtripFlags struct {
	in      string
	scale   float64
	generic bool
}

// planeError summarizes the difference between two planes.
type planeError struct {
	max, mean float64
}

func newRoundtripCmd(g *globalFlags) *cobra.Command {
	f := &roundtripFlags{}
	cmd := &cobra.Command{
		Use:   "roundtrip",
		Short: "Upsample an image exactly, unresize it and report the error",
		RunE: func(cmd *cobra.Command, args []string) error {
			if f.scale < 1 || math.IsInf(f.scale, 0) || math.IsNaN(f.scale) {
				return fmt.Errorf("scale must be at least 1, got %v", f.scale)
			}
			img, err := readImage(f.in)
			if err != nil {
				return err
			}
			orig := toPlanes(img)
			bigW := int(math.Round(float64(orig.Width()) * f.scale))
			bigH := int(math.Round(float64(orig.Height()) * f.scale))

			big, err := upsampleExact(orig, bigW, bigH, 0, 0)
			if err != nil {
				return err
			}

			pool := g.pool()
			defer pool.Close()
			u, err := newUnresizer(bigW, bigH, orig.Width(), orig.Height(), 0, 0, f.generic, pool)
			if err != nil {
				return err
			}
			back := hwyimage.NewImage3[float32](orig.Width(), orig.Height())
			if err := u.ProcessImage3(big, back); err != nil {
				return err
			}

			p := message.NewPrinter(language.English)
			out := cmd.OutOrStdout()
			p.Fprintf(out, "%dx%d -> %dx%d -> %dx%d (%s)\n",
				orig.Width(), orig.Height(), bigW, bigH, orig.Width(), orig.Height(), u.Filter().Name())
			p.Fprintf(out, "samples: %d\n", 3*orig.Width()*orig.Height())
			for i, name := range []string{"R", "G", "B"} {
				e := comparePlanes(orig.Plane(i), back.Plane(i))
				p.Fprintf(out, "%s: max %.3e mean %.3e\n", name, e.max, e.mean)
			}
			return nil
		},
	}
	fl := cmd.Flags()
	fl.StringVar(&f.in, "in", "", "input image")
	fl.Float64Var(&f.scale, "scale", 2, "upsampling factor (>= 1)")
	fl.BoolVar(&f.generic, "generic", false, "force the generic backend")
	_ = cmd.MarkFlagRequired("in")
	return cmd
}

func comparePlanes(a, b *hwyimage.Image[float32]) planeError {
	var e planeError
	n := 0
	for y := range a.Height() {
		ra, rb := a.RowSlice(y), b.RowSlice(y)
		for x := range ra {
			d := math.Abs(float64(ra[x]) - float64(rb[x]))
			e.max = max(e.max, d)
			e.mean += d
			n++
		}
	}
	if n > 0 {
		e.mean /= float64(n)
	}
	return e
}

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
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	"golang.org/x/image/tiff"

	hwyimage "github.com/ajroetker/go-unresize/hwy/contrib/image"
)

// readImage decodes any registered format.
func readImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}

// writeImage encodes img in the format named by the extension of path.
func writeImage(path string, img image.Image) (err error) {
	encode, err := encoderFor(path)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return encode(f, img)
}

func encoderFor(path string) (func(io.Writer, image.Image) error, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png":
		return png.Encode, nil
	case ".tif", ".tiff":
		return func(w io.Writer, m image.Image) error {
			return tiff.Encode(w, m, &tiff.Options{Compression: tiff.Deflate})
		}, nil
	case ".bmp":
		return func(w io.Writer, m image.Image) error {
			// bmp has no 16-bit mode.
			nrgba := image.NewNRGBA(m.Bounds())
			draw.Draw(nrgba, nrgba.Bounds(), m, m.Bounds().Min, draw.Src)
			return bmp.Encode(w, nrgba)
		}, nil
	default:
		return nil, fmt.Errorf("unsupported output format %q (want .png, .tif, .tiff or .bmp)", ext)
	}
}

// toPlanes converts img to three float planes in [0, 1].
func toPlanes(img image.Image) *hwyimage.Image3[float32] {
	b := img.Bounds()
	rgba := image.NewNRGBA64(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)

	out := hwyimage.NewImage3[float32](b.Dx(), b.Dy())
	for y := range b.Dy() {
		r, g, bl := out.Plane(0).RowSlice(y), out.Plane(1).RowSlice(y), out.Plane(2).RowSlice(y)
		for x := range b.Dx() {
			c := rgba.NRGBA64At(x, y)
			r[x] = float32(c.R) / 0xffff
			g[x] = float32(c.G) / 0xffff
			bl[x] = float32(c.B) / 0xffff
		}
	}
	return out
}

// fromPlanes converts three float planes to an opaque 16-bit image,
// clamping to [0, 1].
func fromPlanes(p *hwyimage.Image3[float32]) *image.NRGBA64 {
	out := image.NewNRGBA64(image.Rect(0, 0, p.Width(), p.Height()))
	for y := range p.Height() {
		r, g, b := p.Plane(0).RowSlice(y), p.Plane(1).RowSlice(y), p.Plane(2).RowSlice(y)
		for x := range p.Width() {
			out.SetNRGBA64(x, y, color.NRGBA64{R: quantize(r[x]), G: quantize(g[x]), B: quantize(b[x]), A: 0xffff})
		}
	}
	return out
}

// quantize maps [0, 1] onto the full 16-bit range. Out-of-range values are
// clamped and NaN maps to 0.
func quantize(v float32) uint16 {
	if math.IsNaN(float64(v)) {
		return 0
	}
	return uint16(math.Round(float64(min(max(v, 0), 1)) * 0xffff))
}

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
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTestPNG(t *testing.T, path string, w, h int) *image.NRGBA {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.SetNRGBA(x, y, color.NRGBA{
				R: uint8(255 * x / (w - 1)),
				G: uint8(255 * y / (h - 1)),
				B: uint8((x * y) % 256),
				A: 255,
			})
		}
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
	return img
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestUpsampleThenRun(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "small.png")
	big := filepath.Join(dir, "big.tif")
	back := filepath.Join(dir, "back.png")
	orig := writeTestPNG(t, in, 24, 16)

	if _, err := execute(t, "upsample", "--in", in, "--out", big, "--width", "60", "--height", "37"); err != nil {
		t.Fatalf("upsample: %v", err)
	}
	if out, err := execute(t, "--workers", "2", "run", "--in", big, "--out", back, "--width", "24", "--height", "16"); err != nil {
		t.Fatalf("run: %v\n%s", err, out)
	}

	img, err := readImage(back)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 24 || b.Dy() != 16 {
		t.Fatalf("recovered size %dx%d, want 24x16", b.Dx(), b.Dy())
	}
	for y := range 16 {
		for x := range 24 {
			r0, g0, b0, _ := orig.At(x, y).RGBA()
			r1, g1, b1, _ := img.At(x, y).RGBA()
			for _, d := range []int{int(r0) - int(r1), int(g0) - int(g1), int(b0) - int(b1)} {
				if d < -256 || d > 256 {
					t.Fatalf("pixel (%d, %d): got %v %v %v, want %v %v %v", x, y, r1, g1, b1, r0, g0, b0)
				}
			}
		}
	}
}

func TestUpsampleNfnt(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "small.png")
	out := filepath.Join(dir, "big.bmp")
	writeTestPNG(t, in, 10, 8)

	if _, err := execute(t, "upsample", "--engine", "nfnt", "--in", in, "--out", out, "--width", "25", "--height", "20"); err != nil {
		t.Fatalf("upsample: %v", err)
	}
	img, err := readImage(out)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 25 || b.Dy() != 20 {
		t.Errorf("nfnt size %dx%d, want 25x20", b.Dx(), b.Dy())
	}

	if _, err := execute(t, "upsample", "--engine", "lanczos", "--in", in, "--out", out, "--width", "25", "--height", "20"); err == nil {
		t.Error("unknown engine accepted")
	}
}

func TestRoundtrip(t *testing.T) {
	in := filepath.Join(t.TempDir(), "in.png")
	writeTestPNG(t, in, 20, 18)

	out, err := execute(t, "roundtrip", "--in", in, "--scale", "2.5")
	if err != nil {
		t.Fatalf("roundtrip: %v", err)
	}
	for _, want := range []string{"20x18 -> 50x45 -> 20x18", "samples: 1,080", "R: max", "B: max"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	if _, err := execute(t, "roundtrip", "--in", in, "--scale", "0.5"); err == nil {
		t.Error("scale below 1 accepted")
	}
}

func TestRunErrors(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.png")
	writeTestPNG(t, in, 16, 16)

	tests := []struct {
		name string
		args []string
	}{
		{"larger output", []string{"run", "--in", in, "--out", filepath.Join(dir, "o.png"), "--width", "32", "--height", "8"}},
		{"unknown extension", []string{"run", "--in", in, "--out", filepath.Join(dir, "o.webp"), "--width", "8", "--height", "8"}},
		{"missing input", []string{"run", "--in", filepath.Join(dir, "none.png"), "--out", filepath.Join(dir, "o.png"), "--width", "8", "--height", "8"}},
		{"missing flag", []string{"run", "--in", in, "--width", "8", "--height", "8"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := execute(t, tt.args...); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestCPU(t *testing.T) {
	out, err := execute(t, "cpu")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "Dispatch level:") {
		t.Errorf("cpu output missing dispatch level:\n%s", out)
	}
}

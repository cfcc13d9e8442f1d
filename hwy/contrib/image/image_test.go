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

package image

import (
	"testing"

	"github.com/ajroetker/go-unresize/hwy"
)

func TestNewImage(t *testing.T) {
	img := NewImage[float32](100, 50)

	if img.Width() != 100 {
		t.Errorf("Width: got %d, want 100", img.Width())
	}
	if img.Height() != 50 {
		t.Errorf("Height: got %d, want 50", img.Height())
	}
	if img.Stride() < 100 || img.Stride()%hwy.MaxVecLanes != 0 {
		t.Errorf("Stride: got %d, want >= 100 and a multiple of %d", img.Stride(), hwy.MaxVecLanes)
	}
	if len(img.Data()) != img.Stride()*50 {
		t.Errorf("len(Data()) = %d, want %d", len(img.Data()), img.Stride()*50)
	}
}

func TestNewImage_ZeroDimensions(t *testing.T) {
	img := NewImage[float32](0, 0)
	if img.Width() != 0 || img.Height() != 0 {
		t.Errorf("Zero dimensions: got %dx%d, want 0x0", img.Width(), img.Height())
	}

	img = NewImage[float32](-1, 10)
	if img.Width() != 0 || img.Height() != 0 || img.Data() != nil {
		t.Errorf("Negative width: got %dx%d, want empty", img.Width(), img.Height())
	}
}

func TestImage_RowAndAt(t *testing.T) {
	img := NewImage[float64](10, 5)

	for x := range 10 {
		img.RowSlice(2)[x] = float64(x)
	}
	for x := range 10 {
		if got := img.At(x, 2); got != float64(x) {
			t.Errorf("At(%d, 2) = %v, want %v", x, got, float64(x))
		}
	}
	if img.At(-1, 0) != 0 || img.At(10, 0) != 0 || img.At(0, 5) != 0 {
		t.Error("At outside the image should return zero")
	}
	if img.Row(-1) != nil || img.Row(5) != nil {
		t.Error("Row outside the image should return nil")
	}
	if len(img.Row(0)) != img.Stride() {
		t.Errorf("len(Row(0)) = %d, want stride %d", len(img.Row(0)), img.Stride())
	}

	img.Set(3, 4, 7)
	img.Set(30, 4, 9) // ignored
	if img.At(3, 4) != 7 {
		t.Errorf("At(3, 4) = %v, want 7", img.At(3, 4))
	}
}

func TestImage_FillLeavesPadding(t *testing.T) {
	img := NewImage[float32](5, 3)
	img.Fill(2)
	for y := range 3 {
		row := img.Row(y)
		for x := range row {
			want := float32(0)
			if x < 5 {
				want = 2
			}
			if row[x] != want {
				t.Fatalf("(%d, %d) = %v, want %v", x, y, row[x], want)
			}
		}
	}
}

func TestImage_Clone(t *testing.T) {
	img := NewImage[float32](4, 4)
	img.Fill(1)
	clone := img.Clone()
	clone.Set(0, 0, 5)

	if img.At(0, 0) != 1 {
		t.Error("Clone shares storage with the original")
	}
	if !SameSize(img, clone) || clone.Stride() != img.Stride() {
		t.Error("Clone changed geometry")
	}
}

func TestImage_Region(t *testing.T) {
	img := NewImage[float32](20, 10)
	for y := range 10 {
		for x := range 20 {
			img.Set(x, y, float32(y*100+x))
		}
	}

	r := img.Region(3, 2, 5, 4)
	if r == nil {
		t.Fatal("Region returned nil")
	}
	if r.Width() != 5 || r.Height() != 4 || r.Stride() != img.Stride() {
		t.Fatalf("Region geometry = %dx%d stride %d", r.Width(), r.Height(), r.Stride())
	}
	if got := r.At(0, 0); got != 203 {
		t.Errorf("Region At(0, 0) = %v, want 203", got)
	}
	if got := r.At(4, 3); got != 507 {
		t.Errorf("Region At(4, 3) = %v, want 507", got)
	}
	if want := 3*img.Stride() + 5; len(r.Data()) != want {
		t.Errorf("len(Region Data()) = %d, want %d", len(r.Data()), want)
	}

	r.Set(1, 1, -1)
	if img.At(4, 3) != -1 {
		t.Error("Region does not share storage")
	}

	for _, bad := range [][4]int{{-1, 0, 2, 2}, {0, 0, 21, 1}, {19, 9, 2, 1}, {0, 0, 0, 3}} {
		if img.Region(bad[0], bad[1], bad[2], bad[3]) != nil {
			t.Errorf("Region(%v) should be nil", bad)
		}
	}
}

func TestImage3(t *testing.T) {
	img := NewImage3[float32](8, 6)
	if img.Width() != 8 || img.Height() != 6 {
		t.Fatalf("Image3 size = %dx%d, want 8x6", img.Width(), img.Height())
	}
	img.Plane(1).Set(2, 2, 3)
	if img.Plane(0).At(2, 2) != 0 || img.Plane(2).At(2, 2) != 0 {
		t.Error("planes share storage")
	}
	if img.Plane(3) != nil || img.Plane(-1) != nil {
		t.Error("Plane out of range should be nil")
	}
}

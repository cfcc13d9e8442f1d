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

import (
	"math"
	"testing"
)

func TestUpsampleConstant(t *testing.T) {
	for _, g := range testGeometries {
		t.Run(geometryName(g.src, g.dst, g.shift), func(t *testing.T) {
			c, err := NewContext(g.src, g.dst, g.shift)
			if err != nil {
				t.Fatalf("NewContext: %v", err)
			}
			in := make([]float32, g.dst)
			for i := range in {
				in[i] = 0.75
			}
			out := make([]float32, g.src)
			c.Upsample(in, out)
			for i, v := range out {
				if math.Abs(float64(v-0.75)) > 1e-6 {
					t.Errorf("out[%d] = %v, want 0.75", i, v)
				}
			}
		})
	}
}

func TestUpsampleRampInterior(t *testing.T) {
	// 8 -> 16: upsampled sample i sits at i/2 - 0.25 in original coordinates.
	c, err := NewContext(16, 8, 0)
	if err != nil {
		t.Fatalf("NewContext: %v", err)
	}
	in := make([]float32, 8)
	for i := range in {
		in[i] = float32(i)
	}
	out := make([]float32, 16)
	c.Upsample(in, out)

	for i := 1; i < 15; i++ {
		want := float64(i)/2 - 0.25
		if math.Abs(float64(out[i])-want) > 1e-6 {
			t.Errorf("out[%d] = %v, want %v", i, out[i], want)
		}
	}
	if out[0] != 0 || out[15] != 7 {
		t.Errorf("edges = (%v, %v), want clamped (0, 7)", out[0], out[15])
	}
}

func TestUpsampleOverwrites(t *testing.T) {
	c, err := NewContext(12, 5, 0)
	if err != nil {
		t.Fatalf("NewContext: %v", err)
	}
	out := make([]float32, 12)
	for i := range out {
		out[i] = 99
	}
	c.Upsample(make([]float32, 5), out)
	for i, v := range out {
		if v != 0 {
			t.Errorf("out[%d] = %v, want 0", i, v)
		}
	}
}

func TestUpsamplePlaneSeparable(t *testing.T) {
	h, err := NewContext(20, 9, 0)
	if err != nil {
		t.Fatalf("NewContext(h): %v", err)
	}
	v, err := NewContext(14, 6, 0.25)
	if err != nil {
		t.Fatalf("NewContext(v): %v", err)
	}

	// Rank-one input: f(x, y) = a(x) * b(y) upsamples to (A_h a)(x) * (A_v b)(y).
	a := make([]float32, 9)
	for i := range a {
		a[i] = float32(i%3) + 0.5
	}
	b := make([]float32, 6)
	for i := range b {
		b[i] = float32(6-i) * 0.25
	}
	const srcStride = 11
	src := make([]float32, srcStride*6)
	for y := range 6 {
		for x := range 9 {
			src[y*srcStride+x] = a[x] * b[y]
		}
	}
	const dstStride = 24
	dst := make([]float32, dstStride*14)
	UpsamplePlane(h, v, src, srcStride, dst, dstStride)

	ua := make([]float32, 20)
	h.Upsample(a, ua)
	ub := make([]float32, 14)
	v.Upsample(b, ub)
	for y := range 14 {
		for x := range 20 {
			want := float64(ua[x]) * float64(ub[y])
			if got := float64(dst[y*dstStride+x]); math.Abs(got-want) > 1e-5 {
				t.Fatalf("dst(%d, %d) = %v, want %v", x, y, got, want)
			}
		}
		for x := 20; x < dstStride; x++ {
			if dst[y*dstStride+x] != 0 {
				t.Fatalf("padding dst(%d, %d) written", x, y)
			}
		}
	}
}

func BenchmarkNewContext(b *testing.B) {
	for b.Loop() {
		if _, err := NewContext(1920, 1280, 0); err != nil {
			b.Fatal(err)
		}
	}
}

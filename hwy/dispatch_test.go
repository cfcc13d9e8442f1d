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

package hwy

import "testing"

func TestDispatchLevelString(t *testing.T) {
	tests := []struct {
		level DispatchLevel
		name  string
		width int
	}{
		{DispatchScalar, "scalar", 0},
		{DispatchSSE2, "sse2", 16},
		{DispatchAVX2, "avx2", 32},
		{DispatchAVX512, "avx512", 64},
		{DispatchNEON, "neon", 16},
		{DispatchLevel(99), "unknown", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.level.String(); got != tt.name {
				t.Errorf("String() = %q, want %q", got, tt.name)
			}
			if got := tt.level.Width(); got != tt.width {
				t.Errorf("Width() = %d, want %d", got, tt.width)
			}
			if got := tt.level.HasVectors(); got != (tt.width > 0) {
				t.Errorf("HasVectors() = %v, want %v", got, tt.width > 0)
			}
		})
	}
}

func TestLanesFor(t *testing.T) {
	if got := LanesFor[float32](DispatchAVX2); got != 8 {
		t.Errorf("LanesFor[float32](avx2) = %d, want 8", got)
	}
	if got := LanesFor[float64](DispatchAVX512); got != 8 {
		t.Errorf("LanesFor[float64](avx512) = %d, want 8", got)
	}
	if got := LanesFor[float32](DispatchAVX512); got != MaxVecLanes {
		t.Errorf("LanesFor[float32](avx512) = %d, want %d", got, MaxVecLanes)
	}
	if got := LanesFor[float32](DispatchScalar); got != 0 {
		t.Errorf("LanesFor[float32](scalar) = %d, want 0", got)
	}
}

func TestNoSimdEnv(t *testing.T) {
	tests := []struct {
		val  string
		want bool
	}{
		{"", false},
		{"1", true},
		{"true", true},
		{"0", false},
		{"false", false},
		{"yes", true},
	}
	for _, tt := range tests {
		t.Run("HWY_NO_SIMD="+tt.val, func(t *testing.T) {
			t.Setenv("HWY_NO_SIMD", tt.val)
			if got := NoSimdEnv(); got != tt.want {
				t.Errorf("NoSimdEnv() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCurrentWidth(t *testing.T) {
	w := CurrentWidth()
	if w < 16 || w > MaxVecBytes {
		t.Errorf("CurrentWidth() = %d, want within [16, %d]", w, MaxVecBytes)
	}
	if CurrentName() != CurrentLevel().String() {
		t.Errorf("CurrentName() = %q, CurrentLevel() = %q", CurrentName(), CurrentLevel())
	}
}

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
	"math"
	"testing"
)

func TestQuantize(t *testing.T) {
	tests := []struct {
		name string
		in   float32
		want uint16
	}{
		{"zero", 0, 0},
		{"one", 1, 0xffff},
		{"half", 0.5, 0x8000},
		{"below range", -0.25, 0},
		{"above range", 1.5, 0xffff},
		{"negative infinity", float32(math.Inf(-1)), 0},
		{"positive infinity", float32(math.Inf(1)), 0xffff},
		{"NaN", float32(math.NaN()), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := quantize(tt.in); got != tt.want {
				t.Errorf("quantize(%v) = %#x, want %#x", tt.in, got, tt.want)
			}
		})
	}
}

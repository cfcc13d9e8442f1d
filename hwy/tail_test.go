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

import (
	"slices"
	"testing"
)

func TestProcessWithTail(t *testing.T) {
	tests := []struct {
		size, lanes int
		full        []int
		tail        [2]int
	}{
		{16, 4, []int{0, 4, 8, 12}, [2]int{-1, 0}},
		{10, 4, []int{0, 4}, [2]int{8, 2}},
		{3, 8, nil, [2]int{0, 3}},
		{5, 0, nil, [2]int{0, 5}},
		{0, 4, nil, [2]int{-1, 0}},
	}
	for _, tt := range tests {
		var full []int
		tail := [2]int{-1, 0}
		ProcessWithTail(tt.size, tt.lanes,
			func(offset int) { full = append(full, offset) },
			func(offset, count int) { tail = [2]int{offset, count} },
		)
		if !slices.Equal(full, tt.full) {
			t.Errorf("size=%d lanes=%d: full blocks %v, want %v", tt.size, tt.lanes, full, tt.full)
		}
		if tail != tt.tail {
			t.Errorf("size=%d lanes=%d: tail %v, want %v", tt.size, tt.lanes, tail, tt.tail)
		}
	}
}

func TestAlignedSize(t *testing.T) {
	tests := []struct{ size, lanes, want int }{
		{0, 16, 0},
		{1, 16, 16},
		{16, 16, 16},
		{17, 16, 32},
		{7, 0, 7},
	}
	for _, tt := range tests {
		if got := AlignedSize(tt.size, tt.lanes); got != tt.want {
			t.Errorf("AlignedSize(%d, %d) = %d, want %d", tt.size, tt.lanes, got, tt.want)
		}
	}
}

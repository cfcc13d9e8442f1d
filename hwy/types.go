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

// Package hwy provides the dispatch core used by the unresize kernels.
//
// Dispatch levels describe the vector unit of the running CPU and the lane
// count it gives each element type. Row kernels (RowOps) are selected per
// level: SIMD builds register archsimd implementations, every other build
// uses the pure Go Base* kernels.
//
//	level := hwy.CurrentLevel()
//	ops := hwy.RowOpsFor(level)
//	ops.MulAdd(acc, row, 0.25)
//
// ProcessWithTail and AlignedSize split index ranges into lane-sized blocks.
package hwy

// Floats is a constraint for floating-point types.
type Floats interface {
	~float32 | ~float64
}

// MaxVecBytes is the widest register supported (AVX-512).
const MaxVecBytes = 64

// MaxVecLanes is the largest lane count of any level (float32 at 512 bits).
const MaxVecLanes = MaxVecBytes / 4

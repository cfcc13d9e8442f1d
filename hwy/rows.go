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

// RowOps is a set of float32 row kernels for one dispatch level. See the
// Base* functions in rows_base.go for the semantics of each field.
//
// Kernels for a vector level handle whole vectors first and finish the row
// with scalar code, so a given element always takes the same path as long as
// rows are split at multiples of the level's lane count.
type RowOps struct {
	Scale       func(dst, src []float32, a float32)
	MulAdd      func(dst, x []float32, a float32)
	MulAdd4     func(dst, x0, x1, x2, x3 []float32, a0, a1, a2, a3 float32)
	SubMul      func(dst, x []float32, a float32)
	SubMulScale func(dst, x []float32, a, s float32)
}

var baseRowOps = RowOps{
	Scale:       BaseScaleRow[float32],
	MulAdd:      BaseMulAddRow[float32],
	MulAdd4:     BaseMulAdd4Row[float32],
	SubMul:      BaseSubMulRow[float32],
	SubMulScale: BaseSubMulScaleRow[float32],
}

// rowOps holds the kernels registered by SIMD builds, keyed by the level
// they serve. It is only written from init.
var rowOps = map[DispatchLevel]RowOps{}

// RowOpsFor returns the row kernels for level d, falling back to the pure Go
// kernels when no SIMD implementation is registered for it on this CPU.
func RowOpsFor(d DispatchLevel) RowOps {
	if ops, ok := rowOps[d]; ok {
		return ops
	}
	return baseRowOps
}

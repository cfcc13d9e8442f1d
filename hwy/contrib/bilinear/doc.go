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

// Package bilinear builds the per-axis coefficient contexts consumed by the
// unresize filter.
//
// # Model
//
// Bilinear upsampling of n samples to m samples is a linear map y = A x with
// A of shape [m, n]; each row of A has at most two adjacent nonzeros. Given
// y, the least-squares original solves the normal equations
//
//	(AᵀA) x = Aᵀ y
//
// AᵀA is symmetric, positive definite and tridiagonal, so it is factored
// once (Thomas algorithm) and each scanline is solved by one forward and one
// backward substitution.
//
// # Context
//
// A Context stores, for one axis:
//   - the banded Aᵀ: RowSize() taps per row at RowOffset(j), RowStride() apart
//   - Correction(): sub-diagonal of AᵀA (lu_c)
//   - Lower(): reciprocal pivots (lu_l)
//   - Upper(): normalized super-diagonal (lu_u)
//
// Forward substitution is z[j] = (r[j] - lu_c[j]*z[j-1]) * lu_l[j], backward
// substitution is x[j] = z[j] - lu_u[j]*x[j+1].
//
// # Example Usage
//
//	h, err := bilinear.NewContext(1920, 1280, 0) // 1280 -> 1920 upscale
//	if err != nil {
//	    return err
//	}
//	up := make([]float32, h.SrcExtent())
//	h.Upsample(row, up) // same weights the unresize filter inverts
//
// External builders can supply their own coefficients through FromParts,
// which checks every invariant the kernels rely on.
package bilinear

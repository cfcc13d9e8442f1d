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

// This file provides the pure Go row kernels. Each kernel walks n =
// len(dst) elements and panics if a source row is shorter. The loops reslice
// their inputs to n up front so the compiler can drop bounds checks.

// BaseScaleRow sets dst[j] = a*src[j]. dst and src may be the same slice.
func BaseScaleRow[T Floats](dst, src []T, a T) {
	src = src[:len(dst)]
	for j := range dst {
		dst[j] = a * src[j]
	}
}

// BaseMulAddRow accumulates dst[j] += a*x[j].
func BaseMulAddRow[T Floats](dst, x []T, a T) {
	x = x[:len(dst)]
	for j := range dst {
		dst[j] += a * x[j]
	}
}

// BaseMulAdd4Row accumulates four scaled rows in order,
// dst[j] += a0*x0[j], then a1*x1[j], a2*x2[j] and a3*x3[j].
func BaseMulAdd4Row[T Floats](dst, x0, x1, x2, x3 []T, a0, a1, a2, a3 T) {
	x0 = x0[:len(dst)]
	x1 = x1[:len(dst)]
	x2 = x2[:len(dst)]
	x3 = x3[:len(dst)]
	for j := range dst {
		d := dst[j]
		d += a0 * x0[j]
		d += a1 * x1[j]
		d += a2 * x2[j]
		d += a3 * x3[j]
		dst[j] = d
	}
}

// BaseSubMulRow computes dst[j] -= a*x[j].
func BaseSubMulRow[T Floats](dst, x []T, a T) {
	x = x[:len(dst)]
	for j := range dst {
		dst[j] -= a * x[j]
	}
}

// BaseSubMulScaleRow computes dst[j] = (dst[j] - a*x[j]) * s.
func BaseSubMulScaleRow[T Floats](dst, x []T, a, s T) {
	x = x[:len(dst)]
	for j := range dst {
		dst[j] = (dst[j] - a*x[j]) * s
	}
}

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

//go:build amd64 && goexperiment.simd

package hwy

import "simd/archsimd"

// AVX2 row kernels on Float32x8. They also serve the AVX-512 level: its
// rows are split at multiples of 16, which are multiples of 8 as well.

func init() {
	if NoSimdEnv() || !archsimd.X86.AVX2() {
		return
	}
	ops := RowOps{
		Scale:       scaleRowAVX2,
		MulAdd:      mulAddRowAVX2,
		MulAdd4:     mulAdd4RowAVX2,
		SubMul:      subMulRowAVX2,
		SubMulScale: subMulScaleRowAVX2,
	}
	rowOps[DispatchAVX2] = ops
	rowOps[DispatchAVX512] = ops
}

func scaleRowAVX2(dst, src []float32, a float32) {
	n := len(dst)
	src = src[:n]
	av := archsimd.BroadcastFloat32x8(a)
	j := 0
	for ; j+8 <= n; j += 8 {
		av.Mul(archsimd.LoadFloat32x8Slice(src[j:])).StoreSlice(dst[j:])
	}
	for ; j < n; j++ {
		dst[j] = a * src[j]
	}
}

func mulAddRowAVX2(dst, x []float32, a float32) {
	n := len(dst)
	x = x[:n]
	av := archsimd.BroadcastFloat32x8(a)
	j := 0
	for ; j+8 <= n; j += 8 {
		d := archsimd.LoadFloat32x8Slice(dst[j:])
		av.MulAdd(archsimd.LoadFloat32x8Slice(x[j:]), d).StoreSlice(dst[j:])
	}
	for ; j < n; j++ {
		dst[j] += a * x[j]
	}
}

func mulAdd4RowAVX2(dst, x0, x1, x2, x3 []float32, a0, a1, a2, a3 float32) {
	n := len(dst)
	x0 = x0[:n]
	x1 = x1[:n]
	x2 = x2[:n]
	x3 = x3[:n]
	av0 := archsimd.BroadcastFloat32x8(a0)
	av1 := archsimd.BroadcastFloat32x8(a1)
	av2 := archsimd.BroadcastFloat32x8(a2)
	av3 := archsimd.BroadcastFloat32x8(a3)
	j := 0
	for ; j+8 <= n; j += 8 {
		d := archsimd.LoadFloat32x8Slice(dst[j:])
		d = av0.MulAdd(archsimd.LoadFloat32x8Slice(x0[j:]), d)
		d = av1.MulAdd(archsimd.LoadFloat32x8Slice(x1[j:]), d)
		d = av2.MulAdd(archsimd.LoadFloat32x8Slice(x2[j:]), d)
		d = av3.MulAdd(archsimd.LoadFloat32x8Slice(x3[j:]), d)
		d.StoreSlice(dst[j:])
	}
	for ; j < n; j++ {
		d := dst[j]
		d += a0 * x0[j]
		d += a1 * x1[j]
		d += a2 * x2[j]
		d += a3 * x3[j]
		dst[j] = d
	}
}

func subMulRowAVX2(dst, x []float32, a float32) {
	n := len(dst)
	x = x[:n]
	av := archsimd.BroadcastFloat32x8(a)
	j := 0
	for ; j+8 <= n; j += 8 {
		d := archsimd.LoadFloat32x8Slice(dst[j:])
		d.Sub(av.Mul(archsimd.LoadFloat32x8Slice(x[j:]))).StoreSlice(dst[j:])
	}
	for ; j < n; j++ {
		dst[j] -= a * x[j]
	}
}

func subMulScaleRowAVX2(dst, x []float32, a, s float32) {
	n := len(dst)
	x = x[:n]
	av := archsimd.BroadcastFloat32x8(a)
	sv := archsimd.BroadcastFloat32x8(s)
	j := 0
	for ; j+8 <= n; j += 8 {
		d := archsimd.LoadFloat32x8Slice(dst[j:])
		d.Sub(av.Mul(archsimd.LoadFloat32x8Slice(x[j:]))).Mul(sv).StoreSlice(dst[j:])
	}
	for ; j < n; j++ {
		dst[j] = (dst[j] - a*x[j]) * s
	}
}

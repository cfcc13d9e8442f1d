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

// Package unresize recovers an image from its bilinear upsampling.
//
// A bilinear upsample from n to m samples (m >= n) along one axis is a
// linear map y = A x whose m x n matrix has at most two adjacent nonzeros
// per row. Unresize solves the least-squares problem min |A x - y|, whose
// normal equations (AᵀA) x = Aᵀy are tridiagonal. The bilinear package
// precomputes Aᵀ as a band and the LU factors of AᵀA, so each scanline costs
// one banded product, one forward and one backward substitution.
//
// The 2D operation is separable and runs as two passes: ApplyHorizontal
// turns srcWidth x srcHeight into dstWidth x srcHeight, and ApplyVertical
// turns that into dstWidth x dstHeight. Scanlines are independent within a
// pass; inside a scanline the substitutions are strictly sequential.
//
// # Backends
//
// New returns the generic backend unless Options.Optimize is set, in which
// case it returns the lane-parallel backend for Options.Level or an error
// wrapping ErrUnsupported. The platform level is never detected here:
//
//	f, err := unresize.New(srcW, srcH, dstW, dstH, 0, 0, unresize.Options{
//	    Optimize: true,
//	    Level:    hwy.CurrentLevel(),
//	})
//	if errors.Is(err, unresize.ErrUnsupported) {
//	    f, err = unresize.New(srcW, srcH, dstW, dstH, 0, 0, unresize.Options{})
//	}
//
// # Planes
//
// Unresizer wraps a Filter for image.Image planes and splits both passes
// across a workerpool.Pool. Config.Fallback performs the retry above.
//
//	pool := workerpool.New(0)
//	defer pool.Close()
//	u, err := unresize.NewUnresizer(unresize.Config{
//	    SrcWidth: 1920, SrcHeight: 1080,
//	    DstWidth: 960, DstHeight: 540,
//	    Optimize: true, Level: hwy.CurrentLevel(), Fallback: true,
//	}, pool)
//	err = u.Process(src, dst)
package unresize

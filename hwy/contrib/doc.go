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

// Package contrib groups the image-resampling packages built on hwy.
//
// # Subpackages
//
//   - bilinear: bilinear weight bands and the LU factorization of their
//     normal equations, plus the matching exact upsampler
//   - unresize: scanline kernels and backends that invert a bilinear upsample
//   - image: stride-padded float planes and sub-region views
//   - workerpool: persistent pool for splitting planes into scanline ranges
//
// # Round trip
//
//	import (
//	    "github.com/ajroetker/go-unresize/hwy/contrib/bilinear"
//	    "github.com/ajroetker/go-unresize/hwy/contrib/unresize"
//	)
//
//	h, _ := bilinear.NewContext(bigW, smallW, 0)
//	v, _ := bilinear.NewContext(bigH, smallH, 0)
//	bilinear.UpsamplePlane(h, v, small, smallW, big, bigW)
//
//	f, _ := unresize.NewFilter(h, v, unresize.Options{})
//	f.ApplyHorizontal(big, mid, tmp, bigW, bigH, bigW, smallW)
//	f.ApplyVertical(mid, small, tmp, smallW, bigH, smallW, smallW)
package contrib

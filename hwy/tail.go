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

// ProcessWithTail splits [0, size) into blocks of lanes elements.
//
// It calls:
//   - fullFn(offset) for each full block (offset is the starting index)
//   - tailFn(offset, count) once for the remainder if size is not a multiple of lanes
//
// Example:
//
//	lanes := hwy.LanesFor[float32](hwy.CurrentLevel())
//	ops := hwy.RowOpsFor(hwy.CurrentLevel())
//	hwy.ProcessWithTail(len(data), lanes,
//	    func(offset int) {
//	        ops.Scale(output[offset:offset+lanes], data[offset:], 2)
//	    },
//	    func(offset, count int) {
//	        for i := offset; i < offset+count; i++ {
//	            output[i] = data[i] + data[i]
//	        }
//	    },
//	)
//
// lanes <= 0 sends the whole range to tailFn.
func ProcessWithTail(size, lanes int, fullFn func(offset int), tailFn func(offset, count int)) {
	if size <= 0 {
		return
	}
	if lanes <= 0 {
		tailFn(0, size)
		return
	}

	full := size - size%lanes
	for offset := 0; offset < full; offset += lanes {
		fullFn(offset)
	}
	if full < size {
		tailFn(full, size-full)
	}
}

// AlignedSize rounds size up to the next multiple of lanes.
// This is useful for padding rows that will be processed in lane blocks.
func AlignedSize(size, lanes int) int {
	if lanes <= 0 {
		return size
	}
	return (size + lanes - 1) / lanes * lanes
}

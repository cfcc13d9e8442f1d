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

// Package cpuinfo reports the CPU features that drive backend selection.
package cpuinfo

import (
	"fmt"
	"io"
	"runtime"

	"golang.org/x/sys/cpu"

	"github.com/ajroetker/go-unresize/hwy"
)

// Feature is one CPU capability flag.
type Feature struct {
	Name    string
	Enabled bool
	Note    string
}

// Features returns the capability flags relevant to goarch, or nil for
// architectures without vector dispatch.
func Features(goarch string) []Feature {
	switch goarch {
	case "amd64":
		return []Feature{
			{"HasSSE2", cpu.X86.HasSSE2, "x86-64 baseline"},
			{"HasAVX", cpu.X86.HasAVX, ""},
			{"HasAVX2", cpu.X86.HasAVX2, "256-bit lanes"},
			{"HasFMA", cpu.X86.HasFMA, "required with AVX2"},
			{"HasAVX512F", cpu.X86.HasAVX512F, "512-bit lanes"},
			{"HasAVX512VL", cpu.X86.HasAVX512VL, "required with AVX512F"},
		}
	case "arm64":
		return []Feature{
			{"HasASIMD", cpu.ARM64.HasASIMD, "NEON baseline"},
			{"HasFP", cpu.ARM64.HasFP, "floating point"},
			{"HasSVE", cpu.ARM64.HasSVE, "not used"},
		}
	default:
		return nil
	}
}

// Backend names the unresize backend a caller passing level with
// optimization enabled gets for a large enough image.
func Backend(level hwy.DispatchLevel) string {
	if level.HasVectors() {
		return "optimized/" + level.String()
	}
	return "generic"
}

// Write prints the runtime, dispatch level and feature flags to w.
func Write(w io.Writer) error {
	level := hwy.CurrentLevel()
	lines := []string{
		fmt.Sprintf("GOOS: %s", runtime.GOOS),
		fmt.Sprintf("GOARCH: %s", runtime.GOARCH),
		fmt.Sprintf("NumCPU: %d", runtime.NumCPU()),
		"",
		fmt.Sprintf("Dispatch level: %s", level),
		fmt.Sprintf("Vector width: %d bytes", level.Width()),
		fmt.Sprintf("float32 lanes: %d", hwy.LanesFor[float32](level)),
		fmt.Sprintf("Backend: %s", Backend(level)),
		fmt.Sprintf("HWY_NO_SIMD: %v", hwy.NoSimdEnv()),
	}
	if features := Features(runtime.GOARCH); len(features) > 0 {
		lines = append(lines, "", "=== golang.org/x/sys/cpu ===")
		for _, f := range features {
			line := fmt.Sprintf("  %-12s %v", f.Name+":", f.Enabled)
			if f.Note != "" {
				line += " (" + f.Note + ")"
			}
			lines = append(lines, line)
		}
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

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

// Command unresize recovers images from their bilinear upsampling.
//
// Usage:
//
//	unresize run --in big.png --out small.png --width 640 --height 480
//	unresize upsample --in small.png --out big.tif --width 1280 --height 960
//	unresize roundtrip --in photo.png --scale 2.5
//	unresize cpu
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-unresize/hwy/contrib/unresize"
	"github.com/ajroetker/go-unresize/hwy/contrib/workerpool"
)

// globalFlags are shared by every subcommand.
type globalFlags struct {
	verbose bool
	workers int
}

func newRootCmd() *cobra.Command {
	g := &globalFlags{}
	root := &cobra.Command{
		Use:           "unresize",
		Short:         "Invert bilinear upsampling of images",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if g.verbose {
				unresize.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelDebug})))
			}
		},
	}
	root.PersistentFlags().BoolVarP(&g.verbose, "verbose", "v", false, "log backend selection to stderr")
	root.PersistentFlags().IntVar(&g.workers, "workers", 0, "worker goroutines (0 uses GOMAXPROCS)")

	root.AddCommand(
		newRunCmd(g),
		newUpsampleCmd(),
		newRoundtripCmd(g),
		newCPUCmd(),
	)
	return root
}

// pool returns a worker pool sized by --workers. The caller closes it.
func (g *globalFlags) pool() *workerpool.Pool {
	return workerpool.New(g.workers)
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "unresize:", err)
		os.Exit(1)
	}
}

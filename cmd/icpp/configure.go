/*
Copyright © 2025 LiamStanDev <liamstandev@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/

package main

import (
	"github.com/LiamStanDev/icpp/cli"
	"github.com/LiamStanDev/icpp/cmake"
	"github.com/LiamStanDev/icpp/config"
	"github.com/LiamStanDev/icpp/logging"
	"github.com/LiamStanDev/icpp/project"
	"github.com/spf13/cobra"
)

var configGenerator string

var configCmd = &cobra.Command{
	Use:   "config [debug|release]",
	Short: "Configure the CMake build tree",
	Long: `Configure the CMake build tree for the project in the current
directory. Any existing build/ directory is removed first, so this
always produces a fresh configuration.

The build type can be given as an argument; without one the command
asks interactively. The generator defaults to the configured one.

Examples:
  # Configure interactively
  icpp config

  # Configure a debug build without prompting for the build type
  icpp config debug

  # Configure with an explicit generator
  icpp config release -G "Unix Makefiles"`,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().StringVarP(&configGenerator, "generator", "G", "", "CMake generator (e.g. Ninja, Unix Makefiles)")

	registerConfigCompletions(configCmd)
}

func runConfig(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	if err := cli.NewValidator().ValidateConfigArgs(args); err != nil {
		return err
	}

	dir, err := workingDir()
	if err != nil {
		return err
	}
	if err := project.RequireScaffolded(dir); err != nil {
		return err
	}

	opts := cli.ConfigOptions{Generator: configGenerator}
	if len(args) == 1 {
		opts.BuildType = args[0]
	}

	cfg := configFromContext(cmd)
	if cfg == nil {
		cfg = config.Default()
	}

	prompter := cli.NewPrompter(cmd.InOrStdin(), cmd.OutOrStdout())
	settings, err := prompter.CollectBuildSettings(ctx, opts, cfg.Defaults)
	if err != nil {
		return err
	}

	// Stale caches cause more confusion than a re-run costs.
	if err := cmake.CleanBuildDir(dir); err != nil {
		return err
	}

	logging.InfoContext(ctx, "Configuring %s build with %s", settings.BuildType, settings.Generator)
	return cmake.Configure(ctx, runnerFor(cmd), dir, settings.Generator, settings.BuildType)
}

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
	"github.com/LiamStanDev/icpp/cmake"
	"github.com/LiamStanDev/icpp/project"
	"github.com/spf13/cobra"
)

var testCmd = &cobra.Command{
	Use:   "test",
	Short: "Build and run the test suite",
	Long: `Compile the project and run its CTest suite with failure output.

The project must have been configured first with 'icpp config'.`,
	Args: cobra.NoArgs,
	RunE: runTest,
}

func runTest(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	dir, err := workingDir()
	if err != nil {
		return err
	}
	if err := project.RequireConfigured(dir); err != nil {
		return err
	}

	runner := runnerFor(cmd)
	if err := cmake.Build(ctx, runner, dir); err != nil {
		return err
	}
	return cmake.RunTests(ctx, runner, dir)
}

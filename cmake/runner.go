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

// Package cmake shells out to the CMake toolchain for the configure,
// build, test, and install steps, and probes the external binaries icpp
// depends on.
package cmake

import (
	"context"
	"io"
	"os"
	"os/exec"
)

// Runner abstracts external tool invocation so command logic can be
// exercised in tests without real build tools on PATH.
type Runner interface {
	// Run executes tool with args in dir and blocks until the tool
	// exits. The tool's exit error is returned unmodified so callers
	// can propagate its exit code.
	Run(ctx context.Context, dir, tool string, args ...string) error
}

// ExecRunner invokes tools as real subprocesses, streaming their
// output to the configured writers.
type ExecRunner struct {
	// Stdout receives the tool's standard output. Defaults to the
	// process's own stdout when nil.
	Stdout io.Writer

	// Stderr receives the tool's standard error. Defaults to the
	// process's own stderr when nil.
	Stderr io.Writer
}

// NewExecRunner creates a runner wired to the process's own streams.
func NewExecRunner() *ExecRunner {
	return &ExecRunner{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// Run executes tool with args in dir. Output streams as the tool
// produces it; a non-zero exit surfaces as an *exec.ExitError.
func (r *ExecRunner) Run(ctx context.Context, dir, tool string, args ...string) error {
	cmd := exec.CommandContext(ctx, tool, args...)
	cmd.Dir = dir
	cmd.Stdout = r.stdout()
	cmd.Stderr = r.stderr()
	return cmd.Run()
}

func (r *ExecRunner) stdout() io.Writer {
	if r.Stdout != nil {
		return r.Stdout
	}
	return os.Stdout
}

func (r *ExecRunner) stderr() io.Writer {
	if r.Stderr != nil {
		return r.Stderr
	}
	return os.Stderr
}

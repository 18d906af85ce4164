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
	"errors"
	"strings"
	"testing"
)

func TestInstallRequiresScaffoldedProject(t *testing.T) {
	resetCommandState(t)
	runner := &fakeRunner{}
	swapRunner(t, runner)
	t.Chdir(t.TempDir())

	_, err := executeCommand(t, "", "install")
	if err == nil {
		t.Fatal("expected error outside a scaffolded project")
	}
	if !strings.Contains(err.Error(), "no CMakeLists.txt here; run 'icpp init' to scaffold a project first") {
		t.Errorf("error should point at init, got: %v", err)
	}
	if len(runner.calls) != 0 {
		t.Errorf("cmake must not run, recorded %d calls", len(runner.calls))
	}
}

func TestInstallRefusesConfiguredTree(t *testing.T) {
	resetCommandState(t)
	runner := &fakeRunner{}
	swapRunner(t, runner)
	t.Chdir(configuredDir(t))

	_, err := executeCommand(t, "", "install")
	if err == nil {
		t.Fatal("expected error while a build cache is present")
	}
	if !strings.Contains(err.Error(), "build cache already present; run 'icpp config' first") {
		t.Errorf("error should point at config, got: %v", err)
	}
	if len(runner.calls) != 0 {
		t.Errorf("cmake must not run, recorded %d calls", len(runner.calls))
	}
}

func TestInstallRunsCMakeInstall(t *testing.T) {
	resetCommandState(t)
	runner := &fakeRunner{}
	swapRunner(t, runner)

	dir := scaffoldedDir(t)
	t.Chdir(dir)

	if _, err := executeCommand(t, "", "install"); err != nil {
		t.Fatalf("install unexpected error: %v", err)
	}

	if len(runner.calls) != 1 {
		t.Fatalf("expected exactly one invocation, got %d", len(runner.calls))
	}
	call := runner.calls[0]
	if call.tool != "cmake" {
		t.Errorf("tool = %q, want %q", call.tool, "cmake")
	}
	if got := strings.Join(call.args, " "); got != "--install build" {
		t.Errorf("cmake args = %q, want %q", got, "--install build")
	}
	if !sameDir(t, call.dir, dir) {
		t.Errorf("cmake ran in %q, want %q", call.dir, dir)
	}
}

func TestInstallPropagatesRunnerFailure(t *testing.T) {
	resetCommandState(t)
	installErr := errors.New("cmake exited with status 1")
	swapRunner(t, &fakeRunner{errs: map[string]error{"cmake": installErr}})
	t.Chdir(scaffoldedDir(t))

	_, err := executeCommand(t, "", "install")
	if !errors.Is(err, installErr) {
		t.Errorf("install should propagate the runner error, got: %v", err)
	}
}

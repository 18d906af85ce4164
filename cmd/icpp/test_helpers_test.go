/*
Copyright (c) 2025 LiamStanDev <liamstandev@gmail.com>

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
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/LiamStanDev/icpp/cli"
	"github.com/LiamStanDev/icpp/cmake"
	"github.com/LiamStanDev/icpp/project"
)

// runnerCall records one external tool invocation.
type runnerCall struct {
	dir  string
	tool string
	args []string
}

// fakeRunner records invocations instead of spawning processes. Errors
// can be injected per tool name.
type fakeRunner struct {
	calls []runnerCall
	errs  map[string]error
}

func (f *fakeRunner) Run(_ context.Context, dir, tool string, args ...string) error {
	f.calls = append(f.calls, runnerCall{dir: dir, tool: tool, args: args})
	if f.errs != nil {
		return f.errs[tool]
	}
	return nil
}

// swapRunner injects r as the command runner for the duration of the test.
func swapRunner(t *testing.T, r cmake.Runner) {
	t.Helper()
	old := commandRunner
	commandRunner = r
	t.Cleanup(func() { commandRunner = old })
}

// fakeToolChecker satisfies dependencyChecker without touching PATH.
// All tools are reported found unless listed in missing; versions and
// outdated flags can be injected per tool.
type fakeToolChecker struct {
	ensureErr error
	missing   map[string]bool
	versions  map[string]string
	outdated  map[string]bool
}

func (f *fakeToolChecker) Ensure(context.Context, []string) error {
	return f.ensureErr
}

func (f *fakeToolChecker) ProbeAll(_ context.Context, reqs []cmake.ToolRequirement) []cmake.ToolStatus {
	statuses := make([]cmake.ToolStatus, len(reqs))
	for i, req := range reqs {
		st := cmake.ToolStatus{Name: req.Name, Required: req.Required, MeetsMinimum: true}
		if !f.missing[req.Name] {
			st.Found = true
			st.Path = "/usr/bin/" + req.Name
			st.Version = f.versions[req.Name]
			if f.outdated[req.Name] {
				st.MeetsMinimum = false
			}
		}
		statuses[i] = st
	}
	return statuses
}

// swapChecker injects c as the dependency checker for the duration of
// the test.
func swapChecker(t *testing.T, c dependencyChecker) {
	t.Helper()
	old := newDependencyChecker
	newDependencyChecker = func() dependencyChecker { return c }
	t.Cleanup(func() { newDependencyChecker = old })
}

// resetCommandState redirects config discovery to a throwaway home and
// restores package-level flag state mutated by previous Execute runs.
func resetCommandState(t *testing.T) {
	t.Helper()

	tmp := t.TempDir()
	configHome := filepath.Join(tmp, "config")
	home := filepath.Join(tmp, "home")
	for _, dir := range []string{configHome, home} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			t.Fatalf("mkdir %s: %v", dir, err)
		}
	}
	t.Setenv("XDG_CONFIG_HOME", configHome)
	t.Setenv("HOME", home)

	reset := func() {
		initOpts = cli.InitOptions{Output: "."}
		configGenerator = ""
		settingsForce = false
		cfgFile = ""
	}
	reset()
	t.Cleanup(reset)
}

// executeCommand runs the root command with the given args and scripted
// stdin, capturing combined stdout and stderr.
func executeCommand(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(os.Stdout)
		rootCmd.SetErr(os.Stderr)
		rootCmd.SetIn(os.Stdin)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return buf.String(), err
}

// scaffoldedDir creates a directory holding just a root descriptor.
func scaffoldedDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	writeTestFile(t, filepath.Join(dir, project.DescriptorFile), "cmake_minimum_required(VERSION 3.25)\n")
	return dir
}

// configuredDir creates a scaffolded directory with a build cache.
func configuredDir(t *testing.T) string {
	t.Helper()
	dir := scaffoldedDir(t)
	if err := os.MkdirAll(filepath.Join(dir, project.BuildDir), 0755); err != nil {
		t.Fatalf("mkdir build: %v", err)
	}
	writeTestFile(t, filepath.Join(dir, project.BuildDir, project.CacheFile), "# cache\n")
	return dir
}

func writeTestFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

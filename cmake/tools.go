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

package cmake

import (
	"context"
	"os/exec"
	"strings"

	"github.com/Masterminds/semver/v3"
	"golang.org/x/sync/errgroup"

	icpperrors "github.com/LiamStanDev/icpp/errors"
	"github.com/LiamStanDev/icpp/logging"
)

// RequiredTools lists the binaries init refuses to run without.
var RequiredTools = []string{"cmake", "git", "ninja"}

// OptionalTools lists helper binaries the generated project can take
// advantage of, but nothing strictly requires.
var OptionalTools = []string{"clang-format", "clang-tidy", "cppcheck"}

// ToolChecker resolves external binaries on PATH and reports on their
// versions.
type ToolChecker struct {
	lookPath     func(name string) (string, error)
	versionProbe func(ctx context.Context, tool string) (string, error)
}

// NewToolChecker creates a checker backed by the real PATH lookup.
func NewToolChecker() *ToolChecker {
	return &ToolChecker{
		lookPath:     exec.LookPath,
		versionProbe: runVersionProbe,
	}
}

func runVersionProbe(ctx context.Context, tool string) (string, error) {
	out, err := exec.CommandContext(ctx, tool, "--version").Output()
	return string(out), err
}

// Check reports whether tool resolves on PATH.
func (tc *ToolChecker) Check(tool string) error {
	if _, err := tc.lookPath(tool); err != nil {
		return icpperrors.MissingTool(tool)
	}
	return nil
}

// Ensure verifies each tool in order, failing on the first one
// missing. Later tools are not consulted after a failure.
func (tc *ToolChecker) Ensure(ctx context.Context, tools []string) error {
	for _, tool := range tools {
		if err := tc.Check(tool); err != nil {
			return err
		}
		logging.DebugContext(ctx, "Found required tool: %s", tool)
	}
	return nil
}

// A ToolRequirement names a binary the doctor report covers.
type ToolRequirement struct {
	// Name is the binary to resolve on PATH.
	Name string
	// Required marks tools init refuses to run without.
	Required bool
	// Minimum is the lowest acceptable version; empty skips the check.
	Minimum string
}

// A ToolStatus is the probe result for a single binary.
type ToolStatus struct {
	Name     string
	Required bool
	Found    bool
	Path     string
	Version  string
	// MeetsMinimum is false only when the requirement carried a
	// minimum and the probed version is older.
	MeetsMinimum bool
}

// DefaultRequirements returns the doctor's probe list: the required
// tools followed by the optional ones. minCMake sets the minimum
// version reported for cmake, normally the configured default for new
// projects.
func DefaultRequirements(minCMake string) []ToolRequirement {
	reqs := make([]ToolRequirement, 0, len(RequiredTools)+len(OptionalTools))
	for _, tool := range RequiredTools {
		req := ToolRequirement{Name: tool, Required: true}
		if tool == "cmake" {
			req.Minimum = minCMake
		}
		reqs = append(reqs, req)
	}
	for _, tool := range OptionalTools {
		reqs = append(reqs, ToolRequirement{Name: tool})
	}
	return reqs
}

// Probe resolves a single requirement and, when the binary is present,
// asks it for its version.
func (tc *ToolChecker) Probe(ctx context.Context, req ToolRequirement) ToolStatus {
	status := ToolStatus{Name: req.Name, Required: req.Required, MeetsMinimum: true}

	path, err := tc.lookPath(req.Name)
	if err != nil {
		return status
	}
	status.Found = true
	status.Path = path

	out, err := tc.versionProbe(ctx, req.Name)
	if err != nil {
		logging.DebugContext(ctx, "Could not probe %s version: %v", req.Name, err)
		return status
	}
	status.Version = parseVersion(out)
	if req.Minimum != "" && status.Version != "" {
		status.MeetsMinimum = meetsMinimum(status.Version, req.Minimum)
	}
	return status
}

// ProbeAll probes every requirement concurrently. Results keep the
// order of reqs; each goroutine writes only its own index.
func (tc *ToolChecker) ProbeAll(ctx context.Context, reqs []ToolRequirement) []ToolStatus {
	statuses := make([]ToolStatus, len(reqs))

	g, ctx := errgroup.WithContext(ctx)
	for i, req := range reqs {
		g.Go(func() error {
			statuses[i] = tc.Probe(ctx, req)
			return nil
		})
	}
	// Probes only report status, they never fail the group.
	_ = g.Wait()

	return statuses
}

// parseVersion extracts the first semantic version from freeform
// --version output, e.g. "cmake version 3.28.3" yields "3.28.3".
func parseVersion(output string) string {
	line, _, _ := strings.Cut(output, "\n")
	for _, field := range strings.Fields(line) {
		v, err := semver.NewVersion(strings.TrimPrefix(field, "v"))
		if err == nil {
			return v.String()
		}
	}
	return ""
}

// meetsMinimum compares two version strings, treating unparseable
// input as acceptable so the report never flags what it cannot read.
func meetsMinimum(version, minimum string) bool {
	v, err := semver.NewVersion(version)
	if err != nil {
		return true
	}
	m, err := semver.NewVersion(minimum)
	if err != nil {
		return true
	}
	return !v.LessThan(m)
}

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

package project

import (
	"os"
	"path/filepath"

	icpperrors "github.com/LiamStanDev/icpp/errors"
)

// On-disk markers that encode project state. No state is held in
// memory between invocations; the filesystem is the source of truth.
const (
	// DescriptorFile is the root build descriptor written by init.
	DescriptorFile = "CMakeLists.txt"

	// BuildDir is the out-of-source build directory created by the
	// configure step.
	BuildDir = "build"

	// CacheFile is the marker CMake writes into the build directory
	// once a configure step has completed.
	CacheFile = "CMakeCache.txt"
)

// A State describes how far a project directory has progressed.
type State int

const (
	// StateNone indicates the directory holds no project descriptor.
	StateNone State = iota
	// StateScaffolded indicates a descriptor exists but no configure
	// step has produced a build cache yet.
	StateScaffolded
	// StateConfigured indicates a build cache from a prior configure
	// step is present.
	StateConfigured
)

// String returns a human-readable representation of the project state.
func (s State) String() string {
	switch s {
	case StateNone:
		return "none"
	case StateScaffolded:
		return "scaffolded"
	case StateConfigured:
		return "configured"
	default:
		return "unknown"
	}
}

// Detect inspects dir and reports its project state based on the
// marker files alone.
func Detect(dir string) State {
	if !fileExists(filepath.Join(dir, DescriptorFile)) {
		return StateNone
	}
	if fileExists(filepath.Join(dir, BuildDir, CacheFile)) {
		return StateConfigured
	}
	return StateScaffolded
}

// HasDescriptor reports whether dir holds a root build descriptor.
func HasDescriptor(dir string) bool {
	return Detect(dir) != StateNone
}

// HasBuildCache reports whether dir holds a completed configure step.
func HasBuildCache(dir string) bool {
	return Detect(dir) == StateConfigured
}

// RequireScaffolded returns an error unless dir holds a project
// descriptor. Commands that only need a scaffolded tree call this.
func RequireScaffolded(dir string) error {
	if Detect(dir) == StateNone {
		return icpperrors.PreconditionUnmet("no CMakeLists.txt here; run 'icpp init' to scaffold a project first")
	}
	return nil
}

// RequireConfigured returns an error unless dir holds both a project
// descriptor and a build cache.
func RequireConfigured(dir string) error {
	switch Detect(dir) {
	case StateNone:
		return icpperrors.PreconditionUnmet("no CMakeLists.txt here; run 'icpp init' to scaffold a project first")
	case StateScaffolded:
		return icpperrors.PreconditionUnmet("no build cache found; run 'icpp config' first")
	}
	return nil
}

// RequireUnconfigured returns an error unless dir holds a project
// descriptor and no build cache. The install command demands a
// cache-free tree and points at config when one exists.
func RequireUnconfigured(dir string) error {
	switch Detect(dir) {
	case StateNone:
		return icpperrors.PreconditionUnmet("no CMakeLists.txt here; run 'icpp init' to scaffold a project first")
	case StateConfigured:
		return icpperrors.PreconditionUnmet("build cache already present; run 'icpp config' first")
	}
	return nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

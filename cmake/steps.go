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
	"os"
	"path/filepath"

	icpperrors "github.com/LiamStanDev/icpp/errors"
	"github.com/LiamStanDev/icpp/project"
)

// Configure runs the CMake configure step, producing a build cache in
// the build directory.
func Configure(ctx context.Context, r Runner, dir, generator, buildType string) error {
	return r.Run(ctx, dir, "cmake",
		"-S", ".",
		"-B", project.BuildDir,
		"-G", generator,
		"-DCMAKE_BUILD_TYPE="+buildType,
	)
}

// Build compiles the configured project.
func Build(ctx context.Context, r Runner, dir string) error {
	return r.Run(ctx, dir, "cmake", "--build", project.BuildDir)
}

// RunTests executes the project's test suite through ctest.
func RunTests(ctx context.Context, r Runner, dir string) error {
	return r.Run(ctx, dir, "ctest", "--test-dir", project.BuildDir, "--output-on-failure")
}

// Install runs the install target.
func Install(ctx context.Context, r Runner, dir string) error {
	return r.Run(ctx, dir, "cmake", "--install", project.BuildDir)
}

// CleanBuildDir removes any existing build directory so the next
// configure step starts from scratch. A missing build directory is not
// an error.
func CleanBuildDir(dir string) error {
	err := os.RemoveAll(filepath.Join(dir, project.BuildDir))
	return icpperrors.Wrap("remove build directory", project.BuildDir, err)
}

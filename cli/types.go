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

package cli

// InitOptions defines command-line options for the init command.
//
// InitOptions captures values provided by the user via CLI flags. A set
// value skips the corresponding interactive prompt; unset values are
// collected interactively with the configured defaults.
type InitOptions struct {
	// RepoURL specifies the repository URL embedded in the build descriptor.
	RepoURL string

	// Standard specifies the C++ standard version (e.g., 14, 17, 20, 23).
	// Zero means unset.
	Standard int

	// CMakeVersion specifies the minimum CMake version for the descriptor.
	CMakeVersion string

	// License specifies the license choice (MIT, Apache-2.0, BSD-3-Clause).
	License string

	// Output specifies the parent directory the project is created under.
	Output string

	// SkipGit disables git repository initialization after scaffolding.
	SkipGit bool
}

// ConfigOptions defines command-line options for the config command.
type ConfigOptions struct {
	// BuildType specifies the CMake build configuration (Debug or Release).
	// It comes from the optional positional argument; empty prompts.
	BuildType string

	// Generator specifies the build-system generator handed to CMake.
	// Empty prompts with the configured default.
	Generator string
}

// BuildSettings holds the choices the config command collects before
// invoking the configure step.
type BuildSettings struct {
	// BuildType selects the CMake build configuration.
	BuildType string

	// Generator names the build-system generator.
	Generator string
}

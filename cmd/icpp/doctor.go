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
	"fmt"
	"strings"

	"github.com/LiamStanDev/icpp/cmake"
	"github.com/LiamStanDev/icpp/config"
	"github.com/spf13/cobra"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the host toolchain",
	Long: `Run diagnostic checks on the tools icpp depends on.

Required tools (cmake, git, ninja) must be present; optional tools
(clang-format, clang-tidy, cppcheck) only produce warnings.`,
	Args: cobra.NoArgs,
	RunE: runDoctor,
}

func runDoctor(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	cfg := configFromContext(cmd)
	if cfg == nil {
		cfg = config.Default()
	}

	reqs := cmake.DefaultRequirements(cfg.Defaults.CMakeVersion)
	statuses := newDependencyChecker().ProbeAll(ctx, reqs)

	fmt.Fprintln(out, "Tool check:")

	var missing []string
	for i, st := range statuses {
		req := reqs[i]
		switch {
		case !st.Found && st.Required:
			fmt.Fprintf(out, "  [MISS] %s not found\n", st.Name)
			missing = append(missing, st.Name)
		case !st.Found:
			fmt.Fprintf(out, "  [WARN] %s not found (optional)\n", st.Name)
		case req.Minimum != "" && !st.MeetsMinimum:
			fmt.Fprintf(out, "  [WARN] %s %s is older than required %s (%s)\n", st.Name, st.Version, req.Minimum, st.Path)
		case st.Version != "":
			fmt.Fprintf(out, "  [ OK ] %s %s found at %s\n", st.Name, st.Version, st.Path)
		default:
			fmt.Fprintf(out, "  [ OK ] %s found at %s\n", st.Name, st.Path)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required tools: %s", strings.Join(missing, ", "))
	}
	return nil
}

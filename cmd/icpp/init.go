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
	"time"

	"github.com/LiamStanDev/icpp/cli"
	"github.com/LiamStanDev/icpp/cmake"
	"github.com/LiamStanDev/icpp/config"
	"github.com/LiamStanDev/icpp/git"
	"github.com/LiamStanDev/icpp/logging"
	"github.com/LiamStanDev/icpp/templates"
	"github.com/spf13/cobra"
)

var initOpts cli.InitOptions

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Scaffold a new C++ project",
	Long: `Scaffold a new CMake-based C++ project in the current directory.

The command asks for a project name and a few build settings, then
generates:
  - CMakeLists.txt: Root build configuration
  - <name>/: Library module with include/ and src/ trees
  - tests/: GoogleTest suite wired into CTest
  - cmake/: Warnings, static analysis, and dependency modules
  - .github/workflows/ci.yml: Build-and-test CI pipeline

Answers can be pre-supplied with flags to skip individual prompts.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	initCmd.Flags().StringVar(&initOpts.RepoURL, "repo-url", "", "Repository URL recorded in project metadata")
	initCmd.Flags().IntVar(&initOpts.Standard, "std", 0, "C++ standard (14, 17, 20, 23)")
	initCmd.Flags().StringVar(&initOpts.CMakeVersion, "cmake-version", "", "Minimum CMake version for the generated project")
	initCmd.Flags().StringVar(&initOpts.License, "license", "", "Project license (MIT, Apache-2.0, BSD-3-Clause)")
	initCmd.Flags().StringVarP(&initOpts.Output, "output", "o", ".", "Output directory for the project")
	initCmd.Flags().BoolVar(&initOpts.SkipGit, "skip-git", false, "Skip git repository initialization")

	registerInitCompletions(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	if err := cli.NewValidator().ValidateInitOptions(initOpts); err != nil {
		return err
	}

	// Refuse before prompting when the toolchain is incomplete.
	if err := newDependencyChecker().Ensure(ctx, cmake.RequiredTools); err != nil {
		return err
	}

	cfg := configFromContext(cmd)
	if cfg == nil {
		cfg = config.Default()
	}

	identity, _ := git.NewConfigReader().GetIdentity(ctx)
	if cfg.Author.Name != "" {
		identity = cfg.Author.Name
	}

	prompter := cli.NewPrompter(cmd.InOrStdin(), cmd.OutOrStdout())
	spec, err := prompter.Collect(ctx, cli.CollectInput{
		Defaults:     cfg.Defaults,
		IdentityName: identity,
		Flags:        initOpts,
	})
	if err != nil {
		return err
	}

	owner := identity
	if owner == "" {
		owner = spec.Name
	}

	logging.DebugContext(ctx, "scaffolding %s (C++%d, repo %s)",
		spec.Name, spec.Standard, logging.RedactURL(spec.RepoURL))

	scaffolder := templates.NewScaffolder()
	root, err := scaffolder.Build(ctx, spec, initOpts.Output, templates.Attribution{
		Year:  time.Now().Year(),
		Owner: owner,
	})
	if err != nil {
		return err
	}

	if initOpts.SkipGit {
		logging.DebugContext(ctx, "skipping git init for %s", root)
		return nil
	}
	return git.InitRepository(ctx, root)
}

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

package templates

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/LiamStanDev/icpp/config"
	icpperrors "github.com/LiamStanDev/icpp/errors"
	"github.com/LiamStanDev/icpp/logging"
	"github.com/LiamStanDev/icpp/project"
)

// Scaffolder creates new C++ projects with their directory skeleton
// and generated files.
type Scaffolder struct {
	licenses *LicenseWriter
}

// NewScaffolder creates a project scaffolder.
func NewScaffolder() *Scaffolder {
	return &Scaffolder{
		licenses: NewLicenseWriter(),
	}
}

// Build scaffolds the project described by spec into a subdirectory of
// outputDir named after the project. Directories are created first,
// then the placeholder sources, then the generated files in a fixed
// order; the first failure aborts the sequence. The project root path
// is returned.
func (s *Scaffolder) Build(ctx context.Context, spec *project.Spec, outputDir string, attr Attribution) (string, error) {
	root := filepath.Join(outputDir, spec.Name)

	if entries, err := os.ReadDir(root); err == nil && len(entries) > 0 {
		return "", fmt.Errorf("directory %s already exists and is not empty", root)
	}

	if err := s.createDirectories(spec, root); err != nil {
		return "", err
	}
	if err := s.createPlaceholders(spec, root); err != nil {
		return "", err
	}
	if err := s.emitArtifacts(spec, root); err != nil {
		return "", err
	}
	if err := s.writeLicense(ctx, spec, root, attr); err != nil {
		return "", err
	}

	logging.InfoContext(ctx, "Project created successfully at: %s", root)
	s.printNextSteps(ctx, spec)

	return root, nil
}

// createDirectories lays out the project skeleton.
func (s *Scaffolder) createDirectories(spec *project.Spec, root string) error {
	dirs := []string{
		filepath.Join(".github", "workflows"),
		"cmake",
		filepath.Join(spec.Name, "include", spec.Name),
		filepath.Join(spec.Name, "src"),
		"tests",
		"docs",
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(filepath.Join(root, dir), config.DirPermReadWriteExec); err != nil {
			return icpperrors.Wrap("create directory", dir, err)
		}
	}
	return nil
}

// createPlaceholders writes the starter header, source, and test files
// so the generated project compiles and passes its suite immediately.
func (s *Scaffolder) createPlaceholders(spec *project.Spec, root string) error {
	placeholders := []struct {
		relPath string
		render  func(*project.Spec) (string, error)
	}{
		{filepath.Join(spec.Name, "include", spec.Name, spec.Name+".hpp"), HeaderFile},
		{filepath.Join(spec.Name, "src", spec.Name+".cpp"), SourceFile},
		{filepath.Join("tests", spec.Name+"_test.cpp"), TestFile},
	}
	for _, p := range placeholders {
		content, err := p.render(spec)
		if err != nil {
			return err
		}
		if err := s.writeFile(root, p.relPath, content); err != nil {
			return err
		}
	}
	return nil
}

// emitArtifacts renders and writes every generated configuration file
// in order.
func (s *Scaffolder) emitArtifacts(spec *project.Spec, root string) error {
	for _, a := range artifactsFor(spec) {
		content, err := a.render()
		if err != nil {
			return err
		}
		if err := s.writeFile(root, a.relPath, content); err != nil {
			return err
		}
	}
	return nil
}

// writeLicense resolves the license body, fetching it when needed, and
// writes it last.
func (s *Scaffolder) writeLicense(ctx context.Context, spec *project.Spec, root string, attr Attribution) error {
	body, err := s.licenses.Render(ctx, spec.License, attr)
	if err != nil {
		return err
	}
	return s.writeFile(root, "LICENSE", body)
}

func (s *Scaffolder) writeFile(root, relPath, content string) error {
	if err := os.WriteFile(filepath.Join(root, relPath), []byte(content), config.FilePermReadWrite); err != nil {
		return icpperrors.Wrap("write file", relPath, err)
	}
	return nil
}

// printNextSteps prints helpful next steps to the user.
func (s *Scaffolder) printNextSteps(ctx context.Context, spec *project.Spec) {
	logging.InfoContext(ctx, "Next steps:")
	logging.InfoContext(ctx, "  1. cd %s", spec.Name)
	logging.InfoContext(ctx, "  2. Configure the build with: icpp config")
	logging.InfoContext(ctx, "  3. Compile with: icpp build")
	logging.InfoContext(ctx, "  4. Run the tests with: icpp test")
}

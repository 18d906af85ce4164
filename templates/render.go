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

// Package templates renders the files a new C++ project is scaffolded
// from and writes them to disk. Parameterized artifacts are Go
// templates over the project spec; fixed-body artifacts are embedded
// verbatim.
package templates

import (
	"bytes"
	"embed"
	"path/filepath"
	"text/template"

	icpperrors "github.com/LiamStanDev/icpp/errors"
	"github.com/LiamStanDev/icpp/project"
)

//go:embed assets
var assetsFS embed.FS

// assetTemplates holds every parsed template, keyed by base file name.
var assetTemplates = template.Must(template.ParseFS(assetsFS, "assets/*.tmpl", "assets/licenses/*.tmpl"))

// renderAsset executes the named template over data.
func renderAsset(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := assetTemplates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", icpperrors.Wrap("render template", name, err)
	}
	return buf.String(), nil
}

// readAsset returns a fixed-body asset verbatim.
func readAsset(name string) (string, error) {
	data, err := assetsFS.ReadFile("assets/" + name)
	if err != nil {
		return "", icpperrors.Wrap("read template asset", name, err)
	}
	return string(data), nil
}

// RootCMakeLists renders the top-level build descriptor: project
// metadata, the in-source build guard, the option flags prefixed with
// the uppercase project name, and the subdirectory layout.
func RootCMakeLists(spec *project.Spec) (string, error) {
	return renderAsset("root_cmakelists.tmpl", spec)
}

// ModuleCMakeLists renders the library subdirectory descriptor.
func ModuleCMakeLists(spec *project.Spec) (string, error) {
	return renderAsset("module_cmakelists.tmpl", spec)
}

// TestsCMakeLists renders the test suite descriptor, pinning the
// googletest fetch to a fixed commit and auto-registering every test
// source as a test case.
func TestsCMakeLists(spec *project.Spec) (string, error) {
	return renderAsset("tests_cmakelists.tmpl", spec)
}

// DependenciesModule returns the dependency descriptor pinning fmt to
// a fixed commit.
func DependenciesModule() (string, error) {
	return readAsset("dependencies.cmake")
}

// CompilerWarningsModule returns the compiler-warnings helper module.
func CompilerWarningsModule() (string, error) {
	return readAsset("compiler_warnings.cmake")
}

// StaticAnalysisModule returns the static-analysis helper module. It
// probes for clang-tidy and cppcheck and skips whichever is absent.
func StaticAnalysisModule() (string, error) {
	return readAsset("static_analysis.cmake")
}

// Workflow returns the fixed CI pipeline: checkout, configure, build,
// test.
func Workflow() (string, error) {
	return readAsset("ci.yml")
}

// ClangFormat returns the fixed formatter configuration.
func ClangFormat() (string, error) {
	return readAsset("clang-format")
}

// ClangTidy returns the fixed linter configuration.
func ClangTidy() (string, error) {
	return readAsset("clang-tidy")
}

// GitIgnore returns the fixed ignore rules.
func GitIgnore() (string, error) {
	return readAsset("gitignore")
}

// Readme renders the project README.
func Readme(spec *project.Spec) (string, error) {
	return renderAsset("readme.md.tmpl", spec)
}

// HeaderFile renders the placeholder library header.
func HeaderFile(spec *project.Spec) (string, error) {
	return renderAsset("header.hpp.tmpl", spec)
}

// SourceFile renders the placeholder library source.
func SourceFile(spec *project.Spec) (string, error) {
	return renderAsset("source.cpp.tmpl", spec)
}

// TestFile renders the placeholder test source.
func TestFile(spec *project.Spec) (string, error) {
	return renderAsset("test.cpp.tmpl", spec)
}

// An artifact pairs a generated file with its renderer.
type artifact struct {
	relPath string
	render  func() (string, error)
}

// artifactsFor lists the generated configuration files in emission
// order. The license is written separately since it can require a
// network fetch.
func artifactsFor(spec *project.Spec) []artifact {
	return []artifact{
		{relPath: "CMakeLists.txt", render: func() (string, error) { return RootCMakeLists(spec) }},
		{relPath: filepath.Join(spec.Name, "CMakeLists.txt"), render: func() (string, error) { return ModuleCMakeLists(spec) }},
		{relPath: filepath.Join("tests", "CMakeLists.txt"), render: func() (string, error) { return TestsCMakeLists(spec) }},
		{relPath: filepath.Join("cmake", "Dependencies.cmake"), render: DependenciesModule},
		{relPath: filepath.Join("cmake", "CompilerWarnings.cmake"), render: CompilerWarningsModule},
		{relPath: filepath.Join("cmake", "StaticAnalysis.cmake"), render: StaticAnalysisModule},
		{relPath: filepath.Join(".github", "workflows", "ci.yml"), render: Workflow},
		{relPath: ".clang-format", render: ClangFormat},
		{relPath: ".clang-tidy", render: ClangTidy},
		{relPath: ".gitignore", render: GitIgnore},
		{relPath: "README.md", render: func() (string, error) { return Readme(spec) }},
	}
}

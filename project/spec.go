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

// Package project defines the metadata model for a scaffolded C++ project
// and the on-disk state machine that project commands consult before
// acting.
package project

import (
	"fmt"
	"strings"

	icpperrors "github.com/LiamStanDev/icpp/errors"
)

// License identifiers offered at collection time.
const (
	LicenseMIT    = "MIT"
	LicenseApache = "Apache-2.0"
	LicenseBSD3   = "BSD-3-Clause"
)

// Standards lists the C++ standard versions offered at collection time.
var Standards = []int{14, 17, 20, 23}

// Licenses lists the license identifiers icpp can emit a body for.
var Licenses = []string{LicenseMIT, LicenseApache, LicenseBSD3}

// Spec holds the metadata collected for a new project. All fields are
// resolved before scaffolding begins; the template renderers treat a
// Spec as read-only.
type Spec struct {
	// Name is the normalized project name: lowercase, spaces replaced
	// with underscores. It names the library subdirectory and target.
	Name string

	// NameUpper is the uppercase form of Name, used as the prefix for
	// the generated build options (e.g. DEMO_ENABLE_WARNINGS).
	NameUpper string

	// RepoURL is the project homepage recorded in the build descriptor.
	RepoURL string

	// Standard is the C++ standard version the project compiles
	// against. Offered values are 14, 17, 20, and 23; freeform answers
	// are accepted verbatim.
	Standard int

	// CMakeVersion is the minimum CMake version the root descriptor
	// demands via cmake_minimum_required.
	CMakeVersion string

	// License is the license identifier selecting which body to emit.
	License string

	// Generator is the CMake generator passed to the configure step.
	Generator string
}

// New builds a Spec from a raw project name, normalizing the name and
// deriving its uppercase form. The remaining fields are filled by the
// collector from answers and configured defaults.
func New(rawName string) (*Spec, error) {
	name := NormalizeName(rawName)
	if name == "" {
		return nil, icpperrors.EmptyInput("project name")
	}
	return &Spec{
		Name:      name,
		NameUpper: strings.ToUpper(name),
	}, nil
}

// NormalizeName lowercases a raw project name and replaces each space
// with an underscore. Surrounding whitespace is stripped first.
func NormalizeName(raw string) string {
	name := strings.ToLower(strings.TrimSpace(raw))
	return strings.ReplaceAll(name, " ", "_")
}

// DefaultRepoURL derives the repository URL offered as the prompt
// default from the configured git identity name and the normalized
// project name. Identities with spaces are slugified; an empty identity
// falls back to a generic owner.
func DefaultRepoURL(identityName, projectName string) string {
	owner := slugifyOwner(identityName)
	if owner == "" {
		owner = "user"
	}
	return fmt.Sprintf("https://github.com/%s/%s", owner, projectName)
}

func slugifyOwner(identity string) string {
	owner := strings.ToLower(strings.TrimSpace(identity))
	return strings.ReplaceAll(owner, " ", "-")
}

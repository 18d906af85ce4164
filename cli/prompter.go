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

// Package cli collects project metadata through interactive prompts and
// holds the option structs the commands bind their flags to.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/LiamStanDev/icpp/config"
	icpperrors "github.com/LiamStanDev/icpp/errors"
	"github.com/LiamStanDev/icpp/logging"
	"github.com/LiamStanDev/icpp/project"
)

// Prompter asks the interactive questions init and config need. The input
// source and prompt destination are injectable so tests can script answers.
type Prompter struct {
	reader *bufio.Reader
	out    io.Writer
}

// NewPrompter returns a Prompter reading answers from in and writing
// prompts to out.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		reader: bufio.NewReader(in),
		out:    out,
	}
}

// CollectInput carries the environment snapshot the collector needs so the
// prompt sequence never reads ambient state mid-flight.
type CollectInput struct {
	// Defaults holds the configured fallback values for each prompt.
	Defaults config.DefaultsConfig

	// IdentityName is the git identity used to derive the default
	// repository URL.
	IdentityName string

	// Flags carries values provided on the command line; a set value
	// skips its prompt.
	Flags InitOptions
}

// Collect runs the init prompt sequence: name, repository URL, C++
// standard, minimum CMake version, license. Empty answers take the stated
// default except the name, which is required. Freeform answers are
// accepted verbatim; only the license choice is normalized.
func (p *Prompter) Collect(ctx context.Context, in CollectInput) (*project.Spec, error) {
	rawName, err := p.readLine("Project name: ")
	if err != nil {
		return nil, err
	}

	spec, err := project.New(rawName)
	if err != nil {
		return nil, err
	}

	// The default URL derives immediately after the name is captured.
	defaultURL := project.DefaultRepoURL(in.IdentityName, spec.Name)
	spec.RepoURL = in.Flags.RepoURL
	if spec.RepoURL == "" {
		spec.RepoURL, err = p.Ask(fmt.Sprintf("Repository URL [%s]: ", defaultURL), defaultURL)
		if err != nil {
			return nil, err
		}
	}

	spec.Standard = in.Flags.Standard
	if spec.Standard == 0 {
		spec.Standard, err = p.askStandard(ctx, in.Defaults.Std)
		if err != nil {
			return nil, err
		}
	}

	spec.CMakeVersion = in.Flags.CMakeVersion
	if spec.CMakeVersion == "" {
		prompt := fmt.Sprintf("Minimum CMake version [%s]: ", in.Defaults.CMakeVersion)
		spec.CMakeVersion, err = p.Ask(prompt, in.Defaults.CMakeVersion)
		if err != nil {
			return nil, err
		}
	}
	if _, parseErr := semver.NewVersion(spec.CMakeVersion); parseErr != nil {
		logging.WarnContext(ctx, "CMake version %q does not parse as a version, using it verbatim", spec.CMakeVersion)
	}

	license := in.Flags.License
	if license == "" {
		prompt := fmt.Sprintf("License (%s) [%s]: ", strings.Join(project.Licenses, "/"), in.Defaults.License)
		license, err = p.Ask(prompt, in.Defaults.License)
		if err != nil {
			return nil, err
		}
	}
	spec.License = NormalizeLicense(license)

	// The generator is only prompted by the config command.
	spec.Generator = in.Defaults.Generator

	return spec, nil
}

// CollectBuildSettings gathers the build type and generator for the config
// command. Values already present in opts skip their prompts.
func (p *Prompter) CollectBuildSettings(ctx context.Context, opts ConfigOptions, defaults config.DefaultsConfig) (BuildSettings, error) {
	settings := BuildSettings{
		BuildType: opts.BuildType,
		Generator: opts.Generator,
	}

	if settings.BuildType == "" {
		fallback := defaults.BuildType
		if fallback == "" {
			fallback = "Release"
		}
		answer, err := p.Ask(fmt.Sprintf("Build type (Debug/Release) [%s]: ", fallback), fallback)
		if err != nil {
			return BuildSettings{}, err
		}
		settings.BuildType = answer
	}
	settings.BuildType = NormalizeBuildType(settings.BuildType)

	if settings.Generator == "" {
		fallback := defaults.Generator
		if fallback == "" {
			fallback = "Ninja"
		}
		answer, err := p.Ask(fmt.Sprintf("Generator [%s]: ", fallback), fallback)
		if err != nil {
			return BuildSettings{}, err
		}
		settings.Generator = answer
	}

	logging.DebugContext(ctx, "Collected build settings: type=%s generator=%s", settings.BuildType, settings.Generator)

	return settings, nil
}

// Ask prompts and returns the trimmed answer, substituting fallback when
// the answer is empty.
func (p *Prompter) Ask(prompt, fallback string) (string, error) {
	answer, err := p.readLine(prompt)
	if err != nil {
		return "", err
	}
	if answer == "" {
		return fallback, nil
	}
	return answer, nil
}

// readLine prints the prompt and reads one trimmed line. EOF counts as an
// empty answer so piped input can rely on the defaults.
func (p *Prompter) readLine(prompt string) (string, error) {
	if _, err := fmt.Fprint(p.out, prompt); err != nil {
		return "", icpperrors.Wrap("write prompt", strings.TrimSpace(prompt), err)
	}

	line, err := p.reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", icpperrors.Wrap("read answer", strings.TrimSpace(prompt), err)
	}

	return strings.TrimSpace(line), nil
}

// askStandard prompts for the C++ standard and parses the answer as an
// integer. Non-numeric answers keep the fallback with a warning since the
// descriptor embeds the value into CMAKE_CXX_STANDARD.
func (p *Prompter) askStandard(ctx context.Context, fallback int) (int, error) {
	prompt := fmt.Sprintf("C++ standard (%s) [%d]: ", standardChoices(), fallback)
	answer, err := p.readLine(prompt)
	if err != nil {
		return 0, err
	}
	if answer == "" {
		return fallback, nil
	}

	std, convErr := strconv.Atoi(answer)
	if convErr != nil {
		logging.WarnContext(ctx, "C++ standard %q is not a number, keeping %d", answer, fallback)
		return fallback, nil
	}
	return std, nil
}

// standardChoices renders the known standards as a prompt hint.
func standardChoices() string {
	parts := make([]string, len(project.Standards))
	for i, std := range project.Standards {
		parts[i] = strconv.Itoa(std)
	}
	return strings.Join(parts, "/")
}

// NormalizeLicense maps a loosely spelled license answer ("apache",
// "bsd3") onto the canonical identifier via fuzzy matching. Answers that
// match nothing are returned verbatim.
func NormalizeLicense(raw string) string {
	input := strings.TrimSpace(raw)
	if input == "" {
		return input
	}

	best := ""
	bestRank := -1
	for _, candidate := range project.Licenses {
		rank := fuzzy.RankMatchFold(input, candidate)
		if rank < 0 {
			continue
		}
		if bestRank < 0 || rank < bestRank {
			best = candidate
			bestRank = rank
		}
	}

	if best == "" {
		return input
	}
	return best
}

// NormalizeBuildType canonicalizes the CMake build configuration casing.
// Unrecognized answers pass through verbatim.
func NormalizeBuildType(raw string) string {
	input := strings.TrimSpace(raw)
	switch {
	case strings.EqualFold(input, "Debug"):
		return "Debug"
	case strings.EqualFold(input, "Release"):
		return "Release"
	default:
		return input
	}
}

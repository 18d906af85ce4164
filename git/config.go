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

// Package git reads the user's git identity and initializes repositories
// for freshly scaffolded projects.
package git

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/ini.v1"

	"github.com/LiamStanDev/icpp/logging"
)

// ConfigReader reads identity information from .gitconfig files.
type ConfigReader struct{}

// NewConfigReader creates a new git configuration reader.
func NewConfigReader() *ConfigReader {
	return &ConfigReader{}
}

// GetIdentity returns the configured user.name and user.email, following
// one level of [include] indirection the way git itself does. Missing
// values come back as empty strings.
func (r *ConfigReader) GetIdentity(ctx context.Context) (name, email string) {
	home, err := os.UserHomeDir()
	if err != nil {
		logging.DebugContext(ctx, "Failed to get home directory: %v", err)
		return "", ""
	}

	cfg := r.loadGitConfig(ctx, home)
	if cfg == nil {
		return "", ""
	}

	name, email = r.extractUserInfo(cfg)

	if name == "" || email == "" {
		name, email = r.tryIncludedConfig(ctx, cfg, name, email)
	}

	return name, email
}

// GetAuthor retrieves the author string from git config, formatted as
// "Name <email>", "Name", "email", or empty when nothing is configured.
func (r *ConfigReader) GetAuthor(ctx context.Context) string {
	return formatAuthor(r.GetIdentity(ctx))
}

// loadGitConfig loads the main .gitconfig file from the user's home directory.
func (r *ConfigReader) loadGitConfig(ctx context.Context, home string) *ini.File {
	gitconfigPath := filepath.Join(home, ".gitconfig")
	cfg, err := ini.Load(gitconfigPath)
	if err != nil {
		logging.DebugContext(ctx, "Failed to load .gitconfig: %v", err)
		return nil
	}
	return cfg
}

// extractUserInfo extracts name and email from a git config [user] section.
func (r *ConfigReader) extractUserInfo(cfg *ini.File) (name, email string) {
	userSection := cfg.Section("user")
	if userSection != nil {
		name = userSection.Key("name").String()
		email = userSection.Key("email").String()
	}
	return name, email
}

// tryIncludedConfig loads user info from an [include]d config file,
// filling in only the values still missing.
func (r *ConfigReader) tryIncludedConfig(ctx context.Context, cfg *ini.File, currentName, currentEmail string) (name, email string) {
	name, email = currentName, currentEmail

	includeSection := cfg.Section("include")
	if includeSection == nil {
		return name, email
	}

	includePath := expandPath(includeSection.Key("path").String())
	if includePath == "" {
		return name, email
	}

	includedCfg, err := ini.Load(includePath)
	if err != nil {
		logging.DebugContext(ctx, "Failed to load included config from %s: %v", includePath, err)
		return name, email
	}

	includedUserSection := includedCfg.Section("user")
	if includedUserSection == nil {
		return name, email
	}

	if name == "" {
		name = includedUserSection.Key("name").String()
	}
	if email == "" {
		email = includedUserSection.Key("email").String()
	}

	return name, email
}

// expandPath resolves a leading ~ and any environment variables in a
// gitconfig include path.
func expandPath(path string) string {
	if path == "" {
		return ""
	}
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	return os.ExpandEnv(path)
}

// formatAuthor formats name and email as a git author string.
// Preference order: "Name <email>", "Name", "email", "".
func formatAuthor(name, email string) string {
	switch {
	case name != "" && email != "":
		return fmt.Sprintf("%s <%s>", name, email)
	case name != "":
		return name
	case email != "":
		return email
	default:
		return ""
	}
}

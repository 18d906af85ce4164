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

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// appDirName is the subdirectory icpp claims inside each XDG base dir.
const appDirName = "icpp"

// GetConfigDirs returns the configuration search directories in
// precedence order: $XDG_CONFIG_HOME/icpp (or ~/.config/icpp), the
// legacy ~/.icpp, then system-wide XDG dirs on Linux and the BSDs.
func GetConfigDirs() []string {
	var dirs []string

	if xdgHome := os.Getenv("XDG_CONFIG_HOME"); xdgHome != "" {
		dirs = append(dirs, filepath.Join(xdgHome, appDirName))
	} else if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, filepath.Join(home, ".config", appDirName))
	}

	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, filepath.Join(home, "."+appDirName))
	}

	switch runtime.GOOS {
	case "linux", "freebsd", "openbsd", "netbsd":
		xdgDirs := os.Getenv("XDG_CONFIG_DIRS")
		if xdgDirs == "" {
			xdgDirs = "/etc/xdg"
		}
		for _, dir := range strings.Split(xdgDirs, ":") {
			if dir == "" {
				continue
			}
			dirs = append(dirs, filepath.Join(dir, appDirName))
		}
	}

	return dirs
}

// ConfigFile returns the path of the named file inside the primary
// config directory, creating parent directories as needed.
func ConfigFile(name string) (string, error) {
	dirs := GetConfigDirs()
	if len(dirs) == 0 {
		return "", fmt.Errorf("failed to resolve config directory: no home directory")
	}

	path := filepath.Join(dirs[0], name)
	if err := os.MkdirAll(filepath.Dir(path), DirPermReadWriteExec); err != nil {
		return "", fmt.Errorf("failed to create config directory (%s): %w", filepath.Dir(path), err)
	}

	return path, nil
}

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

// Package config handles icpp's global configuration: the defaults new
// projects are seeded with, the author identity override, and logging
// preferences. Values are resolved with the precedence CLI flags >
// ICPP_* environment variables > config file > built-in defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// File permissions used across the tool.
const (
	// DirPermReadWriteExec is the mode for directories icpp creates.
	DirPermReadWriteExec os.FileMode = 0o755

	// FilePermReadWrite is the mode for files icpp writes.
	FilePermReadWrite os.FileMode = 0o644
)

// ErrConfigNotFound indicates no config file exists in any search
// directory. Callers still receive a usable Config built from defaults.
var ErrConfigNotFound = errors.New("config file not found")

// Config is icpp's global configuration.
type Config struct {
	// Defaults seeds the answers offered during project creation.
	Defaults DefaultsConfig `mapstructure:"defaults" yaml:"defaults" json:"defaults"`

	// Author overrides the identity read from ~/.gitconfig.
	Author AuthorConfig `mapstructure:"author" yaml:"author" json:"author"`

	// Cache controls where downloaded artifacts are kept.
	Cache CacheConfig `mapstructure:"cache" yaml:"cache" json:"cache"`

	// Log configures console logging.
	Log LogConfig `mapstructure:"log" yaml:"log" json:"log"`
}

// DefaultsConfig holds the default project metadata offered at the
// interactive prompts.
type DefaultsConfig struct {
	// Std is the default C++ standard (14, 17, 20 or 23).
	Std int `mapstructure:"std" yaml:"std" json:"std"`

	// CMakeVersion is the default cmake_minimum_required version.
	CMakeVersion string `mapstructure:"cmake_version" yaml:"cmake_version" json:"cmake_version"`

	// License is the default license identifier (MIT, Apache-2.0 or BSD-3-Clause).
	License string `mapstructure:"license" yaml:"license" json:"license"`

	// Generator is the default CMake generator.
	Generator string `mapstructure:"generator" yaml:"generator" json:"generator"`

	// BuildType is the default CMAKE_BUILD_TYPE offered by 'icpp config'.
	BuildType string `mapstructure:"build_type" yaml:"build_type" json:"build_type"`
}

// AuthorConfig overrides the version-control identity used for the
// default repository URL and license attribution.
type AuthorConfig struct {
	Name  string `mapstructure:"name" yaml:"name" json:"name"`
	Email string `mapstructure:"email" yaml:"email" json:"email"`
}

// CacheConfig controls icpp's local cache.
type CacheConfig struct {
	// Dir overrides the default cache location (~/.icpp/cache).
	Dir string `mapstructure:"dir" yaml:"dir" json:"dir"`
}

// LogConfig configures console logging.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `mapstructure:"level" yaml:"level" json:"level"`

	// Format is one of text, color, json.
	Format string `mapstructure:"format" yaml:"format" json:"format"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Defaults: DefaultsConfig{
			Std:          20,
			CMakeVersion: "3.25",
			License:      "MIT",
			Generator:    "Ninja",
			BuildType:    "Release",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "color",
		},
	}
}

// setDefaults registers the built-in defaults on a viper instance.
// Every key must be registered here so AutomaticEnv can resolve it.
func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("defaults.std", d.Defaults.Std)
	v.SetDefault("defaults.cmake_version", d.Defaults.CMakeVersion)
	v.SetDefault("defaults.license", d.Defaults.License)
	v.SetDefault("defaults.generator", d.Defaults.Generator)
	v.SetDefault("defaults.build_type", d.Defaults.BuildType)
	v.SetDefault("author.name", "")
	v.SetDefault("author.email", "")
	v.SetDefault("cache.dir", "")
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
}

// NewConfigViper returns a viper instance preconfigured for icpp:
// YAML config named "config", ICPP_* environment overrides, and the
// built-in defaults registered.
func NewConfigViper() *viper.Viper {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.SetEnvPrefix("ICPP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)
	return v
}

// Load reads the configuration from the first config file found in the
// XDG search directories. When no file exists the returned Config holds
// the built-in defaults and the error matches ErrConfigNotFound, which
// callers may treat as non-fatal via IsNotFoundError.
func Load() (*Config, error) {
	v := NewConfigViper()
	for _, dir := range GetConfigDirs() {
		v.AddConfigPath(dir)
	}

	readErr := v.ReadInConfig()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if readErr != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(readErr, &notFound) {
			return cfg, fmt.Errorf("%w: searched %s", ErrConfigNotFound, strings.Join(GetConfigDirs(), ", "))
		}
		return nil, fmt.Errorf("failed to read config (%s): %w", v.ConfigFileUsed(), readErr)
	}

	return cfg, nil
}

// LoadFromPath reads the configuration from an explicit file path.
func LoadFromPath(path string) (*Config, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
	}

	v := NewConfigViper()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config (%s): %w", path, err)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config (%s): %w", path, err)
	}

	return cfg, nil
}

// Get is a convenience wrapper around Load for callers that only need
// the resolved values.
func Get() (*Config, error) {
	return Load()
}

// IsNotFoundError reports whether err means "no config file", which is
// an expected condition rather than a failure.
func IsNotFoundError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrConfigNotFound) {
		return true
	}
	var notFound viper.ConfigFileNotFoundError
	return errors.As(err, &notFound)
}

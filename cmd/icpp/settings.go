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
	"os"
	"path/filepath"
	"strings"

	"github.com/LiamStanDev/icpp/cli"
	"github.com/LiamStanDev/icpp/config"
	icpperrors "github.com/LiamStanDev/icpp/errors"
	"github.com/LiamStanDev/icpp/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// settingsFileName is the config file settings subcommands manage.
const settingsFileName = "config.yaml"

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage icpp configuration",
	Long: `Manage icpp's global configuration file.

The configuration file stores default answers for project creation
(C++ standard, CMake version, license, generator) plus author identity
and logging preferences.

Configuration precedence (highest to lowest):
1. CLI flags
2. Environment variables (ICPP_*)
3. Configuration file ($XDG_CONFIG_HOME/icpp/config.yaml)
4. Built-in defaults`,
}

var settingsInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize default configuration file",
	Long: `Create a new configuration file with default values.

This will create $XDG_CONFIG_HOME/icpp/config.yaml with sensible
defaults. If the file already exists, it will be overwritten only
with --force.`,
	RunE: runSettingsInit,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	Long: `Display the current configuration with values from all sources.

This shows the effective configuration after merging:
- Built-in defaults
- Configuration file values
- Environment variables
- CLI flag overrides`,
	RunE: runSettingsShow,
}

var settingsPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show configuration file path",
	Long:  `Display the path to the configuration file.`,
	RunE:  runSettingsPath,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set KEY VALUE",
	Short: "Set a configuration value",
	Long: `Set a configuration value in the config file.

Examples:
  icpp settings set defaults.std 23
  icpp settings set defaults.license Apache-2.0
  icpp settings set author.name "Ada Lovelace"

Use dot notation to set nested values.`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

var settingsGetCmd = &cobra.Command{
	Use:   "get KEY",
	Short: "Get a configuration value",
	Long: `Get a specific configuration value.

Examples:
  icpp settings get defaults.std
  icpp settings get defaults.generator
  icpp settings get author.email`,
	Args: cobra.ExactArgs(1),
	RunE: runSettingsGet,
}

var settingsForce bool

func init() {
	// Add subcommands
	settingsCmd.AddCommand(settingsInitCmd)
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsPathCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsGetCmd)

	// Flags
	settingsInitCmd.Flags().BoolVarP(&settingsForce, "force", "f", false, "Overwrite existing config file")
}

// findSettingsFile returns the first existing config file in the
// search path, if any.
func findSettingsFile() (string, bool) {
	for _, dir := range config.GetConfigDirs() {
		path := filepath.Join(dir, settingsFileName)
		if _, err := os.Stat(path); err == nil {
			return path, true
		}
	}
	return "", false
}

func runSettingsInit(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	configPath, err := config.ConfigFile(settingsFileName)
	if err != nil {
		return err
	}

	// Check if config already exists
	if _, err := os.Stat(configPath); err == nil && !settingsForce {
		return fmt.Errorf("config file already exists at %s (use --force to overwrite)", configPath)
	}

	// Marshal built-in defaults to YAML
	data, err := yaml.Marshal(config.Default())
	if err != nil {
		return icpperrors.Wrap("marshal config", "", err)
	}

	if err := os.WriteFile(configPath, data, config.FilePermReadWrite); err != nil {
		return icpperrors.Wrap("write config file", configPath, err)
	}

	logging.InfoContext(ctx, "Configuration file created at: %s", configPath)
	logging.InfoContext(ctx, "Edit this file to customize your icpp settings")

	return nil
}

func runSettingsShow(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	cfg, err := config.Load()
	if err != nil && !config.IsNotFoundError(err) {
		return icpperrors.Wrap("load config", "", err)
	}

	// Marshal to YAML for display
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return icpperrors.Wrap("marshal config", "", err)
	}

	fmt.Fprintln(out, "# Current icpp configuration")
	fmt.Fprintln(out, "# Sources: defaults -> config file -> environment variables -> CLI flags")
	fmt.Fprintln(out)
	fmt.Fprint(out, string(data))

	if path, ok := findSettingsFile(); ok {
		fmt.Fprintf(out, "\n# Config file: %s\n", path)
	} else {
		fmt.Fprintln(out, "\n# No config file found (using defaults)")
	}

	return nil
}

func runSettingsPath(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	if path, ok := findSettingsFile(); ok {
		fmt.Fprintln(out, path)
		return nil
	}

	// Show the path settings init would use
	dirs := config.GetConfigDirs()
	if len(dirs) == 0 {
		return fmt.Errorf("no config directory available")
	}
	fmt.Fprintf(out, "%s (not created yet)\n", filepath.Join(dirs[0], settingsFileName))
	logging.InfoContext(ctx, "Run 'icpp settings init' to create the config file")

	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	key := args[0]
	value := args[1]

	if err := cli.NewValidator().ValidateSettingsSetOptions(key, value); err != nil {
		return err
	}

	configPath, err := config.ConfigFile(settingsFileName)
	if err != nil {
		return err
	}

	// Create viper instance
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	// Try to read existing config
	if err := v.ReadInConfig(); err != nil {
		// Config doesn't exist, create it first
		if os.IsNotExist(err) {
			logging.WarnContext(ctx, "Config file doesn't exist. Creating it now...")
			if err := runSettingsInit(cmd, []string{}); err != nil {
				return err
			}
			// Re-read the newly created config
			if err := v.ReadInConfig(); err != nil {
				return icpperrors.Wrap("read newly created config", "", err)
			}
		} else {
			return icpperrors.Wrap("read config", configPath, err)
		}
	}

	// Set the value
	v.Set(key, value)

	// Write back to file
	if err := v.WriteConfig(); err != nil {
		return icpperrors.Wrap("write config", configPath, err)
	}

	logging.InfoContext(ctx, "Set %s = %s", key, logging.RedactSensitiveValue(key, value))
	logging.InfoContext(ctx, "Config file updated: %s", configPath)

	return nil
}

func runSettingsGet(cmd *cobra.Command, args []string) error {
	key := args[0]
	out := cmd.OutOrStdout()

	cfg, err := config.Load()
	if err != nil && !config.IsNotFoundError(err) {
		return icpperrors.Wrap("load config", "", err)
	}

	// Marshal config to YAML and reload into viper for easy key access
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return icpperrors.Wrap("marshal config", "", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	if err := v.ReadConfig(strings.NewReader(string(data))); err != nil {
		return icpperrors.Wrap("read config", "", err)
	}

	value := v.Get(key)
	if value == nil {
		return fmt.Errorf("key not found: %s", key)
	}

	if s, ok := value.(string); ok {
		fmt.Fprintln(out, logging.RedactSensitiveValue(key, s))
		return nil
	}
	fmt.Fprintln(out, value)

	return nil
}

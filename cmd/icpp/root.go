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

// Package main implements the icpp CLI tool for scaffolding and driving
// CMake-based C++ projects. It provides commands for creating project
// skeletons, configuring and running builds, executing tests, installing
// artifacts, and managing user settings.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/LiamStanDev/icpp/cmake"
	"github.com/LiamStanDev/icpp/config"
	icpperrors "github.com/LiamStanDev/icpp/errors"
	"github.com/LiamStanDev/icpp/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Context key type for storing config
type configKeyType struct{}

var (
	// configKey is the context key for storing the config
	configKey = configKeyType{}

	// Root command options
	cfgFile string

	// appLogger is the process-wide logger. It is replaced during
	// initConfig once the final log level and format are known; until
	// then it carries sensible defaults so early failures still print.
	appLogger = logging.NewCustomLoggerWithOptions("info", "color", false, false)
)

var rootCmd = &cobra.Command{
	Use:   "icpp",
	Short: "icpp - C++ project scaffolding and build driver",
	Long: `icpp scaffolds modern CMake-based C++ projects and drives their
build lifecycle. It generates a library-plus-tests skeleton with
warnings, static analysis, and CI wired up, then wraps the usual
configure/build/test/install loop behind short commands.`,
	Version:           version,
	PersistentPreRunE: initConfig,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "Config file (default is $XDG_CONFIG_HOME/icpp/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "", "Log format (text, json, color)")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "Quiet mode - only show errors")
	// No shorthand here: -v belongs to the version flag.
	rootCmd.PersistentFlags().Bool("verbose", false, "Verbose mode - show debug output")

	// Add subcommands
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(testCmd)
	rootCmd.AddCommand(installCmd)
	rootCmd.AddCommand(doctorCmd)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(completionCmd)

	registerRootCompletions(rootCmd)
}

// configFromContext retrieves the config from the command context.
// Returns nil if no config is stored in context.
func configFromContext(cmd *cobra.Command) *config.Config {
	if cfg, ok := cmd.Context().Value(configKey).(*config.Config); ok {
		return cfg
	}
	return nil
}

// initConfig initializes configuration with proper precedence:
// CLI Flags > Environment Variables > Config File > Defaults
func initConfig(cmd *cobra.Command, args []string) error {
	// 1. Load global config (handles defaults and the config file)
	var cfg *config.Config
	var err error
	if cfgFile != "" {
		// An explicitly named config file must load.
		cfg, err = config.LoadFromPath(cfgFile)
		if err != nil {
			return icpperrors.Wrap("load config", cfgFile, err)
		}
	} else {
		cfg, err = config.Load()
		if err != nil && !config.IsNotFoundError(err) {
			// Fall back to built-in defaults rather than refusing to run.
			appLogger.Warn("failed to load config, using defaults: %v", err)
			cfg = nil
		}
	}
	if cfg == nil {
		cfg = config.Default()
	}

	// 2. Create a new Viper instance for flag binding
	v := viper.New()

	// Set defaults from loaded config
	v.SetDefault("defaults.std", cfg.Defaults.Std)
	v.SetDefault("defaults.cmake_version", cfg.Defaults.CMakeVersion)
	v.SetDefault("defaults.license", cfg.Defaults.License)
	v.SetDefault("defaults.generator", cfg.Defaults.Generator)
	v.SetDefault("defaults.build_type", cfg.Defaults.BuildType)
	v.SetDefault("author.name", cfg.Author.Name)
	v.SetDefault("author.email", cfg.Author.Email)
	v.SetDefault("log.level", cfg.Log.Level)
	v.SetDefault("log.format", cfg.Log.Format)

	// 3. Bind environment variables
	v.SetEnvPrefix("ICPP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// 4. Bind Cobra flags to Viper (this enables: flags > env > config > defaults)
	// Bind root persistent flags
	if err := v.BindPFlag("log.level", cmd.Root().PersistentFlags().Lookup("log-level")); err != nil {
		return icpperrors.Wrap("bind log-level flag", "", err)
	}
	if err := v.BindPFlag("log.format", cmd.Root().PersistentFlags().Lookup("log-format")); err != nil {
		return icpperrors.Wrap("bind log-format flag", "", err)
	}

	// Bind all subcommand flags to Viper for consistent precedence
	BindCommandFlagsToViper(v, cmd)

	// Push resolved values back into flags the user left unset
	ApplyViperOverrides(v, cmd)

	// 5. Get final values from Viper (single source of truth)
	logLevel := v.GetString("log.level")
	logFormat := v.GetString("log.format")
	quiet, _ := cmd.Flags().GetBool("quiet")
	verbose, _ := cmd.Flags().GetBool("verbose")

	// 6. Initialize logging with final values
	logger := logging.NewCustomLoggerWithOptions(logLevel, logFormat, quiet, verbose)
	appLogger = logger

	// 7. Update config with final Viper values (for use in subcommands)
	cfg.Defaults.Std = v.GetInt("defaults.std")
	cfg.Defaults.CMakeVersion = v.GetString("defaults.cmake_version")
	cfg.Defaults.License = v.GetString("defaults.license")
	cfg.Defaults.Generator = v.GetString("defaults.generator")
	cfg.Defaults.BuildType = v.GetString("defaults.build_type")
	cfg.Author.Name = v.GetString("author.name")
	cfg.Author.Email = v.GetString("author.email")
	cfg.Log.Level = logLevel
	cfg.Log.Format = logFormat

	// 8. Store config and logger in the command context
	ctx := context.WithValue(cmd.Context(), configKey, cfg)
	ctx = logging.WithLogger(ctx, logger)
	cmd.SetContext(ctx)

	return nil
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// BindFlagsToViper binds all flags from a command to a Viper instance.
// This enables the configuration precedence: CLI Flags > Environment Variables > Config File > Defaults.
// The viperKey parameter allows specifying a prefix for the Viper keys (e.g., "init" for init command flags).
func BindFlagsToViper(v *viper.Viper, cmd *cobra.Command, viperKey string) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		// Convert flag name to viper key format (e.g., "cmake-version" -> "cmake_version")
		key := strings.ReplaceAll(f.Name, "-", "_")
		if viperKey != "" {
			key = viperKey + "." + key
		}

		// Only bind if not already set (avoids overwriting persistent flags)
		if err := v.BindPFlag(key, f); err != nil {
			appLogger.Warn("failed to bind flag %s to viper: %v", f.Name, err)
		}
	})
}

// BindCommandFlagsToViper binds flags from the current command and its parent persistent flags to Viper.
// This is called during command execution to ensure all flags follow the configuration precedence chain.
func BindCommandFlagsToViper(v *viper.Viper, cmd *cobra.Command) {
	// Get the command path for namespacing (e.g., "init", "settings.set")
	cmdPath := getCommandPath(cmd)

	// Bind the command's local flags
	BindFlagsToViper(v, cmd, cmdPath)

	// Also bind persistent flags from parent commands
	cmd.InheritedFlags().VisitAll(func(f *pflag.Flag) {
		key := strings.ReplaceAll(f.Name, "-", "_")
		if err := v.BindPFlag(key, f); err != nil {
			appLogger.Warn("failed to bind inherited flag %s to viper: %v", f.Name, err)
		}
	})
}

// ApplyViperOverrides pushes resolved Viper values into flags the user
// did not set explicitly. This lets environment variables like
// ICPP_INIT_STD pre-answer subcommand flags while explicit CLI flags
// keep the highest precedence.
func ApplyViperOverrides(v *viper.Viper, cmd *cobra.Command) {
	cmdPath := getCommandPath(cmd)

	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if f.Changed {
			return
		}
		key := strings.ReplaceAll(f.Name, "-", "_")
		if cmdPath != "" {
			key = cmdPath + "." + key
		}
		if !v.IsSet(key) {
			return
		}
		if err := cmd.Flags().Set(f.Name, fmt.Sprintf("%v", v.Get(key))); err != nil {
			appLogger.Warn("failed to apply override for flag %s: %v", f.Name, err)
		}
	})
}

// getCommandPath returns the command path for Viper key namespacing.
// For example, "icpp settings set" returns "settings.set".
func getCommandPath(cmd *cobra.Command) string {
	var parts []string
	current := cmd

	for current != nil && current.Parent() != nil {
		parts = append([]string{current.Name()}, parts...)
		current = current.Parent()
	}

	if len(parts) == 0 {
		return ""
	}
	return strings.Join(parts, ".")
}

// workingDir resolves the directory project commands operate on.
func workingDir() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", icpperrors.Wrap("determine working directory", "", err)
	}
	return dir, nil
}

// dependencyChecker is the slice of the tool checker the commands need.
// Tests swap newDependencyChecker to avoid probing the host toolchain.
type dependencyChecker interface {
	Ensure(ctx context.Context, tools []string) error
	ProbeAll(ctx context.Context, reqs []cmake.ToolRequirement) []cmake.ToolStatus
}

var newDependencyChecker = func() dependencyChecker {
	return cmake.NewToolChecker()
}

// commandRunner, when non-nil, overrides the external process runner.
// Tests inject a recording fake here.
var commandRunner cmake.Runner

// runnerFor returns the runner build commands should use, streaming
// external tool output to the command's own writers.
func runnerFor(cmd *cobra.Command) cmake.Runner {
	if commandRunner != nil {
		return commandRunner
	}
	r := cmake.NewExecRunner()
	r.Stdout = cmd.OutOrStdout()
	r.Stderr = cmd.ErrOrStderr()
	return r
}

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

package cli

import (
	"fmt"
	"strings"
)

// Validator validates CLI input before passing it to the command logic.
// Project metadata itself is accepted verbatim; only flag shapes and
// settings keys are checked here.
type Validator struct{}

// NewValidator creates a new CLI validator.
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateInitOptions validates init command flags for basic sanity.
func (v *Validator) ValidateInitOptions(opts InitOptions) error {
	if opts.Standard < 0 {
		return fmt.Errorf("invalid --std value %d: must be a positive standard version", opts.Standard)
	}

	return nil
}

// ValidateConfigArgs validates the positional arguments of the config
// command. At most one build type argument is accepted.
func (v *Validator) ValidateConfigArgs(args []string) error {
	if len(args) > 1 {
		return fmt.Errorf("config accepts at most one build type argument, got %d", len(args))
	}

	return nil
}

// ValidateSettingsSetOptions validates settings set command options.
func (v *Validator) ValidateSettingsSetOptions(key, value string) error {
	if key == "" {
		return fmt.Errorf("key is required")
	}

	if value == "" {
		return fmt.Errorf("value is required")
	}

	// Validate key format (dot notation for nested keys)
	if !isValidConfigKey(key) {
		return fmt.Errorf("invalid config key format: %s (use dot notation like defaults.std)", key)
	}

	return nil
}

// isValidConfigKey checks if a config key is in valid format.
func isValidConfigKey(key string) bool {
	if key == "" {
		return false
	}

	// Must not start or end with dot
	if strings.HasPrefix(key, ".") || strings.HasSuffix(key, ".") {
		return false
	}

	// Must not have consecutive dots
	if strings.Contains(key, "..") {
		return false
	}

	return true
}

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

// Package errors provides error wrapping helpers and the sentinel errors
// used to classify the fatal conditions icpp can run into.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for fatal conditions. Commands match on these with
// errors.Is to decide how a failure is reported; all of them terminate
// the run with a non-zero exit status.
var (
	// ErrMissingTool indicates a required external tool is not on PATH.
	ErrMissingTool = errors.New("required tool not found")

	// ErrEmptyInput indicates a mandatory interactive answer was left blank.
	ErrEmptyInput = errors.New("required input is empty")

	// ErrPreconditionUnmet indicates the working directory is not in the
	// state a command requires (missing project, missing or stale build
	// tree, and so on).
	ErrPreconditionUnmet = errors.New("project state precondition not met")
)

// Wrap annotates err with a failed action and optional detail. The
// resulting message is "failed to <action> (<detail>): <err>", or
// "failed to <action>: <err>" when detail is empty. A nil err returns
// nil so call sites can wrap unconditionally.
func Wrap(action, detail string, err error) error {
	if err == nil {
		return nil
	}
	if detail == "" {
		return fmt.Errorf("failed to %s: %w", action, err)
	}
	return fmt.Errorf("failed to %s (%s): %w", action, detail, err)
}

// MissingTool returns an ErrMissingTool error naming the absent binary.
func MissingTool(tool string) error {
	return fmt.Errorf("%w: %s is not installed or not on PATH", ErrMissingTool, tool)
}

// EmptyInput returns an ErrEmptyInput error naming the blank field.
func EmptyInput(field string) error {
	return fmt.Errorf("%w: %s must not be empty", ErrEmptyInput, field)
}

// PreconditionUnmet returns an ErrPreconditionUnmet error with guidance
// on how to reach the required state.
func PreconditionUnmet(guidance string) error {
	return fmt.Errorf("%w: %s", ErrPreconditionUnmet, guidance)
}

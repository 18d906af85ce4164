/*
Copyright (c) 2025 LiamStanDev <liamstandev@gmail.com>

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
	"strings"
	"testing"
)

func TestVersionCommand(t *testing.T) {
	t.Parallel()

	if versionCmd.Use != "version" {
		t.Errorf("versionCmd.Use = %q, want %q", versionCmd.Use, "version")
	}
	if versionCmd.Args == nil {
		t.Error("versionCmd should have args validation")
	}
}

func TestVersionCommandOutput(t *testing.T) {
	resetCommandState(t)

	output, err := executeCommand(t, "", "version")
	if err != nil {
		t.Fatalf("version command returned error: %v", err)
	}

	if !strings.Contains(output, "icpp version") {
		t.Errorf("output should contain 'icpp version', got: %q", output)
	}
	if !strings.Contains(output, "commit:") {
		t.Errorf("output should contain 'commit:', got: %q", output)
	}
	if !strings.Contains(output, "built:") {
		t.Errorf("output should contain 'built:', got: %q", output)
	}
}

func TestVersionVariables(t *testing.T) {
	t.Parallel()

	// Set at compile time via ldflags; tests see the defaults.
	if version == "" {
		t.Error("version should not be empty")
	}
	if commit == "" {
		t.Error("commit should not be empty")
	}
	if date == "" {
		t.Error("date should not be empty")
	}
}

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
	"strings"
	"testing"
)

func TestExecute(t *testing.T) {
	resetCommandState(t)

	tests := []struct {
		name            string
		args            []string
		wantErr         bool
		wantErrContains string
		wantContains    string
	}{
		{
			name:         "help output",
			args:         []string{"--help"},
			wantContains: "icpp",
		},
		{
			name:            "unknown flag",
			args:            []string{"--unknown"},
			wantErr:         true,
			wantErrContains: "unknown flag",
		},
		{
			name:            "unknown command",
			args:            []string{"frobnicate"},
			wantErr:         true,
			wantErrContains: "unknown command",
		},
		{
			name:         "version flag",
			args:         []string{"--version"},
			wantContains: "icpp version",
		},
		{
			name:         "version shorthand",
			args:         []string{"-v"},
			wantContains: "icpp version",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := executeCommand(t, "", tt.args...)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if tt.wantErrContains != "" && !strings.Contains(err.Error(), tt.wantErrContains) {
					t.Errorf("error %q missing %q", err.Error(), tt.wantErrContains)
				}
				return
			}
			if err != nil {
				t.Fatalf("Execute() error = %v", err)
			}
			if tt.wantContains != "" && !strings.Contains(out, tt.wantContains) {
				t.Errorf("output missing %q", tt.wantContains)
			}
		})
	}
}

func TestRootCommandSilencesCobraOutput(t *testing.T) {
	if !rootCmd.SilenceErrors {
		t.Error("rootCmd should silence cobra error printing; main logs errors itself")
	}
	if !rootCmd.SilenceUsage {
		t.Error("rootCmd should not dump usage on runtime errors")
	}
}

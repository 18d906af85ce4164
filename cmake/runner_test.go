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

package cmake

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// requireShell skips tests that need a POSIX shell to drive a real
// subprocess.
func requireShell(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available on PATH")
	}
}

func TestNewExecRunner(t *testing.T) {
	t.Parallel()
	runner := NewExecRunner()
	assert.NotNil(t, runner.Stdout)
	assert.NotNil(t, runner.Stderr)
}

func TestExecRunner_Run(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("streams tool output to the configured writer", func(t *testing.T) {
		t.Parallel()
		requireShell(t)

		var stdout bytes.Buffer
		runner := &ExecRunner{Stdout: &stdout}

		err := runner.Run(ctx, t.TempDir(), "sh", "-c", "echo hello from tool")
		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "hello from tool")
	})

	t.Run("runs the tool in the requested directory", func(t *testing.T) {
		t.Parallel()
		requireShell(t)

		dir := t.TempDir()
		runner := &ExecRunner{Stdout: &bytes.Buffer{}}

		require.NoError(t, runner.Run(ctx, dir, "sh", "-c", "touch marker"))

		_, err := os.Stat(filepath.Join(dir, "marker"))
		assert.NoError(t, err)
	})

	t.Run("preserves the tool exit code", func(t *testing.T) {
		t.Parallel()
		requireShell(t)

		runner := &ExecRunner{Stdout: &bytes.Buffer{}, Stderr: &bytes.Buffer{}}
		err := runner.Run(ctx, t.TempDir(), "sh", "-c", "exit 3")
		require.Error(t, err)

		var exitErr *exec.ExitError
		require.True(t, errors.As(err, &exitErr))
		assert.Equal(t, 3, exitErr.ExitCode())
	})

	t.Run("fails for a tool that does not exist", func(t *testing.T) {
		t.Parallel()
		runner := &ExecRunner{Stdout: &bytes.Buffer{}, Stderr: &bytes.Buffer{}}
		err := runner.Run(ctx, t.TempDir(), "definitely-not-a-real-tool")
		assert.Error(t, err)
	})
}

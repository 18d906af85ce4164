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

package git

import (
	"context"
	"errors"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	icpperrors "github.com/LiamStanDev/icpp/errors"
	"github.com/LiamStanDev/icpp/logging"
)

// InitRepository initializes a non-bare git repository at path with
// "main" as the initial branch. An already-initialized directory is
// left untouched.
func InitRepository(ctx context.Context, path string) error {
	_, err := gogit.PlainInitWithOptions(path, &gogit.PlainInitOptions{
		InitOptions: gogit.InitOptions{
			DefaultBranch: plumbing.Main,
		},
		Bare: false,
	})
	if errors.Is(err, gogit.ErrRepositoryAlreadyExists) {
		logging.DebugContext(ctx, "Repository at %s already initialized", path)
		return nil
	}
	if err != nil {
		return icpperrors.Wrap("initialize git repository", path, err)
	}

	logging.DebugContext(ctx, "Initialized empty git repository in %s", path)
	return nil
}

// IsRepository reports whether path is inside a git repository work tree.
func IsRepository(path string) bool {
	_, err := gogit.PlainOpen(path)
	return err == nil
}

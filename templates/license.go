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

package templates

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/LiamStanDev/icpp/config"
	icpperrors "github.com/LiamStanDev/icpp/errors"
	"github.com/LiamStanDev/icpp/logging"
	"github.com/LiamStanDev/icpp/project"
)

// apacheLicenseURL is where the Apache-2.0 body is fetched from; the
// other license bodies ship embedded.
const apacheLicenseURL = "https://www.apache.org/licenses/LICENSE-2.0.txt"

const licenseFetchTimeout = 30 * time.Second

// Attribution carries the environment-derived values substituted into
// license bodies.
type Attribution struct {
	// Year is the copyright year.
	Year int
	// Owner is the copyright holder named in the license.
	Owner string
}

// LicenseWriter resolves license bodies. The Apache body is fetched
// over HTTP once and cached under the user cache directory; MIT and
// BSD ship embedded.
type LicenseWriter struct {
	httpClient *http.Client
	apacheURL  string
	cacheDir   func() (string, error)
}

// NewLicenseWriter creates a writer backed by the real network and
// cache locations.
func NewLicenseWriter() *LicenseWriter {
	return &LicenseWriter{
		httpClient: &http.Client{Timeout: licenseFetchTimeout},
		apacheURL:  apacheLicenseURL,
		cacheDir: func() (string, error) {
			return config.GetCacheDir("licenses")
		},
	}
}

// Render returns the license body for the given identifier with the
// attribution substituted. Unknown identifiers fall back to MIT.
func (lw *LicenseWriter) Render(ctx context.Context, licenseType string, attr Attribution) (string, error) {
	switch licenseType {
	case project.LicenseMIT:
		return renderAsset("mit.tmpl", attr)
	case project.LicenseBSD3:
		return renderAsset("bsd3.tmpl", attr)
	case project.LicenseApache:
		body, err := lw.fetchApache(ctx)
		if err != nil {
			return "", err
		}
		return substituteApache(body, attr), nil
	default:
		logging.WarnContext(ctx, "Unknown license %q, emitting MIT instead", licenseType)
		return renderAsset("mit.tmpl", attr)
	}
}

// fetchApache returns the Apache-2.0 body, preferring the cached copy
// from an earlier run.
func (lw *LicenseWriter) fetchApache(ctx context.Context) (string, error) {
	cachePath := ""
	if dir, err := lw.cacheDir(); err == nil {
		cachePath = filepath.Join(dir, "apache-2.0.txt")
		if data, readErr := os.ReadFile(cachePath); readErr == nil {
			logging.DebugContext(ctx, "Using cached Apache-2.0 license body from %s", cachePath)
			return string(data), nil
		}
	}

	logging.InfoContext(ctx, "Fetching Apache-2.0 license text from %s", lw.apacheURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, lw.apacheURL, nil)
	if err != nil {
		return "", icpperrors.Wrap("build license request", lw.apacheURL, err)
	}
	resp, err := lw.httpClient.Do(req)
	if err != nil {
		return "", icpperrors.Wrap("fetch license text", lw.apacheURL, err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			logging.DebugContext(ctx, "Failed to close license response body: %v", cerr)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return "", icpperrors.Wrap("fetch license text", lw.apacheURL, fmt.Errorf("unexpected status %s", resp.Status))
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", icpperrors.Wrap("read license response", lw.apacheURL, err)
	}

	if cachePath != "" {
		if writeErr := os.WriteFile(cachePath, data, config.FilePermReadWrite); writeErr != nil {
			logging.DebugContext(ctx, "Could not cache license body: %v", writeErr)
		}
	}

	return string(data), nil
}

// substituteApache fills the year and owner placeholders the upstream
// Apache body carries in its appendix.
func substituteApache(body string, attr Attribution) string {
	body = strings.ReplaceAll(body, "[yyyy]", strconv.Itoa(attr.Year))
	return strings.ReplaceAll(body, "[name of copyright owner]", attr.Owner)
}

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
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LiamStanDev/icpp/logging"
	"github.com/LiamStanDev/icpp/project"
)

const fakeApacheBody = `Apache License
Version 2.0, January 2004

Copyright [yyyy] [name of copyright owner]

Licensed under the Apache License, Version 2.0 (the "License");
`

// testContext returns a context carrying a quiet logger so tests stay silent.
func testContext() context.Context {
	logger := logging.NewCustomLoggerWithOptions("error", "plain", true, false)
	return logging.WithLogger(context.Background(), logger)
}

// newTestLicenseWriter returns a writer wired against the given server with a
// per-test cache directory.
func newTestLicenseWriter(t *testing.T, srv *httptest.Server) *LicenseWriter {
	t.Helper()
	cacheDir := t.TempDir()
	return &LicenseWriter{
		httpClient: srv.Client(),
		apacheURL:  srv.URL,
		cacheDir: func() (string, error) {
			return cacheDir, nil
		},
	}
}

func TestLicenseWriter_Render_MIT(t *testing.T) {
	t.Parallel()

	lw := NewLicenseWriter()
	body, err := lw.Render(testContext(), project.LicenseMIT, Attribution{Year: 2025, Owner: "Ada Lovelace"})
	require.NoError(t, err)

	assert.Contains(t, body, "MIT License")
	assert.Contains(t, body, "Copyright (c) 2025 Ada Lovelace")
	assert.Contains(t, body, "Permission is hereby granted")
}

func TestLicenseWriter_Render_BSD3(t *testing.T) {
	t.Parallel()

	lw := NewLicenseWriter()
	body, err := lw.Render(testContext(), project.LicenseBSD3, Attribution{Year: 2024, Owner: "Grace Hopper"})
	require.NoError(t, err)

	assert.Contains(t, body, "BSD 3-Clause License")
	assert.Contains(t, body, "Copyright (c) 2024, Grace Hopper")
	assert.Contains(t, body, "Redistribution and use")
}

func TestLicenseWriter_Render_UnknownFallsBackToMIT(t *testing.T) {
	t.Parallel()

	lw := NewLicenseWriter()
	body, err := lw.Render(testContext(), "WTFPL", Attribution{Year: 2025, Owner: "Ada Lovelace"})
	require.NoError(t, err)

	assert.Contains(t, body, "MIT License")
	assert.Contains(t, body, "Copyright (c) 2025 Ada Lovelace")
}

func TestLicenseWriter_Render_ApacheFetchesAndSubstitutes(t *testing.T) {
	t.Parallel()

	requests := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		_, _ = w.Write([]byte(fakeApacheBody))
	}))
	defer srv.Close()

	lw := newTestLicenseWriter(t, srv)
	body, err := lw.Render(testContext(), project.LicenseApache, Attribution{Year: 2025, Owner: "Ada Lovelace"})
	require.NoError(t, err)

	assert.Contains(t, body, "Apache License")
	assert.Contains(t, body, "Copyright 2025 Ada Lovelace")
	assert.NotContains(t, body, "[yyyy]")
	assert.NotContains(t, body, "[name of copyright owner]")
	assert.Equal(t, 1, requests)
}

func TestLicenseWriter_Render_ApacheUsesCachedBody(t *testing.T) {
	t.Parallel()

	requests := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		_, _ = w.Write([]byte(fakeApacheBody))
	}))
	defer srv.Close()

	lw := newTestLicenseWriter(t, srv)
	ctx := testContext()

	_, err := lw.Render(ctx, project.LicenseApache, Attribution{Year: 2025, Owner: "Ada Lovelace"})
	require.NoError(t, err)

	// The second render must be served from the cache written by the first.
	body, err := lw.Render(ctx, project.LicenseApache, Attribution{Year: 2026, Owner: "Grace Hopper"})
	require.NoError(t, err)

	assert.Equal(t, 1, requests)
	assert.Contains(t, body, "Copyright 2026 Grace Hopper")
}

func TestLicenseWriter_Render_ApacheSeededCacheSkipsNetwork(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("unexpected network request for a cached license body")
	}))
	defer srv.Close()

	cacheDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(cacheDir, "apache-2.0.txt"), []byte(fakeApacheBody), 0o644))

	lw := &LicenseWriter{
		httpClient: srv.Client(),
		apacheURL:  srv.URL,
		cacheDir: func() (string, error) {
			return cacheDir, nil
		},
	}

	body, err := lw.Render(testContext(), project.LicenseApache, Attribution{Year: 2025, Owner: "Ada Lovelace"})
	require.NoError(t, err)
	assert.Contains(t, body, "Copyright 2025 Ada Lovelace")
}

func TestLicenseWriter_Render_ApacheServerError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusInternalServerError)
	}))
	defer srv.Close()

	lw := newTestLicenseWriter(t, srv)
	_, err := lw.Render(testContext(), project.LicenseApache, Attribution{Year: 2025, Owner: "Ada Lovelace"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to fetch license text")
	assert.Contains(t, err.Error(), "unexpected status")
}

func TestSubstituteApache(t *testing.T) {
	t.Parallel()

	got := substituteApache("Copyright [yyyy] [name of copyright owner]", Attribution{Year: 2025, Owner: "Ada Lovelace"})
	assert.Equal(t, "Copyright 2025 Ada Lovelace", got)
}

// Package testhelpers provides common utilities and helper functions for testing the orchestrator server.
//
// This package contains reusable test utilities shared across package tests. It provides
// functions for starting servers on ephemeral ports, making HTTP requests, and asserting
// response properties to reduce code duplication in test files.
package testhelpers

import (
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Defi-Oracle-Tooling/FusionAI-Orchestrator/internal/server"
)

// LoopbackAddr asks the kernel for an ephemeral port on the loopback interface.
const LoopbackAddr = "127.0.0.1:0"

// StartServer binds srv through the server package and serves it in the background.
// It returns the base URL of the running server and registers a cleanup that shuts
// the server down once the test finishes.
func StartServer(t *testing.T, srv *http.Server) (string, net.Listener) {
	t.Helper()

	listener, err := server.Listen(srv)
	require.NoError(t, err, "Failed to bind listener")

	done := make(chan error, 1)
	go func() {
		done <- server.Serve(srv, listener)
	}()

	t.Cleanup(func() {
		assert.NoError(t, server.ShutdownServer(srv, 5*time.Second))
		assert.NoError(t, <-done)
	})

	return "http://" + listener.Addr().String(), listener
}

// requestClient bounds every test request so a hung listener fails the test
// instead of stalling the run.
var requestClient = &http.Client{Timeout: 5 * time.Second}

// MakeRequest sends an empty-bodied request to the orchestrator at url and
// returns the response. The caller owns the response body.
func MakeRequest(t *testing.T, method, url string) *http.Response {
	t.Helper()

	req, err := http.NewRequest(method, url, http.NoBody)
	require.NoError(t, err, "building %s %s", method, url)

	resp, err := requestClient.Do(req)
	require.NoError(t, err, "%s %s", method, url)
	return resp
}

// ReadBody reads and closes the response body.
func ReadBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "Failed to read response body")
	return string(body)
}

// AssertStatusCode checks if the HTTP response has the expected status code.
func AssertStatusCode(t *testing.T, resp *http.Response, expected int) {
	t.Helper()
	assert.Equal(t, expected, resp.StatusCode, "unexpected status code")
}

// AssertContentType checks if the HTTP response has the expected Content-Type header.
func AssertContentType(t *testing.T, resp *http.Response, expected string) {
	t.Helper()
	assert.Equal(t, expected, resp.Header.Get("Content-Type"), "unexpected content type")
}

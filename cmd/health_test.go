// ABOUTME: Tests for the health command
// ABOUTME: Verifies probe output and CI exit codes

package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestHealthCommand_Reachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	}))
	defer server.Close()

	apiURL = server.URL
	defer func() { apiURL = "" }()

	var buf bytes.Buffer
	if exitCode := runHealth(context.Background(), &buf); exitCode != 0 {
		t.Errorf("expected exit 0, got %d", exitCode)
	}
	if !strings.Contains(buf.String(), "Reachable: yes") {
		t.Errorf("unexpected output: %s", buf.String())
	}
}

func TestHealthCommand_ReachableEvenOnErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	apiURL = server.URL
	defer func() { apiURL = "" }()

	var buf bytes.Buffer
	if exitCode := runHealth(context.Background(), &buf); exitCode != 0 {
		t.Errorf("an HTTP response means reachable, got exit %d", exitCode)
	}
}

func TestHealthCommand_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // nothing listening anymore

	apiURL = server.URL
	defer func() { apiURL = "" }()

	var buf bytes.Buffer
	if exitCode := runHealth(context.Background(), &buf); exitCode != 2 {
		t.Errorf("expected exit 2, got %d", exitCode)
	}
	if !strings.Contains(buf.String(), "Reachable: no") {
		t.Errorf("unexpected output: %s", buf.String())
	}
}

func TestHealthCommand_JSONOutput(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer server.Close()

	apiURL = server.URL
	jsonOutput = true
	defer func() { apiURL = ""; jsonOutput = false }()

	var buf bytes.Buffer
	if exitCode := runHealth(context.Background(), &buf); exitCode != 0 {
		t.Fatalf("expected exit 0, got %d", exitCode)
	}

	var parsed map[string]any
	if err := json.Unmarshal(buf.Bytes(), &parsed); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if parsed["reachable"] != true {
		t.Errorf("expected reachable true, got %v", parsed["reachable"])
	}
}

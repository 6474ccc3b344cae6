package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func setupConsole(t *testing.T) func(args ...string) (string, error) {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		writeTestJSON(w, map[string]string{"accessToken": "T1", "refreshToken": "R1"})
	})
	mux.HandleFunc("/api/user-tenants/my-tenants", func(w http.ResponseWriter, r *http.Request) {
		writeTestJSON(w, []map[string]string{{"id": "m-1", "tenantId": "tenant-1", "name": "Dakar", "role": "pdg"}})
	})
	mux.HandleFunc("/api/orders", func(w http.ResponseWriter, r *http.Request) {
		writeTestJSON(w, map[string]string{"tenant": r.Header.Get("X-Tenant-ID"), "auth": r.Header.Get("Authorization")})
	})
	mux.HandleFunc("/api/auth/logout", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	t.Setenv("RAYA_API_BASE", server.URL+"/api")
	t.Setenv("RAYA_STORE_PATH", filepath.Join(t.TempDir(), "session.json"))
	t.Setenv("RAYA_STORE_SECRET", "test-secret")
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("RAYA_PASSWORD", "")

	return func(args ...string) (string, error) {
		var out bytes.Buffer
		err := run(args, &out)
		return out.String(), err
	}
}

func writeTestJSON(w http.ResponseWriter, body any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(body)
}

func TestConsoleSession(t *testing.T) {
	console := setupConsole(t)

	out, err := console("status")
	require.NoError(t, err)
	require.Contains(t, out, "not logged in")

	_, err = console("login", "-email", "awa@raya.sn")
	require.Error(t, err)

	out, err = console("login", "-email", "awa@raya.sn", "-password", "password123")
	require.NoError(t, err)
	require.Contains(t, out, "logged in as awa@raya.sn")

	out, err = console("status")
	require.NoError(t, err)
	require.Contains(t, out, "refresh token held: true")

	out, err = console("use", "tenant-1")
	require.NoError(t, err)
	require.Contains(t, out, "using Dakar")

	out, err = console("tenants")
	require.NoError(t, err)
	require.Contains(t, out, "* tenant-1")

	out, err = console("get", "/orders")
	require.NoError(t, err)
	require.Contains(t, out, `"tenant": "tenant-1"`)
	require.Contains(t, out, `"auth": "Bearer T1"`)

	out, err = console("get", "orders")
	require.NoError(t, err, "a path without a leading slash is joined to the base")
	require.Contains(t, out, `"tenant": "tenant-1"`)

	out, err = console("logout")
	require.NoError(t, err)
	require.Contains(t, out, "logged out")

	out, err = console("status")
	require.NoError(t, err)
	require.Contains(t, out, "not logged in")
}

func TestConsoleUsageErrors(t *testing.T) {
	console := setupConsole(t)

	_, err := console("frobnicate")
	require.Error(t, err)

	_, err = console("get")
	require.Error(t, err)

	_, err = console("post", "/orders", "{not json")
	require.Error(t, err)

	_, err = console("use", "tenant-404")
	require.Error(t, err)
}

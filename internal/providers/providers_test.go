package providers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"gopkg.in/yaml.v3"
)

// staticCreds satisfies Credentials from an in-memory auth mapping.
type staticCreds map[string]any

func (c staticCreds) DecodeAuth(v any) error {
	if len(c) == 0 {
		return nil
	}
	data, err := yaml.Marshal(map[string]any(c))
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, v)
}

// newRoutedTestServer spins up an httptest.Server that routes based on
// method + path. The handlers map is keyed by "METHOD /path".
func newRoutedTestServer(t *testing.T, handlers map[string]http.HandlerFunc) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := r.Method + " " + r.URL.Path
		if h, ok := handlers[key]; ok {
			h(w, r)
			return
		}
		t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		w.WriteHeader(http.StatusNotImplemented)
	}))
	t.Cleanup(srv.Close)
	return srv
}

// writeJSON writes v with the given status code.
func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		t.Errorf("failed to encode test response: %v", err)
	}
}

package source

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestUsernameSourceLookup(t *testing.T) {
	t.Parallel()

	t.Run("maps relay results", func(t *testing.T) {
		t.Parallel()
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost || r.URL.Path != "/search" {
				t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
			}
			var req usernameSearchRequest
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				t.Errorf("failed to decode request body: %v", err)
			}
			if req.Username != "janedoe" {
				t.Errorf("username = %q, want janedoe", req.Username)
			}
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{
				"username": "janedoe",
				"found": [
					{"site": "GitHub", "url": "https://github.com/janedoe"},
					{"site": "Reddit", "url": "https://reddit.com/user/janedoe"}
				]
			}`))
		}))
		defer server.Close()

		src := NewUsernameSource(server.Client(), stubCreds{}, WithBaseURL(server.URL))
		presence := src.Lookup(context.Background(), "janedoe")
		if presence == nil {
			t.Fatal("Lookup returned nil, want presence")
		}
		if presence.Username != "janedoe" || len(presence.Found) != 2 {
			t.Fatalf("presence = %+v, want janedoe with 2 profiles", presence)
		}
		if presence.Found[0].Site != "GitHub" || presence.Found[0].URL != "https://github.com/janedoe" {
			t.Errorf("Found[0] = %+v, want GitHub profile", presence.Found[0])
		}
	})

	t.Run("empty username skips the network", func(t *testing.T) {
		t.Parallel()
		src := NewUsernameSource(&failingDoer{t: t}, stubCreds{})
		if presence := src.Lookup(context.Background(), ""); presence != nil {
			t.Errorf("Lookup = %+v, want nil for empty username", presence)
		}
	})

	t.Run("relay error degrades to nil", func(t *testing.T) {
		t.Parallel()
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "boom", http.StatusBadGateway)
		}))
		defer server.Close()

		src := NewUsernameSource(server.Client(), stubCreds{}, WithBaseURL(server.URL))
		if presence := src.Lookup(context.Background(), "janedoe"); presence != nil {
			t.Errorf("Lookup = %+v, want nil on relay error", presence)
		}
	})
}

package source

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestReputationSourceLookup(t *testing.T) {
	t.Parallel()

	t.Run("maps provider signals", func(t *testing.T) {
		t.Parallel()
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/jane@example.com" {
				t.Errorf("unexpected path %q", r.URL.Path)
			}
			if r.Header.Get("Key") != "rep-key" {
				t.Errorf("Key header = %q, want rep-key", r.Header.Get("Key"))
			}
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{
				"email": "jane@example.com",
				"reputation": "low",
				"suspicious": true,
				"references": 12,
				"details": {
					"credentials_leaked": true,
					"data_breach": true,
					"free_provider": true
				}
			}`))
		}))
		defer server.Close()

		src := NewReputationSource(server.Client(), stubCreds{ServiceEmailRep: "rep-key"}, WithBaseURL(server.URL))
		rep := src.Lookup(context.Background(), "jane@example.com")
		if rep == nil {
			t.Fatal("Lookup returned nil, want reputation")
		}
		if !rep.Suspicious || rep.Reputation != "low" || rep.References != 12 {
			t.Errorf("reputation = %+v, want mapped provider fields", rep)
		}
		if !rep.Details.CredentialsLeaked || !rep.Details.DataBreach || !rep.Details.FreeProvider {
			t.Errorf("details = %+v, want mapped signals", rep.Details)
		}
	})

	t.Run("server error degrades to nil", func(t *testing.T) {
		t.Parallel()
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		}))
		defer server.Close()

		src := NewReputationSource(server.Client(), stubCreds{ServiceEmailRep: "rep-key"}, WithBaseURL(server.URL))
		if rep := src.Lookup(context.Background(), "jane@example.com"); rep != nil {
			t.Errorf("Lookup = %+v, want nil on server error", rep)
		}
	})

	t.Run("missing credential skips the network", func(t *testing.T) {
		t.Parallel()
		src := NewReputationSource(&failingDoer{t: t}, stubCreds{})
		if rep := src.Lookup(context.Background(), "jane@example.com"); rep != nil {
			t.Errorf("Lookup = %+v, want nil without credential", rep)
		}
	})
}

package source

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestBreachSourceLookup(t *testing.T) {
	t.Parallel()

	t.Run("maps provider records", func(t *testing.T) {
		t.Parallel()
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/breachedaccount/jane@example.com" {
				t.Errorf("unexpected path %q", r.URL.Path)
			}
			if r.URL.Query().Get("truncateResponse") != "false" {
				t.Errorf("truncateResponse = %q, want false", r.URL.Query().Get("truncateResponse"))
			}
			if r.Header.Get("hibp-api-key") != "test-key" {
				t.Errorf("hibp-api-key = %q, want test-key", r.Header.Get("hibp-api-key"))
			}
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`[
				{
					"Name": "ExampleCo2022",
					"Title": "ExampleCo",
					"Domain": "example.co",
					"BreachDate": "2022-05-01",
					"DataClasses": ["Passwords", "Email addresses"],
					"IsVerified": true,
					"PwnCount": 12345,
					"UnknownProviderField": "dropped"
				}
			]`))
		}))
		defer server.Close()

		src := NewBreachSource(server.Client(), stubCreds{ServiceHIBP: "test-key"}, WithBaseURL(server.URL))
		records, err := src.Lookup(context.Background(), "jane@example.com")
		if err != nil {
			t.Fatalf("Lookup returned error: %v", err)
		}
		if len(records) != 1 {
			t.Fatalf("Lookup returned %d records, want 1", len(records))
		}
		got := records[0]
		if got.Name != "ExampleCo2022" || got.Title != "ExampleCo" || got.BreachDate != "2022-05-01" {
			t.Errorf("record = %+v, want mapped provider fields", got)
		}
		if !got.IsVerified || got.PwnCount != 12345 {
			t.Errorf("record flags = %+v, want verified with pwn count", got)
		}
		if len(got.DataClasses) != 2 {
			t.Errorf("DataClasses = %v, want 2 entries", got.DataClasses)
		}
	})

	t.Run("404 means not breached, not failure", func(t *testing.T) {
		t.Parallel()
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "not found", http.StatusNotFound)
		}))
		defer server.Close()

		src := NewBreachSource(server.Client(), stubCreds{ServiceHIBP: "test-key"}, WithBaseURL(server.URL))
		records, err := src.Lookup(context.Background(), "clean@example.com")
		if err != nil {
			t.Fatalf("Lookup returned error for 404: %v", err)
		}
		if len(records) != 0 {
			t.Errorf("Lookup returned %d records for 404, want 0", len(records))
		}
	})

	t.Run("server error is returned to the caller", func(t *testing.T) {
		t.Parallel()
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		}))
		defer server.Close()

		src := NewBreachSource(server.Client(), stubCreds{ServiceHIBP: "test-key"}, WithBaseURL(server.URL))
		if _, err := src.Lookup(context.Background(), "jane@example.com"); err == nil {
			t.Error("Lookup returned nil error for status 500, want error")
		}
	})

	t.Run("missing credential skips the network", func(t *testing.T) {
		t.Parallel()
		src := NewBreachSource(&failingDoer{t: t}, stubCreds{})
		records, err := src.Lookup(context.Background(), "jane@example.com")
		if err != nil {
			t.Fatalf("Lookup returned error without credential: %v", err)
		}
		if records != nil {
			t.Errorf("Lookup = %v, want nil without credential", records)
		}
	})
}

package source

import (
	"net/http"
	"testing"
)

// stubCreds is an in-memory CredentialReader for tests.
type stubCreds map[string]string

func (c stubCreds) Get(service string) (string, error) {
	return c[service], nil
}

func (c stubCreds) Has(service string) bool {
	_, ok := c[service]
	return ok
}

// failingDoer fails the test if any request reaches it. Used to verify
// that adapters take the no-credential path without a network call.
type failingDoer struct {
	t *testing.T
}

func (d *failingDoer) Do(req *http.Request) (*http.Response, error) {
	d.t.Helper()
	d.t.Fatalf("unexpected request to %s", req.URL)
	return nil, nil
}

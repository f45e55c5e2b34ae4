package main

import "testing"

// TestValidateService tests the service name check.
func TestValidateService(t *testing.T) {
	t.Parallel()

	tests := []struct {
		service string
		wantErr bool
	}{
		{"hibp", false},
		{"emailrep", false},
		{"socialsearcher", false},
		{"serpapi", false},
		{"sherlock", true}, // relay needs no key
		{"unknown", true},
		{"", true},
	}

	for _, tt := range tests {
		t.Run(tt.service, func(t *testing.T) {
			t.Parallel()

			err := validateService(tt.service)
			if tt.wantErr && err == nil {
				t.Errorf("validateService(%q) succeeded, want error", tt.service)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("validateService(%q) returned error: %v", tt.service, err)
			}
		})
	}
}

// TestKeysCmdStructure tests the keys command wiring.
func TestKeysCmdStructure(t *testing.T) {
	t.Parallel()

	cmd := NewKeysCmd()

	want := map[string]bool{"set": false, "list": false, "delete": false}
	for _, sub := range cmd.Commands() {
		if _, ok := want[sub.Name()]; ok {
			want[sub.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("expected subcommand %q", name)
		}
	}
}

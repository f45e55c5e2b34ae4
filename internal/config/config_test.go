package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// TestNewConfig verifies that NewConfig returns a Config with all expected default values.
// This test ensures that defaults are documented through tests and that changes
// to defaults are intentional (tests will fail if defaults change unexpectedly).
func TestNewConfig(t *testing.T) {
	t.Parallel()

	cfg := NewConfig()

	// Verify each default value explicitly
	// This serves as living documentation of the defaults
	t.Run("default SourceTimeout is 30 seconds", func(t *testing.T) {
		t.Parallel()
		if cfg.SourceTimeout != 30*time.Second {
			t.Errorf("expected SourceTimeout to be 30s, got %v", cfg.SourceTimeout)
		}
	})

	t.Run("default ScanDelay is 1 second", func(t *testing.T) {
		t.Parallel()
		if cfg.ScanDelay != 1*time.Second {
			t.Errorf("expected ScanDelay to be 1s, got %v", cfg.ScanDelay)
		}
	})

	t.Run("default MaxWebResults is 15", func(t *testing.T) {
		t.Parallel()
		if cfg.MaxWebResults != 15 {
			t.Errorf("expected MaxWebResults to be 15, got %d", cfg.MaxWebResults)
		}
	})

	t.Run("default UserAgent identifies exposcan", func(t *testing.T) {
		t.Parallel()
		if cfg.UserAgent != DefaultUserAgent {
			t.Errorf("expected UserAgent to be %q, got %q", DefaultUserAgent, cfg.UserAgent)
		}
	})

	t.Run("default DBDir is the XDG data directory", func(t *testing.T) {
		t.Parallel()
		if cfg.DBDir != XDGDataDir() {
			t.Errorf("expected DBDir to be %q, got %q", XDGDataDir(), cfg.DBDir)
		}
	})

	t.Run("report formats default to simple output", func(t *testing.T) {
		t.Parallel()
		if cfg.JSONReport || cfg.MarkdownReport {
			t.Error("expected JSONReport and MarkdownReport to be false")
		}
	})
}

func validTestConfig() *Config {
	cfg := NewConfig()
	cfg.Name = "Jane Doe"
	cfg.Emails = []string{"jane@example.com"}
	return cfg
}

func TestConfigValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{
			name:    "valid config passes",
			mutate:  func(*Config) {},
			wantErr: nil,
		},
		{
			name:    "missing name",
			mutate:  func(c *Config) { c.Name = "" },
			wantErr: ErrNoName,
		},
		{
			name:    "missing emails",
			mutate:  func(c *Config) { c.Emails = nil },
			wantErr: ErrNoEmail,
		},
		{
			name:    "zero timeout",
			mutate:  func(c *Config) { c.SourceTimeout = 0 },
			wantErr: ErrInvalidTimeout,
		},
		{
			name:    "negative scan delay",
			mutate:  func(c *Config) { c.ScanDelay = -time.Second },
			wantErr: ErrInvalidScanDelay,
		},
		{
			name:    "negative web result limit",
			mutate:  func(c *Config) { c.MaxWebResults = -1 },
			wantErr: ErrInvalidWebResultLimit,
		},
		{
			name: "conflicting report formats",
			mutate: func(c *Config) {
				c.JSONReport = true
				c.MarkdownReport = true
			},
			wantErr: ErrConflictingReportFormats,
		},
		{
			name:    "zero web result limit means default",
			mutate:  func(c *Config) { c.MaxWebResults = 0 },
			wantErr: nil,
		},
		{
			name:    "zero scan delay is allowed",
			mutate:  func(c *Config) { c.ScanDelay = 0 },
			wantErr: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := validTestConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() returned unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadProfileFile(t *testing.T) {
	t.Parallel()

	t.Run("loads profiles with defaults", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), ".exposcan")
		content := `
defaults:
  location: "Berlin"
profiles:
  jane:
    name: "Jane Doe"
    emails:
      - jane@example.com
      - jane.doe@example.org
  john:
    name: "John Smith"
    emails:
      - john@example.com
    location: "Hamburg"
`
		if err := os.WriteFile(path, []byte(content), 0600); err != nil {
			t.Fatalf("failed to write profile file: %v", err)
		}

		f, err := LoadProfileFile(path)
		if err != nil {
			t.Fatalf("LoadProfileFile returned error: %v", err)
		}

		jane, ok := f.GetProfile("jane")
		if !ok {
			t.Fatal("GetProfile(jane) not found")
		}
		if jane.Name != "Jane Doe" || len(jane.Emails) != 2 {
			t.Errorf("jane = %+v, want name and two emails", jane)
		}
		if jane.Location != "Berlin" {
			t.Errorf("jane.Location = %q, want default Berlin", jane.Location)
		}

		john, ok := f.GetProfile("john")
		if !ok {
			t.Fatal("GetProfile(john) not found")
		}
		if john.Location != "Hamburg" {
			t.Errorf("john.Location = %q, want profile override Hamburg", john.Location)
		}
	})

	t.Run("missing file returns ErrProfileFileNotFound", func(t *testing.T) {
		t.Parallel()

		_, err := LoadProfileFile(filepath.Join(t.TempDir(), "missing"))
		if !errors.Is(err, ErrProfileFileNotFound) {
			t.Errorf("LoadProfileFile error = %v, want ErrProfileFileNotFound", err)
		}
	})

	t.Run("invalid YAML returns error", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), ".exposcan")
		if err := os.WriteFile(path, []byte("profiles: [not a map"), 0600); err != nil {
			t.Fatalf("failed to write profile file: %v", err)
		}
		if _, err := LoadProfileFile(path); err == nil {
			t.Error("LoadProfileFile succeeded on invalid YAML")
		}
	})

	t.Run("unknown profile is not found", func(t *testing.T) {
		t.Parallel()

		f := &File{Profiles: map[string]Profile{}}
		if _, ok := f.GetProfile("nobody"); ok {
			t.Error("GetProfile returned ok for unknown profile")
		}
	})
}

func TestFindProfileFile(t *testing.T) {
	t.Run("explicit path wins when it exists", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "custom.yml")
		if err := os.WriteFile(path, []byte("profiles: {}"), 0600); err != nil {
			t.Fatalf("failed to write profile file: %v", err)
		}
		if got := FindProfileFile(path); got != path {
			t.Errorf("FindProfileFile = %q, want %q", got, path)
		}
	})

	t.Run("explicit path that does not exist returns empty", func(t *testing.T) {
		if got := FindProfileFile(filepath.Join(t.TempDir(), "missing")); got != "" {
			t.Errorf("FindProfileFile = %q, want empty", got)
		}
	})
}

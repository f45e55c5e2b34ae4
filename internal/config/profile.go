package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultProfileFile is the default profile file name.
const DefaultProfileFile = ".exposcan"

// ErrProfileFileNotFound is returned when the profile file does not exist.
var ErrProfileFileNotFound = errors.New("profile file not found")

// Profile holds a saved scan subject so recurring scans don't need the
// full set of CLI flags every time.
type Profile struct {
	// Name is the full name of the person.
	Name string `yaml:"name,omitempty"`

	// Emails is the list of email addresses to scan.
	Emails []string `yaml:"emails,omitempty"`

	// Location is an optional city or region used to narrow web searches.
	Location string `yaml:"location,omitempty"`
}

// File represents the structure of the .exposcan profile file.
type File struct {
	// Profiles maps profile names to saved scan subjects.
	Profiles map[string]Profile `yaml:"profiles,omitempty"`

	// Defaults contains values applied to every profile unless the
	// profile overrides them. Useful for a shared location.
	Defaults Profile `yaml:"defaults,omitempty"`
}

// GetProfile returns the named profile merged with the file's defaults.
// The second return value is false when no profile with that name exists.
func (f *File) GetProfile(name string) (Profile, bool) {
	profile, ok := f.Profiles[name]
	if !ok {
		return Profile{}, false
	}

	// Start with defaults, override with the profile's own values
	result := f.Defaults
	if profile.Name != "" {
		result.Name = profile.Name
	}
	if len(profile.Emails) > 0 {
		result.Emails = profile.Emails
	}
	if profile.Location != "" {
		result.Location = profile.Location
	}
	return result, true
}

// LoadProfileFile loads saved profiles from a YAML file.
// If the file does not exist, it returns ErrProfileFileNotFound.
// Callers should handle this error appropriately based on whether
// the profile file path was explicitly specified by the user.
func LoadProfileFile(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided profile path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrProfileFileNotFound
		}
		return nil, err
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, err
	}

	if f.Profiles == nil {
		f.Profiles = make(map[string]Profile)
	}
	return &f, nil
}

// FindProfileFile searches for the profile file in the following order:
// 1. If profilePath is specified, use it directly
// 2. Look for .exposcan in the current directory
// 3. Look for .exposcan in the user's home directory
//
// Returns the path to the profile file if found, or empty string if not found.
func FindProfileFile(profilePath string) string {
	// If explicit path is provided, use it
	if profilePath != "" {
		if _, err := os.Stat(profilePath); err == nil {
			return profilePath
		}
		return ""
	}

	// Check current directory
	cwd, err := os.Getwd()
	if err == nil {
		cwdProfile := filepath.Join(cwd, DefaultProfileFile)
		if _, err := os.Stat(cwdProfile); err == nil {
			return cwdProfile
		}
	}

	// Check home directory
	home, err := os.UserHomeDir()
	if err == nil {
		homeProfile := filepath.Join(home, DefaultProfileFile)
		if _, err := os.Stat(homeProfile); err == nil {
			return homeProfile
		}
	}

	return ""
}

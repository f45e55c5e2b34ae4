package credentials

import (
	"crypto/cipher"
	"crypto/rand"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/crypto/chacha20poly1305"
	_ "modernc.org/sqlite" // SQLite driver
)

// keyFileName is the master key file in the config directory.
const keyFileName = "credentials.key"

// dbFileName is the credential database file in the data directory.
const dbFileName = "credentials.db"

// ErrNotFound is returned when no credential is stored for a service.
var ErrNotFound = errors.New("credential not found")

// Store is an encrypted keyed credential store.
//
// Design decision: Values are sealed individually with a random nonce
// rather than encrypting the whole database file because:
//  1. SQLite keeps handling durability and concurrent access
//  2. Listing service names never needs decryption
//  3. A corrupted value loses one credential, not the whole store
type Store struct {
	db   *sql.DB
	aead cipher.AEAD
}

// Open opens (or creates) the credential store. The database lives in
// dataDir, the master key in configDir; both directories are created when
// missing.
func Open(dataDir, configDir string) (*Store, error) {
	key, err := loadOrCreateKey(filepath.Join(configDir, keyFileName))
	if err != nil {
		return nil, err
	}

	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cipher: %w", err)
	}

	if err := os.MkdirAll(dataDir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	db, err := sql.Open("sqlite", filepath.Join(dataDir, dbFileName)+"?mode=rwc")
	if err != nil {
		return nil, fmt.Errorf("failed to open credential database: %w", err)
	}

	// SQLite only supports one writer.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	schema := `
	CREATE TABLE IF NOT EXISTS credentials (
		service    TEXT PRIMARY KEY,
		value      BLOB NOT NULL,
		updated_at TEXT NOT NULL
	)`
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create credential table: %w", err)
	}

	return &Store{db: db, aead: aead}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Set stores the credential for a service, replacing any existing value.
func (s *Store) Set(service, value string) error {
	nonce := make([]byte, s.aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return fmt.Errorf("failed to generate nonce: %w", err)
	}

	// Sealed layout: nonce || ciphertext.
	sealed := s.aead.Seal(nonce, nonce, []byte(value), []byte(service))

	_, err := s.db.Exec(
		`INSERT INTO credentials (service, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(service) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		service, sealed, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to store credential for %s: %w", service, err)
	}
	return nil
}

// Get returns the credential stored for a service.
// Returns ErrNotFound when none is stored.
func (s *Store) Get(service string) (string, error) {
	var sealed []byte
	err := s.db.QueryRow(`SELECT value FROM credentials WHERE service = ?`, service).Scan(&sealed)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("%w: %s", ErrNotFound, service)
	}
	if err != nil {
		return "", fmt.Errorf("failed to read credential for %s: %w", service, err)
	}

	if len(sealed) < s.aead.NonceSize() {
		return "", fmt.Errorf("credential for %s is malformed", service)
	}
	nonce, ciphertext := sealed[:s.aead.NonceSize()], sealed[s.aead.NonceSize():]

	value, err := s.aead.Open(nil, nonce, ciphertext, []byte(service))
	if err != nil {
		return "", fmt.Errorf("failed to decrypt credential for %s: %w", service, err)
	}
	return string(value), nil
}

// Has reports whether a credential is stored for a service.
func (s *Store) Has(service string) bool {
	var one int
	err := s.db.QueryRow(`SELECT 1 FROM credentials WHERE service = ?`, service).Scan(&one)
	return err == nil
}

// Delete removes the credential for a service. Deleting a service that
// has no credential is not an error.
func (s *Store) Delete(service string) error {
	if _, err := s.db.Exec(`DELETE FROM credentials WHERE service = ?`, service); err != nil {
		return fmt.Errorf("failed to delete credential for %s: %w", service, err)
	}
	return nil
}

// List returns the service names with stored credentials, sorted.
// Values are never returned; use Get for a specific service.
func (s *Store) List() ([]string, error) {
	rows, err := s.db.Query(`SELECT service FROM credentials ORDER BY service`)
	if err != nil {
		return nil, fmt.Errorf("failed to list credentials: %w", err)
	}
	defer rows.Close()

	var services []string
	for rows.Next() {
		var service string
		if err := rows.Scan(&service); err != nil {
			return nil, fmt.Errorf("failed to scan credential row: %w", err)
		}
		services = append(services, service)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list credentials: %w", err)
	}
	return services, nil
}

// loadOrCreateKey reads the master key, generating it on first use.
// The key file is created with 0600 so only the owning user can read it.
func loadOrCreateKey(path string) ([]byte, error) {
	key, err := os.ReadFile(path)
	if err == nil {
		if len(key) != chacha20poly1305.KeySize {
			return nil, fmt.Errorf("master key at %s has wrong size %d", path, len(key))
		}
		return key, nil
	}
	if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read master key: %w", err)
	}

	key = make([]byte, chacha20poly1305.KeySize)
	if _, err := rand.Read(key); err != nil {
		return nil, fmt.Errorf("failed to generate master key: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, key, 0600); err != nil {
		return nil, fmt.Errorf("failed to write master key: %w", err)
	}
	return key, nil
}

package credstore

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// FileStore persists the credential in a single file under the user's home
// directory. The parent directory is created with 0700 and the file is
// written with 0600 so other local users cannot read the token. Writes go
// through a temp file and rename so a crash never leaves a truncated
// credential behind.
type FileStore struct {
	mu   sync.Mutex
	path string
}

// DefaultCredentialPath returns the default credential file location,
// ~/.servio-admin/credential.
func DefaultCredentialPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, ".servio-admin", "credential"), nil
}

// NewFileStore creates a file-backed credential store at path. An empty path
// selects DefaultCredentialPath. The parent directory is created eagerly so
// permission problems surface at startup rather than at login.
func NewFileStore(path string) (*FileStore, error) {
	if path == "" {
		var err error
		path, err = DefaultCredentialPath()
		if err != nil {
			return nil, err
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("failed to create credential directory: %w", err)
	}

	return &FileStore{path: path}, nil
}

// Path returns the credential file location.
func (s *FileStore) Path() string {
	return s.path
}

// Load reads the credential from disk, or returns ErrNotFound when the file
// does not exist or holds nothing.
func (s *FileStore) Load(_ context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("failed to read credential file: %w", err)
	}

	token := strings.TrimSpace(string(data))
	if token == "" {
		return "", ErrNotFound
	}
	return token, nil
}

// Save writes the credential atomically via a temp file and rename.
func (s *FileStore) Save(_ context.Context, token string) error {
	if token == "" {
		return ErrEmptyToken
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, []byte(token+"\n"), 0600); err != nil {
		return fmt.Errorf("failed to write credential file: %w", err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath) // Best effort cleanup
		return fmt.Errorf("failed to save credential file: %w", err)
	}

	return nil
}

// Delete removes the credential file. Idempotent.
func (s *FileStore) Delete(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete credential file: %w", err)
	}
	return nil
}

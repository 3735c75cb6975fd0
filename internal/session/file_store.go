package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"trouvaille/models"
)

type fileStore struct {
	path string
}

// NewFileStore returns a [Store] that keeps the credential pair as plain
// JSON in a 0600 file. This mirrors the original client's localStorage
// scheme: durable, unencrypted, single-client.
func NewFileStore(path string) Store {
	return &fileStore{path: path}
}

func (s *fileStore) Set(creds models.Credentials) error {
	payload, err := json.MarshalIndent(creds, "", "  ")
	if err != nil {
		return fmt.Errorf("encode credentials: %w", err)
	}
	return writeSessionFile(s.path, payload)
}

func (s *fileStore) Get() (models.Credentials, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return models.Credentials{}, ErrNoSession
		}
		return models.Credentials{}, fmt.Errorf("read session file: %w", err)
	}

	var creds models.Credentials
	if err = json.Unmarshal(data, &creds); err != nil {
		return models.Credentials{}, fmt.Errorf("decode session file: %w", err)
	}
	return creds, nil
}

func (s *fileStore) Clear() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove session file: %w", err)
	}
	return nil
}

func (s *fileStore) Present() bool {
	_, err := os.Stat(s.path)
	return err == nil
}

func writeSessionFile(path string, payload []byte) error {
	dir := filepath.Dir(path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create session dir: %w", err)
		}
	}

	if err := os.WriteFile(path, payload, 0o600); err != nil {
		return fmt.Errorf("write session file: %w", err)
	}
	return nil
}

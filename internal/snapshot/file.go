package snapshot

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/noah-isme/campus-erp-api/internal/models"
)

const (
	dataFileName    = "campus-erp-data.json"
	sessionFileName = "campus-erp-user.json"
)

// FileStore keeps the aggregate document and session reference as JSON
// files under a base directory.
type FileStore struct {
	dir string
}

// NewFileStore ensures the base directory exists and returns a handle.
func NewFileStore(dir string) (*FileStore, error) {
	if dir == "" {
		dir = "./data"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

// Load reads and decodes the aggregate document.
func (s *FileStore) Load(ctx context.Context) (*models.Snapshot, error) {
	raw, err := os.ReadFile(filepath.Join(s.dir, dataFileName))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("read snapshot file: %w", err)
	}
	var snap models.Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return nil, fmt.Errorf("decode snapshot file: %w", err)
	}
	return &snap, nil
}

// Save encodes and writes the aggregate document atomically.
func (s *FileStore) Save(ctx context.Context, snap *models.Snapshot) error {
	raw, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	return s.writeFile(dataFileName, raw)
}

// LoadSession reads the persisted session reference.
func (s *FileStore) LoadSession(ctx context.Context) (string, error) {
	raw, err := os.ReadFile(filepath.Join(s.dir, sessionFileName))
	if err != nil {
		if os.IsNotExist(err) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("read session file: %w", err)
	}
	var accountID string
	if err := json.Unmarshal(raw, &accountID); err != nil {
		return "", fmt.Errorf("decode session file: %w", err)
	}
	return accountID, nil
}

// SaveSession writes the session reference, or removes it when empty.
func (s *FileStore) SaveSession(ctx context.Context, accountID string) error {
	if strings.TrimSpace(accountID) == "" {
		if err := os.Remove(filepath.Join(s.dir, sessionFileName)); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("remove session file: %w", err)
		}
		return nil
	}
	raw, err := json.Marshal(accountID)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	return s.writeFile(sessionFileName, raw)
}

// writeFile writes via a temp file and rename so readers never observe a
// torn document.
func (s *FileStore) writeFile(name string, raw []byte) error {
	path := filepath.Join(s.dir, name)
	tmp, err := os.CreateTemp(s.dir, name+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace file: %w", err)
	}
	return nil
}

// Package index persists chunk records as a single JSON snapshot. An index
// is rebuilt wholesale and read-only while serving.
package index

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"askme/internal/domain"
)

// ErrMissingOrEmpty reports that no usable index exists. Callers should tell
// the user to rebuild.
var ErrMissingOrEmpty = errors.New("index missing or empty")

// FileStore reads and writes one index generation as a JSON array of chunk
// records. Load also recognizes a legacy artifact path; only the primary
// path is ever written.
type FileStore struct {
	path       string
	legacyPath string
}

// NewFileStore creates a store over the primary path and an optional legacy
// fallback path.
func NewFileStore(path, legacyPath string) *FileStore {
	return &FileStore{path: path, legacyPath: legacyPath}
}

// Load reads the index. If the primary artifact is absent the legacy path is
// tried; only one of the two is ever read. An absent or empty index yields
// ErrMissingOrEmpty.
func (s *FileStore) Load() ([]domain.ChunkRecord, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) && s.legacyPath != "" {
		data, err = os.ReadFile(s.legacyPath)
	}
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrMissingOrEmpty
		}
		return nil, fmt.Errorf("read index: %w", err)
	}
	var records []domain.ChunkRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parse index: %w", err)
	}
	if len(records) == 0 {
		return nil, ErrMissingOrEmpty
	}
	return records, nil
}

// Save writes a fresh index generation to the primary path, fully replacing
// any prior file.
func (s *FileStore) Save(records []domain.ChunkRecord) error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create index dir: %w", err)
		}
	}
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encode index: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write index: %w", err)
	}
	return nil
}

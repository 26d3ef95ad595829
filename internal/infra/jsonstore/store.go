// Package jsonstore provides a JSON file-based implementation of DocumentStore.
package jsonstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/ytakei/taskwarden/internal/domain"
)

// Store implements domain.DocumentStore using a single JSON file holding the
// whole dataset. Writes go through a temp file plus rename, so a crashed
// write never leaves a half-written document. There is no cross-process
// locking: two concurrent writers are last-writer-wins, which is acceptable
// only with a single active caller per file.
type Store struct {
	path string
}

// New creates a new Store for the given file path.
// The file does not need to exist; it will be created on first write.
func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the store file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads the persisted document. A missing file yields an empty
// document. An unparsable file is moved aside to <path>.corrupt-<unix>
// for forensics and also yields an empty document.
func (s *Store) Load() (*domain.Document, error) {
	content, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return &domain.Document{}, nil
		}
		return nil, fmt.Errorf("read store file: %w", err)
	}

	var doc domain.Document
	if err := json.Unmarshal(content, &doc); err != nil {
		s.quarantine()
		return &domain.Document{}, nil
	}

	if doc.Requests == nil {
		doc.Requests = []*domain.Request{}
	}
	return &doc, nil
}

// Save writes the document, replacing whatever was persisted before.
func (s *Store) Save(doc *domain.Document) error {
	content, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal document: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}

	// Write to temp file first, then rename for atomicity
	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, content, 0o600); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath) // Clean up
		return fmt.Errorf("rename temp file: %w", err)
	}

	return nil
}

// IsInitialized checks if the store file exists.
func (s *Store) IsInitialized() bool {
	_, err := os.Stat(s.path)
	return err == nil
}

// Initialize creates an empty store file if it doesn't exist.
func (s *Store) Initialize() error {
	if s.IsInitialized() {
		return nil
	}
	return s.Save(&domain.Document{Requests: []*domain.Request{}})
}

// quarantine moves a broken store file aside instead of overwriting it.
// Best-effort: if the rename fails the next Save overwrites the file.
func (s *Store) quarantine() {
	dst := fmt.Sprintf("%s.corrupt-%d", s.path, time.Now().Unix())
	_ = os.Rename(s.path, dst)
}

// Ensure Store implements the persistence ports.
var (
	_ domain.DocumentStore    = (*Store)(nil)
	_ domain.StoreInitializer = (*Store)(nil)
)

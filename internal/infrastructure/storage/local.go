// Package storage implements the document blob store on the local filesystem.
// Blobs are laid out as <base>/<document-id>/<filename>; writes go through a
// temp file and rename so a crashed upload never leaves a partial blob behind.
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/docuvault/docqa-api/internal/core/domain"
)

type LocalStore struct {
	basePath string
}

// NewLocalStore creates the base directory if needed and returns the store.
func NewLocalStore(basePath string) (*LocalStore, error) {
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &LocalStore{basePath: basePath}, nil
}

func (s *LocalStore) Save(documentID, filename string, content io.Reader) (int64, error) {
	dir := filepath.Join(s.basePath, documentID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return 0, fmt.Errorf("create blob dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".upload-*")
	if err != nil {
		return 0, fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	size, err := io.Copy(tmp, content)
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return 0, fmt.Errorf("write blob: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.blobPath(documentID, filename)); err != nil {
		return 0, fmt.Errorf("finalize blob: %w", err)
	}
	return size, nil
}

func (s *LocalStore) Open(documentID, filename string) (io.ReadCloser, error) {
	f, err := os.Open(s.blobPath(documentID, filename))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domain.ErrFileNotFound
		}
		return nil, fmt.Errorf("open blob: %w", err)
	}
	return f, nil
}

func (s *LocalStore) Remove(documentID, filename string) error {
	if err := os.Remove(s.blobPath(documentID, filename)); err != nil {
		if os.IsNotExist(err) {
			return domain.ErrFileNotFound
		}
		return fmt.Errorf("remove blob: %w", err)
	}
	// Best effort: drop the per-document dir when it is now empty.
	_ = os.Remove(filepath.Join(s.basePath, documentID))
	return nil
}

// blobPath confines the blob inside the per-document directory. filepath.Base
// strips any path separators a hostile filename might carry.
func (s *LocalStore) blobPath(documentID, filename string) string {
	return filepath.Join(s.basePath, documentID, filepath.Base(filename))
}

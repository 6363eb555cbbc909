package ports

import "io"

// FileStore is the blob store holding document contents, keyed by document ID.
type FileStore interface {
	// Save writes the blob and returns the number of bytes stored.
	Save(documentID, filename string, content io.Reader) (int64, error)
	// Open returns a reader over the stored blob. Fails with
	// domain.ErrFileNotFound when no blob exists for the document.
	Open(documentID, filename string) (io.ReadCloser, error)
	Remove(documentID, filename string) error
}

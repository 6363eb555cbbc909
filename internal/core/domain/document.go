package domain

import (
	"errors"
	"time"
)

var ErrDocumentNotFound = errors.New("document not found")
var ErrFileNotFound = errors.New("file not found in storage")

// Document is the metadata record for an uploaded file. The file bytes
// themselves live in the blob store, keyed by the document ID.
type Document struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Filename    string    `json:"filename"`
	ContentType string    `json:"content_type"`
	SizeBytes   int64     `json:"size_bytes"`
	OwnerID     string    `json:"owner_id"`
	UploadedAt  time.Time `json:"uploaded_at"`
}

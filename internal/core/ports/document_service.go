package ports

import (
	"context"
	"io"

	"github.com/docuvault/docqa-api/internal/core/domain"
)

// UploadDocumentInput carries a single multipart file upload.
type UploadDocumentInput struct {
	Filename    string
	ContentType string
	Size        int64
	Content     io.Reader
	OwnerID     string
}

// DownloadResult streams a stored document back to the caller.
// The caller owns Content and must close it.
type DownloadResult struct {
	Document *domain.Document
	Content  io.ReadCloser
}

// DocumentService covers document CRUD and file retrieval.
type DocumentService interface {
	Upload(ctx context.Context, in UploadDocumentInput) (*domain.Document, error)
	List(ctx context.Context, offset, limit int) ([]*domain.Document, error)
	Get(ctx context.Context, id string) (*domain.Document, error)
	Delete(ctx context.Context, id string) error
	Download(ctx context.Context, id string) (*DownloadResult, error)
}

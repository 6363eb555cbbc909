package ports

import (
	"context"

	"github.com/docuvault/docqa-api/internal/core/domain"
)

// DocumentRepository defines persistence operations for document metadata.
type DocumentRepository interface {
	Create(ctx context.Context, doc *domain.Document) (*domain.Document, error)
	FindByID(ctx context.Context, id string) (*domain.Document, error)
	// List returns a page of documents ordered by upload time.
	List(ctx context.Context, offset, limit int) ([]*domain.Document, error)
	Delete(ctx context.Context, id string) error
}

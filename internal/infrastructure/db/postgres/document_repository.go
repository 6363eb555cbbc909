package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/docuvault/docqa-api/internal/core/domain"
)

type DocumentRepository struct {
	db *sqlx.DB
}

func NewDocumentRepository(db *sqlx.DB) *DocumentRepository {
	return &DocumentRepository{db: db}
}

type documentRow struct {
	ID          string    `db:"id"`
	Title       string    `db:"title"`
	Filename    string    `db:"filename"`
	ContentType string    `db:"content_type"`
	SizeBytes   int64     `db:"size_bytes"`
	OwnerID     string    `db:"owner_id"`
	UploadedAt  time.Time `db:"uploaded_at"`
}

func (r documentRow) toDomain() *domain.Document {
	return &domain.Document{
		ID:          r.ID,
		Title:       r.Title,
		Filename:    r.Filename,
		ContentType: r.ContentType,
		SizeBytes:   r.SizeBytes,
		OwnerID:     r.OwnerID,
		UploadedAt:  r.UploadedAt.UTC(),
	}
}

func (r *DocumentRepository) Create(ctx context.Context, doc *domain.Document) (*domain.Document, error) {
	const query = `
		INSERT INTO documents (id, title, filename, content_type, size_bytes, owner_id, uploaded_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.db.ExecContext(ctx, query,
		doc.ID, doc.Title, doc.Filename, doc.ContentType, doc.SizeBytes, doc.OwnerID, doc.UploadedAt)
	if err != nil {
		return nil, fmt.Errorf("insert document: %w", err)
	}
	return r.FindByID(ctx, doc.ID)
}

func (r *DocumentRepository) FindByID(ctx context.Context, id string) (*domain.Document, error) {
	var row documentRow
	const query = `
		SELECT id, title, filename, content_type, size_bytes, owner_id, uploaded_at
		FROM documents WHERE id = $1
	`
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrDocumentNotFound
		}
		return nil, fmt.Errorf("find document: %w", err)
	}
	return row.toDomain(), nil
}

func (r *DocumentRepository) List(ctx context.Context, offset, limit int) ([]*domain.Document, error) {
	var rows []documentRow
	const query = `
		SELECT id, title, filename, content_type, size_bytes, owner_id, uploaded_at
		FROM documents ORDER BY uploaded_at, id OFFSET $1 LIMIT $2
	`
	if err := r.db.SelectContext(ctx, &rows, query, offset, limit); err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}

	docs := make([]*domain.Document, 0, len(rows))
	for _, row := range rows {
		docs = append(docs, row.toDomain())
	}
	return docs, nil
}

func (r *DocumentRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM documents WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete document: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrDocumentNotFound
	}
	return nil
}

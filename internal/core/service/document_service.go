package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/docuvault/docqa-api/internal/core/domain"
	"github.com/docuvault/docqa-api/internal/core/ports"
	"github.com/docuvault/docqa-api/internal/pkg/metrics"
)

// DocumentService implements document CRUD on top of the metadata repository
// and the blob store. The blob is written first; the row is only inserted
// once the bytes are safely on disk.
type DocumentService struct {
	repo   ports.DocumentRepository
	files  ports.FileStore
	logger zerolog.Logger
	now    func() time.Time
}

func NewDocumentService(repo ports.DocumentRepository, files ports.FileStore, logger zerolog.Logger) *DocumentService {
	return &DocumentService{repo: repo, files: files, logger: logger, now: time.Now}
}

func (s *DocumentService) Upload(ctx context.Context, in ports.UploadDocumentInput) (*domain.Document, error) {
	id := uuid.NewString()

	size, err := s.files.Save(id, in.Filename, in.Content)
	if err != nil {
		return nil, err
	}

	doc := &domain.Document{
		ID:          id,
		Title:       titleFromFilename(in.Filename),
		Filename:    in.Filename,
		ContentType: in.ContentType,
		SizeBytes:   size,
		OwnerID:     in.OwnerID,
		UploadedAt:  s.now().UTC(),
	}

	created, err := s.repo.Create(ctx, doc)
	if err != nil {
		if rmErr := s.files.Remove(id, in.Filename); rmErr != nil {
			s.logger.Warn().Err(rmErr).Str("document_id", id).Msg("failed to clean up blob after insert failure")
		}
		return nil, err
	}

	metrics.DocumentsUploadedTotal.WithLabelValues(created.ContentType).Inc()
	s.logger.Info().Str("document_id", created.ID).Str("owner_id", created.OwnerID).Int64("size_bytes", size).Msg("document uploaded")
	return created, nil
}

func (s *DocumentService) List(ctx context.Context, offset, limit int) ([]*domain.Document, error) {
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 || limit > maxPageSize {
		limit = maxPageSize
	}
	return s.repo.List(ctx, offset, limit)
}

func (s *DocumentService) Get(ctx context.Context, id string) (*domain.Document, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *DocumentService) Delete(ctx context.Context, id string) error {
	doc, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	// Blob removal failure is logged, never surfaced: the row is already gone.
	if err := s.files.Remove(doc.ID, doc.Filename); err != nil && !errors.Is(err, domain.ErrFileNotFound) {
		s.logger.Warn().Err(err).Str("document_id", id).Msg("failed to remove blob")
	}

	metrics.DocumentsDeletedTotal.Inc()
	return nil
}

func (s *DocumentService) Download(ctx context.Context, id string) (*ports.DownloadResult, error) {
	doc, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	content, err := s.files.Open(doc.ID, doc.Filename)
	if err != nil {
		return nil, err
	}
	return &ports.DownloadResult{Document: doc, Content: content}, nil
}

// titleFromFilename derives a document title by stripping the extension.
func titleFromFilename(filename string) string {
	if i := strings.LastIndex(filename, "."); i > 0 {
		return filename[:i]
	}
	return filename
}

package ports

import (
	"context"

	"github.com/docuvault/docqa-api/internal/core/domain"
)

// IngestionTaskStore persists ingestion task state (Redis-backed in production).
type IngestionTaskStore interface {
	Get(ctx context.Context, documentID string) (*domain.IngestionTask, error)
	Set(ctx context.Context, task *domain.IngestionTask) error
	// All returns every known task keyed by document ID.
	All(ctx context.Context) (map[string]*domain.IngestionTask, error)
	// Claim atomically marks a document as having an active ingestion run.
	// Returns false when another run already holds the claim, so two
	// concurrent triggers for the same document cannot both proceed.
	Claim(ctx context.Context, documentID string) (bool, error)
	// Release frees the claim once the run finishes, successfully or not.
	Release(ctx context.Context, documentID string) error
}

// IngestionService triggers and tracks the (simulated) ingestion pipeline.
type IngestionService interface {
	// Trigger creates a pending task for the document and enqueues it.
	// Fails with domain.ErrIngestionInProgress when a task is already active.
	Trigger(ctx context.Context, documentID string) (*domain.IngestionTask, error)
	// Process runs the pipeline for one task. Called by dispatcher workers.
	Process(ctx context.Context, documentID string) error
	Status(ctx context.Context) (map[string]*domain.IngestionTask, error)
}

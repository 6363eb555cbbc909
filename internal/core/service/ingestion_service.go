package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/docuvault/docqa-api/internal/core/domain"
	"github.com/docuvault/docqa-api/internal/core/ports"
	"github.com/docuvault/docqa-api/internal/pkg/metrics"
)

const defaultSimulatedDelay = 5 * time.Second

// Enqueuer is the interface the service uses to hand tasks to the dispatcher.
type Enqueuer interface {
	Enqueue(documentID string)
}

// IngestionService drives the simulated ingestion pipeline. Task state lives
// in the task store (Redis), so status survives process restarts. The actual
// chunking/embedding work is a stand-in delay until a real pipeline exists.
type IngestionService struct {
	docs           ports.DocumentRepository
	tasks          ports.IngestionTaskStore
	queue          Enqueuer
	simulatedDelay time.Duration
	logger         zerolog.Logger
	now            func() time.Time
}

// NewIngestionService returns an IngestionService. simulatedDelay <= 0 falls
// back to 5 seconds. SetQueue must be called before Trigger.
func NewIngestionService(
	docs ports.DocumentRepository,
	tasks ports.IngestionTaskStore,
	simulatedDelay time.Duration,
	logger zerolog.Logger,
) *IngestionService {
	if simulatedDelay <= 0 {
		simulatedDelay = defaultSimulatedDelay
	}
	return &IngestionService{
		docs:           docs,
		tasks:          tasks,
		simulatedDelay: simulatedDelay,
		logger:         logger,
		now:            time.Now,
	}
}

// SetQueue wires the dispatcher. Split from the constructor because the
// dispatcher itself is constructed with the service (worker callback).
func (s *IngestionService) SetQueue(q Enqueuer) {
	s.queue = q
}

func (s *IngestionService) Trigger(ctx context.Context, documentID string) (*domain.IngestionTask, error) {
	if _, err := s.docs.FindByID(ctx, documentID); err != nil {
		return nil, err
	}

	// The claim is the concurrency gate: check-and-mark is atomic in the
	// store, so of two simultaneous triggers exactly one gets through.
	ok, err := s.tasks.Claim(ctx, documentID)
	if err != nil {
		return nil, err
	}
	if !ok {
		status := domain.IngestionPending
		if existing, lookupErr := s.tasks.Get(ctx, documentID); lookupErr == nil && existing != nil && existing.Status.Active() {
			status = existing.Status
		}
		return nil, fmt.Errorf("%w (document %s is %s)", domain.ErrIngestionInProgress, documentID, status)
	}

	task := &domain.IngestionTask{
		DocumentID: documentID,
		Status:     domain.IngestionPending,
		UpdatedAt:  s.now().UTC(),
	}
	if err := s.tasks.Set(ctx, task); err != nil {
		if relErr := s.tasks.Release(ctx, documentID); relErr != nil {
			s.logger.Warn().Err(relErr).Str("document_id", documentID).Msg("failed to release ingestion claim")
		}
		return nil, err
	}

	s.queue.Enqueue(documentID)
	s.logger.Info().Str("document_id", documentID).Msg("ingestion triggered")
	return task, nil
}

// Process runs the pipeline for one task: pending -> processing -> completed.
// A cancelled context marks the task failed so it can be re-triggered.
func (s *IngestionService) Process(ctx context.Context, documentID string) error {
	// The run is over on every exit path, so the claim taken by Trigger must
	// be released even when the status write or the context failed.
	defer func() {
		if err := s.tasks.Release(context.WithoutCancel(ctx), documentID); err != nil {
			s.logger.Warn().Err(err).Str("document_id", documentID).Msg("failed to release ingestion claim")
		}
	}()

	if err := s.setStatus(ctx, documentID, domain.IngestionProcessing, ""); err != nil {
		metrics.IngestionErrorsTotal.WithLabelValues("status_update").Inc()
		return err
	}

	start := s.now()
	select {
	case <-ctx.Done():
		_ = s.setStatus(context.WithoutCancel(ctx), documentID, domain.IngestionFailed, "ingestion interrupted")
		metrics.IngestionErrorsTotal.WithLabelValues("cancelled").Inc()
		return ctx.Err()
	case <-time.After(s.simulatedDelay):
	}

	if err := s.setStatus(ctx, documentID, domain.IngestionCompleted, "Ingestion completed successfully."); err != nil {
		metrics.IngestionErrorsTotal.WithLabelValues("status_update").Inc()
		return err
	}

	metrics.IngestionProcessedTotal.Inc()
	metrics.IngestionDuration.Observe(s.now().Sub(start).Seconds())
	s.logger.Info().Str("document_id", documentID).Msg("ingestion completed")
	return nil
}

func (s *IngestionService) Status(ctx context.Context) (map[string]*domain.IngestionTask, error) {
	return s.tasks.All(ctx)
}

func (s *IngestionService) setStatus(ctx context.Context, documentID string, status domain.IngestionStatus, message string) error {
	task, err := s.tasks.Get(ctx, documentID)
	if err != nil {
		return err
	}
	if task == nil {
		return errors.New("ingestion task not found for document " + documentID)
	}
	task.Status = status
	task.Message = message
	task.UpdatedAt = s.now().UTC()
	return s.tasks.Set(ctx, task)
}

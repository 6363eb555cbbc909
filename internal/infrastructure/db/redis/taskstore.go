package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/docuvault/docqa-api/internal/core/domain"
)

const (
	tasksKey     = "ingestion:tasks"
	activePrefix = "ingestion:active:"
)

// TaskStore keeps ingestion task state in a Redis hash keyed by document ID,
// so status survives process restarts.
type TaskStore struct {
	client *redis.Client
}

// NewTaskStore creates a TaskStore wrapping the given Redis client.
func NewTaskStore(client *redis.Client) *TaskStore {
	return &TaskStore{client: client}
}

// Get returns the task for a document, or nil when none exists.
func (s *TaskStore) Get(ctx context.Context, documentID string) (*domain.IngestionTask, error) {
	raw, err := s.client.HGet(ctx, tasksKey, documentID).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get ingestion task: %w", err)
	}

	var task domain.IngestionTask
	if err := json.Unmarshal([]byte(raw), &task); err != nil {
		return nil, fmt.Errorf("decode ingestion task: %w", err)
	}
	return &task, nil
}

func (s *TaskStore) Set(ctx context.Context, task *domain.IngestionTask) error {
	raw, err := json.Marshal(task)
	if err != nil {
		return fmt.Errorf("encode ingestion task: %w", err)
	}
	if err := s.client.HSet(ctx, tasksKey, task.DocumentID, raw).Err(); err != nil {
		return fmt.Errorf("set ingestion task: %w", err)
	}
	return nil
}

// Claim marks a document as having an active ingestion run via SETNX, so the
// check-and-claim is a single atomic Redis operation. The claim carries no
// expiry; Release frees it when the run ends.
func (s *TaskStore) Claim(ctx context.Context, documentID string) (bool, error) {
	ok, err := s.client.SetNX(ctx, activePrefix+documentID, 1, 0).Result()
	if err != nil {
		return false, fmt.Errorf("claim ingestion task: %w", err)
	}
	return ok, nil
}

// Release frees the claim so the document can be re-triggered.
func (s *TaskStore) Release(ctx context.Context, documentID string) error {
	if err := s.client.Del(ctx, activePrefix+documentID).Err(); err != nil {
		return fmt.Errorf("release ingestion task: %w", err)
	}
	return nil
}

// All returns every known task keyed by document ID.
func (s *TaskStore) All(ctx context.Context) (map[string]*domain.IngestionTask, error) {
	raw, err := s.client.HGetAll(ctx, tasksKey).Result()
	if err != nil {
		return nil, fmt.Errorf("list ingestion tasks: %w", err)
	}

	tasks := make(map[string]*domain.IngestionTask, len(raw))
	for docID, value := range raw {
		var task domain.IngestionTask
		if err := json.Unmarshal([]byte(value), &task); err != nil {
			return nil, fmt.Errorf("decode ingestion task %s: %w", docID, err)
		}
		tasks[docID] = &task
	}
	return tasks, nil
}

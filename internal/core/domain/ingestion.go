package domain

import (
	"errors"
	"time"
)

// IngestionStatus represents the lifecycle state of an ingestion task.
type IngestionStatus string

const (
	IngestionPending    IngestionStatus = "pending"
	IngestionProcessing IngestionStatus = "processing"
	IngestionCompleted  IngestionStatus = "completed"
	IngestionFailed     IngestionStatus = "failed"
)

// Active reports whether a task in this state is still being worked on.
// An active task blocks re-triggering ingestion for the same document.
func (s IngestionStatus) Active() bool {
	return s == IngestionPending || s == IngestionProcessing
}

var ErrIngestionInProgress = errors.New("ingestion already in progress")

// IngestionTask tracks the (simulated) ingestion pipeline for one document.
type IngestionTask struct {
	DocumentID string          `json:"document_id"`
	Status     IngestionStatus `json:"status"`
	Message    string          `json:"message,omitempty"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

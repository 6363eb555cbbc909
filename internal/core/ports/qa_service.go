package ports

import "context"

// QAService answers questions against the ingested corpus.
// The current implementation is a placeholder with no retrieval behind it.
type QAService interface {
	Ask(ctx context.Context, question string) (string, error)
}

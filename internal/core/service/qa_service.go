package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
)

// QAService is a placeholder until a retrieval pipeline exists. It answers
// every question with a canned response that echoes the question back.
type QAService struct {
	logger zerolog.Logger
}

func NewQAService(logger zerolog.Logger) *QAService {
	return &QAService{logger: logger}
}

func (s *QAService) Ask(ctx context.Context, question string) (string, error) {
	s.logger.Debug().Str("question", question).Msg("question received")
	return fmt.Sprintf("This is a placeholder answer for your question: %s", question), nil
}

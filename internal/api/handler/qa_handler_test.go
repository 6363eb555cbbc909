package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

type stubQAService struct {
	askFn func(ctx context.Context, question string) (string, error)
}

func (s *stubQAService) Ask(ctx context.Context, question string) (string, error) {
	return s.askFn(ctx, question)
}

func TestQAHandler_Ask(t *testing.T) {
	stub := &stubQAService{
		askFn: func(_ context.Context, question string) (string, error) {
			if question != "What is in the quarterly report?" {
				t.Fatalf("unexpected question: %q", question)
			}
			return "The report covers revenue.", nil
		},
	}
	h := NewQAHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/v1/qa",
		`{"question":"What is in the quarterly report?"}`)

	if err := h.Ask(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if !strings.Contains(resp["answer"], "revenue") {
		t.Fatalf("unexpected answer: %q", resp["answer"])
	}
}

func TestQAHandler_Ask_MissingQuestion(t *testing.T) {
	stub := &stubQAService{
		askFn: func(context.Context, string) (string, error) {
			t.Fatalf("service should not be called")
			return "", nil
		},
	}
	h := NewQAHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/v1/qa", `{}`)

	err := h.Ask(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

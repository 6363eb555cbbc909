package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/docuvault/docqa-api/internal/core/domain"
)

type stubIngestionService struct {
	triggerFn func(ctx context.Context, documentID string) (*domain.IngestionTask, error)
	statusFn  func(ctx context.Context) (map[string]*domain.IngestionTask, error)
}

func (s *stubIngestionService) Trigger(ctx context.Context, documentID string) (*domain.IngestionTask, error) {
	return s.triggerFn(ctx, documentID)
}

func (s *stubIngestionService) Process(context.Context, string) error {
	panic("not used")
}

func (s *stubIngestionService) Status(ctx context.Context) (map[string]*domain.IngestionTask, error) {
	return s.statusFn(ctx)
}

func TestIngestionHandler_Trigger(t *testing.T) {
	stub := &stubIngestionService{
		triggerFn: func(_ context.Context, documentID string) (*domain.IngestionTask, error) {
			if documentID != "doc-1" {
				t.Fatalf("unexpected document id: %s", documentID)
			}
			return &domain.IngestionTask{
				DocumentID: documentID,
				Status:     domain.IngestionPending,
				UpdatedAt:  time.Now().UTC(),
			}, nil
		},
	}
	h := NewIngestionHandler(stub)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/v1/documents/doc-1/ingest", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("doc-1")

	if err := h.Trigger(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusAccepted {
		t.Fatalf("expected 202, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["status"] != string(domain.IngestionPending) {
		t.Fatalf("expected pending status, got %v", resp["status"])
	}
}

func TestIngestionHandler_Trigger_Conflict(t *testing.T) {
	stub := &stubIngestionService{
		triggerFn: func(context.Context, string) (*domain.IngestionTask, error) {
			return nil, domain.ErrIngestionInProgress
		},
	}
	h := NewIngestionHandler(stub)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/v1/documents/doc-1/ingest", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("doc-1")

	if err := h.Trigger(c); !errors.Is(err, domain.ErrIngestionInProgress) {
		t.Fatalf("expected ErrIngestionInProgress to propagate, got %v", err)
	}
}

func TestIngestionHandler_Status(t *testing.T) {
	stub := &stubIngestionService{
		statusFn: func(context.Context) (map[string]*domain.IngestionTask, error) {
			return map[string]*domain.IngestionTask{
				"doc-1": {DocumentID: "doc-1", Status: domain.IngestionCompleted},
				"doc-2": {DocumentID: "doc-2", Status: domain.IngestionProcessing},
			}, nil
		},
	}
	h := NewIngestionHandler(stub)

	c, rec := newTestContext(t, http.MethodGet, "/v1/ingestion/status", "")

	if err := h.Status(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(resp))
	}
	if resp["doc-1"]["status"] != string(domain.IngestionCompleted) {
		t.Fatalf("unexpected status for doc-1: %v", resp["doc-1"]["status"])
	}
}

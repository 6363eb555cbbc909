package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/docuvault/docqa-api/internal/core/ports"
)

// IngestionHandler triggers ingestion runs and reports task status.
type IngestionHandler struct {
	ingestion ports.IngestionService
}

func NewIngestionHandler(ingestion ports.IngestionService) *IngestionHandler {
	return &IngestionHandler{ingestion: ingestion}
}

// Trigger starts the ingestion pipeline for a document.
//
// @Summary      Trigger ingestion for a document
// @Tags         ingestion
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Document ID"
// @Success      202  {object}  ingestionTaskResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Failure      409  {object}  errorResponse
// @Router       /v1/documents/{id}/ingest [post]
func (h *IngestionHandler) Trigger(c echo.Context) error {
	task, err := h.ingestion.Trigger(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusAccepted, toIngestionTaskResponse(task))
}

// Status returns the status of every known ingestion task.
//
// @Summary      Get ingestion status for all tasks
// @Tags         ingestion
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]ingestionTaskResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/ingestion/status [get]
func (h *IngestionHandler) Status(c echo.Context) error {
	tasks, err := h.ingestion.Status(c.Request().Context())
	if err != nil {
		return err
	}

	resp := make(map[string]ingestionTaskResponse, len(tasks))
	for docID, task := range tasks {
		resp[docID] = toIngestionTaskResponse(task)
	}
	return c.JSON(http.StatusOK, resp)
}

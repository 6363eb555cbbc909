package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/docuvault/docqa-api/internal/core/ports"
)

// QAHandler answers questions against the document corpus.
type QAHandler struct {
	qa ports.QAService
}

func NewQAHandler(qa ports.QAService) *QAHandler {
	return &QAHandler{qa: qa}
}

// Ask answers a single question.
//
// @Summary      Ask a question
// @Tags         qa
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      questionRequest  true  "Question"
// @Success      200   {object}  answerResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /v1/qa [post]
func (h *QAHandler) Ask(c echo.Context) error {
	var req questionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	answer, err := h.qa.Ask(c.Request().Context(), req.Question)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, answerResponse{Answer: answer})
}

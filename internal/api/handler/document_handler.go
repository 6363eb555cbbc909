package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/docuvault/docqa-api/internal/core/ports"
)

// DocumentHandler handles HTTP requests for document operations.
type DocumentHandler struct {
	documents ports.DocumentService
}

func NewDocumentHandler(documents ports.DocumentService) *DocumentHandler {
	return &DocumentHandler{documents: documents}
}

// Upload stores a multipart file and creates the document record.
//
// @Summary      Upload a document
// @Tags         documents
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        file  formData  file  true  "Document file"
// @Success      201   {object}  documentResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /v1/documents [post]
func (h *DocumentHandler) Upload(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "missing file")
	}

	src, err := fileHeader.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "unreadable file")
	}
	defer src.Close()

	doc, err := h.documents.Upload(c.Request().Context(), ports.UploadDocumentInput{
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Size:        fileHeader.Size,
		Content:     src,
		OwnerID:     user.ID,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toDocumentResponse(doc))
}

// List returns a page of documents.
//
// @Summary      List documents
// @Tags         documents
// @Produce      json
// @Security     BearerAuth
// @Param        offset  query     int  false  "Rows to skip"
// @Param        limit   query     int  false  "Max rows (capped at 100)"
// @Success      200     {array}   documentResponse
// @Failure      401     {object}  errorResponse
// @Router       /v1/documents [get]
func (h *DocumentHandler) List(c echo.Context) error {
	offset, limit := pageParams(c)

	docs, err := h.documents.List(c.Request().Context(), offset, limit)
	if err != nil {
		return err
	}

	resp := make([]documentResponse, 0, len(docs))
	for _, d := range docs {
		resp = append(resp, toDocumentResponse(d))
	}
	return c.JSON(http.StatusOK, resp)
}

// Get returns a single document record.
//
// @Summary      Get a document by ID
// @Tags         documents
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Document ID"
// @Success      200  {object}  documentResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/documents/{id} [get]
func (h *DocumentHandler) Get(c echo.Context) error {
	doc, err := h.documents.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toDocumentResponse(doc))
}

// Delete removes a document record and its stored file.
//
// @Summary      Delete a document
// @Tags         documents
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Document ID"
// @Success      204
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/documents/{id} [delete]
func (h *DocumentHandler) Delete(c echo.Context) error {
	if err := h.documents.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Download streams the stored file back to the client.
//
// @Summary      Download a document's file
// @Tags         documents
// @Produce      application/octet-stream
// @Security     BearerAuth
// @Param        id  path  string  true  "Document ID"
// @Success      200
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/documents/{id}/download [get]
func (h *DocumentHandler) Download(c echo.Context) error {
	result, err := h.documents.Download(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	defer result.Content.Close()

	contentType := result.Document.ContentType
	if contentType == "" {
		contentType = echo.MIMEOctetStream
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+result.Document.Filename+`"`)
	return c.Stream(http.StatusOK, contentType, result.Content)
}

package handler

import (
	"time"

	"github.com/docuvault/docqa-api/internal/core/domain"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Auth ---

type registerRequest struct {
	Username string `json:"username" validate:"required,min=3"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// userResponse is the client-visible user summary; the password hash never
// leaves the server.
type userResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt,
	}
}

// --- User management ---

type updateRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=user admin"`
}

// --- Documents ---

type documentResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Filename    string    `json:"filename"`
	ContentType string    `json:"content_type"`
	SizeBytes   int64     `json:"size_bytes"`
	OwnerID     string    `json:"owner_id"`
	UploadedAt  time.Time `json:"uploaded_at"`
}

func toDocumentResponse(d *domain.Document) documentResponse {
	return documentResponse{
		ID:          d.ID,
		Title:       d.Title,
		Filename:    d.Filename,
		ContentType: d.ContentType,
		SizeBytes:   d.SizeBytes,
		OwnerID:     d.OwnerID,
		UploadedAt:  d.UploadedAt,
	}
}

// --- Ingestion ---

type ingestionTaskResponse struct {
	DocumentID string    `json:"document_id"`
	Status     string    `json:"status"`
	Message    string    `json:"message,omitempty"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func toIngestionTaskResponse(t *domain.IngestionTask) ingestionTaskResponse {
	return ingestionTaskResponse{
		DocumentID: t.DocumentID,
		Status:     string(t.Status),
		Message:    t.Message,
		UpdatedAt:  t.UpdatedAt,
	}
}

// --- Q&A ---

type questionRequest struct {
	Question string `json:"question" validate:"required"`
}

type answerResponse struct {
	Answer string `json:"answer"`
}

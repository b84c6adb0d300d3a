package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/calebmorton/hireboard/internal/models"
	pkghttp "github.com/calebmorton/hireboard/pkg/http"
)

// ContactServiceInterface defines the interface for contact form handling
type ContactServiceInterface interface {
	Submit(ctx context.Context, name, email, message string) (*models.ContactMessage, error)
}

// ContactHandler handles contact form submissions
type ContactHandler struct {
	service ContactServiceInterface
}

// NewContactHandler creates a new ContactHandler
func NewContactHandler(service ContactServiceInterface) *ContactHandler {
	return &ContactHandler{service: service}
}

// ContactRequest represents the request body for a contact form submission
type ContactRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=100"`
	Email   string `json:"email" validate:"required"`
	Message string `json:"message" validate:"required,min=1,max=5000"`
}

// Submit stores the message and forwards it to the site operators
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req ContactRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkghttp.WriteBadRequest(w, "Invalid request body")
		return
	}

	if err := ValidateRequest(req); err != nil {
		pkghttp.WriteBadRequest(w, err.Error())
		return
	}

	if _, err := h.service.Submit(r.Context(), req.Name, req.Email, req.Message); err != nil {
		if errors.Is(err, models.ErrBadRequest) {
			pkghttp.WriteBadRequest(w, "Invalid email address")
			return
		}
		pkghttp.WriteInternalError(w, "Internal server error")
		return
	}

	pkghttp.WriteJSON(w, http.StatusCreated, map[string]string{"message": "Message received. We will get back to you soon."})
}

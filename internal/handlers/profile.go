package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/calebmorton/hireboard/internal/auth"
	"github.com/calebmorton/hireboard/internal/models"
	"github.com/calebmorton/hireboard/internal/services"
	pkghttp "github.com/calebmorton/hireboard/pkg/http"
	"github.com/go-chi/chi/v5"
)

// ProfileServiceInterface defines the interface for profile business logic
type ProfileServiceInterface interface {
	Get(ctx context.Context, requesterID, requesterRole, targetUserID string) (*models.Profile, error)
	Update(ctx context.Context, userID, role string, update *services.ProfileUpdate) (*models.Profile, error)
}

// ProfileHandler handles profile-related HTTP requests
type ProfileHandler struct {
	service ProfileServiceInterface
}

// NewProfileHandler creates a new ProfileHandler
func NewProfileHandler(service ProfileServiceInterface) *ProfileHandler {
	return &ProfileHandler{service: service}
}

// Get returns the caller's own profile, creating an empty role-shaped one on
// first read.
func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	identity := auth.IdentityFromContext(r)
	if identity == nil {
		pkghttp.WriteUnauthorized(w, "Not authorized to access this route")
		return
	}

	h.respondWithProfile(w, r, identity, identity.UserID)
}

// GetByUserID returns another user's profile. Admins only, unless the target
// is the caller.
func (h *ProfileHandler) GetByUserID(w http.ResponseWriter, r *http.Request) {
	identity := auth.IdentityFromContext(r)
	if identity == nil {
		pkghttp.WriteUnauthorized(w, "Not authorized to access this route")
		return
	}

	h.respondWithProfile(w, r, identity, chi.URLParam(r, "userId"))
}

func (h *ProfileHandler) respondWithProfile(w http.ResponseWriter, r *http.Request, identity *auth.Identity, targetUserID string) {
	profile, err := h.service.Get(r.Context(), identity.UserID, identity.Role, targetUserID)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrForbidden):
			pkghttp.WriteForbidden(w, "You do not have permission to access this route")
		case errors.Is(err, models.ErrNotFound):
			pkghttp.WriteNotFound(w, "Profile not found")
		default:
			pkghttp.WriteInternalError(w, "Internal server error")
		}
		return
	}

	pkghttp.WriteJSON(w, http.StatusOK, profile)
}

// Update replaces the caller's role section of the profile
func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	identity := auth.IdentityFromContext(r)
	if identity == nil {
		pkghttp.WriteUnauthorized(w, "Not authorized to access this route")
		return
	}

	var req services.ProfileUpdate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkghttp.WriteBadRequest(w, "Invalid request body")
		return
	}

	profile, err := h.service.Update(r.Context(), identity.UserID, identity.Role, &req)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrBadRequest):
			pkghttp.WriteBadRequest(w, "Profile section does not match your role")
		case errors.Is(err, models.ErrNotFound):
			pkghttp.WriteNotFound(w, "Profile not found")
		default:
			pkghttp.WriteInternalError(w, "Internal server error")
		}
		return
	}

	pkghttp.WriteJSON(w, http.StatusOK, profile)
}

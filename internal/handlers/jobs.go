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

// JobServiceInterface defines the interface for job listing business logic
type JobServiceInterface interface {
	Create(ctx context.Context, employerID string, input *services.JobInput) (*models.Job, error)
	Get(ctx context.Context, id string) (*models.Job, error)
	ListActive(ctx context.Context) ([]*models.Job, error)
	ListByEmployer(ctx context.Context, employerID string) ([]*models.Job, error)
	ListAll(ctx context.Context) ([]*models.Job, error)
	UpdateStatus(ctx context.Context, requesterID, requesterRole, jobID, status string) (*models.Job, error)
}

// JobHandler handles job listing HTTP requests
type JobHandler struct {
	service JobServiceInterface
}

// NewJobHandler creates a new JobHandler
func NewJobHandler(service JobServiceInterface) *JobHandler {
	return &JobHandler{service: service}
}

// JobResponse represents a job listing in the HTTP response
type JobResponse struct {
	ID              string   `json:"id"`
	EmployerID      string   `json:"employer_id"`
	EmployerName    string   `json:"employer_name"`
	EmployerEmail   string   `json:"employer_email"`
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	Requirements    []string `json:"requirements"`
	Location        string   `json:"location"`
	SalaryRange     string   `json:"salary_range"`
	JobType         string   `json:"job_type"`
	RequiredTimings string   `json:"required_timings"`
	Status          string   `json:"status"`
	CreatedAt       string   `json:"created_at"`
	UpdatedAt       string   `json:"updated_at"`
}

// CreateJobRequest represents the request body for posting a listing
type CreateJobRequest struct {
	Title           string   `json:"title" validate:"required,min=1,max=200"`
	Description     string   `json:"description" validate:"required"`
	Requirements    []string `json:"requirements"`
	Location        string   `json:"location" validate:"required"`
	SalaryRange     string   `json:"salaryRange"`
	JobType         string   `json:"jobType" validate:"required"`
	RequiredTimings string   `json:"requiredTimings"`
}

// UpdateJobStatusRequest represents the request body for a status change
type UpdateJobStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=active closed draft"`
}

func jobModelToResponse(job *models.Job) *JobResponse {
	return &JobResponse{
		ID:              job.ID,
		EmployerID:      job.EmployerID,
		EmployerName:    job.EmployerName,
		EmployerEmail:   job.EmployerEmail,
		Title:           job.Title,
		Description:     job.Description,
		Requirements:    job.Requirements,
		Location:        job.Location,
		SalaryRange:     job.SalaryRange,
		JobType:         job.JobType,
		RequiredTimings: job.RequiredTimings,
		Status:          job.Status,
		CreatedAt:       job.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:       job.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

func jobModelsToResponses(jobs []*models.Job) []*JobResponse {
	responses := make([]*JobResponse, 0, len(jobs))
	for _, job := range jobs {
		responses = append(responses, jobModelToResponse(job))
	}
	return responses
}

// List returns the active listings, public
func (h *JobHandler) List(w http.ResponseWriter, r *http.Request) {
	jobs, err := h.service.ListActive(r.Context())
	if err != nil {
		pkghttp.WriteInternalError(w, "Internal server error")
		return
	}

	pkghttp.WriteJSON(w, http.StatusOK, jobModelsToResponses(jobs))
}

// Get returns a single listing, public
func (h *JobHandler) Get(w http.ResponseWriter, r *http.Request) {
	job, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			pkghttp.WriteNotFound(w, "Job not found")
			return
		}
		pkghttp.WriteInternalError(w, "Internal server error")
		return
	}

	pkghttp.WriteJSON(w, http.StatusOK, jobModelToResponse(job))
}

// Create posts a new listing owned by the caller
func (h *JobHandler) Create(w http.ResponseWriter, r *http.Request) {
	identity := auth.IdentityFromContext(r)
	if identity == nil {
		pkghttp.WriteUnauthorized(w, "Not authorized to access this route")
		return
	}

	var req CreateJobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkghttp.WriteBadRequest(w, "Invalid request body")
		return
	}

	if err := ValidateRequest(req); err != nil {
		pkghttp.WriteBadRequest(w, err.Error())
		return
	}

	job, err := h.service.Create(r.Context(), identity.UserID, &services.JobInput{
		Title:           req.Title,
		Description:     req.Description,
		Requirements:    req.Requirements,
		Location:        req.Location,
		SalaryRange:     req.SalaryRange,
		JobType:         req.JobType,
		RequiredTimings: req.RequiredTimings,
	})
	if err != nil {
		pkghttp.WriteInternalError(w, "Internal server error")
		return
	}

	pkghttp.WriteJSON(w, http.StatusCreated, jobModelToResponse(job))
}

// UpdateStatus changes a listing's status for its owner or an admin
func (h *JobHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	identity := auth.IdentityFromContext(r)
	if identity == nil {
		pkghttp.WriteUnauthorized(w, "Not authorized to access this route")
		return
	}

	var req UpdateJobStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkghttp.WriteBadRequest(w, "Invalid request body")
		return
	}

	if err := ValidateRequest(req); err != nil {
		pkghttp.WriteBadRequest(w, err.Error())
		return
	}

	job, err := h.service.UpdateStatus(r.Context(), identity.UserID, identity.Role, chi.URLParam(r, "id"), req.Status)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrForbidden):
			pkghttp.WriteForbidden(w, "You do not have permission to access this route")
		case errors.Is(err, models.ErrNotFound):
			pkghttp.WriteNotFound(w, "Job not found")
		case errors.Is(err, models.ErrBadRequest):
			pkghttp.WriteBadRequest(w, "Invalid job status")
		default:
			pkghttp.WriteInternalError(w, "Internal server error")
		}
		return
	}

	pkghttp.WriteJSON(w, http.StatusOK, jobModelToResponse(job))
}

// ListMine returns the caller's own postings regardless of status
func (h *JobHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	identity := auth.IdentityFromContext(r)
	if identity == nil {
		pkghttp.WriteUnauthorized(w, "Not authorized to access this route")
		return
	}

	jobs, err := h.service.ListByEmployer(r.Context(), identity.UserID)
	if err != nil {
		pkghttp.WriteInternalError(w, "Internal server error")
		return
	}

	pkghttp.WriteJSON(w, http.StatusOK, jobModelsToResponses(jobs))
}

// ListAll returns every listing in the system, admins only
func (h *JobHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	jobs, err := h.service.ListAll(r.Context())
	if err != nil {
		pkghttp.WriteInternalError(w, "Internal server error")
		return
	}

	pkghttp.WriteJSON(w, http.StatusOK, jobModelsToResponses(jobs))
}

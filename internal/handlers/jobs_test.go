package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/calebmorton/hireboard/internal/auth"
	"github.com/calebmorton/hireboard/internal/models"
	"github.com/calebmorton/hireboard/internal/services"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleJobModel() *models.Job {
	return &models.Job{
		ID:            "job-1",
		EmployerID:    "emp-1",
		EmployerName:  "Acme HR",
		EmployerEmail: "hr@acme.com",
		Title:         "Backend Engineer",
		Description:   "Build APIs",
		Requirements:  []string{"go"},
		Location:      "Remote",
		JobType:       "full-time",
		Status:        models.JobStatusActive,
	}
}

func TestJobListHandler(t *testing.T) {
	service := &MockJobService{
		ListActiveFunc: func(ctx context.Context) ([]*models.Job, error) {
			return []*models.Job{sampleJobModel()}, nil
		},
	}
	handler := NewJobHandler(service)

	rec := httptest.NewRecorder()
	handler.List(rec, httptest.NewRequest(http.MethodGet, "/api/jobs", nil))

	assert.Equal(t, http.StatusOK, rec.Code)

	var jobs []JobResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &jobs))
	require.Len(t, jobs, 1)
	assert.Equal(t, "Acme HR", jobs[0].EmployerName, "listings embed the employer")
}

func TestJobGetHandler(t *testing.T) {
	service := &MockJobService{
		GetFunc: func(ctx context.Context, id string) (*models.Job, error) {
			if id == "job-1" {
				return sampleJobModel(), nil
			}
			return nil, models.ErrNotFound
		},
	}
	handler := NewJobHandler(service)

	router := chi.NewRouter()
	router.Get("/api/jobs/{id}", handler.Get)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/jobs/job-1", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/jobs/missing", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestJobCreateHandler(t *testing.T) {
	var gotEmployer string
	var gotInput *services.JobInput
	service := &MockJobService{
		CreateFunc: func(ctx context.Context, employerID string, input *services.JobInput) (*models.Job, error) {
			gotEmployer = employerID
			gotInput = input
			job := sampleJobModel()
			job.Title = input.Title
			return job, nil
		},
	}
	handler := NewJobHandler(service)

	body := `{"title":"Backend Engineer","description":"Build APIs","location":"Remote","jobType":"full-time","requirements":["go","sql"],"salaryRange":"90k-120k"}`
	rec := httptest.NewRecorder()
	handler.Create(rec, authRequest(t, http.MethodPost, "/api/jobs", body, &auth.Identity{UserID: "emp-1", Role: models.RoleEmployer}))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "emp-1", gotEmployer)
	require.NotNil(t, gotInput)
	assert.Equal(t, []string{"go", "sql"}, gotInput.Requirements)
}

func TestJobCreateHandler_MissingFields(t *testing.T) {
	handler := NewJobHandler(&MockJobService{})

	body := `{"title":"No description or location"}`
	rec := httptest.NewRecorder()
	handler.Create(rec, authRequest(t, http.MethodPost, "/api/jobs", body, &auth.Identity{UserID: "emp-1", Role: models.RoleEmployer}))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestJobUpdateStatusHandler(t *testing.T) {
	tests := []struct {
		name       string
		serviceErr error
		wantStatus int
	}{
		{"owner closes job", nil, http.StatusOK},
		{"not the owner", models.ErrForbidden, http.StatusForbidden},
		{"job gone", models.ErrNotFound, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := &MockJobService{
				UpdateStatusFunc: func(ctx context.Context, requesterID, requesterRole, jobID, status string) (*models.Job, error) {
					if tt.serviceErr != nil {
						return nil, tt.serviceErr
					}
					job := sampleJobModel()
					job.Status = status
					return job, nil
				},
			}
			handler := NewJobHandler(service)

			router := chi.NewRouter()
			router.Put("/api/jobs/{id}/status", handler.UpdateStatus)

			body := `{"status":"closed"}`
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, authRequest(t, http.MethodPut, "/api/jobs/job-1/status", body, &auth.Identity{UserID: "emp-1", Role: models.RoleEmployer}))

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestJobUpdateStatusHandler_InvalidStatus(t *testing.T) {
	handler := NewJobHandler(&MockJobService{})

	router := chi.NewRouter()
	router.Put("/api/jobs/{id}/status", handler.UpdateStatus)

	body := `{"status":"archived"}`
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authRequest(t, http.MethodPut, "/api/jobs/job-1/status", body, &auth.Identity{UserID: "emp-1", Role: models.RoleEmployer}))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestJobListMineHandler(t *testing.T) {
	var gotEmployer string
	service := &MockJobService{
		ListByEmployerFunc: func(ctx context.Context, employerID string) ([]*models.Job, error) {
			gotEmployer = employerID
			return []*models.Job{sampleJobModel()}, nil
		},
	}
	handler := NewJobHandler(service)

	rec := httptest.NewRecorder()
	handler.ListMine(rec, authRequest(t, http.MethodGet, "/api/jobs/employer", "", &auth.Identity{UserID: "emp-1", Role: models.RoleEmployer}))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "emp-1", gotEmployer)
}

func TestJobListAllHandler(t *testing.T) {
	service := &MockJobService{
		ListAllFunc: func(ctx context.Context) ([]*models.Job, error) {
			closed := sampleJobModel()
			closed.Status = models.JobStatusClosed
			return []*models.Job{sampleJobModel(), closed}, nil
		},
	}
	handler := NewJobHandler(service)

	rec := httptest.NewRecorder()
	handler.ListAll(rec, authRequest(t, http.MethodGet, "/api/jobs/all", "", &auth.Identity{UserID: "admin-1", Role: models.RoleAdmin}))

	assert.Equal(t, http.StatusOK, rec.Code)

	var jobs []JobResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &jobs))
	assert.Len(t, jobs, 2)
}

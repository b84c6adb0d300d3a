package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/calebmorton/hireboard/internal/models"
)

// JobRepository defines the job listing storage operations
type JobRepository interface {
	Create(ctx context.Context, job *models.Job) (*models.Job, error)
	GetByID(ctx context.Context, id string) (*models.Job, error)
	ListActive(ctx context.Context) ([]*models.Job, error)
	ListByEmployer(ctx context.Context, employerID string) ([]*models.Job, error)
	ListAll(ctx context.Context) ([]*models.Job, error)
	UpdateStatus(ctx context.Context, id string, status string) (*models.Job, error)
}

// JobService manages job listings
type JobService struct {
	jobs   JobRepository
	logger *slog.Logger
}

// NewJobService creates a new JobService
func NewJobService(jobs JobRepository, logger *slog.Logger) *JobService {
	return &JobService{
		jobs:   jobs,
		logger: logger,
	}
}

// JobInput carries the fields an employer supplies when posting a listing.
type JobInput struct {
	Title           string
	Description     string
	Requirements    []string
	Location        string
	SalaryRange     string
	JobType         string
	RequiredTimings string
}

// Create posts a new listing owned by employerID. New listings open active.
func (s *JobService) Create(ctx context.Context, employerID string, input *JobInput) (*models.Job, error) {
	requirements := input.Requirements
	if requirements == nil {
		requirements = []string{}
	}

	job, err := s.jobs.Create(ctx, &models.Job{
		EmployerID:      employerID,
		Title:           input.Title,
		Description:     input.Description,
		Requirements:    requirements,
		Location:        input.Location,
		SalaryRange:     input.SalaryRange,
		JobType:         input.JobType,
		RequiredTimings: input.RequiredTimings,
		Status:          models.JobStatusActive,
	})
	if err != nil {
		s.logger.Error("failed to create job", slog.String("employer_id", employerID), slog.Any("error", err))
		return nil, models.ErrInternalServer
	}

	s.logger.Info("job posted", slog.String("job_id", job.ID), slog.String("employer_id", employerID))
	return job, nil
}

// Get returns a single listing by id.
func (s *JobService) Get(ctx context.Context, id string) (*models.Job, error) {
	job, err := s.jobs.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, models.ErrNotFound
		}
		s.logger.Error("failed to get job", slog.String("job_id", id), slog.Any("error", err))
		return nil, models.ErrInternalServer
	}
	return job, nil
}

// ListActive returns the open listings visible to everyone, newest first.
func (s *JobService) ListActive(ctx context.Context) ([]*models.Job, error) {
	jobs, err := s.jobs.ListActive(ctx)
	if err != nil {
		s.logger.Error("failed to list jobs", slog.Any("error", err))
		return nil, models.ErrInternalServer
	}
	return jobs, nil
}

// ListByEmployer returns all of one employer's listings regardless of status.
func (s *JobService) ListByEmployer(ctx context.Context, employerID string) ([]*models.Job, error) {
	jobs, err := s.jobs.ListByEmployer(ctx, employerID)
	if err != nil {
		s.logger.Error("failed to list employer jobs", slog.String("employer_id", employerID), slog.Any("error", err))
		return nil, models.ErrInternalServer
	}
	return jobs, nil
}

// ListAll returns every listing in the system.
func (s *JobService) ListAll(ctx context.Context) ([]*models.Job, error) {
	jobs, err := s.jobs.ListAll(ctx)
	if err != nil {
		s.logger.Error("failed to list all jobs", slog.Any("error", err))
		return nil, models.ErrInternalServer
	}
	return jobs, nil
}

// UpdateStatus changes a listing's status. Only the posting employer or an
// admin may do so.
func (s *JobService) UpdateStatus(ctx context.Context, requesterID, requesterRole, jobID, status string) (*models.Job, error) {
	if !models.ValidJobStatus(status) {
		return nil, models.ErrBadRequest
	}

	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, models.ErrNotFound
		}
		s.logger.Error("failed to get job", slog.String("job_id", jobID), slog.Any("error", err))
		return nil, models.ErrInternalServer
	}

	if job.EmployerID != requesterID && requesterRole != models.RoleAdmin {
		return nil, models.ErrForbidden
	}

	updated, err := s.jobs.UpdateStatus(ctx, jobID, status)
	if err != nil {
		s.logger.Error("failed to update job status", slog.String("job_id", jobID), slog.Any("error", err))
		return nil, models.ErrInternalServer
	}

	s.logger.Info("job status updated", slog.String("job_id", jobID), slog.String("status", status))
	return updated, nil
}

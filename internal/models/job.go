package models

import (
	"time"
)

// Job listing statuses.
const (
	JobStatusActive = "active"
	JobStatusClosed = "closed"
	JobStatusDraft  = "draft"
)

// ValidJobStatus reports whether status is a known listing status.
func ValidJobStatus(status string) bool {
	switch status {
	case JobStatusActive, JobStatusClosed, JobStatusDraft:
		return true
	}
	return false
}

type Job struct {
	ID              string
	EmployerID      string
	Title           string
	Description     string
	Requirements    []string
	Location        string
	SalaryRange     string
	JobType         string
	RequiredTimings string
	Status          string

	// Populated from the users table on reads that join the employer.
	EmployerName  string
	EmployerEmail string

	CreatedAt time.Time
	UpdatedAt time.Time
}

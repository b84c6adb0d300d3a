package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/calebmorton/hireboard/internal/database"
	"github.com/calebmorton/hireboard/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type JobRepository struct {
	pool *pgxpool.Pool
}

func NewJobRepository(db *database.DB) *JobRepository {
	return &JobRepository{pool: db.Pool}
}

// Every job read joins the posting employer so listings can show who is
// hiring without a second query.
const jobSelect = `
	SELECT j.id, j.employer_id, j.title, j.description, j.requirements,
	       j.location, j.salary_range, j.job_type, j.required_timings, j.status,
	       u.name, u.email, j.created_at, j.updated_at
	FROM jobs j
	JOIN users u ON u.id = j.employer_id
`

func scanJobRow(scanner rowScanner) (*models.Job, error) {
	var job models.Job

	err := scanner.Scan(
		&job.ID, &job.EmployerID, &job.Title, &job.Description,
		pq.Array(&job.Requirements),
		&job.Location, &job.SalaryRange, &job.JobType, &job.RequiredTimings, &job.Status,
		&job.EmployerName, &job.EmployerEmail, &job.CreatedAt, &job.UpdatedAt,
	)
	if err != nil {
		return nil, database.MapPostgresError(err)
	}

	if job.Requirements == nil {
		job.Requirements = []string{}
	}

	return &job, nil
}

func scanJobRows(rows pgx.Rows) ([]*models.Job, error) {
	defer rows.Close()

	jobs := make([]*models.Job, 0)

	for rows.Next() {
		job, err := scanJobRow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan job: %w", err)
		}
		jobs = append(jobs, job)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return jobs, nil
}

func (r *JobRepository) Create(ctx context.Context, job *models.Job) (*models.Job, error) {
	job.ID = uuid.New().String()

	now := time.Now()
	job.CreatedAt = now
	job.UpdatedAt = now

	if job.Status == "" {
		job.Status = models.JobStatusActive
	}

	query := `
		INSERT INTO jobs (id, employer_id, title, description, requirements, location, salary_range, job_type, required_timings, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := r.pool.Exec(ctx, query,
		job.ID, job.EmployerID, job.Title, job.Description,
		pq.Array(job.Requirements),
		job.Location, job.SalaryRange, job.JobType, job.RequiredTimings, job.Status,
		job.CreatedAt, job.UpdatedAt,
	)
	if err != nil {
		return nil, database.MapPostgresError(err)
	}

	return r.GetByID(ctx, job.ID)
}

func (r *JobRepository) GetByID(ctx context.Context, id string) (*models.Job, error) {
	query := jobSelect + ` WHERE j.id = $1`

	job, err := scanJobRow(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		return nil, err
	}

	return job, nil
}

// ListActive returns open listings, newest first.
func (r *JobRepository) ListActive(ctx context.Context) ([]*models.Job, error) {
	query := jobSelect + ` WHERE j.status = $1 ORDER BY j.created_at DESC`

	rows, err := r.pool.Query(ctx, query, models.JobStatusActive)
	if err != nil {
		return nil, fmt.Errorf("failed to query jobs: %w", err)
	}

	return scanJobRows(rows)
}

func (r *JobRepository) ListByEmployer(ctx context.Context, employerID string) ([]*models.Job, error) {
	query := jobSelect + ` WHERE j.employer_id = $1 ORDER BY j.created_at DESC`

	rows, err := r.pool.Query(ctx, query, employerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query jobs: %w", err)
	}

	return scanJobRows(rows)
}

func (r *JobRepository) ListAll(ctx context.Context) ([]*models.Job, error) {
	query := jobSelect + ` ORDER BY j.created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query jobs: %w", err)
	}

	return scanJobRows(rows)
}

func (r *JobRepository) UpdateStatus(ctx context.Context, id string, status string) (*models.Job, error) {
	query := `
		UPDATE jobs SET status = $1, updated_at = $2 WHERE id = $3
	`

	result, err := r.pool.Exec(ctx, query, status, time.Now(), id)
	if err != nil {
		return nil, database.MapPostgresError(err)
	}

	if result.RowsAffected() == 0 {
		return nil, models.ErrNotFound
	}

	return r.GetByID(ctx, id)
}

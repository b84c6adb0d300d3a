package integration

import (
	"context"
	"testing"
	"time"

	"github.com/calebmorton/hireboard/internal/models"
	"github.com/calebmorton/hireboard/internal/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) (*TestDB, context.Context) {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()
	db, err := SetupTestDatabase(ctx)
	require.NoError(t, err)

	t.Cleanup(func() {
		db.Teardown(context.Background())
	})

	return db, ctx
}

func TestUserRepository_CreateAndLookup(t *testing.T) {
	db, ctx := setup(t)
	repo := repositories.NewUserRepository(db.DB)

	created, err := repo.Create(ctx, &models.User{
		Email:        "alice@example.com",
		PasswordHash: "hash",
		Name:         "Alice",
		Role:         models.RoleCandidate,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	byEmail, err := repo.GetByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byEmail.ID)

	byID, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", byID.Email)

	_, err = repo.GetByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	db, ctx := setup(t)
	repo := repositories.NewUserRepository(db.DB)

	_, err := repo.Create(ctx, &models.User{Email: "alice@example.com", PasswordHash: "hash"})
	require.NoError(t, err)

	_, err = repo.Create(ctx, &models.User{Email: "alice@example.com", PasswordHash: "hash"})
	assert.ErrorIs(t, err, models.ErrDuplicateEmail)
}

func TestUserRepository_LockoutCounters(t *testing.T) {
	db, ctx := setup(t)
	repo := repositories.NewUserRepository(db.DB)

	user, err := SeedUser(ctx, db.Pool, "bob@example.com", "Valid1Pass!", models.RoleCandidate)
	require.NoError(t, err)

	// Four failures stay below the threshold
	for i := 1; i <= 4; i++ {
		updated, err := repo.RecordFailedAttempt(ctx, user.ID, 5, 30*time.Minute)
		require.NoError(t, err)
		assert.Equal(t, i, updated.FailedAttempts)
		assert.Nil(t, updated.LockedUntil)
	}

	// The fifth sets the lock in the same statement
	locked, err := repo.RecordFailedAttempt(ctx, user.ID, 5, 30*time.Minute)
	require.NoError(t, err)
	assert.Equal(t, 5, locked.FailedAttempts)
	require.NotNil(t, locked.LockedUntil)
	assert.WithinDuration(t, time.Now().Add(30*time.Minute), *locked.LockedUntil, 10*time.Second)

	// A successful login clears everything and stamps last_login_at
	reset, err := repo.RecordSuccessfulLogin(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, reset.FailedAttempts)
	assert.Nil(t, reset.LockedUntil)
	require.NotNil(t, reset.LastLoginAt)
}

func TestProfileRepository_RoundTrip(t *testing.T) {
	db, ctx := setup(t)
	users := repositories.NewUserRepository(db.DB)
	profiles := repositories.NewProfileRepository(db.DB)

	user, err := users.Create(ctx, &models.User{Email: "alice@example.com", PasswordHash: "hash", Role: models.RoleCandidate})
	require.NoError(t, err)

	profile := models.NewProfile(user.ID, models.RoleCandidate)
	profile.Candidate.PersonalInfo = models.PersonalInfo{FullName: "Alice A.", Bio: "Backend developer"}
	profile.Candidate.Skills = []string{"go", "postgres"}
	profile.Candidate.Experience = []models.ExperienceEntry{
		{Title: "Engineer", Company: "Acme", StartDate: "2022-01"},
	}

	created, err := profiles.Create(ctx, profile)
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	loaded, err := profiles.GetByUserID(ctx, user.ID)
	require.NoError(t, err)
	require.NotNil(t, loaded.Candidate)
	assert.Equal(t, "Alice A.", loaded.Candidate.PersonalInfo.FullName)
	assert.Equal(t, []string{"go", "postgres"}, loaded.Candidate.Skills)
	require.Len(t, loaded.Candidate.Experience, 1)
	assert.Equal(t, "Acme", loaded.Candidate.Experience[0].Company)

	loaded.Candidate.Skills = append(loaded.Candidate.Skills, "kubernetes")
	updated, err := profiles.Update(ctx, loaded)
	require.NoError(t, err)
	assert.Len(t, updated.Candidate.Skills, 3)
}

func TestProfileRepository_EmployerShape(t *testing.T) {
	db, ctx := setup(t)
	users := repositories.NewUserRepository(db.DB)
	profiles := repositories.NewProfileRepository(db.DB)

	user, err := users.Create(ctx, &models.User{Email: "hr@acme.com", PasswordHash: "hash", Role: models.RoleEmployer})
	require.NoError(t, err)

	profile := models.NewProfile(user.ID, models.RoleEmployer)
	profile.Employer.CompanyInfo = models.CompanyInfo{Name: "Acme", Industry: "Manufacturing"}

	_, err = profiles.Create(ctx, profile)
	require.NoError(t, err)

	loaded, err := profiles.GetByUserID(ctx, user.ID)
	require.NoError(t, err)
	require.NotNil(t, loaded.Employer)
	assert.Nil(t, loaded.Candidate)
	assert.Equal(t, "Acme", loaded.Employer.CompanyInfo.Name)
}

func TestJobRepository_ListingsEmbedEmployer(t *testing.T) {
	db, ctx := setup(t)
	users := repositories.NewUserRepository(db.DB)
	jobs := repositories.NewJobRepository(db.DB)

	employer, err := users.Create(ctx, &models.User{
		Email: "hr@acme.com", PasswordHash: "hash", Name: "Acme HR", Role: models.RoleEmployer,
	})
	require.NoError(t, err)

	created, err := jobs.Create(ctx, &models.Job{
		EmployerID:   employer.ID,
		Title:        "Backend Engineer",
		Description:  "Build APIs",
		Requirements: []string{"go"},
		Location:     "Remote",
	})
	require.NoError(t, err)
	assert.Equal(t, models.JobStatusActive, created.Status)
	assert.Equal(t, "Acme HR", created.EmployerName)
	assert.Equal(t, "hr@acme.com", created.EmployerEmail)

	// Closed jobs drop out of the public listing
	_, err = jobs.UpdateStatus(ctx, created.ID, models.JobStatusClosed)
	require.NoError(t, err)

	active, err := jobs.ListActive(ctx)
	require.NoError(t, err)
	assert.Empty(t, active)

	mine, err := jobs.ListByEmployer(ctx, employer.ID)
	require.NoError(t, err)
	assert.Len(t, mine, 1)

	all, err := jobs.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestJobRepository_ActiveOrderedNewestFirst(t *testing.T) {
	db, ctx := setup(t)
	users := repositories.NewUserRepository(db.DB)
	jobs := repositories.NewJobRepository(db.DB)

	employer, err := users.Create(ctx, &models.User{
		Email: "hr@acme.com", PasswordHash: "hash", Name: "Acme HR", Role: models.RoleEmployer,
	})
	require.NoError(t, err)

	for _, title := range []string{"First", "Second", "Third"} {
		_, err := jobs.Create(ctx, &models.Job{
			EmployerID:  employer.ID,
			Title:       title,
			Description: "d",
		})
		require.NoError(t, err)
		time.Sleep(10 * time.Millisecond)
	}

	active, err := jobs.ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, active, 3)
	assert.Equal(t, "Third", active[0].Title)
	assert.Equal(t, "First", active[2].Title)
}

func TestContactRepository_Create(t *testing.T) {
	db, ctx := setup(t)
	repo := repositories.NewContactRepository(db.DB)

	msg, err := repo.Create(ctx, &models.ContactMessage{
		Name:    "Bob",
		Email:   "bob@example.com",
		Message: "Hello",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, msg.ID)

	var count int
	require.NoError(t, db.Pool.QueryRow(ctx, "SELECT count(*) FROM contact_messages").Scan(&count))
	assert.Equal(t, 1, count)
}

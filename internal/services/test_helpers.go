package services

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/calebmorton/hireboard/internal/models"
)

// testLogger discards everything; service tests assert on returned values,
// not log output.
func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// MockUserRepository implements UserRepository for testing
type MockUserRepository struct {
	GetByIDFunc               func(ctx context.Context, id string) (*models.User, error)
	GetByEmailFunc            func(ctx context.Context, email string) (*models.User, error)
	CreateFunc                func(ctx context.Context, user *models.User) (*models.User, error)
	UpdateFunc                func(ctx context.Context, id string, name *string, profileCompleted *bool) (*models.User, error)
	UpdatePasswordHashFunc    func(ctx context.Context, id string, passwordHash string) error
	RecordFailedAttemptFunc   func(ctx context.Context, id string, maxAttempts int, lockDuration time.Duration) (*models.User, error)
	RecordSuccessfulLoginFunc func(ctx context.Context, id string) (*models.User, error)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, models.ErrNotFound
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	return nil, models.ErrNotFound
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	return nil, models.ErrInternalServer
}

func (m *MockUserRepository) Update(ctx context.Context, id string, name *string, profileCompleted *bool) (*models.User, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, name, profileCompleted)
	}
	return nil, models.ErrInternalServer
}

func (m *MockUserRepository) UpdatePasswordHash(ctx context.Context, id string, passwordHash string) error {
	if m.UpdatePasswordHashFunc != nil {
		return m.UpdatePasswordHashFunc(ctx, id, passwordHash)
	}
	return nil
}

func (m *MockUserRepository) RecordFailedAttempt(ctx context.Context, id string, maxAttempts int, lockDuration time.Duration) (*models.User, error) {
	if m.RecordFailedAttemptFunc != nil {
		return m.RecordFailedAttemptFunc(ctx, id, maxAttempts, lockDuration)
	}
	return nil, models.ErrInternalServer
}

func (m *MockUserRepository) RecordSuccessfulLogin(ctx context.Context, id string) (*models.User, error) {
	if m.RecordSuccessfulLoginFunc != nil {
		return m.RecordSuccessfulLoginFunc(ctx, id)
	}
	return nil, models.ErrInternalServer
}

// MockTokenIssuer implements TokenIssuer for testing
type MockTokenIssuer struct {
	IssueFunc func(user *models.User) (string, error)
}

func (m *MockTokenIssuer) Issue(user *models.User) (string, error) {
	if m.IssueFunc != nil {
		return m.IssueFunc(user)
	}
	return "test-token", nil
}

// MockProfileRepository implements ProfileRepository for testing
type MockProfileRepository struct {
	GetByUserIDFunc func(ctx context.Context, userID string) (*models.Profile, error)
	CreateFunc      func(ctx context.Context, profile *models.Profile) (*models.Profile, error)
	UpdateFunc      func(ctx context.Context, profile *models.Profile) (*models.Profile, error)
}

func (m *MockProfileRepository) GetByUserID(ctx context.Context, userID string) (*models.Profile, error) {
	if m.GetByUserIDFunc != nil {
		return m.GetByUserIDFunc(ctx, userID)
	}
	return nil, models.ErrNotFound
}

func (m *MockProfileRepository) Create(ctx context.Context, profile *models.Profile) (*models.Profile, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, profile)
	}
	return profile, nil
}

func (m *MockProfileRepository) Update(ctx context.Context, profile *models.Profile) (*models.Profile, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, profile)
	}
	return profile, nil
}

// MockJobRepository implements JobRepository for testing
type MockJobRepository struct {
	CreateFunc         func(ctx context.Context, job *models.Job) (*models.Job, error)
	GetByIDFunc        func(ctx context.Context, id string) (*models.Job, error)
	ListActiveFunc     func(ctx context.Context) ([]*models.Job, error)
	ListByEmployerFunc func(ctx context.Context, employerID string) ([]*models.Job, error)
	ListAllFunc        func(ctx context.Context) ([]*models.Job, error)
	UpdateStatusFunc   func(ctx context.Context, id string, status string) (*models.Job, error)
}

func (m *MockJobRepository) Create(ctx context.Context, job *models.Job) (*models.Job, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, job)
	}
	return job, nil
}

func (m *MockJobRepository) GetByID(ctx context.Context, id string) (*models.Job, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, models.ErrNotFound
}

func (m *MockJobRepository) ListActive(ctx context.Context) ([]*models.Job, error) {
	if m.ListActiveFunc != nil {
		return m.ListActiveFunc(ctx)
	}
	return []*models.Job{}, nil
}

func (m *MockJobRepository) ListByEmployer(ctx context.Context, employerID string) ([]*models.Job, error) {
	if m.ListByEmployerFunc != nil {
		return m.ListByEmployerFunc(ctx, employerID)
	}
	return []*models.Job{}, nil
}

func (m *MockJobRepository) ListAll(ctx context.Context) ([]*models.Job, error) {
	if m.ListAllFunc != nil {
		return m.ListAllFunc(ctx)
	}
	return []*models.Job{}, nil
}

func (m *MockJobRepository) UpdateStatus(ctx context.Context, id string, status string) (*models.Job, error) {
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(ctx, id, status)
	}
	return nil, models.ErrNotFound
}

// MockContactRepository implements ContactRepository for testing
type MockContactRepository struct {
	CreateFunc func(ctx context.Context, message *models.ContactMessage) (*models.ContactMessage, error)
}

func (m *MockContactRepository) Create(ctx context.Context, message *models.ContactMessage) (*models.ContactMessage, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, message)
	}
	message.ID = "msg-1"
	return message, nil
}

// MockNotifier implements Notifier for testing
type MockNotifier struct {
	NotifyContactMessageFunc func(ctx context.Context, message *models.ContactMessage) error
}

func (m *MockNotifier) NotifyContactMessage(ctx context.Context, message *models.ContactMessage) error {
	if m.NotifyContactMessageFunc != nil {
		return m.NotifyContactMessageFunc(ctx, message)
	}
	return nil
}

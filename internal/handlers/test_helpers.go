package handlers

import (
	"context"

	"github.com/calebmorton/hireboard/internal/models"
	"github.com/calebmorton/hireboard/internal/services"
)

// MockAuthService implements AuthServiceInterface for testing
type MockAuthService struct {
	RegisterFunc       func(ctx context.Context, email, password, name, role string) (*services.AuthResponse, error)
	LoginFunc          func(ctx context.Context, email, password string) (*services.AuthResponse, error)
	ChangePasswordFunc func(ctx context.Context, userID, currentPassword, newPassword string) error
	CurrentUserFunc    func(ctx context.Context, userID string) (*services.UserResponse, error)
}

func (m *MockAuthService) Register(ctx context.Context, email, password, name, role string) (*services.AuthResponse, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, email, password, name, role)
	}
	return nil, models.ErrInternalServer
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (*services.AuthResponse, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, email, password)
	}
	return nil, models.ErrInternalServer
}

func (m *MockAuthService) ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error {
	if m.ChangePasswordFunc != nil {
		return m.ChangePasswordFunc(ctx, userID, currentPassword, newPassword)
	}
	return models.ErrInternalServer
}

func (m *MockAuthService) CurrentUser(ctx context.Context, userID string) (*services.UserResponse, error) {
	if m.CurrentUserFunc != nil {
		return m.CurrentUserFunc(ctx, userID)
	}
	return nil, models.ErrNotFound
}

// MockAccountService implements AccountServiceInterface for testing
type MockAccountService struct {
	UpdateAccountFunc func(ctx context.Context, userID, role string, update *services.AccountUpdate) (*models.User, error)
}

func (m *MockAccountService) UpdateAccount(ctx context.Context, userID, role string, update *services.AccountUpdate) (*models.User, error) {
	if m.UpdateAccountFunc != nil {
		return m.UpdateAccountFunc(ctx, userID, role, update)
	}
	return nil, models.ErrInternalServer
}

// MockProfileService implements ProfileServiceInterface for testing
type MockProfileService struct {
	GetFunc    func(ctx context.Context, requesterID, requesterRole, targetUserID string) (*models.Profile, error)
	UpdateFunc func(ctx context.Context, userID, role string, update *services.ProfileUpdate) (*models.Profile, error)
}

func (m *MockProfileService) Get(ctx context.Context, requesterID, requesterRole, targetUserID string) (*models.Profile, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, requesterID, requesterRole, targetUserID)
	}
	return nil, models.ErrNotFound
}

func (m *MockProfileService) Update(ctx context.Context, userID, role string, update *services.ProfileUpdate) (*models.Profile, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, userID, role, update)
	}
	return nil, models.ErrInternalServer
}

// MockJobService implements JobServiceInterface for testing
type MockJobService struct {
	CreateFunc         func(ctx context.Context, employerID string, input *services.JobInput) (*models.Job, error)
	GetFunc            func(ctx context.Context, id string) (*models.Job, error)
	ListActiveFunc     func(ctx context.Context) ([]*models.Job, error)
	ListByEmployerFunc func(ctx context.Context, employerID string) ([]*models.Job, error)
	ListAllFunc        func(ctx context.Context) ([]*models.Job, error)
	UpdateStatusFunc   func(ctx context.Context, requesterID, requesterRole, jobID, status string) (*models.Job, error)
}

func (m *MockJobService) Create(ctx context.Context, employerID string, input *services.JobInput) (*models.Job, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, employerID, input)
	}
	return nil, models.ErrInternalServer
}

func (m *MockJobService) Get(ctx context.Context, id string) (*models.Job, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	return nil, models.ErrNotFound
}

func (m *MockJobService) ListActive(ctx context.Context) ([]*models.Job, error) {
	if m.ListActiveFunc != nil {
		return m.ListActiveFunc(ctx)
	}
	return []*models.Job{}, nil
}

func (m *MockJobService) ListByEmployer(ctx context.Context, employerID string) ([]*models.Job, error) {
	if m.ListByEmployerFunc != nil {
		return m.ListByEmployerFunc(ctx, employerID)
	}
	return []*models.Job{}, nil
}

func (m *MockJobService) ListAll(ctx context.Context) ([]*models.Job, error) {
	if m.ListAllFunc != nil {
		return m.ListAllFunc(ctx)
	}
	return []*models.Job{}, nil
}

func (m *MockJobService) UpdateStatus(ctx context.Context, requesterID, requesterRole, jobID, status string) (*models.Job, error) {
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(ctx, requesterID, requesterRole, jobID, status)
	}
	return nil, models.ErrNotFound
}

// MockContactService implements ContactServiceInterface for testing
type MockContactService struct {
	SubmitFunc func(ctx context.Context, name, email, message string) (*models.ContactMessage, error)
}

func (m *MockContactService) Submit(ctx context.Context, name, email, message string) (*models.ContactMessage, error) {
	if m.SubmitFunc != nil {
		return m.SubmitFunc(ctx, name, email, message)
	}
	return &models.ContactMessage{ID: "msg-1", Name: name, Email: email, Message: message}, nil
}

package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/calebmorton/hireboard/internal/models"
)

// ProfileRepository defines the profile storage operations
type ProfileRepository interface {
	GetByUserID(ctx context.Context, userID string) (*models.Profile, error)
	Create(ctx context.Context, profile *models.Profile) (*models.Profile, error)
	Update(ctx context.Context, profile *models.Profile) (*models.Profile, error)
}

// ProfileService manages role-shaped profiles
type ProfileService struct {
	profiles ProfileRepository
	users    UserRepository
	logger   *slog.Logger
}

// NewProfileService creates a new ProfileService
func NewProfileService(profiles ProfileRepository, users UserRepository, logger *slog.Logger) *ProfileService {
	return &ProfileService{
		profiles: profiles,
		users:    users,
		logger:   logger,
	}
}

// ProfileUpdate carries a role-tagged profile update. Exactly the section
// matching the account's role may be set; anything else is rejected.
type ProfileUpdate struct {
	Candidate *models.CandidateProfile `json:"candidate,omitempty"`
	Employer  *models.EmployerProfile  `json:"employer,omitempty"`
	Admin     *models.AdminProfile     `json:"admin,omitempty"`
}

// AccountUpdate carries the allow-listed fields of PUT /api/auth/profile.
// Name applies to every role; the rest are candidate-only.
type AccountUpdate struct {
	Name       *string                   `json:"name,omitempty"`
	Bio        *string                   `json:"bio,omitempty"`
	Skills     []string                  `json:"skills,omitempty"`
	Experience []models.ExperienceEntry  `json:"experience,omitempty"`
	Education  []models.EducationEntry   `json:"education,omitempty"`
}

// Get returns the profile of targetUserID. Callers may read their own
// profile; admins may read anyone's. The first read of a profile creates an
// empty one shaped by the account's role.
func (s *ProfileService) Get(ctx context.Context, requesterID, requesterRole, targetUserID string) (*models.Profile, error) {
	if requesterID != targetUserID && requesterRole != models.RoleAdmin {
		return nil, models.ErrForbidden
	}

	profile, err := s.profiles.GetByUserID(ctx, targetUserID)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, models.ErrNotFound) {
		s.logger.Error("failed to get profile", slog.String("user_id", targetUserID), slog.Any("error", err))
		return nil, models.ErrInternalServer
	}

	user, err := s.users.GetByID(ctx, targetUserID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, models.ErrNotFound
		}
		s.logger.Error("failed to get user", slog.String("user_id", targetUserID), slog.Any("error", err))
		return nil, models.ErrInternalServer
	}

	created, err := s.profiles.Create(ctx, models.NewProfile(user.ID, user.Role))
	if err != nil {
		// A concurrent first read may have created it already
		if errors.Is(err, models.ErrConflict) {
			return s.profiles.GetByUserID(ctx, targetUserID)
		}
		s.logger.Error("failed to create profile", slog.String("user_id", targetUserID), slog.Any("error", err))
		return nil, models.ErrInternalServer
	}

	s.logger.Info("profile created on first read", slog.String("user_id", user.ID), slog.String("role", user.Role))
	return created, nil
}

// Update replaces the caller's role section with the supplied one and marks
// the account's profile as completed. Sections for other roles are rejected.
func (s *ProfileService) Update(ctx context.Context, userID, role string, update *ProfileUpdate) (*models.Profile, error) {
	profile, err := s.Get(ctx, userID, role, userID)
	if err != nil {
		return nil, err
	}

	switch role {
	case models.RoleCandidate:
		if update.Candidate == nil || update.Employer != nil || update.Admin != nil {
			return nil, models.ErrBadRequest
		}
		if update.Candidate.Skills == nil {
			update.Candidate.Skills = []string{}
		}
		profile.Candidate = update.Candidate
	case models.RoleEmployer:
		if update.Employer == nil || update.Candidate != nil || update.Admin != nil {
			return nil, models.ErrBadRequest
		}
		profile.Employer = update.Employer
	case models.RoleAdmin:
		if update.Admin == nil || update.Candidate != nil || update.Employer != nil {
			return nil, models.ErrBadRequest
		}
		profile.Admin = update.Admin
	default:
		return nil, models.ErrBadRequest
	}

	updated, err := s.profiles.Update(ctx, profile)
	if err != nil {
		s.logger.Error("failed to update profile", slog.String("user_id", userID), slog.Any("error", err))
		return nil, models.ErrInternalServer
	}

	if err := s.markProfileCompleted(ctx, userID); err != nil {
		return nil, err
	}

	s.logger.Info("profile updated", slog.String("user_id", userID))
	return updated, nil
}

// UpdateAccount applies the allow-listed account-level fields. Candidate-only
// fields on a non-candidate account are rejected rather than ignored.
func (s *ProfileService) UpdateAccount(ctx context.Context, userID, role string, update *AccountUpdate) (*models.User, error) {
	hasCandidateFields := update.Bio != nil || update.Skills != nil ||
		update.Experience != nil || update.Education != nil

	if hasCandidateFields && role != models.RoleCandidate {
		return nil, models.ErrBadRequest
	}

	if hasCandidateFields {
		profile, err := s.Get(ctx, userID, role, userID)
		if err != nil {
			return nil, err
		}

		if update.Bio != nil {
			profile.Candidate.PersonalInfo.Bio = *update.Bio
		}
		if update.Skills != nil {
			profile.Candidate.Skills = update.Skills
		}
		if update.Experience != nil {
			profile.Candidate.Experience = update.Experience
		}
		if update.Education != nil {
			profile.Candidate.Education = update.Education
		}

		if _, err := s.profiles.Update(ctx, profile); err != nil {
			s.logger.Error("failed to update profile", slog.String("user_id", userID), slog.Any("error", err))
			return nil, models.ErrInternalServer
		}
	}

	completed := true
	user, err := s.users.Update(ctx, userID, update.Name, &completed)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, models.ErrNotFound
		}
		s.logger.Error("failed to update user", slog.String("user_id", userID), slog.Any("error", err))
		return nil, models.ErrInternalServer
	}

	s.logger.Info("account updated", slog.String("user_id", userID))
	return user, nil
}

func (s *ProfileService) markProfileCompleted(ctx context.Context, userID string) error {
	completed := true
	if _, err := s.users.Update(ctx, userID, nil, &completed); err != nil {
		s.logger.Error("failed to mark profile completed", slog.String("user_id", userID), slog.Any("error", err))
		return models.ErrInternalServer
	}
	return nil
}

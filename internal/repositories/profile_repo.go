package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/calebmorton/hireboard/internal/database"
	"github.com/calebmorton/hireboard/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type ProfileRepository struct {
	pool *pgxpool.Pool
}

func NewProfileRepository(db *database.DB) *ProfileRepository {
	return &ProfileRepository{pool: db.Pool}
}

const profileColumns = `id, user_id, role, skills, personal_info, experience, education, company_info, contact_info, admin_info, created_at, updated_at`

// profileSections holds the JSONB column payloads for a profile row. Only the
// sections matching the row's role are non-nil.
type profileSections struct {
	skills       []string
	personalInfo []byte
	experience   []byte
	education    []byte
	companyInfo  []byte
	contactInfo  []byte
	adminInfo    []byte
}

// marshalSections encodes the role-specific parts of a profile into column
// payloads. The switch is exhaustive over the role tag.
func marshalSections(profile *models.Profile) (*profileSections, error) {
	sections := &profileSections{}

	switch profile.Role {
	case models.RoleCandidate:
		if profile.Candidate == nil {
			return nil, fmt.Errorf("candidate profile missing candidate section")
		}
		sections.skills = profile.Candidate.Skills

		var err error
		if sections.personalInfo, err = json.Marshal(profile.Candidate.PersonalInfo); err != nil {
			return nil, fmt.Errorf("failed to marshal personal info: %w", err)
		}
		if sections.experience, err = json.Marshal(profile.Candidate.Experience); err != nil {
			return nil, fmt.Errorf("failed to marshal experience: %w", err)
		}
		if sections.education, err = json.Marshal(profile.Candidate.Education); err != nil {
			return nil, fmt.Errorf("failed to marshal education: %w", err)
		}
	case models.RoleEmployer:
		if profile.Employer == nil {
			return nil, fmt.Errorf("employer profile missing employer section")
		}

		var err error
		if sections.companyInfo, err = json.Marshal(profile.Employer.CompanyInfo); err != nil {
			return nil, fmt.Errorf("failed to marshal company info: %w", err)
		}
		if sections.contactInfo, err = json.Marshal(profile.Employer.ContactInfo); err != nil {
			return nil, fmt.Errorf("failed to marshal contact info: %w", err)
		}
	case models.RoleAdmin:
		if profile.Admin == nil {
			return nil, fmt.Errorf("admin profile missing admin section")
		}

		var err error
		if sections.adminInfo, err = json.Marshal(profile.Admin); err != nil {
			return nil, fmt.Errorf("failed to marshal admin info: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown profile role: %s", profile.Role)
	}

	return sections, nil
}

// scanProfileRow populates a Profile model from a database row, decoding only
// the sections matching the row's role.
func scanProfileRow(scanner rowScanner) (*models.Profile, error) {
	var profile models.Profile
	sections := &profileSections{}

	err := scanner.Scan(
		&profile.ID, &profile.UserID, &profile.Role,
		pq.Array(&sections.skills),
		&sections.personalInfo, &sections.experience, &sections.education,
		&sections.companyInfo, &sections.contactInfo, &sections.adminInfo,
		&profile.CreatedAt, &profile.UpdatedAt,
	)
	if err != nil {
		return nil, database.MapPostgresError(err)
	}

	switch profile.Role {
	case models.RoleCandidate:
		candidate := &models.CandidateProfile{Skills: sections.skills}
		if candidate.Skills == nil {
			candidate.Skills = []string{}
		}
		if err := unmarshalSection(sections.personalInfo, &candidate.PersonalInfo); err != nil {
			return nil, err
		}
		if err := unmarshalSection(sections.experience, &candidate.Experience); err != nil {
			return nil, err
		}
		if err := unmarshalSection(sections.education, &candidate.Education); err != nil {
			return nil, err
		}
		if candidate.Experience == nil {
			candidate.Experience = []models.ExperienceEntry{}
		}
		if candidate.Education == nil {
			candidate.Education = []models.EducationEntry{}
		}
		profile.Candidate = candidate
	case models.RoleEmployer:
		employer := &models.EmployerProfile{}
		if err := unmarshalSection(sections.companyInfo, &employer.CompanyInfo); err != nil {
			return nil, err
		}
		if err := unmarshalSection(sections.contactInfo, &employer.ContactInfo); err != nil {
			return nil, err
		}
		profile.Employer = employer
	case models.RoleAdmin:
		admin := &models.AdminProfile{}
		if err := unmarshalSection(sections.adminInfo, admin); err != nil {
			return nil, err
		}
		profile.Admin = admin
	default:
		return nil, fmt.Errorf("unknown profile role: %s", profile.Role)
	}

	return &profile, nil
}

func unmarshalSection(data []byte, dest interface{}) error {
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("failed to unmarshal profile section: %w", err)
	}
	return nil
}

func (r *ProfileRepository) GetByUserID(ctx context.Context, userID string) (*models.Profile, error) {
	query := `
		SELECT ` + profileColumns + `
		FROM profiles WHERE user_id = $1
	`

	profile, err := scanProfileRow(r.pool.QueryRow(ctx, query, userID))
	if err != nil {
		return nil, err
	}

	return profile, nil
}

func (r *ProfileRepository) Create(ctx context.Context, profile *models.Profile) (*models.Profile, error) {
	profile.ID = uuid.New().String()

	now := time.Now()
	profile.CreatedAt = now
	profile.UpdatedAt = now

	sections, err := marshalSections(profile)
	if err != nil {
		return nil, err
	}

	query := `
		INSERT INTO profiles (id, user_id, role, skills, personal_info, experience, education, company_info, contact_info, admin_info, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING ` + profileColumns + `
	`

	createdProfile, err := scanProfileRow(r.pool.QueryRow(ctx, query,
		profile.ID, profile.UserID, profile.Role,
		pq.Array(sections.skills),
		sections.personalInfo, sections.experience, sections.education,
		sections.companyInfo, sections.contactInfo, sections.adminInfo,
		profile.CreatedAt, profile.UpdatedAt,
	))

	if err != nil {
		return nil, err
	}

	return createdProfile, nil
}

func (r *ProfileRepository) Update(ctx context.Context, profile *models.Profile) (*models.Profile, error) {
	profile.UpdatedAt = time.Now()

	sections, err := marshalSections(profile)
	if err != nil {
		return nil, err
	}

	query := `
		UPDATE profiles
		SET skills = $1, personal_info = $2, experience = $3, education = $4,
		    company_info = $5, contact_info = $6, admin_info = $7, updated_at = $8
		WHERE user_id = $9
		RETURNING ` + profileColumns + `
	`

	updatedProfile, err := scanProfileRow(r.pool.QueryRow(ctx, query,
		pq.Array(sections.skills),
		sections.personalInfo, sections.experience, sections.education,
		sections.companyInfo, sections.contactInfo, sections.adminInfo,
		profile.UpdatedAt, profile.UserID,
	))

	if err != nil {
		return nil, err
	}

	return updatedProfile, nil
}

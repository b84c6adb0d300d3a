package models

import (
	"time"
)

// Profile holds the role-specific data for a user. The Role field is the
// tag: exactly one of Candidate, Employer or Admin is non-nil, matching the
// owning user's role. Readers and writers must switch exhaustively on Role
// rather than treating the profile as an open-ended record.
type Profile struct {
	ID        string            `json:"id"`
	UserID    string            `json:"user_id"`
	Role      string            `json:"role"`
	Candidate *CandidateProfile `json:"candidate,omitempty"`
	Employer  *EmployerProfile  `json:"employer,omitempty"`
	Admin     *AdminProfile     `json:"admin,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

type CandidateProfile struct {
	PersonalInfo PersonalInfo      `json:"personal_info"`
	Skills       []string          `json:"skills"`
	Experience   []ExperienceEntry `json:"experience"`
	Education    []EducationEntry  `json:"education"`
}

type PersonalInfo struct {
	FullName string `json:"full_name,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Location string `json:"location,omitempty"`
	Bio      string `json:"bio,omitempty"`
}

type ExperienceEntry struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location,omitempty"`
	StartDate   string `json:"start_date,omitempty"`
	EndDate     string `json:"end_date,omitempty"`
	Description string `json:"description,omitempty"`
}

type EducationEntry struct {
	School      string `json:"school"`
	Degree      string `json:"degree,omitempty"`
	Field       string `json:"field,omitempty"`
	StartDate   string `json:"start_date,omitempty"`
	EndDate     string `json:"end_date,omitempty"`
	Description string `json:"description,omitempty"`
}

type EmployerProfile struct {
	CompanyInfo CompanyInfo   `json:"company_info"`
	ContactInfo ContactPerson `json:"contact_info"`
}

type CompanyInfo struct {
	Name        string `json:"name,omitempty"`
	Website     string `json:"website,omitempty"`
	Industry    string `json:"industry,omitempty"`
	Size        string `json:"size,omitempty"`
	Location    string `json:"location,omitempty"`
	Description string `json:"description,omitempty"`
}

type ContactPerson struct {
	Name     string `json:"name,omitempty"`
	Position string `json:"position,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
}

type AdminProfile struct {
	FullName string `json:"full_name,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
}

// NewProfile returns an empty profile shaped for the given role.
func NewProfile(userID, role string) *Profile {
	p := &Profile{UserID: userID, Role: role}
	switch role {
	case RoleCandidate:
		p.Candidate = &CandidateProfile{
			Skills:     []string{},
			Experience: []ExperienceEntry{},
			Education:  []EducationEntry{},
		}
	case RoleEmployer:
		p.Employer = &EmployerProfile{}
	case RoleAdmin:
		p.Admin = &AdminProfile{}
	}
	return p
}

package models

import (
	"time"
)

// Roles a user account can hold. Role is assigned at registration and
// never changes afterwards.
const (
	RoleCandidate = "candidate"
	RoleEmployer  = "employer"
	RoleAdmin     = "admin"
)

// ValidRole reports whether role is one of the three known roles.
func ValidRole(role string) bool {
	switch role {
	case RoleCandidate, RoleEmployer, RoleAdmin:
		return true
	}
	return false
}

type User struct {
	ID               string
	Email            string // lowercased and trimmed before storage
	PasswordHash     string
	Name             string
	Role             string
	ProfileCompleted bool
	FailedAttempts   int
	LockedUntil      *time.Time // temporary account lock expiration
	LastLoginAt      *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Locked reports whether the account is locked at the given instant.
// A lock is never cleared proactively; it simply expires by comparison.
func (u *User) Locked(now time.Time) bool {
	return u.LockedUntil != nil && now.Before(*u.LockedUntil)
}

package domain

import (
	"context"
	"time"
)

type Role string

const (
	RoleStudent Role = "STUDENT"
	RoleAlumni  Role = "ALUMNI"
	RoleAdmin   Role = "ADMIN"
)

type UserStatus string

const (
	StatusEnrolled  UserStatus = "ENROLLED"
	StatusGraduated UserStatus = "GRADUATED"
	StatusWithdrawn UserStatus = "WITHDRAWN"
)

type User struct {
	ID             string         `json:"id"`
	Email          string         `json:"email"`
	LinkedEmail    *string        `json:"linked_email"`
	Name           *string        `json:"name"`
	StudentID      *string        `json:"student_id"`
	EnrollmentYear *int           `json:"enrollment_year"`
	DurationYears  *int           `json:"duration_years"`
	Department     *Department    `json:"department"`
	Role           Role           `json:"role"`
	Status         UserStatus     `json:"status"`
	AlumniProfile  *AlumniProfile `json:"alumni_profile,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

// HasEnrollment reports whether the academic fields needed for graduation checks are set.
func (u *User) HasEnrollment() bool {
	return u.EnrollmentYear != nil && *u.EnrollmentYear > 0 &&
		u.DurationYears != nil && *u.DurationYears > 0
}

// ApplyRoleStatus copies a resolved role/status onto the user.
// Admins and withdrawn users are managed elsewhere and are left untouched.
// It reports whether the user changed.
func (u *User) ApplyRoleStatus(rs RoleStatus) bool {
	if u.Role != RoleStudent && u.Role != RoleAlumni {
		return false
	}
	if u.Status == StatusWithdrawn {
		return false
	}
	if u.Role == rs.Role && u.Status == rs.Status {
		return false
	}
	u.Role = rs.Role
	u.Status = rs.Status
	return true
}

// Identity is the pre-authenticated caller handed over by the auth boundary.
type Identity struct {
	Subject string
	Email   string
}

type InitialSettingsInput struct {
	Name           string     `json:"name" validate:"required,max=100"`
	StudentID      string     `json:"student_id" validate:"required,max=32"`
	EnrollmentYear int        `json:"enrollment_year" validate:"required"`
	Department     Department `json:"department" validate:"required,department"`
}

type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	GetByLinkedEmail(ctx context.Context, email string) (*User, error)
	UpdateAcademicProfile(ctx context.Context, user *User) error
	UpdateRoleStatus(ctx context.Context, id string, role Role, status UserStatus) error
	UpdateLinkedEmail(ctx context.Context, id string, email *string) error
	Delete(ctx context.Context, id string) (bool, error)
}

type AccountUsecase interface {
	EnsureUser(ctx context.Context, identity Identity) (*User, error)
	LinkEmail(ctx context.Context, userID, email string) (*User, error)
	UnlinkEmail(ctx context.Context, userID string) (*User, error)
	DeleteAccount(ctx context.Context, userID string) (bool, error)
}

package domain

import (
	"context"
	"time"
)

const (
	MaxSkills         = 3
	DefaultAlumniPage = 20
	MaxAlumniPage     = 100
)

// AlumniProfile is the public-facing extension of a User (one per user).
type AlumniProfile struct {
	ID               string     `json:"id"`
	UserID           string     `json:"user_id"`
	Nickname         *string    `json:"nickname"`
	GraduationYear   int        `json:"graduation_year"`
	Department       Department `json:"department"`
	CompanyNames     []string   `json:"company_names"`
	Remarks          *string    `json:"remarks"`
	ContactEmail     *string    `json:"contact_email"`
	AvatarURL        *string    `json:"avatar_url"`
	Skills           []string   `json:"skills"`
	PortfolioURL     *string    `json:"portfolio_url"`
	WorkedOn         *string    `json:"worked_on"`
	OfferStory       *string    `json:"offer_story"`
	InterviewTip     *string    `json:"interview_tip"`
	UsefulCoursework *string    `json:"useful_coursework"`
	IsPublic         bool       `json:"is_public"`
	AcceptContact    bool       `json:"accept_contact"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// PublicAlumniProfile is what other users see in the directory.
type PublicAlumniProfile struct {
	ID               string     `json:"id"`
	Nickname         *string    `json:"nickname"`
	GraduationYear   int        `json:"graduation_year"`
	Department       Department `json:"department"`
	CompanyNames     []string   `json:"company_names"`
	Remarks          *string    `json:"remarks"`
	AvatarURL        *string    `json:"avatar_url"`
	Skills           []string   `json:"skills"`
	PortfolioURL     *string    `json:"portfolio_url"`
	WorkedOn         *string    `json:"worked_on"`
	OfferStory       *string    `json:"offer_story"`
	InterviewTip     *string    `json:"interview_tip"`
	UsefulCoursework *string    `json:"useful_coursework"`
	AcceptContact    bool       `json:"accept_contact"`
	// Only present when the alumnus accepts contact
	ContactEmail *string   `json:"contact_email,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// ToPublic builds the directory view of the profile.
func (p *AlumniProfile) ToPublic() PublicAlumniProfile {
	pub := PublicAlumniProfile{
		ID:               p.ID,
		Nickname:         p.Nickname,
		GraduationYear:   p.GraduationYear,
		Department:       p.Department,
		CompanyNames:     p.CompanyNames,
		Remarks:          p.Remarks,
		AvatarURL:        p.AvatarURL,
		Skills:           p.Skills,
		PortfolioURL:     p.PortfolioURL,
		WorkedOn:         p.WorkedOn,
		OfferStory:       p.OfferStory,
		InterviewTip:     p.InterviewTip,
		UsefulCoursework: p.UsefulCoursework,
		AcceptContact:    p.AcceptContact,
		CreatedAt:        p.CreatedAt,
	}
	if p.AcceptContact {
		pub.ContactEmail = p.ContactEmail
	}
	return pub
}

// AlumniProfileInput is a public profile update as submitted by the owner.
// Nil fields are "not supplied".
type AlumniProfileInput struct {
	Nickname         *string     `json:"nickname" validate:"omitempty,max=50"`
	GraduationYear   *int        `json:"graduation_year"`
	Department       *Department `json:"department" validate:"omitempty,department"`
	CompanyNames     []string    `json:"company_names" validate:"max=20,dive,max=100"`
	Remarks          *string     `json:"remarks" validate:"omitempty,max=1000"`
	ContactEmail     *string     `json:"contact_email"`
	IsPublic         *bool       `json:"is_public"`
	AcceptContact    *bool       `json:"accept_contact"`
	Skills           []string    `json:"skills" validate:"dive,max=50"`
	PortfolioURL     *string     `json:"portfolio_url" validate:"omitempty,max=500"`
	WorkedOn         *string     `json:"worked_on" validate:"omitempty,max=2000"`
	OfferStory       *string     `json:"offer_story" validate:"omitempty,max=2000"`
	InterviewTip     *string     `json:"interview_tip" validate:"omitempty,max=2000"`
	UsefulCoursework *string     `json:"useful_coursework" validate:"omitempty,max=2000"`
}

// AlumniFilter selects public profiles for the directory.
type AlumniFilter struct {
	Department     *Department
	Company        string
	GraduationYear *int
	Limit          int
	Offset         int
}

// Normalize clamps paging to sane bounds.
func (f *AlumniFilter) Normalize() {
	switch {
	case f.Limit <= 0:
		f.Limit = DefaultAlumniPage
	case f.Limit > MaxAlumniPage:
		f.Limit = MaxAlumniPage
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
}

type AlumniConnection struct {
	Items       []PublicAlumniProfile `json:"items"`
	TotalCount  int64                 `json:"total_count"`
	HasNextPage bool                  `json:"has_next_page"`
}

type AlumniProfileRepository interface {
	GetByUserID(ctx context.Context, userID string) (*AlumniProfile, error)
	GetPublicByID(ctx context.Context, id string) (*AlumniProfile, error)
	ListPublic(ctx context.Context, filter AlumniFilter) ([]AlumniProfile, int64, error)
	// Upsert writes the profile row and replaces its company set in one transaction.
	Upsert(ctx context.Context, profile *AlumniProfile) error
	UpdateAvatarURL(ctx context.Context, userID, avatarURL string) (*AlumniProfile, error)
}

type AlumniCommandUsecase interface {
	UpdateInitialSettings(ctx context.Context, userID string, input InitialSettingsInput) (*User, error)
	UpdateAlumniProfile(ctx context.Context, userID string, input AlumniProfileInput) (*AlumniProfile, error)
	UpdateAvatar(ctx context.Context, userID, avatarURL string) (*AlumniProfile, error)
	ReconcileRoleStatus(ctx context.Context, userID string) (*User, error)
}

type AlumniQueryUsecase interface {
	GetMyProfile(ctx context.Context, userID string) (*User, error)
	ListPublicAlumni(ctx context.Context, filter AlumniFilter) (*AlumniConnection, error)
	GetPublicAlumni(ctx context.Context, id string) (*PublicAlumniProfile, error)
	FindUserByLinkedEmail(ctx context.Context, email string) (*User, error)
}

type ExportUsecase interface {
	ExportPublicAlumni(ctx context.Context, filter AlumniFilter) ([]byte, string, error)
}

package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"alumni-directory-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const profileColumns = `
	p.id, p.user_id, p.nickname, p.graduation_year, p.department,
	COALESCE((SELECT array_agg(c.name ORDER BY c.id) FROM alumni_companies c WHERE c.profile_id = p.id), '{}') AS company_names,
	p.remarks, p.contact_email, p.avatar_url, p.skills, p.portfolio_url,
	p.worked_on, p.offer_story, p.interview_tip, p.useful_coursework,
	p.is_public, p.accept_contact, p.created_at, p.updated_at`

type alumniProfileRepo struct {
	db *pgxpool.Pool
}

// NewAlumniProfileRepository creates a new alumni profile repository
func NewAlumniProfileRepository(db *pgxpool.Pool) domain.AlumniProfileRepository {
	return &alumniProfileRepo{db: db}
}

func scanProfile(row pgx.Row) (*domain.AlumniProfile, error) {
	var (
		profile    domain.AlumniProfile
		department string
	)
	err := row.Scan(
		&profile.ID, &profile.UserID, &profile.Nickname, &profile.GraduationYear, &department,
		&profile.CompanyNames,
		&profile.Remarks, &profile.ContactEmail, &profile.AvatarURL, &profile.Skills, &profile.PortfolioURL,
		&profile.WorkedOn, &profile.OfferStory, &profile.InterviewTip, &profile.UsefulCoursework,
		&profile.IsPublic, &profile.AcceptContact, &profile.CreatedAt, &profile.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	profile.Department = domain.Department(department)
	return &profile, nil
}

func notFoundOr(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotFound
	}
	return err
}

// GetByUserID retrieves the profile owned by a user, public or not.
func (r *alumniProfileRepo) GetByUserID(ctx context.Context, userID string) (*domain.AlumniProfile, error) {
	query := `SELECT ` + profileColumns + ` FROM alumni_profiles p WHERE p.user_id = $1`
	profile, err := scanProfile(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		return nil, notFoundOr(err)
	}
	return profile, nil
}

// GetPublicByID retrieves a profile for the directory detail page. Private profiles are not found.
func (r *alumniProfileRepo) GetPublicByID(ctx context.Context, id string) (*domain.AlumniProfile, error) {
	query := `SELECT ` + profileColumns + ` FROM alumni_profiles p WHERE p.id::text = $1 AND p.is_public`
	profile, err := scanProfile(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, notFoundOr(err)
	}
	return profile, nil
}

// escapeLike escapes LIKE wildcards so user input matches literally.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

// ListPublic returns one page of public profiles plus the total number of matches.
func (r *alumniProfileRepo) ListPublic(ctx context.Context, filter domain.AlumniFilter) ([]domain.AlumniProfile, int64, error) {
	conditions := []string{"p.is_public"}
	args := []interface{}{}
	argNum := 1

	if filter.Department != nil {
		conditions = append(conditions, fmt.Sprintf("p.department = $%d", argNum))
		args = append(args, string(*filter.Department))
		argNum++
	}
	if filter.GraduationYear != nil {
		conditions = append(conditions, fmt.Sprintf("p.graduation_year = $%d", argNum))
		args = append(args, *filter.GraduationYear)
		argNum++
	}
	if company := strings.TrimSpace(filter.Company); company != "" {
		conditions = append(conditions, fmt.Sprintf(
			"EXISTS (SELECT 1 FROM alumni_companies c WHERE c.profile_id = p.id AND c.name ILIKE $%d)", argNum))
		args = append(args, "%"+escapeLike(company)+"%")
		argNum++
	}

	where := strings.Join(conditions, " AND ")

	var total int64
	countQuery := `SELECT COUNT(*) FROM alumni_profiles p WHERE ` + where
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	listQuery := fmt.Sprintf(`SELECT %s FROM alumni_profiles p WHERE %s
		ORDER BY p.graduation_year DESC, p.created_at DESC
		LIMIT $%d OFFSET $%d`, profileColumns, where, argNum, argNum+1)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.db.Query(ctx, listQuery, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	profiles := make([]domain.AlumniProfile, 0, filter.Limit)
	for rows.Next() {
		profile, err := scanProfile(rows)
		if err != nil {
			return nil, 0, err
		}
		profiles = append(profiles, *profile)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return profiles, total, nil
}

// Upsert creates or replaces the user's profile and makes its company set
// match profile.CompanyNames exactly. Both happen in one transaction.
func (r *alumniProfileRepo) Upsert(ctx context.Context, profile *domain.AlumniProfile) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	now := time.Now()
	skills := profile.Skills
	if skills == nil {
		skills = []string{}
	}

	query := `
		INSERT INTO alumni_profiles (
			user_id, nickname, graduation_year, department, remarks, contact_email,
			skills, portfolio_url, worked_on, offer_story, interview_tip, useful_coursework,
			is_public, accept_contact, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $15)
		ON CONFLICT (user_id) DO UPDATE SET
			nickname = EXCLUDED.nickname,
			graduation_year = EXCLUDED.graduation_year,
			department = EXCLUDED.department,
			remarks = EXCLUDED.remarks,
			contact_email = EXCLUDED.contact_email,
			skills = EXCLUDED.skills,
			portfolio_url = EXCLUDED.portfolio_url,
			worked_on = EXCLUDED.worked_on,
			offer_story = EXCLUDED.offer_story,
			interview_tip = EXCLUDED.interview_tip,
			useful_coursework = EXCLUDED.useful_coursework,
			is_public = EXCLUDED.is_public,
			accept_contact = EXCLUDED.accept_contact,
			updated_at = EXCLUDED.updated_at
		RETURNING id, avatar_url, created_at, updated_at`

	err = tx.QueryRow(ctx, query,
		profile.UserID, profile.Nickname, profile.GraduationYear, string(profile.Department),
		profile.Remarks, profile.ContactEmail,
		skills, profile.PortfolioURL, profile.WorkedOn, profile.OfferStory, profile.InterviewTip, profile.UsefulCoursework,
		profile.IsPublic, profile.AcceptContact, now,
	).Scan(&profile.ID, &profile.AvatarURL, &profile.CreatedAt, &profile.UpdatedAt)
	if err != nil {
		return err
	}

	names := profile.CompanyNames
	if names == nil {
		names = []string{}
	}

	_, err = tx.Exec(ctx,
		`DELETE FROM alumni_companies WHERE profile_id = $1 AND NOT (name = ANY($2))`,
		profile.ID, names)
	if err != nil {
		return err
	}

	for _, name := range names {
		_, err = tx.Exec(ctx, `
			INSERT INTO alumni_companies (profile_id, name) VALUES ($1, $2)
			ON CONFLICT (profile_id, name) DO NOTHING`, profile.ID, name)
		if err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return err
	}
	profile.Skills = skills
	profile.CompanyNames = names
	return nil
}

// UpdateAvatarURL replaces the avatar of an existing profile and returns the updated row.
func (r *alumniProfileRepo) UpdateAvatarURL(ctx context.Context, userID, avatarURL string) (*domain.AlumniProfile, error) {
	tag, err := r.db.Exec(ctx,
		`UPDATE alumni_profiles SET avatar_url = $2, updated_at = NOW() WHERE user_id = $1`,
		userID, avatarURL)
	if err != nil {
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		return nil, domain.ErrNotFound
	}
	return r.GetByUserID(ctx, userID)
}

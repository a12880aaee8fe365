package postgres

import (
	"context"
	"errors"

	"alumni-directory-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const userColumns = `id, email, linked_email, name, student_id, enrollment_year,
	duration_years, department, role, status, created_at, updated_at`

type userRepo struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) domain.UserRepository {
	return &userRepo{db: db}
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var (
		user       domain.User
		department *string
	)
	err := row.Scan(
		&user.ID, &user.Email, &user.LinkedEmail, &user.Name, &user.StudentID,
		&user.EnrollmentYear, &user.DurationYears, &department,
		&user.Role, &user.Status, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if department != nil {
		d := domain.Department(*department)
		user.Department = &d
	}
	return &user, nil
}

func (r *userRepo) Create(ctx context.Context, user *domain.User) error {
	query := `INSERT INTO users (id, email, role, status, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.Exec(ctx, query,
		user.ID, user.Email, string(user.Role), string(user.Status), user.CreatedAt, user.UpdatedAt)
	if isDuplicateConstraint(err, constraintEmail) {
		return domain.ErrEmailTaken
	}
	return err
}

func (r *userRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return scanUser(r.db.QueryRow(ctx, query, id))
}

func (r *userRepo) GetByLinkedEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE linked_email = $1`
	return scanUser(r.db.QueryRow(ctx, query, email))
}

// UpdateAcademicProfile writes the initial-settings fields together with the derived role/status.
func (r *userRepo) UpdateAcademicProfile(ctx context.Context, user *domain.User) error {
	var department *string
	if user.Department != nil {
		d := string(*user.Department)
		department = &d
	}

	query := `
		UPDATE users SET
			name = $2, student_id = $3, enrollment_year = $4, duration_years = $5,
			department = $6, role = $7, status = $8, updated_at = $9
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query,
		user.ID, user.Name, user.StudentID, user.EnrollmentYear, user.DurationYears,
		department, string(user.Role), string(user.Status), user.UpdatedAt,
	)
	if err != nil {
		if isDuplicateConstraint(err, constraintStudentID) {
			return domain.ErrStudentIDTaken
		}
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *userRepo) UpdateRoleStatus(ctx context.Context, id string, role domain.Role, status domain.UserStatus) error {
	query := `UPDATE users SET role = $2, status = $3, updated_at = NOW() WHERE id = $1`
	tag, err := r.db.Exec(ctx, query, id, string(role), string(status))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateLinkedEmail sets or, with a nil email, clears the secondary sign-in address.
func (r *userRepo) UpdateLinkedEmail(ctx context.Context, id string, email *string) error {
	query := `UPDATE users SET linked_email = $2, updated_at = NOW() WHERE id = $1`
	tag, err := r.db.Exec(ctx, query, id, email)
	if err != nil {
		if isDuplicateConstraint(err, constraintLinkedEmail) {
			return domain.ErrLinkedEmailTaken
		}
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes the user; the profile and its companies go with it through ON DELETE CASCADE.
func (r *userRepo) Delete(ctx context.Context, id string) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

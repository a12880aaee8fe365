package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"alumni-directory-backend/internal/domain"
	"alumni-directory-backend/pkg/apperror"
)

type alumniQueryUsecase struct {
	userRepo    domain.UserRepository
	profileRepo domain.AlumniProfileRepository
	now         func() time.Time
}

// NewAlumniQueryUsecase creates the read side of the directory.
func NewAlumniQueryUsecase(
	userRepo domain.UserRepository,
	profileRepo domain.AlumniProfileRepository,
	now func() time.Time,
) domain.AlumniQueryUsecase {
	return &alumniQueryUsecase{
		userRepo:    userRepo,
		profileRepo: profileRepo,
		now:         now,
	}
}

// GetMyProfile returns the caller with their profile, or nil if the account is gone.
// A role/status that drifted past a graduation boundary is corrected in the
// returned value only; ReconcileRoleStatus is what persists it.
func (uc *alumniQueryUsecase) GetMyProfile(ctx context.Context, userID string) (*domain.User, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		return nil, apperror.Internal(err)
	}

	if user.HasEnrollment() {
		user.ApplyRoleStatus(domain.ResolveRoleAndStatus(*user.EnrollmentYear, *user.DurationYears, uc.now()))
	}

	profile, err := uc.profileRepo.GetByUserID(ctx, userID)
	switch {
	case err == nil:
		user.AlumniProfile = profile
	case !errors.Is(err, domain.ErrNotFound):
		return nil, apperror.Internal(err)
	}
	return user, nil
}

// ListPublicAlumni pages through public profiles, newest graduates first.
func (uc *alumniQueryUsecase) ListPublicAlumni(ctx context.Context, filter domain.AlumniFilter) (*domain.AlumniConnection, error) {
	filter.Normalize()
	filter.Company = strings.TrimSpace(filter.Company)
	if filter.Department != nil && !filter.Department.IsValid() {
		return nil, apperror.BadRequest("Department: unknown department")
	}

	profiles, total, err := uc.profileRepo.ListPublic(ctx, filter)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	items := make([]domain.PublicAlumniProfile, 0, len(profiles))
	for i := range profiles {
		items = append(items, profiles[i].ToPublic())
	}

	return &domain.AlumniConnection{
		Items:       items,
		TotalCount:  total,
		HasNextPage: int64(filter.Offset+len(items)) < total,
	}, nil
}

// GetPublicAlumni returns one public profile. Private and missing profiles look the same.
func (uc *alumniQueryUsecase) GetPublicAlumni(ctx context.Context, id string) (*domain.PublicAlumniProfile, error) {
	profile, err := uc.profileRepo.GetPublicByID(ctx, strings.TrimSpace(id))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Alumni profile not found")
		}
		return nil, apperror.Internal(err)
	}
	public := profile.ToPublic()
	return &public, nil
}

// FindUserByLinkedEmail looks a user up by their secondary sign-in address.
func (uc *alumniQueryUsecase) FindUserByLinkedEmail(ctx context.Context, email string) (*domain.User, error) {
	email = normalizeEmail(email)
	if email == "" {
		return nil, nil
	}
	user, err := uc.userRepo.GetByLinkedEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		return nil, apperror.Internal(err)
	}
	return user, nil
}

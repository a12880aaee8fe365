package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"alumni-directory-backend/internal/domain"
	"alumni-directory-backend/pkg/apperror"
	"alumni-directory-backend/pkg/logger"
	"alumni-directory-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

const (
	minEnrollmentYear       = 2000
	minGraduationYear       = 2000
	graduationYearLookahead = 10
)

type alumniCommandUsecase struct {
	userRepo    domain.UserRepository
	profileRepo domain.AlumniProfileRepository
	storage     domain.AvatarStorage
	validate    *validator.Validate
	now         func() time.Time
}

// NewAlumniCommandUsecase creates the usecase for profile mutations.
// now supplies the reference date for graduation checks.
func NewAlumniCommandUsecase(
	userRepo domain.UserRepository,
	profileRepo domain.AlumniProfileRepository,
	storage domain.AvatarStorage,
	validate *validator.Validate,
	now func() time.Time,
) domain.AlumniCommandUsecase {
	return &alumniCommandUsecase{
		userRepo:    userRepo,
		profileRepo: profileRepo,
		storage:     storage,
		validate:    validate,
		now:         now,
	}
}

func (uc *alumniCommandUsecase) getUser(ctx context.Context, userID string) (*domain.User, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, apperror.Internal(err)
	}
	return user, nil
}

// UpdateInitialSettings stores the academic data entered once after sign-up.
// Program duration always comes from the department, never from the caller.
func (uc *alumniCommandUsecase) UpdateInitialSettings(ctx context.Context, userID string, input domain.InitialSettingsInput) (*domain.User, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.StudentID = strings.TrimSpace(input.StudentID)
	if dept, ok := domain.ParseDepartment(string(input.Department)); ok {
		input.Department = dept
	}

	if err := uc.validate.Struct(input); err != nil {
		return nil, apperror.BadRequest(validation.Message(err))
	}

	now := uc.now()
	maxYear := now.Year() + 1
	if input.EnrollmentYear < minEnrollmentYear || input.EnrollmentYear > maxYear {
		return nil, apperror.BadRequest(fmt.Sprintf("Enrollment year must be between %d and %d", minEnrollmentYear, maxYear))
	}

	user, err := uc.getUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	duration := input.Department.DurationYears()
	dept := input.Department
	user.Name = &input.Name
	user.StudentID = &input.StudentID
	user.EnrollmentYear = &input.EnrollmentYear
	user.DurationYears = &duration
	user.Department = &dept
	user.ApplyRoleStatus(domain.ResolveRoleAndStatus(input.EnrollmentYear, duration, now))
	user.UpdatedAt = now

	if err := uc.userRepo.UpdateAcademicProfile(ctx, user); err != nil {
		switch {
		case errors.Is(err, domain.ErrStudentIDTaken):
			return nil, apperror.Conflict("Student ID is already registered")
		case errors.Is(err, domain.ErrNotFound):
			return nil, apperror.NotFound("User not found")
		}
		return nil, apperror.Internal(err)
	}
	return user, nil
}

// UpdateAlumniProfile creates or replaces the caller's directory profile.
func (uc *alumniCommandUsecase) UpdateAlumniProfile(ctx context.Context, userID string, input domain.AlumniProfileInput) (*domain.AlumniProfile, error) {
	if input.Department != nil {
		dept, ok := domain.ParseDepartment(string(*input.Department))
		if !ok {
			return nil, apperror.BadRequest("Department: unknown department")
		}
		input.Department = &dept
	}
	if err := uc.validate.Struct(input); err != nil {
		return nil, apperror.BadRequest(validation.Message(err))
	}

	user, err := uc.getUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	companies := normalizeList(input.CompanyNames, 0)
	skills := normalizeList(input.Skills, domain.MaxSkills)
	nickname := trimToNil(input.Nickname)

	contactEmail := trimToNil(input.ContactEmail)
	if contactEmail == nil {
		email := user.Email
		contactEmail = &email
	} else if err := uc.validate.Var(*contactEmail, "email"); err != nil {
		return nil, apperror.BadRequest("Contact email must be a valid email address")
	}

	portfolioURL := trimToNil(input.PortfolioURL)
	if portfolioURL != nil {
		if err := uc.validate.Var(*portfolioURL, "url"); err != nil {
			return nil, apperror.BadRequest("Portfolio URL must be a valid URL")
		}
	}

	visibility := domain.ResolveProfileVisibility(domain.ProfileVisibilityInput{
		IsPublic:      input.IsPublic,
		AcceptContact: input.AcceptContact,
	})
	if !visibility.IsPublic {
		visibility.AcceptContact = false
	}
	if visibility.IsPublic {
		if len(companies) == 0 {
			return nil, apperror.BadRequest("At least one company is required for a public profile")
		}
		if nickname == nil {
			return nil, apperror.BadRequest("Nickname is required for a public profile")
		}
	}

	department, graduationYear, err := uc.resolveAcademic(user, input)
	if err != nil {
		return nil, err
	}

	profile := &domain.AlumniProfile{
		UserID:           user.ID,
		Nickname:         nickname,
		GraduationYear:   graduationYear,
		Department:       department,
		CompanyNames:     companies,
		Remarks:          trimToNil(input.Remarks),
		ContactEmail:     contactEmail,
		Skills:           skills,
		PortfolioURL:     portfolioURL,
		WorkedOn:         trimToNil(input.WorkedOn),
		OfferStory:       trimToNil(input.OfferStory),
		InterviewTip:     trimToNil(input.InterviewTip),
		UsefulCoursework: trimToNil(input.UsefulCoursework),
		IsPublic:         visibility.IsPublic,
		AcceptContact:    visibility.AcceptContact,
	}

	if err := uc.profileRepo.Upsert(ctx, profile); err != nil {
		return nil, apperror.Internal(err)
	}
	return profile, nil
}

// resolveAcademic keeps the profile's department and graduation year in sync
// with the account. Caller values are only used for accounts without academic data.
func (uc *alumniCommandUsecase) resolveAcademic(user *domain.User, input domain.AlumniProfileInput) (domain.Department, int, error) {
	if user.HasEnrollment() && user.Department != nil {
		return *user.Department, domain.CalculateGraduationYear(*user.EnrollmentYear, *user.DurationYears), nil
	}

	if input.Department == nil {
		return "", 0, apperror.BadRequest("Department is required")
	}
	if input.GraduationYear == nil {
		return "", 0, apperror.BadRequest("Graduation year is required")
	}
	maxYear := uc.now().Year() + graduationYearLookahead
	if *input.GraduationYear < minGraduationYear || *input.GraduationYear > maxYear {
		return "", 0, apperror.BadRequest(fmt.Sprintf("Graduation year must be between %d and %d", minGraduationYear, maxYear))
	}
	return *input.Department, *input.GraduationYear, nil
}

// UpdateAvatar points the profile at a freshly uploaded image, then removes the old object.
func (uc *alumniCommandUsecase) UpdateAvatar(ctx context.Context, userID, avatarURL string) (*domain.AlumniProfile, error) {
	avatarURL = strings.TrimSpace(avatarURL)
	if avatarURL == "" {
		return nil, apperror.BadRequest("Avatar URL is required")
	}
	key, ok := uc.storage.KeyFromURL(avatarURL)
	if !ok || !domain.OwnsAvatarKey(userID, key) {
		return nil, apperror.BadRequest("Avatar URL must reference your own uploaded image")
	}

	current, err := uc.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Alumni profile not found")
		}
		return nil, apperror.Internal(err)
	}
	var previous string
	if current.AvatarURL != nil {
		previous = *current.AvatarURL
	}

	updated, err := uc.profileRepo.UpdateAvatarURL(ctx, userID, avatarURL)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Alumni profile not found")
		}
		return nil, apperror.Internal(err)
	}

	if previous != "" && previous != avatarURL {
		removeAvatarObject(ctx, uc.storage, userID, previous)
	}
	return updated, nil
}

// removeAvatarObject deletes a stored avatar. Failures are logged and dropped.
func removeAvatarObject(ctx context.Context, storage domain.AvatarStorage, userID, fileURL string) {
	key, ok := storage.KeyFromURL(fileURL)
	if !ok {
		return
	}
	if err := storage.DeleteObject(ctx, key); err != nil {
		logger.L().Warn("failed to delete avatar object",
			zap.String("user_id", userID),
			zap.String("key", key),
			zap.Error(err),
		)
	}
}

// ReconcileRoleStatus persists a role/status that has drifted since the last write.
func (uc *alumniCommandUsecase) ReconcileRoleStatus(ctx context.Context, userID string) (*domain.User, error) {
	user, err := uc.getUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !user.HasEnrollment() {
		return user, nil
	}

	rs := domain.ResolveRoleAndStatus(*user.EnrollmentYear, *user.DurationYears, uc.now())
	if !user.ApplyRoleStatus(rs) {
		return user, nil
	}
	if err := uc.userRepo.UpdateRoleStatus(ctx, user.ID, user.Role, user.Status); err != nil {
		return nil, apperror.Internal(err)
	}
	logger.L().Info("role status reconciled",
		zap.String("user_id", user.ID),
		zap.String("role", string(user.Role)),
		zap.String("status", string(user.Status)),
	)
	return user, nil
}

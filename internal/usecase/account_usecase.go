package usecase

import (
	"context"
	"errors"
	"time"

	"alumni-directory-backend/internal/domain"
	"alumni-directory-backend/pkg/apperror"
	"alumni-directory-backend/pkg/logger"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

type accountUsecase struct {
	userRepo          domain.UserRepository
	profileRepo       domain.AlumniProfileRepository
	storage           domain.AvatarStorage
	command           domain.AlumniCommandUsecase
	query             domain.AlumniQueryUsecase
	validate          *validator.Validate
	linkedEmailDomain string
	now               func() time.Time
}

// NewAccountUsecase creates the usecase for sign-in provisioning and account settings.
func NewAccountUsecase(
	userRepo domain.UserRepository,
	profileRepo domain.AlumniProfileRepository,
	storage domain.AvatarStorage,
	command domain.AlumniCommandUsecase,
	query domain.AlumniQueryUsecase,
	validate *validator.Validate,
	linkedEmailDomain string,
	now func() time.Time,
) domain.AccountUsecase {
	return &accountUsecase{
		userRepo:          userRepo,
		profileRepo:       profileRepo,
		storage:           storage,
		command:           command,
		query:             query,
		validate:          validate,
		linkedEmailDomain: linkedEmailDomain,
		now:               now,
	}
}

// EnsureUser resolves an authenticated identity to a local user, creating one on first sign-in.
// Graduates whose school mailbox has expired sign in with their linked address instead.
func (uc *accountUsecase) EnsureUser(ctx context.Context, identity domain.Identity) (*domain.User, error) {
	if identity.Subject == "" {
		return nil, apperror.Unauthorized("Missing subject")
	}

	user, err := uc.userRepo.GetByID(ctx, identity.Subject)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.Internal(err)
	}

	if user == nil && identity.Email != "" {
		user, err = uc.query.FindUserByLinkedEmail(ctx, identity.Email)
		if err != nil {
			return nil, err
		}
	}

	if user == nil {
		email := normalizeEmail(identity.Email)
		if email == "" {
			return nil, apperror.Unauthorized("An email claim is required to create an account")
		}
		now := uc.now()
		user = &domain.User{
			ID:        identity.Subject,
			Email:     email,
			Role:      domain.RoleStudent,
			Status:    domain.StatusEnrolled,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := uc.userRepo.Create(ctx, user); err != nil {
			if errors.Is(err, domain.ErrEmailTaken) {
				return nil, apperror.Conflict("An account with this email already exists")
			}
			return nil, apperror.Internal(err)
		}
		logger.L().Info("user provisioned", zap.String("user_id", user.ID))
		return user, nil
	}

	return uc.command.ReconcileRoleStatus(ctx, user.ID)
}

// LinkEmail sets the secondary sign-in address kept after graduation.
func (uc *accountUsecase) LinkEmail(ctx context.Context, userID, email string) (*domain.User, error) {
	email = normalizeEmail(email)
	if err := uc.validate.Var(email, "required,email,email_domain="+uc.linkedEmailDomain); err != nil {
		return nil, apperror.BadRequest("Linked email must be a valid @" + uc.linkedEmailDomain + " address")
	}

	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, apperror.Internal(err)
	}

	if err := uc.userRepo.UpdateLinkedEmail(ctx, userID, &email); err != nil {
		if errors.Is(err, domain.ErrLinkedEmailTaken) {
			return nil, apperror.Conflict("This email is already linked to another account")
		}
		return nil, apperror.Internal(err)
	}
	user.LinkedEmail = &email
	return user, nil
}

func (uc *accountUsecase) UnlinkEmail(ctx context.Context, userID string) (*domain.User, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, apperror.Internal(err)
	}
	if err := uc.userRepo.UpdateLinkedEmail(ctx, userID, nil); err != nil {
		return nil, apperror.Internal(err)
	}
	user.LinkedEmail = nil
	return user, nil
}

// DeleteAccount removes the user with their profile and companies.
// The avatar object is cleaned up afterwards on a best-effort basis.
func (uc *accountUsecase) DeleteAccount(ctx context.Context, userID string) (bool, error) {
	var avatarURL string
	profile, err := uc.profileRepo.GetByUserID(ctx, userID)
	switch {
	case err == nil:
		if profile.AvatarURL != nil {
			avatarURL = *profile.AvatarURL
		}
	case !errors.Is(err, domain.ErrNotFound):
		return false, apperror.Internal(err)
	}

	deleted, err := uc.userRepo.Delete(ctx, userID)
	if err != nil {
		return false, apperror.Internal(err)
	}
	if !deleted {
		return false, nil
	}

	if avatarURL != "" {
		removeAvatarObject(ctx, uc.storage, userID, avatarURL)
	}
	logger.L().Info("account deleted", zap.String("user_id", userID))
	return true, nil
}

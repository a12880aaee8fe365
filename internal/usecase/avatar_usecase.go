package usecase

import (
	"context"
	"path"
	"slices"
	"strings"

	"alumni-directory-backend/internal/domain"
	"alumni-directory-backend/pkg/apperror"
)

// allowedAvatarTypes maps accepted content types to their file extensions.
var allowedAvatarTypes = map[string][]string{
	"image/jpeg": {".jpg", ".jpeg"},
	"image/png":  {".png"},
	"image/gif":  {".gif"},
	"image/webp": {".webp"},
}

type avatarUsecase struct {
	storage domain.AvatarStorage
}

func NewAvatarUsecase(storage domain.AvatarStorage) domain.AvatarUsecase {
	return &avatarUsecase{storage: storage}
}

// CreateUploadURL issues a short-lived signed PUT for the caller's next avatar.
// The upload is attached with UpdateAvatar once the client has stored the file.
func (uc *avatarUsecase) CreateUploadURL(ctx context.Context, userID, fileName, contentType string) (*domain.UploadURL, error) {
	fileName = strings.TrimSpace(fileName)
	if fileName == "" {
		return nil, apperror.BadRequest("File name is required")
	}

	contentType = strings.ToLower(strings.TrimSpace(contentType))
	if !strings.HasPrefix(contentType, "image/") {
		return nil, apperror.BadRequest("Only image uploads are allowed")
	}
	extensions, ok := allowedAvatarTypes[contentType]
	if !ok {
		return nil, apperror.BadRequest("Unsupported image type. Allowed: JPEG, PNG, GIF, WebP")
	}

	if ext := strings.ToLower(path.Ext(fileName)); ext != "" && !slices.Contains(extensions, ext) {
		return nil, apperror.BadRequest("File extension does not match content type")
	}

	upload, err := uc.storage.CreateUploadURL(ctx, userID, fileName, contentType)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return upload, nil
}

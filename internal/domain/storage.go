package domain

import (
	"context"
	"path"
	"strings"
)

// UploadURL is a short-lived signed PUT target for a single object.
type UploadURL struct {
	UploadURL string `json:"upload_url"`
	FileURL   string `json:"file_url"`
	ObjectKey string `json:"object_key"`
}

// AvatarStorage is the object storage used for profile images.
type AvatarStorage interface {
	CreateUploadURL(ctx context.Context, ownerID, fileName, contentType string) (*UploadURL, error)
	DeleteObject(ctx context.Context, key string) error
	// KeyFromURL maps a public file URL back to its object key.
	// It returns false for URLs that do not belong to this storage.
	KeyFromURL(fileURL string) (string, bool)
}

type AvatarUsecase interface {
	CreateUploadURL(ctx context.Context, userID, fileName, contentType string) (*UploadURL, error)
}

// AvatarKeyPrefix is the object key prefix holding one owner's avatars.
func AvatarKeyPrefix(ownerID string) string {
	return "avatars/" + ownerID + "/"
}

// OwnsAvatarKey reports whether key names an object directly under the owner's
// avatar prefix. Keys with dot segments or empty segments never match.
func OwnsAvatarKey(ownerID, key string) bool {
	prefix := AvatarKeyPrefix(ownerID)
	if !strings.HasPrefix(key, prefix) || path.Clean(key) != key {
		return false
	}
	name := strings.TrimPrefix(key, prefix)
	return name != "" && name != "." && name != ".." && !strings.Contains(name, "/")
}

package usecase_test

import (
	"context"

	"alumni-directory-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

// Mock Repositories
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByLinkedEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) UpdateAcademicProfile(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}
func (m *MockUserRepo) UpdateRoleStatus(ctx context.Context, id string, role domain.Role, status domain.UserStatus) error {
	return m.Called(ctx, id, role, status).Error(0)
}
func (m *MockUserRepo) UpdateLinkedEmail(ctx context.Context, id string, email *string) error {
	return m.Called(ctx, id, email).Error(0)
}
func (m *MockUserRepo) Delete(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type MockProfileRepo struct {
	mock.Mock
}

func (m *MockProfileRepo) GetByUserID(ctx context.Context, userID string) (*domain.AlumniProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AlumniProfile), args.Error(1)
}
func (m *MockProfileRepo) GetPublicByID(ctx context.Context, id string) (*domain.AlumniProfile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AlumniProfile), args.Error(1)
}
func (m *MockProfileRepo) ListPublic(ctx context.Context, filter domain.AlumniFilter) ([]domain.AlumniProfile, int64, error) {
	args := m.Called(ctx, filter)
	profiles, _ := args.Get(0).([]domain.AlumniProfile)
	return profiles, args.Get(1).(int64), args.Error(2)
}
func (m *MockProfileRepo) Upsert(ctx context.Context, profile *domain.AlumniProfile) error {
	return m.Called(ctx, profile).Error(0)
}
func (m *MockProfileRepo) UpdateAvatarURL(ctx context.Context, userID, avatarURL string) (*domain.AlumniProfile, error) {
	args := m.Called(ctx, userID, avatarURL)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AlumniProfile), args.Error(1)
}

// MockStorage treats URLs under https://cdn.test/ as its own objects.
type MockStorage struct {
	mock.Mock
}

const storageBase = "https://cdn.test/"

func (m *MockStorage) CreateUploadURL(ctx context.Context, ownerID, fileName, contentType string) (*domain.UploadURL, error) {
	args := m.Called(ctx, ownerID, fileName, contentType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UploadURL), args.Error(1)
}
func (m *MockStorage) DeleteObject(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}
func (m *MockStorage) KeyFromURL(fileURL string) (string, bool) {
	if len(fileURL) <= len(storageBase) || fileURL[:len(storageBase)] != storageBase {
		return "", false
	}
	return fileURL[len(storageBase):], true
}

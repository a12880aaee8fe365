package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"alumni-directory-backend/internal/domain"
	"alumni-directory-backend/internal/usecase"
	"alumni-directory-backend/pkg/apperror"
	"alumni-directory-backend/pkg/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func fixedClock(year int) func() time.Time {
	return func() time.Time { return time.Date(year, time.June, 1, 0, 0, 0, 0, time.UTC) }
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }
func boolPtr(b bool) *bool    { return &b }

func deptPtr(d domain.Department) *domain.Department { return &d }

func enrolledUser(id string, enrollment int, dept domain.Department) *domain.User {
	duration := dept.DurationYears()
	return &domain.User{
		ID:             id,
		Email:          id + "@school.example",
		EnrollmentYear: &enrollment,
		DurationYears:  &duration,
		Department:     &dept,
		Role:           domain.RoleStudent,
		Status:         domain.StatusEnrolled,
	}
}

func newCommand(users *MockUserRepo, profiles *MockProfileRepo, storage *MockStorage, year int) domain.AlumniCommandUsecase {
	return usecase.NewAlumniCommandUsecase(users, profiles, storage, validation.New(), fixedClock(year))
}

func TestUpdateInitialSettings(t *testing.T) {
	ctx := context.Background()

	t.Run("Should reject enrollment year below 2000 before touching storage", func(t *testing.T) {
		users := new(MockUserRepo)
		uc := newCommand(users, new(MockProfileRepo), new(MockStorage), 2024)

		_, err := uc.UpdateInitialSettings(ctx, "user1", domain.InitialSettingsInput{
			Name: "Taro", StudentID: "S1", EnrollmentYear: 1999, Department: domain.DepartmentProgramming,
		})
		assert.True(t, apperror.IsKind(err, apperror.KindInvalid))
		users.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})

	t.Run("Should reject enrollment year after next year", func(t *testing.T) {
		uc := newCommand(new(MockUserRepo), new(MockProfileRepo), new(MockStorage), 2024)
		_, err := uc.UpdateInitialSettings(ctx, "user1", domain.InitialSettingsInput{
			Name: "Taro", StudentID: "S1", EnrollmentYear: 2026, Department: domain.DepartmentProgramming,
		})
		assert.True(t, apperror.IsKind(err, apperror.KindInvalid))
	})

	t.Run("Should reject blank name after trimming", func(t *testing.T) {
		uc := newCommand(new(MockUserRepo), new(MockProfileRepo), new(MockStorage), 2024)
		_, err := uc.UpdateInitialSettings(ctx, "user1", domain.InitialSettingsInput{
			Name: "   ", StudentID: "S1", EnrollmentYear: 2022, Department: domain.DepartmentProgramming,
		})
		assert.True(t, apperror.IsKind(err, apperror.KindInvalid))
	})

	t.Run("Should reject unknown department", func(t *testing.T) {
		uc := newCommand(new(MockUserRepo), new(MockProfileRepo), new(MockStorage), 2024)
		_, err := uc.UpdateInitialSettings(ctx, "user1", domain.InitialSettingsInput{
			Name: "Taro", StudentID: "S1", EnrollmentYear: 2022, Department: "BASKET_WEAVING",
		})
		assert.True(t, apperror.IsKind(err, apperror.KindInvalid))
	})

	t.Run("Should derive duration from department and graduate the user", func(t *testing.T) {
		users := new(MockUserRepo)
		users.On("GetByID", ctx, "user1").Return(&domain.User{
			ID: "user1", Role: domain.RoleStudent, Status: domain.StatusEnrolled,
		}, nil)
		users.On("UpdateAcademicProfile", ctx, mock.AnythingOfType("*domain.User")).Return(nil)
		uc := newCommand(users, new(MockProfileRepo), new(MockStorage), 2024)

		user, err := uc.UpdateInitialSettings(ctx, "user1", domain.InitialSettingsInput{
			Name: "  Taro ", StudentID: " S1 ", EnrollmentYear: 2022, Department: "programming",
		})
		require.NoError(t, err)
		assert.Equal(t, "Taro", *user.Name)
		assert.Equal(t, "S1", *user.StudentID)
		assert.Equal(t, 2, *user.DurationYears)
		assert.Equal(t, domain.DepartmentProgramming, *user.Department)
		assert.Equal(t, domain.RoleAlumni, user.Role)
		assert.Equal(t, domain.StatusGraduated, user.Status)
		users.AssertExpectations(t)
	})

	t.Run("Should keep a four year student enrolled", func(t *testing.T) {
		users := new(MockUserRepo)
		users.On("GetByID", ctx, "user1").Return(&domain.User{
			ID: "user1", Role: domain.RoleStudent, Status: domain.StatusEnrolled,
		}, nil)
		users.On("UpdateAcademicProfile", ctx, mock.Anything).Return(nil)
		uc := newCommand(users, new(MockProfileRepo), new(MockStorage), 2024)

		user, err := uc.UpdateInitialSettings(ctx, "user1", domain.InitialSettingsInput{
			Name: "Taro", StudentID: "S1", EnrollmentYear: 2022, Department: domain.DepartmentITExpert,
		})
		require.NoError(t, err)
		assert.Equal(t, 4, *user.DurationYears)
		assert.Equal(t, domain.RoleStudent, user.Role)
	})

	t.Run("Should never change an admin's role", func(t *testing.T) {
		users := new(MockUserRepo)
		users.On("GetByID", ctx, "admin").Return(&domain.User{
			ID: "admin", Role: domain.RoleAdmin, Status: domain.StatusEnrolled,
		}, nil)
		users.On("UpdateAcademicProfile", ctx, mock.Anything).Return(nil)
		uc := newCommand(users, new(MockProfileRepo), new(MockStorage), 2024)

		user, err := uc.UpdateInitialSettings(ctx, "admin", domain.InitialSettingsInput{
			Name: "Admin", StudentID: "A1", EnrollmentYear: 2020, Department: domain.DepartmentOthers,
		})
		require.NoError(t, err)
		assert.Equal(t, domain.RoleAdmin, user.Role)
	})

	t.Run("Should surface duplicate student id as conflict", func(t *testing.T) {
		users := new(MockUserRepo)
		users.On("GetByID", ctx, "user1").Return(&domain.User{ID: "user1", Role: domain.RoleStudent}, nil)
		users.On("UpdateAcademicProfile", ctx, mock.Anything).Return(domain.ErrStudentIDTaken)
		uc := newCommand(users, new(MockProfileRepo), new(MockStorage), 2024)

		_, err := uc.UpdateInitialSettings(ctx, "user1", domain.InitialSettingsInput{
			Name: "Taro", StudentID: "S1", EnrollmentYear: 2022, Department: domain.DepartmentProgramming,
		})
		assert.True(t, apperror.IsKind(err, apperror.KindConflict))
	})

	t.Run("Should report missing user as not found", func(t *testing.T) {
		users := new(MockUserRepo)
		users.On("GetByID", ctx, "ghost").Return(nil, domain.ErrNotFound)
		uc := newCommand(users, new(MockProfileRepo), new(MockStorage), 2024)

		_, err := uc.UpdateInitialSettings(ctx, "ghost", domain.InitialSettingsInput{
			Name: "Taro", StudentID: "S1", EnrollmentYear: 2022, Department: domain.DepartmentProgramming,
		})
		assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
	})
}

func TestUpdateAlumniProfile(t *testing.T) {
	ctx := context.Background()
	user := enrolledUser("user1", 2022, domain.DepartmentProgramming)

	t.Run("Should trim and dedupe companies and skills", func(t *testing.T) {
		users := new(MockUserRepo)
		users.On("GetByID", ctx, "user1").Return(user, nil)
		profiles := new(MockProfileRepo)
		var saved *domain.AlumniProfile
		profiles.On("Upsert", ctx, mock.AnythingOfType("*domain.AlumniProfile")).
			Run(func(args mock.Arguments) { saved = args.Get(1).(*domain.AlumniProfile) }).
			Return(nil)
		uc := newCommand(users, profiles, new(MockStorage), 2024)

		_, err := uc.UpdateAlumniProfile(ctx, "user1", domain.AlumniProfileInput{
			Nickname:     strPtr(" taro "),
			CompanyNames: []string{"A", "A", " B ", ""},
			Skills:       []string{"Go", " Go", "SQL", "", "Docker", "K8s"},
			WorkedOn:     strPtr("   "),
		})
		require.NoError(t, err)
		require.NotNil(t, saved)
		assert.Equal(t, []string{"A", "B"}, saved.CompanyNames)
		assert.Equal(t, []string{"Go", "SQL", "Docker"}, saved.Skills)
		assert.Equal(t, "taro", *saved.Nickname)
		assert.Nil(t, saved.WorkedOn)
		assert.Equal(t, "user1", saved.UserID)
	})

	t.Run("Should keep case-distinct company names", func(t *testing.T) {
		users := new(MockUserRepo)
		users.On("GetByID", ctx, "user1").Return(user, nil)
		profiles := new(MockProfileRepo)
		profiles.On("Upsert", ctx, mock.Anything).Return(nil)
		uc := newCommand(users, profiles, new(MockStorage), 2024)

		profile, err := uc.UpdateAlumniProfile(ctx, "user1", domain.AlumniProfileInput{
			Nickname: strPtr("n"), CompanyNames: []string{"acme", "Acme"},
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"acme", "Acme"}, profile.CompanyNames)
	})

	t.Run("Should default visibility and contact email", func(t *testing.T) {
		users := new(MockUserRepo)
		users.On("GetByID", ctx, "user1").Return(user, nil)
		profiles := new(MockProfileRepo)
		profiles.On("Upsert", ctx, mock.Anything).Return(nil)
		uc := newCommand(users, profiles, new(MockStorage), 2024)

		profile, err := uc.UpdateAlumniProfile(ctx, "user1", domain.AlumniProfileInput{
			Nickname: strPtr("n"), CompanyNames: []string{"A"}, ContactEmail: strPtr("  "),
		})
		require.NoError(t, err)
		assert.True(t, profile.IsPublic)
		assert.True(t, profile.AcceptContact)
		assert.Equal(t, user.Email, *profile.ContactEmail)
	})

	t.Run("Should force accept contact off for private profiles", func(t *testing.T) {
		users := new(MockUserRepo)
		users.On("GetByID", ctx, "user1").Return(user, nil)
		profiles := new(MockProfileRepo)
		profiles.On("Upsert", ctx, mock.Anything).Return(nil)
		uc := newCommand(users, profiles, new(MockStorage), 2024)

		profile, err := uc.UpdateAlumniProfile(ctx, "user1", domain.AlumniProfileInput{
			IsPublic: boolPtr(false), AcceptContact: boolPtr(true),
		})
		require.NoError(t, err)
		assert.False(t, profile.IsPublic)
		assert.False(t, profile.AcceptContact)
		assert.Empty(t, profile.CompanyNames)
	})

	t.Run("Should reject public profile without companies and write nothing", func(t *testing.T) {
		users := new(MockUserRepo)
		users.On("GetByID", ctx, "user1").Return(user, nil)
		profiles := new(MockProfileRepo)
		uc := newCommand(users, profiles, new(MockStorage), 2024)

		_, err := uc.UpdateAlumniProfile(ctx, "user1", domain.AlumniProfileInput{
			Nickname: strPtr("n"), IsPublic: boolPtr(true), CompanyNames: []string{" "},
		})
		assert.True(t, apperror.IsKind(err, apperror.KindInvalid))
		profiles.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
	})

	t.Run("Should reject public profile without nickname", func(t *testing.T) {
		users := new(MockUserRepo)
		users.On("GetByID", ctx, "user1").Return(user, nil)
		profiles := new(MockProfileRepo)
		uc := newCommand(users, profiles, new(MockStorage), 2024)

		_, err := uc.UpdateAlumniProfile(ctx, "user1", domain.AlumniProfileInput{
			Nickname: strPtr("  "), CompanyNames: []string{"A"},
		})
		assert.True(t, apperror.IsKind(err, apperror.KindInvalid))
		profiles.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
	})

	t.Run("Should take department and graduation year from the account", func(t *testing.T) {
		users := new(MockUserRepo)
		users.On("GetByID", ctx, "user1").Return(user, nil)
		profiles := new(MockProfileRepo)
		profiles.On("Upsert", ctx, mock.Anything).Return(nil)
		uc := newCommand(users, profiles, new(MockStorage), 2024)

		profile, err := uc.UpdateAlumniProfile(ctx, "user1", domain.AlumniProfileInput{
			Nickname: strPtr("n"), CompanyNames: []string{"A"},
			Department: deptPtr(domain.DepartmentEsports), GraduationYear: intPtr(2030),
		})
		require.NoError(t, err)
		assert.Equal(t, domain.DepartmentProgramming, profile.Department)
		assert.Equal(t, 2024, profile.GraduationYear)
	})

	t.Run("Should require academic fields when the account has none", func(t *testing.T) {
		users := new(MockUserRepo)
		users.On("GetByID", ctx, "bare").Return(&domain.User{ID: "bare", Email: "b@x", Role: domain.RoleStudent}, nil)
		profiles := new(MockProfileRepo)
		profiles.On("Upsert", ctx, mock.Anything).Return(nil)
		uc := newCommand(users, profiles, new(MockStorage), 2024)

		_, err := uc.UpdateAlumniProfile(ctx, "bare", domain.AlumniProfileInput{
			Nickname: strPtr("n"), CompanyNames: []string{"A"},
		})
		assert.True(t, apperror.IsKind(err, apperror.KindInvalid))

		_, err = uc.UpdateAlumniProfile(ctx, "bare", domain.AlumniProfileInput{
			Nickname: strPtr("n"), CompanyNames: []string{"A"},
			Department: deptPtr(domain.DepartmentOthers), GraduationYear: intPtr(1990),
		})
		assert.True(t, apperror.IsKind(err, apperror.KindInvalid))

		profile, err := uc.UpdateAlumniProfile(ctx, "bare", domain.AlumniProfileInput{
			Nickname: strPtr("n"), CompanyNames: []string{"A"},
			Department: deptPtr("others"), GraduationYear: intPtr(2023),
		})
		require.NoError(t, err)
		assert.Equal(t, domain.DepartmentOthers, profile.Department)
		assert.Equal(t, 2023, profile.GraduationYear)
	})

	t.Run("Should reject a malformed contact email", func(t *testing.T) {
		users := new(MockUserRepo)
		users.On("GetByID", ctx, "user1").Return(user, nil)
		uc := newCommand(users, new(MockProfileRepo), new(MockStorage), 2024)

		_, err := uc.UpdateAlumniProfile(ctx, "user1", domain.AlumniProfileInput{
			Nickname: strPtr("n"), CompanyNames: []string{"A"}, ContactEmail: strPtr("not-an-email"),
		})
		assert.True(t, apperror.IsKind(err, apperror.KindInvalid))
	})

	t.Run("Should fail with not found for unknown user", func(t *testing.T) {
		users := new(MockUserRepo)
		users.On("GetByID", ctx, "ghost").Return(nil, domain.ErrNotFound)
		uc := newCommand(users, new(MockProfileRepo), new(MockStorage), 2024)

		_, err := uc.UpdateAlumniProfile(ctx, "ghost", domain.AlumniProfileInput{IsPublic: boolPtr(false)})
		assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
	})

	t.Run("Should send the full replacement set on every update", func(t *testing.T) {
		users := new(MockUserRepo)
		users.On("GetByID", ctx, "user1").Return(user, nil)
		profiles := new(MockProfileRepo)
		var sets [][]string
		profiles.On("Upsert", ctx, mock.Anything).
			Run(func(args mock.Arguments) {
				sets = append(sets, args.Get(1).(*domain.AlumniProfile).CompanyNames)
			}).
			Return(nil)
		uc := newCommand(users, profiles, new(MockStorage), 2024)

		_, err := uc.UpdateAlumniProfile(ctx, "user1", domain.AlumniProfileInput{Nickname: strPtr("n"), CompanyNames: []string{"A", "B"}})
		require.NoError(t, err)
		_, err = uc.UpdateAlumniProfile(ctx, "user1", domain.AlumniProfileInput{Nickname: strPtr("n"), CompanyNames: []string{"X"}})
		require.NoError(t, err)
		assert.Equal(t, [][]string{{"A", "B"}, {"X"}}, sets)
	})
}

func TestUpdateAvatar(t *testing.T) {
	ctx := context.Background()
	newURL := storageBase + "avatars/user1/new.png"
	oldURL := storageBase + "avatars/user1/old.png"

	t.Run("Should reject empty url", func(t *testing.T) {
		uc := newCommand(new(MockUserRepo), new(MockProfileRepo), new(MockStorage), 2024)
		_, err := uc.UpdateAvatar(ctx, "user1", "  ")
		assert.True(t, apperror.IsKind(err, apperror.KindInvalid))
	})

	t.Run("Should reject urls outside the caller's prefix", func(t *testing.T) {
		uc := newCommand(new(MockUserRepo), new(MockProfileRepo), new(MockStorage), 2024)
		_, err := uc.UpdateAvatar(ctx, "user1", storageBase+"avatars/user2/x.png")
		assert.True(t, apperror.IsKind(err, apperror.KindInvalid))
		_, err = uc.UpdateAvatar(ctx, "user1", "https://evil.test/avatars/user1/x.png")
		assert.True(t, apperror.IsKind(err, apperror.KindInvalid))
	})

	t.Run("Should reject dot segments escaping the caller's prefix", func(t *testing.T) {
		profiles := new(MockProfileRepo)
		storage := new(MockStorage)
		uc := newCommand(new(MockUserRepo), profiles, storage, 2024)

		for _, u := range []string{
			storageBase + "avatars/user1/../user2/photo.png",
			storageBase + "avatars/user1/./photo.png",
			storageBase + "avatars/user1/nested/photo.png",
		} {
			_, err := uc.UpdateAvatar(ctx, "user1", u)
			assert.True(t, apperror.IsKind(err, apperror.KindInvalid), u)
		}
		profiles.AssertNotCalled(t, "UpdateAvatarURL", mock.Anything, mock.Anything, mock.Anything)
		storage.AssertNotCalled(t, "DeleteObject", mock.Anything, mock.Anything)
	})

	t.Run("Should require an existing profile", func(t *testing.T) {
		profiles := new(MockProfileRepo)
		profiles.On("GetByUserID", ctx, "user1").Return(nil, domain.ErrNotFound)
		uc := newCommand(new(MockUserRepo), profiles, new(MockStorage), 2024)

		_, err := uc.UpdateAvatar(ctx, "user1", newURL)
		assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
	})

	t.Run("Should delete the previous object after writing", func(t *testing.T) {
		profiles := new(MockProfileRepo)
		profiles.On("GetByUserID", ctx, "user1").Return(&domain.AlumniProfile{UserID: "user1", AvatarURL: strPtr(oldURL)}, nil)
		profiles.On("UpdateAvatarURL", ctx, "user1", newURL).Return(&domain.AlumniProfile{UserID: "user1", AvatarURL: strPtr(newURL)}, nil)
		storage := new(MockStorage)
		storage.On("DeleteObject", ctx, "avatars/user1/old.png").Return(nil)
		uc := newCommand(new(MockUserRepo), profiles, storage, 2024)

		profile, err := uc.UpdateAvatar(ctx, "user1", " "+newURL+" ")
		require.NoError(t, err)
		assert.Equal(t, newURL, *profile.AvatarURL)
		storage.AssertExpectations(t)
	})

	t.Run("Should swallow delete failures", func(t *testing.T) {
		profiles := new(MockProfileRepo)
		profiles.On("GetByUserID", ctx, "user1").Return(&domain.AlumniProfile{UserID: "user1", AvatarURL: strPtr(oldURL)}, nil)
		profiles.On("UpdateAvatarURL", ctx, "user1", newURL).Return(&domain.AlumniProfile{UserID: "user1", AvatarURL: strPtr(newURL)}, nil)
		storage := new(MockStorage)
		storage.On("DeleteObject", ctx, mock.Anything).Return(errors.New("s3 down"))
		uc := newCommand(new(MockUserRepo), profiles, storage, 2024)

		_, err := uc.UpdateAvatar(ctx, "user1", newURL)
		assert.NoError(t, err)
	})

	t.Run("Should not delete anything when the old url is foreign or unchanged", func(t *testing.T) {
		profiles := new(MockProfileRepo)
		profiles.On("GetByUserID", ctx, "user1").Return(&domain.AlumniProfile{UserID: "user1", AvatarURL: strPtr("https://gravatar.test/a.png")}, nil).Once()
		profiles.On("GetByUserID", ctx, "user1").Return(&domain.AlumniProfile{UserID: "user1", AvatarURL: strPtr(newURL)}, nil).Once()
		profiles.On("UpdateAvatarURL", ctx, "user1", newURL).Return(&domain.AlumniProfile{UserID: "user1", AvatarURL: strPtr(newURL)}, nil)
		storage := new(MockStorage)
		uc := newCommand(new(MockUserRepo), profiles, storage, 2024)

		_, err := uc.UpdateAvatar(ctx, "user1", newURL)
		require.NoError(t, err)
		_, err = uc.UpdateAvatar(ctx, "user1", newURL)
		require.NoError(t, err)
		storage.AssertNotCalled(t, "DeleteObject", mock.Anything, mock.Anything)
	})
}

func TestReconcileRoleStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("Should persist drift past graduation", func(t *testing.T) {
		users := new(MockUserRepo)
		users.On("GetByID", ctx, "user1").Return(enrolledUser("user1", 2022, domain.DepartmentProgramming), nil)
		users.On("UpdateRoleStatus", ctx, "user1", domain.RoleAlumni, domain.StatusGraduated).Return(nil)
		uc := newCommand(users, new(MockProfileRepo), new(MockStorage), 2024)

		user, err := uc.ReconcileRoleStatus(ctx, "user1")
		require.NoError(t, err)
		assert.Equal(t, domain.RoleAlumni, user.Role)
		users.AssertExpectations(t)
	})

	t.Run("Should not write when nothing drifted", func(t *testing.T) {
		users := new(MockUserRepo)
		users.On("GetByID", ctx, "user1").Return(enrolledUser("user1", 2022, domain.DepartmentProgramming), nil)
		uc := newCommand(users, new(MockProfileRepo), new(MockStorage), 2023)

		_, err := uc.ReconcileRoleStatus(ctx, "user1")
		require.NoError(t, err)
		users.AssertNotCalled(t, "UpdateRoleStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Should leave withdrawn users alone", func(t *testing.T) {
		withdrawn := enrolledUser("user1", 2010, domain.DepartmentProgramming)
		withdrawn.Status = domain.StatusWithdrawn
		users := new(MockUserRepo)
		users.On("GetByID", ctx, "user1").Return(withdrawn, nil)
		uc := newCommand(users, new(MockProfileRepo), new(MockStorage), 2024)

		user, err := uc.ReconcileRoleStatus(ctx, "user1")
		require.NoError(t, err)
		assert.Equal(t, domain.StatusWithdrawn, user.Status)
		users.AssertNotCalled(t, "UpdateRoleStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

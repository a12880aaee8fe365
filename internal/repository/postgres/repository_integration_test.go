package postgres_test

import (
	"context"
	"testing"
	"time"

	"alumni-directory-backend/internal/domain"
	"alumni-directory-backend/internal/repository/postgres"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
)

func setupDB(t *testing.T) *pgxpool.Pool {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping postgres integration test in short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)

	ctx := context.Background()
	ctr, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("alumni"),
		tcpostgres.WithUsername("alumni"),
		tcpostgres.WithPassword("alumni"),
		tcpostgres.BasicWaitStrategies(),
	)
	testcontainers.CleanupContainer(t, ctr)
	require.NoError(t, err)

	dsn, err := ctr.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, postgres.ApplySchema(ctx, pool))
	return pool
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func newUser(t *testing.T, repo domain.UserRepository, id, email string) *domain.User {
	t.Helper()
	now := time.Now()
	user := &domain.User{
		ID: id, Email: email,
		Role: domain.RoleStudent, Status: domain.StatusEnrolled,
		CreatedAt: now, UpdatedAt: now,
	}
	require.NoError(t, repo.Create(context.Background(), user))
	return user
}

func TestRepositories(t *testing.T) {
	pool := setupDB(t)
	ctx := context.Background()
	users := postgres.NewUserRepository(pool)
	profiles := postgres.NewAlumniProfileRepository(pool)

	t.Run("Academic profile round trip and student id conflict", func(t *testing.T) {
		u1 := newUser(t, users, "user-academic-1", "a1@school.example")
		u2 := newUser(t, users, "user-academic-2", "a2@school.example")

		dept := domain.DepartmentProgramming
		u1.Name = strPtr("Taro")
		u1.StudentID = strPtr("S-001")
		u1.EnrollmentYear = intPtr(2022)
		u1.DurationYears = intPtr(2)
		u1.Department = &dept
		u1.Role = domain.RoleAlumni
		u1.Status = domain.StatusGraduated
		require.NoError(t, users.UpdateAcademicProfile(ctx, u1))

		got, err := users.GetByID(ctx, u1.ID)
		require.NoError(t, err)
		assert.Equal(t, "S-001", *got.StudentID)
		assert.Equal(t, domain.DepartmentProgramming, *got.Department)
		assert.Equal(t, domain.RoleAlumni, got.Role)

		u2.StudentID = strPtr("S-001")
		u2.Name = strPtr("Hanako")
		err = users.UpdateAcademicProfile(ctx, u2)
		assert.ErrorIs(t, err, domain.ErrStudentIDTaken)
	})

	t.Run("Linked email lookup and uniqueness", func(t *testing.T) {
		u1 := newUser(t, users, "user-link-1", "l1@school.example")
		u2 := newUser(t, users, "user-link-2", "l2@school.example")

		require.NoError(t, users.UpdateLinkedEmail(ctx, u1.ID, strPtr("someone@gmail.com")))
		got, err := users.GetByLinkedEmail(ctx, "someone@gmail.com")
		require.NoError(t, err)
		assert.Equal(t, u1.ID, got.ID)

		err = users.UpdateLinkedEmail(ctx, u2.ID, strPtr("someone@gmail.com"))
		assert.ErrorIs(t, err, domain.ErrLinkedEmailTaken)

		require.NoError(t, users.UpdateLinkedEmail(ctx, u1.ID, nil))
		_, err = users.GetByLinkedEmail(ctx, "someone@gmail.com")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("Company set is replaced, not merged", func(t *testing.T) {
		u := newUser(t, users, "user-companies", "c@school.example")
		profile := &domain.AlumniProfile{
			UserID: u.ID, Nickname: strPtr("nick"), GraduationYear: 2024,
			Department: domain.DepartmentProgramming, CompanyNames: []string{"A", "B"},
			IsPublic: true, AcceptContact: true,
		}
		require.NoError(t, profiles.Upsert(ctx, profile))
		firstID := profile.ID

		profile.CompanyNames = []string{"X"}
		require.NoError(t, profiles.Upsert(ctx, profile))
		assert.Equal(t, firstID, profile.ID)

		got, err := profiles.GetByUserID(ctx, u.ID)
		require.NoError(t, err)
		assert.Equal(t, []string{"X"}, got.CompanyNames)
	})

	t.Run("Failed company write rolls back the profile", func(t *testing.T) {
		u := newUser(t, users, "user-rollback", "r@school.example")
		require.NoError(t, profiles.Upsert(ctx, &domain.AlumniProfile{
			UserID: u.ID, Nickname: strPtr("before"), GraduationYear: 2024,
			Department: domain.DepartmentProgramming, CompanyNames: []string{"Keep"},
			IsPublic: true,
		}))

		// Postgres rejects NUL bytes in TEXT, failing the company statements after the profile row is written.
		err := profiles.Upsert(ctx, &domain.AlumniProfile{
			UserID: u.ID, Nickname: strPtr("after"), GraduationYear: 2025,
			Department: domain.DepartmentProgramming, CompanyNames: []string{"Bad\x00Name"},
			IsPublic: true,
		})
		require.Error(t, err)

		got, err := profiles.GetByUserID(ctx, u.ID)
		require.NoError(t, err)
		assert.Equal(t, "before", *got.Nickname)
		assert.Equal(t, 2024, got.GraduationYear)
		assert.Equal(t, []string{"Keep"}, got.CompanyNames)
	})

	t.Run("Public listing filters, orders and hides private profiles", func(t *testing.T) {
		seed := []struct {
			id       string
			year     int
			company  string
			isPublic bool
		}{
			{"list-1", 2023, "Acme_Games", true},
			{"list-2", 2025, "AcmeXGames", true},
			{"list-3", 2024, "Other", true},
			{"list-4", 2026, "Acme Hidden", false},
		}
		for _, s := range seed {
			u := newUser(t, users, s.id, s.id+"@school.example")
			require.NoError(t, profiles.Upsert(ctx, &domain.AlumniProfile{
				UserID: u.ID, Nickname: strPtr(s.id), GraduationYear: s.year,
				Department: domain.DepartmentGameSoftware, CompanyNames: []string{s.company},
				IsPublic: s.isPublic,
			}))
		}

		dept := domain.DepartmentGameSoftware
		items, total, err := profiles.ListPublic(ctx, domain.AlumniFilter{
			Department: &dept, Company: "acme", Limit: 10,
		})
		require.NoError(t, err)
		assert.EqualValues(t, 2, total)
		require.Len(t, items, 2)
		assert.Equal(t, 2025, items[0].GraduationYear)
		assert.Equal(t, 2023, items[1].GraduationYear)

		_, total, err = profiles.ListPublic(ctx, domain.AlumniFilter{Department: &dept, Company: "e_g", Limit: 10})
		require.NoError(t, err)
		assert.EqualValues(t, 1, total, "underscore must match literally")

		page, total, err := profiles.ListPublic(ctx, domain.AlumniFilter{Department: &dept, Limit: 1, Offset: 1})
		require.NoError(t, err)
		assert.EqualValues(t, 3, total)
		require.Len(t, page, 1)
		assert.Equal(t, 2024, page[0].GraduationYear)
	})

	t.Run("Private profile is not publicly visible", func(t *testing.T) {
		u := newUser(t, users, "user-private", "p@school.example")
		profile := &domain.AlumniProfile{
			UserID: u.ID, GraduationYear: 2024, Department: domain.DepartmentOthers,
		}
		require.NoError(t, profiles.Upsert(ctx, profile))

		_, err := profiles.GetPublicByID(ctx, profile.ID)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("Avatar update requires a profile", func(t *testing.T) {
		_, err := profiles.UpdateAvatarURL(ctx, "nobody", "http://x/y.png")
		assert.ErrorIs(t, err, domain.ErrNotFound)

		u := newUser(t, users, "user-avatar", "av@school.example")
		require.NoError(t, profiles.Upsert(ctx, &domain.AlumniProfile{
			UserID: u.ID, GraduationYear: 2024, Department: domain.DepartmentOthers,
		}))
		got, err := profiles.UpdateAvatarURL(ctx, u.ID, "http://x/y.png")
		require.NoError(t, err)
		assert.Equal(t, "http://x/y.png", *got.AvatarURL)
	})

	t.Run("Deleting a user cascades to profile and companies", func(t *testing.T) {
		u := newUser(t, users, "user-delete", "d@school.example")
		require.NoError(t, profiles.Upsert(ctx, &domain.AlumniProfile{
			UserID: u.ID, Nickname: strPtr("n"), GraduationYear: 2024,
			Department: domain.DepartmentOthers, CompanyNames: []string{"Z"}, IsPublic: true,
		}))

		deleted, err := users.Delete(ctx, u.ID)
		require.NoError(t, err)
		assert.True(t, deleted)

		_, err = profiles.GetByUserID(ctx, u.ID)
		assert.ErrorIs(t, err, domain.ErrNotFound)

		var orphans int
		require.NoError(t, pool.QueryRow(ctx, `SELECT COUNT(*) FROM alumni_companies WHERE name = 'Z'`).Scan(&orphans))
		assert.Zero(t, orphans)

		deleted, err = users.Delete(ctx, u.ID)
		require.NoError(t, err)
		assert.False(t, deleted)
	})
}

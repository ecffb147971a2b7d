package users

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/skillswaphq/skillswap-backend/pkg/enums"
)

func setupUsersTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	require.NoError(t, err)

	users := `
CREATE TABLE IF NOT EXISTS users (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  email TEXT NOT NULL UNIQUE,
  location TEXT,
  profile_photo TEXT,
  skills_offered TEXT NOT NULL DEFAULT '{}',
  skills_wanted TEXT NOT NULL DEFAULT '{}',
  availability TEXT NOT NULL DEFAULT '{}',
  is_public INTEGER NOT NULL DEFAULT 1,
  is_active INTEGER NOT NULL DEFAULT 1,
  role TEXT NOT NULL DEFAULT 'user',
  rating REAL NOT NULL DEFAULT 5.0,
  total_swaps INTEGER NOT NULL DEFAULT 0,
  join_date DATETIME,
  created_at DATETIME,
  updated_at DATETIME
);`
	require.NoError(t, db.Exec(`DROP TABLE IF EXISTS users`).Error)
	require.NoError(t, db.Exec(users).Error)
	return db
}

func seedUser(t *testing.T, repo *Repository, name, email string, mutate func(*CreateUserDTO)) uuid.UUID {
	t.Helper()

	dto := CreateUserDTO{
		Name:          name,
		Email:         email,
		SkillsOffered: []string{"Photoshop"},
		SkillsWanted:  []string{"Excel"},
		Availability:  []string{"weekends"},
	}
	if mutate != nil {
		mutate(&dto)
	}
	user, err := repo.Create(context.Background(), dto)
	require.NoError(t, err)
	return user.ID
}

func TestRepositoryCreateAndFind(t *testing.T) {
	repo := NewRepository(setupUsersTestDB(t))

	id := seedUser(t, repo, "Marc Demo", "marc@example.com", nil)

	user, err := repo.FindByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "Marc Demo", user.Name)
	assert.Equal(t, []string{"Photoshop"}, []string(user.SkillsOffered))
	assert.Equal(t, enums.UserRoleUser, user.Role)
	assert.InDelta(t, 5.0, user.Rating, 0.001)
	assert.True(t, user.IsPublic)
	assert.True(t, user.IsActive)

	byEmail, err := repo.FindByEmail(context.Background(), "marc@example.com")
	require.NoError(t, err)
	assert.Equal(t, id, byEmail.ID)
}

func TestRepositoryFindByIDNotFound(t *testing.T) {
	repo := NewRepository(setupUsersTestDB(t))

	_, err := repo.FindByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRepositoryListVisibleFilters(t *testing.T) {
	repo := NewRepository(setupUsersTestDB(t))

	visible := seedUser(t, repo, "Visible", "visible@example.com", nil)
	seedUser(t, repo, "Private", "private@example.com", func(dto *CreateUserDTO) {
		hidden := false
		dto.IsPublic = &hidden
	})
	seedUser(t, repo, "Admin", "admin@example.com", func(dto *CreateUserDTO) {
		admin := enums.UserRoleAdmin
		dto.Role = &admin
	})

	bannedID := seedUser(t, repo, "Banned", "banned@example.com", nil)
	banned, err := repo.FindByID(context.Background(), bannedID)
	require.NoError(t, err)
	banned.IsActive = false
	require.NoError(t, repo.Update(context.Background(), banned))

	users, err := repo.ListVisible(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, visible, users[0].ID)
}

func TestRepositoryExists(t *testing.T) {
	repo := NewRepository(setupUsersTestDB(t))

	id := seedUser(t, repo, "Someone", "someone@example.com", nil)

	ok, err := repo.Exists(context.Background(), id)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.Exists(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRepositoryUpdatePersistsChanges(t *testing.T) {
	repo := NewRepository(setupUsersTestDB(t))

	id := seedUser(t, repo, "Before", "update@example.com", nil)
	user, err := repo.FindByID(context.Background(), id)
	require.NoError(t, err)

	user.Name = "After"
	user.SkillsOffered = []string{"Go", "SQL"}
	require.NoError(t, repo.Update(context.Background(), user))

	reloaded, err := repo.FindByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "After", reloaded.Name)
	assert.Equal(t, []string{"Go", "SQL"}, []string(reloaded.SkillsOffered))
}

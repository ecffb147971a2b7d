package swaps

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/skillswaphq/skillswap-backend/pkg/db/models"
	"github.com/skillswaphq/skillswap-backend/pkg/enums"
)

func setupSwapsTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	require.NoError(t, err)

	swapRequests := `
CREATE TABLE IF NOT EXISTS swap_requests (
  id TEXT PRIMARY KEY,
  from_user_id TEXT NOT NULL,
  to_user_id TEXT NOT NULL,
  skills_offered TEXT NOT NULL DEFAULT '{}',
  skills_wanted TEXT NOT NULL DEFAULT '{}',
  message TEXT NOT NULL DEFAULT '',
  status TEXT NOT NULL DEFAULT 'pending',
  created_at DATETIME,
  updated_at DATETIME
);`
	require.NoError(t, db.Exec(`DROP TABLE IF EXISTS swap_requests`).Error)
	require.NoError(t, db.Exec(swapRequests).Error)
	return db
}

func seedSwap(t *testing.T, repo *Repository, status enums.SwapStatus) *models.SwapRequest {
	t.Helper()

	swap := &models.SwapRequest{
		FromUserID:    uuid.New(),
		ToUserID:      uuid.New(),
		SkillsOffered: []string{"Photoshop"},
		SkillsWanted:  []string{"Excel"},
		Message:       "trade?",
		Status:        status,
	}
	require.NoError(t, repo.Create(context.Background(), swap))
	return swap
}

func TestRepositoryCreateAndFind(t *testing.T) {
	repo := NewRepository(setupSwapsTestDB(t))

	swap := seedSwap(t, repo, enums.SwapStatusPending)

	loaded, err := repo.FindByID(context.Background(), swap.ID)
	require.NoError(t, err)
	assert.Equal(t, enums.SwapStatusPending, loaded.Status)
	assert.Equal(t, []string{"Photoshop"}, []string(loaded.SkillsOffered))
	assert.Equal(t, swap.FromUserID, loaded.FromUserID)
}

func TestRepositoryUpdateStatusFromGuardsExpected(t *testing.T) {
	repo := NewRepository(setupSwapsTestDB(t))
	swap := seedSwap(t, repo, enums.SwapStatusPending)

	affected, err := repo.UpdateStatusFrom(context.Background(), swap.ID, enums.SwapStatusPending, enums.SwapStatusAccepted)
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	// Second writer still expecting pending loses the race.
	affected, err = repo.UpdateStatusFrom(context.Background(), swap.ID, enums.SwapStatusPending, enums.SwapStatusCancelled)
	require.NoError(t, err)
	assert.Equal(t, int64(0), affected)

	loaded, err := repo.FindByID(context.Background(), swap.ID)
	require.NoError(t, err)
	assert.Equal(t, enums.SwapStatusAccepted, loaded.Status)
}

func TestRepositorySetStatusUnconditional(t *testing.T) {
	repo := NewRepository(setupSwapsTestDB(t))
	swap := seedSwap(t, repo, enums.SwapStatusCompleted)

	affected, err := repo.SetStatus(context.Background(), swap.ID, enums.SwapStatusPending)
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	loaded, err := repo.FindByID(context.Background(), swap.ID)
	require.NoError(t, err)
	assert.Equal(t, enums.SwapStatusPending, loaded.Status)
}

func TestRepositoryListNewestFirst(t *testing.T) {
	repo := NewRepository(setupSwapsTestDB(t))
	first := seedSwap(t, repo, enums.SwapStatusPending)
	second := seedSwap(t, repo, enums.SwapStatusPending)

	// Force distinct timestamps; sqlite datetime resolution is coarse.
	require.NoError(t, repo.db.Exec(
		`UPDATE swap_requests SET created_at = datetime('now', '-1 hour') WHERE id = ?`, first.ID).Error)

	swaps, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, swaps, 2)
	assert.Equal(t, second.ID, swaps[0].ID)
	assert.Equal(t, first.ID, swaps[1].ID)
}

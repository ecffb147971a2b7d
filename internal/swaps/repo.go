package swaps

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/skillswaphq/skillswap-backend/pkg/db/models"
	"github.com/skillswaphq/skillswap-backend/pkg/enums"
)

// Repository handles swap request persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository binds a GORM DB to swap request operations.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create persists a new swap request row.
func (r *Repository) Create(ctx context.Context, swap *models.SwapRequest) error {
	if swap == nil {
		return fmt.Errorf("swap request is required")
	}
	if swap.ID == uuid.Nil {
		swap.ID = uuid.New()
	}
	return r.db.WithContext(ctx).Create(swap).Error
}

// FindByID loads a swap request by its UUID.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.SwapRequest, error) {
	var swap models.SwapRequest
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&swap).Error; err != nil {
		return nil, err
	}
	return &swap, nil
}

// List returns all swap requests, newest first.
func (r *Repository) List(ctx context.Context) ([]models.SwapRequest, error) {
	var swaps []models.SwapRequest
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&swaps).Error; err != nil {
		return nil, err
	}
	return swaps, nil
}

// UpdateStatusFrom moves the swap to the target status only while it still
// holds the expected one. Returns the number of rows changed, so callers can
// detect a concurrent writer winning the race.
func (r *Repository) UpdateStatusFrom(ctx context.Context, id uuid.UUID, expected, target enums.SwapStatus) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&models.SwapRequest{}).
		Where("id = ? AND status = ?", id, expected).
		Updates(map[string]any{"status": target, "updated_at": time.Now().UTC()})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

// SetStatus overwrites the swap status unconditionally.
func (r *Repository) SetStatus(ctx context.Context, id uuid.UUID, target enums.SwapStatus) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&models.SwapRequest{}).
		Where("id = ?", id).
		Updates(map[string]any{"status": target, "updated_at": time.Now().UTC()})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

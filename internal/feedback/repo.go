package feedback

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/skillswaphq/skillswap-backend/pkg/db/models"
)

// Repository handles feedback persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository binds a GORM DB to feedback operations.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create persists a new feedback row.
func (r *Repository) Create(ctx context.Context, fb *models.Feedback) error {
	if fb == nil {
		return fmt.Errorf("feedback is required")
	}
	if fb.ID == uuid.Nil {
		fb.ID = uuid.New()
	}
	return r.db.WithContext(ctx).Create(fb).Error
}

// List returns all feedback, newest first.
func (r *Repository) List(ctx context.Context) ([]models.Feedback, error) {
	var feedbacks []models.Feedback
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&feedbacks).Error; err != nil {
		return nil, err
	}
	return feedbacks, nil
}

// ListBySwapIDs returns feedback rows for the provided swap requests.
func (r *Repository) ListBySwapIDs(ctx context.Context, ids []uuid.UUID) ([]models.Feedback, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var feedbacks []models.Feedback
	if err := r.db.WithContext(ctx).Where("swap_request_id IN ?", ids).Find(&feedbacks).Error; err != nil {
		return nil, err
	}
	return feedbacks, nil
}

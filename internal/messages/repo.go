package messages

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/skillswaphq/skillswap-backend/pkg/db/models"
)

// Repository handles admin message persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository binds a GORM DB to admin message operations.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create persists a new admin message row.
func (r *Repository) Create(ctx context.Context, msg *models.AdminMessage) error {
	if msg == nil {
		return fmt.Errorf("message is required")
	}
	if msg.ID == uuid.Nil {
		msg.ID = uuid.New()
	}
	return r.db.WithContext(ctx).Create(msg).Error
}

// FindByID loads an admin message by its UUID.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.AdminMessage, error) {
	var msg models.AdminMessage
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&msg).Error; err != nil {
		return nil, err
	}
	return &msg, nil
}

// List returns all admin messages, newest first.
func (r *Repository) List(ctx context.Context) ([]models.AdminMessage, error) {
	var msgs []models.AdminMessage
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&msgs).Error; err != nil {
		return nil, err
	}
	return msgs, nil
}

// Update saves the provided admin message.
func (r *Repository) Update(ctx context.Context, msg *models.AdminMessage) error {
	if msg == nil {
		return fmt.Errorf("message is required")
	}
	return r.db.WithContext(ctx).Save(msg).Error
}

// Delete removes an admin message, reporting whether a row was deleted.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.AdminMessage{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

package models

import (
	"time"

	"github.com/google/uuid"
)

// Feedback is a post-swap rating left by one participant about the other.
type Feedback struct {
	ID            uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	FromUserID    uuid.UUID `gorm:"column:from_user_id;type:uuid;not null"`
	ToUserID      uuid.UUID `gorm:"column:to_user_id;type:uuid;not null"`
	SwapRequestID uuid.UUID `gorm:"column:swap_request_id;type:uuid;not null;index"`
	Rating        int       `gorm:"column:rating;not null"`
	Comment       string    `gorm:"column:comment"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime"`
}

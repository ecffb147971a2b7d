package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/skillswaphq/skillswap-backend/pkg/enums"
)

// AdminMessage is a broadcast notice shown to all users.
type AdminMessage struct {
	ID        uuid.UUID             `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Title     string                `gorm:"column:title;not null"`
	Content   string                `gorm:"column:content"`
	Category  enums.MessageCategory `gorm:"column:category;type:message_category;not null;default:'info'"`
	IsActive  bool                  `gorm:"column:is_active;not null;default:true"`
	CreatedAt time.Time             `gorm:"column:created_at;autoCreateTime"`
}

package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/skillswaphq/skillswap-backend/pkg/enums"
)

// User represents a marketplace member and their exchange profile.
type User struct {
	ID            uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Name          string         `gorm:"column:name;not null"`
	Email         string         `gorm:"type:text;not null;uniqueIndex"`
	Location      *string        `gorm:"column:location"`
	ProfilePhoto  *string        `gorm:"column:profile_photo"`
	SkillsOffered pq.StringArray `gorm:"column:skills_offered;type:text[]"`
	SkillsWanted  pq.StringArray `gorm:"column:skills_wanted;type:text[]"`
	Availability  pq.StringArray `gorm:"column:availability;type:text[]"`
	IsPublic      bool           `gorm:"column:is_public;not null;default:true"`
	IsActive      bool           `gorm:"column:is_active;not null;default:true"`
	Role          enums.UserRole `gorm:"column:role;type:user_role;not null;default:'user'"`
	Rating        float64        `gorm:"column:rating;not null;default:5.0"`
	TotalSwaps    int            `gorm:"column:total_swaps;not null;default:0"`
	JoinDate      time.Time      `gorm:"column:join_date;autoCreateTime"`
	CreatedAt     time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time      `gorm:"column:updated_at;autoUpdateTime"`
}

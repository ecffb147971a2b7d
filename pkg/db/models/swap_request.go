package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/skillswaphq/skillswap-backend/pkg/enums"
)

// SwapRequest is a directed exchange offer between two users.
// Skills are stored as arrays even though requests carry a single
// skill today; the persisted shape allows multi-skill offers later.
type SwapRequest struct {
	ID            uuid.UUID        `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	FromUserID    uuid.UUID        `gorm:"column:from_user_id;type:uuid;not null;index"`
	ToUserID      uuid.UUID        `gorm:"column:to_user_id;type:uuid;not null;index"`
	SkillsOffered pq.StringArray   `gorm:"column:skills_offered;type:text[]"`
	SkillsWanted  pq.StringArray   `gorm:"column:skills_wanted;type:text[]"`
	Message       string           `gorm:"column:message"`
	Status        enums.SwapStatus `gorm:"column:status;type:swap_status;not null;default:'pending'"`
	CreatedAt     time.Time        `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time        `gorm:"column:updated_at;autoUpdateTime"`
}

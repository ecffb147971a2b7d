package swaps

import (
	"time"

	"github.com/google/uuid"

	"github.com/skillswaphq/skillswap-backend/pkg/db/models"
	"github.com/skillswaphq/skillswap-backend/pkg/enums"
)

// UserSummaryDTO is the abbreviated profile embedded in swap listings.
type UserSummaryDTO struct {
	ID       uuid.UUID      `json:"id"`
	Name     string         `json:"name"`
	Email    string         `json:"email"`
	Role     enums.UserRole `json:"role"`
	IsActive bool           `json:"is_active"`
}

// SwapFeedbackDTO is the feedback summary embedded in swap listings.
type SwapFeedbackDTO struct {
	ID      uuid.UUID `json:"id"`
	Rating  int       `json:"rating"`
	Comment string    `json:"comment"`
}

// SwapRequestDTO exposes a swap request in API responses. The swap entity
// uses snake_case in the client schema, unlike the user entity.
type SwapRequestDTO struct {
	ID           uuid.UUID        `json:"id"`
	FromUserID   uuid.UUID        `json:"from_user_id"`
	ToUserID     uuid.UUID        `json:"to_user_id"`
	SkillOffered string           `json:"skill_offered"`
	SkillWanted  string           `json:"skill_wanted"`
	Message      string           `json:"message"`
	Status       enums.SwapStatus `json:"status"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
	FromUser     *UserSummaryDTO  `json:"from_user,omitempty"`
	ToUser       *UserSummaryDTO  `json:"to_user,omitempty"`
	Feedback     *SwapFeedbackDTO `json:"feedback,omitempty"`
}

// FromModel maps a persisted swap request into a DTO. The storage model
// keeps skill arrays for future multi-skill offers, the API exposes the
// first entry of each.
func FromModel(m *models.SwapRequest) *SwapRequestDTO {
	if m == nil {
		return nil
	}
	return &SwapRequestDTO{
		ID:           m.ID,
		FromUserID:   m.FromUserID,
		ToUserID:     m.ToUserID,
		SkillOffered: firstOrEmpty(m.SkillsOffered),
		SkillWanted:  firstOrEmpty(m.SkillsWanted),
		Message:      m.Message,
		Status:       m.Status,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func userSummary(m *models.User) *UserSummaryDTO {
	if m == nil {
		return nil
	}
	return &UserSummaryDTO{
		ID:       m.ID,
		Name:     m.Name,
		Email:    m.Email,
		Role:     m.Role,
		IsActive: m.IsActive,
	}
}

func feedbackSummary(m *models.Feedback) *SwapFeedbackDTO {
	if m == nil {
		return nil
	}
	return &SwapFeedbackDTO{
		ID:      m.ID,
		Rating:  m.Rating,
		Comment: m.Comment,
	}
}

func firstOrEmpty(values []string) string {
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

package feedback

import (
	"time"

	"github.com/google/uuid"

	"github.com/skillswaphq/skillswap-backend/pkg/db/models"
)

// FeedbackDTO exposes feedback entries in API responses using the client's
// snake_case fields.
type FeedbackDTO struct {
	ID            uuid.UUID `json:"id"`
	FromUserID    uuid.UUID `json:"from_user_id"`
	ToUserID      uuid.UUID `json:"to_user_id"`
	SwapRequestID uuid.UUID `json:"swap_request_id"`
	Rating        int       `json:"rating"`
	Comment       string    `json:"comment"`
	CreatedAt     time.Time `json:"created_at"`
}

// FromModel maps a persisted feedback row into a DTO.
func FromModel(m *models.Feedback) *FeedbackDTO {
	if m == nil {
		return nil
	}
	return &FeedbackDTO{
		ID:            m.ID,
		FromUserID:    m.FromUserID,
		ToUserID:      m.ToUserID,
		SwapRequestID: m.SwapRequestID,
		Rating:        m.Rating,
		Comment:       m.Comment,
		CreatedAt:     m.CreatedAt,
	}
}

// FromModels maps a slice of feedback rows preserving order.
func FromModels(ms []models.Feedback) []FeedbackDTO {
	dtos := make([]FeedbackDTO, 0, len(ms))
	for i := range ms {
		dtos = append(dtos, *FromModel(&ms[i]))
	}
	return dtos
}

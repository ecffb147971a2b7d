package messages

import (
	"time"

	"github.com/google/uuid"

	"github.com/skillswaphq/skillswap-backend/pkg/db/models"
	"github.com/skillswaphq/skillswap-backend/pkg/enums"
)

// MessageDTO exposes a platform announcement. The client calls the
// category field "type".
type MessageDTO struct {
	ID        uuid.UUID             `json:"id"`
	Title     string                `json:"title"`
	Content   string                `json:"content"`
	Type      enums.MessageCategory `json:"type"`
	IsActive  bool                  `json:"is_active"`
	CreatedAt time.Time             `json:"created_at"`
}

// FromModel maps a persisted admin message into a DTO.
func FromModel(m *models.AdminMessage) *MessageDTO {
	if m == nil {
		return nil
	}
	return &MessageDTO{
		ID:        m.ID,
		Title:     m.Title,
		Content:   m.Content,
		Type:      m.Category,
		IsActive:  m.IsActive,
		CreatedAt: m.CreatedAt,
	}
}

// FromModels maps a slice of admin messages preserving order.
func FromModels(ms []models.AdminMessage) []MessageDTO {
	dtos := make([]MessageDTO, 0, len(ms))
	for i := range ms {
		dtos = append(dtos, *FromModel(&ms[i]))
	}
	return dtos
}

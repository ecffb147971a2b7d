package users

import (
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/skillswaphq/skillswap-backend/pkg/db/models"
	"github.com/skillswaphq/skillswap-backend/pkg/enums"
)

// UserDTO exposes profile data in API responses. Field names follow the
// client schema, which uses camelCase for the user entity.
type UserDTO struct {
	ID            uuid.UUID      `json:"id"`
	Name          string         `json:"name"`
	Email         string         `json:"email"`
	Location      *string        `json:"location,omitempty"`
	ProfilePhoto  *string        `json:"profilePhoto,omitempty"`
	SkillsOffered []string       `json:"skillsOffered"`
	SkillsWanted  []string       `json:"skillsWanted"`
	Availability  []string       `json:"availability"`
	IsPublic      bool           `json:"isPublic"`
	IsActive      bool           `json:"isActive"`
	Role          enums.UserRole `json:"role"`
	Rating        float64        `json:"rating"`
	TotalSwaps    int            `json:"totalSwaps"`
	JoinDate      time.Time      `json:"joinDate"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
}

// CreateUserDTO holds registration-time data for a new user.
type CreateUserDTO struct {
	Name          string
	Email         string
	Location      *string
	ProfilePhoto  *string
	SkillsOffered []string
	SkillsWanted  []string
	Availability  []string
	IsPublic      *bool
	Role          *enums.UserRole
	Rating        *float64
}

// FromModel maps the persisted user into a DTO. Ratings are rounded to one
// decimal place, matching the client schema.
func FromModel(m *models.User) *UserDTO {
	if m == nil {
		return nil
	}

	return &UserDTO{
		ID:            m.ID,
		Name:          m.Name,
		Email:         m.Email,
		Location:      m.Location,
		ProfilePhoto:  m.ProfilePhoto,
		SkillsOffered: cloneStrings(m.SkillsOffered),
		SkillsWanted:  cloneStrings(m.SkillsWanted),
		Availability:  cloneStrings(m.Availability),
		IsPublic:      m.IsPublic,
		IsActive:      m.IsActive,
		Role:          m.Role,
		Rating:        RoundRating(m.Rating),
		TotalSwaps:    m.TotalSwaps,
		JoinDate:      m.JoinDate,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// FromModels maps a slice of users preserving order.
func FromModels(ms []models.User) []UserDTO {
	dtos := make([]UserDTO, 0, len(ms))
	for i := range ms {
		dtos = append(dtos, *FromModel(&ms[i]))
	}
	return dtos
}

// ToModel prepares the GORM model from creation data, supplying defaults.
func (c CreateUserDTO) ToModel() *models.User {
	model := &models.User{
		Name:          c.Name,
		Email:         c.Email,
		Location:      c.Location,
		ProfilePhoto:  c.ProfilePhoto,
		SkillsOffered: c.SkillsOffered,
		SkillsWanted:  c.SkillsWanted,
		Availability:  c.Availability,
		IsPublic:      true,
		IsActive:      true,
		Role:          enums.UserRoleUser,
		Rating:        5.0,
	}

	if c.IsPublic != nil {
		model.IsPublic = *c.IsPublic
	}
	if c.Role != nil {
		model.Role = *c.Role
	}
	if c.Rating != nil {
		model.Rating = *c.Rating
	}
	if model.SkillsOffered == nil {
		model.SkillsOffered = []string{}
	}
	if model.SkillsWanted == nil {
		model.SkillsWanted = []string{}
	}
	if model.Availability == nil {
		model.Availability = []string{}
	}

	return model
}

// RoundRating rounds to one decimal place.
func RoundRating(value float64) float64 {
	return math.Round(value*10) / 10
}

func cloneStrings(values []string) []string {
	if values == nil {
		return []string{}
	}
	res := make([]string, len(values))
	copy(res, values)
	return res
}

package controllers

import (
	"net/http"

	"github.com/skillswaphq/skillswap-backend/api/responses"
	"github.com/skillswaphq/skillswap-backend/api/validators"
	"github.com/skillswaphq/skillswap-backend/internal/users"
	"github.com/skillswaphq/skillswap-backend/pkg/enums"
	pkgerrors "github.com/skillswaphq/skillswap-backend/pkg/errors"
	"github.com/skillswaphq/skillswap-backend/pkg/logger"
)

type createUserRequest struct {
	Name          string   `json:"name" validate:"required"`
	Email         string   `json:"email" validate:"required,email"`
	Location      *string  `json:"location,omitempty"`
	ProfilePhoto  *string  `json:"profilePhoto,omitempty"`
	SkillsOffered []string `json:"skillsOffered,omitempty"`
	SkillsWanted  []string `json:"skillsWanted,omitempty"`
	Availability  []string `json:"availability,omitempty"`
	IsPublic      *bool    `json:"isPublic,omitempty"`
	Role          *string  `json:"role,omitempty"`
	Rating        *float64 `json:"rating,omitempty"`
}

func (r createUserRequest) toInput() (users.CreateUserInput, error) {
	input := users.CreateUserInput{
		Name:          r.Name,
		Email:         r.Email,
		Location:      r.Location,
		ProfilePhoto:  r.ProfilePhoto,
		SkillsOffered: r.SkillsOffered,
		SkillsWanted:  r.SkillsWanted,
		Availability:  r.Availability,
		IsPublic:      r.IsPublic,
		Rating:        r.Rating,
	}
	if r.Role != nil {
		role, err := enums.ParseUserRole(*r.Role)
		if err != nil {
			return users.CreateUserInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid role")
		}
		input.Role = &role
	}
	return input, nil
}

type updateUserRequest struct {
	Name          *string   `json:"name,omitempty"`
	Location      *string   `json:"location,omitempty"`
	ProfilePhoto  *string   `json:"profilePhoto,omitempty"`
	SkillsOffered *[]string `json:"skillsOffered,omitempty"`
	SkillsWanted  *[]string `json:"skillsWanted,omitempty"`
	Availability  *[]string `json:"availability,omitempty"`
	IsPublic      *bool     `json:"isPublic,omitempty"`
	IsActive      *bool     `json:"isActive,omitempty"`
	Rating        *float64  `json:"rating,omitempty"`
	TotalSwaps    *int      `json:"totalSwaps,omitempty"`
}

func (r updateUserRequest) toInput() users.UpdateUserInput {
	return users.UpdateUserInput{
		Name:          r.Name,
		Location:      r.Location,
		ProfilePhoto:  r.ProfilePhoto,
		SkillsOffered: r.SkillsOffered,
		SkillsWanted:  r.SkillsWanted,
		Availability:  r.Availability,
		IsPublic:      r.IsPublic,
		IsActive:      r.IsActive,
		Rating:        r.Rating,
		TotalSwaps:    r.TotalSwaps,
	}
}

// UserList returns the full roster, newest first.
func UserList(svc users.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "user service unavailable"))
			return
		}

		list, err := svc.List(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, list)
	}
}

// UserGet returns one profile by id.
func UserGet(svc users.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "user service unavailable"))
			return
		}

		id, err := validators.ParseUUIDParam(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		profile, err := svc.GetByID(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, profile)
	}
}

// UserCreate registers a new member.
func UserCreate(svc users.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "user service unavailable"))
			return
		}

		var payload createUserRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input, err := payload.toInput()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		profile, err := svc.Create(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, profile)
	}
}

// UserUpdate patches the whitelisted profile fields.
func UserUpdate(svc users.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "user service unavailable"))
			return
		}

		id, err := validators.ParseUUIDParam(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload updateUserRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		profile, err := svc.Update(r.Context(), id, payload.toInput())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, profile)
	}
}

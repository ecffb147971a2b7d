package controllers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/skillswaphq/skillswap-backend/api/responses"
	"github.com/skillswaphq/skillswap-backend/api/validators"
	"github.com/skillswaphq/skillswap-backend/internal/swaps"
	"github.com/skillswaphq/skillswap-backend/pkg/enums"
	pkgerrors "github.com/skillswaphq/skillswap-backend/pkg/errors"
	"github.com/skillswaphq/skillswap-backend/pkg/logger"
)

type createSwapRequest struct {
	FromUserID   string `json:"from_user_id" validate:"required"`
	ToUserID     string `json:"to_user_id" validate:"required"`
	SkillOffered string `json:"skill_offered" validate:"required"`
	SkillWanted  string `json:"skill_wanted" validate:"required"`
	Message      string `json:"message,omitempty"`
}

func (r createSwapRequest) toInput() (swaps.CreateSwapInput, error) {
	fromID, err := uuid.Parse(r.FromUserID)
	if err != nil {
		return swaps.CreateSwapInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid from_user_id")
	}
	toID, err := uuid.Parse(r.ToUserID)
	if err != nil {
		return swaps.CreateSwapInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid to_user_id")
	}
	return swaps.CreateSwapInput{
		FromUserID:   fromID,
		ToUserID:     toID,
		SkillOffered: r.SkillOffered,
		SkillWanted:  r.SkillWanted,
		Message:      r.Message,
	}, nil
}

type updateSwapRequest struct {
	Status string `json:"status" validate:"required"`
}

// SwapList returns all swaps with user summaries and feedback embedded.
func SwapList(svc swaps.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "swap service unavailable"))
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

// SwapGet returns one swap request by id.
func SwapGet(svc swaps.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "swap service unavailable"))
			return
		}

		id, err := validators.ParseUUIDParam(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		swap, err := svc.GetByID(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, swap)
	}
}

// SwapCreate opens a new pending swap request.
func SwapCreate(svc swaps.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "swap service unavailable"))
			return
		}

		var payload createSwapRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input, err := payload.toInput()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		swap, err := svc.Create(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, swap)
	}
}

// SwapUpdateStatus moves a swap through its lifecycle.
func SwapUpdateStatus(svc swaps.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "swap service unavailable"))
			return
		}

		id, err := validators.ParseUUIDParam(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload updateSwapRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		status, err := enums.ParseSwapStatus(payload.Status)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid status"))
			return
		}

		swap, err := svc.Transition(r.Context(), id, status)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, swap)
	}
}

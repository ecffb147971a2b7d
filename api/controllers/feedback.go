package controllers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/skillswaphq/skillswap-backend/api/responses"
	"github.com/skillswaphq/skillswap-backend/api/validators"
	"github.com/skillswaphq/skillswap-backend/internal/feedback"
	pkgerrors "github.com/skillswaphq/skillswap-backend/pkg/errors"
	"github.com/skillswaphq/skillswap-backend/pkg/logger"
)

type createFeedbackRequest struct {
	FromUserID    string `json:"from_user_id" validate:"required"`
	ToUserID      string `json:"to_user_id" validate:"required"`
	SwapRequestID string `json:"swap_request_id" validate:"required"`
	Rating        int    `json:"rating" validate:"required,min=1,max=5"`
	Comment       string `json:"comment,omitempty"`
}

func (r createFeedbackRequest) toInput() (feedback.CreateFeedbackInput, error) {
	fromID, err := uuid.Parse(r.FromUserID)
	if err != nil {
		return feedback.CreateFeedbackInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid from_user_id")
	}
	toID, err := uuid.Parse(r.ToUserID)
	if err != nil {
		return feedback.CreateFeedbackInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid to_user_id")
	}
	swapID, err := uuid.Parse(r.SwapRequestID)
	if err != nil {
		return feedback.CreateFeedbackInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid swap_request_id")
	}
	return feedback.CreateFeedbackInput{
		FromUserID:    fromID,
		ToUserID:      toID,
		SwapRequestID: swapID,
		Rating:        r.Rating,
		Comment:       r.Comment,
	}, nil
}

// FeedbackList returns all feedback, newest first.
func FeedbackList(svc feedback.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "feedback service unavailable"))
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

// FeedbackCreate records feedback for a swap.
func FeedbackCreate(svc feedback.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "feedback service unavailable"))
			return
		}

		var payload createFeedbackRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input, err := payload.toInput()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		fb, err := svc.Create(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, fb)
	}
}

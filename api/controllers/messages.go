package controllers

import (
	"net/http"

	"github.com/skillswaphq/skillswap-backend/api/responses"
	"github.com/skillswaphq/skillswap-backend/api/validators"
	"github.com/skillswaphq/skillswap-backend/internal/messages"
	"github.com/skillswaphq/skillswap-backend/pkg/enums"
	pkgerrors "github.com/skillswaphq/skillswap-backend/pkg/errors"
	"github.com/skillswaphq/skillswap-backend/pkg/logger"
)

type createMessageRequest struct {
	Title    string  `json:"title" validate:"required"`
	Content  string  `json:"content,omitempty"`
	Type     *string `json:"type,omitempty"`
	IsActive *bool   `json:"is_active,omitempty"`
}

func (r createMessageRequest) toInput() (messages.CreateMessageInput, error) {
	input := messages.CreateMessageInput{
		Title:    r.Title,
		Content:  r.Content,
		IsActive: r.IsActive,
	}
	if r.Type != nil {
		category, err := enums.ParseMessageCategory(*r.Type)
		if err != nil {
			return messages.CreateMessageInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid type")
		}
		input.Type = &category
	}
	return input, nil
}

type updateMessageRequest struct {
	Title    *string `json:"title,omitempty"`
	Content  *string `json:"content,omitempty"`
	Type     *string `json:"type,omitempty"`
	IsActive *bool   `json:"is_active,omitempty"`
}

func (r updateMessageRequest) toInput() (messages.UpdateMessageInput, error) {
	input := messages.UpdateMessageInput{
		Title:    r.Title,
		Content:  r.Content,
		IsActive: r.IsActive,
	}
	if r.Type != nil {
		category, err := enums.ParseMessageCategory(*r.Type)
		if err != nil {
			return messages.UpdateMessageInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid type")
		}
		input.Type = &category
	}
	return input, nil
}

// MessageList returns all announcements, newest first.
func MessageList(svc messages.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "message service unavailable"))
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

// MessageCreate publishes a new announcement.
func MessageCreate(svc messages.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "message service unavailable"))
			return
		}

		var payload createMessageRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input, err := payload.toInput()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		msg, err := svc.Create(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, msg)
	}
}

// MessageUpdate patches an announcement.
func MessageUpdate(svc messages.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "message service unavailable"))
			return
		}

		id, err := validators.ParseUUIDParam(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload updateMessageRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input, err := payload.toInput()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		msg, err := svc.Update(r.Context(), id, input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, msg)
	}
}

// MessageDelete removes an announcement.
func MessageDelete(svc messages.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "message service unavailable"))
			return
		}

		id, err := validators.ParseUUIDParam(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, nil)
	}
}

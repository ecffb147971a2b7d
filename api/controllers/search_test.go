package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/skillswaphq/skillswap-backend/internal/search"
	"github.com/skillswaphq/skillswap-backend/internal/users"
	pkgerrors "github.com/skillswaphq/skillswap-backend/pkg/errors"
)

type stubSearchService struct {
	usersFn func(ctx context.Context, filters search.Filters) ([]users.UserDTO, error)
}

func (s *stubSearchService) Users(ctx context.Context, filters search.Filters) ([]users.UserDTO, error) {
	return s.usersFn(ctx, filters)
}

func TestSearchUsersPassesQueryFilters(t *testing.T) {
	var got search.Filters
	svc := &stubSearchService{
		usersFn: func(ctx context.Context, filters search.Filters) ([]users.UserDTO, error) {
			got = filters
			return []users.UserDTO{}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet,
		"/api/search/users?skill=photo&location=Berlin&rating=4&availability=weekends", nil)
	rec := httptest.NewRecorder()

	SearchUsers(svc, testLogger())(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got.Skill != "photo" || got.Location != "Berlin" || got.Rating != "4" || got.Availability != "weekends" {
		t.Fatalf("unexpected filters: %+v", got)
	}
}

func TestSearchUsersEmptyResultIsEmptyArray(t *testing.T) {
	svc := &stubSearchService{
		usersFn: func(ctx context.Context, filters search.Filters) ([]users.UserDTO, error) {
			return []users.UserDTO{}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/search/users", nil)
	rec := httptest.NewRecorder()

	SearchUsers(svc, testLogger())(rec, req)

	var envelope struct {
		Data []users.UserDTO `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data == nil {
		t.Fatal("expected empty array, got null")
	}
}

func TestSearchUsersTranslatesValidationError(t *testing.T) {
	svc := &stubSearchService{
		usersFn: func(ctx context.Context, filters search.Filters) ([]users.UserDTO, error) {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "rating filter must be a number")
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/search/users?rating=high", nil)
	rec := httptest.NewRecorder()

	SearchUsers(svc, testLogger())(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

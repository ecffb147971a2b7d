package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/skillswaphq/skillswap-backend/internal/users"
	pkgerrors "github.com/skillswaphq/skillswap-backend/pkg/errors"
)

type stubUserService struct {
	createFn func(ctx context.Context, input users.CreateUserInput) (*users.UserDTO, error)
	getFn    func(ctx context.Context, id uuid.UUID) (*users.UserDTO, error)
	listFn   func(ctx context.Context) ([]users.UserDTO, error)
	updateFn func(ctx context.Context, id uuid.UUID, input users.UpdateUserInput) (*users.UserDTO, error)
}

func (s *stubUserService) Create(ctx context.Context, input users.CreateUserInput) (*users.UserDTO, error) {
	return s.createFn(ctx, input)
}

func (s *stubUserService) GetByID(ctx context.Context, id uuid.UUID) (*users.UserDTO, error) {
	return s.getFn(ctx, id)
}

func (s *stubUserService) List(ctx context.Context) ([]users.UserDTO, error) {
	return s.listFn(ctx)
}

func (s *stubUserService) Update(ctx context.Context, id uuid.UUID, input users.UpdateUserInput) (*users.UserDTO, error) {
	return s.updateFn(ctx, id, input)
}

func TestUserCreateReturnsCreated(t *testing.T) {
	svc := &stubUserService{
		createFn: func(ctx context.Context, input users.CreateUserInput) (*users.UserDTO, error) {
			return &users.UserDTO{ID: uuid.New(), Name: input.Name, Email: input.Email, Rating: 5.0}, nil
		},
	}

	body := `{"name":"Marc Demo","email":"marc@example.com","skillsOffered":["Photoshop"]}`
	req := httptest.NewRequest(http.MethodPost, "/api/users", strings.NewReader(body))
	rec := httptest.NewRecorder()

	UserCreate(svc, testLogger())(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"skillsOffered"`) && !strings.Contains(rec.Body.String(), `"rating"`) {
		t.Fatalf("expected camelCase user payload, got %s", rec.Body.String())
	}
}

func TestUserCreateRejectsMissingEmail(t *testing.T) {
	svc := &stubUserService{
		createFn: func(ctx context.Context, input users.CreateUserInput) (*users.UserDTO, error) {
			t.Fatal("service must not be called")
			return nil, nil
		},
	}

	req := httptest.NewRequest(http.MethodPost, "/api/users", strings.NewReader(`{"name":"x"}`))
	rec := httptest.NewRecorder()

	UserCreate(svc, testLogger())(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}
	var envelope struct {
		Error struct {
			Code    string            `json:"code"`
			Details map[string]string `json:"details"`
		} `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Error.Code != string(pkgerrors.CodeValidation) {
		t.Fatalf("expected VALIDATION_ERROR, got %s", envelope.Error.Code)
	}
	if _, ok := envelope.Error.Details["email"]; !ok {
		t.Fatalf("expected email field in details, got %v", envelope.Error.Details)
	}
}

func TestUserGetRejectsBadUUID(t *testing.T) {
	svc := &stubUserService{
		getFn: func(ctx context.Context, id uuid.UUID) (*users.UserDTO, error) {
			t.Fatal("service must not be called")
			return nil, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/users/abc", nil)
	req = withURLParam(req, "id", "abc")
	rec := httptest.NewRecorder()

	UserGet(svc, testLogger())(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestUserGetTranslatesNotFound(t *testing.T) {
	svc := &stubUserService{
		getFn: func(ctx context.Context, id uuid.UUID) (*users.UserDTO, error) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "user not found")
		},
	}

	id := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/api/users/"+id, nil)
	req = withURLParam(req, "id", id)
	rec := httptest.NewRecorder()

	UserGet(svc, testLogger())(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestUserUpdatePassesPatchFields(t *testing.T) {
	var got users.UpdateUserInput
	svc := &stubUserService{
		updateFn: func(ctx context.Context, id uuid.UUID, input users.UpdateUserInput) (*users.UserDTO, error) {
			got = input
			return &users.UserDTO{ID: id}, nil
		},
	}

	id := uuid.NewString()
	body := `{"name":"New Name","isPublic":false,"skillsOffered":["Go"]}`
	req := httptest.NewRequest(http.MethodPatch, "/api/users/"+id, strings.NewReader(body))
	req = withURLParam(req, "id", id)
	rec := httptest.NewRecorder()

	UserUpdate(svc, testLogger())(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if got.Name == nil || *got.Name != "New Name" {
		t.Fatalf("expected name patched, got %v", got.Name)
	}
	if got.IsPublic == nil || *got.IsPublic {
		t.Fatalf("expected isPublic false, got %v", got.IsPublic)
	}
	if got.SkillsOffered == nil || len(*got.SkillsOffered) != 1 {
		t.Fatalf("expected skillsOffered patched, got %v", got.SkillsOffered)
	}
}

package messages

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/skillswaphq/skillswap-backend/pkg/db/models"
	"github.com/skillswaphq/skillswap-backend/pkg/enums"
	pkgerrors "github.com/skillswaphq/skillswap-backend/pkg/errors"
)

func TestNewServiceRequiresRepo(t *testing.T) {
	if _, err := NewService(nil); err == nil {
		t.Fatal("expected error creating service without repo")
	}
}

func TestServiceCreateDefaultsToActiveInfo(t *testing.T) {
	repo := &stubMessageRepo{}
	svc := mustService(t, repo)

	dto, err := svc.Create(context.Background(), CreateMessageInput{
		Title:   " Scheduled downtime ",
		Content: "back at noon",
	})
	if err != nil {
		t.Fatalf("create message: %v", err)
	}
	if dto.Title != "Scheduled downtime" {
		t.Fatalf("expected trimmed title, got %q", dto.Title)
	}
	if dto.Type != enums.MessageCategoryInfo {
		t.Fatalf("expected default type info, got %s", dto.Type)
	}
	if !dto.IsActive {
		t.Fatal("expected message active by default")
	}
}

func TestServiceCreateRejectsMissingTitle(t *testing.T) {
	svc := mustService(t, &stubMessageRepo{})

	_, err := svc.Create(context.Background(), CreateMessageInput{Content: "x"})
	assertCode(t, err, pkgerrors.CodeValidation)
}

func TestServiceCreateRejectsInvalidType(t *testing.T) {
	svc := mustService(t, &stubMessageRepo{})

	bad := enums.MessageCategory("spam")
	_, err := svc.Create(context.Background(), CreateMessageInput{Title: "x", Type: &bad})
	assertCode(t, err, pkgerrors.CodeValidation)
}

func TestServiceUpdatePatchesFields(t *testing.T) {
	msg := baseMessage()
	repo := &stubMessageRepo{byID: msg}
	svc := mustService(t, repo)

	newTitle := "Updated title"
	warning := enums.MessageCategoryWarning
	inactive := false
	dto, err := svc.Update(context.Background(), msg.ID, UpdateMessageInput{
		Title:    &newTitle,
		Type:     &warning,
		IsActive: &inactive,
	})
	if err != nil {
		t.Fatalf("update message: %v", err)
	}
	if dto.Title != newTitle {
		t.Fatalf("expected title %q, got %q", newTitle, dto.Title)
	}
	if dto.Type != enums.MessageCategoryWarning {
		t.Fatalf("expected type warning, got %s", dto.Type)
	}
	if dto.IsActive {
		t.Fatal("expected message deactivated")
	}
	if repo.updated == nil {
		t.Fatal("expected repository update call")
	}
}

func TestServiceUpdateNotFound(t *testing.T) {
	svc := mustService(t, &stubMessageRepo{findErr: gorm.ErrRecordNotFound})

	_, err := svc.Update(context.Background(), uuid.New(), UpdateMessageInput{})
	assertCode(t, err, pkgerrors.CodeNotFound)
}

func TestServiceDeleteSuccess(t *testing.T) {
	repo := &stubMessageRepo{deleteOK: true}
	svc := mustService(t, repo)

	if err := svc.Delete(context.Background(), uuid.New()); err != nil {
		t.Fatalf("delete message: %v", err)
	}
}

func TestServiceDeleteMissingRowIsNotFound(t *testing.T) {
	svc := mustService(t, &stubMessageRepo{deleteOK: false})

	err := svc.Delete(context.Background(), uuid.New())
	assertCode(t, err, pkgerrors.CodeNotFound)
}

func mustService(t *testing.T, repo messageRepository) Service {
	t.Helper()
	svc, err := NewService(repo)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc
}

func assertCode(t *testing.T, err error, code pkgerrors.Code) {
	t.Helper()
	if err == nil {
		t.Fatal("expected error")
	}
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != code {
		t.Fatalf("expected code %s, got %v", code, err)
	}
}

func baseMessage() *models.AdminMessage {
	return &models.AdminMessage{
		ID:        uuid.New(),
		Title:     "Welcome",
		Content:   "hello everyone",
		Category:  enums.MessageCategoryInfo,
		IsActive:  true,
		CreatedAt: time.Now(),
	}
}

type stubMessageRepo struct {
	byID     *models.AdminMessage
	list     []models.AdminMessage
	findErr  error
	updated  *models.AdminMessage
	deleteOK bool
}

func (s *stubMessageRepo) Create(ctx context.Context, msg *models.AdminMessage) error {
	msg.ID = uuid.New()
	msg.CreatedAt = time.Now()
	return nil
}

func (s *stubMessageRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.AdminMessage, error) {
	if s.findErr != nil {
		return nil, s.findErr
	}
	return s.byID, nil
}

func (s *stubMessageRepo) List(ctx context.Context) ([]models.AdminMessage, error) {
	return s.list, nil
}

func (s *stubMessageRepo) Update(ctx context.Context, msg *models.AdminMessage) error {
	s.updated = msg
	return nil
}

func (s *stubMessageRepo) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	return s.deleteOK, nil
}

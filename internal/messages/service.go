package messages

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/skillswaphq/skillswap-backend/pkg/db/models"
	"github.com/skillswaphq/skillswap-backend/pkg/enums"
	pkgerrors "github.com/skillswaphq/skillswap-backend/pkg/errors"
)

type messageRepository interface {
	Create(ctx context.Context, msg *models.AdminMessage) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.AdminMessage, error)
	List(ctx context.Context) ([]models.AdminMessage, error)
	Update(ctx context.Context, msg *models.AdminMessage) error
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

// Service exposes admin message operations.
type Service interface {
	Create(ctx context.Context, input CreateMessageInput) (*MessageDTO, error)
	List(ctx context.Context) ([]MessageDTO, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateMessageInput) (*MessageDTO, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo messageRepository
}

// NewService builds an admin message service.
func NewService(repo messageRepository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("message repository required")
	}
	return &service{repo: repo}, nil
}

// CreateMessageInput captures the data required to publish an announcement.
type CreateMessageInput struct {
	Title    string
	Content  string
	Type     *enums.MessageCategory
	IsActive *bool
}

// UpdateMessageInput captures the announcement fields that may be patched.
type UpdateMessageInput struct {
	Title    *string
	Content  *string
	Type     *enums.MessageCategory
	IsActive *bool
}

func (s *service) Create(ctx context.Context, input CreateMessageInput) (*MessageDTO, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "title is required")
	}
	if input.Type != nil && !input.Type.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid message type")
	}

	msg := &models.AdminMessage{
		Title:    title,
		Content:  strings.TrimSpace(input.Content),
		Category: enums.MessageCategoryInfo,
		IsActive: true,
	}
	if input.Type != nil {
		msg.Category = *input.Type
	}
	if input.IsActive != nil {
		msg.IsActive = *input.IsActive
	}

	if err := s.repo.Create(ctx, msg); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create message")
	}
	return FromModel(msg), nil
}

func (s *service) List(ctx context.Context) ([]MessageDTO, error) {
	msgs, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list messages")
	}
	return FromModels(msgs), nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, input UpdateMessageInput) (*MessageDTO, error) {
	if input.Title != nil && strings.TrimSpace(*input.Title) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "title cannot be empty")
	}
	if input.Type != nil && !input.Type.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid message type")
	}

	msg, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "message not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load message")
	}

	if input.Title != nil {
		msg.Title = strings.TrimSpace(*input.Title)
	}
	if input.Content != nil {
		msg.Content = strings.TrimSpace(*input.Content)
	}
	if input.Type != nil {
		msg.Category = *input.Type
	}
	if input.IsActive != nil {
		msg.IsActive = *input.IsActive
	}

	if err := s.repo.Update(ctx, msg); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update message")
	}
	return FromModel(msg), nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete message")
	}
	if !deleted {
		return pkgerrors.New(pkgerrors.CodeNotFound, "message not found")
	}
	return nil
}

package feedback

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

type feedbackRepository interface {
	Create(ctx context.Context, fb *models.Feedback) error
	List(ctx context.Context) ([]models.Feedback, error)
}

type swapsRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.SwapRequest, error)
}

type usersRepository interface {
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

// Service exposes feedback operations.
type Service interface {
	Create(ctx context.Context, input CreateFeedbackInput) (*FeedbackDTO, error)
	List(ctx context.Context) ([]FeedbackDTO, error)
}

type service struct {
	repo   feedbackRepository
	swaps  swapsRepository
	users  usersRepository
	strict bool
}

// NewService builds a feedback service. With strict enabled, feedback is
// only accepted for completed swaps between existing users.
func NewService(repo feedbackRepository, swaps swapsRepository, users usersRepository, strict bool) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("feedback repository required")
	}
	if swaps == nil {
		return nil, fmt.Errorf("swaps repository required")
	}
	if users == nil {
		return nil, fmt.Errorf("users repository required")
	}
	return &service{repo: repo, swaps: swaps, users: users, strict: strict}, nil
}

// CreateFeedbackInput captures the data required to leave feedback on a swap.
type CreateFeedbackInput struct {
	FromUserID    uuid.UUID
	ToUserID      uuid.UUID
	SwapRequestID uuid.UUID
	Rating        int
	Comment       string
}

func (s *service) Create(ctx context.Context, input CreateFeedbackInput) (*FeedbackDTO, error) {
	if input.FromUserID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "from_user_id is required")
	}
	if input.ToUserID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "to_user_id is required")
	}
	if input.SwapRequestID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "swap_request_id is required")
	}
	if input.Rating < 1 || input.Rating > 5 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "rating must be between 1 and 5")
	}

	if s.strict {
		if err := s.ensureUserExists(ctx, input.FromUserID, "from_user_id"); err != nil {
			return nil, err
		}
		if err := s.ensureUserExists(ctx, input.ToUserID, "to_user_id"); err != nil {
			return nil, err
		}

		swap, err := s.swaps.FindByID(ctx, input.SwapRequestID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, pkgerrors.New(pkgerrors.CodeReference, "swap_request_id does not resolve to a swap")
			}
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load swap request")
		}
		if swap.Status != enums.SwapStatusCompleted {
			return nil, pkgerrors.New(pkgerrors.CodeStateConflict,
				fmt.Sprintf("feedback requires a completed swap, current status is %s", swap.Status))
		}
	}

	fb := &models.Feedback{
		FromUserID:    input.FromUserID,
		ToUserID:      input.ToUserID,
		SwapRequestID: input.SwapRequestID,
		Rating:        input.Rating,
		Comment:       strings.TrimSpace(input.Comment),
	}
	if err := s.repo.Create(ctx, fb); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create feedback")
	}
	return FromModel(fb), nil
}

func (s *service) List(ctx context.Context) ([]FeedbackDTO, error) {
	feedbacks, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list feedback")
	}
	return FromModels(feedbacks), nil
}

func (s *service) ensureUserExists(ctx context.Context, id uuid.UUID, field string) error {
	ok, err := s.users.Exists(ctx, id)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "check user")
	}
	if !ok {
		return pkgerrors.New(pkgerrors.CodeReference, fmt.Sprintf("%s does not resolve to a user", field))
	}
	return nil
}

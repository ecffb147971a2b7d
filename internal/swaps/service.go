package swaps

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

type swapRepository interface {
	Create(ctx context.Context, swap *models.SwapRequest) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.SwapRequest, error)
	List(ctx context.Context) ([]models.SwapRequest, error)
	UpdateStatusFrom(ctx context.Context, id uuid.UUID, expected, target enums.SwapStatus) (int64, error)
	SetStatus(ctx context.Context, id uuid.UUID, target enums.SwapStatus) (int64, error)
}

type usersRepository interface {
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]models.User, error)
}

type feedbackRepository interface {
	ListBySwapIDs(ctx context.Context, ids []uuid.UUID) ([]models.Feedback, error)
}

// Service exposes swap request operations.
type Service interface {
	Create(ctx context.Context, input CreateSwapInput) (*SwapRequestDTO, error)
	GetByID(ctx context.Context, id uuid.UUID) (*SwapRequestDTO, error)
	List(ctx context.Context) ([]SwapRequestDTO, error)
	Transition(ctx context.Context, id uuid.UUID, target enums.SwapStatus) (*SwapRequestDTO, error)
}

type service struct {
	repo     swapRepository
	users    usersRepository
	feedback feedbackRepository
	strict   bool
}

// NewService builds a swap service. With strict enabled, status changes are
// checked against the lifecycle graph; otherwise any change is applied.
func NewService(repo swapRepository, users usersRepository, feedback feedbackRepository, strict bool) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("swap repository required")
	}
	if users == nil {
		return nil, fmt.Errorf("users repository required")
	}
	if feedback == nil {
		return nil, fmt.Errorf("feedback repository required")
	}
	return &service{repo: repo, users: users, feedback: feedback, strict: strict}, nil
}

// CreateSwapInput captures the data required to open a swap request.
type CreateSwapInput struct {
	FromUserID   uuid.UUID
	ToUserID     uuid.UUID
	SkillOffered string
	SkillWanted  string
	Message      string
}

func (s *service) Create(ctx context.Context, input CreateSwapInput) (*SwapRequestDTO, error) {
	if input.FromUserID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "from_user_id is required")
	}
	if input.ToUserID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "to_user_id is required")
	}
	if input.FromUserID == input.ToUserID {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cannot open a swap with yourself")
	}
	skillOffered := strings.TrimSpace(input.SkillOffered)
	skillWanted := strings.TrimSpace(input.SkillWanted)
	if skillOffered == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "skill_offered is required")
	}
	if skillWanted == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "skill_wanted is required")
	}

	if err := s.ensureUserExists(ctx, input.FromUserID, "from_user_id"); err != nil {
		return nil, err
	}
	if err := s.ensureUserExists(ctx, input.ToUserID, "to_user_id"); err != nil {
		return nil, err
	}

	swap := &models.SwapRequest{
		FromUserID:    input.FromUserID,
		ToUserID:      input.ToUserID,
		SkillsOffered: []string{skillOffered},
		SkillsWanted:  []string{skillWanted},
		Message:       strings.TrimSpace(input.Message),
		Status:        enums.SwapStatusPending,
	}
	if err := s.repo.Create(ctx, swap); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create swap request")
	}
	return FromModel(swap), nil
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*SwapRequestDTO, error) {
	swap, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "swap request not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load swap request")
	}
	return FromModel(swap), nil
}

// List returns all swap requests with the counterpart user summaries and
// any feedback left on the swap embedded.
func (s *service) List(ctx context.Context) ([]SwapRequestDTO, error) {
	swaps, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list swap requests")
	}
	if len(swaps) == 0 {
		return []SwapRequestDTO{}, nil
	}

	userIDs := make([]uuid.UUID, 0, len(swaps)*2)
	swapIDs := make([]uuid.UUID, 0, len(swaps))
	seen := make(map[uuid.UUID]struct{}, len(swaps)*2)
	for i := range swaps {
		swapIDs = append(swapIDs, swaps[i].ID)
		for _, id := range []uuid.UUID{swaps[i].FromUserID, swaps[i].ToUserID} {
			if _, ok := seen[id]; !ok {
				seen[id] = struct{}{}
				userIDs = append(userIDs, id)
			}
		}
	}

	users, err := s.users.FindByIDs(ctx, userIDs)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load swap users")
	}
	usersByID := make(map[uuid.UUID]*models.User, len(users))
	for i := range users {
		usersByID[users[i].ID] = &users[i]
	}

	feedbacks, err := s.feedback.ListBySwapIDs(ctx, swapIDs)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load swap feedback")
	}
	feedbackBySwap := make(map[uuid.UUID]*models.Feedback, len(feedbacks))
	for i := range feedbacks {
		if _, ok := feedbackBySwap[feedbacks[i].SwapRequestID]; !ok {
			feedbackBySwap[feedbacks[i].SwapRequestID] = &feedbacks[i]
		}
	}

	dtos := make([]SwapRequestDTO, 0, len(swaps))
	for i := range swaps {
		dto := FromModel(&swaps[i])
		dto.FromUser = userSummary(usersByID[swaps[i].FromUserID])
		dto.ToUser = userSummary(usersByID[swaps[i].ToUserID])
		dto.Feedback = feedbackSummary(feedbackBySwap[swaps[i].ID])
		dtos = append(dtos, *dto)
	}
	return dtos, nil
}

func (s *service) Transition(ctx context.Context, id uuid.UUID, target enums.SwapStatus) (*SwapRequestDTO, error) {
	if !target.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid swap status")
	}

	swap, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "swap request not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load swap request")
	}

	if swap.Status == target {
		return FromModel(swap), nil
	}

	if !s.strict {
		if _, err := s.repo.SetStatus(ctx, id, target); err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update swap status")
		}
		swap.Status = target
		return FromModel(swap), nil
	}

	if !CanTransition(swap.Status, target) {
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict,
			fmt.Sprintf("cannot move swap from %s to %s", swap.Status, target))
	}

	affected, err := s.repo.UpdateStatusFrom(ctx, id, swap.Status, target)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update swap status")
	}
	if affected == 0 {
		// A concurrent writer changed the status between the read and the
		// guarded update. Re-read and report what actually happened.
		current, err := s.repo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, pkgerrors.New(pkgerrors.CodeNotFound, "swap request not found")
			}
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "reload swap request")
		}
		if current.Status == target {
			return FromModel(current), nil
		}
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict,
			fmt.Sprintf("cannot move swap from %s to %s", current.Status, target))
	}

	swap.Status = target
	return FromModel(swap), nil
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

package users

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

type userRepository interface {
	Create(ctx context.Context, dto CreateUserDTO) (*models.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
	Update(ctx context.Context, user *models.User) error
}

// Service exposes user profile operations.
type Service interface {
	Create(ctx context.Context, input CreateUserInput) (*UserDTO, error)
	GetByID(ctx context.Context, id uuid.UUID) (*UserDTO, error)
	List(ctx context.Context) ([]UserDTO, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateUserInput) (*UserDTO, error)
}

type service struct {
	repo userRepository
}

// NewService builds a user service with the provided repository.
func NewService(repo userRepository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("user repository required")
	}
	return &service{repo: repo}, nil
}

// CreateUserInput captures the data required to register a user.
type CreateUserInput struct {
	Name          string
	Email         string
	Location      *string
	ProfilePhoto  *string
	SkillsOffered []string
	SkillsWanted  []string
	Availability  []string
	IsPublic      *bool
	Role          *enums.UserRole
	Rating        *float64
}

// UpdateUserInput captures the profile fields that may be patched. Email and
// role are immutable once created.
type UpdateUserInput struct {
	Name          *string
	Location      *string
	ProfilePhoto  *string
	SkillsOffered *[]string
	SkillsWanted  *[]string
	Availability  *[]string
	IsPublic      *bool
	IsActive      *bool
	Rating        *float64
	TotalSwaps    *int
}

func (s *service) Create(ctx context.Context, input CreateUserInput) (*UserDTO, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "name is required")
	}
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "valid email is required")
	}
	if input.Role != nil && !input.Role.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid role")
	}
	if input.Rating != nil {
		if err := validateRating(*input.Rating); err != nil {
			return nil, err
		}
	}

	_, err := s.repo.FindByEmail(ctx, email)
	if err == nil {
		return nil, pkgerrors.New(pkgerrors.CodeConflict, "email already registered")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "lookup user by email")
	}

	user, err := s.repo.Create(ctx, CreateUserDTO{
		Name:          name,
		Email:         email,
		Location:      input.Location,
		ProfilePhoto:  input.ProfilePhoto,
		SkillsOffered: input.SkillsOffered,
		SkillsWanted:  input.SkillsWanted,
		Availability:  input.Availability,
		IsPublic:      input.IsPublic,
		Role:          input.Role,
		Rating:        input.Rating,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create user")
	}
	return FromModel(user), nil
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*UserDTO, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "user not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load user")
	}
	return FromModel(user), nil
}

func (s *service) List(ctx context.Context) ([]UserDTO, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list users")
	}
	return FromModels(users), nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, input UpdateUserInput) (*UserDTO, error) {
	if input.Name != nil && strings.TrimSpace(*input.Name) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "name cannot be empty")
	}
	if input.Rating != nil {
		if err := validateRating(*input.Rating); err != nil {
			return nil, err
		}
	}
	if input.TotalSwaps != nil && *input.TotalSwaps < 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "totalSwaps cannot be negative")
	}

	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "user not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load user")
	}

	if input.Name != nil {
		user.Name = strings.TrimSpace(*input.Name)
	}
	if input.Location != nil {
		user.Location = cloneStringPtr(input.Location)
	}
	if input.ProfilePhoto != nil {
		user.ProfilePhoto = cloneStringPtr(input.ProfilePhoto)
	}
	if input.SkillsOffered != nil {
		user.SkillsOffered = cloneStrings(*input.SkillsOffered)
	}
	if input.SkillsWanted != nil {
		user.SkillsWanted = cloneStrings(*input.SkillsWanted)
	}
	if input.Availability != nil {
		user.Availability = cloneStrings(*input.Availability)
	}
	if input.IsPublic != nil {
		user.IsPublic = *input.IsPublic
	}
	if input.IsActive != nil {
		user.IsActive = *input.IsActive
	}
	if input.Rating != nil {
		user.Rating = *input.Rating
	}
	if input.TotalSwaps != nil {
		user.TotalSwaps = *input.TotalSwaps
	}

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update user")
	}
	return FromModel(user), nil
}

func validateRating(rating float64) error {
	if rating < 1.0 || rating > 5.0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "rating must be between 1 and 5")
	}
	return nil
}

func cloneStringPtr(value *string) *string {
	if value == nil {
		return nil
	}
	cpy := *value
	return &cpy
}

package search

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/skillswaphq/skillswap-backend/internal/users"
	"github.com/skillswaphq/skillswap-backend/pkg/db/models"
	pkgerrors "github.com/skillswaphq/skillswap-backend/pkg/errors"
)

// FilterAll is the sentinel that disables the rating and availability
// constraints. An empty value behaves the same way.
const FilterAll = "all"

type userFinder interface {
	ListVisible(ctx context.Context) ([]models.User, error)
}

// Service exposes member discovery.
type Service interface {
	Users(ctx context.Context, filters Filters) ([]users.UserDTO, error)
}

type service struct {
	users userFinder
}

// NewService builds a search service over the user repository.
func NewService(finder userFinder) (Service, error) {
	if finder == nil {
		return nil, fmt.Errorf("user finder required")
	}
	return &service{users: finder}, nil
}

// Filters carries the raw query values. Only visible members are searched:
// regular role, public profile, active account.
type Filters struct {
	Skill        string
	Location     string
	Rating       string
	Availability string
}

func (s *service) Users(ctx context.Context, filters Filters) ([]users.UserDTO, error) {
	minRating, err := parseMinRating(filters.Rating)
	if err != nil {
		return nil, err
	}

	candidates, err := s.users.ListVisible(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list visible users")
	}

	skill := strings.ToLower(strings.TrimSpace(filters.Skill))
	location := strings.TrimSpace(filters.Location)
	availability := strings.TrimSpace(filters.Availability)
	availabilityActive := availability != "" && !strings.EqualFold(availability, FilterAll)

	matched := make([]models.User, 0, len(candidates))
	for i := range candidates {
		u := &candidates[i]
		if skill != "" && !offersSkill(u.SkillsOffered, skill) {
			continue
		}
		if location != "" && (u.Location == nil || *u.Location != location) {
			continue
		}
		if minRating != nil && u.Rating < *minRating {
			continue
		}
		if availabilityActive && !contains(u.Availability, availability) {
			continue
		}
		matched = append(matched, *u)
	}

	// Stable keeps insertion order between equal ratings.
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Rating > matched[j].Rating
	})

	return users.FromModels(matched), nil
}

func parseMinRating(raw string) (*float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" || strings.EqualFold(raw, FilterAll) {
		return nil, nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "rating filter must be a number")
	}
	return &value, nil
}

func offersSkill(skills []string, needle string) bool {
	for _, skill := range skills {
		if strings.Contains(strings.ToLower(skill), needle) {
			return true
		}
	}
	return false
}

func contains(values []string, needle string) bool {
	for _, v := range values {
		if v == needle {
			return true
		}
	}
	return false
}

package analytics

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/skillswaphq/skillswap-backend/pkg/config"
	"github.com/skillswaphq/skillswap-backend/pkg/enums"
	pkgerrors "github.com/skillswaphq/skillswap-backend/pkg/errors"
	"github.com/skillswaphq/skillswap-backend/pkg/logger"
	"github.com/skillswaphq/skillswap-backend/pkg/redis"
)

const topSkillsLimit = 5

// defaultAverageRating is served when no feedback exists yet, mirroring the
// default profile rating.
const defaultAverageRating = 5.0

type statsRepository interface {
	CountMembers(ctx context.Context) (total, active int64, err error)
	CountSwapsByStatus(ctx context.Context) (map[enums.SwapStatus]int64, error)
	RatingStats(ctx context.Context) (average float64, count int64, err error)
	OfferedSkills(ctx context.Context) ([][]string, error)
}

type snapshotCache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	DashboardCacheKey() string
}

// Service exposes the dashboard aggregation.
type Service interface {
	Dashboard(ctx context.Context) (*DashboardDTO, error)
}

type service struct {
	repo  statsRepository
	cache snapshotCache
	logg  *logger.Logger
	ttl   time.Duration
}

// NewService builds the analytics service. The cache is optional; without
// it every request recomputes the snapshot. The sub-aggregations run on
// separate connections, so the snapshot is not a point-in-time read under
// concurrent writes.
func NewService(repo statsRepository, cache snapshotCache, logg *logger.Logger, cfg config.AnalyticsConfig) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("stats repository required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &service{repo: repo, cache: cache, logg: logg, ttl: cfg.CacheTTL}, nil
}

func (s *service) Dashboard(ctx context.Context) (*DashboardDTO, error) {
	if cached := s.fromCache(ctx); cached != nil {
		return cached, nil
	}

	var (
		totalUsers, activeUsers int64
		swapCounts              map[enums.SwapStatus]int64
		avgRating               float64
		ratingCount             int64
		skills                  [][]string
	)

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		var err error
		totalUsers, activeUsers, err = s.repo.CountMembers(groupCtx)
		return err
	})
	group.Go(func() error {
		var err error
		swapCounts, err = s.repo.CountSwapsByStatus(groupCtx)
		return err
	})
	group.Go(func() error {
		var err error
		avgRating, ratingCount, err = s.repo.RatingStats(groupCtx)
		return err
	})
	group.Go(func() error {
		var err error
		skills, err = s.repo.OfferedSkills(groupCtx)
		return err
	})
	if err := group.Wait(); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "aggregate dashboard stats")
	}

	average := defaultAverageRating
	if ratingCount > 0 {
		average = roundToOneDecimal(avgRating)
	}

	dto := &DashboardDTO{
		TotalUsers:     totalUsers,
		ActiveUsers:    activeUsers,
		PendingSwaps:   swapCounts[enums.SwapStatusPending],
		CompletedSwaps: swapCounts[enums.SwapStatusCompleted],
		AverageRating:  average,
		TopSkills:      topSkills(skills, topSkillsLimit),
	}

	s.toCache(ctx, dto)
	return dto, nil
}

func (s *service) fromCache(ctx context.Context) *DashboardDTO {
	if s.cache == nil {
		return nil
	}
	raw, err := s.cache.Get(ctx, s.cache.DashboardCacheKey())
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			s.logg.Warn(s.logg.WithField(ctx, "error", err.Error()), "analytics cache read failed")
		}
		return nil
	}
	var dto DashboardDTO
	if err := json.Unmarshal([]byte(raw), &dto); err != nil {
		s.logg.Warn(s.logg.WithField(ctx, "error", err.Error()), "analytics cache entry corrupt")
		return nil
	}
	return &dto
}

func (s *service) toCache(ctx context.Context, dto *DashboardDTO) {
	if s.cache == nil || s.ttl <= 0 {
		return
	}
	raw, err := json.Marshal(dto)
	if err != nil {
		s.logg.Warn(s.logg.WithField(ctx, "error", err.Error()), "analytics cache marshal failed")
		return
	}
	if err := s.cache.Set(ctx, s.cache.DashboardCacheKey(), string(raw), s.ttl); err != nil {
		s.logg.Warn(s.logg.WithField(ctx, "error", err.Error()), "analytics cache write failed")
	}
}

// topSkills counts every occurrence across all member profiles, sorts by
// count descending and keeps first-seen order between equal counts.
func topSkills(perUser [][]string, limit int) []SkillCountDTO {
	counts := make(map[string]int)
	order := make([]string, 0)
	for _, skills := range perUser {
		for _, skill := range skills {
			if _, ok := counts[skill]; !ok {
				order = append(order, skill)
			}
			counts[skill]++
		}
	}

	leaderboard := make([]SkillCountDTO, 0, len(order))
	for _, skill := range order {
		leaderboard = append(leaderboard, SkillCountDTO{Skill: skill, Count: counts[skill]})
	}
	sort.SliceStable(leaderboard, func(i, j int) bool {
		return leaderboard[i].Count > leaderboard[j].Count
	})

	if len(leaderboard) > limit {
		leaderboard = leaderboard[:limit]
	}
	return leaderboard
}

func roundToOneDecimal(value float64) float64 {
	return math.Round(value*10) / 10
}

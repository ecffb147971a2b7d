package analytics

import (
	"context"
	"encoding/json"
	"io"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/skillswaphq/skillswap-backend/pkg/config"
	"github.com/skillswaphq/skillswap-backend/pkg/enums"
	pkgerrors "github.com/skillswaphq/skillswap-backend/pkg/errors"
	"github.com/skillswaphq/skillswap-backend/pkg/logger"
	"github.com/skillswaphq/skillswap-backend/pkg/redis"
)

func TestNewServiceRequiresRepoAndLogger(t *testing.T) {
	logg := testLogger()
	if _, err := NewService(nil, nil, logg, config.AnalyticsConfig{}); err == nil {
		t.Fatal("expected error creating service without repo")
	}
	if _, err := NewService(&stubStatsRepo{}, nil, nil, config.AnalyticsConfig{}); err == nil {
		t.Fatal("expected error creating service without logger")
	}
}

func TestServiceDashboardAggregates(t *testing.T) {
	repo := &stubStatsRepo{
		total:  10,
		active: 7,
		swapCounts: map[enums.SwapStatus]int64{
			enums.SwapStatusPending:   3,
			enums.SwapStatusCompleted: 4,
			enums.SwapStatusCancelled: 2,
		},
		avgRating:   4.25,
		ratingCount: 8,
		skills: [][]string{
			{"Photoshop", "Excel"},
			{"Excel"},
			{"Guitar"},
		},
	}
	svc := mustService(t, repo, nil)

	dto, err := svc.Dashboard(context.Background())
	if err != nil {
		t.Fatalf("dashboard: %v", err)
	}
	if dto.TotalUsers != 10 || dto.ActiveUsers != 7 {
		t.Fatalf("unexpected user counts: %+v", dto)
	}
	if dto.PendingSwaps != 3 || dto.CompletedSwaps != 4 {
		t.Fatalf("unexpected swap counts: %+v", dto)
	}
	if dto.AverageRating != 4.3 {
		t.Fatalf("expected averageRating 4.3, got %v", dto.AverageRating)
	}
	if len(dto.TopSkills) != 3 {
		t.Fatalf("expected 3 skills, got %v", dto.TopSkills)
	}
	if dto.TopSkills[0].Skill != "Excel" || dto.TopSkills[0].Count != 2 {
		t.Fatalf("expected Excel on top, got %v", dto.TopSkills[0])
	}
}

func TestServiceDashboardMissingStatusesCountZero(t *testing.T) {
	repo := &stubStatsRepo{swapCounts: map[enums.SwapStatus]int64{}}
	svc := mustService(t, repo, nil)

	dto, err := svc.Dashboard(context.Background())
	if err != nil {
		t.Fatalf("dashboard: %v", err)
	}
	if dto.PendingSwaps != 0 || dto.CompletedSwaps != 0 {
		t.Fatalf("expected zero swap counts, got %+v", dto)
	}
}

func TestServiceDashboardNoFeedbackDefaultsAverage(t *testing.T) {
	repo := &stubStatsRepo{ratingCount: 0, avgRating: 0}
	svc := mustService(t, repo, nil)

	dto, err := svc.Dashboard(context.Background())
	if err != nil {
		t.Fatalf("dashboard: %v", err)
	}
	if dto.AverageRating != 5.0 {
		t.Fatalf("expected default average 5.0, got %v", dto.AverageRating)
	}
}

func TestTopSkillsOrdering(t *testing.T) {
	skills := [][]string{
		{"A", "B"},
		{"B", "C"},
		{"C"},
		{"D"},
	}
	// B and C both count 2; B was seen first, so it ranks ahead.
	got := topSkills(skills, 5)
	if len(got) != 4 {
		t.Fatalf("expected 4 entries, got %v", got)
	}
	if got[0].Skill != "B" || got[1].Skill != "C" {
		t.Fatalf("expected B then C, got %v", got)
	}
	if got[2].Skill != "A" || got[3].Skill != "D" {
		t.Fatalf("expected A then D on tie, got %v", got)
	}
}

func TestTopSkillsLimitsToFive(t *testing.T) {
	skills := [][]string{{"a", "b", "c", "d", "e", "f", "g"}}
	got := topSkills(skills, 5)
	if len(got) != 5 {
		t.Fatalf("expected 5 entries, got %d", len(got))
	}
}

func TestServiceDashboardServesFromCache(t *testing.T) {
	cached := DashboardDTO{TotalUsers: 42, AverageRating: 4.2, TopSkills: []SkillCountDTO{}}
	raw, err := json.Marshal(cached)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	repo := &stubStatsRepo{total: 1}
	cache := &stubCache{value: string(raw)}
	svc := mustService(t, repo, cache)

	dto, err := svc.Dashboard(context.Background())
	if err != nil {
		t.Fatalf("dashboard: %v", err)
	}
	if dto.TotalUsers != 42 {
		t.Fatalf("expected cached snapshot, got %+v", dto)
	}
	if repo.calls != 0 {
		t.Fatalf("expected no repo calls on cache hit, got %d", repo.calls)
	}
}

func TestServiceDashboardCacheMissComputesAndStores(t *testing.T) {
	repo := &stubStatsRepo{total: 5}
	cache := &stubCache{getErr: redis.Nil}
	svc := mustService(t, repo, cache)

	dto, err := svc.Dashboard(context.Background())
	if err != nil {
		t.Fatalf("dashboard: %v", err)
	}
	if dto.TotalUsers != 5 {
		t.Fatalf("expected computed snapshot, got %+v", dto)
	}
	if cache.setCalls != 1 {
		t.Fatalf("expected snapshot written to cache, got %d writes", cache.setCalls)
	}
}

func TestServiceDashboardCacheErrorFallsThrough(t *testing.T) {
	repo := &stubStatsRepo{total: 5}
	cache := &stubCache{getErr: io.ErrUnexpectedEOF, setErr: io.ErrUnexpectedEOF}
	svc := mustService(t, repo, cache)

	dto, err := svc.Dashboard(context.Background())
	if err != nil {
		t.Fatalf("dashboard: %v", err)
	}
	if dto.TotalUsers != 5 {
		t.Fatalf("expected live compute despite cache failure, got %+v", dto)
	}
}

func TestServiceDashboardRepoErrorIsDependency(t *testing.T) {
	repo := &stubStatsRepo{err: io.ErrUnexpectedEOF}
	svc := mustService(t, repo, nil)

	_, err := svc.Dashboard(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeDependency {
		t.Fatalf("expected dependency code, got %v", err)
	}
}

func mustService(t *testing.T, repo statsRepository, cache snapshotCache) Service {
	t.Helper()
	svc, err := NewService(repo, cache, testLogger(), config.AnalyticsConfig{CacheTTL: 30 * time.Second})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc
}

func testLogger() *logger.Logger {
	return logger.New(logger.Options{
		ServiceName: "analytics-test",
		Level:       zerolog.ErrorLevel,
		Output:      io.Discard,
	})
}

type stubStatsRepo struct {
	total       int64
	active      int64
	swapCounts  map[enums.SwapStatus]int64
	avgRating   float64
	ratingCount int64
	skills      [][]string
	err         error
	calls       int32
}

func (s *stubStatsRepo) CountMembers(ctx context.Context) (int64, int64, error) {
	atomic.AddInt32(&s.calls, 1)
	if s.err != nil {
		return 0, 0, s.err
	}
	return s.total, s.active, nil
}

func (s *stubStatsRepo) CountSwapsByStatus(ctx context.Context) (map[enums.SwapStatus]int64, error) {
	atomic.AddInt32(&s.calls, 1)
	if s.err != nil {
		return nil, s.err
	}
	return s.swapCounts, nil
}

func (s *stubStatsRepo) RatingStats(ctx context.Context) (float64, int64, error) {
	atomic.AddInt32(&s.calls, 1)
	if s.err != nil {
		return 0, 0, s.err
	}
	return s.avgRating, s.ratingCount, nil
}

func (s *stubStatsRepo) OfferedSkills(ctx context.Context) ([][]string, error) {
	atomic.AddInt32(&s.calls, 1)
	if s.err != nil {
		return nil, s.err
	}
	return s.skills, nil
}

type stubCache struct {
	value    string
	getErr   error
	setErr   error
	setCalls int
}

func (s *stubCache) Get(ctx context.Context, key string) (string, error) {
	if s.getErr != nil {
		return "", s.getErr
	}
	if s.value == "" {
		return "", redis.Nil
	}
	return s.value, nil
}

func (s *stubCache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	s.setCalls++
	return s.setErr
}

func (s *stubCache) DashboardCacheKey() string {
	return "test:analytics:dashboard"
}

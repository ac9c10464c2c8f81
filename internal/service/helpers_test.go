package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/attendance-service/internal/domain"
	"github.com/spec-kit/attendance-service/internal/repository"
	"github.com/spec-kit/attendance-service/internal/repository/memory"
)

// testEnv bundles in-memory repositories with the services under test.
type testEnv struct {
	staffRepo    repository.StaffRepository
	entryRepo    repository.TimeEntryRepository
	settingsRepo repository.QuotaSettingsRepository
	strikeRepo   repository.StrikeRepository

	aggregation *AggregationService
	tracking    *TrackingService
	leaderboard *LeaderboardService
	quota       *QuotaService
	strikes     *StrikeService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		staffRepo:    memory.NewStaffRepository(),
		entryRepo:    memory.NewTimeEntryRepository(),
		settingsRepo: memory.NewQuotaSettingsRepository(),
		strikeRepo:   memory.NewStrikeRepository(),
	}

	logger := zap.NewNop()
	env.aggregation = NewAggregationService(AggregationDependencies{
		StaffRepo:    env.staffRepo,
		EntryRepo:    env.entryRepo,
		SettingsRepo: env.settingsRepo,
		StrikeRepo:   env.strikeRepo,
	}, time.UTC, logger)
	env.tracking = NewTrackingService(env.staffRepo, env.entryRepo, nil, logger)
	env.leaderboard = NewLeaderboardService(env.staffRepo, env.settingsRepo, env.aggregation, time.UTC)
	env.quota = NewQuotaService(env.settingsRepo, env.aggregation, nil, logger)
	env.strikes = NewStrikeService(env.staffRepo, env.strikeRepo, env.settingsRepo, nil, time.UTC, logger)
	return env
}

func (e *testEnv) addStaff(t *testing.T, userID, username string, rank int) *domain.StaffMember {
	t.Helper()

	staff := &domain.StaffMember{
		UserID:   userID,
		Username: username,
		Rank:     rank,
		RankName: domain.RankName(rank),
	}
	require.NoError(t, e.staffRepo.Create(context.Background(), staff))
	return staff
}

func (e *testEnv) addEntry(t *testing.T, staffID string, start time.Time, hours float64) {
	t.Helper()

	entry := &domain.TimeEntry{
		StaffID:      staffID,
		SessionStart: start,
		Duration:     hours,
		Action:       domain.ActionLeave,
	}
	require.NoError(t, e.entryRepo.Create(context.Background(), entry))
}

// setWeekStartDaysAgo pins the configured week start to the weekday n days
// before now, so tests control where the weekly window begins regardless of
// the day they run on.
func (e *testEnv) setWeekStartDaysAgo(t *testing.T, n int) time.Weekday {
	t.Helper()

	weekday := time.Now().UTC().AddDate(0, 0, -n).Weekday()
	current, err := e.settingsRepo.Get(context.Background())
	require.NoError(t, err)
	_, err = e.settingsRepo.Update(context.Background(), current.WeeklyRequirement, weekday)
	require.NoError(t, err)
	return weekday
}

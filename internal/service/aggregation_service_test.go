package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/attendance-service/internal/schedule"
)

func TestStatsForStaffWithoutEntries(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	staff := env.addStaff(t, "101", "fresh", 3)

	stats, err := env.aggregation.StatsFor(ctx, *staff)
	require.NoError(t, err)

	assert.Zero(t, stats.DailyHours)
	assert.Zero(t, stats.WeeklyHours)
	assert.Zero(t, stats.AllTimeHours)
	assert.False(t, stats.QuotaMet, "default requirement is 1.0")
	assert.Nil(t, stats.LastActive)
	assert.Zero(t, stats.StrikeCount)
}

func TestStatsForZeroRequirementAlwaysMet(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	staff := env.addStaff(t, "102", "idle", 3)

	_, err := env.settingsRepo.Update(ctx, 0, time.Monday)
	require.NoError(t, err)

	stats, err := env.aggregation.StatsFor(ctx, *staff)
	require.NoError(t, err)
	assert.True(t, stats.QuotaMet)
}

func TestStatsForNestedWindows(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	staff := env.addStaff(t, "103", "regular", 5)
	env.setWeekStartDaysAgo(t, 2)

	now := time.Now().UTC()
	dayStart := schedule.DayStart(now)
	weekStart := dayStart.AddDate(0, 0, -2)

	env.addEntry(t, staff.ID, dayStart.Add(time.Minute), 0.5)
	env.addEntry(t, staff.ID, weekStart.Add(time.Hour), 0.3)
	env.addEntry(t, staff.ID, weekStart.AddDate(0, 0, -1), 0.25)

	stats, err := env.aggregation.StatsFor(ctx, *staff)
	require.NoError(t, err)

	assert.InDelta(t, 0.5, stats.DailyHours, 1e-9)
	assert.InDelta(t, 0.8, stats.WeeklyHours, 1e-9)
	assert.InDelta(t, 1.05, stats.AllTimeHours, 1e-9)
	assert.GreaterOrEqual(t, stats.AllTimeHours, stats.WeeklyHours)
	assert.GreaterOrEqual(t, stats.WeeklyHours, stats.DailyHours)
	require.NotNil(t, stats.LastActive)
}

func TestQuotaMetAfterManualAdjustment(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	staff := env.addStaff(t, "104", "almost", 4)
	env.setWeekStartDaysAgo(t, 2)

	dayStart := schedule.DayStart(time.Now().UTC())
	env.addEntry(t, staff.ID, dayStart.Add(time.Minute), 0.5)
	env.addEntry(t, staff.ID, dayStart.Add(2*time.Minute), 0.3)

	stats, err := env.aggregation.StatsFor(ctx, *staff)
	require.NoError(t, err)
	assert.InDelta(t, 0.8, stats.WeeklyHours, 1e-9)
	assert.False(t, stats.QuotaMet)

	_, err = env.tracking.AdjustTime(ctx, staff.ID, 0.3, "event coverage")
	require.NoError(t, err)

	stats, err = env.aggregation.StatsFor(ctx, *staff)
	require.NoError(t, err)
	assert.InDelta(t, 1.1, stats.WeeklyHours, 1e-9)
	assert.True(t, stats.QuotaMet)
}

func TestStatsForReflectsStrikes(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	staff := env.addStaff(t, "105", "struck", 4)

	first, err := env.strikes.Issue(ctx, staff.ID, "week one", "Admin")
	require.NoError(t, err)
	_, err = env.strikes.Issue(ctx, staff.ID, "week two", "Admin")
	require.NoError(t, err)

	stats, err := env.aggregation.StatsFor(ctx, *staff)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.StrikeCount)
	assert.True(t, stats.DemotionEligible)

	require.NoError(t, env.strikes.Revoke(ctx, first.ID))

	stats, err = env.aggregation.StatsFor(ctx, *staff)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.StrikeCount)
	assert.False(t, stats.DemotionEligible)
}

func TestDashboardStats(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.setWeekStartDaysAgo(t, 2)

	dayStart := schedule.DayStart(time.Now().UTC())
	active := env.addStaff(t, "201", "active", 5)
	env.addStaff(t, "202", "idle", 3)

	env.addEntry(t, active.ID, dayStart.Add(time.Minute), 2.0)

	stats, err := env.aggregation.DashboardStats(ctx)
	require.NoError(t, err)

	assert.Equal(t, 2, stats.TotalStaff)
	assert.Equal(t, 1, stats.QuotaMet)
	assert.Equal(t, 1, stats.ActiveToday)
	assert.InDelta(t, 1.0, stats.AvgWeeklyHours, 1e-9)
}

func TestWeeklyActivityBuckets(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.setWeekStartDaysAgo(t, 2)

	staff := env.addStaff(t, "203", "bucketed", 5)
	dayStart := schedule.DayStart(time.Now().UTC())
	weekStart := dayStart.AddDate(0, 0, -2)

	env.addEntry(t, staff.ID, weekStart.Add(time.Hour), 1.5)
	env.addEntry(t, staff.ID, dayStart.Add(time.Hour), 0.5)

	activity, err := env.aggregation.WeeklyActivity(ctx)
	require.NoError(t, err)
	require.Len(t, activity, 7)

	assert.Equal(t, weekStart.Format("Mon"), activity[0].Date)
	assert.InDelta(t, 1.5, activity[0].TotalHours, 1e-9)
	assert.InDelta(t, 0.5, activity[2].TotalHours, 1e-9)
	assert.Zero(t, activity[1].TotalHours)

	var total float64
	for _, day := range activity {
		total += day.TotalHours
	}
	assert.InDelta(t, 2.0, total, 1e-9)
}

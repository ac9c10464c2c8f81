package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/attendance-service/internal/domain"
	"github.com/spec-kit/attendance-service/internal/repository"
	"github.com/spec-kit/attendance-service/internal/schedule"
	apperrors "github.com/spec-kit/attendance-service/pkg/util"
)

// AggregationService turns the append-only session log into rollups. Every
// figure is recomputed from the log on each call; nothing is cached.
type AggregationService struct {
	staff    repository.StaffRepository
	entries  repository.TimeEntryRepository
	settings repository.QuotaSettingsRepository
	strikes  repository.StrikeRepository
	loc      *time.Location
	logger   *zap.Logger
}

// AggregationDependencies encapsulates repositories required for aggregation.
type AggregationDependencies struct {
	StaffRepo    repository.StaffRepository
	EntryRepo    repository.TimeEntryRepository
	SettingsRepo repository.QuotaSettingsRepository
	StrikeRepo   repository.StrikeRepository
}

// NewAggregationService constructs the service. All day/week boundaries are
// computed in loc.
func NewAggregationService(deps AggregationDependencies, loc *time.Location, logger *zap.Logger) *AggregationService {
	return &AggregationService{
		staff:    deps.StaffRepo,
		entries:  deps.EntryRepo,
		settings: deps.SettingsRepo,
		strikes:  deps.StrikeRepo,
		loc:      loc,
		logger:   logger,
	}
}

// HoursInRange sums entry durations for one staff member over [start, end),
// rounded to two decimals. A nil end leaves the range open.
func (s *AggregationService) HoursInRange(ctx context.Context, staffID string, start time.Time, end *time.Time) (float64, error) {
	total, err := s.entries.SumDurations(ctx, staffID, start, end)
	if err != nil {
		return 0, apperrors.MapError(err)
	}
	return schedule.RoundHours(total), nil
}

// StatsFor attaches daily/weekly/all-time rollups, quota compliance, last
// activity and the active strike count to a staff member.
func (s *AggregationService) StatsFor(ctx context.Context, member domain.StaffMember) (domain.StaffStats, error) {
	settings, err := s.settings.Get(ctx)
	if err != nil {
		return domain.StaffStats{}, apperrors.MapError(err)
	}
	return s.statsFor(ctx, member, settings, time.Now().In(s.loc))
}

func (s *AggregationService) statsFor(ctx context.Context, member domain.StaffMember, settings *domain.QuotaSettings, now time.Time) (domain.StaffStats, error) {
	daily, err := s.HoursInRange(ctx, member.ID, schedule.DayStart(now), nil)
	if err != nil {
		return domain.StaffStats{}, err
	}
	weekly, err := s.HoursInRange(ctx, member.ID, schedule.WeekStart(now, settings.WeekStart), nil)
	if err != nil {
		return domain.StaffStats{}, err
	}
	allTime, err := s.HoursInRange(ctx, member.ID, schedule.Epoch(), nil)
	if err != nil {
		return domain.StaffStats{}, err
	}

	lastActive, err := s.entries.LastSessionStart(ctx, member.ID)
	if err != nil {
		return domain.StaffStats{}, apperrors.MapError(err)
	}

	strikeCount, err := s.strikes.ActiveCount(ctx, member.ID)
	if err != nil {
		return domain.StaffStats{}, apperrors.MapError(err)
	}

	return domain.StaffStats{
		StaffMember:      member,
		DailyHours:       daily,
		WeeklyHours:      weekly,
		AllTimeHours:     allTime,
		QuotaMet:         weekly >= settings.WeeklyRequirement,
		LastActive:       lastActive,
		StrikeCount:      strikeCount,
		DemotionEligible: strikeCount >= domain.StrikeDemotionThreshold,
	}, nil
}

// RosterStats returns the full roster with rollups attached.
func (s *AggregationService) RosterStats(ctx context.Context) ([]domain.StaffStats, error) {
	members, err := s.staff.List(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	settings, err := s.settings.Get(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}

	now := time.Now().In(s.loc)
	result := make([]domain.StaffStats, 0, len(members))
	for _, member := range members {
		stats, err := s.statsFor(ctx, member, settings, now)
		if err != nil {
			return nil, err
		}
		result = append(result, stats)
	}
	return result, nil
}

// DashboardStats computes the summary card figures.
func (s *AggregationService) DashboardStats(ctx context.Context) (domain.DashboardStats, error) {
	members, err := s.staff.List(ctx)
	if err != nil {
		return domain.DashboardStats{}, apperrors.MapError(err)
	}
	settings, err := s.settings.Get(ctx)
	if err != nil {
		return domain.DashboardStats{}, apperrors.MapError(err)
	}

	now := time.Now().In(s.loc)
	dayStart := schedule.DayStart(now)
	weekStart := schedule.WeekStart(now, settings.WeekStart)

	stats := domain.DashboardStats{TotalStaff: len(members)}
	var totalWeekly float64

	for _, member := range members {
		weekly, err := s.HoursInRange(ctx, member.ID, weekStart, nil)
		if err != nil {
			return domain.DashboardStats{}, err
		}
		daily, err := s.HoursInRange(ctx, member.ID, dayStart, nil)
		if err != nil {
			return domain.DashboardStats{}, err
		}

		totalWeekly += weekly
		if weekly >= settings.WeeklyRequirement {
			stats.QuotaMet++
		}
		if daily > 0 {
			stats.ActiveToday++
		}
	}

	if len(members) > 0 {
		stats.AvgWeeklyHours = schedule.RoundHours(totalWeekly / float64(len(members)))
	}
	return stats, nil
}

// WeeklyActivity returns the 7-day hour series for the current week,
// bucketed by calendar day from the configured week start.
func (s *AggregationService) WeeklyActivity(ctx context.Context) ([]domain.DailyActivity, error) {
	settings, err := s.settings.Get(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}

	weekStart := schedule.WeekStart(time.Now().In(s.loc), settings.WeekStart)
	activity := make([]domain.DailyActivity, 0, 7)

	for i := 0; i < 7; i++ {
		dayStart := weekStart.AddDate(0, 0, i)
		dayEnd := dayStart.AddDate(0, 0, 1)

		total, err := s.entries.SumDurationsAll(ctx, dayStart, dayEnd)
		if err != nil {
			return nil, apperrors.MapError(err)
		}
		activity = append(activity, domain.DailyActivity{
			Date:       dayStart.Format("Mon"),
			TotalHours: schedule.RoundHours(total),
		})
	}
	return activity, nil
}

package service

import (
	"context"
	"sort"
	"time"

	"github.com/spec-kit/attendance-service/internal/domain"
	"github.com/spec-kit/attendance-service/internal/repository"
	"github.com/spec-kit/attendance-service/internal/schedule"
	apperrors "github.com/spec-kit/attendance-service/pkg/util"
)

// LeaderboardService ranks staff by hours over a period and computes the
// delta against the immediately preceding equivalent window.
type LeaderboardService struct {
	staff       repository.StaffRepository
	settings    repository.QuotaSettingsRepository
	aggregation *AggregationService
	loc         *time.Location
}

// NewLeaderboardService constructs the service.
func NewLeaderboardService(staff repository.StaffRepository, settings repository.QuotaSettingsRepository, aggregation *AggregationService, loc *time.Location) *LeaderboardService {
	return &LeaderboardService{
		staff:       staff,
		settings:    settings,
		aggregation: aggregation,
		loc:         loc,
	}
}

// Leaderboard computes ranked totals for the period. Positions are a dense
// 1..N by descending total; ties keep sort-stability order rather than
// sharing a rank. The all-time previous window degenerates to the day before
// the epoch, so its delta always equals the total; that behavior is kept
// deliberately.
func (s *LeaderboardService) Leaderboard(ctx context.Context, period domain.Period) ([]domain.LeaderboardEntry, error) {
	if !domain.ValidPeriod(period) {
		return nil, apperrors.NewValidationError("invalid period", map[string]any{"period": string(period)})
	}

	members, err := s.staff.List(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	settings, err := s.settings.Get(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}

	now := time.Now().In(s.loc)
	start := periodStart(now, period, settings.WeekStart)
	prevStart := previousPeriodStart(start, period)

	entries := make([]domain.LeaderboardEntry, 0, len(members))
	for _, member := range members {
		total, err := s.aggregation.HoursInRange(ctx, member.ID, start, nil)
		if err != nil {
			return nil, err
		}
		prev, err := s.aggregation.HoursInRange(ctx, member.ID, prevStart, &start)
		if err != nil {
			return nil, err
		}

		entries = append(entries, domain.LeaderboardEntry{
			StaffMember:  member,
			TotalHours:   total,
			WeeklyChange: schedule.RoundHours(total - prev),
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].TotalHours > entries[j].TotalHours
	})
	for i := range entries {
		entries[i].Position = i + 1
	}
	return entries, nil
}

func periodStart(now time.Time, period domain.Period, weekStart time.Weekday) time.Time {
	switch period {
	case domain.PeriodDaily:
		return schedule.DayStart(now)
	case domain.PeriodWeekly:
		return schedule.WeekStart(now, weekStart)
	case domain.PeriodMonthly:
		return schedule.MonthStart(now)
	default:
		return schedule.Epoch()
	}
}

func previousPeriodStart(start time.Time, period domain.Period) time.Time {
	switch period {
	case domain.PeriodWeekly:
		return start.AddDate(0, 0, -7)
	case domain.PeriodMonthly:
		return start.AddDate(0, -1, 0)
	default:
		// daily and alltime both step back a single day
		return start.AddDate(0, 0, -1)
	}
}

package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/attendance-service/internal/domain"
	"github.com/spec-kit/attendance-service/internal/events"
	"github.com/spec-kit/attendance-service/internal/repository"
	apperrors "github.com/spec-kit/attendance-service/pkg/util"
)

// QuotaService owns quota settings and compliance evaluation.
type QuotaService struct {
	settings    repository.QuotaSettingsRepository
	aggregation *AggregationService
	dispatcher  events.Dispatcher
	logger      *zap.Logger
}

// NewQuotaService constructs the service.
func NewQuotaService(settings repository.QuotaSettingsRepository, aggregation *AggregationService, dispatcher events.Dispatcher, logger *zap.Logger) *QuotaService {
	return &QuotaService{
		settings:    settings,
		aggregation: aggregation,
		dispatcher:  dispatcher,
		logger:      logger,
	}
}

// Settings returns the current quota settings.
func (s *QuotaService) Settings(ctx context.Context) (*domain.QuotaSettings, error) {
	settings, err := s.settings.Get(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return settings, nil
}

// UpdateSettings replaces the singleton. The change applies retroactively to
// all aggregation; past weeks are re-evaluated under the new requirement.
func (s *QuotaService) UpdateSettings(ctx context.Context, weeklyRequirement float64, weekStart time.Weekday) (*domain.QuotaSettings, error) {
	if weeklyRequirement < 0 {
		return nil, apperrors.NewValidationError("weekly requirement must be non-negative", nil)
	}
	if weekStart < time.Sunday || weekStart > time.Saturday {
		return nil, apperrors.NewValidationError("week start must be a weekday 0-6", nil)
	}

	settings, err := s.settings.Update(ctx, weeklyRequirement, weekStart)
	if err != nil {
		return nil, apperrors.MapError(err)
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventQuotaSettingsUpdated,
			Timestamp: time.Now(),
			Payload: events.QuotaSettingsUpdatedPayload{
				WeeklyRequirement: settings.WeeklyRequirement,
				WeekStart:         int(settings.WeekStart),
			},
		})
	}
	return settings, nil
}

// Completion partitions the roster into quota-met and quota-unmet sets for
// the current week, with rollups attached for display.
func (s *QuotaService) Completion(ctx context.Context) (domain.QuotaCompletion, error) {
	roster, err := s.aggregation.RosterStats(ctx)
	if err != nil {
		return domain.QuotaCompletion{}, err
	}

	completion := domain.QuotaCompletion{
		Completed:  []domain.StaffStats{},
		Incomplete: []domain.StaffStats{},
	}
	for _, stats := range roster {
		if stats.QuotaMet {
			completion.Completed = append(completion.Completed, stats)
		} else {
			completion.Incomplete = append(completion.Incomplete, stats)
		}
	}
	return completion, nil
}

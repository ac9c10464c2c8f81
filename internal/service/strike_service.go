package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/spec-kit/attendance-service/internal/domain"
	"github.com/spec-kit/attendance-service/internal/events"
	"github.com/spec-kit/attendance-service/internal/repository"
	"github.com/spec-kit/attendance-service/internal/schedule"
	apperrors "github.com/spec-kit/attendance-service/pkg/util"
)

// StrikeService manages the quota-strike lifecycle: issuance, soft-delete
// revocation and active-count queries.
type StrikeService struct {
	staff      repository.StaffRepository
	strikes    repository.StrikeRepository
	settings   repository.QuotaSettingsRepository
	dispatcher events.Dispatcher
	loc        *time.Location
	logger     *zap.Logger
}

// MassStrikeResult reports best-effort batch issuance.
type MassStrikeResult struct {
	SuccessCount int
	TotalCount   int
}

// NewStrikeService constructs the service.
func NewStrikeService(staff repository.StaffRepository, strikes repository.StrikeRepository, settings repository.QuotaSettingsRepository, dispatcher events.Dispatcher, loc *time.Location, logger *zap.Logger) *StrikeService {
	return &StrikeService{
		staff:      staff,
		strikes:    strikes,
		settings:   settings,
		dispatcher: dispatcher,
		loc:        loc,
		logger:     logger,
	}
}

// Issue creates a strike for the current week. Multiple strikes for the same
// week are allowed; there is no uniqueness constraint.
func (s *StrikeService) Issue(ctx context.Context, staffID, reason, givenBy string) (*domain.QuotaStrike, error) {
	if _, err := s.staff.GetByID(ctx, staffID); err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("staff member", map[string]any{"staff_id": staffID})
		}
		return nil, apperrors.MapError(err)
	}

	if reason == "" {
		reason = domain.DefaultStrikeReason
	}

	settings, err := s.settings.Get(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}

	weekStart := schedule.WeekStart(time.Now().In(s.loc), settings.WeekStart)
	strike := &domain.QuotaStrike{
		StaffID:   staffID,
		WeekStart: weekStart,
		WeekEnd:   schedule.WeekEnd(weekStart),
		Reason:    reason,
		GivenBy:   givenBy,
	}
	if err := s.strikes.Create(ctx, strike); err != nil {
		return nil, apperrors.MapError(err)
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventStrikeIssued,
			StaffID:   staffID,
			Timestamp: time.Now(),
			Payload: events.StrikeIssuedPayload{
				StrikeID: strike.ID,
				Reason:   strike.Reason,
				GivenBy:  givenBy,
			},
		})
	}
	return strike, nil
}

// Revoke deactivates a strike. A missing id is a not-found failure; revoking
// an already-inactive strike succeeds and changes nothing.
func (s *StrikeService) Revoke(ctx context.Context, strikeID string) error {
	if err := s.strikes.Deactivate(ctx, strikeID); err != nil {
		if err == pgx.ErrNoRows {
			return apperrors.NewNotFound("strike", map[string]any{"strike_id": strikeID})
		}
		return apperrors.MapError(err)
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventStrikeRevoked,
			Timestamp: time.Now(),
			Payload:   events.StrikeRevokedPayload{StrikeID: strikeID},
		})
	}
	return nil
}

// ListActive returns a staff member's active strikes, most recent first.
func (s *StrikeService) ListActive(ctx context.Context, staffID string) ([]domain.QuotaStrike, error) {
	strikes, err := s.strikes.ListActive(ctx, staffID)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	if strikes == nil {
		strikes = []domain.QuotaStrike{}
	}
	return strikes, nil
}

// ActiveCount returns the active-strike cardinality for a staff member.
func (s *StrikeService) ActiveCount(ctx context.Context, staffID string) (int, error) {
	count, err := s.strikes.ActiveCount(ctx, staffID)
	if err != nil {
		return 0, apperrors.MapError(err)
	}
	return count, nil
}

// MassStrike issues one strike per staff id with a shared reason. The batch
// is best effort: individual failures are logged and counted, never rolled
// back, and never abort the remaining items.
func (s *StrikeService) MassStrike(ctx context.Context, staffIDs []string, reason, givenBy string) (MassStrikeResult, error) {
	result := MassStrikeResult{TotalCount: len(staffIDs)}

	for _, staffID := range staffIDs {
		if _, err := s.Issue(ctx, staffID, reason, givenBy); err != nil {
			s.logger.Warn("mass strike item failed",
				zap.String("staff_id", staffID),
				zap.Error(err),
			)
			continue
		}
		result.SuccessCount++
	}
	return result, nil
}

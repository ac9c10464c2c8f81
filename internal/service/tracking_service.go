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
	apperrors "github.com/spec-kit/attendance-service/pkg/util"
)

// TrackingService ingests session events from the game-server webhook and
// records manual adjustments. Duplicate leave events are tolerated, not
// deduplicated.
type TrackingService struct {
	staff      repository.StaffRepository
	entries    repository.TimeEntryRepository
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewTrackingService constructs the service.
func NewTrackingService(staff repository.StaffRepository, entries repository.TimeEntryRepository, dispatcher events.Dispatcher, logger *zap.Logger) *TrackingService {
	return &TrackingService{
		staff:      staff,
		entries:    entries,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// RecordSession appends one session event. Unknown players are registered as
// staff on first sight. sessionSeconds converts to the hour contribution;
// join events carry zero.
func (t *TrackingService) RecordSession(ctx context.Context, userID, username string, rank int, sessionSeconds float64, action string) (*domain.TimeEntry, error) {
	if userID == "" || username == "" || action == "" {
		return nil, apperrors.NewValidationError("userId, username and action are required", nil)
	}

	staff, err := t.staff.GetByUserID(ctx, userID)
	if err != nil {
		if err != pgx.ErrNoRows {
			return nil, apperrors.MapError(err)
		}
		if rank == 0 {
			rank = domain.MinStaffRank
		}
		staff = &domain.StaffMember{
			UserID:   userID,
			Username: username,
			Rank:     rank,
			RankName: domain.RankName(rank),
		}
		if err := t.staff.Create(ctx, staff); err != nil {
			return nil, apperrors.MapError(err)
		}
		t.logger.Info("registered staff member from session event",
			zap.String("user_id", userID),
			zap.String("username", username),
		)
	}

	now := time.Now()
	entry := &domain.TimeEntry{
		StaffID:      staff.ID,
		SessionStart: now,
		Duration:     sessionSeconds / 3600,
		Action:       action,
	}
	if action == domain.ActionLeave {
		entry.SessionEnd = &now
	}
	if err := t.entries.Create(ctx, entry); err != nil {
		return nil, apperrors.MapError(err)
	}

	if t.dispatcher != nil {
		_ = t.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventSessionRecorded,
			StaffID:   staff.ID,
			Timestamp: now,
			Payload: events.SessionRecordedPayload{
				Action:   action,
				Duration: entry.Duration,
			},
		})
	}
	return entry, nil
}

// AdjustTime records a synthetic zero-length entry carrying an hour delta
// and a free-text reason. Negative deltas are allowed.
func (t *TrackingService) AdjustTime(ctx context.Context, staffID string, hours float64, reason string) (*domain.TimeEntry, error) {
	if _, err := t.staff.GetByID(ctx, staffID); err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("staff member", map[string]any{"staff_id": staffID})
		}
		return nil, apperrors.MapError(err)
	}

	if reason == "" {
		reason = "No reason provided"
	}

	now := time.Now()
	entry := &domain.TimeEntry{
		StaffID:      staffID,
		SessionStart: now,
		SessionEnd:   &now,
		Duration:     hours,
		Action:       domain.ManualAdjustmentPrefix + reason,
	}
	if err := t.entries.Create(ctx, entry); err != nil {
		return nil, apperrors.MapError(err)
	}

	if t.dispatcher != nil {
		_ = t.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventTimeAdjusted,
			StaffID:   staffID,
			Timestamp: now,
			Payload: events.TimeAdjustedPayload{
				Hours:  hours,
				Reason: reason,
			},
		})
	}
	return entry, nil
}

// EntriesForStaff returns a staff member's session log, most recent first.
func (t *TrackingService) EntriesForStaff(ctx context.Context, staffID string) ([]domain.TimeEntry, error) {
	entries, err := t.entries.ListForStaff(ctx, staffID)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	if entries == nil {
		entries = []domain.TimeEntry{}
	}
	return entries, nil
}

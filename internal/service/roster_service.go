package service

import (
	"context"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/spec-kit/attendance-service/internal/domain"
	"github.com/spec-kit/attendance-service/internal/events"
	"github.com/spec-kit/attendance-service/internal/repository"
	"github.com/spec-kit/attendance-service/internal/roblox"
	apperrors "github.com/spec-kit/attendance-service/pkg/util"
)

// RosterService manages the staff roster: group sync, edits and demotion.
type RosterService struct {
	staff      repository.StaffRepository
	group      *roblox.Client
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewRosterService constructs the service.
func NewRosterService(staff repository.StaffRepository, group *roblox.Client, dispatcher events.Dispatcher, logger *zap.Logger) *RosterService {
	return &RosterService{
		staff:      staff,
		group:      group,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// StaffEdit carries optional roster edits; nil fields keep current values.
type StaffEdit struct {
	Username *string
	Rank     *int
	RankName *string
}

// Get fetches one staff member.
func (s *RosterService) Get(ctx context.Context, id string) (*domain.StaffMember, error) {
	staff, err := s.staff.GetByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("staff member", map[string]any{"staff_id": id})
		}
		return nil, apperrors.MapError(err)
	}
	return staff, nil
}

// Sync pulls the group roster and upserts every member ranked at or above
// the tracking threshold, skipping the excluded bot rank. Returns the synced
// members.
func (s *RosterService) Sync(ctx context.Context) ([]domain.StaffMember, error) {
	members, err := s.group.GroupMembers(ctx)
	if err != nil {
		return nil, err
	}

	var synced []domain.StaffMember
	for _, member := range members {
		if member.Rank < domain.MinStaffRank || member.Rank == domain.ExcludedRank {
			continue
		}

		userID := strconv.FormatInt(member.UserID, 10)
		existing, err := s.staff.GetByUserID(ctx, userID)
		if err != nil && err != pgx.ErrNoRows {
			return nil, apperrors.MapError(err)
		}

		if existing == nil {
			staff := &domain.StaffMember{
				UserID:   userID,
				Username: member.Username,
				Rank:     member.Rank,
				RankName: member.RankName,
			}
			if err := s.staff.Create(ctx, staff); err != nil {
				return nil, apperrors.MapError(err)
			}
			synced = append(synced, *staff)
			continue
		}

		existing.Username = member.Username
		existing.Rank = member.Rank
		existing.RankName = member.RankName
		if err := s.staff.Update(ctx, existing); err != nil {
			return nil, apperrors.MapError(err)
		}
		synced = append(synced, *existing)
	}

	s.logger.Info("staff roster synced", zap.Int("count", len(synced)))
	return synced, nil
}

// Edit applies partial updates to a staff member.
func (s *RosterService) Edit(ctx context.Context, id string, edit StaffEdit) (*domain.StaffMember, error) {
	staff, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if edit.Username != nil {
		staff.Username = *edit.Username
	}
	if edit.Rank != nil {
		staff.Rank = *edit.Rank
	}
	if edit.RankName != nil {
		staff.RankName = *edit.RankName
	}

	if err := s.staff.Update(ctx, staff); err != nil {
		return nil, apperrors.MapError(err)
	}
	return staff, nil
}

// Demote reassigns a staff member to the fixed demotion rank.
func (s *RosterService) Demote(ctx context.Context, id string) (*domain.StaffMember, error) {
	staff, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	oldRank := staff.Rank
	staff.Rank = domain.DemotionRank
	staff.RankName = domain.DemotionRankName
	if err := s.staff.Update(ctx, staff); err != nil {
		return nil, apperrors.MapError(err)
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventStaffDemoted,
			StaffID:   id,
			Timestamp: time.Now(),
			Payload: events.StaffDemotedPayload{
				OldRank: oldRank,
				NewRank: staff.Rank,
			},
		})
	}
	return staff, nil
}

package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/attendance-service/internal/domain"
	"github.com/spec-kit/attendance-service/internal/events"
	apperrors "github.com/spec-kit/attendance-service/pkg/util"
)

func TestRosterGetUnknownStaff(t *testing.T) {
	env := newTestEnv(t)
	roster := NewRosterService(env.staffRepo, nil, nil, zap.NewNop())

	_, err := roster.Get(context.Background(), "missing-id")
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperrors.ToDomainError(err).Code)
}

func TestRosterEditPartialUpdate(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	roster := NewRosterService(env.staffRepo, nil, nil, zap.NewNop())

	staff := env.addStaff(t, "701", "before", 5)

	newName := "after"
	updated, err := roster.Edit(ctx, staff.ID, StaffEdit{Username: &newName})
	require.NoError(t, err)

	assert.Equal(t, "after", updated.Username)
	assert.Equal(t, 5, updated.Rank, "rank untouched by partial edit")
	assert.Equal(t, staff.RankName, updated.RankName)

	stored, err := env.staffRepo.GetByID(ctx, staff.ID)
	require.NoError(t, err)
	assert.Equal(t, "after", stored.Username)
}

func TestRosterDemote(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	dispatcher := events.NewInMemoryDispatcher()
	var published []events.Event
	dispatcher.Subscribe(events.EventStaffDemoted, func(ctx context.Context, event events.Event) error {
		published = append(published, event)
		return nil
	})

	roster := NewRosterService(env.staffRepo, nil, dispatcher, zap.NewNop())
	staff := env.addStaff(t, "702", "senior", 8)

	demoted, err := roster.Demote(ctx, staff.ID)
	require.NoError(t, err)

	assert.Equal(t, domain.DemotionRank, demoted.Rank)
	assert.Equal(t, domain.DemotionRankName, demoted.RankName)

	require.Len(t, published, 1)
	payload, ok := published[0].Payload.(events.StaffDemotedPayload)
	require.True(t, ok)
	assert.Equal(t, 8, payload.OldRank)
	assert.Equal(t, domain.DemotionRank, payload.NewRank)
}

func TestRosterDemoteUnknownStaff(t *testing.T) {
	env := newTestEnv(t)
	roster := NewRosterService(env.staffRepo, nil, nil, zap.NewNop())

	_, err := roster.Demote(context.Background(), "missing-id")
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperrors.ToDomainError(err).Code)
}

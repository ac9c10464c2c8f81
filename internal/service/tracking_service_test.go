package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/attendance-service/internal/domain"
	apperrors "github.com/spec-kit/attendance-service/pkg/util"
)

func TestRecordSessionRegistersUnknownStaff(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	entry, err := env.tracking.RecordSession(ctx, "501", "newcomer", 5, 1800, domain.ActionLeave)
	require.NoError(t, err)

	assert.InDelta(t, 0.5, entry.Duration, 1e-9)
	require.NotNil(t, entry.SessionEnd)

	staff, err := env.staffRepo.GetByUserID(ctx, "501")
	require.NoError(t, err)
	assert.Equal(t, "newcomer", staff.Username)
	assert.Equal(t, 5, staff.Rank)
	assert.Equal(t, domain.RankName(5), staff.RankName)
	assert.Equal(t, staff.ID, entry.StaffID)
}

func TestRecordSessionDefaultsRank(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.tracking.RecordSession(ctx, "502", "rankless", 0, 0, domain.ActionJoin)
	require.NoError(t, err)

	staff, err := env.staffRepo.GetByUserID(ctx, "502")
	require.NoError(t, err)
	assert.Equal(t, domain.MinStaffRank, staff.Rank)
}

func TestRecordSessionJoinHasNoEnd(t *testing.T) {
	env := newTestEnv(t)
	staff := env.addStaff(t, "503", "joining", 4)

	entry, err := env.tracking.RecordSession(context.Background(), staff.UserID, staff.Username, staff.Rank, 0, domain.ActionJoin)
	require.NoError(t, err)

	assert.Zero(t, entry.Duration)
	assert.Nil(t, entry.SessionEnd)
}

func TestRecordSessionValidation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	tests := []struct {
		name     string
		userID   string
		username string
		action   string
	}{
		{"missing user id", "", "someone", domain.ActionJoin},
		{"missing username", "504", "", domain.ActionJoin},
		{"missing action", "504", "someone", ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := env.tracking.RecordSession(ctx, tc.userID, tc.username, 3, 0, tc.action)
			require.Error(t, err)
			assert.Equal(t, "VALIDATION_FAILED", apperrors.ToDomainError(err).Code)
		})
	}
}

func TestAdjustTime(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	staff := env.addStaff(t, "505", "adjusted", 5)

	entry, err := env.tracking.AdjustTime(ctx, staff.ID, -0.25, "afk during shift")
	require.NoError(t, err)

	assert.InDelta(t, -0.25, entry.Duration, 1e-9)
	assert.Equal(t, domain.ManualAdjustmentPrefix+"afk during shift", entry.Action)
	require.NotNil(t, entry.SessionEnd)
	assert.Equal(t, entry.SessionStart, *entry.SessionEnd)
}

func TestAdjustTimeDefaultsReason(t *testing.T) {
	env := newTestEnv(t)
	staff := env.addStaff(t, "506", "silent", 3)

	entry, err := env.tracking.AdjustTime(context.Background(), staff.ID, 1.0, "")
	require.NoError(t, err)
	assert.Equal(t, domain.ManualAdjustmentPrefix+"No reason provided", entry.Action)
}

func TestAdjustTimeUnknownStaff(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.tracking.AdjustTime(context.Background(), "missing-id", 1.0, "reason")
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperrors.ToDomainError(err).Code)
}

func TestEntriesForStaffNewestFirst(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	staff := env.addStaff(t, "507", "busy", 5)

	_, err := env.tracking.RecordSession(ctx, staff.UserID, staff.Username, staff.Rank, 3600, domain.ActionLeave)
	require.NoError(t, err)
	_, err = env.tracking.AdjustTime(ctx, staff.ID, 0.5, "coverage")
	require.NoError(t, err)

	entries, err := env.tracking.EntriesForStaff(ctx, staff.ID)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.False(t, entries[1].SessionStart.After(entries[0].SessionStart))
}

func TestEntriesForStaffEmpty(t *testing.T) {
	env := newTestEnv(t)
	staff := env.addStaff(t, "508", "new", 3)

	entries, err := env.tracking.EntriesForStaff(context.Background(), staff.ID)
	require.NoError(t, err)
	assert.NotNil(t, entries)
	assert.Empty(t, entries)
}

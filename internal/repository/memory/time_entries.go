package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/attendance-service/internal/domain"
	"github.com/spec-kit/attendance-service/internal/repository"
)

type timeEntryRepository struct {
	mu      sync.RWMutex
	entries map[string]domain.TimeEntry
}

// NewTimeEntryRepository returns an empty in-memory session log.
func NewTimeEntryRepository() repository.TimeEntryRepository {
	return &timeEntryRepository{entries: make(map[string]domain.TimeEntry)}
}

func (r *timeEntryRepository) Create(ctx context.Context, entry *domain.TimeEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry.ID = uuid.NewString()
	entry.CreatedAt = time.Now()
	r.entries[entry.ID] = *entry
	return nil
}

func (r *timeEntryRepository) ListForStaff(ctx context.Context, staffID string) ([]domain.TimeEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []domain.TimeEntry
	for _, entry := range r.entries {
		if entry.StaffID == staffID {
			result = append(result, entry)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].SessionStart.After(result[j].SessionStart)
	})
	return result, nil
}

func (r *timeEntryRepository) SumDurations(ctx context.Context, staffID string, start time.Time, end *time.Time) (float64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var total float64
	for _, entry := range r.entries {
		if entry.StaffID != staffID {
			continue
		}
		if inRange(entry.SessionStart, start, end) {
			total += entry.Duration
		}
	}
	return total, nil
}

func (r *timeEntryRepository) SumDurationsAll(ctx context.Context, start, end time.Time) (float64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var total float64
	for _, entry := range r.entries {
		if inRange(entry.SessionStart, start, &end) {
			total += entry.Duration
		}
	}
	return total, nil
}

func (r *timeEntryRepository) LastSessionStart(ctx context.Context, staffID string) (*time.Time, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var last *time.Time
	for _, entry := range r.entries {
		if entry.StaffID != staffID {
			continue
		}
		if last == nil || entry.SessionStart.After(*last) {
			start := entry.SessionStart
			last = &start
		}
	}
	return last, nil
}

func inRange(t, start time.Time, end *time.Time) bool {
	if t.Before(start) {
		return false
	}
	return end == nil || t.Before(*end)
}

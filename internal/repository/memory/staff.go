// Package memory provides in-process implementations of the repository
// interfaces. They back the service when no database is configured and the
// test suite. Each collection is guarded by its own RWMutex so mutations
// never interleave with reads.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/attendance-service/internal/domain"
	"github.com/spec-kit/attendance-service/internal/repository"
)

type staffRepository struct {
	mu    sync.RWMutex
	staff map[string]domain.StaffMember
}

// NewStaffRepository returns an empty in-memory staff store.
func NewStaffRepository() repository.StaffRepository {
	return &staffRepository{staff: make(map[string]domain.StaffMember)}
}

func (r *staffRepository) Create(ctx context.Context, staff *domain.StaffMember) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	staff.ID = uuid.NewString()
	staff.JoinedAt = time.Now()
	r.staff[staff.ID] = *staff
	return nil
}

func (r *staffRepository) Update(ctx context.Context, staff *domain.StaffMember) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.staff[staff.ID]; !ok {
		return pgx.ErrNoRows
	}
	r.staff[staff.ID] = *staff
	return nil
}

func (r *staffRepository) GetByID(ctx context.Context, id string) (*domain.StaffMember, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	staff, ok := r.staff[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &staff, nil
}

func (r *staffRepository) GetByUserID(ctx context.Context, userID string) (*domain.StaffMember, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, staff := range r.staff {
		if staff.UserID == userID {
			found := staff
			return &found, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *staffRepository) List(ctx context.Context) ([]domain.StaffMember, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]domain.StaffMember, 0, len(r.staff))
	for _, staff := range r.staff {
		result = append(result, staff)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].JoinedAt.Before(result[j].JoinedAt)
	})
	return result, nil
}

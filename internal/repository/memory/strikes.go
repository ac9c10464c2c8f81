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

type strikeRepository struct {
	mu      sync.RWMutex
	strikes map[string]domain.QuotaStrike
}

// NewStrikeRepository returns an empty in-memory strike ledger.
func NewStrikeRepository() repository.StrikeRepository {
	return &strikeRepository{strikes: make(map[string]domain.QuotaStrike)}
}

func (r *strikeRepository) Create(ctx context.Context, strike *domain.QuotaStrike) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	strike.ID = uuid.NewString()
	strike.GivenAt = time.Now()
	strike.Active = true
	r.strikes[strike.ID] = *strike
	return nil
}

func (r *strikeRepository) ListActive(ctx context.Context, staffID string) ([]domain.QuotaStrike, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []domain.QuotaStrike
	for _, strike := range r.strikes {
		if strike.StaffID == staffID && strike.Active {
			result = append(result, strike)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].GivenAt.After(result[j].GivenAt)
	})
	return result, nil
}

// Deactivate mirrors the SQL implementation: a missing id fails, an existing
// strike has its flag set false regardless of current state.
func (r *strikeRepository) Deactivate(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	strike, ok := r.strikes[id]
	if !ok {
		return pgx.ErrNoRows
	}
	strike.Active = false
	r.strikes[id] = strike
	return nil
}

func (r *strikeRepository) ActiveCount(ctx context.Context, staffID string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	count := 0
	for _, strike := range r.strikes {
		if strike.StaffID == staffID && strike.Active {
			count++
		}
	}
	return count, nil
}

package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/attendance-service/internal/domain"
	"github.com/spec-kit/attendance-service/internal/repository"
)

type quotaSettingsRepository struct {
	mu       sync.RWMutex
	settings domain.QuotaSettings
}

// NewQuotaSettingsRepository returns settings initialized to the defaults:
// 1.0 weekly hours, weeks starting Monday.
func NewQuotaSettingsRepository() repository.QuotaSettingsRepository {
	return &quotaSettingsRepository{
		settings: domain.QuotaSettings{
			ID:                uuid.NewString(),
			WeeklyRequirement: 1.0,
			WeekStart:         time.Monday,
			UpdatedAt:         time.Now(),
		},
	}
}

func (r *quotaSettingsRepository) Get(ctx context.Context) (*domain.QuotaSettings, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	settings := r.settings
	return &settings, nil
}

func (r *quotaSettingsRepository) Update(ctx context.Context, weeklyRequirement float64, weekStart time.Weekday) (*domain.QuotaSettings, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.settings.WeeklyRequirement = weeklyRequirement
	r.settings.WeekStart = weekStart
	r.settings.UpdatedAt = time.Now()

	settings := r.settings
	return &settings, nil
}

package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/attendance-service/internal/domain"
)

// QuotaSettingsRepository manages the singleton quota settings record.
type QuotaSettingsRepository interface {
	Get(ctx context.Context) (*domain.QuotaSettings, error)
	Update(ctx context.Context, weeklyRequirement float64, weekStart time.Weekday) (*domain.QuotaSettings, error)
}

type quotaSettingsRepository struct {
	pool *pgxpool.Pool
}

// NewQuotaSettingsRepository instantiates the repository.
func NewQuotaSettingsRepository(pool *pgxpool.Pool) QuotaSettingsRepository {
	return &quotaSettingsRepository{pool: pool}
}

// Get returns the settings row, inserting defaults on first access.
func (r *quotaSettingsRepository) Get(ctx context.Context) (*domain.QuotaSettings, error) {
	const query = `
        SELECT id, weekly_requirement, week_start, updated_at
        FROM quota_settings LIMIT 1`

	settings, err := r.scanOne(r.pool.QueryRow(ctx, query))
	if err == pgx.ErrNoRows {
		const insert = `
            INSERT INTO quota_settings (weekly_requirement, week_start)
            VALUES (1.0, 1)
            RETURNING id, weekly_requirement, week_start, updated_at`
		return r.scanOne(r.pool.QueryRow(ctx, insert))
	}
	return settings, err
}

func (r *quotaSettingsRepository) Update(ctx context.Context, weeklyRequirement float64, weekStart time.Weekday) (*domain.QuotaSettings, error) {
	settings, err := r.Get(ctx)
	if err != nil {
		return nil, err
	}

	const query = `
        UPDATE quota_settings
        SET weekly_requirement=$1, week_start=$2, updated_at=NOW()
        WHERE id=$3
        RETURNING id, weekly_requirement, week_start, updated_at`

	return r.scanOne(r.pool.QueryRow(ctx, query, weeklyRequirement, int(weekStart), settings.ID))
}

func (r *quotaSettingsRepository) scanOne(row pgx.Row) (*domain.QuotaSettings, error) {
	var settings domain.QuotaSettings
	var weekStart int
	if err := row.Scan(
		&settings.ID,
		&settings.WeeklyRequirement,
		&weekStart,
		&settings.UpdatedAt,
	); err != nil {
		return nil, err
	}
	settings.WeekStart = time.Weekday(weekStart)
	return &settings, nil
}

package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/attendance-service/internal/domain"
)

// TimeEntryRepository handles the append-only session log. SumDurations is
// the range-sum primitive aggregation is built on: it totals the duration of
// entries whose session_start falls in the half-open range [start, end).
type TimeEntryRepository interface {
	Create(ctx context.Context, entry *domain.TimeEntry) error
	ListForStaff(ctx context.Context, staffID string) ([]domain.TimeEntry, error)
	SumDurations(ctx context.Context, staffID string, start time.Time, end *time.Time) (float64, error)
	SumDurationsAll(ctx context.Context, start, end time.Time) (float64, error)
	LastSessionStart(ctx context.Context, staffID string) (*time.Time, error)
}

type timeEntryRepository struct {
	pool *pgxpool.Pool
}

// NewTimeEntryRepository instantiates the repository.
func NewTimeEntryRepository(pool *pgxpool.Pool) TimeEntryRepository {
	return &timeEntryRepository{pool: pool}
}

func (r *timeEntryRepository) Create(ctx context.Context, entry *domain.TimeEntry) error {
	const query = `
        INSERT INTO time_entries (staff_id, session_start, session_end, duration, action)
        VALUES ($1,$2,$3,$4,$5)
        RETURNING id, created_at`

	return r.pool.QueryRow(ctx, query,
		entry.StaffID,
		entry.SessionStart,
		entry.SessionEnd,
		entry.Duration,
		entry.Action,
	).Scan(&entry.ID, &entry.CreatedAt)
}

func (r *timeEntryRepository) ListForStaff(ctx context.Context, staffID string) ([]domain.TimeEntry, error) {
	const query = `
        SELECT id, staff_id, session_start, session_end, duration, action, created_at
        FROM time_entries WHERE staff_id=$1
        ORDER BY session_start DESC`

	rows, err := r.pool.Query(ctx, query, staffID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.TimeEntry
	for rows.Next() {
		var entry domain.TimeEntry
		if err := rows.Scan(
			&entry.ID,
			&entry.StaffID,
			&entry.SessionStart,
			&entry.SessionEnd,
			&entry.Duration,
			&entry.Action,
			&entry.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, entry)
	}
	return result, rows.Err()
}

func (r *timeEntryRepository) SumDurations(ctx context.Context, staffID string, start time.Time, end *time.Time) (float64, error) {
	var total float64
	if end == nil {
		const query = `
            SELECT COALESCE(SUM(duration), 0) FROM time_entries
            WHERE staff_id=$1 AND session_start >= $2`
		if err := r.pool.QueryRow(ctx, query, staffID, start).Scan(&total); err != nil {
			return 0, err
		}
		return total, nil
	}

	const query = `
        SELECT COALESCE(SUM(duration), 0) FROM time_entries
        WHERE staff_id=$1 AND session_start >= $2 AND session_start < $3`
	if err := r.pool.QueryRow(ctx, query, staffID, start, *end).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

func (r *timeEntryRepository) SumDurationsAll(ctx context.Context, start, end time.Time) (float64, error) {
	const query = `
        SELECT COALESCE(SUM(duration), 0) FROM time_entries
        WHERE session_start >= $1 AND session_start < $2`

	var total float64
	if err := r.pool.QueryRow(ctx, query, start, end).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

func (r *timeEntryRepository) LastSessionStart(ctx context.Context, staffID string) (*time.Time, error) {
	const query = `
        SELECT session_start FROM time_entries
        WHERE staff_id=$1 ORDER BY session_start DESC LIMIT 1`

	var last time.Time
	if err := r.pool.QueryRow(ctx, query, staffID).Scan(&last); err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &last, nil
}

package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/attendance-service/internal/domain"
)

// StrikeRepository handles quota-strike persistence. Strikes are soft
// deleted: Deactivate flips the active flag and never removes rows.
type StrikeRepository interface {
	Create(ctx context.Context, strike *domain.QuotaStrike) error
	ListActive(ctx context.Context, staffID string) ([]domain.QuotaStrike, error)
	Deactivate(ctx context.Context, id string) error
	ActiveCount(ctx context.Context, staffID string) (int, error)
}

type strikeRepository struct {
	pool *pgxpool.Pool
}

// NewStrikeRepository instantiates the repository.
func NewStrikeRepository(pool *pgxpool.Pool) StrikeRepository {
	return &strikeRepository{pool: pool}
}

func (r *strikeRepository) Create(ctx context.Context, strike *domain.QuotaStrike) error {
	const query = `
        INSERT INTO quota_strikes (staff_id, week_start, week_end, reason, given_by)
        VALUES ($1,$2,$3,$4,$5)
        RETURNING id, given_at, active`

	return r.pool.QueryRow(ctx, query,
		strike.StaffID,
		strike.WeekStart,
		strike.WeekEnd,
		strike.Reason,
		strike.GivenBy,
	).Scan(&strike.ID, &strike.GivenAt, &strike.Active)
}

func (r *strikeRepository) ListActive(ctx context.Context, staffID string) ([]domain.QuotaStrike, error) {
	const query = `
        SELECT id, staff_id, week_start, week_end, reason, given_by, given_at, active
        FROM quota_strikes
        WHERE staff_id=$1 AND active=TRUE
        ORDER BY given_at DESC`

	rows, err := r.pool.Query(ctx, query, staffID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.QuotaStrike
	for rows.Next() {
		var strike domain.QuotaStrike
		if err := rows.Scan(
			&strike.ID,
			&strike.StaffID,
			&strike.WeekStart,
			&strike.WeekEnd,
			&strike.Reason,
			&strike.GivenBy,
			&strike.GivenAt,
			&strike.Active,
		); err != nil {
			return nil, err
		}
		result = append(result, strike)
	}
	return result, rows.Err()
}

// Deactivate flips active to false. An already-inactive strike still matches
// and reports success; only a missing id is an error.
func (r *strikeRepository) Deactivate(ctx context.Context, id string) error {
	const query = `UPDATE quota_strikes SET active=FALSE WHERE id=$1`

	cmd, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *strikeRepository) ActiveCount(ctx context.Context, staffID string) (int, error) {
	const query = `
        SELECT COUNT(*) FROM quota_strikes
        WHERE staff_id=$1 AND active=TRUE`

	var count int
	if err := r.pool.QueryRow(ctx, query, staffID).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

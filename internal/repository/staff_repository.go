package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/attendance-service/internal/domain"
)

// StaffRepository handles persistence for staff members.
type StaffRepository interface {
	Create(ctx context.Context, staff *domain.StaffMember) error
	Update(ctx context.Context, staff *domain.StaffMember) error
	GetByID(ctx context.Context, id string) (*domain.StaffMember, error)
	GetByUserID(ctx context.Context, userID string) (*domain.StaffMember, error)
	List(ctx context.Context) ([]domain.StaffMember, error)
}

type staffRepository struct {
	pool *pgxpool.Pool
}

// NewStaffRepository instantiates the repository.
func NewStaffRepository(pool *pgxpool.Pool) StaffRepository {
	return &staffRepository{pool: pool}
}

func (r *staffRepository) Create(ctx context.Context, staff *domain.StaffMember) error {
	const query = `
        INSERT INTO staff_members (user_id, username, rank, rank_name)
        VALUES ($1,$2,$3,$4)
        RETURNING id, joined_at`

	return r.pool.QueryRow(ctx, query,
		staff.UserID,
		staff.Username,
		staff.Rank,
		staff.RankName,
	).Scan(&staff.ID, &staff.JoinedAt)
}

func (r *staffRepository) Update(ctx context.Context, staff *domain.StaffMember) error {
	const query = `
        UPDATE staff_members
        SET username=$1, rank=$2, rank_name=$3
        WHERE id=$4`

	cmd, err := r.pool.Exec(ctx, query,
		staff.Username,
		staff.Rank,
		staff.RankName,
		staff.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *staffRepository) GetByID(ctx context.Context, id string) (*domain.StaffMember, error) {
	const query = `
        SELECT id, user_id, username, rank, rank_name, joined_at
        FROM staff_members WHERE id=$1`

	return r.scanOne(r.pool.QueryRow(ctx, query, id))
}

func (r *staffRepository) GetByUserID(ctx context.Context, userID string) (*domain.StaffMember, error) {
	const query = `
        SELECT id, user_id, username, rank, rank_name, joined_at
        FROM staff_members WHERE user_id=$1`

	return r.scanOne(r.pool.QueryRow(ctx, query, userID))
}

func (r *staffRepository) List(ctx context.Context) ([]domain.StaffMember, error) {
	const query = `
        SELECT id, user_id, username, rank, rank_name, joined_at
        FROM staff_members ORDER BY joined_at ASC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.StaffMember
	for rows.Next() {
		var staff domain.StaffMember
		if err := rows.Scan(
			&staff.ID,
			&staff.UserID,
			&staff.Username,
			&staff.Rank,
			&staff.RankName,
			&staff.JoinedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, staff)
	}
	return result, rows.Err()
}

func (r *staffRepository) scanOne(row pgx.Row) (*domain.StaffMember, error) {
	var staff domain.StaffMember
	if err := row.Scan(
		&staff.ID,
		&staff.UserID,
		&staff.Username,
		&staff.Rank,
		&staff.RankName,
		&staff.JoinedAt,
	); err != nil {
		return nil, err
	}
	return &staff, nil
}

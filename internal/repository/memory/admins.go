package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/attendance-service/internal/domain"
	"github.com/spec-kit/attendance-service/internal/repository"
)

type adminRepository struct {
	mu     sync.RWMutex
	admins map[string]domain.Admin
}

// NewAdminRepository returns an empty in-memory admin store.
func NewAdminRepository() repository.AdminRepository {
	return &adminRepository{admins: make(map[string]domain.Admin)}
}

func (r *adminRepository) Create(ctx context.Context, admin *domain.Admin) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	admin.ID = uuid.NewString()
	admin.CreatedAt = time.Now()
	r.admins[admin.ID] = *admin
	return nil
}

func (r *adminRepository) GetByID(ctx context.Context, id string) (*domain.Admin, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	admin, ok := r.admins[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &admin, nil
}

func (r *adminRepository) GetByEmail(ctx context.Context, email string) (*domain.Admin, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, admin := range r.admins {
		if admin.Email == email {
			found := admin
			return &found, nil
		}
	}
	return nil, pgx.ErrNoRows
}

package postgres

import (
	"context"
	"errors"
	"fmt"

	"stripe-account-reconciler/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// UserRepo implements ports.UserRepository.
type UserRepo struct {
	pool Pool
}

// NewUserRepo creates a new UserRepo.
func NewUserRepo(pool Pool) *UserRepo {
	return &UserRepo{pool: pool}
}

const userColumns = `id, email, active, suspended, payouts_paused, stripe_migration_notice,
		tos_accepted_at, tos_accepted_ip, created_at, updated_at`

func scanUser(row pgx.Row) (*domain.User, error) {
	u := &domain.User{}
	err := row.Scan(
		&u.ID, &u.Email, &u.Active, &u.Suspended, &u.PayoutsPaused, &u.StripeMigrationNotice,
		&u.TOSAcceptedAt, &u.TOSAcceptedIP, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return u, nil
}

// GetByID fetches a user by UUID (without locking).
func (r *UserRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	u, err := scanUser(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		return nil, fmt.Errorf("get user by id: %w", err)
	}
	return u, nil
}

// GetForUpdate fetches a user with pessimistic locking.
// This MUST be called within a transaction.
func (r *UserRepo) GetForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1 FOR UPDATE`

	u, err := scanUser(tx.QueryRow(ctx, query, id))
	if err != nil {
		return nil, fmt.Errorf("get user for update: %w", err)
	}
	return u, nil
}

// SetPayoutsPaused flips the payout pause flag.
func (r *UserRepo) SetPayoutsPaused(ctx context.Context, id uuid.UUID, paused bool) error {
	query := `UPDATE users SET payouts_paused = $1, updated_at = NOW() WHERE id = $2`

	tag, err := r.pool.Exec(ctx, query, paused, id)
	if err != nil {
		return fmt.Errorf("set payouts paused: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user not found: %s", id)
	}
	return nil
}

// Suspend marks the user suspended. Idempotent: suspending an already
// suspended user keeps the original reason.
func (r *UserRepo) Suspend(ctx context.Context, id uuid.UUID, reason string) error {
	query := `UPDATE users SET suspended = TRUE,
		suspension_reason = COALESCE(suspension_reason, $1),
		updated_at = NOW()
		WHERE id = $2`

	tag, err := r.pool.Exec(ctx, query, reason, id)
	if err != nil {
		return fmt.Errorf("suspend user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user not found: %s", id)
	}
	return nil
}

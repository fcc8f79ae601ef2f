package ports

import (
	"context"
	"time"

	"stripe-account-reconciler/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// UserRepository defines persistence operations for users.
type UserRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	// GetForUpdate locks the user row for the duration of the transaction.
	// Account creation takes this lock so two concurrent requests cannot
	// both pass the duplicate-account check. Always a primary read.
	GetForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.User, error)
	SetPayoutsPaused(ctx context.Context, id uuid.UUID, paused bool) error
	// Suspend marks the user suspended for fraud/risk. Idempotent.
	Suspend(ctx context.Context, id uuid.UUID, reason string) error
}

// ComplianceSnapshotRepository defines read access to compliance snapshots.
// Snapshots are append-only; there are no update operations.
type ComplianceSnapshotRepository interface {
	GetCurrent(ctx context.Context, userID uuid.UUID) (*domain.ComplianceSnapshot, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ComplianceSnapshot, error)
}

// MerchantAccountRepository defines persistence operations for merchant
// accounts.
type MerchantAccountRepository interface {
	// Create inserts inside the account-creation transaction so the row
	// exists before the remote call and failures stay attributable.
	Create(ctx context.Context, tx pgx.Tx, account *domain.MerchantAccount) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.MerchantAccount, error)
	GetAliveByUser(ctx context.Context, userID uuid.UUID, processor string) (*domain.MerchantAccount, error)
	GetByRemoteID(ctx context.Context, remoteID string) (*domain.MerchantAccount, error)
	Update(ctx context.Context, account *domain.MerchantAccount) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
	// GetLatestDeletedManaged returns the most recently soft-deleted
	// platform-managed account for the user, if any.
	GetLatestDeletedManaged(ctx context.Context, userID uuid.UUID) (*domain.MerchantAccount, error)
	// Reactivate clears the soft-delete marker and stamps the account
	// processor-alive again.
	Reactivate(ctx context.Context, id uuid.UUID, aliveAt time.Time) error
}

// BankAccountRepository defines persistence operations for payout
// destinations.
type BankAccountRepository interface {
	GetActiveByUser(ctx context.Context, userID uuid.UUID) (*domain.BankAccount, error)
	Update(ctx context.Context, account *domain.BankAccount) error
}

// RequirementRequestRepository defines persistence for compliance asks.
// Requests are append-only: created, marked provided, never deleted.
type RequirementRequestRepository interface {
	Create(ctx context.Context, request *domain.RequirementRequest) error
	ListOpenByUser(ctx context.Context, userID uuid.UUID) ([]domain.RequirementRequest, error)
	MarkProvided(ctx context.Context, id uuid.UUID, at time.Time) error
	MarkEmailSent(ctx context.Context, ids []uuid.UUID, at time.Time) error
}

// DBTransactor provides database transaction management.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"stripe-account-reconciler/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// MerchantAccountRepo implements ports.MerchantAccountRepository.
type MerchantAccountRepo struct {
	pool Pool
}

// NewMerchantAccountRepo creates a new MerchantAccountRepo.
func NewMerchantAccountRepo(pool Pool) *MerchantAccountRepo {
	return &MerchantAccountRepo{pool: pool}
}

const merchantAccountColumns = `id, user_id, processor, charge_processor_merchant_id, country, currency,
		managed, verification_status, charge_processor_alive_at, deleted_at, created_at, updated_at`

func scanMerchantAccount(row pgx.Row) (*domain.MerchantAccount, error) {
	a := &domain.MerchantAccount{}
	err := row.Scan(
		&a.ID, &a.UserID, &a.Processor, &a.ChargeProcessorMerchantID, &a.Country, &a.Currency,
		&a.Managed, &a.VerificationStatus, &a.ChargeProcessorAliveAt, &a.DeletedAt, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return a, nil
}

// Create inserts a merchant account within the given transaction. The row
// exists before the remote call so failures stay attributable.
func (r *MerchantAccountRepo) Create(ctx context.Context, tx pgx.Tx, account *domain.MerchantAccount) error {
	query := `INSERT INTO merchant_accounts
		(id, user_id, processor, charge_processor_merchant_id, country, currency, managed, verification_status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at, updated_at`

	err := tx.QueryRow(ctx, query,
		account.ID, account.UserID, account.Processor, account.ChargeProcessorMerchantID,
		account.Country, account.Currency, account.Managed, account.VerificationStatus,
	).Scan(&account.CreatedAt, &account.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create merchant account: %w", err)
	}
	return nil
}

// GetByID fetches a merchant account by UUID, soft-deleted rows included.
func (r *MerchantAccountRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.MerchantAccount, error) {
	query := `SELECT ` + merchantAccountColumns + ` FROM merchant_accounts WHERE id = $1`

	a, err := scanMerchantAccount(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		return nil, fmt.Errorf("get merchant account by id: %w", err)
	}
	return a, nil
}

// GetAliveByUser fetches the user's live account for the given processor.
// At most one exists at a time.
func (r *MerchantAccountRepo) GetAliveByUser(ctx context.Context, userID uuid.UUID, processor string) (*domain.MerchantAccount, error) {
	query := `SELECT ` + merchantAccountColumns + ` FROM merchant_accounts
		WHERE user_id = $1 AND processor = $2 AND deleted_at IS NULL
		ORDER BY created_at DESC LIMIT 1`

	a, err := scanMerchantAccount(r.pool.QueryRow(ctx, query, userID, processor))
	if err != nil {
		return nil, fmt.Errorf("get alive merchant account: %w", err)
	}
	return a, nil
}

// GetByRemoteID fetches the live account carrying the processor-side
// identifier. Webhook events are resolved through this lookup.
func (r *MerchantAccountRepo) GetByRemoteID(ctx context.Context, remoteID string) (*domain.MerchantAccount, error) {
	query := `SELECT ` + merchantAccountColumns + ` FROM merchant_accounts
		WHERE charge_processor_merchant_id = $1 AND deleted_at IS NULL
		ORDER BY created_at DESC LIMIT 1`

	a, err := scanMerchantAccount(r.pool.QueryRow(ctx, query, remoteID))
	if err != nil {
		return nil, fmt.Errorf("get merchant account by remote id: %w", err)
	}
	return a, nil
}

// Update persists the mutable columns of a merchant account.
func (r *MerchantAccountRepo) Update(ctx context.Context, account *domain.MerchantAccount) error {
	query := `UPDATE merchant_accounts SET
		charge_processor_merchant_id = $1,
		country = $2,
		currency = $3,
		verification_status = $4,
		charge_processor_alive_at = $5,
		updated_at = NOW()
		WHERE id = $6`

	tag, err := r.pool.Exec(ctx, query,
		account.ChargeProcessorMerchantID, account.Country, account.Currency,
		account.VerificationStatus, account.ChargeProcessorAliveAt, account.ID,
	)
	if err != nil {
		return fmt.Errorf("update merchant account: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("merchant account not found: %s", account.ID)
	}
	return nil
}

// SoftDelete marks the account deleted. Already-deleted rows are left
// untouched so the original deletion time survives retries.
func (r *MerchantAccountRepo) SoftDelete(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE merchant_accounts SET deleted_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL`

	if _, err := r.pool.Exec(ctx, query, id); err != nil {
		return fmt.Errorf("soft delete merchant account: %w", err)
	}
	return nil
}

// GetLatestDeletedManaged returns the most recently soft-deleted
// platform-managed account for the user, if any.
func (r *MerchantAccountRepo) GetLatestDeletedManaged(ctx context.Context, userID uuid.UUID) (*domain.MerchantAccount, error) {
	query := `SELECT ` + merchantAccountColumns + ` FROM merchant_accounts
		WHERE user_id = $1 AND processor = $2 AND managed AND deleted_at IS NOT NULL
		ORDER BY deleted_at DESC LIMIT 1`

	a, err := scanMerchantAccount(r.pool.QueryRow(ctx, query, userID, domain.ProcessorStripe))
	if err != nil {
		return nil, fmt.Errorf("get latest deleted managed account: %w", err)
	}
	return a, nil
}

// Reactivate clears the soft-delete marker and stamps the account
// processor-alive again.
func (r *MerchantAccountRepo) Reactivate(ctx context.Context, id uuid.UUID, aliveAt time.Time) error {
	query := `UPDATE merchant_accounts SET deleted_at = NULL, charge_processor_alive_at = $1, updated_at = NOW()
		WHERE id = $2`

	tag, err := r.pool.Exec(ctx, query, aliveAt, id)
	if err != nil {
		return fmt.Errorf("reactivate merchant account: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("merchant account not found: %s", id)
	}
	return nil
}

package postgres

import (
	"context"
	"errors"
	"fmt"

	"stripe-account-reconciler/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// BankAccountRepo implements ports.BankAccountRepository.
type BankAccountRepo struct {
	pool Pool
}

// NewBankAccountRepo creates a new BankAccountRepo.
func NewBankAccountRepo(pool Pool) *BankAccountRepo {
	return &BankAccountRepo{pool: pool}
}

const bankAccountColumns = `id, user_id, country, currency, account_holder_name, account_number_enc,
		routing_number, is_card, external_account_id, fingerprint, deleted_at, created_at, updated_at`

// GetActiveByUser fetches the user's current payout destination.
func (r *BankAccountRepo) GetActiveByUser(ctx context.Context, userID uuid.UUID) (*domain.BankAccount, error) {
	query := `SELECT ` + bankAccountColumns + ` FROM bank_accounts
		WHERE user_id = $1 AND deleted_at IS NULL
		ORDER BY created_at DESC LIMIT 1`

	b := &domain.BankAccount{}
	err := r.pool.QueryRow(ctx, query, userID).Scan(
		&b.ID, &b.UserID, &b.Country, &b.Currency, &b.AccountHolderName, &b.AccountNumberEnc,
		&b.RoutingNumber, &b.IsCard, &b.ExternalAccountID, &b.Fingerprint, &b.DeletedAt, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get active bank account: %w", err)
	}
	return b, nil
}

// Update persists the remote linkage columns written back after a sync.
func (r *BankAccountRepo) Update(ctx context.Context, account *domain.BankAccount) error {
	query := `UPDATE bank_accounts SET
		external_account_id = $1,
		fingerprint = $2,
		updated_at = NOW()
		WHERE id = $3`

	tag, err := r.pool.Exec(ctx, query, account.ExternalAccountID, account.Fingerprint, account.ID)
	if err != nil {
		return fmt.Errorf("update bank account: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("bank account not found: %s", account.ID)
	}
	return nil
}

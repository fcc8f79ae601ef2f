package postgres

import (
	"context"
	"testing"
	"time"

	"stripe-account-reconciler/internal/core/domain"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMerchantAccount(userID uuid.UUID) *domain.MerchantAccount {
	now := time.Now().UTC().Truncate(time.Microsecond)
	aliveAt := now.Add(-time.Hour)
	return &domain.MerchantAccount{
		ID:                        uuid.New(),
		UserID:                    userID,
		Processor:                 domain.ProcessorStripe,
		ChargeProcessorMerchantID: "acct_1NX2Yz",
		Country:                   "US",
		Currency:                  "usd",
		Managed:                   true,
		VerificationStatus:        domain.VerificationUnverified,
		ChargeProcessorAliveAt:    &aliveAt,
		CreatedAt:                 now,
		UpdatedAt:                 now,
	}
}

func merchantAccountTestColumns() []string {
	return []string{"id", "user_id", "processor", "charge_processor_merchant_id", "country", "currency",
		"managed", "verification_status", "charge_processor_alive_at", "deleted_at", "created_at", "updated_at"}
}

func merchantAccountRow(a *domain.MerchantAccount) *pgxmock.Rows {
	return pgxmock.NewRows(merchantAccountTestColumns()).AddRow(
		a.ID, a.UserID, a.Processor, a.ChargeProcessorMerchantID, a.Country, a.Currency,
		a.Managed, a.VerificationStatus, a.ChargeProcessorAliveAt, a.DeletedAt, a.CreatedAt, a.UpdatedAt,
	)
}

func TestMerchantAccountRepo_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewMerchantAccountRepo(mock)
	a := newTestMerchantAccount(uuid.New())
	now := time.Now().UTC().Truncate(time.Microsecond)

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO merchant_accounts").
		WithArgs(a.ID, a.UserID, a.Processor, a.ChargeProcessorMerchantID,
			a.Country, a.Currency, a.Managed, a.VerificationStatus).
		WillReturnRows(pgxmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.Create(context.Background(), tx, a)
	require.NoError(t, err)
	assert.Equal(t, now, a.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMerchantAccountRepo_GetAliveByUser(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewMerchantAccountRepo(mock)
	a := newTestMerchantAccount(uuid.New())

	mock.ExpectQuery("SELECT .+ FROM merchant_accounts").
		WithArgs(a.UserID, domain.ProcessorStripe).
		WillReturnRows(merchantAccountRow(a))

	result, err := repo.GetAliveByUser(context.Background(), a.UserID, domain.ProcessorStripe)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, a.ID, result.ID)
	assert.True(t, result.IsAlive())
	assert.True(t, result.IsProcessorAlive())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMerchantAccountRepo_GetAliveByUser_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewMerchantAccountRepo(mock)
	userID := uuid.New()

	mock.ExpectQuery("SELECT .+ FROM merchant_accounts").
		WithArgs(userID, domain.ProcessorStripe).
		WillReturnRows(pgxmock.NewRows(merchantAccountTestColumns()))

	result, err := repo.GetAliveByUser(context.Background(), userID, domain.ProcessorStripe)
	require.NoError(t, err)
	assert.Nil(t, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMerchantAccountRepo_GetByRemoteID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewMerchantAccountRepo(mock)
	a := newTestMerchantAccount(uuid.New())

	mock.ExpectQuery("SELECT .+ FROM merchant_accounts").
		WithArgs(a.ChargeProcessorMerchantID).
		WillReturnRows(merchantAccountRow(a))

	result, err := repo.GetByRemoteID(context.Background(), a.ChargeProcessorMerchantID)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, a.ID, result.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMerchantAccountRepo_Update(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewMerchantAccountRepo(mock)
	a := newTestMerchantAccount(uuid.New())
	a.VerificationStatus = domain.VerificationVerified

	mock.ExpectExec("UPDATE merchant_accounts SET").
		WithArgs(a.ChargeProcessorMerchantID, a.Country, a.Currency,
			a.VerificationStatus, a.ChargeProcessorAliveAt, a.ID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err = repo.Update(context.Background(), a)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMerchantAccountRepo_Update_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewMerchantAccountRepo(mock)
	a := newTestMerchantAccount(uuid.New())

	mock.ExpectExec("UPDATE merchant_accounts SET").
		WithArgs(a.ChargeProcessorMerchantID, a.Country, a.Currency,
			a.VerificationStatus, a.ChargeProcessorAliveAt, a.ID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err = repo.Update(context.Background(), a)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "merchant account not found")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMerchantAccountRepo_SoftDelete(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewMerchantAccountRepo(mock)
	id := uuid.New()

	mock.ExpectExec("UPDATE merchant_accounts SET deleted_at").
		WithArgs(id).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err = repo.SoftDelete(context.Background(), id)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMerchantAccountRepo_SoftDelete_AlreadyDeleted(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewMerchantAccountRepo(mock)
	id := uuid.New()

	mock.ExpectExec("UPDATE merchant_accounts SET deleted_at").
		WithArgs(id).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err = repo.SoftDelete(context.Background(), id)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMerchantAccountRepo_GetLatestDeletedManaged(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewMerchantAccountRepo(mock)
	a := newTestMerchantAccount(uuid.New())
	deletedAt := time.Now().UTC().Truncate(time.Microsecond)
	a.DeletedAt = &deletedAt

	mock.ExpectQuery("SELECT .+ FROM merchant_accounts").
		WithArgs(a.UserID, domain.ProcessorStripe).
		WillReturnRows(merchantAccountRow(a))

	result, err := repo.GetLatestDeletedManaged(context.Background(), a.UserID)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.False(t, result.IsAlive())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMerchantAccountRepo_Reactivate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewMerchantAccountRepo(mock)
	id := uuid.New()
	aliveAt := time.Now().UTC().Truncate(time.Microsecond)

	mock.ExpectExec("UPDATE merchant_accounts SET deleted_at = NULL").
		WithArgs(aliveAt, id).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err = repo.Reactivate(context.Background(), id, aliveAt)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

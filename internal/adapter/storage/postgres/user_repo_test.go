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

func newTestUser() *domain.User {
	now := time.Now().UTC().Truncate(time.Microsecond)
	tosAt := now.Add(-24 * time.Hour)
	tosIP := "203.0.113.7"
	return &domain.User{
		ID:                    uuid.New(),
		Email:                 "creator@example.com",
		Active:                true,
		Suspended:             false,
		PayoutsPaused:         false,
		StripeMigrationNotice: true,
		TOSAcceptedAt:         &tosAt,
		TOSAcceptedIP:         &tosIP,
		CreatedAt:             now,
		UpdatedAt:             now,
	}
}

func userTestColumns() []string {
	return []string{"id", "email", "active", "suspended", "payouts_paused", "stripe_migration_notice",
		"tos_accepted_at", "tos_accepted_ip", "created_at", "updated_at"}
}

func userRow(u *domain.User) *pgxmock.Rows {
	return pgxmock.NewRows(userTestColumns()).AddRow(
		u.ID, u.Email, u.Active, u.Suspended, u.PayoutsPaused, u.StripeMigrationNotice,
		u.TOSAcceptedAt, u.TOSAcceptedIP, u.CreatedAt, u.UpdatedAt,
	)
}

func TestUserRepo_GetByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewUserRepo(mock)
	u := newTestUser()

	mock.ExpectQuery("SELECT .+ FROM users WHERE id").
		WithArgs(u.ID).
		WillReturnRows(userRow(u))

	result, err := repo.GetByID(context.Background(), u.ID)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, u.ID, result.ID)
	assert.Equal(t, u.Email, result.Email)
	assert.True(t, result.HasAcceptedTOS())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepo_GetByID_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewUserRepo(mock)
	id := uuid.New()

	mock.ExpectQuery("SELECT .+ FROM users WHERE id").
		WithArgs(id).
		WillReturnRows(pgxmock.NewRows(userTestColumns()))

	result, err := repo.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.Nil(t, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepo_GetForUpdate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewUserRepo(mock)
	u := newTestUser()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT .+ FROM users WHERE id .+ FOR UPDATE").
		WithArgs(u.ID).
		WillReturnRows(userRow(u))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	result, err := repo.GetForUpdate(context.Background(), tx, u.ID)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, u.ID, result.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepo_SetPayoutsPaused(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewUserRepo(mock)
	id := uuid.New()

	mock.ExpectExec("UPDATE users SET payouts_paused").
		WithArgs(true, id).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err = repo.SetPayoutsPaused(context.Background(), id, true)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepo_SetPayoutsPaused_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewUserRepo(mock)
	id := uuid.New()

	mock.ExpectExec("UPDATE users SET payouts_paused").
		WithArgs(false, id).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err = repo.SetPayoutsPaused(context.Background(), id, false)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "user not found")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepo_Suspend(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewUserRepo(mock)
	id := uuid.New()

	mock.ExpectExec("UPDATE users SET suspended").
		WithArgs("stripe_risk_rejection", id).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err = repo.Suspend(context.Background(), id, "stripe_risk_rejection")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

package redis

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func popJob(t *testing.T, client *goredis.Client) notificationJob {
	t.Helper()
	payload, err := client.RPop(context.Background(), "queue:notifications").Bytes()
	require.NoError(t, err)

	var job notificationJob
	require.NoError(t, json.Unmarshal(payload, &job))
	return job
}

func TestNotifyQueue_MoreKYCNeeded(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	queue := NewNotifyQueue(client)
	userID := uuid.New()

	err := queue.MoreKYCNeeded(context.Background(), userID, []string{"individual_tax_id", "bank_account"})
	require.NoError(t, err)

	job := popJob(t, client)
	assert.Equal(t, TemplateMoreKYCNeeded, job.Template)
	assert.Equal(t, userID, job.UserID)
	assert.Equal(t, []any{"individual_tax_id", "bank_account"}, job.Params["fields"])
	assert.False(t, job.EnqueuedAt.IsZero())
}

func TestNotifyQueue_IdentityVerificationFailed(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	queue := NewNotifyQueue(client)
	userID := uuid.New()

	err := queue.IdentityVerificationFailed(context.Background(), userID, "The name on the account could not be verified")
	require.NoError(t, err)

	job := popJob(t, client)
	assert.Equal(t, TemplateIdentityVerificationFailed, job.Template)
	assert.Equal(t, "The name on the account could not be verified", job.Params["reason"])
}

func TestNotifyQueue_NoParamTemplates(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	queue := NewNotifyQueue(client)
	ctx := context.Background()
	userID := uuid.New()

	require.NoError(t, queue.AccountDeauthorized(ctx, userID))
	require.NoError(t, queue.ChargesDisabled(ctx, userID))
	require.NoError(t, queue.PayoutsDisabled(ctx, userID))
	require.NoError(t, queue.InvalidBankAccount(ctx, userID))
	require.NoError(t, queue.WelcomeWorkflow(ctx, userID))

	// RPop drains oldest first
	for _, want := range []string{
		TemplateAccountDeauthorized,
		TemplateChargesDisabled,
		TemplatePayoutsDisabled,
		TemplateInvalidBankAccount,
		TemplateWelcomeWorkflow,
	} {
		job := popJob(t, client)
		assert.Equal(t, want, job.Template)
		assert.Equal(t, userID, job.UserID)
		assert.Nil(t, job.Params)
	}
}

func TestNotifyQueue_QueueOrder(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	queue := NewNotifyQueue(client)
	ctx := context.Background()

	firstUser := uuid.New()
	secondUser := uuid.New()

	require.NoError(t, queue.RemediationNeeded(ctx, firstUser))
	require.NoError(t, queue.DocumentVerificationFailed(ctx, secondUser, []string{"individual_verification_document"}))

	job := popJob(t, client)
	assert.Equal(t, TemplateRemediationNeeded, job.Template)
	assert.Equal(t, firstUser, job.UserID)

	job = popJob(t, client)
	assert.Equal(t, TemplateDocumentVerificationFailed, job.Template)
	assert.Equal(t, secondUser, job.UserID)
}

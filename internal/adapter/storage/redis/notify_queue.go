package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

// Notification email template names consumed by the mailer workers.
const (
	TemplateAccountDeauthorized        = "account_deauthorized"
	TemplateRemediationNeeded          = "remediation_needed"
	TemplateChargesDisabled            = "charges_disabled"
	TemplatePayoutsDisabled            = "payouts_disabled"
	TemplateDocumentVerificationFailed = "document_verification_failed"
	TemplateIdentityVerificationFailed = "identity_verification_failed"
	TemplateMoreKYCNeeded              = "more_kyc_needed"
	TemplateInvalidBankAccount         = "invalid_bank_account"
	TemplateWelcomeWorkflow            = "welcome_workflow"
)

// notificationJob is the wire format pushed onto the mailer queue.
type notificationJob struct {
	Template   string         `json:"template"`
	UserID     uuid.UUID      `json:"user_id"`
	Params     map[string]any `json:"params,omitempty"`
	EnqueuedAt time.Time      `json:"enqueued_at"`
}

// NotifyQueue implements ports.Notifier by pushing template jobs onto a
// Redis list drained by the mailer workers.
type NotifyQueue struct {
	client *goredis.Client
	queue  string
}

// NewNotifyQueue creates a new Redis-backed notification queue.
func NewNotifyQueue(client *goredis.Client) *NotifyQueue {
	return &NotifyQueue{
		client: client,
		queue:  "queue:notifications",
	}
}

func (q *NotifyQueue) enqueue(ctx context.Context, template string, userID uuid.UUID, params map[string]any) error {
	job := notificationJob{
		Template:   template,
		UserID:     userID,
		Params:     params,
		EnqueuedAt: time.Now().UTC(),
	}
	payload, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("marshal notification job: %w", err)
	}
	if err := q.client.LPush(ctx, q.queue, payload).Err(); err != nil {
		return fmt.Errorf("enqueue notification %s: %w", template, err)
	}
	return nil
}

// AccountDeauthorized notifies the user that their account was disconnected
// on the processor side.
func (q *NotifyQueue) AccountDeauthorized(ctx context.Context, userID uuid.UUID) error {
	return q.enqueue(ctx, TemplateAccountDeauthorized, userID, nil)
}

// RemediationNeeded asks the user to fix their account status.
func (q *NotifyQueue) RemediationNeeded(ctx context.Context, userID uuid.UUID) error {
	return q.enqueue(ctx, TemplateRemediationNeeded, userID, nil)
}

// ChargesDisabled notifies the user that sales are paused.
func (q *NotifyQueue) ChargesDisabled(ctx context.Context, userID uuid.UUID) error {
	return q.enqueue(ctx, TemplateChargesDisabled, userID, nil)
}

// PayoutsDisabled notifies the user that payouts are paused.
func (q *NotifyQueue) PayoutsDisabled(ctx context.Context, userID uuid.UUID) error {
	return q.enqueue(ctx, TemplatePayoutsDisabled, userID, nil)
}

// DocumentVerificationFailed notifies the user that an uploaded document was
// rejected.
func (q *NotifyQueue) DocumentVerificationFailed(ctx context.Context, userID uuid.UUID, fields []string) error {
	return q.enqueue(ctx, TemplateDocumentVerificationFailed, userID, map[string]any{"fields": fields})
}

// IdentityVerificationFailed notifies the user that identity verification
// failed, with the processor's stated reason.
func (q *NotifyQueue) IdentityVerificationFailed(ctx context.Context, userID uuid.UUID, reason string) error {
	return q.enqueue(ctx, TemplateIdentityVerificationFailed, userID, map[string]any{"reason": reason})
}

// MoreKYCNeeded asks the user for additional compliance fields.
func (q *NotifyQueue) MoreKYCNeeded(ctx context.Context, userID uuid.UUID, fields []string) error {
	return q.enqueue(ctx, TemplateMoreKYCNeeded, userID, map[string]any{"fields": fields})
}

// InvalidBankAccount asks the user to re-enter their payout details.
func (q *NotifyQueue) InvalidBankAccount(ctx context.Context, userID uuid.UUID) error {
	return q.enqueue(ctx, TemplateInvalidBankAccount, userID, nil)
}

// WelcomeWorkflow kicks off the post-creation onboarding sequence.
func (q *NotifyQueue) WelcomeWorkflow(ctx context.Context, userID uuid.UUID) error {
	return q.enqueue(ctx, TemplateWelcomeWorkflow, userID, nil)
}

package ports

import (
	"context"
	"time"

	"stripe-account-reconciler/internal/attrtree"
	"stripe-account-reconciler/internal/core/domain"

	"github.com/google/uuid"
)

// EncryptionService handles AES-256-GCM encryption/decryption of compliance
// secrets (tax IDs, account numbers). Plaintext never reaches persistence.
type EncryptionService interface {
	Encrypt(plaintext string) (string, error)
	Decrypt(ciphertext string) (string, error)
}

// StripeClient is the remote payment-processor API. All calls are
// synchronous blocking I/O; retries are the adapter's concern, not the
// core's.
type StripeClient interface {
	CreateAccount(ctx context.Context, params attrtree.Tree) (*domain.RemoteAccount, error)
	GetAccount(ctx context.Context, accountID string) (*domain.RemoteAccount, error)
	UpdateAccount(ctx context.Context, accountID string, params attrtree.Tree) (*domain.RemoteAccount, error)
	CreatePerson(ctx context.Context, accountID string, params attrtree.Tree) (*domain.RemotePerson, error)
	UpdatePerson(ctx context.Context, accountID, personID string, params attrtree.Tree) (*domain.RemotePerson, error)
	ListPersons(ctx context.Context, accountID string) ([]domain.RemotePerson, error)
}

// Notifier queues user-facing notification emails by named template.
// All methods are fire-and-forget: an enqueue failure never rolls back the
// state transition that triggered it.
type Notifier interface {
	AccountDeauthorized(ctx context.Context, userID uuid.UUID) error
	RemediationNeeded(ctx context.Context, userID uuid.UUID) error
	ChargesDisabled(ctx context.Context, userID uuid.UUID) error
	PayoutsDisabled(ctx context.Context, userID uuid.UUID) error
	DocumentVerificationFailed(ctx context.Context, userID uuid.UUID, fields []string) error
	IdentityVerificationFailed(ctx context.Context, userID uuid.UUID, reason string) error
	MoreKYCNeeded(ctx context.Context, userID uuid.UUID, fields []string) error
	InvalidBankAccount(ctx context.Context, userID uuid.UUID) error
	WelcomeWorkflow(ctx context.Context, userID uuid.UUID) error
}

// WebhookVerifier checks the processor's webhook signature header.
type WebhookVerifier interface {
	Verify(payload []byte, header string, at time.Time) error
}

// TokenService issues and validates bearer tokens for the internal
// orchestration API.
type TokenService interface {
	Generate(subject string) (string, time.Time, error)
	Validate(tokenString string) (string, error)
}

// EventStore deduplicates webhook deliveries.
type EventStore interface {
	// MarkProcessed records the event id and returns true if this is the
	// first delivery.
	MarkProcessed(ctx context.Context, eventID string, ttl time.Duration) (bool, error)
}

// ReconcilerService exposes the orchestrator operations. Triggered by
// internal jobs and the webhook interpreter, never directly by end users.
type ReconcilerService interface {
	CreateAccount(ctx context.Context, userID uuid.UUID, fromAdmin bool) (*domain.MerchantAccount, error)
	UpdateAccount(ctx context.Context, userID uuid.UUID) error
	UpdateBankAccount(ctx context.Context, userID uuid.UUID) (*domain.BankAccount, error)
	Disconnect(ctx context.Context, userID uuid.UUID) error
}

// WebhookService interprets inbound processor events.
type WebhookService interface {
	HandleEvent(ctx context.Context, event domain.StripeEvent) error
}

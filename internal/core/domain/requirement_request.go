package domain

import (
	"time"

	"github.com/google/uuid"
)

// RequirementRequestState is the lifecycle state of a compliance ask.
type RequirementRequestState string

const (
	RequirementRequested RequirementRequestState = "requested"
	RequirementProvided  RequirementRequestState = "provided"
)

// RequirementRequest records an outstanding compliance-field ask surfaced by
// the processor. Rows are append-only: a request is marked provided when the
// processor stops listing the field, never deleted.
//
// FieldID holds an internal compliance-field identifier, except for the
// risk namespace (interv_ prefix) which is passed through verbatim.
type RequirementRequest struct {
	ID                      uuid.UUID               `json:"id"`
	UserID                  uuid.UUID               `json:"user_id"`
	MerchantAccountID       uuid.UUID               `json:"merchant_account_id"`
	FieldID                 string                  `json:"field_id"`
	State                   RequirementRequestState `json:"state"`
	DueAt                   *time.Time              `json:"due_at,omitempty"`
	PartialProvisionAllowed bool                    `json:"partial_provision_allowed"`
	StripeEventID           string                  `json:"stripe_event_id"` // provenance
	VerificationErrorCode   *string                 `json:"verification_error_code,omitempty"`
	VerificationErrorReason *string                 `json:"verification_error_reason,omitempty"`
	EmailSentAt             *time.Time              `json:"email_sent_at,omitempty"`
	ProvidedAt              *time.Time              `json:"provided_at,omitempty"`
	CreatedAt               time.Time               `json:"created_at"`
}

// IsOpen returns true while the processor still wants the field.
func (r *RequirementRequest) IsOpen() bool {
	return r.State == RequirementRequested
}

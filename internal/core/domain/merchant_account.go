package domain

import (
	"time"

	"github.com/google/uuid"
)

// ProcessorStripe is the charge-processor identifier for Stripe.
const ProcessorStripe = "stripe"

// VerificationStatus is the processor-side identity verification state of
// a merchant account. Transitions are one-way-at-a-time and idempotent in
// both directions.
type VerificationStatus string

const (
	VerificationUnverified VerificationStatus = "unverified"
	VerificationVerified   VerificationStatus = "verified"
)

// MerchantAccount is the local record of a remote processor-hosted payment
// account. At most one alive account per (user, processor) exists at a time.
type MerchantAccount struct {
	ID                        uuid.UUID          `json:"id"`
	UserID                    uuid.UUID          `json:"user_id"`
	Processor                 string             `json:"processor"`
	ChargeProcessorMerchantID string             `json:"charge_processor_merchant_id"` // acct_..., empty until the remote create succeeds
	Country                   string             `json:"country"`
	Currency                  string             `json:"currency"`
	Managed                   bool               `json:"managed"` // platform-created custom account (vs. creator-connected)
	VerificationStatus        VerificationStatus `json:"verification_status"`
	ChargeProcessorAliveAt    *time.Time         `json:"charge_processor_alive_at,omitempty"`
	DeletedAt                 *time.Time         `json:"deleted_at,omitempty"`
	CreatedAt                 time.Time          `json:"created_at"`
	UpdatedAt                 time.Time          `json:"updated_at"`
}

// IsAlive returns true if the account has not been soft-deleted.
func (m *MerchantAccount) IsAlive() bool {
	return m.DeletedAt == nil
}

// IsProcessorAlive returns true once the remote account has been confirmed
// live on the processor side.
func (m *MerchantAccount) IsProcessorAlive() bool {
	return m.ChargeProcessorAliveAt != nil
}

// IsVerified returns true if the processor has verified the account identity.
func (m *MerchantAccount) IsVerified() bool {
	return m.VerificationStatus == VerificationVerified
}

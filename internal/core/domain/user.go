package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents a creator eligible to hold a payment-processor account.
type User struct {
	ID                    uuid.UUID  `json:"id"`
	Email                 string     `json:"email"`
	Active                bool       `json:"active"`
	Suspended             bool       `json:"suspended"`
	PayoutsPaused         bool       `json:"payouts_paused"`
	StripeMigrationNotice bool       `json:"stripe_migration_notice"` // opted in to migration/deauthorization notices
	TOSAcceptedAt         *time.Time `json:"tos_accepted_at,omitempty"`
	TOSAcceptedIP         *string    `json:"tos_accepted_ip,omitempty"`
	CreatedAt             time.Time  `json:"created_at"`
	UpdatedAt             time.Time  `json:"updated_at"`
}

// HasAcceptedTOS returns true if the user holds a terms-of-service acceptance record.
func (u *User) HasAcceptedTOS() bool {
	return u.TOSAcceptedAt != nil
}

// CanHoldMerchantAccount returns true if the user account is in a state
// that permits creating or updating a processor account.
func (u *User) CanHoldMerchantAccount() bool {
	return u.Active && !u.Suspended
}

package domain

import (
	"time"

	"github.com/google/uuid"
)

// BankAccount is the local record of a payout destination. The remote side
// only ever holds one external account at a time; attaching a new one
// supersedes the old record wholesale.
type BankAccount struct {
	ID                uuid.UUID  `json:"id"`
	UserID            uuid.UUID  `json:"user_id"`
	Country           string     `json:"country"`
	Currency          string     `json:"currency"`
	AccountHolderName string     `json:"account_holder_name"`
	AccountNumberEnc  string     `json:"-"` // encrypted at rest
	RoutingNumber     string     `json:"routing_number,omitempty"`
	IsCard            bool       `json:"is_card"` // card-linked payout, synced lazily once charges are enabled
	ExternalAccountID *string    `json:"external_account_id,omitempty"`
	Fingerprint       *string    `json:"fingerprint,omitempty"`
	DeletedAt         *time.Time `json:"deleted_at,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

// IsSynced returns true once the remote external-account identifier has been
// persisted locally.
func (b *BankAccount) IsSynced() bool {
	return b.ExternalAccountID != nil && *b.ExternalAccountID != ""
}

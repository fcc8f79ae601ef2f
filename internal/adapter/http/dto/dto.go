package dto

// AccountRequest identifies the user whose account should be reconciled.
type AccountRequest struct {
	UserID    string `json:"user_id" binding:"required,uuid"`
	FromAdmin bool   `json:"from_admin"`
}

// MerchantAccountResponse is the external view of a merchant account.
type MerchantAccountResponse struct {
	ID                        string  `json:"id"`
	UserID                    string  `json:"user_id"`
	Processor                 string  `json:"processor"`
	ChargeProcessorMerchantID string  `json:"charge_processor_merchant_id"`
	Country                   string  `json:"country"`
	Currency                  string  `json:"currency"`
	VerificationStatus        string  `json:"verification_status"`
	ChargeProcessorAliveAt    *string `json:"charge_processor_alive_at,omitempty"`
	CreatedAt                 string  `json:"created_at"`
}

// BankAccountResponse is the external view of a payout destination.
type BankAccountResponse struct {
	ID                string  `json:"id"`
	Country           string  `json:"country"`
	Currency          string  `json:"currency"`
	IsCard            bool    `json:"is_card"`
	ExternalAccountID *string `json:"external_account_id,omitempty"`
	Synced            bool    `json:"synced"`
}

// WebhookAckResponse acknowledges a webhook delivery.
type WebhookAckResponse struct {
	Received  bool `json:"received"`
	Duplicate bool `json:"duplicate,omitempty"`
}

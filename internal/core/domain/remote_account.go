package domain

import "time"

// Remote account types. Only custom accounts are platform-managed; the
// requirements handler ignores everything else.
const (
	RemoteAccountTypeCustom   = "custom"
	RemoteAccountTypeStandard = "standard"
)

// Disabled reasons that make a charges/payouts-disabled transition
// user-actionable.
const (
	DisabledReasonRequestedCapabilities = "action_required.requested_capabilities"
	DisabledReasonPastDue               = "requirements.past_due"
)

// RemotePersonVerified is the processor-side verified status string.
const RemotePersonVerified = "verified"

// RemoteAccount is the processor's account object as delivered by the API
// and by account.updated webhooks. Only the fields the reconciliation core
// depends on are decoded.
type RemoteAccount struct {
	ID                 string                     `json:"id"`
	Object             string                     `json:"object"`
	Type               string                     `json:"type"`
	Country            string                     `json:"country"`
	DefaultCurrency    string                     `json:"default_currency"`
	BusinessType       string                     `json:"business_type"`
	ChargesEnabled     bool                       `json:"charges_enabled"`
	PayoutsEnabled     bool                       `json:"payouts_enabled"`
	Metadata           map[string]string          `json:"metadata"`
	Capabilities       map[string]string          `json:"capabilities"` // capability -> status
	Individual         *RemotePerson              `json:"individual,omitempty"`
	Requirements       *RemoteRequirements        `json:"requirements,omitempty"`
	FutureRequirements *RemoteRequirements        `json:"future_requirements,omitempty"`
	ExternalAccounts   *RemoteExternalAccountList `json:"external_accounts,omitempty"`
}

// CapabilityKeys returns the capabilities the remote account currently
// carries, in no particular order.
func (a *RemoteAccount) CapabilityKeys() []string {
	keys := make([]string, 0, len(a.Capabilities))
	for k := range a.Capabilities {
		keys = append(keys, k)
	}
	return keys
}

// FirstExternalAccount returns the attached external account, if any.
func (a *RemoteAccount) FirstExternalAccount() *RemoteExternalAccount {
	if a.ExternalAccounts == nil || len(a.ExternalAccounts.Data) == 0 {
		return nil
	}
	return &a.ExternalAccounts.Data[0]
}

// RemotePerson is a person sub-resource of a remote account.
type RemotePerson struct {
	ID           string              `json:"id"`
	Object       string              `json:"object"`
	Verification *RemoteVerification `json:"verification,omitempty"`
}

// RemoteVerification holds a person's verification state.
type RemoteVerification struct {
	Status string `json:"status"`
}

// RemoteRequirements mirrors the requirements / future_requirements hash on
// a remote account.
type RemoteRequirements struct {
	CurrentDeadline int64                          `json:"current_deadline,omitempty"` // unix seconds, 0 = none
	CurrentlyDue    []string                       `json:"currently_due"`
	EventuallyDue   []string                       `json:"eventually_due"`
	PastDue         []string                       `json:"past_due"`
	DisabledReason  string                         `json:"disabled_reason,omitempty"`
	Alternatives    []RemoteRequirementAlternative `json:"alternatives,omitempty"`
	Errors          []RemoteRequirementError       `json:"errors,omitempty"`
}

// Deadline returns the current deadline as a time, or nil when unset.
func (r *RemoteRequirements) Deadline() *time.Time {
	if r == nil || r.CurrentDeadline == 0 {
		return nil
	}
	t := time.Unix(r.CurrentDeadline, 0).UTC()
	return &t
}

// RemoteRequirementAlternative is a group of fields that can satisfy a
// requirement in place of the originally requested ones.
type RemoteRequirementAlternative struct {
	OriginalFieldsDue    []string `json:"original_fields_due"`
	AlternativeFieldsDue []string `json:"alternative_fields_due"`
}

// RemoteRequirementError is a verification error attached to a requirement.
type RemoteRequirementError struct {
	Requirement string `json:"requirement"`
	Code        string `json:"code"`
	Reason      string `json:"reason"`
}

// RemoteExternalAccountList wraps the external_accounts list object.
type RemoteExternalAccountList struct {
	Data []RemoteExternalAccount `json:"data"`
}

// RemoteExternalAccount is an attached bank account or card payout
// destination.
type RemoteExternalAccount struct {
	ID          string `json:"id"`
	Object      string `json:"object"`
	Fingerprint string `json:"fingerprint,omitempty"`
}

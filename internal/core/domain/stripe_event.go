package domain

import "encoding/json"

// Webhook event types the interpreter acts on.
const (
	EventAccountUpdated      = "account.updated"
	EventCapabilityUpdated   = "capability.updated"
	EventAccountDeauthorized = "account.application.deauthorized"
)

// StripeEvent is the inbound webhook envelope. Deauthorization events carry
// the affected account in the top-level Account field instead of a payload
// object.
type StripeEvent struct {
	ID      string          `json:"id"`
	Type    string          `json:"type"`
	Account string          `json:"account,omitempty"`
	UserID  string          `json:"user_id,omitempty"` // legacy deauthorization envelopes
	Data    StripeEventData `json:"data"`
}

// StripeEventData wraps the event payload and the attribute values it
// replaced.
type StripeEventData struct {
	Object             json.RawMessage `json:"object"`
	PreviousAttributes map[string]any  `json:"previous_attributes,omitempty"`
}

// PreviousBool reads a boolean out of previous_attributes. The second return
// reports whether the attribute was present in the delta at all.
func (d StripeEventData) PreviousBool(key string) (bool, bool) {
	v, ok := d.PreviousAttributes[key]
	if !ok {
		return false, false
	}
	b, ok := v.(bool)
	return b, ok
}

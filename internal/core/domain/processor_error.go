package domain

import "fmt"

// Processor error types as reported by the remote API.
const (
	ProcessorErrorTypeCard       = "card_error"
	ProcessorErrorTypeInvalidReq = "invalid_request_error"
	ProcessorErrorTypeAPI        = "api_error"
)

// ProcessorError is a structured error returned by the remote payment
// processor. Services pattern-match on Type/Message to decide whether a
// failure is user-actionable, re-raisable, or best-effort swallowed.
type ProcessorError struct {
	Type        string `json:"type"`
	Code        string `json:"code,omitempty"`
	DeclineCode string `json:"decline_code,omitempty"`
	Param       string `json:"param,omitempty"`
	Message     string `json:"message"`
	HTTPStatus  int    `json:"-"`
}

func (e *ProcessorError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("processor error [%s/%s]: %s", e.Type, e.Code, e.Message)
	}
	return fmt.Sprintf("processor error [%s]: %s", e.Type, e.Message)
}

// IsCardError reports whether the failure is a card-decline-class error.
// These are re-raised rather than swallowed by bank-account updates.
func (e *ProcessorError) IsCardError() bool {
	return e.Type == ProcessorErrorTypeCard
}

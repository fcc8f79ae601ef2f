package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// Validation creates a request validation error.
func Validation(detail string) *AppError {
	return New("VAL_001", detail, http.StatusBadRequest)
}

// ---- Webhook ingest (SEC / HOOK) ----

func ErrInvalidWebhookSignature() *AppError {
	return New("SEC_001", "Invalid webhook signature", http.StatusUnauthorized)
}

func ErrWebhookTimestampExpired() *AppError {
	return New("SEC_002", "Webhook timestamp outside tolerance", http.StatusUnauthorized)
}

func ErrInvalidToken() *AppError {
	return New("SEC_003", "Invalid or expired token", http.StatusUnauthorized)
}

// ErrMalformedWebhook indicates an upstream contract break: the envelope is
// missing the expected object. Surfaced to the operator, never dropped.
func ErrMalformedWebhook(detail string) *AppError {
	return New("HOOK_001", fmt.Sprintf("Malformed webhook payload: %s", detail), http.StatusBadRequest)
}

// ErrUnknownMerchantAccount distinguishes "no merchant account at all"
// (a bug signal) from "account not alive" (expected and ignorable).
func ErrUnknownMerchantAccount(remoteID string) *AppError {
	return New("HOOK_002", fmt.Sprintf("No merchant account for remote id %s", remoteID), http.StatusInternalServerError)
}

// ---- Account reconciliation (ACC) ----

func ErrUnsupportedCountry(alpha2 string) *AppError {
	return New("ACC_001", fmt.Sprintf("Payouts are not supported in country %q", alpha2), http.StatusUnprocessableEntity)
}

func ErrDuplicateAccount() *AppError {
	return New("ACC_002", "User already holds a live account with this processor", http.StatusConflict)
}

func ErrTOSNotAccepted() *AppError {
	return New("ACC_003", "Terms of service have not been accepted", http.StatusUnprocessableEntity)
}

func ErrNoComplianceSnapshot() *AppError {
	return New("ACC_004", "No compliance snapshot on file", http.StatusUnprocessableEntity)
}

func ErrBankCurrencyMismatch(bank, account string) *AppError {
	return New("ACC_005", fmt.Sprintf("Bank account currency %q does not match account currency %q", bank, account), http.StatusUnprocessableEntity)
}

func ErrNoLinkedAccount() *AppError {
	return New("ACC_006", "User has no linked merchant account", http.StatusUnprocessableEntity)
}

func ErrDisconnectIneligible() *AppError {
	return New("ACC_007", "Account is not eligible for disconnect", http.StatusUnprocessableEntity)
}

func ErrNotFound(entity string) *AppError {
	return New("ACC_008", fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

func ErrUserIneligible() *AppError {
	return New("ACC_009", "User is not eligible to hold a merchant account", http.StatusUnprocessableEntity)
}

// ---- System & Infrastructure (SYS) ----

func ErrEncryptionFailure(err error) *AppError {
	return Wrap("SYS_002", "Encryption service failure", http.StatusInternalServerError, err)
}

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

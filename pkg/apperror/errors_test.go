package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		appErr   *AppError
		expected string
	}{
		{
			name:     "without wrapped error",
			appErr:   New("ACC_002", "Duplicate account", http.StatusConflict),
			expected: "[ACC_002] Duplicate account",
		},
		{
			name:     "with wrapped error",
			appErr:   Wrap("SYS_001", "DB error", http.StatusInternalServerError, fmt.Errorf("connection refused")),
			expected: "[SYS_001] DB error: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.appErr.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	inner := fmt.Errorf("inner error")
	appErr := Wrap("SYS_001", "wrapped", http.StatusInternalServerError, inner)

	assert.True(t, errors.Is(appErr, inner))
}

func TestAppError_IsNilUnwrap(t *testing.T) {
	appErr := New("ACC_001", "test", http.StatusBadRequest)
	assert.Nil(t, appErr.Unwrap())
}

func TestWebhookErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		code       string
		httpStatus int
	}{
		{"InvalidWebhookSignature", ErrInvalidWebhookSignature(), "SEC_001", 401},
		{"WebhookTimestampExpired", ErrWebhookTimestampExpired(), "SEC_002", 401},
		{"InvalidToken", ErrInvalidToken(), "SEC_003", 401},
		{"MalformedWebhook", ErrMalformedWebhook("missing object"), "HOOK_001", 400},
		{"UnknownMerchantAccount", ErrUnknownMerchantAccount("acct_123"), "HOOK_002", 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.httpStatus, tt.err.HTTPStatus)
		})
	}
}

func TestAccountErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		code       string
		httpStatus int
	}{
		{"UnsupportedCountry", ErrUnsupportedCountry("XX"), "ACC_001", 422},
		{"DuplicateAccount", ErrDuplicateAccount(), "ACC_002", 409},
		{"TOSNotAccepted", ErrTOSNotAccepted(), "ACC_003", 422},
		{"NoComplianceSnapshot", ErrNoComplianceSnapshot(), "ACC_004", 422},
		{"BankCurrencyMismatch", ErrBankCurrencyMismatch("usd", "cad"), "ACC_005", 422},
		{"NoLinkedAccount", ErrNoLinkedAccount(), "ACC_006", 422},
		{"DisconnectIneligible", ErrDisconnectIneligible(), "ACC_007", 422},
		{"NotFound", ErrNotFound("User"), "ACC_008", 404},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.httpStatus, tt.err.HTTPStatus)
		})
	}
}

func TestSystemErrors(t *testing.T) {
	inner := fmt.Errorf("pg: connection closed")
	intErr := InternalError(inner)
	assert.Equal(t, "SYS_001", intErr.Code)
	assert.Equal(t, 500, intErr.HTTPStatus)
	assert.True(t, errors.Is(intErr, inner))

	encErr := ErrEncryptionFailure(inner)
	assert.Equal(t, "SYS_002", encErr.Code)
	assert.Equal(t, 500, encErr.HTTPStatus)
}

func TestErrorMessagesCarryContext(t *testing.T) {
	assert.Contains(t, ErrUnsupportedCountry("ZZ").Message, "ZZ")
	assert.Contains(t, ErrUnknownMerchantAccount("acct_9").Message, "acct_9")
	assert.Contains(t, ErrNotFound("Merchant account").Message, "Merchant account")
}

package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"time"

	"stripe-account-reconciler/pkg/apperror"
)

// StripeWebhookVerifier implements ports.WebhookVerifier for the processor's
// signature header. The header carries a unix timestamp and one or more
// HMAC-SHA256 signatures over "<timestamp>.<payload>".
type StripeWebhookVerifier struct {
	secret    []byte
	tolerance time.Duration
}

// NewStripeWebhookVerifier creates a verifier with the given signing secret.
// tolerance bounds the accepted clock skew between the signed timestamp and
// receipt; zero means no timestamp check.
func NewStripeWebhookVerifier(secret string, tolerance time.Duration) *StripeWebhookVerifier {
	return &StripeWebhookVerifier{secret: []byte(secret), tolerance: tolerance}
}

// Verify checks the signature header against the raw payload.
// Uses constant-time comparison to prevent timing attacks.
func (v *StripeWebhookVerifier) Verify(payload []byte, header string, at time.Time) error {
	timestamp, signatures, err := parseSignatureHeader(header)
	if err != nil {
		return apperror.ErrInvalidWebhookSignature()
	}

	if v.tolerance > 0 {
		signedAt := time.Unix(timestamp, 0)
		if at.Sub(signedAt) > v.tolerance || signedAt.Sub(at) > v.tolerance {
			return apperror.ErrWebhookTimestampExpired()
		}
	}

	expected := v.sign(timestamp, payload)
	for _, sig := range signatures {
		decoded, err := hex.DecodeString(sig)
		if err != nil {
			continue
		}
		if hmac.Equal(expected, decoded) {
			return nil
		}
	}
	return apperror.ErrInvalidWebhookSignature()
}

func (v *StripeWebhookVerifier) sign(timestamp int64, payload []byte) []byte {
	mac := hmac.New(sha256.New, v.secret)
	fmt.Fprintf(mac, "%d.", timestamp)
	mac.Write(payload)
	return mac.Sum(nil)
}

// parseSignatureHeader splits "t=<unix>,v1=<hex>[,v1=<hex>...]" into its
// timestamp and v1 signatures. Unknown schemes are ignored.
func parseSignatureHeader(header string) (int64, []string, error) {
	var (
		timestamp  int64
		signatures []string
	)
	for _, part := range strings.Split(header, ",") {
		key, value, found := strings.Cut(strings.TrimSpace(part), "=")
		if !found {
			continue
		}
		switch key {
		case "t":
			ts, err := strconv.ParseInt(value, 10, 64)
			if err != nil {
				return 0, nil, fmt.Errorf("malformed timestamp: %w", err)
			}
			timestamp = ts
		case "v1":
			signatures = append(signatures, value)
		}
	}
	if timestamp == 0 {
		return 0, nil, fmt.Errorf("missing timestamp")
	}
	if len(signatures) == 0 {
		return 0, nil, fmt.Errorf("missing v1 signature")
	}
	return timestamp, signatures, nil
}

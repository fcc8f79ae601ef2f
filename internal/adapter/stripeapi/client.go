package stripeapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"stripe-account-reconciler/config"
	"stripe-account-reconciler/internal/attrtree"
	"stripe-account-reconciler/internal/core/domain"

	"github.com/rs/zerolog"
)

const defaultAPIBase = "https://api.stripe.com"

// Client implements ports.StripeClient over the Stripe REST API.
type Client struct {
	apiBase string
	apiKey  string
	http    *http.Client
	log     zerolog.Logger
}

// NewClient creates a Stripe API client.
func NewClient(cfg config.StripeConfig, log zerolog.Logger) *Client {
	base := cfg.APIBase
	if base == "" {
		base = defaultAPIBase
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		apiBase: strings.TrimRight(base, "/"),
		apiKey:  cfg.APIKey,
		http:    &http.Client{Timeout: timeout},
		log:     log.With().Str("component", "stripe_client").Logger(),
	}
}

// errorEnvelope is Stripe's error response wrapper.
type errorEnvelope struct {
	Error *domain.ProcessorError `json:"error"`
}

func (c *Client) do(ctx context.Context, method, path string, params attrtree.Tree, out any) error {
	var body io.Reader
	if params != nil {
		body = strings.NewReader(encodeForm(params).Encode())
	}

	req, err := http.NewRequestWithContext(ctx, method, c.apiBase+path, body)
	if err != nil {
		return fmt.Errorf("build stripe request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	if params != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("stripe %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read stripe response: %w", err)
	}

	if resp.StatusCode >= 400 {
		var envelope errorEnvelope
		if err := json.Unmarshal(raw, &envelope); err != nil || envelope.Error == nil {
			return &domain.ProcessorError{
				Type:       domain.ProcessorErrorTypeAPI,
				Message:    fmt.Sprintf("unexpected status %d from %s %s", resp.StatusCode, method, path),
				HTTPStatus: resp.StatusCode,
			}
		}
		envelope.Error.HTTPStatus = resp.StatusCode
		c.log.Warn().
			Str("method", method).
			Str("path", path).
			Int("status", resp.StatusCode).
			Str("error_type", envelope.Error.Type).
			Str("error_code", envelope.Error.Code).
			Msg("Stripe API request failed")
		return envelope.Error
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("decode stripe response: %w", err)
		}
	}
	return nil
}

// CreateAccount creates a connected account.
func (c *Client) CreateAccount(ctx context.Context, params attrtree.Tree) (*domain.RemoteAccount, error) {
	account := &domain.RemoteAccount{}
	if err := c.do(ctx, http.MethodPost, "/v1/accounts", params, account); err != nil {
		return nil, err
	}
	return account, nil
}

// GetAccount fetches a connected account.
func (c *Client) GetAccount(ctx context.Context, accountID string) (*domain.RemoteAccount, error) {
	account := &domain.RemoteAccount{}
	if err := c.do(ctx, http.MethodGet, "/v1/accounts/"+url.PathEscape(accountID), nil, account); err != nil {
		return nil, err
	}
	return account, nil
}

// UpdateAccount patches a connected account with the given attribute diff.
func (c *Client) UpdateAccount(ctx context.Context, accountID string, params attrtree.Tree) (*domain.RemoteAccount, error) {
	account := &domain.RemoteAccount{}
	if err := c.do(ctx, http.MethodPost, "/v1/accounts/"+url.PathEscape(accountID), params, account); err != nil {
		return nil, err
	}
	return account, nil
}

// CreatePerson attaches a person to a connected account.
func (c *Client) CreatePerson(ctx context.Context, accountID string, params attrtree.Tree) (*domain.RemotePerson, error) {
	person := &domain.RemotePerson{}
	path := "/v1/accounts/" + url.PathEscape(accountID) + "/persons"
	if err := c.do(ctx, http.MethodPost, path, params, person); err != nil {
		return nil, err
	}
	return person, nil
}

// UpdatePerson patches a person on a connected account.
func (c *Client) UpdatePerson(ctx context.Context, accountID, personID string, params attrtree.Tree) (*domain.RemotePerson, error) {
	person := &domain.RemotePerson{}
	path := "/v1/accounts/" + url.PathEscape(accountID) + "/persons/" + url.PathEscape(personID)
	if err := c.do(ctx, http.MethodPost, path, params, person); err != nil {
		return nil, err
	}
	return person, nil
}

// ListPersons fetches the persons attached to a connected account.
func (c *Client) ListPersons(ctx context.Context, accountID string) ([]domain.RemotePerson, error) {
	var list struct {
		Data []domain.RemotePerson `json:"data"`
	}
	path := "/v1/accounts/" + url.PathEscape(accountID) + "/persons"
	if err := c.do(ctx, http.MethodGet, path, nil, &list); err != nil {
		return nil, err
	}
	return list.Data, nil
}

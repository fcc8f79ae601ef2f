package postgres

import (
	"context"
	"fmt"
	"time"

	"stripe-account-reconciler/internal/core/domain"

	"github.com/google/uuid"
)

// RequirementRequestRepo implements ports.RequirementRequestRepository.
// Rows are append-only: created, marked provided, never deleted.
type RequirementRequestRepo struct {
	pool Pool
}

// NewRequirementRequestRepo creates a new RequirementRequestRepo.
func NewRequirementRequestRepo(pool Pool) *RequirementRequestRepo {
	return &RequirementRequestRepo{pool: pool}
}

// Create inserts a new compliance ask.
func (r *RequirementRequestRepo) Create(ctx context.Context, request *domain.RequirementRequest) error {
	query := `INSERT INTO requirement_requests
		(id, user_id, merchant_account_id, field_id, state, due_at, partial_provision_allowed,
		 stripe_event_id, verification_error_code, verification_error_reason)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING created_at`

	err := r.pool.QueryRow(ctx, query,
		request.ID, request.UserID, request.MerchantAccountID, request.FieldID, request.State,
		request.DueAt, request.PartialProvisionAllowed, request.StripeEventID,
		request.VerificationErrorCode, request.VerificationErrorReason,
	).Scan(&request.CreatedAt)
	if err != nil {
		return fmt.Errorf("create requirement request: %w", err)
	}
	return nil
}

// ListOpenByUser returns the user's outstanding asks, oldest first.
func (r *RequirementRequestRepo) ListOpenByUser(ctx context.Context, userID uuid.UUID) ([]domain.RequirementRequest, error) {
	query := `SELECT id, user_id, merchant_account_id, field_id, state, due_at, partial_provision_allowed,
		stripe_event_id, verification_error_code, verification_error_reason, email_sent_at, provided_at, created_at
		FROM requirement_requests
		WHERE user_id = $1 AND state = $2
		ORDER BY created_at ASC`

	rows, err := r.pool.Query(ctx, query, userID, domain.RequirementRequested)
	if err != nil {
		return nil, fmt.Errorf("list open requirement requests: %w", err)
	}
	defer rows.Close()

	var requests []domain.RequirementRequest
	for rows.Next() {
		var req domain.RequirementRequest
		err := rows.Scan(
			&req.ID, &req.UserID, &req.MerchantAccountID, &req.FieldID, &req.State, &req.DueAt,
			&req.PartialProvisionAllowed, &req.StripeEventID, &req.VerificationErrorCode,
			&req.VerificationErrorReason, &req.EmailSentAt, &req.ProvidedAt, &req.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan requirement request: %w", err)
		}
		requests = append(requests, req)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate requirement requests: %w", err)
	}
	return requests, nil
}

// MarkProvided closes an ask once the processor stops listing the field.
func (r *RequirementRequestRepo) MarkProvided(ctx context.Context, id uuid.UUID, at time.Time) error {
	query := `UPDATE requirement_requests SET state = $1, provided_at = $2
		WHERE id = $3 AND state = $4`

	if _, err := r.pool.Exec(ctx, query, domain.RequirementProvided, at, id, domain.RequirementRequested); err != nil {
		return fmt.Errorf("mark requirement provided: %w", err)
	}
	return nil
}

// MarkEmailSent stamps the notification time on a batch of asks.
func (r *RequirementRequestRepo) MarkEmailSent(ctx context.Context, ids []uuid.UUID, at time.Time) error {
	if len(ids) == 0 {
		return nil
	}
	query := `UPDATE requirement_requests SET email_sent_at = $1 WHERE id = ANY($2)`

	if _, err := r.pool.Exec(ctx, query, at, ids); err != nil {
		return fmt.Errorf("mark requirement email sent: %w", err)
	}
	return nil
}

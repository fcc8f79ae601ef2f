package handler

import (
	"encoding/json"
	"time"

	"stripe-account-reconciler/internal/adapter/http/dto"
	"stripe-account-reconciler/internal/core/domain"
	"stripe-account-reconciler/internal/core/ports"
	"stripe-account-reconciler/pkg/apperror"
	"stripe-account-reconciler/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// SignatureHeader is Stripe's webhook signature header name.
const SignatureHeader = "Stripe-Signature"

// eventDedupTTL covers Stripe's retry window with margin.
const eventDedupTTL = 72 * time.Hour

// WebhookHandler handles inbound Stripe webhook deliveries.
type WebhookHandler struct {
	verifier   ports.WebhookVerifier
	eventStore ports.EventStore
	webhookSvc ports.WebhookService
	log        zerolog.Logger
}

// NewWebhookHandler creates a new WebhookHandler.
func NewWebhookHandler(
	verifier ports.WebhookVerifier,
	eventStore ports.EventStore,
	webhookSvc ports.WebhookService,
	log zerolog.Logger,
) *WebhookHandler {
	return &WebhookHandler{
		verifier:   verifier,
		eventStore: eventStore,
		webhookSvc: webhookSvc,
		log:        log,
	}
}

// HandleStripeWebhook handles POST /webhooks/stripe.
// Pipeline: verify signature -> decode envelope -> dedup -> interpret.
func (h *WebhookHandler) HandleStripeWebhook(c *gin.Context) {
	payload, err := c.GetRawData()
	if err != nil {
		response.Error(c, apperror.Validation("cannot read request body"))
		return
	}

	if err := h.verifier.Verify(payload, c.GetHeader(SignatureHeader), time.Now()); err != nil {
		response.Error(c, err)
		return
	}

	var event domain.StripeEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		response.Error(c, apperror.ErrMalformedWebhook("invalid JSON envelope"))
		return
	}
	if event.ID == "" || event.Type == "" {
		response.Error(c, apperror.ErrMalformedWebhook("missing event id or type"))
		return
	}

	first, err := h.eventStore.MarkProcessed(c.Request.Context(), event.ID, eventDedupTTL)
	if err != nil {
		// Fail open: a dedup outage must not drop deliveries.
		h.log.Warn().Err(err).Str("event_id", event.ID).Msg("event store error, processing anyway")
		first = true
	}
	if !first {
		response.OK(c, dto.WebhookAckResponse{Received: true, Duplicate: true})
		return
	}

	if err := h.webhookSvc.HandleEvent(c.Request.Context(), event); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.WebhookAckResponse{Received: true})
}

package handler

import (
	"time"

	"stripe-account-reconciler/internal/adapter/http/dto"
	"stripe-account-reconciler/internal/core/domain"
	"stripe-account-reconciler/internal/core/ports"
	"stripe-account-reconciler/pkg/apperror"
	"stripe-account-reconciler/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AccountHandler handles the internal reconciliation endpoints.
type AccountHandler struct {
	reconcilerSvc ports.ReconcilerService
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(reconcilerSvc ports.ReconcilerService) *AccountHandler {
	return &AccountHandler{reconcilerSvc: reconcilerSvc}
}

func bindAccountRequest(c *gin.Context) (uuid.UUID, bool, bool) {
	var req dto.AccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return uuid.Nil, false, false
	}
	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		response.Error(c, apperror.Validation("user_id is not a valid UUID"))
		return uuid.Nil, false, false
	}
	return userID, req.FromAdmin, true
}

// CreateAccount handles POST /internal/accounts.
func (h *AccountHandler) CreateAccount(c *gin.Context) {
	userID, fromAdmin, ok := bindAccountRequest(c)
	if !ok {
		return
	}

	account, err := h.reconcilerSvc.CreateAccount(c.Request.Context(), userID, fromAdmin)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, toMerchantAccountResponse(account))
}

// SyncAccount handles POST /internal/accounts/sync.
func (h *AccountHandler) SyncAccount(c *gin.Context) {
	userID, _, ok := bindAccountRequest(c)
	if !ok {
		return
	}

	if err := h.reconcilerSvc.UpdateAccount(c.Request.Context(), userID); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"synced": true})
}

// SyncBankAccount handles POST /internal/accounts/bank.
func (h *AccountHandler) SyncBankAccount(c *gin.Context) {
	userID, _, ok := bindAccountRequest(c)
	if !ok {
		return
	}

	bank, err := h.reconcilerSvc.UpdateBankAccount(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toBankAccountResponse(bank))
}

// Disconnect handles DELETE /internal/accounts.
func (h *AccountHandler) Disconnect(c *gin.Context) {
	userID, _, ok := bindAccountRequest(c)
	if !ok {
		return
	}

	if err := h.reconcilerSvc.Disconnect(c.Request.Context(), userID); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"disconnected": true})
}

func toMerchantAccountResponse(a *domain.MerchantAccount) dto.MerchantAccountResponse {
	resp := dto.MerchantAccountResponse{
		ID:                        a.ID.String(),
		UserID:                    a.UserID.String(),
		Processor:                 a.Processor,
		ChargeProcessorMerchantID: a.ChargeProcessorMerchantID,
		Country:                   a.Country,
		Currency:                  a.Currency,
		VerificationStatus:        string(a.VerificationStatus),
		CreatedAt:                 a.CreatedAt.Format(time.RFC3339),
	}
	if a.ChargeProcessorAliveAt != nil {
		s := a.ChargeProcessorAliveAt.Format(time.RFC3339)
		resp.ChargeProcessorAliveAt = &s
	}
	return resp
}

func toBankAccountResponse(b *domain.BankAccount) dto.BankAccountResponse {
	return dto.BankAccountResponse{
		ID:                b.ID.String(),
		Country:           b.Country,
		Currency:          b.Currency,
		IsCard:            b.IsCard,
		ExternalAccountID: b.ExternalAccountID,
		Synced:            b.IsSynced(),
	}
}

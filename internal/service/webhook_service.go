package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"stripe-account-reconciler/internal/core/domain"
	"stripe-account-reconciler/internal/core/ports"
	"stripe-account-reconciler/internal/countries"
	"stripe-account-reconciler/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// notificationThrottle bounds how often requirement emails go out when the
// processor re-lists the same outstanding fields.
const notificationThrottle = 30 * 24 * time.Hour

// documentErrorCodePrefix marks verification errors caused by a bad or
// unreadable identity document.
const documentErrorCodePrefix = "verification_document"

// businessTypeIndividual is the remote business_type carrying an embedded
// individual sub-object.
const businessTypeIndividual = "individual"

// WebhookServiceImpl implements ports.WebhookService: it interprets inbound
// processor events and folds them into local account, user, and
// requirement-request state.
type WebhookServiceImpl struct {
	userRepo   ports.UserRepository
	maRepo     ports.MerchantAccountRepository
	bankRepo   ports.BankAccountRepository
	reqRepo    ports.RequirementRequestRepository
	stripe     ports.StripeClient
	notifier   ports.Notifier
	reconciler ports.ReconcilerService
	log        zerolog.Logger
}

// NewWebhookService creates a new WebhookServiceImpl.
func NewWebhookService(
	userRepo ports.UserRepository,
	maRepo ports.MerchantAccountRepository,
	bankRepo ports.BankAccountRepository,
	reqRepo ports.RequirementRequestRepository,
	stripe ports.StripeClient,
	notifier ports.Notifier,
	reconciler ports.ReconcilerService,
	log zerolog.Logger,
) *WebhookServiceImpl {
	return &WebhookServiceImpl{
		userRepo:   userRepo,
		maRepo:     maRepo,
		bankRepo:   bankRepo,
		reqRepo:    reqRepo,
		stripe:     stripe,
		notifier:   notifier,
		reconciler: reconciler,
		log:        log,
	}
}

// HandleEvent dispatches a verified, deduplicated webhook event. Unknown
// event types are acknowledged and dropped.
func (s *WebhookServiceImpl) HandleEvent(ctx context.Context, event domain.StripeEvent) error {
	switch event.Type {
	case domain.EventAccountUpdated:
		return s.handleAccountUpdated(ctx, event)
	case domain.EventCapabilityUpdated:
		return s.handleCapabilityUpdated(ctx, event)
	case domain.EventAccountDeauthorized:
		return s.handleDeauthorized(ctx, event)
	default:
		s.log.Debug().Str("type", event.Type).Str("event_id", event.ID).Msg("ignoring webhook event type")
		return nil
	}
}

// handleDeauthorized processes an account disconnection initiated on the
// processor side. The affected account rides in the envelope, not the
// payload.
func (s *WebhookServiceImpl) handleDeauthorized(ctx context.Context, event domain.StripeEvent) error {
	account, err := s.resolveAccount(ctx, event)
	if err != nil {
		return err
	}
	if account == nil || !account.IsAlive() {
		s.log.Info().Str("event_id", event.ID).Str("remote_id", event.Account).Msg("deauthorization for unknown or dead account")
		return nil
	}

	if err := s.maRepo.SoftDelete(ctx, account.ID); err != nil {
		return apperror.InternalError(fmt.Errorf("soft delete account: %w", err))
	}

	user, err := s.userRepo.GetByID(ctx, account.UserID)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("load user: %w", err))
	}
	if user != nil && user.StripeMigrationNotice {
		if nerr := s.notifier.AccountDeauthorized(ctx, user.ID); nerr != nil {
			s.log.Warn().Err(nerr).Str("user_id", user.ID.String()).Msg("deauthorization notice enqueue failed")
		}
	}

	s.log.Info().Str("account_id", account.ID.String()).Msg("account deauthorized")
	return nil
}

// resolveAccount finds the local account for a deauthorization envelope.
// Legacy envelopes carry a user id instead of the remote account id.
func (s *WebhookServiceImpl) resolveAccount(ctx context.Context, event domain.StripeEvent) (*domain.MerchantAccount, error) {
	if event.Account != "" {
		account, err := s.maRepo.GetByRemoteID(ctx, event.Account)
		if err != nil {
			return nil, apperror.InternalError(fmt.Errorf("lookup account by remote id: %w", err))
		}
		if account != nil {
			return account, nil
		}
	}
	if event.UserID != "" {
		userID, err := uuid.Parse(event.UserID)
		if err != nil {
			return nil, nil
		}
		account, err := s.maRepo.GetAliveByUser(ctx, userID, domain.ProcessorStripe)
		if err != nil {
			return nil, apperror.InternalError(fmt.Errorf("lookup account by user: %w", err))
		}
		return account, nil
	}
	return nil, nil
}

// handleCapabilityUpdated acts only for Japanese accounts. The processor
// occasionally deactivates a capability there while identity review is
// pending; the capability payload alone does not say what is owed, so the
// full remote account is re-fetched and run through the requirements
// handler.
func (s *WebhookServiceImpl) handleCapabilityUpdated(ctx context.Context, event domain.StripeEvent) error {
	if event.Account == "" {
		return nil
	}
	account, err := s.maRepo.GetByRemoteID(ctx, event.Account)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("lookup account: %w", err))
	}
	if account == nil || !account.IsAlive() || !account.IsProcessorAlive() {
		return nil
	}
	if account.Country != countries.JP {
		return nil
	}

	remote, err := s.stripe.GetAccount(ctx, account.ChargeProcessorMerchantID)
	if err != nil {
		return fmt.Errorf("fetch remote account: %w", err)
	}

	s.log.Info().Str("account_id", account.ID.String()).Msg("capability update routed through requirements handler")
	return s.reconcileAccount(ctx, account, remote, domain.StripeEventData{}, event.ID)
}

// handleAccountUpdated decodes the account payload and feeds it to the
// requirements state machine.
func (s *WebhookServiceImpl) handleAccountUpdated(ctx context.Context, event domain.StripeEvent) error {
	var remote domain.RemoteAccount
	if err := json.Unmarshal(event.Data.Object, &remote); err != nil || remote.ID == "" {
		return apperror.ErrMalformedWebhook("account.updated without account object")
	}

	// Only platform-managed custom accounts are reconciled from webhooks.
	if remote.Type != domain.RemoteAccountTypeCustom {
		return nil
	}

	account, err := s.maRepo.GetByRemoteID(ctx, remote.ID)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("lookup account: %w", err))
	}
	if account == nil {
		return apperror.ErrUnknownMerchantAccount(remote.ID)
	}
	if !account.IsAlive() || !account.IsProcessorAlive() {
		return nil
	}

	return s.reconcileAccount(ctx, account, &remote, event.Data, event.ID)
}

// reconcileAccount is the requirements state machine shared by account and
// capability updates. Each invocation treats the remote account as a full
// statement of truth and reconciles local verification state, open
// requirement requests, and user notifications against it.
func (s *WebhookServiceImpl) reconcileAccount(ctx context.Context, account *domain.MerchantAccount, remote *domain.RemoteAccount, data domain.StripeEventData, eventID string) error {
	user, err := s.userRepo.GetByID(ctx, account.UserID)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("load user: %w", err))
	}
	if user == nil || !user.Active {
		return nil
	}

	if err := s.syncAccountIdentity(ctx, account, remote); err != nil {
		return err
	}

	if err := s.syncPayoutPause(ctx, user, remote); err != nil {
		return err
	}

	suspended, err := s.processRequirements(ctx, user, account, remote, eventID)
	if err != nil {
		return err
	}
	if suspended {
		return nil
	}

	s.notifyDisabledTransitions(ctx, user, remote, data)
	return nil
}

// syncAccountIdentity folds remote country/currency and verification status
// into the local row. Country and currency move together or not at all; a
// payload carrying only one is treated as partial and skipped. Verification
// transitions are idempotent in both directions.
func (s *WebhookServiceImpl) syncAccountIdentity(ctx context.Context, account *domain.MerchantAccount, remote *domain.RemoteAccount) error {
	changed := false

	if remote.Country != "" && remote.DefaultCurrency != "" {
		if remote.Country != account.Country {
			account.Country = remote.Country
			changed = true
		}
		if !strings.EqualFold(remote.DefaultCurrency, account.Currency) {
			account.Currency = strings.ToLower(remote.DefaultCurrency)
			changed = true
		}
	}

	if status, ok := s.remoteVerificationStatus(ctx, account, remote); ok {
		verified := status == domain.RemotePersonVerified
		switch {
		case verified && !account.IsVerified():
			account.VerificationStatus = domain.VerificationVerified
			changed = true
		case !verified && account.IsVerified():
			account.VerificationStatus = domain.VerificationUnverified
			changed = true
		}
	}

	if !changed {
		return nil
	}
	account.UpdatedAt = time.Now().UTC()
	if err := s.maRepo.Update(ctx, account); err != nil {
		return apperror.InternalError(fmt.Errorf("sync account identity: %w", err))
	}
	return nil
}

// remoteVerificationStatus finds the person-level verification status for an
// account. Individual accounts embed it; business accounts hold it on the
// representative person, which the payload does not carry, so it is fetched.
func (s *WebhookServiceImpl) remoteVerificationStatus(ctx context.Context, account *domain.MerchantAccount, remote *domain.RemoteAccount) (string, bool) {
	if remote.Individual != nil && remote.Individual.Verification != nil {
		return remote.Individual.Verification.Status, true
	}
	if remote.BusinessType == "" || remote.BusinessType == businessTypeIndividual {
		return "", false
	}
	persons, err := s.stripe.ListPersons(ctx, account.ChargeProcessorMerchantID)
	if err != nil {
		s.log.Error().Err(err).Str("account_id", account.ID.String()).Msg("person list fetch failed during verification sync")
		return "", false
	}
	if len(persons) == 0 || persons[0].Verification == nil {
		return "", false
	}
	return persons[0].Verification.Status, true
}

// syncPayoutPause mirrors the remote payouts_enabled flag onto the user's
// payout pause marker. The marker always tracks the remote flag; the
// disabled notice is handled separately and keeps its transition filter.
func (s *WebhookServiceImpl) syncPayoutPause(ctx context.Context, user *domain.User, remote *domain.RemoteAccount) error {
	paused := !remote.PayoutsEnabled
	if user.PayoutsPaused == paused {
		return nil
	}
	if err := s.userRepo.SetPayoutsPaused(ctx, user.ID, paused); err != nil {
		return apperror.InternalError(fmt.Errorf("set payouts paused: %w", err))
	}
	user.PayoutsPaused = paused
	return nil
}

// processRequirements reconciles the requirement-request ledger against the
// remote requirements hash. Returns true when the user was suspended and no
// further processing should run.
func (s *WebhookServiceImpl) processRequirements(ctx context.Context, user *domain.User, account *domain.MerchantAccount, remote *domain.RemoteAccount, eventID string) (bool, error) {
	reqs := remote.Requirements
	if reqs == nil {
		reqs = &domain.RemoteRequirements{}
	}

	due := dueFields(reqs, remote.FutureRequirements)

	// A rejected risk appeal is terminal: suspend and stop. No requirement
	// request is recorded, there is nothing left for the user to provide.
	for _, field := range due {
		if isRiskField(field) && isTerminalRiskField(field) {
			if err := s.userRepo.Suspend(ctx, user.ID, "processor risk rejection"); err != nil {
				return false, apperror.InternalError(fmt.Errorf("suspend user: %w", err))
			}
			s.log.Warn().
				Str("user_id", user.ID.String()).
				Str("field", field).
				Msg("user suspended on terminal risk requirement")
			return true, nil
		}
	}

	due = s.filterBankAccountAsk(ctx, user.ID, remote, due)

	deadline := earliestDeadline(reqs, remote.FutureRequirements)
	errs := requirementErrors(reqs, remote.FutureRequirements)

	open, err := s.reqRepo.ListOpenByUser(ctx, user.ID)
	if err != nil {
		return false, apperror.InternalError(fmt.Errorf("list open requests: %w", err))
	}

	// Internal field ids currently wanted by the processor.
	wanted := make(map[string]string, len(due)) // internal id -> external path
	for _, field := range due {
		if isRiskField(field) {
			wanted[field] = field
			continue
		}
		wanted[internalFieldID(field)] = field
	}

	now := time.Now().UTC()
	var latestOpen *domain.RequirementRequest
	openByField := make(map[string]*domain.RequirementRequest, len(open))
	for i := range open {
		r := &open[i]
		openByField[r.FieldID] = r
		if latestOpen == nil || r.CreatedAt.After(latestOpen.CreatedAt) {
			latestOpen = r
		}
		if _, stillWanted := wanted[r.FieldID]; !stillWanted {
			if err := s.reqRepo.MarkProvided(ctx, r.ID, now); err != nil {
				return false, apperror.InternalError(fmt.Errorf("mark request provided: %w", err))
			}
		}
	}

	var created []domain.RequirementRequest
	riskCreated := false
	for internalID, externalPath := range wanted {
		// An open request covers the ask unless its partial-provision terms
		// changed; a changed ask is re-requested.
		if existing, exists := openByField[internalID]; exists && existing.PartialProvisionAllowed == partialProvisionAllowed(externalPath) {
			continue
		}
		request := domain.RequirementRequest{
			ID:                      uuid.New(),
			UserID:                  user.ID,
			MerchantAccountID:       account.ID,
			FieldID:                 internalID,
			State:                   domain.RequirementRequested,
			DueAt:                   deadline,
			PartialProvisionAllowed: partialProvisionAllowed(externalPath),
			StripeEventID:           eventID,
			CreatedAt:               now,
		}
		if code, reason, ok := verificationError(errs, externalPath); ok {
			request.VerificationErrorCode = &code
			request.VerificationErrorReason = &reason
		}
		if err := s.reqRepo.Create(ctx, &request); err != nil {
			return false, apperror.InternalError(fmt.Errorf("create requirement request: %w", err))
		}
		created = append(created, request)
		if isRiskField(internalID) {
			riskCreated = true
		}
	}

	// Risk asks get the remediation notice, once per pass, and never ride
	// the KYC email below.
	if riskCreated {
		if nerr := s.notifier.RemediationNeeded(ctx, user.ID); nerr != nil {
			s.log.Warn().Err(nerr).Str("user_id", user.ID.String()).Msg("remediation notice enqueue failed")
		}
	}

	kycWanted := make(map[string]string, len(wanted))
	for internalID, externalPath := range wanted {
		if !isRiskField(internalID) {
			kycWanted[internalID] = externalPath
		}
	}

	if len(kycWanted) == 0 {
		return false, s.markEmailSent(ctx, created, now)
	}

	// Throttle: re-listing fields the user was already emailed about within
	// the window does not email again.
	if len(created) == 0 && latestOpen != nil && latestOpen.EmailSentAt != nil && now.Sub(*latestOpen.EmailSentAt) < notificationThrottle {
		return false, nil
	}

	if err := s.sendRequirementEmail(ctx, user.ID, errs, kycWanted); err != nil {
		return false, err
	}

	return false, s.markEmailSent(ctx, created, now)
}

// markEmailSent stamps the send time on the requests created this pass.
func (s *WebhookServiceImpl) markEmailSent(ctx context.Context, created []domain.RequirementRequest, at time.Time) error {
	if len(created) == 0 {
		return nil
	}
	ids := make([]uuid.UUID, 0, len(created))
	for _, r := range created {
		ids = append(ids, r.ID)
	}
	if err := s.reqRepo.MarkEmailSent(ctx, ids, at); err != nil {
		return apperror.InternalError(fmt.Errorf("mark email sent: %w", err))
	}
	return nil
}

// sendRequirementEmail picks exactly one notification for the outstanding
// set. Document problems outrank identity problems outrank the generic ask.
func (s *WebhookServiceImpl) sendRequirementEmail(ctx context.Context, userID uuid.UUID, errs []domain.RemoteRequirementError, wanted map[string]string) error {
	fields := make([]string, 0, len(wanted))
	for internalID := range wanted {
		fields = append(fields, internalID)
	}

	var send func() error
	switch {
	case hasDocumentError(errs):
		send = func() error { return s.notifier.DocumentVerificationFailed(ctx, userID, fields) }
	case len(errs) > 0 && errs[0].Reason != "":
		reason := errs[0].Reason
		send = func() error { return s.notifier.IdentityVerificationFailed(ctx, userID, reason) }
	default:
		send = func() error { return s.notifier.MoreKYCNeeded(ctx, userID, fields) }
	}

	if err := send(); err != nil {
		s.log.Warn().Err(err).Str("user_id", userID.String()).Msg("requirement notification enqueue failed")
	}
	return nil
}

// filterBankAccountAsk handles the external_account ask for card payout
// destinations. While charges are disabled the ask is dropped outright, card
// destinations cannot be attached to a not-yet-chargeable account. Once
// charges are enabled an unsynced card triggers a bank sync, and a sync that
// yields an external-account id satisfies the ask.
func (s *WebhookServiceImpl) filterBankAccountAsk(ctx context.Context, userID uuid.UUID, remote *domain.RemoteAccount, due []string) []string {
	hasBankAsk := false
	for _, f := range due {
		if f == "external_account" {
			hasBankAsk = true
			break
		}
	}
	if !hasBankAsk {
		return due
	}
	bank, err := s.bankRepo.GetActiveByUser(ctx, userID)
	if err != nil {
		s.log.Warn().Err(err).Str("user_id", userID.String()).Msg("bank lookup failed during requirement filtering")
		return due
	}
	if bank == nil || !bank.IsCard {
		return due
	}
	if !remote.ChargesEnabled {
		return dropBankAsk(due)
	}
	if bank.IsSynced() {
		return due
	}
	synced, err := s.reconciler.UpdateBankAccount(ctx, userID)
	if err != nil {
		s.log.Error().Err(err).Str("user_id", userID.String()).Msg("card payout sync failed during requirement filtering")
		return due
	}
	if synced != nil && synced.IsSynced() {
		return dropBankAsk(due)
	}
	return due
}

func dropBankAsk(due []string) []string {
	out := due[:0]
	for _, f := range due {
		if f != "external_account" {
			out = append(out, f)
		}
	}
	return out
}

// notifyDisabledTransitions emails the user when this event flipped charges
// or payouts off for a reason the user can act on.
func (s *WebhookServiceImpl) notifyDisabledTransitions(ctx context.Context, user *domain.User, remote *domain.RemoteAccount, data domain.StripeEventData) {
	reason := ""
	if remote.Requirements != nil {
		reason = remote.Requirements.DisabledReason
	}
	if !actionableDisabledReason(reason) {
		return
	}

	if prev, ok := data.PreviousBool("charges_enabled"); ok && prev && !remote.ChargesEnabled {
		if err := s.notifier.ChargesDisabled(ctx, user.ID); err != nil {
			s.log.Warn().Err(err).Str("user_id", user.ID.String()).Msg("charges disabled notice enqueue failed")
		}
	}
	if prev, ok := data.PreviousBool("payouts_enabled"); ok && prev && !remote.PayoutsEnabled {
		if err := s.notifier.PayoutsDisabled(ctx, user.ID); err != nil {
			s.log.Warn().Err(err).Str("user_id", user.ID.String()).Msg("payouts disabled notice enqueue failed")
		}
	}
}

// dueFields merges currently_due and past_due from both the current and
// future requirement hashes, plus both sides of every alternative group,
// normalized and deduplicated. eventually_due is deliberately excluded:
// asking for it early churns users through paperwork the processor does not
// yet need.
func dueFields(current, future *domain.RemoteRequirements) []string {
	seen := make(map[string]struct{})
	var out []string
	add := func(fields []string) {
		for _, field := range fields {
			normalized := normalizeFieldPath(field)
			if _, ok := seen[normalized]; ok {
				continue
			}
			seen[normalized] = struct{}{}
			out = append(out, normalized)
		}
	}
	for _, reqs := range []*domain.RemoteRequirements{current, future} {
		if reqs == nil {
			continue
		}
		add(reqs.CurrentlyDue)
		add(reqs.PastDue)
		for _, alt := range reqs.Alternatives {
			add(alt.OriginalFieldsDue)
			add(alt.AlternativeFieldsDue)
		}
	}
	return out
}

// requirementErrors concatenates the current and future error lists, current
// first.
func requirementErrors(current, future *domain.RemoteRequirements) []domain.RemoteRequirementError {
	var out []domain.RemoteRequirementError
	if current != nil {
		out = append(out, current.Errors...)
	}
	if future != nil {
		out = append(out, future.Errors...)
	}
	return out
}

// earliestDeadline picks the sooner of the current and future requirement
// deadlines.
func earliestDeadline(current, future *domain.RemoteRequirements) *time.Time {
	cd := current.Deadline()
	fd := future.Deadline()
	switch {
	case cd == nil:
		return fd
	case fd == nil:
		return cd
	case fd.Before(*cd):
		return fd
	default:
		return cd
	}
}

// verificationError finds the requirement error attached to an external
// field path, if any.
func verificationError(errs []domain.RemoteRequirementError, externalPath string) (code, reason string, ok bool) {
	for _, e := range errs {
		if normalizeFieldPath(e.Requirement) == externalPath {
			return e.Code, e.Reason, true
		}
	}
	return "", "", false
}

// hasDocumentError reports whether any requirement error is document-class.
func hasDocumentError(errs []domain.RemoteRequirementError) bool {
	for _, e := range errs {
		if strings.HasPrefix(e.Code, documentErrorCodePrefix) {
			return true
		}
	}
	return false
}

// actionableDisabledReason reports whether a disabled_reason is something
// the user can fix. Processor-internal reviews are not surfaced.
func actionableDisabledReason(reason string) bool {
	return reason == domain.DisabledReasonRequestedCapabilities || reason == domain.DisabledReasonPastDue
}

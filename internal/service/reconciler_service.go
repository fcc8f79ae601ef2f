package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"stripe-account-reconciler/internal/attrtree"
	"stripe-account-reconciler/internal/core/domain"
	"stripe-account-reconciler/internal/core/ports"
	"stripe-account-reconciler/internal/countries"
	"stripe-account-reconciler/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Bank-account failure messages that mean the destination itself is bad.
// These notify the user and swallow; everything else is an operational
// failure and only logged.
var invalidBankMessages = []string{
	"invalid account number",
	"couldn't find that transit",
	"previous attempts to deliver payouts",
}

// ReconcilerServiceImpl implements ports.ReconcilerService: the orchestrator
// that drives local state and the remote processor account toward agreement.
type ReconcilerServiceImpl struct {
	userRepo   ports.UserRepository
	snapRepo   ports.ComplianceSnapshotRepository
	maRepo     ports.MerchantAccountRepository
	bankRepo   ports.BankAccountRepository
	stripe     ports.StripeClient
	notifier   ports.Notifier
	builder    *TreeBuilder
	transactor ports.DBTransactor
	testMode   bool // relaxes the bank-currency precondition for test accounts
	log        zerolog.Logger
}

// NewReconcilerService creates a new ReconcilerServiceImpl.
func NewReconcilerService(
	userRepo ports.UserRepository,
	snapRepo ports.ComplianceSnapshotRepository,
	maRepo ports.MerchantAccountRepository,
	bankRepo ports.BankAccountRepository,
	stripe ports.StripeClient,
	notifier ports.Notifier,
	builder *TreeBuilder,
	transactor ports.DBTransactor,
	testMode bool,
	log zerolog.Logger,
) *ReconcilerServiceImpl {
	return &ReconcilerServiceImpl{
		userRepo:   userRepo,
		snapRepo:   snapRepo,
		maRepo:     maRepo,
		bankRepo:   bankRepo,
		stripe:     stripe,
		notifier:   notifier,
		builder:    builder,
		transactor: transactor,
		testMode:   testMode,
		log:        log,
	}
}

// CreateAccount provisions a remote custom account for the user. The local
// row is inserted under a per-user lock before the remote call so concurrent
// requests cannot double-provision, and so a remote failure stays
// attributable to a local record.
func (s *ReconcilerServiceImpl) CreateAccount(ctx context.Context, userID uuid.UUID, fromAdmin bool) (*domain.MerchantAccount, error) {
	snap, err := s.snapRepo.GetCurrent(ctx, userID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("load snapshot: %w", err))
	}
	if snap == nil {
		return nil, apperror.ErrNoComplianceSnapshot()
	}

	country := snap.LegalEntityCountry()
	policy, ok := countries.Resolve(country)
	if !ok {
		return nil, apperror.ErrUnsupportedCountry(country)
	}

	// Begin database transaction; the user row lock serializes creation.
	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	user, err := s.userRepo.GetForUpdate(ctx, dbTx, userID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock user: %w", err))
	}
	if user == nil {
		return nil, apperror.ErrNotFound("user")
	}
	if !fromAdmin && !user.CanHoldMerchantAccount() {
		return nil, apperror.ErrUserIneligible()
	}
	if !user.HasAcceptedTOS() {
		return nil, apperror.ErrTOSNotAccepted()
	}

	existing, err := s.maRepo.GetAliveByUser(ctx, userID, domain.ProcessorStripe)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("check existing account: %w", err))
	}
	if existing != nil {
		return nil, apperror.ErrDuplicateAccount()
	}

	// A payout destination is optional at creation time; when absent the
	// account is provisioned without one and the processor lists
	// external_account among its requirements until UpdateBankAccount runs.
	bank, err := s.bankRepo.GetActiveByUser(ctx, userID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("load bank account: %w", err))
	}
	if bank != nil && !s.testMode && !bank.IsCard && !strings.EqualFold(bank.Currency, policy.Country.PayoutCurrency) {
		return nil, apperror.ErrBankCurrencyMismatch(bank.Currency, policy.Country.PayoutCurrency)
	}

	now := time.Now().UTC()
	account := &domain.MerchantAccount{
		ID:                 uuid.New(),
		UserID:             userID,
		Processor:          domain.ProcessorStripe,
		Country:            policy.Country.Alpha2,
		Currency:           policy.Country.PayoutCurrency,
		Managed:            true,
		VerificationStatus: domain.VerificationUnverified,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if err := s.maRepo.Create(ctx, dbTx, account); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create account row: %w", err))
	}

	// Commit before the remote call: the lock only has to cover the
	// duplicate check, and the remote call must not hold a row lock across
	// network I/O.
	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	params, err := s.builder.AccountProfile(user, snap, policy, BuildOptions{})
	if err != nil {
		s.abandonAccount(ctx, account)
		return nil, err
	}
	params.Set(domain.RemoteAccountTypeCustom, "type")
	params.Set(policy.Country.Alpha2, "country")
	params.Set(policy.Country.PayoutCurrency, "default_currency")
	if bank != nil && !bank.IsCard {
		bankTree, err := s.builder.BankAccountTree(bank)
		if err != nil {
			s.abandonAccount(ctx, account)
			return nil, err
		}
		attrtree.Merge(params, bankTree)
	}

	remote, err := s.stripe.CreateAccount(ctx, params)
	if err != nil {
		s.abandonAccount(ctx, account)
		return nil, fmt.Errorf("remote account create: %w", err)
	}

	aliveAt := time.Now().UTC()
	account.ChargeProcessorMerchantID = remote.ID
	account.ChargeProcessorAliveAt = &aliveAt
	account.UpdatedAt = aliveAt
	if err := s.maRepo.Update(ctx, account); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("persist remote id: %w", err))
	}

	if snap.IsBusiness {
		personTree, err := s.builder.Person(snap)
		if err != nil {
			return nil, err
		}
		if _, err := s.stripe.CreatePerson(ctx, remote.ID, personTree); err != nil {
			return nil, fmt.Errorf("remote person create: %w", err)
		}
	}

	// Singapore requests full_name_aliases on every account; an explicit
	// empty list satisfies the ask when the user has none.
	if policy.Country.Alpha2 == countries.SG {
		aliases := attrtree.New()
		aliases.Set([]any{""}, "individual", "full_name_aliases")
		if _, err := s.stripe.UpdateAccount(ctx, remote.ID, aliases); err != nil {
			s.log.Error().Err(err).Str("account_id", account.ID.String()).Msg("full_name_aliases patch failed")
		}
	}

	if bank != nil && !bank.IsCard {
		if ext := remote.FirstExternalAccount(); ext != nil {
			bank.ExternalAccountID = &ext.ID
			if ext.Fingerprint != "" {
				bank.Fingerprint = &ext.Fingerprint
			}
			if err := s.bankRepo.Update(ctx, bank); err != nil {
				return nil, apperror.InternalError(fmt.Errorf("persist bank linkage: %w", err))
			}
		}
	}

	if err := s.notifier.WelcomeWorkflow(ctx, userID); err != nil {
		s.log.Warn().Err(err).Str("user_id", userID.String()).Msg("welcome workflow enqueue failed")
	}

	s.log.Info().
		Str("account_id", account.ID.String()).
		Str("remote_id", remote.ID).
		Str("country", account.Country).
		Msg("merchant account created")

	return account, nil
}

// abandonAccount soft-deletes a local row whose remote counterpart was never
// created. Best-effort.
func (s *ReconcilerServiceImpl) abandonAccount(ctx context.Context, account *domain.MerchantAccount) {
	if err := s.maRepo.SoftDelete(ctx, account.ID); err != nil {
		s.log.Error().Err(err).Str("account_id", account.ID.String()).Msg("abandon account row failed")
	}
}

// UpdateAccount pushes the delta between the current compliance snapshot and
// the snapshot last seen by the processor. The remote account's metadata
// records which snapshot it was built from; the previous tree is
// reconstructed from that snapshot rather than from remote state.
func (s *ReconcilerServiceImpl) UpdateAccount(ctx context.Context, userID uuid.UUID) error {
	account, err := s.maRepo.GetAliveByUser(ctx, userID, domain.ProcessorStripe)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("load account: %w", err))
	}
	if account == nil || !account.IsProcessorAlive() {
		return apperror.ErrNoLinkedAccount()
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("load user: %w", err))
	}
	if user == nil {
		return apperror.ErrNotFound("user")
	}

	snap, err := s.snapRepo.GetCurrent(ctx, userID)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("load snapshot: %w", err))
	}
	if snap == nil {
		return apperror.ErrNoComplianceSnapshot()
	}

	policy, ok := countries.Resolve(snap.LegalEntityCountry())
	if !ok {
		return apperror.ErrUnsupportedCountry(snap.LegalEntityCountry())
	}

	remote, err := s.stripe.GetAccount(ctx, account.ChargeProcessorMerchantID)
	if err != nil {
		return fmt.Errorf("fetch remote account: %w", err)
	}

	opts := BuildOptions{ForUpdate: true}
	current, err := s.builder.AccountProfile(user, snap, policy, opts)
	if err != nil {
		return err
	}

	previous := attrtree.New()
	if prevSnap := s.previousSnapshot(ctx, remote); prevSnap != nil {
		prevPolicy, ok := countries.Resolve(prevSnap.LegalEntityCountry())
		if !ok {
			prevPolicy = policy
		}
		previous, err = s.builder.AccountProfile(user, prevSnap, prevPolicy, opts)
		if err != nil {
			return err
		}
	}
	clearAlwaysResubmitted(previous)

	diff := AccountDiff(current, previous)

	// Capabilities are re-requested as the union of policy and whatever the
	// remote account already carries. Requesting an existing capability is a
	// no-op; dropping one is never done from here.
	for _, capability := range unionCapabilities(policy.Capabilities, remote.CapabilityKeys()) {
		diff.Set(true, "capabilities", capability, "requested")
	}

	if !diff.IsEmpty() {
		if _, err := s.stripe.UpdateAccount(ctx, account.ChargeProcessorMerchantID, diff); err != nil {
			return fmt.Errorf("remote account update: %w", err)
		}
	}

	if snap.IsBusiness {
		if err := s.updatePerson(ctx, account, snap, remote); err != nil {
			return err
		}
	}

	s.log.Info().
		Str("account_id", account.ID.String()).
		Int("changed_keys", len(diff)).
		Msg("merchant account reconciled")
	return nil
}

// updatePerson pushes person-level deltas for business accounts.
func (s *ReconcilerServiceImpl) updatePerson(ctx context.Context, account *domain.MerchantAccount, snap *domain.ComplianceSnapshot, remote *domain.RemoteAccount) error {
	persons, err := s.stripe.ListPersons(ctx, account.ChargeProcessorMerchantID)
	if err != nil {
		return fmt.Errorf("list persons: %w", err)
	}
	if len(persons) == 0 {
		personTree, err := s.builder.Person(snap)
		if err != nil {
			return err
		}
		if _, err := s.stripe.CreatePerson(ctx, account.ChargeProcessorMerchantID, personTree); err != nil {
			return fmt.Errorf("remote person create: %w", err)
		}
		return nil
	}

	current, err := s.builder.Person(snap)
	if err != nil {
		return err
	}
	previous := attrtree.New()
	if prevSnap := s.previousSnapshot(ctx, remote); prevSnap != nil {
		previous, err = s.builder.Person(prevSnap)
		if err != nil {
			return err
		}
	}
	// Relationship flags are cheap to resend and must survive person edits.
	previous.Delete("relationship")

	diff := PersonDiff(current, previous)
	if diff.IsEmpty() {
		return nil
	}
	if _, err := s.stripe.UpdatePerson(ctx, account.ChargeProcessorMerchantID, persons[0].ID, diff); err != nil {
		return fmt.Errorf("remote person update: %w", err)
	}
	return nil
}

// previousSnapshot loads the snapshot the remote account was last built
// from, via the metadata breadcrumb. Any miss means "treat everything as
// new".
func (s *ReconcilerServiceImpl) previousSnapshot(ctx context.Context, remote *domain.RemoteAccount) *domain.ComplianceSnapshot {
	raw, ok := remote.Metadata["compliance_snapshot_id"]
	if !ok || raw == "" {
		return nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		s.log.Warn().Str("value", raw).Msg("unparseable snapshot id in remote metadata")
		return nil
	}
	snap, err := s.snapRepo.GetByID(ctx, id)
	if err != nil {
		s.log.Warn().Err(err).Str("snapshot_id", raw).Msg("previous snapshot load failed")
		return nil
	}
	return snap
}

// clearAlwaysResubmitted drops the keys that must reach the processor on
// every update regardless of change: the metadata breadcrumb, the business
// profile, email, phone numbers, and the company director/executive
// attestations. Removing them from the previous tree forces them into the
// diff.
func clearAlwaysResubmitted(previous attrtree.Tree) {
	previous.Delete("metadata")
	previous.Delete("business_profile")
	previous.Delete("email")
	previous.Delete("individual", "phone")
	previous.Delete("company", "phone")
	previous.Delete("company", "directors_provided")
	previous.Delete("company", "executives_provided")
}

func unionCapabilities(policy, remote []string) []string {
	seen := make(map[string]struct{}, len(policy)+len(remote))
	out := make([]string, 0, len(policy)+len(remote))
	for _, c := range policy {
		if _, ok := seen[c]; !ok {
			seen[c] = struct{}{}
			out = append(out, c)
		}
	}
	for _, c := range remote {
		if _, ok := seen[c]; !ok {
			seen[c] = struct{}{}
			out = append(out, c)
		}
	}
	return out
}

// UpdateBankAccount syncs the active payout destination onto the remote
// account. Card destinations wait until charges are enabled; a destination
// already attached (matching external-account id) is a no-op.
func (s *ReconcilerServiceImpl) UpdateBankAccount(ctx context.Context, userID uuid.UUID) (*domain.BankAccount, error) {
	account, err := s.maRepo.GetAliveByUser(ctx, userID, domain.ProcessorStripe)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("load account: %w", err))
	}
	if account == nil || !account.IsProcessorAlive() {
		return nil, apperror.ErrNoLinkedAccount()
	}

	bank, err := s.bankRepo.GetActiveByUser(ctx, userID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("load bank account: %w", err))
	}
	if bank == nil {
		return nil, apperror.ErrNotFound("bank account")
	}

	remote, err := s.stripe.GetAccount(ctx, account.ChargeProcessorMerchantID)
	if err != nil {
		return nil, fmt.Errorf("fetch remote account: %w", err)
	}

	if bank.IsCard && !remote.ChargesEnabled {
		s.log.Info().Str("user_id", userID.String()).Msg("card payout sync deferred until charges enabled")
		return bank, nil
	}

	if ext := remote.FirstExternalAccount(); ext != nil && bank.IsSynced() && *bank.ExternalAccountID == ext.ID {
		return bank, nil
	}

	tree, err := s.builder.BankAccountTree(bank)
	if err != nil {
		return nil, err
	}

	updated, err := s.stripe.UpdateAccount(ctx, account.ChargeProcessorMerchantID, tree)
	if err != nil {
		return s.handleBankSyncError(ctx, userID, bank, err)
	}

	if ext := updated.FirstExternalAccount(); ext != nil {
		bank.ExternalAccountID = &ext.ID
		if ext.Fingerprint != "" {
			bank.Fingerprint = &ext.Fingerprint
		}
		if err := s.bankRepo.Update(ctx, bank); err != nil {
			return nil, apperror.InternalError(fmt.Errorf("persist bank linkage: %w", err))
		}
	}

	s.log.Info().Str("user_id", userID.String()).Msg("bank account synced")
	return bank, nil
}

// handleBankSyncError sorts a remote bank-attach failure into one of three
// buckets: card errors re-raise, known bad-destination messages notify the
// user and swallow, everything else logs and swallows.
func (s *ReconcilerServiceImpl) handleBankSyncError(ctx context.Context, userID uuid.UUID, bank *domain.BankAccount, err error) (*domain.BankAccount, error) {
	var procErr *domain.ProcessorError
	if errors.As(err, &procErr) {
		if procErr.IsCardError() {
			return nil, err
		}
		msg := strings.ToLower(procErr.Message)
		for _, fragment := range invalidBankMessages {
			if strings.Contains(msg, fragment) {
				if nerr := s.notifier.InvalidBankAccount(ctx, userID); nerr != nil {
					s.log.Warn().Err(nerr).Str("user_id", userID.String()).Msg("invalid bank notification enqueue failed")
				}
				s.log.Info().Str("user_id", userID.String()).Str("code", procErr.Code).Msg("bank account rejected by processor")
				return bank, nil
			}
		}
	}
	s.log.Error().Err(err).Str("user_id", userID.String()).Msg("bank account sync failed")
	return bank, nil
}

// Disconnect detaches a creator-connected account and, when an older
// platform-managed account was displaced by the connection, revives it.
func (s *ReconcilerServiceImpl) Disconnect(ctx context.Context, userID uuid.UUID) error {
	account, err := s.maRepo.GetAliveByUser(ctx, userID, domain.ProcessorStripe)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("load account: %w", err))
	}
	if account == nil {
		return apperror.ErrNoLinkedAccount()
	}
	if account.Managed {
		return apperror.ErrDisconnectIneligible()
	}

	if err := s.maRepo.SoftDelete(ctx, account.ID); err != nil {
		return apperror.InternalError(fmt.Errorf("soft delete account: %w", err))
	}

	previous, err := s.maRepo.GetLatestDeletedManaged(ctx, userID)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("load displaced account: %w", err))
	}
	if previous != nil {
		if err := s.maRepo.Reactivate(ctx, previous.ID, time.Now().UTC()); err != nil {
			return apperror.InternalError(fmt.Errorf("reactivate account: %w", err))
		}
		s.log.Info().
			Str("disconnected_id", account.ID.String()).
			Str("reactivated_id", previous.ID.String()).
			Msg("connected account disconnected, managed account revived")
		return nil
	}

	s.log.Info().Str("account_id", account.ID.String()).Msg("connected account disconnected")
	return nil
}

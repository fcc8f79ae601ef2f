package service

import (
	"fmt"

	"stripe-account-reconciler/internal/attrtree"
	"stripe-account-reconciler/internal/core/domain"
	"stripe-account-reconciler/internal/core/ports"
	"stripe-account-reconciler/internal/countries"
	"stripe-account-reconciler/pkg/apperror"
)

// Remote business_type values.
const (
	remoteBusinessTypeIndividual = "individual"
	remoteBusinessTypeCompany    = "company"
)

// TreeBuilder assembles the nested attribute trees submitted to the remote
// processor. Assembly never touches the network; missing snapshot fields
// surface as blank leaves and are pruned away.
type TreeBuilder struct {
	enc ports.EncryptionService
}

// NewTreeBuilder creates a tree builder backed by the given encryption
// service for tax-ID and account-number decryption.
func NewTreeBuilder(enc ports.EncryptionService) *TreeBuilder {
	return &TreeBuilder{enc: enc}
}

// BuildOptions tweak country-specific assembly branches.
type BuildOptions struct {
	// ForUpdate is set when the tree feeds an account update rather than a
	// create. Canada forbids resending the company structure field on
	// updates.
	ForUpdate bool
}

// AccountProfile builds the top-level account tree: business profile,
// ToS acceptance, metadata, capabilities, and the individual or company
// subtree.
func (b *TreeBuilder) AccountProfile(user *domain.User, snap *domain.ComplianceSnapshot, policy countries.Policy, opts BuildOptions) (attrtree.Tree, error) {
	t := attrtree.New()
	country := policy.Country

	profileName := snap.FullName()
	if snap.IsBusiness {
		profileName = snap.BusinessName
	}
	t.Set(profileName, "business_profile", "name")
	if country.RequiresSupportPhone() {
		phone := snap.Phone
		if snap.IsBusiness && snap.BusinessPhone != "" {
			phone = snap.BusinessPhone
		}
		t.Set(phone, "business_profile", "support_phone")
	}

	if user.TOSAcceptedAt != nil {
		t.Set(user.TOSAcceptedAt.Unix(), "tos_acceptance", "date")
		if user.TOSAcceptedIP != nil {
			t.Set(*user.TOSAcceptedIP, "tos_acceptance", "ip")
		}
	}

	t.Set(snap.ID.String(), "metadata", "compliance_snapshot_id")
	t.Set(user.Email, "email")

	for _, capability := range policy.Capabilities {
		t.Set(true, "capabilities", capability, "requested")
	}

	if snap.IsBusiness {
		t.Set(remoteBusinessTypeCompany, "business_type")
		company, err := b.Company(snap, opts)
		if err != nil {
			return nil, err
		}
		if !company.IsEmpty() {
			t.Set(company, "company")
		}
	} else {
		t.Set(remoteBusinessTypeIndividual, "business_type")
		individual, err := b.Individual(snap)
		if err != nil {
			return nil, err
		}
		if !individual.IsEmpty() {
			t.Set(individual, "individual")
		}
		if snap.BusinessType == domain.BusinessTypeSoleProprietorship && snap.CountryCode == countries.US {
			t.Set("sole_proprietorship", "company", "structure")
		}
	}

	return t.Prune(), nil
}

// Individual builds the person subtree for an individual legal entity.
// Japan submits kana/kanji name and address variants and omits the generic
// address block entirely.
func (b *TreeBuilder) Individual(snap *domain.ComplianceSnapshot) (attrtree.Tree, error) {
	t := attrtree.New()

	t.Set(snap.FirstName, "first_name")
	t.Set(snap.LastName, "last_name")
	t.Set(snap.Email, "email")
	t.Set(snap.Phone, "phone")

	if snap.HasFullBirthDate() {
		t.Set(snap.BirthDay, "dob", "day")
		t.Set(snap.BirthMonth, "dob", "month")
		t.Set(snap.BirthYear, "dob", "year")
	}

	if snap.CountryCode == countries.JP {
		t.Set(snap.FirstNameKanji, "first_name_kanji")
		t.Set(snap.LastNameKanji, "last_name_kanji")
		t.Set(snap.FirstNameKana, "first_name_kana")
		t.Set(snap.LastNameKana, "last_name_kana")
		b.setJapanAddress(t, "address_kanji", snap.StreetAddressKanji, snap)
		b.setJapanAddress(t, "address_kana", snap.StreetAddressKana, snap)
	} else {
		t.Set(snap.StreetAddress, "address", "line1")
		t.Set(snap.City, "address", "city")
		t.Set(snap.State, "address", "state")
		t.Set(snap.ZipCode, "address", "postal_code")
	}

	if c, ok := countries.Lookup(snap.CountryCode); ok && c.RequiresNationality() {
		t.Set(snap.Nationality, "nationality")
	}

	if err := b.setIndividualTaxID(t, snap); err != nil {
		return nil, err
	}

	return t.Prune(), nil
}

// setIndividualTaxID applies the tax-ID field selection rule. The decrypted
// value's length picks the remote field: a US value of exactly 4 digits is
// the last-4 of an SSN, anything longer is a full SSN/EIN. Non-US values
// always submit as id_number.
func (b *TreeBuilder) setIndividualTaxID(t attrtree.Tree, snap *domain.ComplianceSnapshot) error {
	if snap.IndividualTaxIDEnc == "" {
		return nil
	}
	taxID, err := b.enc.Decrypt(snap.IndividualTaxIDEnc)
	if err != nil {
		return apperror.ErrEncryptionFailure(fmt.Errorf("decrypt individual tax id: %w", err))
	}
	if taxID == "" {
		return nil
	}
	if snap.CountryCode == countries.US && len(taxID) == 4 {
		t.Set(taxID, "ssn_last_4")
		return nil
	}
	t.Set(taxID, "id_number")
	return nil
}

// Company builds the company subtree for a business legal entity.
func (b *TreeBuilder) Company(snap *domain.ComplianceSnapshot, opts BuildOptions) (attrtree.Tree, error) {
	t := attrtree.New()

	t.Set(snap.BusinessName, "name")
	t.Set(snap.BusinessPhone, "phone")

	if snap.BusinessCountryCode == countries.JP {
		t.Set(snap.BusinessNameKanji, "name_kanji")
		t.Set(snap.BusinessNameKana, "name_kana")
	}

	t.Set(snap.BusinessStreetAddress, "address", "line1")
	t.Set(snap.BusinessCity, "address", "city")
	t.Set(snap.BusinessState, "address", "state")
	t.Set(snap.BusinessZipCode, "address", "postal_code")

	if snap.BusinessTaxIDEnc != "" {
		taxID, err := b.enc.Decrypt(snap.BusinessTaxIDEnc)
		if err != nil {
			return nil, apperror.ErrEncryptionFailure(fmt.Errorf("decrypt business tax id: %w", err))
		}
		t.Set(taxID, "tax_id")
	}

	// Canada: non-profits need an explicit structure, and the structure
	// field is locked after creation so updates must not resend it.
	if snap.BusinessCountryCode == countries.CA {
		if !opts.ForUpdate && snap.BusinessType == domain.BusinessTypeNonProfit {
			t.Set("incorporated_non_profit", "structure")
		}
	}

	return t.Prune(), nil
}

// Person builds the person sub-resource tree for business accounts. The
// representative relationship block is always present: the platform models
// exactly one fully-owning representative.
func (b *TreeBuilder) Person(snap *domain.ComplianceSnapshot) (attrtree.Tree, error) {
	t, err := b.Individual(snap)
	if err != nil {
		return nil, err
	}
	t.Set(true, "relationship", "representative")
	t.Set(true, "relationship", "owner")
	t.Set(100, "relationship", "percent_ownership")
	t.Set("CEO", "relationship", "title")
	return t.Prune(), nil
}

// BankAccountTree builds the external-account tree for a bank payout
// destination. The account number is decrypted in memory only.
func (b *TreeBuilder) BankAccountTree(bank *domain.BankAccount) (attrtree.Tree, error) {
	accountNumber, err := b.enc.Decrypt(bank.AccountNumberEnc)
	if err != nil {
		return nil, apperror.ErrEncryptionFailure(fmt.Errorf("decrypt account number: %w", err))
	}

	t := attrtree.New()
	t.Set("bank_account", "external_account", "object")
	t.Set(bank.Country, "external_account", "country")
	t.Set(bank.Currency, "external_account", "currency")
	t.Set(bank.AccountHolderName, "external_account", "account_holder_name")
	t.Set(accountNumber, "external_account", "account_number")
	t.Set(bank.RoutingNumber, "external_account", "routing_number")
	return t.Prune(), nil
}

func (b *TreeBuilder) setJapanAddress(t attrtree.Tree, key, line1 string, snap *domain.ComplianceSnapshot) {
	t.Set(line1, key, "line1")
	t.Set(snap.City, key, "city")
	t.Set(snap.State, key, "state")
	t.Set(snap.ZipCode, key, "postal_code")
}

package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stripe-account-reconciler/internal/core/domain"
	"stripe-account-reconciler/internal/countries"
)

// plainEnc is a pass-through encryption stub for builder tests.
type plainEnc struct{}

func (plainEnc) Encrypt(s string) (string, error) { return s, nil }
func (plainEnc) Decrypt(s string) (string, error) { return s, nil }

func testSnapshot() *domain.ComplianceSnapshot {
	return &domain.ComplianceSnapshot{
		ID:            uuid.New(),
		UserID:        uuid.New(),
		BusinessType:  domain.BusinessTypeIndividual,
		FirstName:     "Ada",
		LastName:      "Lovelace",
		BirthDay:      10,
		BirthMonth:    12,
		BirthYear:     1985,
		Email:         "ada@example.com",
		Phone:         "+14155550100",
		StreetAddress: "1 Analytical Way",
		City:          "San Francisco",
		State:         "CA",
		ZipCode:       "94103",
		CountryCode:   countries.US,
	}
}

func testUser() *domain.User {
	at := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	ip := "203.0.113.7"
	return &domain.User{
		ID:            uuid.New(),
		Email:         "ada@example.com",
		Active:        true,
		TOSAcceptedAt: &at,
		TOSAcceptedIP: &ip,
	}
}

func TestTreeBuilder_Individual_US(t *testing.T) {
	b := NewTreeBuilder(plainEnc{})
	snap := testSnapshot()
	snap.IndividualTaxIDEnc = "123456789"

	tree, err := b.Individual(snap)
	require.NoError(t, err)

	first, _ := tree.Get("first_name")
	assert.Equal(t, "Ada", first)
	day, _ := tree.Get("dob", "day")
	assert.Equal(t, 10, day)
	line1, _ := tree.Get("address", "line1")
	assert.Equal(t, "1 Analytical Way", line1)

	// 9-digit value submits as the full id_number field.
	id, ok := tree.Get("id_number")
	require.True(t, ok)
	assert.Equal(t, "123456789", id)
	_, ok = tree.Get("ssn_last_4")
	assert.False(t, ok)

	// US does not collect nationality.
	_, ok = tree.Get("nationality")
	assert.False(t, ok)
}

func TestTreeBuilder_Individual_USLastFour(t *testing.T) {
	b := NewTreeBuilder(plainEnc{})
	snap := testSnapshot()
	snap.IndividualTaxIDEnc = "6789"

	tree, err := b.Individual(snap)
	require.NoError(t, err)

	last4, ok := tree.Get("ssn_last_4")
	require.True(t, ok)
	assert.Equal(t, "6789", last4)
	_, ok = tree.Get("id_number")
	assert.False(t, ok)
}

func TestTreeBuilder_Individual_NonUSShortTaxID(t *testing.T) {
	b := NewTreeBuilder(plainEnc{})
	snap := testSnapshot()
	snap.CountryCode = countries.SG
	snap.Nationality = "SG"
	snap.IndividualTaxIDEnc = "6789"

	tree, err := b.Individual(snap)
	require.NoError(t, err)

	// Outside the US a 4-character value is still a full id_number.
	id, ok := tree.Get("id_number")
	require.True(t, ok)
	assert.Equal(t, "6789", id)
	_, ok = tree.Get("ssn_last_4")
	assert.False(t, ok)

	nat, ok := tree.Get("nationality")
	require.True(t, ok)
	assert.Equal(t, "SG", nat)
}

func TestTreeBuilder_Individual_Japan(t *testing.T) {
	b := NewTreeBuilder(plainEnc{})
	snap := testSnapshot()
	snap.CountryCode = countries.JP
	snap.FirstNameKanji = "絵藍"
	snap.LastNameKanji = "山田"
	snap.FirstNameKana = "エラン"
	snap.LastNameKana = "ヤマダ"
	snap.StreetAddressKanji = "東京都1-2-3"
	snap.StreetAddressKana = "トウキョウト1-2-3"
	snap.City = "Shibuya"
	snap.State = "Tokyo"
	snap.ZipCode = "150-0002"

	tree, err := b.Individual(snap)
	require.NoError(t, err)

	kanji, ok := tree.Get("first_name_kanji")
	require.True(t, ok)
	assert.Equal(t, "絵藍", kanji)
	line1, ok := tree.Get("address_kanji", "line1")
	require.True(t, ok)
	assert.Equal(t, "東京都1-2-3", line1)
	kanaLine1, ok := tree.Get("address_kana", "line1")
	require.True(t, ok)
	assert.Equal(t, "トウキョウト1-2-3", kanaLine1)

	// The generic address block is never sent for Japan.
	_, ok = tree.Get("address")
	assert.False(t, ok)
}

func TestTreeBuilder_Individual_PartialDOBOmitted(t *testing.T) {
	b := NewTreeBuilder(plainEnc{})
	snap := testSnapshot()
	snap.BirthYear = 0

	tree, err := b.Individual(snap)
	require.NoError(t, err)

	_, ok := tree.Get("dob")
	assert.False(t, ok)
}

func TestTreeBuilder_AccountProfile_Individual(t *testing.T) {
	b := NewTreeBuilder(plainEnc{})
	snap := testSnapshot()
	user := testUser()
	policy, ok := countries.Resolve(countries.US)
	require.True(t, ok)

	tree, err := b.AccountProfile(user, snap, policy, BuildOptions{})
	require.NoError(t, err)

	bt, _ := tree.Get("business_type")
	assert.Equal(t, "individual", bt)
	name, _ := tree.Get("business_profile", "name")
	assert.Equal(t, "Ada Lovelace", name)
	date, _ := tree.Get("tos_acceptance", "date")
	assert.Equal(t, user.TOSAcceptedAt.Unix(), date)
	ip, _ := tree.Get("tos_acceptance", "ip")
	assert.Equal(t, "203.0.113.7", ip)
	snapID, _ := tree.Get("metadata", "compliance_snapshot_id")
	assert.Equal(t, snap.ID.String(), snapID)

	card, _ := tree.Get("capabilities", countries.CapabilityCardPayments, "requested")
	assert.Equal(t, true, card)
	transfers, _ := tree.Get("capabilities", countries.CapabilityTransfers, "requested")
	assert.Equal(t, true, transfers)

	_, ok = tree.Get("company", "structure")
	assert.False(t, ok)
	// US has no support-phone requirement.
	_, ok = tree.Get("business_profile", "support_phone")
	assert.False(t, ok)
}

func TestTreeBuilder_AccountProfile_USSoleProprietor(t *testing.T) {
	b := NewTreeBuilder(plainEnc{})
	snap := testSnapshot()
	snap.BusinessType = domain.BusinessTypeSoleProprietorship
	policy, ok := countries.Resolve(countries.US)
	require.True(t, ok)

	tree, err := b.AccountProfile(testUser(), snap, policy, BuildOptions{})
	require.NoError(t, err)

	structure, ok := tree.Get("company", "structure")
	require.True(t, ok)
	assert.Equal(t, "sole_proprietorship", structure)
	bt, _ := tree.Get("business_type")
	assert.Equal(t, "individual", bt)
}

func TestTreeBuilder_AccountProfile_SupportPhone(t *testing.T) {
	b := NewTreeBuilder(plainEnc{})
	snap := testSnapshot()
	snap.CountryCode = countries.CA
	snap.Phone = "+16135550142"
	policy, ok := countries.Resolve(countries.CA)
	require.True(t, ok)

	tree, err := b.AccountProfile(testUser(), snap, policy, BuildOptions{})
	require.NoError(t, err)

	phone, ok := tree.Get("business_profile", "support_phone")
	require.True(t, ok)
	assert.Equal(t, "+16135550142", phone)
}

func TestTreeBuilder_Company_CanadaNonProfit(t *testing.T) {
	b := NewTreeBuilder(plainEnc{})
	snap := testSnapshot()
	snap.IsBusiness = true
	snap.BusinessType = domain.BusinessTypeNonProfit
	snap.BusinessName = "Open Knowledge Society"
	snap.BusinessCountryCode = countries.CA
	snap.BusinessStreetAddress = "99 Bank St"
	snap.BusinessCity = "Ottawa"
	snap.BusinessState = "ON"
	snap.BusinessZipCode = "K1P 1H4"

	created, err := b.Company(snap, BuildOptions{})
	require.NoError(t, err)
	structure, ok := created.Get("structure")
	require.True(t, ok)
	assert.Equal(t, "incorporated_non_profit", structure)

	// Structure is locked after creation and must not be resent.
	updated, err := b.Company(snap, BuildOptions{ForUpdate: true})
	require.NoError(t, err)
	_, ok = updated.Get("structure")
	assert.False(t, ok)
}

func TestTreeBuilder_Person(t *testing.T) {
	b := NewTreeBuilder(plainEnc{})
	snap := testSnapshot()

	tree, err := b.Person(snap)
	require.NoError(t, err)

	rep, _ := tree.Get("relationship", "representative")
	assert.Equal(t, true, rep)
	owner, _ := tree.Get("relationship", "owner")
	assert.Equal(t, true, owner)
	pct, _ := tree.Get("relationship", "percent_ownership")
	assert.Equal(t, 100, pct)
	title, _ := tree.Get("relationship", "title")
	assert.Equal(t, "CEO", title)
}

func TestTreeBuilder_BankAccountTree(t *testing.T) {
	b := NewTreeBuilder(plainEnc{})
	bank := &domain.BankAccount{
		ID:                uuid.New(),
		Country:           countries.US,
		Currency:          "usd",
		AccountHolderName: "Ada Lovelace",
		AccountNumberEnc:  "000123456789",
		RoutingNumber:     "110000000",
	}

	tree, err := b.BankAccountTree(bank)
	require.NoError(t, err)

	num, _ := tree.Get("external_account", "account_number")
	assert.Equal(t, "000123456789", num)
	routing, _ := tree.Get("external_account", "routing_number")
	assert.Equal(t, "110000000", routing)
	obj, _ := tree.Get("external_account", "object")
	assert.Equal(t, "bank_account", obj)
}

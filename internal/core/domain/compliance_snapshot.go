package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// BusinessType classifies the legal entity behind a compliance snapshot.
type BusinessType string

const (
	BusinessTypeIndividual         BusinessType = "individual"
	BusinessTypeSoleProprietorship BusinessType = "sole_proprietorship"
	BusinessTypeLLC                BusinessType = "llc"
	BusinessTypeCorporation        BusinessType = "corporation"
	BusinessTypePartnership        BusinessType = "partnership"
	BusinessTypeNonProfit          BusinessType = "non_profit"
)

// ComplianceSnapshot is an immutable-per-version record of a person or
// business's legal identity. A new submission supersedes the previous
// snapshot; rows are never mutated in place.
type ComplianceSnapshot struct {
	ID           uuid.UUID    `json:"id"`
	UserID       uuid.UUID    `json:"user_id"`
	IsBusiness   bool         `json:"is_business"`
	BusinessType BusinessType `json:"business_type"`

	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	// Japan-specific name variants.
	FirstNameKanji string `json:"first_name_kanji,omitempty"`
	LastNameKanji  string `json:"last_name_kanji,omitempty"`
	FirstNameKana  string `json:"first_name_kana,omitempty"`
	LastNameKana   string `json:"last_name_kana,omitempty"`

	BirthDay   int `json:"birth_day"`
	BirthMonth int `json:"birth_month"`
	BirthYear  int `json:"birth_year"`

	Nationality string `json:"nationality,omitempty"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`

	// Encrypted at rest; decrypted only at attribute-tree build time.
	IndividualTaxIDEnc string `json:"-"`

	StreetAddress string `json:"street_address"`
	City          string `json:"city"`
	State         string `json:"state"`
	ZipCode       string `json:"zip_code"`
	CountryCode   string `json:"country_code"` // ISO-3166 alpha-2
	// Japan-specific address variants.
	StreetAddressKanji string `json:"street_address_kanji,omitempty"`
	StreetAddressKana  string `json:"street_address_kana,omitempty"`

	BusinessName          string `json:"business_name,omitempty"`
	BusinessNameKanji     string `json:"business_name_kanji,omitempty"`
	BusinessNameKana      string `json:"business_name_kana,omitempty"`
	BusinessTaxIDEnc      string `json:"-"`
	BusinessPhone         string `json:"business_phone,omitempty"`
	BusinessStreetAddress string `json:"business_street_address,omitempty"`
	BusinessCity          string `json:"business_city,omitempty"`
	BusinessState         string `json:"business_state,omitempty"`
	BusinessZipCode       string `json:"business_zip_code,omitempty"`
	BusinessCountryCode   string `json:"business_country_code,omitempty"`

	CreatedAt time.Time  `json:"created_at"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"` // set when superseded
}

// FullName returns the individual's legal name.
func (s *ComplianceSnapshot) FullName() string {
	return strings.TrimSpace(s.FirstName + " " + s.LastName)
}

// LegalEntityCountry returns the alpha-2 country the legal entity operates
// under: the business country for business snapshots, else the personal one.
func (s *ComplianceSnapshot) LegalEntityCountry() string {
	if s.IsBusiness && s.BusinessCountryCode != "" {
		return s.BusinessCountryCode
	}
	return s.CountryCode
}

// HasFullBirthDate returns true if all three date-of-birth parts are present.
func (s *ComplianceSnapshot) HasFullBirthDate() bool {
	return s.BirthDay > 0 && s.BirthMonth > 0 && s.BirthYear > 0
}

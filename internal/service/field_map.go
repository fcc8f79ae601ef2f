package service

import "strings"

// Internal compliance-field identifiers. RequirementRequest rows always
// carry these, never raw remote field paths. The risk namespace is the one
// exception and passes through verbatim.
const (
	FieldFirstName          = "first_name"
	FieldLastName           = "last_name"
	FieldBirthday           = "birthday"
	FieldIndividualTaxID    = "individual_tax_id"
	FieldStreetAddress      = "street_address"
	FieldCity               = "city"
	FieldState              = "state"
	FieldZipCode            = "zip_code"
	FieldPhone              = "phone"
	FieldEmail              = "email"
	FieldNationality        = "nationality"
	FieldIdentityDocument   = "stripe_identity_document_id"
	FieldAdditionalDocument = "stripe_additional_document_id"
	FieldBusinessName       = "business_name"
	FieldBusinessTaxID      = "business_tax_id"
	FieldBusinessPhone      = "business_phone"
	FieldBusinessAddress    = "business_street_address"
	FieldCompanyDocument    = "stripe_company_document_id"
	FieldBankAccount        = "bank_account"
	FieldTOSAgreement       = "stripe_tos_agreement"
)

// externalFieldMap translates remote requirement field paths to internal
// compliance-field identifiers. Unmapped paths fall back to the raw path.
var externalFieldMap = map[string]string{
	"individual.first_name":                  FieldFirstName,
	"individual.last_name":                   FieldLastName,
	"individual.first_name_kanji":            FieldFirstName,
	"individual.last_name_kanji":             FieldLastName,
	"individual.first_name_kana":             FieldFirstName,
	"individual.last_name_kana":              FieldLastName,
	"individual.dob.day":                     FieldBirthday,
	"individual.dob.month":                   FieldBirthday,
	"individual.dob.year":                    FieldBirthday,
	"individual.id_number":                   FieldIndividualTaxID,
	"individual.ssn_last_4":                  FieldIndividualTaxID,
	"individual.address.line1":               FieldStreetAddress,
	"individual.address.city":                FieldCity,
	"individual.address.state":               FieldState,
	"individual.address.postal_code":         FieldZipCode,
	"individual.address_kanji.line1":         FieldStreetAddress,
	"individual.address_kana.line1":          FieldStreetAddress,

	"individual.phone":                            FieldPhone,
	"individual.email":                            FieldEmail,
	"individual.nationality":                      FieldNationality,
	"individual.verification.document":            FieldIdentityDocument,
	"individual.verification.additional_document": FieldAdditionalDocument,

	"company.name":                  FieldBusinessName,
	"company.tax_id":                FieldBusinessTaxID,
	"company.phone":                 FieldBusinessPhone,
	"company.address.line1":         FieldBusinessAddress,
	"company.verification.document": FieldCompanyDocument,
	"external_account":              FieldBankAccount,
	"tos_acceptance.date":           FieldTOSAgreement,
	"tos_acceptance.ip":             FieldTOSAgreement,
}

// riskFieldPrefix marks processor risk/supportability requirement fields.
// These carry no stable schema and are passed through unmapped.
const riskFieldPrefix = "interv_"

// Risk field path segments that trigger immediate suspension: the processor
// has rejected an appeal and no remediation remains.
const (
	riskRejectionAppeal               = "rejection_appeal"
	riskSupportabilityRejectionAppeal = "supportability_rejection_appeal"
)

// normalizeFieldPath rewrites person-scoped requirement paths
// (person_<id>.first_name) to the individual-scoped form the field map
// understands.
func normalizeFieldPath(field string) string {
	if !strings.HasPrefix(field, "person_") {
		return field
	}
	dot := strings.Index(field, ".")
	if dot < 0 {
		return field
	}
	return "individual" + field[dot:]
}

// internalFieldID maps a (normalized) remote field path to the internal
// identifier, falling back to the raw path when unmapped.
func internalFieldID(field string) string {
	if id, ok := externalFieldMap[field]; ok {
		return id
	}
	return field
}

// isRiskField reports whether the remote path belongs to the risk
// namespace.
func isRiskField(field string) bool {
	return strings.HasPrefix(field, riskFieldPrefix)
}

// isTerminalRiskField reports whether a risk field's second path segment
// marks a rejected appeal, which suspends the user outright.
func isTerminalRiskField(field string) bool {
	parts := strings.SplitN(field, ".", 3)
	if len(parts) < 2 {
		return false
	}
	return parts[1] == riskRejectionAppeal || parts[1] == riskSupportabilityRejectionAppeal
}

// partialProvisionAllowed reports whether the remote ask can be satisfied
// with a partial value. Only the SSN last-4 request qualifies: it maps to
// the same internal tax-id field as the full-number ask but needs less.
func partialProvisionAllowed(field string) bool {
	return field == "individual.ssn_last_4"
}

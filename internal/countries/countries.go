// Package countries holds the static country reference table and the
// capability policy derived from it.
package countries

// Alpha-2 codes with special-cased business rules.
const (
	US = "US"
	CA = "CA"
	JP = "JP"
	SG = "SG"
	AE = "AE"
	BD = "BD"
	PK = "PK"
	GB = "GB"
	AU = "AU"
)

// Processor capabilities.
const (
	CapabilityCardPayments = "card_payments"
	CapabilityTransfers    = "transfers"
)

// Country is one row of the reference table.
type Country struct {
	Alpha2                 string
	Name                   string
	PayoutCurrency         string
	CrossBorderPayoutsOnly bool
}

// RequiresNationality reports whether individual submissions for this
// country must carry a nationality field.
func (c Country) RequiresNationality() bool {
	switch c.Alpha2 {
	case AE, SG, BD, PK:
		return true
	}
	return false
}

// RequiresSupportPhone reports whether the business profile must carry a
// support phone.
func (c Country) RequiresSupportPhone() bool {
	return c.Alpha2 == AE || c.Alpha2 == CA
}

var table = map[string]Country{
	US: {US, "United States", "usd", false},
	CA: {CA, "Canada", "cad", false},
	GB: {GB, "United Kingdom", "gbp", false},
	AU: {AU, "Australia", "aud", false},
	JP: {JP, "Japan", "jpy", false},
	SG: {SG, "Singapore", "sgd", false},
	AE: {AE, "United Arab Emirates", "aed", false},
	"NZ": {"NZ", "New Zealand", "nzd", false},
	"AT": {"AT", "Austria", "eur", false},
	"BE": {"BE", "Belgium", "eur", false},
	"DE": {"DE", "Germany", "eur", false},
	"ES": {"ES", "Spain", "eur", false},
	"FI": {"FI", "Finland", "eur", false},
	"FR": {"FR", "France", "eur", false},
	"IE": {"IE", "Ireland", "eur", false},
	"IT": {"IT", "Italy", "eur", false},
	"NL": {"NL", "Netherlands", "eur", false},
	"PT": {"PT", "Portugal", "eur", false},
	"CH": {"CH", "Switzerland", "chf", false},
	"SE": {"SE", "Sweden", "sek", false},
	"NO": {"NO", "Norway", "nok", false},
	"DK": {"DK", "Denmark", "dkk", false},
	"PL": {"PL", "Poland", "pln", false},
	"CZ": {"CZ", "Czechia", "czk", false},
	"HK": {"HK", "Hong Kong", "hkd", false},
	"MX": {"MX", "Mexico", "mxn", false},

	// Cross-border-payout-only countries: payouts route through another
	// entity, so only the transfers capability is requested.
	BD:   {BD, "Bangladesh", "bdt", true},
	PK:   {PK, "Pakistan", "pkr", true},
	"TH": {"TH", "Thailand", "thb", true},
	"KR": {"KR", "South Korea", "krw", true},
	"ID": {"ID", "Indonesia", "idr", true},
	"PH": {"PH", "Philippines", "php", true},
	"VN": {"VN", "Vietnam", "vnd", true},
	"TR": {"TR", "Turkey", "try", true},
	"AR": {"AR", "Argentina", "ars", true},
	"CL": {"CL", "Chile", "clp", true},
	"CO": {"CO", "Colombia", "cop", true},
	"PE": {"PE", "Peru", "pen", true},
}

// Policy is the resolved capability policy for a legal-entity country.
type Policy struct {
	Country      Country
	Capabilities []string
}

// Lookup returns the country row for an alpha-2 code.
func Lookup(alpha2 string) (Country, bool) {
	c, ok := table[alpha2]
	return c, ok
}

// Supported reports whether payouts are supported for the country at all.
func Supported(alpha2 string) bool {
	_, ok := table[alpha2]
	return ok
}

// Resolve returns the capability policy for a legal-entity country code.
// Cross-border-payout-only countries request transfers only; everyone else
// gets card_payments and transfers.
func Resolve(alpha2 string) (Policy, bool) {
	c, ok := table[alpha2]
	if !ok {
		return Policy{}, false
	}
	caps := []string{CapabilityCardPayments, CapabilityTransfers}
	if c.CrossBorderPayoutsOnly {
		caps = []string{CapabilityTransfers}
	}
	return Policy{Country: c, Capabilities: caps}, true
}

// All returns every country in the table. Used by tests and reference
// endpoints; the returned slice is a fresh copy.
func All() []Country {
	out := make([]Country, 0, len(table))
	for _, c := range table {
		out = append(out, c)
	}
	return out
}

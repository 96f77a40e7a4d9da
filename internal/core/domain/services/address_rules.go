package services

import (
	"regexp"
	"strings"
)

// countryRule describes how addresses of one country are checked.
type countryRule struct {
	postalPattern *regexp.Regexp
	// formatPostal rewrites a postal code into its canonical spelling.
	formatPostal func(string) string
	// regions maps upper-cased full region names to their codes. Nil when
	// the country has no region codes.
	regions map[string]string
	// abbreviateStreet turns on street-suffix abbreviation.
	abbreviateStreet bool
}

var countryRules = map[string]countryRule{
	"US": {
		postalPattern:    regexp.MustCompile(`^\d{5}(-\d{4})?$`),
		formatPostal:     formatUSZip,
		regions:          usStates,
		abbreviateStreet: true,
	},
	"CA": {
		postalPattern: regexp.MustCompile(`^[A-Z]\d[A-Z] \d[A-Z]\d$`),
		formatPostal:  splitAfter(3),
		regions:       caProvinces,
	},
	"GB": {
		postalPattern: regexp.MustCompile(`^[A-Z]{1,2}\d[A-Z\d]? \d[A-Z]{2}$`),
		formatPostal:  splitBeforeLast(3),
	},
	"NL": {
		postalPattern: regexp.MustCompile(`^\d{4} [A-Z]{2}$`),
		formatPostal:  splitAfter(4),
	},
	"DE": {postalPattern: regexp.MustCompile(`^\d{5}$`), formatPostal: compactUpper},
	"FR": {postalPattern: regexp.MustCompile(`^\d{5}$`), formatPostal: compactUpper},
	"ES": {postalPattern: regexp.MustCompile(`^\d{5}$`), formatPostal: compactUpper},
	"IT": {postalPattern: regexp.MustCompile(`^\d{5}$`), formatPostal: compactUpper},
	"AT": {postalPattern: regexp.MustCompile(`^\d{4}$`), formatPostal: compactUpper},
	"CH": {postalPattern: regexp.MustCompile(`^\d{4}$`), formatPostal: compactUpper},
	"BE": {postalPattern: regexp.MustCompile(`^\d{4}$`), formatPostal: compactUpper},
	"AU": {postalPattern: regexp.MustCompile(`^\d{4}$`), formatPostal: compactUpper},
}

var countryAliases = map[string]string{
	"USA":                      "US",
	"UNITED STATES":            "US",
	"UNITED STATES OF AMERICA": "US",
	"CANADA":                   "CA",
	"UK":                       "GB",
	"UNITED KINGDOM":           "GB",
	"GREAT BRITAIN":            "GB",
	"NETHERLANDS":              "NL",
	"GERMANY":                  "DE",
	"DEUTSCHLAND":              "DE",
	"FRANCE":                   "FR",
	"SPAIN":                    "ES",
	"ITALY":                    "IT",
	"AUSTRIA":                  "AT",
	"SWITZERLAND":              "CH",
	"BELGIUM":                  "BE",
	"AUSTRALIA":                "AU",
}

var streetSuffixes = map[string]string{
	"STREET":    "St",
	"AVENUE":    "Ave",
	"BOULEVARD": "Blvd",
	"ROAD":      "Rd",
	"DRIVE":     "Dr",
	"LANE":      "Ln",
	"COURT":     "Ct",
	"PLACE":     "Pl",
	"TERRACE":   "Ter",
	"HIGHWAY":   "Hwy",
	"PARKWAY":   "Pkwy",
	"SQUARE":    "Sq",
}

var usStates = map[string]string{
	"ALABAMA": "AL", "ALASKA": "AK", "ARIZONA": "AZ", "ARKANSAS": "AR",
	"CALIFORNIA": "CA", "COLORADO": "CO", "CONNECTICUT": "CT", "DELAWARE": "DE",
	"DISTRICT OF COLUMBIA": "DC", "FLORIDA": "FL", "GEORGIA": "GA", "HAWAII": "HI",
	"IDAHO": "ID", "ILLINOIS": "IL", "INDIANA": "IN", "IOWA": "IA",
	"KANSAS": "KS", "KENTUCKY": "KY", "LOUISIANA": "LA", "MAINE": "ME",
	"MARYLAND": "MD", "MASSACHUSETTS": "MA", "MICHIGAN": "MI", "MINNESOTA": "MN",
	"MISSISSIPPI": "MS", "MISSOURI": "MO", "MONTANA": "MT", "NEBRASKA": "NE",
	"NEVADA": "NV", "NEW HAMPSHIRE": "NH", "NEW JERSEY": "NJ", "NEW MEXICO": "NM",
	"NEW YORK": "NY", "NORTH CAROLINA": "NC", "NORTH DAKOTA": "ND", "OHIO": "OH",
	"OKLAHOMA": "OK", "OREGON": "OR", "PENNSYLVANIA": "PA", "RHODE ISLAND": "RI",
	"SOUTH CAROLINA": "SC", "SOUTH DAKOTA": "SD", "TENNESSEE": "TN", "TEXAS": "TX",
	"UTAH": "UT", "VERMONT": "VT", "VIRGINIA": "VA", "WASHINGTON": "WA",
	"WEST VIRGINIA": "WV", "WISCONSIN": "WI", "WYOMING": "WY",
}

var caProvinces = map[string]string{
	"ALBERTA": "AB", "BRITISH COLUMBIA": "BC", "MANITOBA": "MB", "NEW BRUNSWICK": "NB",
	"NEWFOUNDLAND AND LABRADOR": "NL", "NOVA SCOTIA": "NS", "NORTHWEST TERRITORIES": "NT",
	"NUNAVUT": "NU", "ONTARIO": "ON", "PRINCE EDWARD ISLAND": "PE", "QUEBEC": "QC",
	"SASKATCHEWAN": "SK", "YUKON": "YT",
}

var nonDigit = regexp.MustCompile(`\D`)

func compactUpper(s string) string {
	return strings.ToUpper(strings.Join(strings.Fields(s), ""))
}

// formatUSZip accepts 5 or 9 digits with any separators.
func formatUSZip(s string) string {
	digits := nonDigit.ReplaceAllString(s, "")
	if len(digits) == 9 {
		return digits[:5] + "-" + digits[5:]
	}
	if len(digits) == 5 {
		return digits
	}
	return strings.TrimSpace(s)
}

func splitAfter(n int) func(string) string {
	return func(s string) string {
		c := compactUpper(s)
		if len(c) <= n {
			return c
		}
		return c[:n] + " " + c[n:]
	}
}

func splitBeforeLast(n int) func(string) string {
	return func(s string) string {
		c := compactUpper(s)
		if len(c) <= n {
			return c
		}
		return c[:len(c)-n] + " " + c[len(c)-n:]
	}
}

// collapseSpaces trims s and squeezes inner whitespace runs to one space.
func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// abbreviateStreetSuffix replaces a spelled-out trailing suffix, so
// "5 Elm Street" becomes "5 Elm St".
func abbreviateStreetSuffix(street string) string {
	words := strings.Fields(street)
	if len(words) < 2 {
		return street
	}
	last := strings.ToUpper(strings.TrimSuffix(words[len(words)-1], "."))
	if abbr, ok := streetSuffixes[last]; ok {
		words[len(words)-1] = abbr
	}
	return strings.Join(words, " ")
}

func normalizeCountry(c string) string {
	c = strings.ToUpper(collapseSpaces(c))
	if code, ok := countryAliases[c]; ok {
		return code
	}
	return c
}

func normalizeRegion(rule countryRule, region string) string {
	if rule.regions == nil {
		return region
	}
	upper := strings.ToUpper(region)
	if code, ok := rule.regions[upper]; ok {
		return code
	}
	return upper
}

func isKnownRegion(rule countryRule, region string) bool {
	if rule.regions == nil {
		return true
	}
	for _, code := range rule.regions {
		if code == region {
			return true
		}
	}
	return false
}

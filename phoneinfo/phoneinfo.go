// SPDX-License-Identifier: GPL-3.0-only

package phoneinfo

import (
	"strings"

	"github.com/nyaruka/phonenumbers"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// Normalize prepares a raw phone number for parsing: surrounding whitespace
// is trimmed and a leading 00 international call prefix is rewritten to +.
func Normalize(raw string) string {
	cleaned := strings.TrimSpace(raw)
	if strings.HasPrefix(cleaned, "00") {
		cleaned = "+" + cleaned[2:]
	}
	return cleaned
}

func normalizeRegion(region string) string {
	region = strings.ToUpper(strings.TrimSpace(region))
	if region == "" {
		return DefaultRegion
	}
	return region
}

// Extract parses rawNumber and assembles the lookup record for it.
// defaultRegion interprets numbers without an international prefix; it is
// case-insensitive and falls back to DefaultRegion when empty. Failures to
// parse are reported as *InvalidFormatError; metadata gaps are not failures
// and leave the affected fields empty.
func Extract(rawNumber, defaultRegion string) (*Info, error) {
	cleaned := Normalize(rawNumber)
	region := normalizeRegion(defaultRegion)

	parsed, err := phonenumbers.Parse(cleaned, region)
	if err != nil {
		return nil, &InvalidFormatError{Input: rawNumber, Region: region, cause: err}
	}

	// Parse accepts bare short strings such as "123"; treat numbers that are
	// too short for any region as unparseable.
	if phonenumbers.IsPossibleNumberWithReason(parsed) == phonenumbers.TOO_SHORT {
		return nil, &InvalidFormatError{Input: rawNumber, Region: region}
	}

	return &Info{
		CountryCode:    parsed.GetCountryCode(),
		NationalNumber: parsed.GetNationalNumber(),
		Country:        countryName(parsed),
		Region:         regionDescription(parsed),
		Carrier:        carrierName(parsed),
		TypeCode:       typeCode(phonenumbers.GetNumberType(parsed)),
		IsValid:        phonenumbers.IsValidNumber(parsed),
		Formatted:      phonenumbers.Format(parsed, phonenumbers.INTERNATIONAL),
	}, nil
}

// countryName resolves the English display name of the number's region.
// Non-geographic numbers have no region code and yield an empty string.
func countryName(parsed *phonenumbers.PhoneNumber) string {
	code := phonenumbers.GetRegionCodeForNumber(parsed)
	if len(code) != 2 || code == "ZZ" {
		return ""
	}
	reg, err := language.ParseRegion(code)
	if err != nil {
		return ""
	}
	return display.English.Regions().Name(reg)
}

func regionDescription(parsed *phonenumbers.PhoneNumber) string {
	desc, err := phonenumbers.GetGeocodingForNumber(parsed, lookupLang)
	if err != nil {
		return ""
	}
	return desc
}

func carrierName(parsed *phonenumbers.PhoneNumber) string {
	name, err := phonenumbers.GetCarrierForNumber(parsed, lookupLang)
	if err != nil {
		return ""
	}
	return name
}

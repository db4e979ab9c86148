// SPDX-License-Identifier: GPL-3.0-only

package phoneinfo

import "fmt"

// DefaultRegion interprets numbers that carry no international prefix when
// the caller does not supply a region of their own.
const DefaultRegion = "US"

// lookupLang selects the language of geocoding and carrier descriptions.
const lookupLang = "en"

// Info holds everything the lookup extracts for a single phone number.
// Country, Region and Carrier are empty strings when the underlying metadata
// has no entry for the number.
type Info struct {
	CountryCode    int32  `json:"country_code"`
	NationalNumber uint64 `json:"national_number"`
	Country        string `json:"country"`
	Region         string `json:"region"`
	Carrier        string `json:"carrier"`
	TypeCode       string `json:"type"`
	IsValid        bool   `json:"is_valid"`
	Formatted      string `json:"formatted_number"`
}

const (
	invalidFormatMessage = "Invalid phone number format"
	invalidFormatDetail  = "The provided number could not be parsed. Please check the format."
)

// InvalidFormatError reports an input that could not be parsed as a phone
// number under the requested region.
type InvalidFormatError struct {
	Input  string
	Region string
	cause  error
}

func (e *InvalidFormatError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("invalid phone number %q (region %s): %v", e.Input, e.Region, e.cause)
	}
	return fmt.Sprintf("invalid phone number %q (region %s)", e.Input, e.Region)
}

func (e *InvalidFormatError) Unwrap() error {
	return e.cause
}

// Message is the stable client-facing error label. It never carries parser
// internals.
func (e *InvalidFormatError) Message() string {
	return invalidFormatMessage
}

// Detail is the stable client-facing hint accompanying Message.
func (e *InvalidFormatError) Detail() string {
	return invalidFormatDetail
}

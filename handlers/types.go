// SPDX-License-Identifier: GPL-3.0-only

package handlers

// swagger:model PhoneInfoResponse
type PhoneInfoResponse struct {
	// Numeric country calling code
	CountryCode int32 `json:"country_code" example:"1"`
	// National significant number
	NationalNumber uint64 `json:"national_number" example:"4155552671"`
	// English name of the number's country, empty when unknown
	Country string `json:"country" example:"United States"`
	// Geographic description of the number, empty when unknown
	Region string `json:"region" example:"San Francisco, CA"`
	// Carrier name, empty when no carrier data exists for the number
	Carrier string `json:"carrier" example:"Vodafone"`
	// Numeric phone number type code, translated by /phone-types
	Type string `json:"type" example:"2"`
	// Whether the number is valid for its region
	IsValid bool `json:"is_valid" example:"true"`
	// Number in international notation
	FormattedNumber string `json:"formatted_number" example:"+1 415-555-2671"`
}

// swagger:model ErrorDetail
type ErrorDetail struct {
	// User-facing error message
	Error string `json:"error" example:"Invalid phone number format"`
	// Additional detail, may be empty
	Detail string `json:"detail" example:"The provided number could not be parsed. Please check the format."`
}

// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error details
	Detail ErrorDetail `json:"detail"`
}

// swagger:model WelcomeResponse
type WelcomeResponse struct {
	// Welcome message
	Message string `json:"message" example:"Welcome to the Phone Number Information API"`
	// Path to the interactive API documentation
	Documentation string `json:"documentation" example:"/docs/index.html"`
	// Example lookup request
	Example string `json:"example" example:"/phone-info?phone_number=+14155552671"`
}

// swagger:model HealthResponse
type HealthResponse struct {
	// Service status
	Status string `json:"status" example:"ok"`
	// Service name
	Service string `json:"service" example:"phoneinfo-server"`
}

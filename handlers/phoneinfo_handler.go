// SPDX-License-Identifier: GPL-3.0-only

package handlers

import (
	"errors"
	"net/http"
	"phoneinfo-server/phoneinfo"
	"strings"

	"github.com/labstack/echo/v4"
)

// PhoneInfoHandler godoc
// @Summary      Look up a phone number
// @Description  Parses a phone number and returns its country, region, carrier, type and international formatting. Numbers without an international prefix are interpreted in the default region.
// @Tags         phone-info
// @Accept       json
// @Produce      json
// @Param        phone_number   query  string  true   "Phone number in international format, e.g. +14155552671"
// @Param        default_region query  string  false  "Default region if country code is missing" default(US)
// @Success      200 {object} PhoneInfoResponse "Phone number information"
// @Failure      400 {object} ErrorResponse "Invalid phone number format"
// @Failure      422 {object} ErrorResponse "Missing phone_number parameter"
// @Router       /phone-info [get]
func PhoneInfoHandler(c echo.Context) error {
	logger := c.Logger()

	rawNumber := c.QueryParam("phone_number")
	if strings.TrimSpace(rawNumber) == "" {
		logger.Warn("phone_number query parameter is missing")
		return &echo.HTTPError{
			Code: http.StatusUnprocessableEntity,
			Message: ErrorDetail{
				Error:  "phone_number query parameter is required",
				Detail: "Provide a phone number, e.g. /phone-info?phone_number=+14155552671",
			},
		}
	}

	region := c.QueryParam("default_region")
	if region == "" {
		region = phoneinfo.DefaultRegion
	}

	info, err := phoneinfo.Extract(rawNumber, region)
	if err != nil {
		var formatErr *phoneinfo.InvalidFormatError
		if errors.As(err, &formatErr) {
			logger.Warnf("Failed to parse phone number '%s': %v", rawNumber, err)
			return &echo.HTTPError{
				Code: http.StatusBadRequest,
				Message: ErrorDetail{
					Error:  formatErr.Message(),
					Detail: formatErr.Detail(),
				},
			}
		}
		logger.Errorf("Phone number lookup failed: %v", err)
		return &echo.HTTPError{
			Code:    http.StatusInternalServerError,
			Message: "Failed to process phone number",
		}
	}

	response := PhoneInfoResponse{
		CountryCode:     info.CountryCode,
		NationalNumber:  info.NationalNumber,
		Country:         info.Country,
		Region:          info.Region,
		Carrier:         info.Carrier,
		Type:            info.TypeCode,
		IsValid:         info.IsValid,
		FormattedNumber: info.Formatted,
	}

	return c.JSON(http.StatusOK, response)
}

// SPDX-License-Identifier: GPL-3.0-only

package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RootHandler serves the welcome document. It is left out of the generated
// API documentation.
func RootHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, WelcomeResponse{
		Message:       "Welcome to the Phone Number Information API",
		Documentation: "/docs/index.html",
		Example:       "/phone-info?phone_number=+14155552671",
	})
}

// SPDX-License-Identifier: GPL-3.0-only

package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
)

// HTTPErrorHandler shapes every error response, including framework-generated
// ones, into the API's envelope: {"detail": {"error": ..., "detail": ...}}.
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	detail := ErrorDetail{Error: http.StatusText(http.StatusInternalServerError)}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		code = httpErr.Code
		switch msg := httpErr.Message.(type) {
		case ErrorDetail:
			detail = msg
		case string:
			detail = ErrorDetail{Error: msg}
		default:
			detail = ErrorDetail{Error: http.StatusText(code)}
		}
	}

	if code >= http.StatusInternalServerError {
		c.Logger().Errorf("Request failed: %v", err)
	}

	if c.Request().Method == http.MethodHead {
		if err := c.NoContent(code); err != nil {
			c.Logger().Error(err)
		}
		return
	}

	if err := c.JSON(code, ErrorResponse{Detail: detail}); err != nil {
		c.Logger().Error(err)
	}
}

// SPDX-License-Identifier: GPL-3.0-only

package handlers

import (
	"net/http"
	"phoneinfo-server/phoneinfo"

	"github.com/labstack/echo/v4"
)

// PhoneTypesHandler godoc
// @Summary      List phone number type codes
// @Description  Returns the static mapping from numeric phone number type codes to type names, as carried by the type field of the lookup response.
// @Tags         phone-info
// @Accept       json
// @Produce      json
// @Success      200 {object} map[string]string "Type code table"
// @Router       /phone-types [get]
func PhoneTypesHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, phoneinfo.TypeCodes())
}

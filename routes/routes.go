// SPDX-License-Identifier: GPL-3.0-only

package routes

import (
	"phoneinfo-server/commons"
	"phoneinfo-server/handlers"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
)

func RegisterRoutes(e *echo.Echo) {
	commons.Logger.Debug("Registering routes")
	e.GET("/", handlers.RootHandler)
	e.GET("/healthz", handlers.HealthHandler)
	e.GET("/phone-info", handlers.PhoneInfoHandler)
	e.GET("/phone-types", handlers.PhoneTypesHandler)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/docs/*", echoSwagger.WrapHandler)
	commons.Logger.Info("Routes registered successfully")
}

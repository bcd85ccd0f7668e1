// Package server wires HTTP handlers into the echo router for the
// orchestrator via routing helpers.
package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// SetupRoutes configures and returns the router with the single application
// route. Everything else falls through to the router's not-found response.
func SetupRoutes() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = notFoundErrorHandler(e)

	e.Any("/", onlyMethod(http.MethodGet, GreetingHandler))
	return e
}

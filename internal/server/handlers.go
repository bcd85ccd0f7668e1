// Package server exposes the HTTP handlers served by the orchestrator.
package server

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
)

// Greeting is the body written for GET /.
const Greeting = "Hello, FusionAI_Orchestrator!"

// GreetingHandler responds with the plain text greeting.
func GreetingHandler(c echo.Context) error {
	return c.String(http.StatusOK, Greeting)
}

// onlyMethod restricts a handler to a single HTTP method. Requests using any
// other method are treated as unknown routes.
func onlyMethod(method string, next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if c.Request().Method != method {
			return echo.ErrNotFound
		}
		return next(c)
	}
}

// notFoundErrorHandler wraps the framework's default error handler so that a
// method mismatch on a known path is answered like any other missing route.
func notFoundErrorHandler(e *echo.Echo) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		var he *echo.HTTPError
		if errors.As(err, &he) && he.Code == http.StatusMethodNotAllowed {
			c.Response().Header().Del(echo.HeaderAllow)
			err = echo.ErrNotFound
		}
		e.DefaultHTTPErrorHandler(err, c)
	}
}

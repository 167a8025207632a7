package middleware

import (
	"errors"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"mealweek/pkg/errs"
)

// RequestLogger writes one event per request; the level follows the status code.
func RequestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echoMiddleware.RequestLoggerWithConfig(echoMiddleware.RequestLoggerConfig{
		LogStatus:   true,
		LogLatency:  true,
		LogMethod:   true,
		LogURI:      true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v echoMiddleware.RequestLoggerValues) error {
			status := v.Status
			var httpErr *errs.HTTPError
			var echoErr *echo.HTTPError
			if errors.As(v.Error, &httpErr) {
				status = httpErr.Status
			} else if errors.As(v.Error, &echoErr) {
				status = echoErr.Code
			}

			var e *zerolog.Event
			switch {
			case status >= 500:
				e = log.Error().Err(v.Error)
			case status >= 400:
				e = log.Warn().AnErr("error", v.Error)
			default:
				e = log.Info()
			}
			e.Str("request_id", GetRequestID(c)).
				Dur("latency", v.Latency).
				Int("status", status).
				Str("method", v.Method).
				Str("uri", v.URI).
				Msg("request")
			return nil
		},
	})
}

package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"mealweek/pkg/errs"
)

// ErrorHandler renders every error as an errs.HTTPError body.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var he *errs.HTTPError
	var echoErr *echo.HTTPError
	switch {
	case errors.As(err, &he):
	case errors.As(err, &echoErr):
		msg := http.StatusText(echoErr.Code)
		if s, ok := echoErr.Message.(string); ok {
			msg = s
		}
		he = &errs.HTTPError{Code: errs.FromStatus(echoErr.Code), Message: msg, Status: echoErr.Code}
	default:
		he = errs.FromError(err)
	}

	var werr error
	if c.Request().Method == http.MethodHead {
		werr = c.NoContent(he.Status)
	} else {
		werr = c.JSON(he.Status, he)
	}
	if werr != nil {
		c.Logger().Error(werr)
	}
}

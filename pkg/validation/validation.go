// Package validation binds request bodies and checks them against their
// `validate` struct tags.
package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"mealweek/pkg/errs"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// BindAndValidate fills payload from the request and validates it.
// The returned error is an *errs.HTTPError ready to be written to the client.
func BindAndValidate(c echo.Context, payload any) error {
	if err := c.Bind(payload); err != nil {
		return errs.NewBadRequest("invalid json")
	}
	if err := Struct(payload); err != nil {
		return errs.NewBadRequest(err.Error())
	}
	return nil
}

// Struct validates v and wraps failures with errs.ErrValidation.
func Struct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return fmt.Errorf("%w: %v", errs.ErrValidation, err)
	}
	msgs := make([]string, 0, len(ve))
	for _, fe := range ve {
		msgs = append(msgs, fmt.Sprintf("%s failed on %s", fe.Field(), fe.Tag()))
	}
	return fmt.Errorf("%w: %s", errs.ErrValidation, strings.Join(msgs, ", "))
}

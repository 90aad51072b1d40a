package handler

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/zizouhuweidi/trivia/internal/service"
)

// Validator adapts go-playground/validator to echo.Validator.
// Validation failures wrap service.ErrUnprocessable.
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a validator reporting fields by their JSON names
func NewValidator() *Validator {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return &Validator{validate: v}
}

// Validate validates a request struct
func (v *Validator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	fields := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		fields = append(fields, fe.Field())
	}
	return fmt.Errorf("%w: missing or invalid %s", service.ErrUnprocessable, strings.Join(fields, ", "))
}

// bindJSON binds and validates a required JSON body.
// Every malformed body is reported as 400.
func bindJSON(c echo.Context, v any) error {
	if c.Request().ContentLength == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "request body is required")
	}
	if err := c.Bind(v); err != nil {
		if errors.Is(err, echo.ErrUnsupportedMediaType) {
			return echo.NewHTTPError(http.StatusBadRequest, "request body must be JSON").SetInternal(err)
		}
		return err
	}
	return c.Validate(v)
}

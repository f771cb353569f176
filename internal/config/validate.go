package config

import (
	stderrors "errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/lgbarn/tinychess-go/internal/errors"
)

var validate = validator.New()

// Validate checks every field against its constraints. Failures wrap
// errors.ErrInvalidConfig.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !stderrors.As(err, &verrs) {
		return fmt.Errorf("%v: %w", err, errors.ErrInvalidConfig)
	}
	return fmt.Errorf("%s: %w", describe(verrs), errors.ErrInvalidConfig)
}

// describe joins validation failures into one readable line.
func describe(verrs validator.ValidationErrors) string {
	var details strings.Builder
	for _, err := range verrs {
		if details.Len() > 0 {
			details.WriteString("; ")
		}
		field := err.Namespace()
		if i := strings.IndexByte(field, '.'); i >= 0 {
			field = field[i+1:]
		}
		switch err.Tag() {
		case "required":
			fmt.Fprintf(&details, "%s is required", field)
		case "oneof":
			fmt.Fprintf(&details, "%s must be one of [%s]", field, err.Param())
		case "min":
			if err.Kind() == reflect.String {
				fmt.Fprintf(&details, "%s must be at least %s characters", field, err.Param())
			} else {
				fmt.Fprintf(&details, "%s must be at least %s", field, err.Param())
			}
		case "max":
			if err.Kind() == reflect.String {
				fmt.Fprintf(&details, "%s must be at most %s characters", field, err.Param())
			} else {
				fmt.Fprintf(&details, "%s must be at most %s", field, err.Param())
			}
		default:
			fmt.Fprintf(&details, "%s failed %s validation", field, err.Tag())
		}
	}
	return details.String()
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package preferences

import (
	"errors"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(tagName)
	for tag, fn := range map[string]validator.Func{
		"color":  isColor,
		"radius": isRadius,
	} {
		if err := v.RegisterValidation(tag, fn); err != nil {
			panic(err)
		}
	}
	return v
}

// Validate checks option values against the domains declared in the
// `validate` tags of the schema. Unset options are skipped unless complete is
// true, in which case every unset option is reported with [ErrMissingValue].
// The result joins one [FieldError] per failing option, or is nil.
func Validate(p Preferences, complete bool) error {
	var errs []error

	if complete {
		walk(&p, func(o option) {
			if validate.Var(o.value.Interface(), "required") != nil {
				errs = append(errs, &FieldError{Path: o.section + "." + o.name, Err: ErrMissingValue})
			}
		})
	}

	err := validate.Struct(p)
	var fieldErrs validator.ValidationErrors
	switch {
	case err == nil:
	case errors.As(err, &fieldErrs):
		for _, fe := range fieldErrs {
			errs = append(errs, toFieldError(fe))
		}
	default:
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// toFieldError maps a validator failure to a dotted option path such as
// "theme.mode".
func toFieldError(fe validator.FieldError) *FieldError {
	_, path, _ := strings.Cut(fe.Namespace(), ".")
	return &FieldError{
		Path:   path,
		Value:  fe.Value(),
		Err:    ErrInvalidValue,
		Reason: reason(fe),
	}
}

func reason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "oneof":
		return "not a known tag"
	case "min":
		return "must be at least " + fe.Param()
	case "gt":
		return "must be greater than " + fe.Param()
	case "color":
		return "empty color"
	case "radius":
		return "must be a number between 0 and 1"
	default:
		return fe.Tag()
	}
}

// isColor accepts any non-blank CSS color expression.
func isColor(fl validator.FieldLevel) bool {
	return fl.Field().Kind() == reflect.String && strings.TrimSpace(fl.Field().String()) != ""
}

// isRadius accepts a decimal scale between 0 and 1 inclusive.
func isRadius(fl validator.FieldLevel) bool {
	if fl.Field().Kind() != reflect.String {
		return false
	}
	radius, err := strconv.ParseFloat(strings.TrimSpace(fl.Field().String()), 64)
	return err == nil && !math.IsNaN(radius) && radius >= 0 && radius <= 1
}

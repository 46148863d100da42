package dto

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"agriconnect-backend/internal/apperr"
)

var (
	validate   = newValidator()
	priceRegex = regexp.MustCompile(`^[0-9]+(\.[0-9]{1,2})?$`)
)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	// A price is a non-negative amount with at most two decimals. Empty means
	// the product has no price.
	if err := v.RegisterValidation("price", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		return s == "" || priceRegex.MatchString(s)
	}); err != nil {
		panic(fmt.Sprintf("dto: register price rule: %v", err))
	}
	return v
}

// Validate checks a request against its validate tags and reports the first
// offending field as a validation error.
func Validate(req any) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return apperr.Validation("Invalid request body")
	}
	return apperr.Validation(describe(verrs[0]))
}

func describe(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, strings.ReplaceAll(fe.Param(), " ", ", "))
	case "number":
		return fmt.Sprintf("%s must be a whole non-negative number", field)
	case "price":
		return fmt.Sprintf("%s must be a non-negative amount", field)
	case "len":
		return fmt.Sprintf("%s must be %s characters long", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters long", field, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

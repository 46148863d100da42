package dto

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"

	"agriconnect-backend/internal/apperr"
)

// BindError turns a request body decoding failure into a validation error
// that names the offending field without exposing decoder internals.
func BindError(err error) error {
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.As(err, &typeErr):
		if typeErr.Field == "" {
			return apperr.Validation("Request body must be a JSON object")
		}
		return apperr.Validation(fmt.Sprintf("%s must be %s", typeErr.Field, kindName(typeErr.Type)))
	case errors.Is(err, io.EOF):
		return apperr.Validation("Request body is required")
	}

	// encoding/json has no typed error for unknown fields.
	if name, ok := strings.CutPrefix(err.Error(), "json: unknown field "); ok {
		return apperr.Validation(fmt.Sprintf("%s is not allowed", strings.Trim(name, `"`)))
	}
	return apperr.Validation("Request body is not valid JSON")
}

func kindName(t reflect.Type) string {
	if t == nil {
		return "a different type"
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.String:
		return "a string"
	case reflect.Bool:
		return "a boolean"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return "a number"
	case reflect.Slice, reflect.Array:
		return "a list"
	default:
		return "an object"
	}
}

package rest

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Report violations under the wire field name, not the Go field name.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return v
}

// bindStrict decodes the JSON body into payload, rejecting unknown fields.
// Echo's binder cannot do that, so the body is decoded directly.
func bindStrict(c echo.Context, payload interface{}) error {
	dec := json.NewDecoder(c.Request().Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(payload); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}

	return nil
}

// validatePayload runs the schema rules and enumerates every violated field.
// An empty result means the payload is valid.
func validatePayload(payload interface{}) []ErrorDetail {
	err := validate.Struct(payload)
	if err == nil {
		return nil
	}

	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []ErrorDetail{{Detail: err.Error()}}
	}

	details := make([]ErrorDetail, 0, len(errs))
	for _, fe := range errs {
		details = append(details, ErrorDetail{
			Field:  fe.Field(),
			Detail: fmt.Sprintf("%s %s", fe.Field(), ruleMessage(fe)),
		})
	}

	return details
}

func ruleMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "max":
		return "must be at most " + fe.Param() + " characters"
	case "min":
		if fe.Kind() == reflect.String {
			return "must not be empty"
		}
		return "must be at least " + fe.Param()
	default:
		return "is invalid"
	}
}

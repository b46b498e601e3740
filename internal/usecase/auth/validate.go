package auth

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	pkgerrors "ecommerce-auth-service/pkg/errors"
)

// RequestValidator checks structural correctness of login and register
// requests before any business logic runs. It is pure: no side effects,
// no store access.
type RequestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator creates a validator that reports failures under the
// JSON field names of the request types.
func NewRequestValidator() *RequestValidator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &RequestValidator{validate: v}
}

// Validate reports every failing field in declaration order. Rules within a
// single field stop at the first failure, so an empty email is reported as
// missing, not additionally as malformed. An empty result means the request
// is structurally valid.
func (rv *RequestValidator) Validate(req any) []pkgerrors.ValidationError {
	err := rv.validate.Struct(req)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []pkgerrors.ValidationError{*pkgerrors.NewValidationError("request", "is invalid")}
	}

	failures := make([]pkgerrors.ValidationError, 0, len(verrs))
	for _, fe := range verrs {
		failures = append(failures, *pkgerrors.NewValidationError(fe.Field(), fieldMessage(fe)))
	}
	return failures
}

// fieldMessage converts a validator tag into a human-readable message.
func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return "must be at least " + fe.Param() + " characters"
	case "max":
		return "must be at most " + fe.Param() + " characters"
	case "oneof":
		return "must be one of " + strings.Join(strings.Fields(fe.Param()), ", ")
	default:
		return "is invalid"
	}
}

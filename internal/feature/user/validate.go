package user

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"gin-user-rpc/internal/domain"
)

// FieldIssue names one rejected input field.
type FieldIssue struct {
	Field   string
	Message string
}

// ValidationError is returned when input fails shape validation. Nothing
// has been mutated when it is returned.
type ValidationError struct {
	Issues []FieldIssue
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Issues))
	for _, is := range e.Issues {
		parts = append(parts, is.Field+": "+is.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		return strings.ToLower(f.Name)
	})
	return v
}

// ValidateNewUser checks a create input. It returns nil or a *ValidationError.
func ValidateNewUser(nu domain.NewUser) error { return check(nu) }

// ValidatePatch checks only the fields present in p.
func ValidatePatch(p domain.UserPatch) error { return check(p) }

func check(in any) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	out := &ValidationError{Issues: make([]FieldIssue, 0, len(verrs))}
	for _, fe := range verrs {
		out.Issues = append(out.Issues, FieldIssue{Field: fe.Field(), Message: message(fe)})
	}
	return out
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "min":
		return "must not be empty"
	case "email":
		return "must be a valid email address"
	default:
		return fmt.Sprintf("failed %q check", fe.Tag())
	}
}

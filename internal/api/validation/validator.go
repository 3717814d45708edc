package validation

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// Human-readable labels keyed by the json field name
var fieldLabels = map[string]string{
	"name":        "Name",
	"email":       "Email",
	"company":     "Company",
	"projectType": "Project type",
	"budget":      "Budget",
	"message":     "Message",
}

// RegisterValidators registers custom validators and makes reported field
// names match the json wire names the form UI keys on.
func RegisterValidators(v *validator.Validate) {
	v.RegisterValidation("notblank", validateNotBlank)
	v.RegisterValidation("strict_email", validateStrictEmail)
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// validateNotBlank rejects values that are empty after trimming whitespace
func validateNotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

// validateStrictEmail checks the email against the standard pattern and
// additionally rejects consecutive dots and leading/trailing dots in either
// the local or domain part, which the pattern alone lets through.
func validateStrictEmail(fl validator.FieldLevel) bool {
	return IsValidEmail(fl.Field().String())
}

// IsValidEmail reports whether the address passes the strict email rules
func IsValidEmail(email string) bool {
	if !emailRegex.MatchString(email) {
		return false
	}
	if strings.Contains(email, "..") {
		return false
	}
	local, domain, ok := strings.Cut(email, "@")
	if !ok {
		return false
	}
	if strings.HasPrefix(local, ".") || strings.HasSuffix(local, ".") {
		return false
	}
	if strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return false
	}
	return true
}

// FormatValidationErrors maps validator errors into a field -> message map
// suitable for the API's errors payload.
func FormatValidationErrors(err error) map[string]string {
	fieldErrors := make(map[string]string)
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return fieldErrors
	}
	for _, e := range validationErrors {
		// First error per field wins; later tags repeat the same problem
		if _, seen := fieldErrors[e.Field()]; seen {
			continue
		}
		fieldErrors[e.Field()] = fieldMessage(e)
	}
	return fieldErrors
}

func fieldMessage(e validator.FieldError) string {
	label, ok := fieldLabels[e.Field()]
	if !ok {
		label = e.Field()
	}

	switch e.Tag() {
	case "required", "notblank":
		return fmt.Sprintf("%s is required", label)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", label, e.Param())
	case "max":
		return fmt.Sprintf("%s must be no more than %s characters", label, e.Param())
	case "strict_email":
		return "Please enter a valid email address"
	default:
		return fmt.Sprintf("%s is invalid", label)
	}
}

package validation

import (
	"strings"
	"testing"

	"github.com/blackwoodscreative/studio-api/internal/api/dto/v1/contact"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newValidator(t *testing.T) *validator.Validate {
	t.Helper()
	v := validator.New(validator.WithRequiredStructEnabled())
	v.SetTagName("binding")
	RegisterValidators(v)
	return v
}

func validSubmission() contact.ContactRequest {
	return contact.ContactRequest{
		Name:    "John Doe",
		Email:   "john@example.com",
		Message: "Need a 2-minute promo video for launch.",
	}
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{
		"john@example.com",
		"john.doe@example.com",
		"john+tag@sub.example.co",
		"j_d%x-1@example.io",
	}
	for _, email := range valid {
		assert.True(t, IsValidEmail(email), "expected %q to be valid", email)
	}

	invalid := []string{
		"",
		"plainaddress",
		"@example.com",
		"john@",
		"john..doe@example.com",
		"john@example..com",
		".john@example.com",
		"john.@example.com",
		"john@.example.com",
		"john@example.com.",
		"john doe@example.com",
	}
	for _, email := range invalid {
		assert.False(t, IsValidEmail(email), "expected %q to be invalid", email)
	}
}

func TestValidateSubmission(t *testing.T) {
	v := newValidator(t)

	t.Run("valid submission passes", func(t *testing.T) {
		require.NoError(t, v.Struct(validSubmission()))
	})

	t.Run("missing required fields reported per field", func(t *testing.T) {
		err := v.Struct(contact.ContactRequest{})
		require.Error(t, err)

		fieldErrors := FormatValidationErrors(err)
		assert.Contains(t, fieldErrors, "name")
		assert.Contains(t, fieldErrors, "email")
		assert.Contains(t, fieldErrors, "message")
	})

	t.Run("blank name rejected", func(t *testing.T) {
		req := validSubmission()
		req.Name = "   "
		err := v.Struct(req)
		require.Error(t, err)
		assert.Equal(t, "Name is required", FormatValidationErrors(err)["name"])
	})

	t.Run("short message rejected", func(t *testing.T) {
		req := validSubmission()
		req.Message = "too short"
		err := v.Struct(req)
		require.Error(t, err)
		assert.Equal(t, "Message must be at least 10 characters", FormatValidationErrors(err)["message"])
	})

	t.Run("long message mentions the 2000 limit", func(t *testing.T) {
		req := validSubmission()
		req.Message = strings.Repeat("a", 2001)
		err := v.Struct(req)
		require.Error(t, err)
		assert.Contains(t, FormatValidationErrors(err)["message"], "2000")
	})

	t.Run("long company mentions the 100 limit", func(t *testing.T) {
		req := validSubmission()
		req.Company = strings.Repeat("b", 101)
		err := v.Struct(req)
		require.Error(t, err)
		assert.Contains(t, FormatValidationErrors(err)["company"], "100")
	})

	t.Run("empty company allowed", func(t *testing.T) {
		req := validSubmission()
		req.Company = ""
		require.NoError(t, v.Struct(req))
	})

	t.Run("email with consecutive dots rejected", func(t *testing.T) {
		req := validSubmission()
		req.Email = "john..doe@example.com"
		err := v.Struct(req)
		require.Error(t, err)
		assert.Equal(t, "Please enter a valid email address", FormatValidationErrors(err)["email"])
	})
}

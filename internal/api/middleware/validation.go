package middleware

import (
	"errors"
	"net/http"

	"github.com/blackwoodscreative/studio-api/internal/api/constants"
	"github.com/blackwoodscreative/studio-api/internal/api/dto/common"
	"github.com/blackwoodscreative/studio-api/internal/api/dto/v1/contact"
	"github.com/blackwoodscreative/studio-api/internal/api/validation"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// ValidationMiddleware handles request validation
type ValidationMiddleware struct{}

// NewValidationMiddleware creates a new validation middleware and registers
// the custom validators on gin's binding engine so DTO binding tags use them.
func NewValidationMiddleware() *ValidationMiddleware {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		validation.RegisterValidators(v)
	}
	return &ValidationMiddleware{}
}

// ValidateContactRequest parses and validates a contact submission.
// Malformed JSON and validation failures are distinguished: both are 400s,
// but only validation failures carry the per-field errors map.
func (m *ValidationMiddleware) ValidateContactRequest() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req contact.ContactRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			var validationErrors validator.ValidationErrors
			if errors.As(err, &validationErrors) {
				c.JSON(http.StatusBadRequest, common.NewValidationErrorResponse(
					"Please correct the highlighted fields and try again.",
					validation.FormatValidationErrors(validationErrors),
				))
			} else {
				c.JSON(http.StatusBadRequest, common.NewErrorResponse(
					common.ErrCodeBadRequest,
					"Invalid request body",
				))
			}
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyContact, &req)
		c.Next()
	}
}

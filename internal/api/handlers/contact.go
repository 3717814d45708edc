package handlers

import (
	"net/http"

	"github.com/blackwoodscreative/studio-api/internal/api/constants"
	"github.com/blackwoodscreative/studio-api/internal/api/dto/common"
	"github.com/blackwoodscreative/studio-api/internal/api/dto/v1/contact"
	"github.com/blackwoodscreative/studio-api/internal/api/sanitization"
	"github.com/blackwoodscreative/studio-api/internal/service"
	"github.com/blackwoodscreative/studio-api/internal/utils"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	delivery *service.DeliveryService
}

func NewContactHandler(delivery *service.DeliveryService) *ContactHandler {
	return &ContactHandler{
		delivery: delivery,
	}
}

func (h *ContactHandler) Submit(c *gin.Context) {
	// Get contact data from context (set by validation middleware)
	contactData, exists := c.Get(constants.ContextKeyContact)
	if !exists {
		utils.HandleAPIError(c, nil, http.StatusInternalServerError, common.ErrCodeInternalServer, "Contact data not found in context")
		return
	}

	req, ok := contactData.(*contact.ContactRequest)
	if !ok {
		utils.HandleAPIError(c, nil, http.StatusInternalServerError, common.ErrCodeInternalServer, "Invalid contact data format")
		return
	}

	// Sanitize once, right here at the delivery boundary. Nothing upstream or
	// downstream escapes these values again.
	sanitized := &contact.ContactRequest{
		Name:        sanitization.SanitizeString(req.Name),
		Email:       sanitization.SanitizeEmail(req.Email),
		Company:     sanitization.SanitizeString(req.Company),
		ProjectType: sanitization.SanitizeString(req.ProjectType),
		Budget:      sanitization.SanitizeString(req.Budget),
		Message:     sanitization.SanitizeString(req.Message),
	}

	if err := h.delivery.Send(sanitized); err != nil {
		utils.HandleAPIError(c, err, http.StatusInternalServerError, common.ErrCodeInternalServer,
			"There was an issue sending your message. Please try again later.")
		return
	}

	utils.HandleSuccess(c, "Thank you for your message! We'll get back to you within 24 hours.")
}

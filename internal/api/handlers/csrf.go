package handlers

import (
	"net/http"

	"github.com/blackwoodscreative/studio-api/internal/api/constants"
	"github.com/blackwoodscreative/studio-api/internal/api/dto/common"
	"github.com/blackwoodscreative/studio-api/internal/api/dto/v1/contact"
	"github.com/blackwoodscreative/studio-api/internal/service"
	"github.com/blackwoodscreative/studio-api/internal/utils"

	"github.com/gin-gonic/gin"
)

type CSRFHandler struct {
	csrfService  service.CSRFService
	cookieDomain string
	secure       bool
}

func NewCSRFHandler(csrfService service.CSRFService, cookieDomain string, secure bool) *CSRFHandler {
	return &CSRFHandler{
		csrfService:  csrfService,
		cookieDomain: cookieDomain,
		secure:       secure,
	}
}

// Issue generates a fresh token, sets it as the csrf-token cookie and returns
// it in the body for the page script to echo back in X-CSRF-Token.
func (h *CSRFHandler) Issue(c *gin.Context) {
	token, err := h.csrfService.GenerateToken()
	if err != nil {
		utils.HandleAPIError(c, err, http.StatusInternalServerError, common.ErrCodeInternalServer, "Failed to issue CSRF token")
		return
	}

	c.SetSameSite(http.SameSiteStrictMode)
	// Not HttpOnly: the double-submit scheme needs the page script to read it
	c.SetCookie(
		constants.CookieCSRF,
		token,
		constants.CookieDurationCSRF,
		constants.CookiePathRoot,
		h.cookieDomain,
		h.secure,
		false,
	)

	c.JSON(http.StatusOK, contact.CSRFResponse{Token: token})
}

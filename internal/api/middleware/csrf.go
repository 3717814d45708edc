package middleware

import (
	"net/http"

	"github.com/blackwoodscreative/studio-api/internal/api/constants"
	"github.com/blackwoodscreative/studio-api/internal/api/dto/common"
	"github.com/blackwoodscreative/studio-api/internal/logging"
	"github.com/blackwoodscreative/studio-api/internal/service"
	"github.com/blackwoodscreative/studio-api/internal/utils"

	"github.com/gin-gonic/gin"
)

// CSRFMiddleware checks the cookie/header token pair for unsafe methods.
// A failed check is terminal for the request and leaves an audit entry.
func CSRFMiddleware(csrfService service.CSRFService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodGet || c.Request.Method == http.MethodHead || c.Request.Method == http.MethodOptions {
			c.Next()
			return
		}

		csrfCookie, err := c.Cookie(constants.CookieCSRF)
		if err != nil {
			csrfCookie = ""
		}
		csrfHeader := c.GetHeader(constants.HeaderCSRF)

		if !csrfService.ValidateToken(csrfCookie, csrfHeader) {
			logger := logging.GetLogger()
			logger.Security(
				"type=csrf_failure ip=%s user_agent=%q path=%s cookie_present=%t header_present=%t",
				utils.GetRealIP(c),
				c.Request.UserAgent(),
				c.Request.URL.Path,
				csrfCookie != "",
				csrfHeader != "",
			)

			c.JSON(http.StatusForbidden, common.NewErrorResponse(common.ErrCodeForbidden, "CSRF token invalid or missing"))
			c.Abort()
			return
		}

		c.Next()
	}
}

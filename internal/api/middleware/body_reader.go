package middleware

import (
	"bytes"
	"io"
	"net/http"

	"github.com/blackwoodscreative/studio-api/internal/api/dto/common"

	"github.com/gin-gonic/gin"
)

// BodyReaderOption defines options for body reader middleware
type BodyReaderOption struct {
	MaxBodySize int64
}

// defaultMaxBodySize is generous next to the 2000-char message cap but keeps
// arbitrary uploads off the JSON decoder
const defaultMaxBodySize = 64 * 1024

// PreserveRequestBody reads the request body once, enforces the size cap, and
// restores it so binding downstream can read it again.
func PreserveRequestBody() gin.HandlerFunc {
	option := BodyReaderOption{
		MaxBodySize: defaultMaxBodySize,
	}

	return func(c *gin.Context) {
		if c.Request.Body == nil || c.Request.Method != http.MethodPost {
			c.Next()
			return
		}

		bodyBytes, err := io.ReadAll(io.LimitReader(c.Request.Body, option.MaxBodySize+1))
		if err != nil {
			c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.ErrCodeBadRequest, "Error reading request body"))
			c.Abort()
			return
		}

		if int64(len(bodyBytes)) > option.MaxBodySize {
			c.JSON(http.StatusRequestEntityTooLarge, common.NewErrorResponse(common.ErrCodePayloadTooLarge, "Request body too large"))
			c.Abort()
			return
		}

		// Restore the body for subsequent middleware
		c.Request.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))

		c.Next()
	}
}

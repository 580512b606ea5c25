package webhook

import (
	"github.com/gin-gonic/gin"

	pkgLog "task-metadata-sync/pkg/log"
	pkgResponse "task-metadata-sync/pkg/response"
)

// Guard rejects requests that fail the IP, token or rate checks. source
// names the bucket the rate limit is counted against.
func (v *SecurityValidator) Guard(source string, l pkgLog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		if err := v.ValidateIPAddress(c.Request); err != nil {
			l.Warnf(ctx, "webhook: %s rejected: %v", source, err)
			pkgResponse.Forbidden(c)
			c.Abort()
			return
		}

		token := c.GetHeader(TokenHeader)
		if token == "" {
			token = c.Query(TokenQuery)
		}
		if err := v.ValidateToken(token); err != nil {
			l.Warnf(ctx, "webhook: %s rejected: %v", source, err)
			pkgResponse.Unauthorized(c)
			c.Abort()
			return
		}

		if err := v.CheckRateLimit(source); err != nil {
			l.Warnf(ctx, "webhook: %v", err)
			pkgResponse.TooManyRequests(c)
			c.Abort()
			return
		}

		c.Next()
	}
}

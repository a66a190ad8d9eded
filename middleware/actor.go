// middleware/actor.go

package middleware

import (
	"github.com/gin-gonic/gin"
)

// Actor lifts the authenticated user's id from the X-Actor-ID header onto
// the request context. Authentication itself is handled upstream; the
// services only need the identity for the audit trail.
func Actor() gin.HandlerFunc {
	return func(c *gin.Context) {
		if actorID := c.GetHeader("X-Actor-ID"); actorID != "" {
			c.Set("actorID", actorID)
		}
		c.Next()
	}
}

// util/http_util.go
package util

import (
	logger "github.com/andreyques41/lyfter-store/logging"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RespondWithError(c *gin.Context, code int, message string, err error) {
	logger.Error(message,
		zap.Error(err),
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method))
	c.JSON(code, gin.H{"error": message})
}

// GetActorFromContext returns the acting user's id placed on the context by
// the actor middleware. Empty when the request carried no identity.
func GetActorFromContext(c *gin.Context) string {
	actor, exists := c.Get("actorID")
	if !exists {
		return ""
	}
	return actor.(string)
}

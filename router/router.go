// api/router/router.go

package router

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/andreyques41/lyfter-store/controller"
	"github.com/andreyques41/lyfter-store/middleware"
)

func SetupRouter(
	controllers *controller.Controllers,
	limiter middleware.Limiter,
	rateLimitRequests int,
	rateLimitDuration time.Duration,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Logger())
	router.Use(middleware.RateLimiter(limiter, rateLimitRequests, rateLimitDuration))
	router.Use(middleware.Actor())

	api := router.Group("/api/v1")

	controllers.Product.RegisterRoutes(api)
	controllers.User.RegisterRoutes(api)
	controllers.Cart.RegisterRoutes(api)
	controllers.Order.RegisterRoutes(api)

	return router
}

package routes

import (
	"time"

	"github.com/atropass/ai-caption-saas/handlers/captions"
	"github.com/atropass/ai-caption-saas/handlers/health"
	"github.com/atropass/ai-caption-saas/handlers/webhooks"
	"github.com/atropass/ai-caption-saas/licenses"
	"github.com/atropass/ai-caption-saas/middleware"
	"github.com/atropass/ai-caption-saas/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupRouter assemble le routeur avec les handlers injectés.
func SetupRouter(
	healthHandler *health.Handler,
	captionsHandler *captions.Handler,
	webhooksHandler *webhooks.Handler,
	licenseService *licenses.Service,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.LoggerWithWriter(utils.LogWriter()))
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "X-License-Key"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	HealthRoutes(r, healthHandler)
	CaptionsRoutes(r, captionsHandler, licenseService)
	WebhooksRoutes(r, webhooksHandler)

	return r
}

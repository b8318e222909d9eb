package routes

import (
	"github.com/atropass/ai-caption-saas/handlers/health"

	"github.com/gin-gonic/gin"
)

func HealthRoutes(r *gin.Engine, h *health.Handler) {
	r.GET("/", h.HandleRoot)
}

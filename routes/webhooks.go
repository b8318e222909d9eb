package routes

import (
	"github.com/atropass/ai-caption-saas/handlers/webhooks"

	"github.com/gin-gonic/gin"
)

func WebhooksRoutes(r *gin.Engine, h *webhooks.Handler) {
	r.POST("/webhook", h.HandleGumroad)
}

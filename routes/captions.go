package routes

import (
	"github.com/atropass/ai-caption-saas/handlers/captions"
	"github.com/atropass/ai-caption-saas/licenses"
	"github.com/atropass/ai-caption-saas/middleware"

	"github.com/gin-gonic/gin"
)

func CaptionsRoutes(r *gin.Engine, h *captions.Handler, licenseService *licenses.Service) {
	r.POST("/generate", middleware.LicenseAuth(licenseService), h.Generate)
}

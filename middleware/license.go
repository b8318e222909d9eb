package middleware

import (
	"errors"
	"net/http"
	"time"

	"github.com/atropass/ai-caption-saas/licenses"
	"github.com/atropass/ai-caption-saas/utils"

	"github.com/gin-gonic/gin"
)

// LicenseKeyHeader est l'en-tête portant la clé de licence.
const LicenseKeyHeader = "X-License-Key"

// LicenseAuth vérifie la licence avant toute génération. Clé absente,
// inconnue ou expirée donnent la même réponse 403: on ne révèle pas si une
// clé a existé.
func LicenseAuth(service *licenses.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		licenseKey := c.GetHeader(LicenseKeyHeader)

		lic, err := service.Validate(c.Request.Context(), licenseKey, time.Now().UTC())
		if err != nil {
			if errors.Is(err, licenses.ErrAccessDenied) {
				c.JSON(http.StatusForbidden, gin.H{"error": "License expired or not found"})
				c.Abort()
				return
			}
			utils.LogError(err, "Error validating license")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error validating license"})
			c.Abort()
			return
		}

		c.Set("license_key", lic.LicenseKey)
		c.Next()
	}
}

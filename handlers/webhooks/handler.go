package webhooks

import (
	"errors"
	"net/http"
	"time"

	"github.com/atropass/ai-caption-saas/licenses"
	"github.com/atropass/ai-caption-saas/utils"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	licenses *licenses.Service
}

func New(licenseService *licenses.Service) *Handler {
	return &Handler{licenses: licenseService}
}

// HandleGumroad ingère les webhooks Gumroad (sale, subscription_cancelled)
// @Summary Gumroad webhook endpoint
// @Description Ingest Gumroad lifecycle events (form-urlencoded). Sales create or renew a license, cancellations expire it immediately, other events are ignored.
// @Tags webhooks
// @Accept x-www-form-urlencoded
// @Produce json
// @Param event_name formData string true "Gumroad event name"
// @Param email formData string true "Buyer email"
// @Param license_key formData string true "License key"
// @Param next_charge_date formData string false "Next charge date (ISO-8601, Z suffix)"
// @Success 200 {object} map[string]string "status: ok, cancelled or ignored"
// @Failure 400 {object} map[string]string "error: Missing fields in Gumroad payload"
// @Router /webhook [post]
func (h *Handler) HandleGumroad(c *gin.Context) {
	event := licenses.Event{
		Name:           c.PostForm("event_name"),
		Email:          c.PostForm("email"),
		LicenseKey:     c.PostForm("license_key"),
		NextChargeDate: c.PostForm("next_charge_date"),
	}

	outcome, err := h.licenses.ApplyEvent(c.Request.Context(), event, time.Now().UTC())
	if err != nil {
		if errors.Is(err, licenses.ErrMalformedEvent) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing fields in Gumroad payload"})
			return
		}
		utils.LogError(err, "Error applying Gumroad event")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if outcome.ActiveUntil != nil {
		c.JSON(http.StatusOK, gin.H{
			"status":       outcome.Status,
			"active_until": outcome.ActiveUntil.Format(time.RFC3339),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": outcome.Status})
}

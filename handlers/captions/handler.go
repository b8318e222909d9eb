package captions

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/atropass/ai-caption-saas/models"
	"github.com/atropass/ai-caption-saas/provider"
	"github.com/atropass/ai-caption-saas/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Handler struct {
	db       *gorm.DB
	provider provider.CaptionProvider
}

func New(db *gorm.DB, captionProvider provider.CaptionProvider) *Handler {
	return &Handler{
		db:       db,
		provider: captionProvider,
	}
}

// Generate génère une caption via le provider et la journalise
// @Summary Generate a social media caption
// @Description Generate a caption for the given topic, tone and channel. Requires a valid license key.
// @Tags captions
// @Accept json
// @Produce json
// @Param X-License-Key header string true "License key"
// @Param request body models.GenerateRequest true "Generation parameters"
// @Success 200 {object} map[string]string "caption: generated text"
// @Failure 400 {object} map[string]string "error: Invalid input"
// @Failure 403 {object} map[string]string "error: License expired or not found"
// @Failure 500 {object} map[string]string "error: Provider error detail"
// @Router /generate [post]
func (h *Handler) Generate(c *gin.Context) {
	var req models.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid input: " + err.Error(),
		})
		return
	}

	// Les champs sont concaténés tels quels dans le prompt, sans
	// échappement: le contenu du prompt fait partie du contrat produit.
	prompt := fmt.Sprintf(
		"Generate a social media caption for %s on the topic \"%s\" in a %s tone. Include relevant hashtags.",
		req.Channel, req.Topic, req.Tone,
	)

	text, err := h.provider.Complete(c.Request.Context(), prompt)
	if err != nil {
		utils.LogError(err, "Error calling the caption provider")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	text = strings.TrimSpace(text)

	record := models.CaptionRecord{
		Topic:   req.Topic,
		Tone:    req.Tone,
		Channel: req.Channel,
		Caption: text,
	}
	if err := h.db.WithContext(c.Request.Context()).Create(&record).Error; err != nil {
		utils.LogError(err, "Error persisting caption record")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"caption": text})
}

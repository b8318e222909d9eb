package health

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct{}

func New() *Handler {
	return &Handler{}
}

// HandleRoot répond au healthcheck de la racine
// @Summary Service healthcheck
// @Description Returns a static message when the service is running
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string "message: Service is up!"
// @Router / [get]
func (h *Handler) HandleRoot(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Service is up!",
	})
}

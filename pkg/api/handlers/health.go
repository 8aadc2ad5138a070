package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/blueelliott/singular-controls/pkg/api/types"
	"github.com/blueelliott/singular-controls/pkg/config"
)

// Version is the reported application version.
const Version = "2.0.0"

// HealthHandler handles health check requests
type HealthHandler struct {
	cfg *config.Manager
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(cfg *config.Manager) *HealthHandler {
	return &HealthHandler{cfg: cfg}
}

// Health handles GET /health
// @Summary      Health check
// @Tags         health
// @Produce      json
// @Success      200  {object}  types.HealthResponse
// @Router       /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, types.HealthResponse{
		Status:  "ok",
		Version: Version,
		Port:    h.cfg.Get().Port,
	})
}

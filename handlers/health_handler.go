package handlers

import (
	"net/http"

	"github.com/Zharokiecoder/GITEX2/services"
	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	healthService *services.HealthService
}

func NewHealthHandler(healthService *services.HealthService) *HealthHandler {
	return &HealthHandler{
		healthService: healthService,
	}
}

// Health handles GET /api/health. It always answers 200; storage trouble is
// reported through the status and component fields so the dashboard can show
// a degraded state.
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, h.healthService.CheckHealth(c.Request.Context()))
}

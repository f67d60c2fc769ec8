package handlers

import (
	"net/http"

	"github.com/Zharokiecoder/GITEX2/services"
	"github.com/gin-gonic/gin"
)

// AdminHandler serves the dashboard read endpoints.
type AdminHandler struct {
	queries *services.AdminQueryService
}

func NewAdminHandler(queries *services.AdminQueryService) *AdminHandler {
	return &AdminHandler{queries: queries}
}

// Stats handles GET /api/admin/stats.
func (h *AdminHandler) Stats(c *gin.Context) {
	c.JSON(http.StatusOK, h.queries.GetStats(c.Request.Context()))
}

// ListRegistrations handles GET /api/admin/registrations?search=<term>.
func (h *AdminHandler) ListRegistrations(c *gin.Context) {
	term := c.Query("search")
	c.JSON(http.StatusOK, h.queries.ListRegistrations(c.Request.Context(), term))
}

// ListFeedbacks handles GET /api/admin/feedbacks.
func (h *AdminHandler) ListFeedbacks(c *gin.Context) {
	c.JSON(http.StatusOK, h.queries.ListFeedbacks(c.Request.Context()))
}

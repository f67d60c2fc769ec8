package router

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/Zharokiecoder/GITEX2/config"
	apperrors "github.com/Zharokiecoder/GITEX2/errors"
	"github.com/Zharokiecoder/GITEX2/handlers"
	"github.com/Zharokiecoder/GITEX2/middleware"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Dependencies struct holds all dependencies required for setting up routes.
type Dependencies struct {
	Config            *config.Config
	SubmissionHandler *handlers.SubmissionHandler
	AdminHandler      *handlers.AdminHandler
	AuthHandler       *handlers.AuthHandler
	HealthHandler     *handlers.HealthHandler
}

// SetupRouter configures and returns the main Gin engine with all routes defined.
func SetupRouter(deps Dependencies) *gin.Engine {
	if deps.Config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global Middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.CORSMiddleware(&deps.Config.Server))

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	{
		api.POST("/register", deps.SubmissionHandler.Register)
		api.POST("/feedback", deps.SubmissionHandler.Feedback)
		api.GET("/health", deps.HealthHandler.Health)

		admin := api.Group("/admin")
		{
			admin.POST("/login", deps.AuthHandler.Login)
			admin.GET("/stats", deps.AdminHandler.Stats)
			admin.GET("/registrations", deps.AdminHandler.ListRegistrations)
			admin.GET("/feedbacks", deps.AdminHandler.ListFeedbacks)
		}
	}

	// Unmatched /api/* paths get a structured 404; everything else falls
	// back to the frontend entry document.
	staticDir := deps.Config.Server.StaticDir
	r.NoRoute(func(c *gin.Context) {
		path := c.Request.URL.Path
		if strings.HasPrefix(path, "/api/") || path == "/api" {
			_ = c.Error(apperrors.NotFound(path))
			return
		}
		serveFrontend(c, staticDir, path)
	})

	return r
}

// serveFrontend serves an existing static asset, or the entry document for
// any other path so client-side routing keeps working.
func serveFrontend(c *gin.Context, staticDir, path string) {
	requested := filepath.Join(staticDir, filepath.Clean("/"+path))
	if info, err := os.Stat(requested); err == nil && !info.IsDir() {
		c.File(requested)
		return
	}

	index := filepath.Join(staticDir, "index.html")
	if _, err := os.Stat(index); err != nil {
		c.Status(http.StatusNotFound)
		return
	}
	c.File(index)
}

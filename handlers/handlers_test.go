package handlers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/Zharokiecoder/GITEX2/config"
	"github.com/Zharokiecoder/GITEX2/logger"
	"github.com/Zharokiecoder/GITEX2/middleware"
	"github.com/Zharokiecoder/GITEX2/services"
	filestore "github.com/Zharokiecoder/GITEX2/store/file"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func init() {
	logger.IsTest = true
	gin.SetMode(gin.TestMode)
}

// buildTestRouter wires the full handler stack against a fresh file store.
func buildTestRouter(t *testing.T) *gin.Engine {
	t.Helper()

	s, err := filestore.Open(t.TempDir())
	require.NoError(t, err)

	submissionService := services.NewSubmissionService(s)
	adminQueryService := services.NewAdminQueryService(s)
	healthService := services.NewHealthService(s, "test")

	sh := NewSubmissionHandler(submissionService)
	ah := NewAdminHandler(adminQueryService)
	hh := NewHealthHandler(healthService)
	auth := NewAuthHandler(config.AdminConfig{
		Username:    "admin",
		Password:    "gitex2024",
		TokenSecret: "test-secret",
	})

	r := gin.New()
	r.Use(middleware.ErrorHandler())
	r.POST("/api/register", sh.Register)
	r.POST("/api/feedback", sh.Feedback)
	r.GET("/api/health", hh.Health)
	r.POST("/api/admin/login", auth.Login)
	r.GET("/api/admin/stats", ah.Stats)
	r.GET("/api/admin/registrations", ah.ListRegistrations)
	r.GET("/api/admin/feedbacks", ah.ListFeedbacks)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func validRegistrationBody() map[string]any {
	return map[string]any{
		"firstName": "Ada",
		"lastName":  "Lovelace",
		"email":     "ada@example.com",
		"phone":     "+971501234567",
		"location":  "Dubai",
		"gender":    "female",
		"channel":   "linkedin",
		"interests": []string{"ai", "cloud"},
		"consent":   true,
	}
}

package handlers

import (
	"net/http"

	apperrors "github.com/Zharokiecoder/GITEX2/errors"
	"github.com/Zharokiecoder/GITEX2/services"
	"github.com/Zharokiecoder/GITEX2/types"
	"github.com/gin-gonic/gin"
)

// SubmissionHandler handles registration and feedback submission endpoints.
type SubmissionHandler struct {
	submissions *services.SubmissionService
}

// NewSubmissionHandler creates a new SubmissionHandler.
func NewSubmissionHandler(submissions *services.SubmissionService) *SubmissionHandler {
	return &SubmissionHandler{submissions: submissions}
}

// bindJSONOrError binds JSON request body and sets validation error if binding fails.
// Returns true if binding succeeded, false if error was set (caller should return).
func bindJSONOrError(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		_ = c.Error(apperrors.ValidationFailed("invalid request payload", err.Error()))
		return false
	}
	return true
}

// Register handles POST /api/register.
func (h *SubmissionHandler) Register(c *gin.Context) {
	var req types.RegistrationCreate
	if !bindJSONOrError(c, &req) {
		return
	}

	id, err := h.submissions.SubmitRegistration(c.Request.Context(), &req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, types.SubmissionResponse{Success: true, ID: id})
}

// Feedback handles POST /api/feedback. The response deliberately echoes no
// identifying payload.
func (h *SubmissionHandler) Feedback(c *gin.Context) {
	var req types.FeedbackCreate
	if !bindJSONOrError(c, &req) {
		return
	}

	if err := h.submissions.SubmitFeedback(c.Request.Context(), &req); err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, types.SubmissionResponse{Success: true})
}

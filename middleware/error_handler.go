package middleware

import (
	"net/http"

	"github.com/Zharokiecoder/GITEX2/errors"
	"github.com/Zharokiecoder/GITEX2/logger"
	"github.com/gin-gonic/gin"
)

// ErrorHandler converts errors attached to the gin context into the JSON
// failure envelope. Every error body carries success:false plus a message;
// internals never leak to the caller.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		log := logger.GetLogger()

		requestID, _ := c.Get(RequestIDKey)
		logFields := []interface{}{
			"path", c.Request.URL.Path,
			"method", c.Request.Method,
			"request_id", requestID,
			"error", err,
		}

		if appError, ok := err.(*errors.AppError); ok {
			statusCode := appError.GetHTTPStatus()

			if statusCode >= http.StatusInternalServerError {
				log.Errorw("Request failed", logFields...)
			} else {
				log.Warnw("Request rejected", logFields...)
			}

			response := gin.H{
				"success": false,
				"type":    string(appError.Type),
				"message": appError.Message,
			}

			// Only validation and not-found details are safe to echo
			if appError.Detail != "" && (appError.Type == errors.ValidationError ||
				appError.Type == errors.NotFoundError) {
				response["details"] = appError.Detail
			}

			c.JSON(statusCode, response)
			return
		}

		// Gin binding errors come through as public errors
		if c.Errors.Last().Type == gin.ErrorTypeBind {
			log.Warnw("Request binding failed", logFields...)

			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"type":    string(errors.ValidationError),
				"message": "Failed to bind request",
			})
			return
		}

		log.Errorw("Unexpected server error", logFields...)

		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"type":    string(errors.ServerError),
			"message": "Internal Server Error",
		})
	}
}

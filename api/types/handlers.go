package types

import (
	"net/http"

	"github.com/gin-gonic/gin"
	apperrors "github.com/killallgit/podcast-search/pkg/errors"
	"github.com/killallgit/podcast-search/pkg/logger"
)

// SendError writes err as an ErrorResponse. AppErrors keep their code and
// status; anything else becomes a 500 without leaking the cause.
func SendError(c *gin.Context, err error) {
	appErr, ok := apperrors.As(err)
	if !ok {
		logger.WithContext(c.Request.Context()).Error().Err(err).Msg("unhandled error")
		SendInternalError(c, "Internal server error")
		return
	}

	status := appErr.GetHTTPCode()
	if status >= http.StatusInternalServerError {
		logger.WithContext(c.Request.Context()).Warn().Err(err).Int("status", status).Msg("request failed")
	}

	c.JSON(status, ErrorResponse{
		Status:  StatusError,
		Message: appErr.Message,
		Error:   string(appErr.Code),
		Details: appErr.Details,
	})
}

// BindQueryOrError binds the query string into target
// Returns false and sends error response if binding fails
func BindQueryOrError(c *gin.Context, target interface{}) bool {
	if err := c.ShouldBindQuery(target); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Status:  StatusError,
			Message: "Invalid query parameters",
			Error:   string(apperrors.ErrCodeInvalidInput),
			Details: err.Error(),
		})
		return false
	}
	return true
}

// SendBadRequest sends a standardized bad request response
func SendBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Status: StatusError, Message: message})
}

// SendNotFound sends a standardized not found response
func SendNotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, ErrorResponse{Status: StatusError, Message: message})
}

// SendInternalError sends a standardized internal server error response
func SendInternalError(c *gin.Context, message string) {
	c.JSON(http.StatusInternalServerError, ErrorResponse{Status: StatusError, Message: message})
}

package handlers

import (
	"errors"
	"net/http"

	"urbannest-properties/internal/apperrors"
	"urbannest-properties/internal/importer"
	"urbannest-properties/pkg/logger"

	"github.com/gin-gonic/gin"
)

// respondError maps service errors to their HTTP representation. Batch
// validation failures carry the offending row ids; anything unrecognized is a
// plain 500.
func respondError(c *gin.Context, err error) {
	var validationErr *importer.ValidationError
	if errors.As(err, &validationErr) {
		c.JSON(http.StatusBadRequest, gin.H{
			"message":     "CSV contains invalid rows",
			"invalidRows": validationErr.InvalidRows,
		})
		return
	}

	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPStatus >= http.StatusInternalServerError {
			logger.GlobalLogger.Errorf("%s: %v", appErr.Code, err)
		}
		// The evaluation endpoint keeps the success/message body shape the
		// frontend already consumes.
		if appErr.Code == apperrors.ErrCodeEvaluationFailed {
			c.JSON(appErr.HTTPStatus, gin.H{"success": false, "message": appErr.UserMessage})
			return
		}
		c.JSON(appErr.HTTPStatus, gin.H{"error": appErr.UserMessage, "code": appErr.Code})
		return
	}

	logger.GlobalLogger.Errorf("unhandled error: %v", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
}

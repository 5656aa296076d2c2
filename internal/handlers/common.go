package handlers

import (
	"context"
	"net/http"

	"github.com/cyphera/cyphera-fees/internal/constants"
	"github.com/cyphera/cyphera-fees/internal/logger"
	"github.com/cyphera/cyphera-fees/internal/middleware"
	"github.com/cyphera/cyphera-fees/internal/schedule"
	"github.com/cyphera/cyphera-fees/internal/types/api/responses"
	"github.com/cyphera/cyphera-fees/pkg/fees"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// sendError logs the error with the request's correlation ID and sends a JSON
// error response
func sendError(c *gin.Context, statusCode int, message string, err error) {
	correlationID := middleware.GetCorrelationID(c)

	fields := []zap.Field{
		zap.Error(err),
		zap.Int("status", statusCode),
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method),
		zap.String("correlation_id", correlationID),
	}
	if statusCode >= http.StatusInternalServerError {
		logger.Error(message, fields...)
	} else {
		logger.Info(message, fields...)
	}

	c.JSON(statusCode, responses.ErrorResponse{
		Error:         message,
		CorrelationID: correlationID,
	})
}

// sendFeeError reports a rejected fee calculation, naming the offending field
func sendFeeError(c *gin.Context, feeErr *fees.Error) {
	correlationID := middleware.GetCorrelationID(c)

	logger.Info("Fee calculation rejected",
		zap.String("kind", string(feeErr.Kind)),
		zap.String("field", feeErr.Field),
		zap.String("path", c.Request.URL.Path),
		zap.String("correlation_id", correlationID),
	)

	c.JSON(http.StatusBadRequest, responses.ErrorResponse{
		Error:         feeErr.Error(),
		Kind:          string(feeErr.Kind),
		Field:         feeErr.Field,
		CorrelationID: correlationID,
	})
}

// handleServiceError maps fee service errors to HTTP status codes
func handleServiceError(c *gin.Context, err error) {
	var feeErr *fees.Error
	switch {
	case errors.As(err, &feeErr):
		sendFeeError(c, feeErr)
	case errors.Is(err, schedule.ErrUnknownNetwork):
		sendError(c, http.StatusNotFound, "Network not found", err)
	case errors.Is(err, context.DeadlineExceeded):
		sendError(c, http.StatusGatewayTimeout, "Request timed out", err)
	default:
		sendError(c, http.StatusInternalServerError, "Internal server error", err)
	}
}

// sendSuccess sends a success response
func sendSuccess(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// sendList sends an unpaginated list response
func sendList(c *gin.Context, items interface{}) {
	c.JSON(http.StatusOK, responses.ListResponse{
		Object: constants.ObjectList,
		Data:   items,
	})
}

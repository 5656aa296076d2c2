package handlers

import (
	"net/http"

	"github.com/cyphera/cyphera-fees/internal/types/api/responses"
	"github.com/gin-gonic/gin"
)

type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// Health godoc
// @Summary      Health check
// @Description  Checks if the server is running
// @Tags         health
// @Produce      json
// @Success      200  {object}  responses.HealthResponse
// @Router       /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	sendSuccess(c, http.StatusOK, responses.HealthResponse{Status: "ok"})
}

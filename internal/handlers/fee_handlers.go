package handlers

import (
	"net/http"

	"github.com/cyphera/cyphera-fees/internal/constants"
	"github.com/cyphera/cyphera-fees/internal/interfaces"
	"github.com/cyphera/cyphera-fees/internal/middleware"
	"github.com/cyphera/cyphera-fees/internal/schedule"
	"github.com/cyphera/cyphera-fees/internal/types/api/params"
	"github.com/cyphera/cyphera-fees/internal/types/api/requests"
	"github.com/cyphera/cyphera-fees/internal/types/api/responses"
	"github.com/gin-gonic/gin"
)

// FeeHandler serves fee estimates and schedules
type FeeHandler struct {
	feeService interfaces.FeeService
}

// NewFeeHandler creates a new fee handler
func NewFeeHandler(feeService interfaces.FeeService) *FeeHandler {
	return &FeeHandler{feeService: feeService}
}

// ListNetworks godoc
// @Summary      List networks
// @Description  Lists every network with a fee schedule
// @Tags         fees
// @Produce      json
// @Success      200  {object}  responses.ListResponse
// @Router       /networks [get]
func (h *FeeHandler) ListNetworks(c *gin.Context) {
	networks, err := h.feeService.ListNetworks(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}

	data := make([]responses.NetworkResponse, 0, len(networks))
	for _, network := range networks {
		data = append(data, toNetworkResponse(network))
	}
	sendList(c, data)
}

// GetSchedule godoc
// @Summary      Get fee schedule
// @Description  Returns the current fee schedule snapshot of a network
// @Tags         fees
// @Produce      json
// @Param        network  path      string  true  "Network name"
// @Success      200      {object}  responses.FeeScheduleResponse
// @Failure      404      {object}  responses.ErrorResponse
// @Router       /networks/{network}/fees/schedule [get]
func (h *FeeHandler) GetSchedule(c *gin.Context) {
	snapshot, err := h.feeService.GetSchedule(c.Request.Context(), c.Param("network"))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	sendSuccess(c, http.StatusOK, responses.FeeScheduleResponse{
		Object:           constants.ObjectFeeSchedule,
		Network:          snapshot.Network.Name,
		BaseCurrencyCode: snapshot.Network.BaseCurrencyCode,
		Decimals:         snapshot.Network.Decimals,
		UpdatedAt:        snapshot.UpdatedAt.Unix(),
		Fees:             snapshot.Fees,
	})
}

// EstimateFee godoc
// @Summary      Estimate fee
// @Description  Selects the gas limit and gas price for a spend
// @Tags         fees
// @Accept       json
// @Produce      json
// @Param        network  path      string                       true  "Network name"
// @Param        request  body      requests.EstimateFeeRequest  true  "Spend to estimate"
// @Success      200      {object}  responses.FeeEstimateResponse
// @Failure      400      {object}  responses.ErrorResponse
// @Failure      404      {object}  responses.ErrorResponse
// @Router       /networks/{network}/fees/estimate [post]
func (h *FeeHandler) EstimateFee(c *gin.Context) {
	var req requests.EstimateFeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if err := req.Validate(); err != nil {
		handleServiceError(c, err)
		return
	}

	quote, err := h.feeService.EstimateFee(c.Request.Context(), params.EstimateFeeParams{
		Network:       c.Param("network"),
		Request:       req.ToSpendRequest(),
		CorrelationID: middleware.GetCorrelationID(c),
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}

	sendSuccess(c, http.StatusOK, responses.FeeEstimateResponse{
		Object:   constants.ObjectFeeEstimate,
		FeeQuote: *quote,
	})
}

func toNetworkResponse(network schedule.Network) responses.NetworkResponse {
	return responses.NetworkResponse{
		Object:           constants.ObjectNetwork,
		Name:             network.Name,
		BaseCurrencyCode: network.BaseCurrencyCode,
		Decimals:         network.Decimals,
	}
}

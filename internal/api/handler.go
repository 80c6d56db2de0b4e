package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/mflive/internal/domain/dto"
	"github.com/guttosm/mflive/internal/middleware"
	"github.com/guttosm/mflive/internal/service"
)

// Handler serves the mutual fund estimation endpoints.
//
// Responsibilities:
//   - Validate path parameters and request bodies
//   - Delegate to service.FundService
//   - Translate domain results into response DTOs and errors into status codes
type Handler struct {
	svc service.FundService
}

// NewHandler constructs a Handler backed by svc.
func NewHandler(svc service.FundService) *Handler {
	return &Handler{svc: svc}
}

// GetFund godoc
// @Summary      Live day change of one fund
// @Description  Estimates the live day change percentage of a mutual fund from the corpus weighted day change of its equity holdings
// @Tags         mutual-funds
// @Produce      json
// @Param        fund  path      string  true  "Fund identifier"  example(quant-small-cap-fund-direct-plan-growth)
// @Success      200   {object}  dto.FundResponse   "Estimate"
// @Failure      502   {object}  dto.ErrorResponse  "Holdings upstream unavailable"
// @Failure      500   {object}  dto.ErrorResponse  "Internal Error"
// @Router       /mutual-funds/{fund} [get]
func (h *Handler) GetFund(c *gin.Context) {
	fund := strings.TrimSpace(c.Param("fund"))
	if fund == "" {
		middleware.AbortWithError(c, http.StatusBadRequest, "fund is required", nil)
		return
	}

	res, err := h.svc.Aggregate(c.Request.Context(), fund)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, service.ErrHoldingsUnavailable) {
			status = http.StatusBadGateway
		}
		middleware.AbortWithError(c, status, "failed to estimate fund", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewFundResponse(*res))
}

// GetFunds godoc
// @Summary      Live day change of several funds
// @Description  Estimates 1 to 5 funds in request order. A fund whose holdings cannot be fetched is reported with status "error".
// @Tags         mutual-funds
// @Accept       json
// @Produce      json
// @Param        request  body      dto.MultiFundRequest  true  "Funds to estimate"
// @Success      200      {array}   dto.FundResponse   "Estimates, in request order"
// @Failure      400      {object}  dto.ErrorResponse  "Invalid request"
// @Failure      500      {object}  dto.ErrorResponse  "Internal Error"
// @Router       /mutual-funds [post]
func (h *Handler) GetFunds(c *gin.Context) {
	var req dto.MultiFundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.AbortWithError(c, http.StatusBadRequest, "funds must list 1 to 5 fund identifiers", err)
		return
	}
	funds := make([]string, 0, len(req.Funds))
	for _, f := range req.Funds {
		f = strings.TrimSpace(f)
		if f == "" {
			middleware.AbortWithError(c, http.StatusBadRequest, "fund identifiers must not be blank", nil)
			return
		}
		funds = append(funds, f)
	}

	results, err := h.svc.AggregateMany(c.Request.Context(), funds)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, service.ErrInvalidBatch) {
			status = http.StatusBadRequest
		}
		middleware.AbortWithError(c, status, "failed to estimate funds", err)
		return
	}

	resp := make([]dto.FundResponse, 0, len(results))
	for _, r := range results {
		resp = append(resp, dto.NewFundResponse(r))
	}
	c.JSON(http.StatusOK, resp)
}

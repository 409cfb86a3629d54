package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vporfyris/wallet_rates_app/internal/apperrors"
	portssvc "github.com/vporfyris/wallet_rates_app/internal/core/ports/services"
	"github.com/vporfyris/wallet_rates_app/internal/dto"
	"github.com/vporfyris/wallet_rates_app/internal/middleware"
)

// rateHandler handles HTTP requests related to currency rates.
type rateHandler struct {
	rateService portssvc.RateSvcFacade
}

// registerRateRoutes registers routes related to currency rates.
func registerRateRoutes(rg *gin.RouterGroup, rateService portssvc.RateSvcFacade) {
	h := &rateHandler{rateService: rateService}

	rates := rg.Group("/rates")
	{
		rates.GET("", h.getLatestRates)
		rates.POST("/refresh", h.refreshRates)
	}
}

// getLatestRates godoc
// @Summary Get the latest rate snapshot
// @Description Returns the most recently stored currency rates, including the base currency at rate 1
// @Tags rates
// @Produce  json
// @Success 200 {object} dto.RatesResponse
// @Failure 404 {object} map[string]string "No rates stored yet"
// @Failure 500 {object} map[string]string "Failed to retrieve rates"
// @Router /rates [get]
func (h *rateHandler) getLatestRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	snapshot, err := h.rateService.GetLatestSnapshot(c.Request.Context())
	if err != nil {
		if errors.Is(err, apperrors.ErrNoRatesAvailable) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No currency rates available yet"})
		} else {
			logger.Error("Failed to get latest rates from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve rates"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToRatesResponse(snapshot))
}

// refreshRates godoc
// @Summary Trigger a rate refresh
// @Description Fetches the latest snapshot from the external feed and stores it unless its date is already present
// @Tags rates
// @Produce  json
// @Success 200 {object} dto.RefreshRatesResponse
// @Failure 502 {object} map[string]string "Rate feed unavailable or malformed"
// @Failure 500 {object} map[string]string "Failed to refresh rates"
// @Router /rates/refresh [post]
func (h *rateHandler) refreshRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	updated, err := h.rateService.RefreshLatestRates(c.Request.Context())
	if err != nil {
		if errors.Is(err, apperrors.ErrSourceUnavailable) || errors.Is(err, apperrors.ErrMalformedSource) {
			logger.Warn("Rate refresh failed at the feed", slog.String("error", err.Error()))
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to refresh rates in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to refresh rates"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.RefreshRatesResponse{Updated: updated})
}

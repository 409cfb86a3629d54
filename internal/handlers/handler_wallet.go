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

// walletHandler handles HTTP requests related to wallets.
type walletHandler struct {
	walletService portssvc.WalletSvcFacade
}

// registerWalletRoutes registers routes related to wallets.
func registerWalletRoutes(rg *gin.RouterGroup, walletService portssvc.WalletSvcFacade) {
	h := &walletHandler{walletService: walletService}

	wallets := rg.Group("/wallets")
	{
		wallets.POST("", h.createWallet)
		wallets.GET("/:id", h.getWallet)
		wallets.GET("/:id/balance", h.getDisplayBalance)
		wallets.POST("/:id/adjust", h.adjustBalance)
	}
}

// createWallet godoc
// @Summary Create a new wallet
// @Description Creates a wallet with an initial balance and a fixed currency
// @Tags wallets
// @Accept  json
// @Produce  json
// @Param   wallet body dto.CreateWalletRequest true "Wallet details"
// @Success 201 {object} dto.WalletResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 500 {object} map[string]string "Failed to create wallet"
// @Router /wallets [post]
func (h *walletHandler) createWallet(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateWalletRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateWallet", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	wallet, err := h.walletService.CreateWallet(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating wallet", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create wallet in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create wallet"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToWalletResponse(wallet))
}

// getWallet godoc
// @Summary Get a wallet by ID
// @Description Retrieves details for a specific wallet by its ID
// @Tags wallets
// @Produce  json
// @Param   id path string true "Wallet ID"
// @Success 200 {object} dto.WalletResponse
// @Failure 404 {object} map[string]string "Wallet not found"
// @Failure 500 {object} map[string]string "Failed to retrieve wallet"
// @Router /wallets/{id} [get]
func (h *walletHandler) getWallet(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	walletID := c.Param("id")

	wallet, err := h.walletService.GetWalletByID(c.Request.Context(), walletID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Wallet not found"})
		} else {
			logger.Error("Failed to get wallet from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve wallet"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToWalletResponse(wallet))
}

// getDisplayBalance godoc
// @Summary Get a wallet balance
// @Description Returns the wallet balance, converted into the given display currency when one is provided
// @Tags wallets
// @Produce  json
// @Param   id path string true "Wallet ID"
// @Param   currency query string false "Display currency (3-letter code)"
// @Success 200 {object} dto.WalletBalanceResponse
// @Failure 400 {object} map[string]string "Invalid currency code"
// @Failure 404 {object} map[string]string "Wallet not found"
// @Failure 422 {object} map[string]string "No rate for requested currency"
// @Failure 503 {object} map[string]string "No rates available yet"
// @Router /wallets/{id}/balance [get]
func (h *walletHandler) getDisplayBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	walletID := c.Param("id")
	targetCurrency := c.Query("currency")

	balance, err := h.walletService.GetDisplayBalance(c.Request.Context(), walletID, targetCurrency)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Wallet not found"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrRateNotFound):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrNoRatesAvailable):
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "No currency rates available yet"})
		default:
			logger.Error("Failed to get display balance from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve balance"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToWalletBalanceResponse(balance))
}

// adjustBalance godoc
// @Summary Adjust a wallet balance
// @Description Applies a credit, debit, or forced debit; the amount is converted into the wallet currency when it differs
// @Tags wallets
// @Accept  json
// @Produce  json
// @Param   id path string true "Wallet ID"
// @Param   adjustment body dto.AdjustBalanceRequest true "Adjustment details"
// @Success 200 {object} dto.WalletResponse
// @Failure 400 {object} map[string]string "Invalid amount, currency, or strategy"
// @Failure 404 {object} map[string]string "Wallet not found"
// @Failure 422 {object} map[string]string "Insufficient funds or missing rate"
// @Failure 503 {object} map[string]string "No rates available yet"
// @Router /wallets/{id}/adjust [post]
func (h *walletHandler) adjustBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	walletID := c.Param("id")

	var req dto.AdjustBalanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for AdjustBalance", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	wallet, err := h.walletService.AdjustBalance(c.Request.Context(), walletID, req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			logger.Warn("Validation error adjusting balance", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Wallet not found"})
		case errors.Is(err, apperrors.ErrInsufficientFunds):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Insufficient funds"})
		case errors.Is(err, apperrors.ErrRateNotFound):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrNoRatesAvailable):
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "No currency rates available yet"})
		default:
			logger.Error("Failed to adjust balance in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to adjust balance"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToWalletResponse(wallet))
}

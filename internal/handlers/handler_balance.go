package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/samandar-s/exchange_office_app/internal/apperrors"
	portssvc "github.com/samandar-s/exchange_office_app/internal/core/ports/services"
	"github.com/samandar-s/exchange_office_app/internal/dto"
	"github.com/samandar-s/exchange_office_app/internal/middleware"
	"github.com/samandar-s/exchange_office_app/internal/utils"
)

// balanceHandler handles HTTP requests related to the balance ledger.
type balanceHandler struct {
	balanceService  portssvc.BalanceSvcFacade
	currencyService portssvc.CurrencySvcFacade
}

// newBalanceHandler creates a new balanceHandler.
func newBalanceHandler(bs portssvc.BalanceSvcFacade, cs portssvc.CurrencySvcFacade) *balanceHandler {
	return &balanceHandler{
		balanceService:  bs,
		currencyService: cs,
	}
}

// registerBalanceRoutes registers routes related to the balance ledger.
func registerBalanceRoutes(rg *gin.RouterGroup, balanceService portssvc.BalanceSvcFacade, currencyService portssvc.CurrencySvcFacade) {
	h := newBalanceHandler(balanceService, currencyService)

	transactions := rg.Group("/balance-transactions")
	{
		transactions.POST("", h.recordBalanceTransaction)
		transactions.GET("", h.listBalanceTransactions)
	}

	rg.GET("/balances/current", h.getCurrentBalance)
}

// recordBalanceTransaction godoc
// @Summary Record a manual balance adjustment
// @Description Appends an ADD or SUBTRACT entry to the balance ledger, stamped with the acting user and branch.
// @Tags balances
// @Accept  json
// @Produce  json
// @Param   transaction body dto.CreateBalanceTransactionRequest true "Ledger entry details"
// @Success 201 {object} dto.BalanceTransactionResponse
// @Failure 400 {object} ErrorResponse "Validation error"
// @Failure 403 {object} ErrorResponse "No access to branch"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /balance-transactions [post]
func (h *balanceHandler) recordBalanceTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateBalanceTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RecordBalanceTransaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	actor, ok := actorFromContext(c)
	if !ok {
		return
	}

	txn, err := h.balanceService.RecordBalanceTransaction(c.Request.Context(), actor, req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrForbidden):
			c.JSON(http.StatusForbidden, ErrorResponse{Error: err.Error()})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		default:
			logger.Error("Failed to record balance transaction", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to record balance transaction"})
		}
		return
	}

	logger.Info("Balance transaction recorded", slog.String("transaction_id", txn.TransactionID), slog.String("branch_id", txn.BranchID))
	c.JSON(http.StatusCreated, dto.ToBalanceTransactionResponse(txn))
}

// listBalanceTransactions godoc
// @Summary List balance ledger entries
// @Description Retrieves ledger history visible to the caller, newest first.
// @Tags balances
// @Produce  json
// @Param   currencyID query string false "Filter by currency"
// @Param   branchID query string false "Filter by branch"
// @Param   page query int false "Page number (default 1)"
// @Param   pageSize query int false "Page size (default 20)"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse "Branch filter required"
// @Failure 403 {object} ErrorResponse "No access to branch"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /balance-transactions [get]
func (h *balanceHandler) listBalanceTransactions(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}

	var currencyID, branchID *string
	if v := c.Query("currencyID"); v != "" {
		currencyID = &v
	}
	if v := c.Query("branchID"); v != "" {
		branchID = &v
	}
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "20"))

	txns, total, err := h.balanceService.ListBalanceTransactions(c.Request.Context(), actor, currencyID, branchID, page, pageSize)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrForbidden):
			c.JSON(http.StatusForbidden, ErrorResponse{Error: err.Error()})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		default:
			logger := middleware.GetLoggerFromCtx(c.Request.Context())
			logger.Error("Failed to list balance transactions", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list balance transactions"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"transactions": dto.ToListBalanceTransactionResponse(txns),
		"total":        total,
	})
}

// getCurrentBalance godoc
// @Summary Get the current balance
// @Description Computes the present balance of one currency at one branch from the latest snapshot plus subsequent ledger entries.
// @Tags balances
// @Produce  json
// @Param   currencyID query string true "Currency id"
// @Param   branchID query string true "Branch id"
// @Success 200 {object} dto.CurrentBalanceResponse
// @Failure 400 {object} ErrorResponse "Missing or invalid parameters"
// @Failure 403 {object} ErrorResponse "No access to branch"
// @Failure 404 {object} ErrorResponse "Currency not found"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /balances/current [get]
func (h *balanceHandler) getCurrentBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	currencyID := c.Query("currencyID")
	branchID := c.Query("branchID")
	if currencyID == "" || branchID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "currencyID and branchID query parameters are required"})
		return
	}

	actor, ok := actorFromContext(c)
	if !ok {
		return
	}

	balance, err := h.balanceService.GetCurrentBalance(c.Request.Context(), actor, currencyID, branchID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrForbidden):
			c.JSON(http.StatusForbidden, ErrorResponse{Error: err.Error()})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		default:
			logger.Error("Failed to get current balance", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to get current balance"})
		}
		return
	}

	currency, err := h.currencyService.GetCurrencyByID(c.Request.Context(), currencyID)
	if err != nil {
		logger.Error("Failed to load currency for balance display", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to get current balance"})
		return
	}

	c.JSON(http.StatusOK, dto.CurrentBalanceResponse{
		CurrencyID: currencyID,
		Code:       currency.Code,
		BranchID:   branchID,
		Balance:    balance,
		Display:    utils.FormatAmount(balance, currency.Code),
	})
}

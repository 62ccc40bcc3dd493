package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	portssvc "github.com/example/corebank/internal/core/ports/services"
	"github.com/example/corebank/internal/dto"
	"github.com/example/corebank/internal/middleware"
	"github.com/gin-gonic/gin"
)

// ledgerHandler handles HTTP requests for balance mutations and reads of the
// transaction log.
type ledgerHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

func newLedgerHandler(svc portssvc.LedgerSvcFacade) *ledgerHandler {
	return &ledgerHandler{ledgerService: svc}
}

// registerLedgerRoutes registers deposit/withdraw/transfer/history/report routes.
func registerLedgerRoutes(rg *gin.RouterGroup, svc portssvc.LedgerSvcFacade) {
	h := newLedgerHandler(svc)

	accounts := rg.Group("/accounts")
	{
		accounts.POST("/:accountNumber/deposit", h.deposit)
		accounts.POST("/:accountNumber/withdraw", h.withdraw)
		accounts.GET("/:accountNumber/transactions", h.transactionHistory)
	}
	rg.POST("/transfers", h.transfer)
	rg.GET("/reports/interest", h.reportInterest)
}

func (h *ledgerHandler) deposit(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	number, ok := accountNumberParam(c)
	if !ok {
		return
	}

	var req dto.AmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for deposit", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	newBalance, err := h.ledgerService.Deposit(c.Request.Context(), number, req.Amount)
	if err != nil {
		logger.Warn("Deposit rejected", slog.Int64("account_number", number), slog.String("error", err.Error()))
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.BalanceResponse{AccountNumber: number, Balance: newBalance})
}

func (h *ledgerHandler) withdraw(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	number, ok := accountNumberParam(c)
	if !ok {
		return
	}

	var req dto.AmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for withdraw", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	newBalance, err := h.ledgerService.Withdraw(c.Request.Context(), number, req.Amount)
	if err != nil {
		logger.Warn("Withdrawal rejected", slog.Int64("account_number", number), slog.String("error", err.Error()))
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.BalanceResponse{AccountNumber: number, Balance: newBalance})
}

func (h *ledgerHandler) transfer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for transfer", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	newFromBalance, err := h.ledgerService.Transfer(c.Request.Context(), req.FromAccount, req.ToAccount, req.Amount)
	if err != nil {
		logger.Warn("Transfer rejected",
			slog.Int64("from_account", req.FromAccount),
			slog.Int64("to_account", req.ToAccount),
			slog.String("error", err.Error()))
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.BalanceResponse{AccountNumber: req.FromAccount, Balance: newFromBalance})
}

func (h *ledgerHandler) transactionHistory(c *gin.Context) {
	number, ok := accountNumberParam(c)
	if !ok {
		return
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
			return
		}
		limit = parsed
	}

	entries, err := h.ledgerService.TransactionHistory(c.Request.Context(), number, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	responses := make([]dto.LedgerEntryResponse, 0, len(entries))
	for _, e := range entries {
		responses = append(responses, dto.ToLedgerEntryResponse(e))
	}
	c.JSON(http.StatusOK, responses)
}

func (h *ledgerHandler) reportInterest(c *gin.Context) {
	lines, err := h.ledgerService.ReportInterest(c.Request.Context())
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to build interest report", slog.String("error", err.Error()))
		respondError(c, err)
		return
	}

	responses := make([]dto.InterestLineResponse, 0, len(lines))
	for _, l := range lines {
		responses = append(responses, dto.ToInterestLineResponse(l))
	}
	c.JSON(http.StatusOK, responses)
}

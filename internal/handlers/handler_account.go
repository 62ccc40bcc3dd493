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

// accountHandler handles HTTP requests related to accounts.
type accountHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

func newAccountHandler(svc portssvc.LedgerSvcFacade) *accountHandler {
	return &accountHandler{ledgerService: svc}
}

// registerAccountRoutes registers the account lifecycle routes.
func registerAccountRoutes(rg *gin.RouterGroup, svc portssvc.LedgerSvcFacade) {
	h := newAccountHandler(svc)

	accounts := rg.Group("/accounts")
	{
		accounts.POST("", h.openAccount)
		accounts.GET("", h.listAccounts)
		accounts.GET("/:accountNumber", h.getAccount)
		accounts.POST("/:accountNumber/close", h.closeAccount)
	}
}

// accountNumberParam parses the :accountNumber path parameter.
func accountNumberParam(c *gin.Context) (int64, bool) {
	number, err := strconv.ParseInt(c.Param("accountNumber"), 10, 64)
	if err != nil || number <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid account number"})
		return 0, false
	}
	return number, true
}

func (h *accountHandler) openAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.OpenAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for openAccount", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	account, err := h.ledgerService.OpenAccount(c.Request.Context(), req)
	if err != nil {
		logger.Warn("Failed to open account", slog.String("error", err.Error()))
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToAccountResponse(account))
}

func (h *accountHandler) getAccount(c *gin.Context) {
	number, ok := accountNumberParam(c)
	if !ok {
		return
	}

	account, err := h.ledgerService.GetAccount(c.Request.Context(), number)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

func (h *accountHandler) listAccounts(c *gin.Context) {
	accounts, err := h.ledgerService.ListAccounts(c.Request.Context())
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to list accounts", slog.String("error", err.Error()))
		respondError(c, err)
		return
	}

	summaries := make([]dto.AccountSummaryResponse, 0, len(accounts))
	for _, acc := range accounts {
		summaries = append(summaries, dto.ToAccountSummaryResponse(acc))
	}
	c.JSON(http.StatusOK, summaries)
}

func (h *accountHandler) closeAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	number, ok := accountNumberParam(c)
	if !ok {
		return
	}

	if err := h.ledgerService.CloseAccount(c.Request.Context(), number); err != nil {
		logger.Warn("Failed to close account", slog.Int64("account_number", number), slog.String("error", err.Error()))
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "closed"})
}

package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/example/corebank/internal/apperrors"
	"github.com/example/corebank/internal/core/domain"
	"github.com/example/corebank/internal/dto"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDepositHandler(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := new(MockLedgerService)
		svc.On("Deposit", mock.Anything, int64(1), mock.MatchedBy(func(d decimal.Decimal) bool {
			return d.Equal(decimal.RequireFromString("500.00"))
		})).Return(decimal.RequireFromString("1500.00"), nil)
		r := setupTestRouter(svc)

		w := performRequest(r, http.MethodPost, "/api/v1/accounts/1/deposit", gin.H{"amount": "500.00"})

		require.Equal(t, http.StatusOK, w.Code)
		var resp dto.BalanceResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, int64(1), resp.AccountNumber)
		assert.True(t, resp.Balance.Equal(decimal.RequireFromString("1500.00")))
	})

	t.Run("closed account maps to conflict", func(t *testing.T) {
		svc := new(MockLedgerService)
		svc.On("Deposit", mock.Anything, int64(1), mock.Anything).
			Return(decimal.Zero, apperrors.ErrAccountClosed)
		r := setupTestRouter(svc)

		w := performRequest(r, http.MethodPost, "/api/v1/accounts/1/deposit", gin.H{"amount": "10.00"})

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("missing amount is rejected", func(t *testing.T) {
		svc := new(MockLedgerService)
		r := setupTestRouter(svc)

		w := performRequest(r, http.MethodPost, "/api/v1/accounts/1/deposit", gin.H{})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		svc.AssertNotCalled(t, "Deposit", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestWithdrawHandler(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := new(MockLedgerService)
		svc.On("Withdraw", mock.Anything, int64(1), mock.Anything).
			Return(decimal.RequireFromString("1000.00"), nil)
		r := setupTestRouter(svc)

		w := performRequest(r, http.MethodPost, "/api/v1/accounts/1/withdraw", gin.H{"amount": "500.00"})

		require.Equal(t, http.StatusOK, w.Code)
		var resp dto.BalanceResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.Balance.Equal(decimal.RequireFromString("1000.00")))
	})

	t.Run("minimum balance violation maps to conflict", func(t *testing.T) {
		svc := new(MockLedgerService)
		svc.On("Withdraw", mock.Anything, int64(1), mock.Anything).
			Return(decimal.Zero, apperrors.ErrMinimumBalance)
		r := setupTestRouter(svc)

		w := performRequest(r, http.MethodPost, "/api/v1/accounts/1/withdraw", gin.H{"amount": "600.00"})

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("insufficient funds maps to conflict", func(t *testing.T) {
		svc := new(MockLedgerService)
		svc.On("Withdraw", mock.Anything, int64(1), mock.Anything).
			Return(decimal.Zero, apperrors.ErrInsufficientFunds)
		r := setupTestRouter(svc)

		w := performRequest(r, http.MethodPost, "/api/v1/accounts/1/withdraw", gin.H{"amount": "600.00"})

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestTransferHandler(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := new(MockLedgerService)
		svc.On("Transfer", mock.Anything, int64(1), int64(2), mock.Anything).
			Return(decimal.RequireFromString("800.00"), nil)
		r := setupTestRouter(svc)

		w := performRequest(r, http.MethodPost, "/api/v1/transfers", gin.H{
			"fromAccount": 1,
			"toAccount":   2,
			"amount":      "200.00",
		})

		require.Equal(t, http.StatusOK, w.Code)
		var resp dto.BalanceResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, int64(1), resp.AccountNumber)
		assert.True(t, resp.Balance.Equal(decimal.RequireFromString("800.00")))
	})

	t.Run("same account maps to bad request", func(t *testing.T) {
		svc := new(MockLedgerService)
		svc.On("Transfer", mock.Anything, int64(5), int64(5), mock.Anything).
			Return(decimal.Zero, apperrors.ErrSameAccount)
		r := setupTestRouter(svc)

		w := performRequest(r, http.MethodPost, "/api/v1/transfers", gin.H{
			"fromAccount": 5,
			"toAccount":   5,
			"amount":      "10.00",
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown destination maps to not found", func(t *testing.T) {
		svc := new(MockLedgerService)
		svc.On("Transfer", mock.Anything, int64(1), int64(99), mock.Anything).
			Return(decimal.Zero, apperrors.ErrAccountNotFound)
		r := setupTestRouter(svc)

		w := performRequest(r, http.MethodPost, "/api/v1/transfers", gin.H{
			"fromAccount": 1,
			"toAccount":   99,
			"amount":      "10.00",
		})

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestTransactionHistoryHandler(t *testing.T) {
	t.Run("passes parsed limit", func(t *testing.T) {
		svc := new(MockLedgerService)
		entries := []domain.LedgerEntry{
			{SequenceID: 2, AccountNumber: 1, Type: domain.Deposit, Amount: decimal.RequireFromString("50.00"), BalanceAfter: decimal.RequireFromString("150.00")},
			{SequenceID: 1, AccountNumber: 1, Type: domain.Deposit, Amount: decimal.RequireFromString("100.00"), BalanceAfter: decimal.RequireFromString("100.00")},
		}
		svc.On("TransactionHistory", mock.Anything, int64(1), 5).Return(entries, nil)
		r := setupTestRouter(svc)

		w := performRequest(r, http.MethodGet, "/api/v1/accounts/1/transactions?limit=5", nil)

		require.Equal(t, http.StatusOK, w.Code)
		var resp []dto.LedgerEntryResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp, 2)
		assert.Equal(t, int64(2), resp[0].SequenceID)
	})

	t.Run("omitted limit passes zero through", func(t *testing.T) {
		svc := new(MockLedgerService)
		svc.On("TransactionHistory", mock.Anything, int64(1), 0).Return([]domain.LedgerEntry{}, nil)
		r := setupTestRouter(svc)

		w := performRequest(r, http.MethodGet, "/api/v1/accounts/1/transactions", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		svc.AssertCalled(t, "TransactionHistory", mock.Anything, int64(1), 0)
	})

	t.Run("negative limit is rejected", func(t *testing.T) {
		svc := new(MockLedgerService)
		r := setupTestRouter(svc)

		w := performRequest(r, http.MethodGet, "/api/v1/accounts/1/transactions?limit=-1", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		svc.AssertNotCalled(t, "TransactionHistory", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestReportInterestHandler(t *testing.T) {
	svc := new(MockLedgerService)
	lines := []domain.InterestLine{
		{AccountNumber: 1, HolderName: "A", Balance: decimal.RequireFromString("1000.00"), Interest: decimal.RequireFromString("40.00")},
	}
	svc.On("ReportInterest", mock.Anything).Return(lines, nil)
	r := setupTestRouter(svc)

	w := performRequest(r, http.MethodGet, "/api/v1/reports/interest", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var resp []dto.InterestLineResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.True(t, resp[0].Interest.Equal(decimal.RequireFromString("40.00")))
}

func TestStatusForError(t *testing.T) {
	testCases := []struct {
		err      error
		expected int
	}{
		{apperrors.ErrInvalidAmount, http.StatusBadRequest},
		{apperrors.ErrSameAccount, http.StatusBadRequest},
		{apperrors.ErrAccountNotFound, http.StatusNotFound},
		{apperrors.ErrAccountClosed, http.StatusConflict},
		{apperrors.ErrMinimumBalance, http.StatusConflict},
		{apperrors.ErrInsufficientFunds, http.StatusConflict},
		{apperrors.ErrNonZeroBalance, http.StatusConflict},
		{apperrors.ErrConcurrentModification, http.StatusConflict},
		{apperrors.ErrStorageUnavailable, http.StatusServiceUnavailable},
		{assert.AnError, http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, statusForError(tc.err), "error %v", tc.err)
	}
}

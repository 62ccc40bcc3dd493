package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
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

// MockLedgerService is a mock implementation of portssvc.LedgerSvcFacade.
type MockLedgerService struct {
	mock.Mock
}

func (m *MockLedgerService) OpenAccount(ctx context.Context, req dto.OpenAccountRequest) (*domain.Account, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockLedgerService) Deposit(ctx context.Context, accountNumber int64, amount decimal.Decimal) (decimal.Decimal, error) {
	args := m.Called(ctx, accountNumber, amount)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockLedgerService) Withdraw(ctx context.Context, accountNumber int64, amount decimal.Decimal) (decimal.Decimal, error) {
	args := m.Called(ctx, accountNumber, amount)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockLedgerService) Transfer(ctx context.Context, fromAccount, toAccount int64, amount decimal.Decimal) (decimal.Decimal, error) {
	args := m.Called(ctx, fromAccount, toAccount, amount)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockLedgerService) CloseAccount(ctx context.Context, accountNumber int64) error {
	args := m.Called(ctx, accountNumber)
	return args.Error(0)
}

func (m *MockLedgerService) GetAccount(ctx context.Context, accountNumber int64) (*domain.Account, error) {
	args := m.Called(ctx, accountNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockLedgerService) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockLedgerService) TransactionHistory(ctx context.Context, accountNumber int64, limit int) ([]domain.LedgerEntry, error) {
	args := m.Called(ctx, accountNumber, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LedgerEntry), args.Error(1)
}

func (m *MockLedgerService) ReportInterest(ctx context.Context) ([]domain.InterestLine, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InterestLine), args.Error(1)
}

func setupTestRouter(svc *MockLedgerService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	api := r.Group("/api/v1")
	registerAccountRoutes(api, svc)
	registerLedgerRoutes(api, svc)
	return r
}

func performRequest(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestOpenAccountHandler(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		svc := new(MockLedgerService)
		account := &domain.Account{
			AccountNumber: 101,
			HolderName:    "Test Holder",
			Kind:          domain.Current,
			Balance:       decimal.RequireFromString("1000.00"),
			Status:        domain.Active,
		}
		svc.On("OpenAccount", mock.Anything, mock.Anything).Return(account, nil)
		r := setupTestRouter(svc)

		w := performRequest(r, http.MethodPost, "/api/v1/accounts", gin.H{
			"holderName":     "Test Holder",
			"kind":           "CURRENT",
			"initialDeposit": "1000.00",
		})

		require.Equal(t, http.StatusCreated, w.Code)
		var resp dto.AccountResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, int64(101), resp.AccountNumber)
		assert.True(t, resp.MinimumBalanceSatisfied)
	})

	t.Run("missing holder name is rejected", func(t *testing.T) {
		svc := new(MockLedgerService)
		r := setupTestRouter(svc)

		w := performRequest(r, http.MethodPost, "/api/v1/accounts", gin.H{"kind": "SAVINGS"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		svc.AssertNotCalled(t, "OpenAccount", mock.Anything, mock.Anything)
	})

	t.Run("unknown kind is rejected", func(t *testing.T) {
		svc := new(MockLedgerService)
		r := setupTestRouter(svc)

		w := performRequest(r, http.MethodPost, "/api/v1/accounts", gin.H{
			"holderName": "Test Holder",
			"kind":       "CHECKING",
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("minimum balance violation maps to conflict", func(t *testing.T) {
		svc := new(MockLedgerService)
		svc.On("OpenAccount", mock.Anything, mock.Anything).Return(nil, apperrors.ErrMinimumBalance)
		r := setupTestRouter(svc)

		w := performRequest(r, http.MethodPost, "/api/v1/accounts", gin.H{
			"holderName":     "Test Holder",
			"kind":           "CURRENT",
			"initialDeposit": "999.99",
		})

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestGetAccountHandler(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		svc := new(MockLedgerService)
		account := &domain.Account{
			AccountNumber: 7,
			HolderName:    "Test Holder",
			Kind:          domain.Savings,
			Balance:       decimal.RequireFromString("1000.00"),
			Status:        domain.Active,
		}
		svc.On("GetAccount", mock.Anything, int64(7)).Return(account, nil)
		r := setupTestRouter(svc)

		w := performRequest(r, http.MethodGet, "/api/v1/accounts/7", nil)

		require.Equal(t, http.StatusOK, w.Code)
		var resp dto.AccountResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.AnnualInterest.Equal(decimal.RequireFromString("40.00")))
	})

	t.Run("not found", func(t *testing.T) {
		svc := new(MockLedgerService)
		svc.On("GetAccount", mock.Anything, int64(99)).Return(nil, apperrors.ErrAccountNotFound)
		r := setupTestRouter(svc)

		w := performRequest(r, http.MethodGet, "/api/v1/accounts/99", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("non-numeric account number", func(t *testing.T) {
		svc := new(MockLedgerService)
		r := setupTestRouter(svc)

		w := performRequest(r, http.MethodGet, "/api/v1/accounts/abc", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		svc.AssertNotCalled(t, "GetAccount", mock.Anything, mock.Anything)
	})
}

func TestListAccountsHandler(t *testing.T) {
	svc := new(MockLedgerService)
	accounts := []domain.Account{
		{AccountNumber: 1, HolderName: "A", Kind: domain.Savings, Balance: decimal.RequireFromString("100.00"), Status: domain.Active},
		{AccountNumber: 2, HolderName: "B", Kind: domain.Current, Balance: decimal.RequireFromString("2000.00"), Status: domain.Active},
	}
	svc.On("ListAccounts", mock.Anything).Return(accounts, nil)
	r := setupTestRouter(svc)

	w := performRequest(r, http.MethodGet, "/api/v1/accounts", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var resp []dto.AccountSummaryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	assert.Equal(t, int64(1), resp[0].AccountNumber)
}

func TestCloseAccountHandler(t *testing.T) {
	t.Run("closed", func(t *testing.T) {
		svc := new(MockLedgerService)
		svc.On("CloseAccount", mock.Anything, int64(4)).Return(nil)
		r := setupTestRouter(svc)

		w := performRequest(r, http.MethodPost, "/api/v1/accounts/4/close", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		svc.AssertExpectations(t)
	})

	t.Run("non-zero balance maps to conflict", func(t *testing.T) {
		svc := new(MockLedgerService)
		svc.On("CloseAccount", mock.Anything, int64(4)).Return(apperrors.ErrNonZeroBalance)
		r := setupTestRouter(svc)

		w := performRequest(r, http.MethodPost, "/api/v1/accounts/4/close", nil)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

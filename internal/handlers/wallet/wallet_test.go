package wallet

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/courtclub/backend/internal/domain"
	"github.com/courtclub/backend/internal/dto"
	"github.com/courtclub/backend/internal/service/walletservice"
	"github.com/courtclub/backend/pkg/auth"
)

func NewMock(t *testing.T) (*WalletHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func authedRequest(method, target, body string) *http.Request {
	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(method, target, nil)
	} else {
		r = httptest.NewRequest(method, target, bytes.NewBufferString(body))
	}
	return r.WithContext(context.WithValue(r.Context(), auth.UserIDKey, "user-1"))
}

func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestRequestDepositHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful request",
			body: `{"amount":"500000","description":"Bank transfer"}`,
			prepareMock: func() {
				service.EXPECT().
					RequestDepositForUser(gomock.Any(), "user-1", gomock.Any(), "Bank transfer").
					DoAndReturn(func(_ context.Context, _ string, amount decimal.Decimal, _ string) (*domain.WalletTransaction, error) {
						assert.True(t, amount.Equal(decimal.NewFromInt(500_000)))
						return &domain.WalletTransaction{
							ID:     7,
							Amount: amount,
							Type:   domain.TxDeposit,
							Status: domain.TxPending,
						}, nil
					})
			},
			expectedCode: http.StatusOK,
		},
		{
			name:          "Invalid request body",
			body:          `{"amount":}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name:          "Unparseable amount",
			body:          `{"amount":"lots"}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid amount",
		},
		{
			name: "Non-positive amount",
			body: `{"amount":"-100"}`,
			prepareMock: func() {
				service.EXPECT().
					RequestDepositForUser(gomock.Any(), "user-1", gomock.Any(), "").
					Return(nil, walletservice.ErrInvalidAmount)
			},
			expectedCode:  http.StatusUnprocessableEntity,
			expectedError: walletservice.ErrInvalidAmount.Error(),
		},
		{
			name: "No member profile",
			body: `{"amount":"500000"}`,
			prepareMock: func() {
				service.EXPECT().
					RequestDepositForUser(gomock.Any(), "user-1", gomock.Any(), "").
					Return(nil, walletservice.ErrMemberNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "Internal server error",
			body: `{"amount":"500000"}`,
			prepareMock: func() {
				service.EXPECT().
					RequestDepositForUser(gomock.Any(), "user-1", gomock.Any(), "").
					Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := authedRequest(http.MethodPost, "/wallet/deposit", tt.body)
			w := httptest.NewRecorder()

			handler.RequestDeposit(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
			if tt.expectedCode == http.StatusOK {
				var body dto.TransactionResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, 7, body.ID)
				assert.Equal(t, "Pending", body.Status)
			}
		})
	}
}

func TestTransactionsHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
		expectedLen  int
	}{
		{
			name: "Successful listing",
			prepareMock: func() {
				service.EXPECT().TransactionsForUser(gomock.Any(), "user-1").Return([]domain.WalletTransaction{
					{ID: 6, Amount: decimal.NewFromInt(500_000), Type: domain.TxDeposit, Status: domain.TxCompleted},
					{ID: 5, Amount: decimal.NewFromInt(-100_000), Type: domain.TxPayment, Status: domain.TxCompleted},
				}, nil)
			},
			expectedCode: http.StatusOK,
			expectedLen:  2,
		},
		{
			name: "No member profile",
			prepareMock: func() {
				service.EXPECT().TransactionsForUser(gomock.Any(), "user-1").Return(nil, walletservice.ErrMemberNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "Internal server error",
			prepareMock: func() {
				service.EXPECT().TransactionsForUser(gomock.Any(), "user-1").Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := authedRequest(http.MethodGet, "/wallet/transactions", "")
			w := httptest.NewRecorder()

			handler.Transactions(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body []dto.TransactionResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Len(t, body, tt.expectedLen)
				assert.Equal(t, 6, body[0].ID)
			}
		})
	}
}

func TestApproveDepositHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		transactionID string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name:          "Successful approval",
			transactionID: "5",
			prepareMock: func() {
				service.EXPECT().ApproveDeposit(gomock.Any(), 5).Return(&domain.WalletTransaction{
					ID:     5,
					Amount: decimal.NewFromInt(500_000),
					Type:   domain.TxDeposit,
					Status: domain.TxCompleted,
				}, decimal.NewFromInt(1_500_000), nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:          "Invalid transaction id",
			transactionID: "abc",
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid transaction id",
		},
		{
			name:          "Transaction not found",
			transactionID: "5",
			prepareMock: func() {
				service.EXPECT().ApproveDeposit(gomock.Any(), 5).
					Return(nil, decimal.Zero, walletservice.ErrNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:          "Already completed",
			transactionID: "5",
			prepareMock: func() {
				service.EXPECT().ApproveDeposit(gomock.Any(), 5).
					Return(nil, decimal.Zero, walletservice.ErrInvalidState)
			},
			expectedCode:  http.StatusConflict,
			expectedError: walletservice.ErrInvalidState.Error(),
		},
		{
			name:          "Internal server error",
			transactionID: "5",
			prepareMock: func() {
				service.EXPECT().ApproveDeposit(gomock.Any(), 5).
					Return(nil, decimal.Zero, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := authedRequest(http.MethodPost, "/admin/wallet/approve/"+tt.transactionID, "")
			r = withURLParam(r, "id", tt.transactionID)
			w := httptest.NewRecorder()

			handler.ApproveDeposit(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
			if tt.expectedCode == http.StatusOK {
				var body dto.ApproveDepositResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, 5, body.Transaction.ID)
				assert.Equal(t, "1500000", body.NewBalance)
			}
		})
	}
}

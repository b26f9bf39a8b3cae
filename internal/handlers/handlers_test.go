package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	_ "github.com/courtclub/backend/docs"
	"github.com/courtclub/backend/pkg/auth"
)

func newMockHandlers(ctrl *gomock.Controller, jwt *auth.JWTService) *Handlers {
	mockAuthHandler := NewMockAuthHandler(ctrl)
	mockBookingHandler := NewMockBookingHandler(ctrl)
	mockWalletHandler := NewMockWalletHandler(ctrl)
	mockTournamentHandler := NewMockTournamentHandler(ctrl)
	mockCourtHandler := NewMockCourtHandler(ctrl)
	mockMemberHandler := NewMockMemberHandler(ctrl)

	mockAuthHandler.EXPECT().Register(gomock.Any(), gomock.Any()).AnyTimes()
	mockAuthHandler.EXPECT().Login(gomock.Any(), gomock.Any()).AnyTimes()
	mockBookingHandler.EXPECT().Calendar(gomock.Any(), gomock.Any()).AnyTimes()
	mockBookingHandler.EXPECT().MyBookings(gomock.Any(), gomock.Any()).AnyTimes()
	mockBookingHandler.EXPECT().Hold(gomock.Any(), gomock.Any()).AnyTimes()
	mockBookingHandler.EXPECT().Confirm(gomock.Any(), gomock.Any()).AnyTimes()
	mockBookingHandler.EXPECT().Release(gomock.Any(), gomock.Any()).AnyTimes()
	mockBookingHandler.EXPECT().Create(gomock.Any(), gomock.Any()).AnyTimes()
	mockBookingHandler.EXPECT().CreateRecurring(gomock.Any(), gomock.Any()).AnyTimes()
	mockBookingHandler.EXPECT().Cancel(gomock.Any(), gomock.Any()).AnyTimes()
	mockWalletHandler.EXPECT().RequestDeposit(gomock.Any(), gomock.Any()).AnyTimes()
	mockWalletHandler.EXPECT().Transactions(gomock.Any(), gomock.Any()).AnyTimes()
	mockWalletHandler.EXPECT().ApproveDeposit(gomock.Any(), gomock.Any()).AnyTimes()
	mockTournamentHandler.EXPECT().Create(gomock.Any(), gomock.Any()).AnyTimes()
	mockTournamentHandler.EXPECT().List(gomock.Any(), gomock.Any()).AnyTimes()
	mockTournamentHandler.EXPECT().Get(gomock.Any(), gomock.Any()).AnyTimes()
	mockTournamentHandler.EXPECT().Join(gomock.Any(), gomock.Any()).AnyTimes()
	mockTournamentHandler.EXPECT().GenerateSchedule(gomock.Any(), gomock.Any()).AnyTimes()
	mockTournamentHandler.EXPECT().RecordResult(gomock.Any(), gomock.Any()).AnyTimes()
	mockCourtHandler.EXPECT().List(gomock.Any(), gomock.Any()).AnyTimes()
	mockCourtHandler.EXPECT().Create(gomock.Any(), gomock.Any()).AnyTimes()
	mockCourtHandler.EXPECT().Update(gomock.Any(), gomock.Any()).AnyTimes()
	mockMemberHandler.EXPECT().Profile(gomock.Any(), gomock.Any()).AnyTimes()
	mockMemberHandler.EXPECT().UpdateAvatar(gomock.Any(), gomock.Any()).AnyTimes()
	mockMemberHandler.EXPECT().RankHistory(gomock.Any(), gomock.Any()).AnyTimes()
	mockMemberHandler.EXPECT().List(gomock.Any(), gomock.Any()).AnyTimes()
	mockMemberHandler.EXPECT().MarkRead(gomock.Any(), gomock.Any()).AnyTimes()
	mockMemberHandler.EXPECT().MarkAllRead(gomock.Any(), gomock.Any()).AnyTimes()

	return &Handlers{
		AuthHandler:       mockAuthHandler,
		BookingHandler:    mockBookingHandler,
		WalletHandler:     mockWalletHandler,
		TournamentHandler: mockTournamentHandler,
		CourtHandler:      mockCourtHandler,
		MemberHandler:     mockMemberHandler,
		jwt:               jwt,
	}
}

func TestInitRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	jwtService := auth.NewJWTService("test-secret")
	h := newMockHandlers(ctrl, jwtService)

	router := chi.NewRouter()
	h.InitRoutes(router)

	userToken, err := jwtService.GenerateJWT("u-1", "user", time.Now().Add(time.Hour))
	assert.NoError(t, err)
	adminToken, err := jwtService.GenerateJWT("u-2", "admin", time.Now().Add(time.Hour))
	assert.NoError(t, err)

	tests := []struct {
		method string
		url    string
		token  string
		status int
	}{
		{"POST", "/api/auth/register", "", http.StatusOK},
		{"POST", "/api/auth/login", "", http.StatusOK},
		{"GET", "/api/courts", "", http.StatusOK},
		{"GET", "/api/calendar", "", http.StatusOK},
		{"GET", "/api/tournaments", "", http.StatusOK},
		{"GET", "/api/tournaments/3", "", http.StatusOK},
		{"GET", "/api/bookings/", "", http.StatusUnauthorized},
		{"POST", "/api/bookings/hold", "", http.StatusUnauthorized},
		{"POST", "/api/wallet/deposit", "", http.StatusUnauthorized},
		{"GET", "/api/members/me/", "", http.StatusUnauthorized},
		{"GET", "/api/notifications/", "", http.StatusUnauthorized},
		{"POST", "/api/bookings/hold", userToken, http.StatusOK},
		{"GET", "/api/wallet/transactions", userToken, http.StatusOK},
		{"POST", "/api/courts", userToken, http.StatusForbidden},
		{"POST", "/api/admin/wallet/approve/5", userToken, http.StatusForbidden},
		{"POST", "/api/courts", adminToken, http.StatusOK},
		{"POST", "/api/admin/wallet/approve/5", adminToken, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			if tt.token != "" {
				req.Header.Set("Authorization", "Bearer "+tt.token)
			}
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

package service

import (
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/courtclub/backend/internal/config"
	"github.com/courtclub/backend/internal/pg"
	"github.com/courtclub/backend/internal/repo"
	"github.com/courtclub/backend/internal/service/bookingservice"
	pkgauth "github.com/courtclub/backend/pkg/auth"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	defer mockDB.Close()

	repos := repo.New(mockDB)
	txManager := pg.NewMockTXManager(ctrl)
	notifier := bookingservice.NewMockNotifier(ctrl)
	cfg := &config.Config{RankDelta: 0.1}

	services := New(cfg, repos, txManager, pkgauth.NewJWTService("test-secret"), notifier)

	assert.NotNil(t, services.AuthService)
	assert.NotNil(t, services.BookingService)
	assert.NotNil(t, services.WalletService)
	assert.NotNil(t, services.TournamentService)
	assert.NotNil(t, services.CourtService)
	assert.NotNil(t, services.MemberService)
}

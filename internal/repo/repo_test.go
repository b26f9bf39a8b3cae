package repo

import (
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"

	bookingrepo "github.com/courtclub/backend/internal/repo/booking-repo"
	courtrepo "github.com/courtclub/backend/internal/repo/court-repo"
	matchrepo "github.com/courtclub/backend/internal/repo/match-repo"
	memberrepo "github.com/courtclub/backend/internal/repo/member-repo"
	notificationrepo "github.com/courtclub/backend/internal/repo/notification-repo"
	tournamentrepo "github.com/courtclub/backend/internal/repo/tournament-repo"
	userrepo "github.com/courtclub/backend/internal/repo/user-repo"
	walletrepo "github.com/courtclub/backend/internal/repo/wallet-repo"
)

func NewMock(t *testing.T) (*Repositories, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestNew(t *testing.T) {
	repo, mock := NewMock(t)

	assert.NotNil(t, repo.UserRepo)
	assert.NotNil(t, repo.MemberRepo)
	assert.NotNil(t, repo.CourtRepo)
	assert.NotNil(t, repo.BookingRepo)
	assert.NotNil(t, repo.WalletRepo)
	assert.NotNil(t, repo.TournamentRepo)
	assert.NotNil(t, repo.MatchRepo)
	assert.NotNil(t, repo.NotificationRepo)

	assert.IsType(t, &userrepo.Repository{}, repo.UserRepo)
	assert.IsType(t, &memberrepo.Repository{}, repo.MemberRepo)
	assert.IsType(t, &courtrepo.Repository{}, repo.CourtRepo)
	assert.IsType(t, &bookingrepo.Repository{}, repo.BookingRepo)
	assert.IsType(t, &walletrepo.Repository{}, repo.WalletRepo)
	assert.IsType(t, &tournamentrepo.Repository{}, repo.TournamentRepo)
	assert.IsType(t, &matchrepo.Repository{}, repo.MatchRepo)
	assert.IsType(t, &notificationrepo.Repository{}, repo.NotificationRepo)

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unmet expectations: %v", err)
	}
}

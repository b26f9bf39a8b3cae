package repo

import (
	"github.com/courtclub/backend/internal/pg"
	bookingrepo "github.com/courtclub/backend/internal/repo/booking-repo"
	courtrepo "github.com/courtclub/backend/internal/repo/court-repo"
	matchrepo "github.com/courtclub/backend/internal/repo/match-repo"
	memberrepo "github.com/courtclub/backend/internal/repo/member-repo"
	notificationrepo "github.com/courtclub/backend/internal/repo/notification-repo"
	tournamentrepo "github.com/courtclub/backend/internal/repo/tournament-repo"
	userrepo "github.com/courtclub/backend/internal/repo/user-repo"
	walletrepo "github.com/courtclub/backend/internal/repo/wallet-repo"
)

// Repositories holds one repository per aggregate. A single repository can
// back several services; each service narrows it to the interface it needs.
type Repositories struct {
	UserRepo         *userrepo.Repository
	MemberRepo       *memberrepo.Repository
	CourtRepo        *courtrepo.Repository
	BookingRepo      *bookingrepo.Repository
	WalletRepo       *walletrepo.Repository
	TournamentRepo   *tournamentrepo.Repository
	MatchRepo        *matchrepo.Repository
	NotificationRepo *notificationrepo.Repository
}

func New(conn pg.Database) *Repositories {
	return &Repositories{
		UserRepo:         userrepo.New(conn),
		MemberRepo:       memberrepo.New(conn),
		CourtRepo:        courtrepo.New(conn),
		BookingRepo:      bookingrepo.New(conn),
		WalletRepo:       walletrepo.New(conn),
		TournamentRepo:   tournamentrepo.New(conn),
		MatchRepo:        matchrepo.New(conn),
		NotificationRepo: notificationrepo.New(conn),
	}
}

package service

import (
	"github.com/courtclub/backend/internal/config"
	"github.com/courtclub/backend/internal/handlers/auth"
	"github.com/courtclub/backend/internal/handlers/bookings"
	"github.com/courtclub/backend/internal/handlers/courts"
	"github.com/courtclub/backend/internal/handlers/notifications"
	"github.com/courtclub/backend/internal/handlers/tournaments"
	"github.com/courtclub/backend/internal/handlers/wallet"
	"github.com/courtclub/backend/internal/pg"
	"github.com/courtclub/backend/internal/repo"
	"github.com/courtclub/backend/internal/service/authservice"
	"github.com/courtclub/backend/internal/service/bookingservice"
	"github.com/courtclub/backend/internal/service/courtservice"
	"github.com/courtclub/backend/internal/service/memberservice"
	"github.com/courtclub/backend/internal/service/tierservice"
	"github.com/courtclub/backend/internal/service/tournamentservice"
	"github.com/courtclub/backend/internal/service/walletservice"

	pkgauth "github.com/courtclub/backend/pkg/auth"
)

// Notifier is the event sink shared by the engines that announce changes.
type Notifier interface {
	bookingservice.Notifier
}

type Services struct {
	AuthService       auth.Service
	BookingService    bookings.Service
	WalletService     wallet.Service
	TournamentService tournaments.Service
	CourtService      courts.Service
	MemberService     notifications.Service
}

func New(cfg *config.Config, repos *repo.Repositories, txManager pg.TXManager, jwtService *pkgauth.JWTService, notifier Notifier) *Services {
	tierService := tierservice.New(cfg.TierThresholds())
	walletService := walletservice.New(repos.MemberRepo, repos.WalletRepo, tierService, txManager)
	bookingService := bookingservice.New(repos.BookingRepo, repos.CourtRepo, repos.MemberRepo,
		walletService, tierService, notifier, txManager)
	tournamentService := tournamentservice.New(repos.TournamentRepo, repos.MatchRepo, repos.MemberRepo,
		walletService, notifier, txManager, cfg.RankDelta)
	authService := authservice.New(repos.UserRepo, repos.MemberRepo, &pkgauth.HashService{}, jwtService, txManager)
	courtService := courtservice.New(repos.CourtRepo)
	memberService := memberservice.New(repos.MemberRepo, repos.MatchRepo, repos.NotificationRepo)

	return &Services{
		AuthService:       authService,
		BookingService:    bookingService,
		WalletService:     walletService,
		TournamentService: tournamentService,
		CourtService:      courtService,
		MemberService:     memberService,
	}
}

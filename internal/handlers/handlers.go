package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/courtclub/backend/docs"
	authhandlers "github.com/courtclub/backend/internal/handlers/auth"
	bookinghandlers "github.com/courtclub/backend/internal/handlers/bookings"
	courthandlers "github.com/courtclub/backend/internal/handlers/courts"
	notificationhandlers "github.com/courtclub/backend/internal/handlers/notifications"
	tournamenthandlers "github.com/courtclub/backend/internal/handlers/tournaments"
	wallethandlers "github.com/courtclub/backend/internal/handlers/wallet"
	"github.com/courtclub/backend/internal/service"
	"github.com/courtclub/backend/pkg/auth"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type BookingHandler interface {
	Calendar(w http.ResponseWriter, r *http.Request)
	MyBookings(w http.ResponseWriter, r *http.Request)
	Hold(w http.ResponseWriter, r *http.Request)
	Confirm(w http.ResponseWriter, r *http.Request)
	Release(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	CreateRecurring(w http.ResponseWriter, r *http.Request)
	Cancel(w http.ResponseWriter, r *http.Request)
}

type WalletHandler interface {
	RequestDeposit(w http.ResponseWriter, r *http.Request)
	Transactions(w http.ResponseWriter, r *http.Request)
	ApproveDeposit(w http.ResponseWriter, r *http.Request)
}

type TournamentHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Join(w http.ResponseWriter, r *http.Request)
	GenerateSchedule(w http.ResponseWriter, r *http.Request)
	RecordResult(w http.ResponseWriter, r *http.Request)
}

type CourtHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
}

type MemberHandler interface {
	Profile(w http.ResponseWriter, r *http.Request)
	UpdateAvatar(w http.ResponseWriter, r *http.Request)
	RankHistory(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	MarkRead(w http.ResponseWriter, r *http.Request)
	MarkAllRead(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler       AuthHandler
	BookingHandler    BookingHandler
	WalletHandler     WalletHandler
	TournamentHandler TournamentHandler
	CourtHandler      CourtHandler
	MemberHandler     MemberHandler

	jwt *auth.JWTService
}

func New(s *service.Services, jwt *auth.JWTService) *Handlers {
	return &Handlers{
		AuthHandler:       authhandlers.New(s.AuthService),
		BookingHandler:    bookinghandlers.New(s.BookingService),
		WalletHandler:     wallethandlers.New(s.WalletService),
		TournamentHandler: tournamenthandlers.New(s.TournamentService),
		CourtHandler:      courthandlers.New(s.CourtService),
		MemberHandler:     notificationhandlers.New(s.MemberService),
		jwt:               jwt,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
		cors.Handler(cors.Options{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		}),
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/register", h.AuthHandler.Register)
		r.Post("/auth/login", h.AuthHandler.Login)

		r.Get("/courts", h.CourtHandler.List)
		r.Get("/calendar", h.BookingHandler.Calendar)
		r.Get("/tournaments", h.TournamentHandler.List)
		r.Get("/tournaments/{id}", h.TournamentHandler.Get)

		r.Group(func(r chi.Router) {
			r.Use(h.jwt.Middleware)

			r.Route("/bookings", func(r chi.Router) {
				r.Get("/", h.BookingHandler.MyBookings)
				r.Post("/", h.BookingHandler.Create)
				r.Post("/hold", h.BookingHandler.Hold)
				r.Post("/confirm/{id}", h.BookingHandler.Confirm)
				r.Delete("/hold/{id}", h.BookingHandler.Release)
				r.Post("/recurring", h.BookingHandler.CreateRecurring)
				r.Post("/cancel/{id}", h.BookingHandler.Cancel)
			})
			r.Route("/wallet", func(r chi.Router) {
				r.Post("/deposit", h.WalletHandler.RequestDeposit)
				r.Get("/transactions", h.WalletHandler.Transactions)
			})
			r.Post("/tournaments/{id}/join", h.TournamentHandler.Join)
			r.Route("/members/me", func(r chi.Router) {
				r.Get("/", h.MemberHandler.Profile)
				r.Put("/avatar", h.MemberHandler.UpdateAvatar)
				r.Get("/rank-history", h.MemberHandler.RankHistory)
			})
			r.Route("/notifications", func(r chi.Router) {
				r.Get("/", h.MemberHandler.List)
				r.Post("/{id}/read", h.MemberHandler.MarkRead)
				r.Post("/read-all", h.MemberHandler.MarkAllRead)
			})

			r.Group(func(r chi.Router) {
				r.Use(auth.RequireAdmin)

				r.Post("/courts", h.CourtHandler.Create)
				r.Put("/courts/{id}", h.CourtHandler.Update)
				r.Post("/tournaments", h.TournamentHandler.Create)
				r.Post("/tournaments/{id}/generate-schedule", h.TournamentHandler.GenerateSchedule)
				r.Post("/matches/{id}/result", h.TournamentHandler.RecordResult)
				r.Post("/admin/wallet/approve/{id}", h.WalletHandler.ApproveDeposit)
			})
		})
	})

	return r
}

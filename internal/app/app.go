package app

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/courtclub/backend/internal/config"
	"github.com/courtclub/backend/internal/handlers"
	"github.com/courtclub/backend/internal/notify"
	"github.com/courtclub/backend/internal/pg"
	"github.com/courtclub/backend/internal/reaper"
	"github.com/courtclub/backend/internal/repo"
	"github.com/courtclub/backend/internal/service"
	"github.com/courtclub/backend/pkg/auth"
	"github.com/courtclub/backend/pkg/logger"
	"github.com/courtclub/backend/pkg/mq"
)

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg    *config.Config
	api    *handlers.Handlers
	srv    *service.Services
	repo   *repo.Repositories
	reaper *reaper.Service
	pub    *mq.Publisher

	errCh chan error
	wg    sync.WaitGroup
	ready bool
}

func New() *Application {
	return &Application{
		errCh: make(chan error),
	}
}

func (a *Application) Start(ctx context.Context) error {
	cfg := config.New()

	err := logger.InitLogger(cfg)
	if err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}

	pool, err := getPgxpool(ctx, cfg)
	if err != nil {
		zap.L().Error("build pgx pool failed: ", zap.Error(err))
		return fmt.Errorf("can't build pgx pool: %w", err)
	}
	if err := pg.RunMigrations(pool); err != nil {
		zap.L().Error("migrations failed: ", zap.Error(err))
		return fmt.Errorf("can't run migrations: %w", err)
	}
	txManager := pg.NewTXManager(pool)
	conn := pg.New(pool)

	a.cfg = cfg
	a.repo = repo.New(conn)

	notifier, err := a.buildNotifier(cfg)
	if err != nil {
		zap.L().Error("amqp connect failed: ", zap.Error(err))
		return fmt.Errorf("can't connect to amqp: %w", err)
	}

	jwtService := auth.NewJWTService(cfg.JWTSecret)
	a.srv = service.New(cfg, a.repo, txManager, jwtService, notifier)
	a.api = handlers.New(a.srv, jwtService)
	a.reaper = reaper.New(cfg, a.repo.BookingRepo, notifier)

	if err = a.startHTTPServer(ctx); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}

	a.reaper.Start(ctx)

	a.ready = true
	zap.L().Info("all systems started successfully")
	return nil
}

// buildNotifier wires the AMQP publisher when a broker is configured;
// otherwise notifications are persisted only.
func (a *Application) buildNotifier(cfg *config.Config) (*notify.Service, error) {
	if cfg.AmqpURL == "" {
		zap.L().Info("no amqp url configured, broker publishing disabled")
		return notify.New(a.repo.NotificationRepo, nil), nil
	}

	pub, err := mq.NewPublisher(cfg.AmqpURL, cfg.AmqpExchange)
	if err != nil {
		return nil, err
	}
	a.pub = pub
	return notify.New(a.repo.NotificationRepo, pub), nil
}

func getPgxpool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	cfgpool, err := pgxpool.ParseConfig(cfg.Database)
	if err != nil {
		return nil, err
	}
	dbpool, err := pgxpool.NewWithConfig(ctx, cfgpool)
	if err != nil {
		return nil, err
	}
	if err = dbpool.Ping(ctx); err != nil {
		return nil, err
	}
	return dbpool, nil
}

func (a *Application) startHTTPServer(ctx context.Context) error {
	router := chi.NewRouter()
	a.api.InitRoutes(router)
	server := http.Server{
		Addr:    a.cfg.Address,
		Handler: router,
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(sCtx)
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		zap.L().Info("starting http server on port", zap.String("port", a.cfg.Address))
		if err := server.ListenAndServe(); err != nil {
			a.errCh <- fmt.Errorf("http server exited with error: %w", err)
		}
	}()

	return nil
}

func (a *Application) Wait(ctx context.Context, cancel context.CancelFunc) error {
	var appErr error

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()

		for err := range a.errCh {
			cancel()
			zap.L().Error(err.Error())
			appErr = err
		}
	}()

	<-ctx.Done()
	a.wg.Wait()
	close(a.errCh)
	wg.Wait()

	if a.pub != nil {
		if err := a.pub.Close(); err != nil {
			zap.L().Warn("amqp close failed", zap.Error(err))
		}
	}

	return appErr
}

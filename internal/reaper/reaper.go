package reaper

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/courtclub/backend/internal/config"
)

type BookingRepo interface {
	CancelExpiredHolds(ctx context.Context, now time.Time, limit int) (int64, error)
}

type Notifier interface {
	Broadcast(ctx context.Context, event string, payload any)
}

// Service sweeps expired holds back to Cancelled so abandoned slots return to
// the calendar without any user action. One bounded sweep per tick; a failed
// sweep is logged and retried on the next tick.
type Service struct {
	bookingRepo BookingRepo
	notifier    Notifier

	sweepInterval time.Duration
	sweepLimit    int
}

func New(cfg *config.Config, bookingRepo BookingRepo, notifier Notifier) *Service {
	return &Service{
		bookingRepo:   bookingRepo,
		notifier:      notifier,
		sweepInterval: cfg.HoldSweepInterval,
		sweepLimit:    cfg.HoldSweepLimit,
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("hold reaper started",
		zap.Duration("interval", s.sweepInterval),
		zap.Int("limit", s.sweepLimit))
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("context canceled, stopping hold reaper")
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *Service) sweep(ctx context.Context) {
	reaped, err := s.bookingRepo.CancelExpiredHolds(ctx, time.Now(), s.sweepLimit)
	if err != nil {
		zap.L().Error("failed to sweep expired holds", zap.Error(err))
		return
	}
	if reaped == 0 {
		return
	}

	zap.L().Info("expired holds cancelled", zap.Int64("count", reaped))
	s.notifier.Broadcast(ctx, "calendar.updated", map[string]any{
		"reason":  "holds_expired",
		"expired": reaped,
	})
}

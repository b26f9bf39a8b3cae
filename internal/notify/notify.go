package notify

import (
	"context"

	"go.uber.org/zap"

	"github.com/courtclub/backend/internal/domain"
)

type NotificationRepo interface {
	Create(ctx context.Context, n *domain.Notification) (*domain.Notification, error)
}

// Publisher is the message-broker side of a notification. pkg/mq satisfies it.
type Publisher interface {
	PublishJSON(ctx context.Context, key string, v any) error
}

// Service fans a domain event out to its two sinks: a persisted notification
// row the member sees in the app, and a broker message for live listeners.
// Both sinks are best effort; a failed notification never fails the operation
// that produced it.
type Service struct {
	repo NotificationRepo
	pub  Publisher
}

func New(repo NotificationRepo, pub Publisher) *Service {
	return &Service{repo: repo, pub: pub}
}

func (s *Service) NotifyMember(ctx context.Context, memberID int, message string, severity domain.Severity, title, link string) {
	n, err := s.repo.Create(ctx, &domain.Notification{
		MemberID: memberID,
		Title:    title,
		Message:  message,
		Severity: severity,
		Link:     link,
	})
	if err != nil {
		zap.L().Warn("failed to persist notification",
			zap.Int("member_id", memberID), zap.Error(err))
		return
	}

	if s.pub == nil {
		return
	}
	if err := s.pub.PublishJSON(ctx, "notification.member", n); err != nil {
		zap.L().Warn("failed to publish notification",
			zap.Int("member_id", memberID), zap.Error(err))
	}
}

func (s *Service) Broadcast(ctx context.Context, event string, payload any) {
	if s.pub == nil {
		return
	}
	if err := s.pub.PublishJSON(ctx, event, payload); err != nil {
		zap.L().Warn("failed to broadcast event",
			zap.String("event", event), zap.Error(err))
	}
}

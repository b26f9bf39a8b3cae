package memberservice

import (
	"context"
	"errors"

	"github.com/courtclub/backend/internal/domain"
)

type MemberRepo interface {
	FindByUserID(ctx context.Context, userID string) (*domain.Member, error)
	UpdateAvatar(ctx context.Context, id int, avatarURL string) error
}

type RankHistoryRepo interface {
	ListRankHistoryByMember(ctx context.Context, memberID int) ([]domain.RankHistory, error)
}

type NotificationRepo interface {
	ListByMember(ctx context.Context, memberID int) ([]domain.Notification, error)
	MarkRead(ctx context.Context, id, memberID int) error
	MarkAllRead(ctx context.Context, memberID int) error
}

var ErrMemberNotFound = errors.New("member not found")

type Service struct {
	memberRepo       MemberRepo
	rankHistoryRepo  RankHistoryRepo
	notificationRepo NotificationRepo
}

func New(memberRepo MemberRepo, rankHistoryRepo RankHistoryRepo, notificationRepo NotificationRepo) *Service {
	return &Service{
		memberRepo:       memberRepo,
		rankHistoryRepo:  rankHistoryRepo,
		notificationRepo: notificationRepo,
	}
}

func (s *Service) Profile(ctx context.Context, userID string) (*domain.Member, error) {
	member, err := s.memberRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if member == nil {
		return nil, ErrMemberNotFound
	}
	return member, nil
}

func (s *Service) UpdateAvatar(ctx context.Context, userID, avatarURL string) error {
	member, err := s.Profile(ctx, userID)
	if err != nil {
		return err
	}
	return s.memberRepo.UpdateAvatar(ctx, member.ID, avatarURL)
}

func (s *Service) RankHistory(ctx context.Context, userID string) ([]domain.RankHistory, error) {
	member, err := s.Profile(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.rankHistoryRepo.ListRankHistoryByMember(ctx, member.ID)
}

func (s *Service) Notifications(ctx context.Context, userID string) ([]domain.Notification, error) {
	member, err := s.Profile(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.notificationRepo.ListByMember(ctx, member.ID)
}

func (s *Service) MarkNotificationRead(ctx context.Context, userID string, notificationID int) error {
	member, err := s.Profile(ctx, userID)
	if err != nil {
		return err
	}
	return s.notificationRepo.MarkRead(ctx, notificationID, member.ID)
}

func (s *Service) MarkAllNotificationsRead(ctx context.Context, userID string) error {
	member, err := s.Profile(ctx, userID)
	if err != nil {
		return err
	}
	return s.notificationRepo.MarkAllRead(ctx, member.ID)
}

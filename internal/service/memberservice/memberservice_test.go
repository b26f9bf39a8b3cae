package memberservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/courtclub/backend/internal/domain"
)

func NewMock(t *testing.T) (*Service, *MockMemberRepo, *MockRankHistoryRepo, *MockNotificationRepo) {
	ctrl := gomock.NewController(t)
	memberRepo := NewMockMemberRepo(ctrl)
	rankHistoryRepo := NewMockRankHistoryRepo(ctrl)
	notificationRepo := NewMockNotificationRepo(ctrl)
	service := New(memberRepo, rankHistoryRepo, notificationRepo)
	defer ctrl.Finish()
	return service, memberRepo, rankHistoryRepo, notificationRepo
}

func TestProfile(t *testing.T) {
	service, memberRepo, _, _ := NewMock(t)

	tests := []struct {
		name          string
		prepareMock   func()
		expectedError error
	}{
		{
			name: "Existing profile",
			prepareMock: func() {
				memberRepo.EXPECT().FindByUserID(gomock.Any(), "user-1").Return(&domain.Member{
					ID:       7,
					FullName: "Test User",
				}, nil)
			},
		},
		{
			name: "No profile for user",
			prepareMock: func() {
				memberRepo.EXPECT().FindByUserID(gomock.Any(), "user-1").Return(nil, nil)
			},
			expectedError: ErrMemberNotFound,
		},
		{
			name: "Database error",
			prepareMock: func() {
				memberRepo.EXPECT().FindByUserID(gomock.Any(), "user-1").Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			member, err := service.Profile(context.Background(), "user-1")
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				assert.Nil(t, member)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 7, member.ID)
			}
		})
	}
}

func TestUpdateAvatar(t *testing.T) {
	service, memberRepo, _, _ := NewMock(t)

	t.Run("Avatar is stored on the resolved member", func(t *testing.T) {
		memberRepo.EXPECT().FindByUserID(gomock.Any(), "user-1").Return(&domain.Member{ID: 7}, nil)
		memberRepo.EXPECT().UpdateAvatar(gomock.Any(), 7, "/avatars/7.png").Return(nil)

		err := service.UpdateAvatar(context.Background(), "user-1", "/avatars/7.png")
		assert.NoError(t, err)
	})

	t.Run("No profile", func(t *testing.T) {
		memberRepo.EXPECT().FindByUserID(gomock.Any(), "user-1").Return(nil, nil)

		err := service.UpdateAvatar(context.Background(), "user-1", "/avatars/7.png")
		assert.ErrorIs(t, err, ErrMemberNotFound)
	})
}

func TestRankHistory(t *testing.T) {
	service, memberRepo, rankHistoryRepo, _ := NewMock(t)

	memberRepo.EXPECT().FindByUserID(gomock.Any(), "user-1").Return(&domain.Member{ID: 7}, nil)
	rankHistoryRepo.EXPECT().ListRankHistoryByMember(gomock.Any(), 7).Return([]domain.RankHistory{
		{ID: 1, MemberID: 7, OldRank: 1.0, NewRank: 1.1, Reason: "Match Win"},
	}, nil)

	history, err := service.RankHistory(context.Background(), "user-1")
	assert.NoError(t, err)
	assert.Len(t, history, 1)
	assert.Equal(t, "Match Win", history[0].Reason)
}

func TestNotifications(t *testing.T) {
	service, memberRepo, _, notificationRepo := NewMock(t)

	t.Run("Inbox listing", func(t *testing.T) {
		memberRepo.EXPECT().FindByUserID(gomock.Any(), "user-1").Return(&domain.Member{ID: 7}, nil)
		notificationRepo.EXPECT().ListByMember(gomock.Any(), 7).Return([]domain.Notification{
			{ID: 1, MemberID: 7, Title: "Booking confirmed"},
		}, nil)

		list, err := service.Notifications(context.Background(), "user-1")
		assert.NoError(t, err)
		assert.Len(t, list, 1)
	})

	t.Run("Mark one read is scoped to the member", func(t *testing.T) {
		memberRepo.EXPECT().FindByUserID(gomock.Any(), "user-1").Return(&domain.Member{ID: 7}, nil)
		notificationRepo.EXPECT().MarkRead(gomock.Any(), 3, 7).Return(nil)

		err := service.MarkNotificationRead(context.Background(), "user-1", 3)
		assert.NoError(t, err)
	})

	t.Run("Mark all read", func(t *testing.T) {
		memberRepo.EXPECT().FindByUserID(gomock.Any(), "user-1").Return(&domain.Member{ID: 7}, nil)
		notificationRepo.EXPECT().MarkAllRead(gomock.Any(), 7).Return(nil)

		err := service.MarkAllNotificationsRead(context.Background(), "user-1")
		assert.NoError(t, err)
	})
}

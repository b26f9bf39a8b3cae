package courtservice

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/courtclub/backend/internal/domain"
)

func NewMock(t *testing.T) (*Service, *MockCourtRepo) {
	ctrl := gomock.NewController(t)
	courtRepo := NewMockCourtRepo(ctrl)
	service := New(courtRepo)
	defer ctrl.Finish()
	return service, courtRepo
}

func TestGet(t *testing.T) {
	service, courtRepo := NewMock(t)

	t.Run("Existing court", func(t *testing.T) {
		courtRepo.EXPECT().FindByID(gomock.Any(), 3).Return(&domain.Court{ID: 3, Name: "Court 1"}, nil)

		court, err := service.Get(context.Background(), 3)
		assert.NoError(t, err)
		assert.Equal(t, "Court 1", court.Name)
	})

	t.Run("Unknown court", func(t *testing.T) {
		courtRepo.EXPECT().FindByID(gomock.Any(), 99).Return(nil, nil)

		court, err := service.Get(context.Background(), 99)
		assert.ErrorIs(t, err, ErrNotFound)
		assert.Nil(t, court)
	})
}

func TestCreate(t *testing.T) {
	service, courtRepo := NewMock(t)

	tests := []struct {
		name          string
		courtName     string
		price         decimal.Decimal
		prepareMock   func()
		expectedError error
	}{
		{
			name:      "New courts start active",
			courtName: "Court 1",
			price:     decimal.NewFromInt(50_000),
			prepareMock: func() {
				courtRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, c *domain.Court) (*domain.Court, error) {
						assert.True(t, c.IsActive)
						c.ID = 3
						return c, nil
					},
				)
			},
		},
		{
			name:          "Empty name",
			courtName:     "",
			price:         decimal.NewFromInt(50_000),
			prepareMock:   func() {},
			expectedError: ErrInvalidCourt,
		},
		{
			name:          "Non-positive price",
			courtName:     "Court 1",
			price:         decimal.Zero,
			prepareMock:   func() {},
			expectedError: ErrInvalidCourt,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			court, err := service.Create(context.Background(), tt.courtName, tt.price)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, court)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, court)
			}
		})
	}
}

func TestUpdate(t *testing.T) {
	service, courtRepo := NewMock(t)

	t.Run("Existing court is updated", func(t *testing.T) {
		courtRepo.EXPECT().FindByID(gomock.Any(), 3).Return(&domain.Court{
			ID:           3,
			Name:         "Court 1",
			PricePerHour: decimal.NewFromInt(50_000),
			IsActive:     true,
		}, nil)
		courtRepo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c *domain.Court) error {
				assert.Equal(t, "Court 1 (resurfaced)", c.Name)
				assert.False(t, c.IsActive)
				return nil
			},
		)

		court, err := service.Update(context.Background(), 3, "Court 1 (resurfaced)", decimal.NewFromInt(60_000), false)
		assert.NoError(t, err)
		assert.True(t, court.PricePerHour.Equal(decimal.NewFromInt(60_000)))
	})

	t.Run("Unknown court", func(t *testing.T) {
		courtRepo.EXPECT().FindByID(gomock.Any(), 99).Return(nil, nil)

		court, err := service.Update(context.Background(), 99, "Court X", decimal.NewFromInt(50_000), true)
		assert.ErrorIs(t, err, ErrNotFound)
		assert.Nil(t, court)
	})

	t.Run("Invalid payload skips the lookup", func(t *testing.T) {
		court, err := service.Update(context.Background(), 3, "", decimal.NewFromInt(50_000), true)
		assert.ErrorIs(t, err, ErrInvalidCourt)
		assert.Nil(t, court)
	})
}

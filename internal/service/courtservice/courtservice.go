package courtservice

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/courtclub/backend/internal/domain"
)

type CourtRepo interface {
	List(ctx context.Context) ([]domain.Court, error)
	FindByID(ctx context.Context, id int) (*domain.Court, error)
	Create(ctx context.Context, court *domain.Court) (*domain.Court, error)
	Update(ctx context.Context, court *domain.Court) error
}

var (
	ErrNotFound     = errors.New("court not found")
	ErrInvalidCourt = errors.New("court needs a name and a positive hourly price")
)

type Service struct {
	courtRepo CourtRepo
}

func New(courtRepo CourtRepo) *Service {
	return &Service{courtRepo: courtRepo}
}

func (s *Service) List(ctx context.Context) ([]domain.Court, error) {
	return s.courtRepo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id int) (*domain.Court, error) {
	court, err := s.courtRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if court == nil {
		return nil, ErrNotFound
	}
	return court, nil
}

func (s *Service) Create(ctx context.Context, name string, pricePerHour decimal.Decimal) (*domain.Court, error) {
	if name == "" || !pricePerHour.IsPositive() {
		return nil, ErrInvalidCourt
	}
	return s.courtRepo.Create(ctx, &domain.Court{
		Name:         name,
		PricePerHour: pricePerHour,
		IsActive:     true,
	})
}

func (s *Service) Update(ctx context.Context, id int, name string, pricePerHour decimal.Decimal, isActive bool) (*domain.Court, error) {
	if name == "" || !pricePerHour.IsPositive() {
		return nil, ErrInvalidCourt
	}
	court, err := s.courtRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if court == nil {
		return nil, ErrNotFound
	}

	court.Name = name
	court.PricePerHour = pricePerHour
	court.IsActive = isActive
	if err := s.courtRepo.Update(ctx, court); err != nil {
		return nil, err
	}
	return court, nil
}

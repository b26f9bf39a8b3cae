package tierservice

import (
	"github.com/shopspring/decimal"

	"github.com/courtclub/backend/internal/domain"
)

// Thresholds are the cumulative-spend boundaries for each paid tier, in the
// smallest currency unit.
type Thresholds struct {
	Silver  decimal.Decimal
	Gold    decimal.Decimal
	Diamond decimal.Decimal
}

func DefaultThresholds() Thresholds {
	return Thresholds{
		Silver:  decimal.NewFromInt(2_000_000),
		Gold:    decimal.NewFromInt(5_000_000),
		Diamond: decimal.NewFromInt(10_000_000),
	}
}

type Service struct {
	thresholds Thresholds
}

func New(thresholds Thresholds) *Service {
	return &Service{thresholds: thresholds}
}

// TierFor maps cumulative spend to the highest tier whose threshold is met.
func (s *Service) TierFor(totalSpent decimal.Decimal) domain.Tier {
	switch {
	case totalSpent.GreaterThanOrEqual(s.thresholds.Diamond):
		return domain.TierDiamond
	case totalSpent.GreaterThanOrEqual(s.thresholds.Gold):
		return domain.TierGold
	case totalSpent.GreaterThanOrEqual(s.thresholds.Silver):
		return domain.TierSilver
	default:
		return domain.TierStandard
	}
}

func (s *Service) IsVip(tier domain.Tier) bool {
	return tier == domain.TierGold || tier == domain.TierDiamond
}

package tierservice

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/courtclub/backend/internal/domain"
)

func TestTierFor(t *testing.T) {
	service := New(DefaultThresholds())

	tests := []struct {
		name       string
		totalSpent int64
		expected   domain.Tier
	}{
		{name: "Zero spend stays Standard", totalSpent: 0, expected: domain.TierStandard},
		{name: "Just below Silver threshold", totalSpent: 1_999_999, expected: domain.TierStandard},
		{name: "Exactly Silver threshold", totalSpent: 2_000_000, expected: domain.TierSilver},
		{name: "Between Silver and Gold", totalSpent: 4_999_999, expected: domain.TierSilver},
		{name: "Exactly Gold threshold", totalSpent: 5_000_000, expected: domain.TierGold},
		{name: "Between Gold and Diamond", totalSpent: 9_999_999, expected: domain.TierGold},
		{name: "Exactly Diamond threshold", totalSpent: 10_000_000, expected: domain.TierDiamond},
		{name: "Far above Diamond", totalSpent: 50_000_000, expected: domain.TierDiamond},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := service.TierFor(decimal.NewFromInt(tt.totalSpent))
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestTierForCustomThresholds(t *testing.T) {
	service := New(Thresholds{
		Silver:  decimal.NewFromInt(100),
		Gold:    decimal.NewFromInt(200),
		Diamond: decimal.NewFromInt(300),
	})

	assert.Equal(t, domain.TierStandard, service.TierFor(decimal.NewFromInt(99)))
	assert.Equal(t, domain.TierSilver, service.TierFor(decimal.NewFromInt(150)))
	assert.Equal(t, domain.TierGold, service.TierFor(decimal.NewFromInt(299)))
	assert.Equal(t, domain.TierDiamond, service.TierFor(decimal.NewFromInt(300)))
}

func TestIsVip(t *testing.T) {
	service := New(DefaultThresholds())

	tests := []struct {
		tier     domain.Tier
		expected bool
	}{
		{tier: domain.TierStandard, expected: false},
		{tier: domain.TierSilver, expected: false},
		{tier: domain.TierGold, expected: true},
		{tier: domain.TierDiamond, expected: true},
	}

	for _, tt := range tests {
		t.Run(string(tt.tier), func(t *testing.T) {
			assert.Equal(t, tt.expected, service.IsVip(tt.tier))
		})
	}
}

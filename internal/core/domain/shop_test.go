package domain_test

import (
	"testing"

	"github.com/nankya-elsa/BSE-25-6-MALL-RENT-MANAGEMENT-SYSTEM/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestShopOccupiedBy(t *testing.T) {
	tenantA := "tenant-a"
	tenantB := "tenant-b"

	tests := []struct {
		name     string
		shop     domain.Shop
		tenantID string
		want     bool
	}{
		{
			name:     "current occupant matches",
			shop:     domain.Shop{TenantID: &tenantA, IsOccupied: true},
			tenantID: tenantA,
			want:     true,
		},
		{
			name:     "reassigned to another tenant",
			shop:     domain.Shop{TenantID: &tenantB, IsOccupied: true},
			tenantID: tenantA,
			want:     false,
		},
		{
			name:     "vacated shop",
			shop:     domain.Shop{TenantID: nil, IsOccupied: false},
			tenantID: tenantA,
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.shop.OccupiedBy(tt.tenantID))
		})
	}
}

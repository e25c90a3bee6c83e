package mapping

import (
	"github.com/nankya-elsa/BSE-25-6-MALL-RENT-MANAGEMENT-SYSTEM/internal/core/domain"
	"github.com/nankya-elsa/BSE-25-6-MALL-RENT-MANAGEMENT-SYSTEM/internal/models"
)

// ToModelShop converts a domain.Shop to its DB model.
func ToModelShop(d domain.Shop) models.Shop {
	return models.Shop{
		ShopID:      d.ShopID,
		ShopNumber:  d.ShopNumber,
		TenantID:    d.TenantID,
		MonthlyRent: d.MonthlyRent,
		ShopType:    d.ShopType,
		FloorNumber: d.FloorNumber,
		IsOccupied:  d.IsOccupied,
		TotalPaid:   d.TotalPaid,
		Balance:     d.Balance,
		NextDueDate: d.NextDueDate,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainShop converts a models.Shop from the DB to a domain.Shop.
func ToDomainShop(m models.Shop) domain.Shop {
	return domain.Shop{
		ShopID:      m.ShopID,
		ShopNumber:  m.ShopNumber,
		TenantID:    m.TenantID,
		MonthlyRent: m.MonthlyRent,
		ShopType:    m.ShopType,
		FloorNumber: m.FloorNumber,
		IsOccupied:  m.IsOccupied,
		TotalPaid:   m.TotalPaid,
		Balance:     m.Balance,
		NextDueDate: m.NextDueDate,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainShopSlice converts a slice of shop models.
func ToDomainShopSlice(ms []models.Shop) []domain.Shop {
	ds := make([]domain.Shop, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainShop(m)
	}
	return ds
}

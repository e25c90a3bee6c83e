package dto

import (
	"time"

	"github.com/nankya-elsa/BSE-25-6-MALL-RENT-MANAGEMENT-SYSTEM/internal/core/domain"
	"github.com/nankya-elsa/BSE-25-6-MALL-RENT-MANAGEMENT-SYSTEM/internal/utils/rentcalc"
	"github.com/shopspring/decimal"
)

// CreateShopRequest defines the data needed to register a new shop unit.
type CreateShopRequest struct {
	ShopNumber  string          `json:"shopNumber" binding:"required"`
	MonthlyRent decimal.Decimal `json:"monthlyRent" binding:"required"`
	ShopType    string          `json:"shopType"`
	FloorNumber int             `json:"floorNumber"`
}

// AssignTenantRequest names the tenant to move into a shop.
type AssignTenantRequest struct {
	TenantID string `json:"tenantID" binding:"required"`
}

// ShopResponse is the shop snapshot returned to clients, including the
// derived payment status string.
type ShopResponse struct {
	ShopID        string          `json:"shopID"`
	ShopNumber    string          `json:"shopNumber"`
	TenantID      *string         `json:"tenantID,omitempty"`
	MonthlyRent   decimal.Decimal `json:"monthlyRent"`
	ShopType      string          `json:"shopType"`
	FloorNumber   int             `json:"floorNumber"`
	IsOccupied    bool            `json:"isOccupied"`
	TotalPaid     decimal.Decimal `json:"totalPaid"`
	Balance       decimal.Decimal `json:"balance"`
	NextDueDate   *time.Time      `json:"nextDueDate,omitempty"`
	PaymentStatus string          `json:"paymentStatus"`
	CreatedAt     time.Time       `json:"createdAt"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
}

// ToShopResponse converts a domain.Shop to its response DTO, deriving the
// payment status as of today.
func ToShopResponse(shop *domain.Shop, today time.Time) ShopResponse {
	return ShopResponse{
		ShopID:        shop.ShopID,
		ShopNumber:    shop.ShopNumber,
		TenantID:      shop.TenantID,
		MonthlyRent:   shop.MonthlyRent,
		ShopType:      shop.ShopType,
		FloorNumber:   shop.FloorNumber,
		IsOccupied:    shop.IsOccupied,
		TotalPaid:     shop.TotalPaid,
		Balance:       shop.Balance,
		NextDueDate:   shop.NextDueDate,
		PaymentStatus: rentcalc.StatusFor(shop.Balance, shop.NextDueDate, today).String(),
		CreatedAt:     shop.CreatedAt,
		LastUpdatedAt: shop.LastUpdatedAt,
	}
}

// ToListShopResponse converts a slice of shops.
func ToListShopResponse(shops []domain.Shop, today time.Time) []ShopResponse {
	res := make([]ShopResponse, len(shops))
	for i := range shops {
		res[i] = ToShopResponse(&shops[i], today)
	}
	return res
}

// ListShopsParams defines query parameters for listing shops.
type ListShopsParams struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}

// ListShopsResponse wraps the list of shops.
type ListShopsResponse struct {
	Shops []ShopResponse `json:"shops"`
}

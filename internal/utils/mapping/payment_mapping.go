package mapping

import (
	"github.com/nankya-elsa/BSE-25-6-MALL-RENT-MANAGEMENT-SYSTEM/internal/core/domain"
	"github.com/nankya-elsa/BSE-25-6-MALL-RENT-MANAGEMENT-SYSTEM/internal/models"
)

// ToModelPayment converts a domain.Payment to its DB model.
func ToModelPayment(d domain.Payment) models.Payment {
	return models.Payment{
		PaymentID:     d.PaymentID,
		ShopID:        d.ShopID,
		TenantID:      d.TenantID,
		Amount:        d.Amount,
		Method:        string(d.Method),
		Status:        string(d.Status),
		PaymentMonth:  d.PaymentMonth,
		Reference:     d.Reference,
		BalanceBefore: d.BalanceBefore,
		BalanceAfter:  d.BalanceAfter,
		PaymentDate:   d.PaymentDate,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainPayment converts a models.Payment from the DB to a domain.Payment.
func ToDomainPayment(m models.Payment) domain.Payment {
	return domain.Payment{
		PaymentID:     m.PaymentID,
		ShopID:        m.ShopID,
		TenantID:      m.TenantID,
		Amount:        m.Amount,
		Method:        domain.PaymentMethod(m.Method),
		Status:        domain.PaymentState(m.Status),
		PaymentMonth:  m.PaymentMonth,
		Reference:     m.Reference,
		BalanceBefore: m.BalanceBefore,
		BalanceAfter:  m.BalanceAfter,
		PaymentDate:   m.PaymentDate,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainPaymentSlice converts a slice of payment models.
func ToDomainPaymentSlice(ms []models.Payment) []domain.Payment {
	ds := make([]domain.Payment, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainPayment(m)
	}
	return ds
}

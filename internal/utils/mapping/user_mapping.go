package mapping

import (
	"github.com/nankya-elsa/BSE-25-6-MALL-RENT-MANAGEMENT-SYSTEM/internal/core/domain"
	"github.com/nankya-elsa/BSE-25-6-MALL-RENT-MANAGEMENT-SYSTEM/internal/models"
)

// ToModelUser converts a domain.User to its DB model. The password hash is
// not part of the domain entity and is set separately by the repository.
func ToModelUser(d domain.User) models.User {
	return models.User{
		UserID:               d.UserID,
		Email:                d.Email,
		FullName:             d.FullName,
		PhoneNumber:          d.PhoneNumber,
		UserType:             models.UserType(d.UserType),
		IsStaff:              d.IsStaff,
		HasTemporaryPassword: d.HasTemporaryPassword,
		AuditFields:          ToModelAuditFields(d.AuditFields),
		DeletedAt:            d.DeletedAt,
	}
}

// ToDomainUser converts a models.User from the DB to a domain.User.
func ToDomainUser(m models.User) domain.User {
	return domain.User{
		UserID:               m.UserID,
		Email:                m.Email,
		FullName:             m.FullName,
		PhoneNumber:          m.PhoneNumber,
		UserType:             domain.UserType(m.UserType),
		IsStaff:              m.IsStaff,
		HasTemporaryPassword: m.HasTemporaryPassword,
		AuditFields:          ToDomainAuditFields(m.AuditFields),
		DeletedAt:            m.DeletedAt,
	}
}

// ToDomainUserSlice converts a slice of user models.
func ToDomainUserSlice(ms []models.User) []domain.User {
	ds := make([]domain.User, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainUser(m)
	}
	return ds
}

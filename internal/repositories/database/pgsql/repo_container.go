package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/nankya-elsa/BSE-25-6-MALL-RENT-MANAGEMENT-SYSTEM/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	userRepo := newPgxUserRepository(dbPool)
	shopRepo := newPgxShopRepository(dbPool)
	paymentRepo := newPgxPaymentRepository(dbPool, shopRepo)
	profileRequestRepo := newPgxProfileRequestRepository(dbPool)
	reportingRepo := newPgxReportingRepository(dbPool)

	return portsrepo.RepositoryProvider{
		UserRepo:           userRepo,
		ShopRepo:           shopRepo,
		PaymentRepo:        paymentRepo,
		ProfileRequestRepo: profileRequestRepo,
		ReportingRepo:      reportingRepo,
	}
}

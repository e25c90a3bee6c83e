package services

import (
	portsrepo "github.com/nankya-elsa/BSE-25-6-MALL-RENT-MANAGEMENT-SYSTEM/internal/core/ports/repositories"
	portssvc "github.com/nankya-elsa/BSE-25-6-MALL-RENT-MANAGEMENT-SYSTEM/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.User = NewUserService(repos.UserRepo)
	container.Shop = NewShopService(repos.ShopRepo, repos.UserRepo)
	container.Payment = NewPaymentService(repos.PaymentRepo, repos.ShopRepo)
	container.ProfileRequest = NewProfileRequestService(repos.ProfileRequestRepo, repos.UserRepo)
	container.Reporting = NewReportingService(repos.ReportingRepo)

	return container
}

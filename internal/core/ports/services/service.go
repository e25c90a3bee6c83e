package services

// ServiceContainer bundles all service facades for handler wiring.
type ServiceContainer struct {
	User           UserSvcFacade
	Shop           ShopSvcFacade
	Payment        PaymentSvcFacade
	ProfileRequest ProfileRequestSvcFacade
	Reporting      ReportingSvcFacade
}

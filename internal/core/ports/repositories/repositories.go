package repositories

// RepositoryProvider bundles the concrete repositories handed to the
// service container at startup.
type RepositoryProvider struct {
	UserRepo           UserRepository
	ShopRepo           ShopRepositoryWithTx
	PaymentRepo        PaymentRepository
	ProfileRequestRepo ProfileChangeRequestRepository
	ReportingRepo      ReportingRepository
}

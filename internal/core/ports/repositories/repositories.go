package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	MotorcycleRepo MotorcycleRepositoryFacade
	CustomerRepo   CustomerRepositoryFacade
	RentalRepo     RentalRepositoryFacade
	FinanceRepo    FinanceRepositoryFacade
	UserRepo       UserRepositoryFacade
}

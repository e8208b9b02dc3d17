package services

import (
	portsrepo "github.com/sjrent/sjrent_backend/internal/core/ports/repositories"
	portssvc "github.com/sjrent/sjrent_backend/internal/core/ports/services"
	"github.com/sjrent/sjrent_backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Motorcycle = NewMotorcycleService(repos.MotorcycleRepo, repos.RentalRepo)
	container.Customer = NewCustomerService(repos.CustomerRepo)
	container.Rental = NewRentalService(repos.RentalRepo, repos.MotorcycleRepo, repos.CustomerRepo)
	container.Finance = NewFinanceService(repos.FinanceRepo, repos.RentalRepo, repos.MotorcycleRepo)
	container.User = NewUserService(repos.UserRepo)
	container.Auth = NewAuthService(cfg, container.User)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.MotorcycleSvcFacade = (*motorcycleService)(nil)
	_ portssvc.RentalSvcFacade     = (*rentalService)(nil)
	_ portssvc.FinanceSvcFacade    = (*financeService)(nil)
)

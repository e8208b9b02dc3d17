package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/sjrent/sjrent_backend/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		MotorcycleRepo: newPgxMotorcycleRepository(dbPool),
		CustomerRepo:   newPgxCustomerRepository(dbPool),
		RentalRepo:     newPgxRentalRepository(dbPool),
		FinanceRepo:    newPgxFinanceRepository(dbPool),
		UserRepo:       newPgxUserRepository(dbPool),
	}
}

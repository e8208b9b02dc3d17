package repositories

import (
	"context"
	"time"

	"github.com/sjrent/sjrent_backend/internal/core/domain"
)

// MotorcycleReader defines read operations for motorcycle data
type MotorcycleReader interface {
	// FindMotorcycleByID retrieves a specific motorcycle by its unique identifier.
	FindMotorcycleByID(ctx context.Context, motorcycleID string) (*domain.Motorcycle, error)

	// ListMotorcycles retrieves a paginated list of motorcycles using token-based pagination,
	// optionally filtered by status. It returns the motorcycles, a token for the next page, and an error.
	ListMotorcycles(ctx context.Context, limit int, nextToken *string, status *domain.MotorcycleStatus) ([]domain.Motorcycle, *string, error)

	// CountMotorcyclesByStatus returns the number of motorcycles currently in the given status.
	CountMotorcyclesByStatus(ctx context.Context, status domain.MotorcycleStatus) (int, error)
}

// MotorcycleWriter defines write operations for motorcycle data
type MotorcycleWriter interface {
	// SaveMotorcycle persists a new motorcycle.
	SaveMotorcycle(ctx context.Context, motorcycle domain.Motorcycle) error

	// UpdateMotorcycle updates the details of an existing motorcycle.
	UpdateMotorcycle(ctx context.Context, motorcycle domain.Motorcycle) error

	// UpdateMotorcycleStatus transitions a motorcycle to the given status.
	UpdateMotorcycleStatus(ctx context.Context, motorcycleID string, status domain.MotorcycleStatus, updatedByUserID string, updatedAt time.Time) error

	// DeleteMotorcycle removes a motorcycle from the fleet.
	DeleteMotorcycle(ctx context.Context, motorcycleID string) error
}

// MotorcycleRepositoryFacade combines all motorcycle-related repository interfaces
type MotorcycleRepositoryFacade interface {
	MotorcycleReader
	MotorcycleWriter
}

// MotorcycleRepositoryWithTx extends MotorcycleRepositoryFacade with transaction capabilities
type MotorcycleRepositoryWithTx interface {
	MotorcycleRepositoryFacade
	TransactionManager
}

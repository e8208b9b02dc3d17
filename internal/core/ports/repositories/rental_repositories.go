package repositories

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sjrent/sjrent_backend/internal/core/domain"
)

// RentalReader defines read operations for rental data
type RentalReader interface {
	// FindRentalByID retrieves a specific rental by its unique identifier,
	// with its motorcycle and customer summaries populated.
	FindRentalByID(ctx context.Context, rentalID string) (*domain.Rental, error)

	// ListRentals retrieves a paginated list of rentals using token-based pagination,
	// optionally filtered by status. It returns the rentals, a token for the next page, and an error.
	ListRentals(ctx context.Context, limit int, nextToken *string, status *domain.RentalStatus) ([]domain.Rental, *string, error)

	// ListOpenRentalsByMotorcycle retrieves the ACTIVE and OVERDUE rentals for a motorcycle.
	ListOpenRentalsByMotorcycle(ctx context.Context, motorcycleID string) ([]domain.Rental, error)

	// ListOverdueRentals retrieves every rental currently in OVERDUE, ordered by
	// planned end date ascending.
	ListOverdueRentals(ctx context.Context) ([]domain.Rental, error)

	// CountRentalsByStatus returns the number of rentals currently in the given status.
	CountRentalsByStatus(ctx context.Context, status domain.RentalStatus) (int, error)
}

// RentalWriter defines write operations for rental data.
// The multi-step operations run inside a single database transaction so the
// rental, the motorcycle status and the ledger entry move together.
type RentalWriter interface {
	// SaveRental persists a new rental, transitions the motorcycle to RENTED and,
	// when depositEntry is non-nil, records the deposit income entry. The
	// motorcycle row is locked for the duration of the transaction; if it is not
	// AVAILABLE the whole operation fails with a conflict error.
	SaveRental(ctx context.Context, rental domain.Rental, depositEntry *domain.Income) error

	// CompleteRental closes a rental: sets it COMPLETED with the given end date and
	// total amount, returns the motorcycle to AVAILABLE and, when finalPaymentEntry
	// is non-nil, records the remaining payment income. The rental row is locked;
	// if it is not open the operation fails with a conflict error.
	CompleteRental(ctx context.Context, rentalID string, endDate time.Time, totalAmount decimal.Decimal, finalPaymentEntry *domain.Income, updatedByUserID string, updatedAt time.Time) error

	// CancelRental sets a rental to CANCELLED and returns the motorcycle to
	// AVAILABLE. The rental row is locked; if it is not open the operation fails
	// with a conflict error.
	CancelRental(ctx context.Context, rentalID string, updatedByUserID string, updatedAt time.Time) error

	// MarkOverdueRentals transitions every ACTIVE rental whose planned end date is
	// before asOf to OVERDUE and returns how many rows changed.
	MarkOverdueRentals(ctx context.Context, asOf time.Time, updatedByUserID string, updatedAt time.Time) (int64, error)
}

// RentalRepositoryFacade combines all rental-related repository interfaces
type RentalRepositoryFacade interface {
	RentalReader
	RentalWriter
}

// RentalRepositoryWithTx extends RentalRepositoryFacade with transaction capabilities
type RentalRepositoryWithTx interface {
	RentalRepositoryFacade
	TransactionManager
}

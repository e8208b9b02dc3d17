package services

import (
	"context"

	"github.com/sjrent/sjrent_backend/internal/core/domain"
	"github.com/sjrent/sjrent_backend/internal/dto"
)

// RentalReaderSvc defines read operations for rental data
type RentalReaderSvc interface {
	// GetRentalByID retrieves a specific rental by its ID.
	GetRentalByID(ctx context.Context, rentalID string, requestingUserID string) (*domain.Rental, error)

	// ListRentals retrieves a paginated list of rentals, optionally filtered by status.
	ListRentals(ctx context.Context, requestingUserID string, params dto.ListRentalsParams) (*dto.ListRentalsResponse, error)
}

// RentalWriterSvc defines write operations for rental data
type RentalWriterSvc interface {
	// CreateRental opens a rental on an AVAILABLE motorcycle and records the deposit.
	CreateRental(ctx context.Context, req dto.CreateRentalRequest, creatorUserID string) (*domain.Rental, error)

	// CompleteRental closes an open rental with the agreed total amount and records
	// the remaining payment when one is due.
	CompleteRental(ctx context.Context, rentalID string, req dto.CompleteRentalRequest, requestingUserID string) (*domain.Rental, error)

	// CancelRental cancels an open rental and frees the motorcycle.
	CancelRental(ctx context.Context, rentalID string, requestingUserID string) (*domain.Rental, error)
}

// OverdueSweeperSvc defines the periodic overdue detection operation
type OverdueSweeperSvc interface {
	// SweepOverdueRentals marks every ACTIVE rental past its planned end date as
	// OVERDUE. It returns all rentals in OVERDUE after the sweep together with
	// how many were newly marked.
	SweepOverdueRentals(ctx context.Context, requestingUserID string) ([]domain.Rental, int64, error)
}

// RentalSvcFacade combines all rental-related service interfaces
type RentalSvcFacade interface {
	RentalReaderSvc
	RentalWriterSvc
	OverdueSweeperSvc
}

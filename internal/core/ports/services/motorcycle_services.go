package services

import (
	"context"

	"github.com/sjrent/sjrent_backend/internal/core/domain"
	"github.com/sjrent/sjrent_backend/internal/dto"
)

// MotorcycleReaderSvc defines read operations for fleet data
type MotorcycleReaderSvc interface {
	// GetMotorcycleByID retrieves a specific motorcycle by its ID.
	GetMotorcycleByID(ctx context.Context, motorcycleID string, requestingUserID string) (*domain.Motorcycle, error)

	// ListMotorcycles retrieves a paginated list of motorcycles, optionally filtered by status.
	ListMotorcycles(ctx context.Context, requestingUserID string, params dto.ListMotorcyclesParams) (*dto.ListMotorcyclesResponse, error)
}

// MotorcycleWriterSvc defines write operations for fleet data
type MotorcycleWriterSvc interface {
	// CreateMotorcycle registers a new motorcycle in the fleet.
	CreateMotorcycle(ctx context.Context, req dto.CreateMotorcycleRequest, creatorUserID string) (*domain.Motorcycle, error)

	// UpdateMotorcycle updates motorcycle details.
	UpdateMotorcycle(ctx context.Context, motorcycleID string, req dto.UpdateMotorcycleRequest, requestingUserID string) (*domain.Motorcycle, error)

	// SetMotorcycleStatus transitions a motorcycle to the given status.
	SetMotorcycleStatus(ctx context.Context, motorcycleID string, status domain.MotorcycleStatus, requestingUserID string) (*domain.Motorcycle, error)

	// DeleteMotorcycle removes a motorcycle that has no open rentals.
	DeleteMotorcycle(ctx context.Context, motorcycleID string, requestingUserID string) error
}

// MotorcycleSvcFacade combines all fleet-related service interfaces
type MotorcycleSvcFacade interface {
	MotorcycleReaderSvc
	MotorcycleWriterSvc
}

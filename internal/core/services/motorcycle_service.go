package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/sjrent/sjrent_backend/internal/apperrors"
	"github.com/sjrent/sjrent_backend/internal/core/domain"
	portsrepo "github.com/sjrent/sjrent_backend/internal/core/ports/repositories"
	portssvc "github.com/sjrent/sjrent_backend/internal/core/ports/services"
	"github.com/sjrent/sjrent_backend/internal/dto"
	"github.com/sjrent/sjrent_backend/internal/middleware"
)

// motorcycleService provides fleet registry operations.
type motorcycleService struct {
	motorcycleRepo portsrepo.MotorcycleRepositoryFacade
	rentalRepo     portsrepo.RentalReader
}

// NewMotorcycleService creates a new MotorcycleService.
func NewMotorcycleService(motorcycleRepo portsrepo.MotorcycleRepositoryFacade, rentalRepo portsrepo.RentalReader) portssvc.MotorcycleSvcFacade {
	return &motorcycleService{
		motorcycleRepo: motorcycleRepo,
		rentalRepo:     rentalRepo,
	}
}

var _ portssvc.MotorcycleSvcFacade = (*motorcycleService)(nil)

// CreateMotorcycle registers a new motorcycle, starting in AVAILABLE.
func (s *motorcycleService) CreateMotorcycle(ctx context.Context, req dto.CreateMotorcycleRequest, creatorUserID string) (*domain.Motorcycle, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if creatorUserID == "" {
		return nil, apperrors.ErrUnauthorized
	}
	if !req.DailyRate.IsPositive() {
		return nil, apperrors.NewAppError(400, "daily rate must be positive", apperrors.ErrValidation)
	}

	now := time.Now()
	motorcycle := domain.Motorcycle{
		MotorcycleID: uuid.NewString(),
		Brand:        req.Brand,
		Model:        req.Model,
		Year:         req.Year,
		Color:        req.Color,
		PlateNumber:  req.PlateNumber,
		EngineSize:   req.EngineSize,
		Condition:    req.Condition,
		DailyRate:    req.DailyRate,
		Status:       domain.MotorcycleAvailable,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.motorcycleRepo.SaveMotorcycle(ctx, motorcycle); err != nil {
		logger.Error("Failed to save motorcycle", slog.String("plate_number", req.PlateNumber), slog.String("error", err.Error()))
		return nil, err
	}

	logger.Info("Motorcycle registered", slog.String("motorcycle_id", motorcycle.MotorcycleID), slog.String("plate_number", motorcycle.PlateNumber))
	return &motorcycle, nil
}

// GetMotorcycleByID retrieves a specific motorcycle by its ID.
func (s *motorcycleService) GetMotorcycleByID(ctx context.Context, motorcycleID string, requestingUserID string) (*domain.Motorcycle, error) {
	if requestingUserID == "" {
		return nil, apperrors.ErrUnauthorized
	}
	return s.motorcycleRepo.FindMotorcycleByID(ctx, motorcycleID)
}

// ListMotorcycles retrieves a paginated list of motorcycles.
func (s *motorcycleService) ListMotorcycles(ctx context.Context, requestingUserID string, params dto.ListMotorcyclesParams) (*dto.ListMotorcyclesResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if requestingUserID == "" {
		return nil, apperrors.ErrUnauthorized
	}

	var status *domain.MotorcycleStatus
	if params.Status != nil {
		parsed, err := domain.ParseMotorcycleStatus(*params.Status)
		if err != nil {
			return nil, apperrors.NewAppError(400, err.Error(), apperrors.ErrValidation)
		}
		status = &parsed
	}

	motorcycles, nextToken, err := s.motorcycleRepo.ListMotorcycles(ctx, params.Limit, params.NextToken, status)
	if err != nil {
		logger.Error("Failed to list motorcycles from repository", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to retrieve motorcycles: %w", err)
	}

	resp := dto.ToListMotorcyclesResponse(motorcycles, nextToken)
	return &resp, nil
}

// UpdateMotorcycle updates motorcycle details. Fields left nil are untouched.
func (s *motorcycleService) UpdateMotorcycle(ctx context.Context, motorcycleID string, req dto.UpdateMotorcycleRequest, requestingUserID string) (*domain.Motorcycle, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if requestingUserID == "" {
		return nil, apperrors.ErrUnauthorized
	}

	motorcycle, err := s.motorcycleRepo.FindMotorcycleByID(ctx, motorcycleID)
	if err != nil {
		return nil, err
	}

	if req.Brand != nil {
		motorcycle.Brand = *req.Brand
	}
	if req.Model != nil {
		motorcycle.Model = *req.Model
	}
	if req.Year != nil {
		motorcycle.Year = *req.Year
	}
	if req.Color != nil {
		motorcycle.Color = *req.Color
	}
	if req.PlateNumber != nil {
		motorcycle.PlateNumber = *req.PlateNumber
	}
	if req.EngineSize != nil {
		motorcycle.EngineSize = *req.EngineSize
	}
	if req.Condition != nil {
		motorcycle.Condition = *req.Condition
	}
	if req.DailyRate != nil {
		if !req.DailyRate.IsPositive() {
			return nil, apperrors.NewAppError(400, "daily rate must be positive", apperrors.ErrValidation)
		}
		motorcycle.DailyRate = *req.DailyRate
	}
	motorcycle.LastUpdatedAt = time.Now()
	motorcycle.LastUpdatedBy = requestingUserID

	if err := s.motorcycleRepo.UpdateMotorcycle(ctx, *motorcycle); err != nil {
		logger.Error("Failed to update motorcycle", slog.String("motorcycle_id", motorcycleID), slog.String("error", err.Error()))
		return nil, err
	}

	return motorcycle, nil
}

// SetMotorcycleStatus transitions a motorcycle to the given status. Any
// transition is allowed from this endpoint; rental operations manage the
// AVAILABLE/RENTED pair themselves.
func (s *motorcycleService) SetMotorcycleStatus(ctx context.Context, motorcycleID string, status domain.MotorcycleStatus, requestingUserID string) (*domain.Motorcycle, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if requestingUserID == "" {
		return nil, apperrors.ErrUnauthorized
	}

	motorcycle, err := s.motorcycleRepo.FindMotorcycleByID(ctx, motorcycleID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if err := s.motorcycleRepo.UpdateMotorcycleStatus(ctx, motorcycleID, status, requestingUserID, now); err != nil {
		logger.Error("Failed to update motorcycle status", slog.String("motorcycle_id", motorcycleID), slog.String("status", string(status)), slog.String("error", err.Error()))
		return nil, err
	}

	motorcycle.Status = status
	motorcycle.LastUpdatedAt = now
	motorcycle.LastUpdatedBy = requestingUserID

	logger.Info("Motorcycle status updated", slog.String("motorcycle_id", motorcycleID), slog.String("status", string(status)))
	return motorcycle, nil
}

// DeleteMotorcycle removes a motorcycle. Motorcycles with open rentals are
// protected; close or cancel the rentals first.
func (s *motorcycleService) DeleteMotorcycle(ctx context.Context, motorcycleID string, requestingUserID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if requestingUserID == "" {
		return apperrors.ErrUnauthorized
	}

	if _, err := s.motorcycleRepo.FindMotorcycleByID(ctx, motorcycleID); err != nil {
		return err
	}

	open, err := s.rentalRepo.ListOpenRentalsByMotorcycle(ctx, motorcycleID)
	if err != nil {
		logger.Error("Failed to check open rentals before delete", slog.String("motorcycle_id", motorcycleID), slog.String("error", err.Error()))
		return err
	}
	if len(open) > 0 {
		return apperrors.NewAppError(409, fmt.Sprintf("motorcycle has %d open rental(s)", len(open)), apperrors.ErrConflict)
	}

	if err := s.motorcycleRepo.DeleteMotorcycle(ctx, motorcycleID); err != nil {
		logger.Error("Failed to delete motorcycle", slog.String("motorcycle_id", motorcycleID), slog.String("error", err.Error()))
		return err
	}

	logger.Info("Motorcycle deleted", slog.String("motorcycle_id", motorcycleID))
	return nil
}

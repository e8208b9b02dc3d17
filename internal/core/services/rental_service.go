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

// SweeperUserID is the audit identity used when the overdue sweep runs from the
// scheduler or the CLI rather than an authenticated request.
const SweeperUserID = "system:overdue-sweeper"

// rentalService provides the rental lifecycle operations.
type rentalService struct {
	rentalRepo     portsrepo.RentalRepositoryFacade
	motorcycleRepo portsrepo.MotorcycleRepositoryFacade
	customerRepo   portsrepo.CustomerRepositoryFacade
}

// NewRentalService creates a new RentalService.
func NewRentalService(rentalRepo portsrepo.RentalRepositoryFacade, motorcycleRepo portsrepo.MotorcycleRepositoryFacade, customerRepo portsrepo.CustomerRepositoryFacade) portssvc.RentalSvcFacade {
	return &rentalService{
		rentalRepo:     rentalRepo,
		motorcycleRepo: motorcycleRepo,
		customerRepo:   customerRepo,
	}
}

var _ portssvc.RentalSvcFacade = (*rentalService)(nil)

// depositDescription builds the ledger description for a rental deposit.
func depositDescription(m *domain.Motorcycle) string {
	return fmt.Sprintf("Deposit for rental - %s %s (%s)", m.Brand, m.Model, m.PlateNumber)
}

// rentalPaymentDescription builds the ledger description for a closing payment.
func rentalPaymentDescription(m *domain.MotorcycleSummary) string {
	return fmt.Sprintf("Rental payment - %s %s (%s)", m.Brand, m.Model, m.PlateNumber)
}

// CreateRental opens a rental on an AVAILABLE motorcycle, moves the motorcycle
// to RENTED and records the deposit as income, all in one transaction.
func (s *rentalService) CreateRental(ctx context.Context, req dto.CreateRentalRequest, creatorUserID string) (*domain.Rental, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if creatorUserID == "" {
		return nil, apperrors.ErrUnauthorized
	}
	if !req.PlannedEndDate.After(req.StartDate) {
		return nil, apperrors.NewAppError(400, "planned end date must be after start date", apperrors.ErrValidation)
	}
	if req.Deposit.IsNegative() {
		return nil, apperrors.NewAppError(400, "deposit cannot be negative", apperrors.ErrValidation)
	}

	motorcycle, err := s.motorcycleRepo.FindMotorcycleByID(ctx, req.MotorcycleID)
	if err != nil {
		logger.Warn("Motorcycle lookup failed for CreateRental", slog.String("motorcycle_id", req.MotorcycleID), slog.String("error", err.Error()))
		return nil, err
	}
	// Early check so callers get a clean conflict without opening a transaction.
	// The repository re-checks under a row lock to close the race.
	if motorcycle.Status != domain.MotorcycleAvailable {
		return nil, apperrors.NewAppError(409, fmt.Sprintf("motorcycle %s is not available for rental", motorcycle.PlateNumber), apperrors.ErrConflict)
	}

	customer, err := s.customerRepo.FindCustomerByID(ctx, req.CustomerID)
	if err != nil {
		logger.Warn("Customer lookup failed for CreateRental", slog.String("customer_id", req.CustomerID), slog.String("error", err.Error()))
		return nil, err
	}

	dailyRate := motorcycle.DailyRate
	if req.DailyRate != nil {
		dailyRate = *req.DailyRate
	}
	if !dailyRate.IsPositive() {
		return nil, apperrors.NewAppError(400, "daily rate must be positive", apperrors.ErrValidation)
	}

	now := time.Now()
	rental := domain.Rental{
		RentalID:       uuid.NewString(),
		MotorcycleID:   motorcycle.MotorcycleID,
		CustomerID:     customer.CustomerID,
		StartDate:      req.StartDate,
		PlannedEndDate: req.PlannedEndDate,
		DailyRate:      dailyRate,
		Deposit:        req.Deposit,
		Status:         domain.RentalActive,
		Notes:          req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	var depositEntry *domain.Income
	if req.Deposit.IsPositive() {
		depositEntry = &domain.Income{
			IncomeID:    uuid.NewString(),
			Description: depositDescription(motorcycle),
			Amount:      req.Deposit,
			Category:    domain.IncomeDeposit,
			Source:      customer.Name,
			Date:        req.StartDate,
			RentalID:    &rental.RentalID,
			UserID:      creatorUserID,
			CreatedAt:   now,
		}
	}

	if err := s.rentalRepo.SaveRental(ctx, rental, depositEntry); err != nil {
		logger.Error("Failed to save rental", slog.String("rental_id", rental.RentalID), slog.String("error", err.Error()))
		return nil, err
	}

	rental.Motorcycle = &domain.MotorcycleSummary{
		Brand:       motorcycle.Brand,
		Model:       motorcycle.Model,
		PlateNumber: motorcycle.PlateNumber,
	}
	rental.Customer = &domain.CustomerSummary{
		Name:  customer.Name,
		Phone: customer.Phone,
	}

	logger.Info("Rental created", slog.String("rental_id", rental.RentalID), slog.String("motorcycle_id", rental.MotorcycleID), slog.String("customer_id", rental.CustomerID))
	return &rental, nil
}

// CompleteRental closes an open rental. The deposit already sits in the ledger,
// so only the remainder of the agreed total is recorded as a new payment.
func (s *rentalService) CompleteRental(ctx context.Context, rentalID string, req dto.CompleteRentalRequest, requestingUserID string) (*domain.Rental, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if requestingUserID == "" {
		return nil, apperrors.ErrUnauthorized
	}
	if req.TotalAmount.IsNegative() {
		return nil, apperrors.NewAppError(400, "total amount cannot be negative", apperrors.ErrValidation)
	}

	rental, err := s.rentalRepo.FindRentalByID(ctx, rentalID)
	if err != nil {
		return nil, err
	}
	if rental.Status.IsTerminal() {
		return nil, apperrors.NewAppError(409, fmt.Sprintf("rental is already %s", rental.Status), apperrors.ErrConflict)
	}

	now := time.Now()

	var finalPaymentEntry *domain.Income
	finalPayment := rental.FinalPayment(req.TotalAmount)
	if finalPayment.IsPositive() {
		description := fmt.Sprintf("Rental payment - rental %s", rental.RentalID)
		if rental.Motorcycle != nil {
			description = rentalPaymentDescription(rental.Motorcycle)
		}
		source := ""
		if rental.Customer != nil {
			source = rental.Customer.Name
		}
		finalPaymentEntry = &domain.Income{
			IncomeID:    uuid.NewString(),
			Description: description,
			Amount:      finalPayment,
			Category:    domain.IncomeRentalPayment,
			Source:      source,
			Date:        now,
			RentalID:    &rental.RentalID,
			UserID:      requestingUserID,
			CreatedAt:   now,
		}
	}

	if err := s.rentalRepo.CompleteRental(ctx, rentalID, now, req.TotalAmount, finalPaymentEntry, requestingUserID, now); err != nil {
		logger.Error("Failed to complete rental", slog.String("rental_id", rentalID), slog.String("error", err.Error()))
		return nil, err
	}

	completed, err := s.rentalRepo.FindRentalByID(ctx, rentalID)
	if err != nil {
		return nil, err
	}

	logger.Info("Rental completed",
		slog.String("rental_id", rentalID),
		slog.String("total_amount", req.TotalAmount.String()),
		slog.String("final_payment", finalPayment.String()))
	return completed, nil
}

// CancelRental cancels an open rental and frees the motorcycle. The deposit
// entry, if any, stays in the ledger; refunds are handled as manual entries.
func (s *rentalService) CancelRental(ctx context.Context, rentalID string, requestingUserID string) (*domain.Rental, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if requestingUserID == "" {
		return nil, apperrors.ErrUnauthorized
	}

	rental, err := s.rentalRepo.FindRentalByID(ctx, rentalID)
	if err != nil {
		return nil, err
	}
	if rental.Status.IsTerminal() {
		return nil, apperrors.NewAppError(409, fmt.Sprintf("rental is already %s", rental.Status), apperrors.ErrConflict)
	}

	now := time.Now()
	if err := s.rentalRepo.CancelRental(ctx, rentalID, requestingUserID, now); err != nil {
		logger.Error("Failed to cancel rental", slog.String("rental_id", rentalID), slog.String("error", err.Error()))
		return nil, err
	}

	cancelled, err := s.rentalRepo.FindRentalByID(ctx, rentalID)
	if err != nil {
		return nil, err
	}

	logger.Info("Rental cancelled", slog.String("rental_id", rentalID))
	return cancelled, nil
}

// GetRentalByID retrieves a specific rental by its ID.
func (s *rentalService) GetRentalByID(ctx context.Context, rentalID string, requestingUserID string) (*domain.Rental, error) {
	if requestingUserID == "" {
		return nil, apperrors.ErrUnauthorized
	}
	return s.rentalRepo.FindRentalByID(ctx, rentalID)
}

// ListRentals retrieves a paginated list of rentals.
func (s *rentalService) ListRentals(ctx context.Context, requestingUserID string, params dto.ListRentalsParams) (*dto.ListRentalsResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if requestingUserID == "" {
		return nil, apperrors.ErrUnauthorized
	}

	var status *domain.RentalStatus
	if params.Status != nil {
		parsed, err := domain.ParseRentalStatus(*params.Status)
		if err != nil {
			return nil, apperrors.NewAppError(400, err.Error(), apperrors.ErrValidation)
		}
		status = &parsed
	}

	rentals, nextToken, err := s.rentalRepo.ListRentals(ctx, params.Limit, params.NextToken, status)
	if err != nil {
		logger.Error("Failed to list rentals from repository", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to retrieve rentals: %w", err)
	}

	resp := dto.ToListRentalsResponse(rentals, nextToken)
	return &resp, nil
}

// SweepOverdueRentals marks every ACTIVE rental past its planned end date as
// OVERDUE and returns the full overdue set afterwards. The update is a single
// guarded statement, so concurrent sweeps and in-flight completions cannot
// double-transition a rental.
func (s *rentalService) SweepOverdueRentals(ctx context.Context, requestingUserID string) ([]domain.Rental, int64, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if requestingUserID == "" {
		return nil, 0, apperrors.ErrUnauthorized
	}

	now := time.Now()
	marked, err := s.rentalRepo.MarkOverdueRentals(ctx, now, requestingUserID, now)
	if err != nil {
		logger.Error("Overdue sweep failed", slog.String("error", err.Error()))
		return nil, 0, err
	}

	overdue, err := s.rentalRepo.ListOverdueRentals(ctx)
	if err != nil {
		logger.Error("Failed to list overdue rentals after sweep", slog.String("error", err.Error()))
		return nil, marked, err
	}

	if marked > 0 {
		logger.Info("Overdue sweep marked rentals", slog.Int64("count", marked))
	}
	return overdue, marked, nil
}

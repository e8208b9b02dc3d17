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
)

// financeService provides the income, expense, asset and reporting operations.
type financeService struct {
	BaseService
	financeRepo    portsrepo.FinanceRepositoryFacade
	rentalRepo     portsrepo.RentalReader
	motorcycleRepo portsrepo.MotorcycleReader
}

// NewFinanceService creates a new FinanceService.
func NewFinanceService(financeRepo portsrepo.FinanceRepositoryFacade, rentalRepo portsrepo.RentalReader, motorcycleRepo portsrepo.MotorcycleReader) portssvc.FinanceSvcFacade {
	return &financeService{
		financeRepo:    financeRepo,
		rentalRepo:     rentalRepo,
		motorcycleRepo: motorcycleRepo,
	}
}

var _ portssvc.FinanceSvcFacade = (*financeService)(nil)

// CreateIncome records a manual income entry.
func (s *financeService) CreateIncome(ctx context.Context, req dto.CreateIncomeRequest, creatorUserID string) (*domain.Income, error) {
	logger := s.GetLogger(ctx)

	if creatorUserID == "" {
		return nil, apperrors.ErrUnauthorized
	}
	if !req.Amount.IsPositive() {
		return nil, apperrors.NewAppError(400, "amount must be positive", apperrors.ErrValidation)
	}
	category, err := domain.ParseIncomeCategory(req.Category)
	if err != nil {
		return nil, apperrors.NewAppError(400, err.Error(), apperrors.ErrValidation)
	}

	income := domain.Income{
		IncomeID:    uuid.NewString(),
		Description: req.Description,
		Amount:      req.Amount,
		Category:    category,
		Source:      req.Source,
		Date:        req.Date,
		RentalID:    req.RentalID,
		UserID:      creatorUserID,
		CreatedAt:   time.Now(),
	}

	if err := s.financeRepo.SaveIncome(ctx, income); err != nil {
		logger.Error("Failed to save income entry", slog.String("error", err.Error()))
		return nil, err
	}

	logger.Info("Income recorded", slog.String("income_id", income.IncomeID), slog.String("category", string(category)), slog.String("amount", income.Amount.String()))
	return &income, nil
}

// ListIncomes retrieves a paginated list of income entries.
func (s *financeService) ListIncomes(ctx context.Context, requestingUserID string, params dto.ListIncomesParams) (*dto.ListIncomesResponse, error) {
	logger := s.GetLogger(ctx)

	if requestingUserID == "" {
		return nil, apperrors.ErrUnauthorized
	}

	var category *domain.IncomeCategory
	if params.Category != nil {
		parsed, err := domain.ParseIncomeCategory(*params.Category)
		if err != nil {
			return nil, apperrors.NewAppError(400, err.Error(), apperrors.ErrValidation)
		}
		category = &parsed
	}

	incomes, nextToken, err := s.financeRepo.ListIncomes(ctx, params.Limit, params.NextToken, category)
	if err != nil {
		logger.Error("Failed to list income entries from repository", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to retrieve income entries: %w", err)
	}

	resp := dto.ToListIncomesResponse(incomes, nextToken)
	return &resp, nil
}

// DeleteIncome removes a manual income entry. Entries written by the rental
// lifecycle carry a rental link and cannot be deleted here.
func (s *financeService) DeleteIncome(ctx context.Context, incomeID string, requestingUserID string) error {
	logger := s.GetLogger(ctx)

	if requestingUserID == "" {
		return apperrors.ErrUnauthorized
	}

	income, err := s.financeRepo.FindIncomeByID(ctx, incomeID)
	if err != nil {
		return err
	}
	if income.RentalID != nil {
		return apperrors.NewAppError(409, "income entry belongs to a rental and cannot be deleted", apperrors.ErrConflict)
	}

	if err := s.financeRepo.DeleteIncome(ctx, incomeID); err != nil {
		logger.Error("Failed to delete income entry", slog.String("income_id", incomeID), slog.String("error", err.Error()))
		return err
	}

	logger.Info("Income entry deleted", slog.String("income_id", incomeID))
	return nil
}

// CreateExpense records an expense entry, optionally tied to a motorcycle.
func (s *financeService) CreateExpense(ctx context.Context, req dto.CreateExpenseRequest, creatorUserID string) (*domain.Expense, error) {
	logger := s.GetLogger(ctx)

	if creatorUserID == "" {
		return nil, apperrors.ErrUnauthorized
	}
	if !req.Amount.IsPositive() {
		return nil, apperrors.NewAppError(400, "amount must be positive", apperrors.ErrValidation)
	}
	category, err := domain.ParseExpenseCategory(req.Category)
	if err != nil {
		return nil, apperrors.NewAppError(400, err.Error(), apperrors.ErrValidation)
	}

	if req.MotorcycleID != nil {
		if _, err := s.motorcycleRepo.FindMotorcycleByID(ctx, *req.MotorcycleID); err != nil {
			return nil, err
		}
	}

	expense := domain.Expense{
		ExpenseID:    uuid.NewString(),
		Description:  req.Description,
		Amount:       req.Amount,
		Category:     category,
		Date:         req.Date,
		MotorcycleID: req.MotorcycleID,
		Receipt:      req.Receipt,
		Vendor:       req.Vendor,
		UserID:       creatorUserID,
		CreatedAt:    time.Now(),
	}

	if err := s.financeRepo.SaveExpense(ctx, expense); err != nil {
		logger.Error("Failed to save expense entry", slog.String("error", err.Error()))
		return nil, err
	}

	logger.Info("Expense recorded", slog.String("expense_id", expense.ExpenseID), slog.String("category", string(category)), slog.String("amount", expense.Amount.String()))
	return &expense, nil
}

// ListExpenses retrieves a paginated list of expense entries.
func (s *financeService) ListExpenses(ctx context.Context, requestingUserID string, params dto.ListExpensesParams) (*dto.ListExpensesResponse, error) {
	logger := s.GetLogger(ctx)

	if requestingUserID == "" {
		return nil, apperrors.ErrUnauthorized
	}

	var category *domain.ExpenseCategory
	if params.Category != nil {
		parsed, err := domain.ParseExpenseCategory(*params.Category)
		if err != nil {
			return nil, apperrors.NewAppError(400, err.Error(), apperrors.ErrValidation)
		}
		category = &parsed
	}

	expenses, nextToken, err := s.financeRepo.ListExpenses(ctx, params.Limit, params.NextToken, category)
	if err != nil {
		logger.Error("Failed to list expense entries from repository", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to retrieve expense entries: %w", err)
	}

	resp := dto.ToListExpensesResponse(expenses, nextToken)
	return &resp, nil
}

// DeleteExpense removes an expense entry.
func (s *financeService) DeleteExpense(ctx context.Context, expenseID string, requestingUserID string) error {
	logger := s.GetLogger(ctx)

	if requestingUserID == "" {
		return apperrors.ErrUnauthorized
	}

	if _, err := s.financeRepo.FindExpenseByID(ctx, expenseID); err != nil {
		return err
	}

	if err := s.financeRepo.DeleteExpense(ctx, expenseID); err != nil {
		logger.Error("Failed to delete expense entry", slog.String("expense_id", expenseID), slog.String("error", err.Error()))
		return err
	}

	logger.Info("Expense entry deleted", slog.String("expense_id", expenseID))
	return nil
}

// CreateAsset registers a business asset.
func (s *financeService) CreateAsset(ctx context.Context, req dto.CreateAssetRequest, creatorUserID string) (*domain.Asset, error) {
	logger := s.GetLogger(ctx)

	if creatorUserID == "" {
		return nil, apperrors.ErrUnauthorized
	}
	if req.Value.IsNegative() {
		return nil, apperrors.NewAppError(400, "asset value cannot be negative", apperrors.ErrValidation)
	}
	category, err := domain.ParseAssetCategory(req.Category)
	if err != nil {
		return nil, apperrors.NewAppError(400, err.Error(), apperrors.ErrValidation)
	}

	now := time.Now()
	asset := domain.Asset{
		AssetID:      uuid.NewString(),
		Name:         req.Name,
		Description:  req.Description,
		Category:     category,
		Value:        req.Value,
		PurchaseDate: req.PurchaseDate,
		Condition:    req.Condition,
		Location:     req.Location,
		UserID:       creatorUserID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.financeRepo.SaveAsset(ctx, asset); err != nil {
		logger.Error("Failed to save asset", slog.String("error", err.Error()))
		return nil, err
	}

	logger.Info("Asset registered", slog.String("asset_id", asset.AssetID), slog.String("category", string(category)))
	return &asset, nil
}

// UpdateAsset updates asset details. Fields left nil are untouched.
func (s *financeService) UpdateAsset(ctx context.Context, assetID string, req dto.UpdateAssetRequest, requestingUserID string) (*domain.Asset, error) {
	logger := s.GetLogger(ctx)

	if requestingUserID == "" {
		return nil, apperrors.ErrUnauthorized
	}

	asset, err := s.financeRepo.FindAssetByID(ctx, assetID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		asset.Name = *req.Name
	}
	if req.Description != nil {
		asset.Description = *req.Description
	}
	if req.Category != nil {
		category, err := domain.ParseAssetCategory(*req.Category)
		if err != nil {
			return nil, apperrors.NewAppError(400, err.Error(), apperrors.ErrValidation)
		}
		asset.Category = category
	}
	if req.Value != nil {
		if req.Value.IsNegative() {
			return nil, apperrors.NewAppError(400, "asset value cannot be negative", apperrors.ErrValidation)
		}
		asset.Value = *req.Value
	}
	if req.Condition != nil {
		asset.Condition = *req.Condition
	}
	if req.Location != nil {
		asset.Location = *req.Location
	}
	asset.LastUpdatedAt = time.Now()
	asset.LastUpdatedBy = requestingUserID

	if err := s.financeRepo.UpdateAsset(ctx, *asset); err != nil {
		logger.Error("Failed to update asset", slog.String("asset_id", assetID), slog.String("error", err.Error()))
		return nil, err
	}

	return asset, nil
}

// ListAssets retrieves a paginated list of assets.
func (s *financeService) ListAssets(ctx context.Context, requestingUserID string, params dto.ListAssetsParams) (*dto.ListAssetsResponse, error) {
	logger := s.GetLogger(ctx)

	if requestingUserID == "" {
		return nil, apperrors.ErrUnauthorized
	}

	assets, nextToken, err := s.financeRepo.ListAssets(ctx, params.Limit, params.NextToken)
	if err != nil {
		logger.Error("Failed to list assets from repository", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to retrieve assets: %w", err)
	}

	resp := dto.ToListAssetsResponse(assets, nextToken)
	return &resp, nil
}

// DeleteAsset removes an asset.
func (s *financeService) DeleteAsset(ctx context.Context, assetID string, requestingUserID string) error {
	logger := s.GetLogger(ctx)

	if requestingUserID == "" {
		return apperrors.ErrUnauthorized
	}

	if _, err := s.financeRepo.FindAssetByID(ctx, assetID); err != nil {
		return err
	}

	if err := s.financeRepo.DeleteAsset(ctx, assetID); err != nil {
		logger.Error("Failed to delete asset", slog.String("asset_id", assetID), slog.String("error", err.Error()))
		return err
	}

	logger.Info("Asset deleted", slog.String("asset_id", assetID))
	return nil
}

// GetFinancialSummary computes the dashboard aggregates. The fleet counters
// always reflect the current state; the money totals honour the date range.
func (s *financeService) GetFinancialSummary(ctx context.Context, requestingUserID string, params dto.FinancialSummaryParams) (*domain.FinancialSummary, error) {
	logger := s.GetLogger(ctx)

	if requestingUserID == "" {
		return nil, apperrors.ErrUnauthorized
	}

	totalIncome, err := s.financeRepo.SumIncome(ctx, params.From, params.To)
	if err != nil {
		logger.Error("Failed to sum income", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to compute income total: %w", err)
	}
	totalExpenses, err := s.financeRepo.SumExpenses(ctx, params.From, params.To)
	if err != nil {
		logger.Error("Failed to sum expenses", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to compute expense total: %w", err)
	}
	totalAssets, err := s.financeRepo.SumAssetValue(ctx)
	if err != nil {
		logger.Error("Failed to sum asset values", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to compute asset total: %w", err)
	}
	activeRentals, err := s.rentalRepo.CountRentalsByStatus(ctx, domain.RentalActive)
	if err != nil {
		logger.Error("Failed to count active rentals", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to count active rentals: %w", err)
	}
	availableMotorcycles, err := s.motorcycleRepo.CountMotorcyclesByStatus(ctx, domain.MotorcycleAvailable)
	if err != nil {
		logger.Error("Failed to count available motorcycles", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to count available motorcycles: %w", err)
	}

	return &domain.FinancialSummary{
		TotalIncome:          totalIncome,
		TotalExpenses:        totalExpenses,
		NetProfit:            totalIncome.Sub(totalExpenses),
		TotalAssets:          totalAssets,
		ActiveRentals:        activeRentals,
		AvailableMotorcycles: availableMotorcycles,
	}, nil
}

// GetRecentEntries returns the latest income and expense entries together,
// sized for the dashboard activity feed.
func (s *financeService) GetRecentEntries(ctx context.Context, requestingUserID string, limit int) (*dto.RecentEntriesResponse, error) {
	logger := s.GetLogger(ctx)

	if requestingUserID == "" {
		return nil, apperrors.ErrUnauthorized
	}
	if limit <= 0 {
		limit = 5
	}

	incomes, _, err := s.financeRepo.ListIncomes(ctx, limit, nil, nil)
	if err != nil {
		logger.Error("Failed to list recent income entries", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to retrieve recent income entries: %w", err)
	}
	expenses, _, err := s.financeRepo.ListExpenses(ctx, limit, nil, nil)
	if err != nil {
		logger.Error("Failed to list recent expense entries", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to retrieve recent expense entries: %w", err)
	}

	incomeResponses := make([]dto.IncomeResponse, len(incomes))
	for i := range incomes {
		incomeResponses[i] = dto.ToIncomeResponse(&incomes[i])
	}
	expenseResponses := make([]dto.ExpenseResponse, len(expenses))
	for i := range expenses {
		expenseResponses[i] = dto.ToExpenseResponse(&expenses[i])
	}

	return &dto.RecentEntriesResponse{
		Incomes:  incomeResponses,
		Expenses: expenseResponses,
	}, nil
}

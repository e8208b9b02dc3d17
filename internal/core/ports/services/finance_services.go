package services

import (
	"context"

	"github.com/sjrent/sjrent_backend/internal/core/domain"
	"github.com/sjrent/sjrent_backend/internal/dto"
)

// IncomeSvc defines operations for income entries
type IncomeSvc interface {
	// CreateIncome records a manual income entry.
	CreateIncome(ctx context.Context, req dto.CreateIncomeRequest, creatorUserID string) (*domain.Income, error)

	// ListIncomes retrieves a paginated list of income entries, optionally filtered by category.
	ListIncomes(ctx context.Context, requestingUserID string, params dto.ListIncomesParams) (*dto.ListIncomesResponse, error)

	// DeleteIncome removes an income entry.
	DeleteIncome(ctx context.Context, incomeID string, requestingUserID string) error
}

// ExpenseSvc defines operations for expense entries
type ExpenseSvc interface {
	// CreateExpense records an expense entry.
	CreateExpense(ctx context.Context, req dto.CreateExpenseRequest, creatorUserID string) (*domain.Expense, error)

	// ListExpenses retrieves a paginated list of expense entries, optionally filtered by category.
	ListExpenses(ctx context.Context, requestingUserID string, params dto.ListExpensesParams) (*dto.ListExpensesResponse, error)

	// DeleteExpense removes an expense entry.
	DeleteExpense(ctx context.Context, expenseID string, requestingUserID string) error
}

// AssetSvc defines operations for asset records
type AssetSvc interface {
	// CreateAsset registers a business asset.
	CreateAsset(ctx context.Context, req dto.CreateAssetRequest, creatorUserID string) (*domain.Asset, error)

	// UpdateAsset updates asset details.
	UpdateAsset(ctx context.Context, assetID string, req dto.UpdateAssetRequest, requestingUserID string) (*domain.Asset, error)

	// ListAssets retrieves a paginated list of assets.
	ListAssets(ctx context.Context, requestingUserID string, params dto.ListAssetsParams) (*dto.ListAssetsResponse, error)

	// DeleteAsset removes an asset.
	DeleteAsset(ctx context.Context, assetID string, requestingUserID string) error
}

// FinanceReportingSvc defines aggregate reporting operations
type FinanceReportingSvc interface {
	// GetFinancialSummary computes the income, expense, profit and fleet counters,
	// optionally bounded to a date range.
	GetFinancialSummary(ctx context.Context, requestingUserID string, params dto.FinancialSummaryParams) (*domain.FinancialSummary, error)

	// GetRecentEntries returns the most recent income and expense entries together.
	GetRecentEntries(ctx context.Context, requestingUserID string, limit int) (*dto.RecentEntriesResponse, error)
}

// FinanceSvcFacade combines all financial journal service interfaces
type FinanceSvcFacade interface {
	IncomeSvc
	ExpenseSvc
	AssetSvc
	FinanceReportingSvc
}

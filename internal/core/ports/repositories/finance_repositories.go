package repositories

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sjrent/sjrent_backend/internal/core/domain"
)

// IncomeReader defines read operations for income entries
type IncomeReader interface {
	// FindIncomeByID retrieves a specific income entry by its unique identifier.
	FindIncomeByID(ctx context.Context, incomeID string) (*domain.Income, error)

	// ListIncomes retrieves a paginated list of income entries using token-based pagination,
	// optionally filtered by category. Entries are ordered by date descending.
	ListIncomes(ctx context.Context, limit int, nextToken *string, category *domain.IncomeCategory) ([]domain.Income, *string, error)

	// SumIncome returns the total income amount, optionally bounded by [from, to).
	SumIncome(ctx context.Context, from *time.Time, to *time.Time) (decimal.Decimal, error)
}

// IncomeWriter defines write operations for income entries
type IncomeWriter interface {
	// SaveIncome persists a new income entry.
	SaveIncome(ctx context.Context, income domain.Income) error

	// DeleteIncome removes an income entry.
	DeleteIncome(ctx context.Context, incomeID string) error
}

// ExpenseReader defines read operations for expense entries
type ExpenseReader interface {
	// FindExpenseByID retrieves a specific expense entry by its unique identifier.
	FindExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error)

	// ListExpenses retrieves a paginated list of expense entries using token-based pagination,
	// optionally filtered by category. Entries are ordered by date descending.
	ListExpenses(ctx context.Context, limit int, nextToken *string, category *domain.ExpenseCategory) ([]domain.Expense, *string, error)

	// SumExpenses returns the total expense amount, optionally bounded by [from, to).
	SumExpenses(ctx context.Context, from *time.Time, to *time.Time) (decimal.Decimal, error)
}

// ExpenseWriter defines write operations for expense entries
type ExpenseWriter interface {
	// SaveExpense persists a new expense entry.
	SaveExpense(ctx context.Context, expense domain.Expense) error

	// DeleteExpense removes an expense entry.
	DeleteExpense(ctx context.Context, expenseID string) error
}

// AssetReader defines read operations for asset records
type AssetReader interface {
	// FindAssetByID retrieves a specific asset by its unique identifier.
	FindAssetByID(ctx context.Context, assetID string) (*domain.Asset, error)

	// ListAssets retrieves a paginated list of assets using token-based pagination.
	ListAssets(ctx context.Context, limit int, nextToken *string) ([]domain.Asset, *string, error)

	// SumAssetValue returns the combined value of all assets.
	SumAssetValue(ctx context.Context) (decimal.Decimal, error)
}

// AssetWriter defines write operations for asset records
type AssetWriter interface {
	// SaveAsset persists a new asset.
	SaveAsset(ctx context.Context, asset domain.Asset) error

	// UpdateAsset updates the details of an existing asset.
	UpdateAsset(ctx context.Context, asset domain.Asset) error

	// DeleteAsset removes an asset.
	DeleteAsset(ctx context.Context, assetID string) error
}

// FinanceRepositoryFacade combines the income, expense and asset repository interfaces
type FinanceRepositoryFacade interface {
	IncomeReader
	IncomeWriter
	ExpenseReader
	ExpenseWriter
	AssetReader
	AssetWriter
}

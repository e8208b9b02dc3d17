package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// IncomeCategory classifies income ledger entries.
type IncomeCategory string

const (
	IncomeRentalPayment IncomeCategory = "RENTAL_PAYMENT"
	IncomeDeposit       IncomeCategory = "DEPOSIT"
	IncomeLateFee       IncomeCategory = "LATE_FEE"
	IncomeDamageFee     IncomeCategory = "DAMAGE_FEE"
	IncomeOther         IncomeCategory = "OTHER"
)

// ParseIncomeCategory validates a raw category string against the closed set.
func ParseIncomeCategory(raw string) (IncomeCategory, error) {
	switch IncomeCategory(raw) {
	case IncomeRentalPayment, IncomeDeposit, IncomeLateFee, IncomeDamageFee, IncomeOther:
		return IncomeCategory(raw), nil
	default:
		return "", fmt.Errorf("unknown income category %q", raw)
	}
}

// ExpenseCategory classifies expense ledger entries.
type ExpenseCategory string

const (
	ExpenseFuel         ExpenseCategory = "FUEL"
	ExpenseMaintenance  ExpenseCategory = "MAINTENANCE"
	ExpenseInsurance    ExpenseCategory = "INSURANCE"
	ExpenseRegistration ExpenseCategory = "REGISTRATION"
	ExpenseRepair       ExpenseCategory = "REPAIR"
	ExpenseSpareParts   ExpenseCategory = "SPARE_PARTS"
	ExpenseCleaning     ExpenseCategory = "CLEANING"
	ExpenseMarketing    ExpenseCategory = "MARKETING"
	ExpenseOffice       ExpenseCategory = "OFFICE"
	ExpenseOther        ExpenseCategory = "OTHER"
)

// ParseExpenseCategory validates a raw category string against the closed set.
func ParseExpenseCategory(raw string) (ExpenseCategory, error) {
	switch ExpenseCategory(raw) {
	case ExpenseFuel, ExpenseMaintenance, ExpenseInsurance, ExpenseRegistration,
		ExpenseRepair, ExpenseSpareParts, ExpenseCleaning, ExpenseMarketing,
		ExpenseOffice, ExpenseOther:
		return ExpenseCategory(raw), nil
	default:
		return "", fmt.Errorf("unknown expense category %q", raw)
	}
}

// AssetCategory classifies business assets.
type AssetCategory string

const (
	AssetMotorcycle  AssetCategory = "MOTORCYCLE"
	AssetEquipment   AssetCategory = "EQUIPMENT"
	AssetTools       AssetCategory = "TOOLS"
	AssetFurniture   AssetCategory = "FURNITURE"
	AssetElectronics AssetCategory = "ELECTRONICS"
	AssetProperty    AssetCategory = "PROPERTY"
	AssetOther       AssetCategory = "OTHER"
)

// ParseAssetCategory validates a raw category string against the closed set.
func ParseAssetCategory(raw string) (AssetCategory, error) {
	switch AssetCategory(raw) {
	case AssetMotorcycle, AssetEquipment, AssetTools, AssetFurniture,
		AssetElectronics, AssetProperty, AssetOther:
		return AssetCategory(raw), nil
	default:
		return "", fmt.Errorf("unknown asset category %q", raw)
	}
}

// Income is an append-only income ledger entry, optionally linked to the
// rental that produced it. Entries are never updated or deleted.
type Income struct {
	IncomeID    string          `json:"incomeID"` // Primary Key (UUID)
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Category    IncomeCategory  `json:"category"`
	Source      string          `json:"source"` // Optional
	Date        time.Time       `json:"date"`
	RentalID    *string         `json:"rentalID"` // Link to originating rental, if any
	UserID      string          `json:"userID"`   // Recording user
	CreatedAt   time.Time       `json:"createdAt"`

	// Joined summaries, populated by read queries.
	CustomerName *string `json:"customerName,omitempty"`
	PlateNumber  *string `json:"plateNumber,omitempty"`
}

// Expense is an append-only expense ledger entry, optionally linked to a motorcycle.
type Expense struct {
	ExpenseID    string          `json:"expenseID"` // Primary Key (UUID)
	Description  string          `json:"description"`
	Amount       decimal.Decimal `json:"amount"`
	Category     ExpenseCategory `json:"category"`
	Date         time.Time       `json:"date"`
	MotorcycleID *string         `json:"motorcycleID"` // Link to motorcycle, if any
	Receipt      string          `json:"receipt"`      // Optional receipt reference
	Vendor       string          `json:"vendor"`       // Optional
	UserID       string          `json:"userID"`
	CreatedAt    time.Time       `json:"createdAt"`

	// Joined summary, populated by read queries.
	Motorcycle *MotorcycleSummary `json:"motorcycle,omitempty"`
}

// Asset is a business asset record kept in the financial journal.
type Asset struct {
	AssetID      string          `json:"assetID"` // Primary Key (UUID)
	Name         string          `json:"name"`
	Description  string          `json:"description"` // Optional
	Category     AssetCategory   `json:"category"`
	Value        decimal.Decimal `json:"value"`
	PurchaseDate time.Time       `json:"purchaseDate"`
	Condition    string          `json:"condition"` // Optional
	Location     string          `json:"location"`  // Optional
	UserID       string          `json:"userID"`
	AuditFields
}

// FinancialSummary aggregates the journal for the dashboard.
// Monetary totals stay decimal until the presentation boundary.
type FinancialSummary struct {
	TotalIncome          decimal.Decimal `json:"totalIncome"`
	TotalExpenses        decimal.Decimal `json:"totalExpenses"`
	NetProfit            decimal.Decimal `json:"netProfit"`
	TotalAssets          decimal.Decimal `json:"totalAssets"`
	ActiveRentals        int             `json:"activeRentals"`
	AvailableMotorcycles int             `json:"availableMotorcycles"`
}

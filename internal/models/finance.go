package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Income is the DB-layer representation of an income ledger entry.
type Income struct {
	IncomeID    string          `json:"incomeID"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	Source      string          `json:"source"`
	Date        time.Time       `json:"date"`
	RentalID    *string         `json:"rentalID"`
	UserID      string          `json:"userID"`
	CreatedAt   time.Time       `json:"createdAt"`

	// Joined columns (income JOIN rentals JOIN customers/motorcycles).
	CustomerName *string `json:"customerName,omitempty"`
	PlateNumber  *string `json:"plateNumber,omitempty"`
}

// Expense is the DB-layer representation of an expense ledger entry.
type Expense struct {
	ExpenseID    string          `json:"expenseID"`
	Description  string          `json:"description"`
	Amount       decimal.Decimal `json:"amount"`
	Category     string          `json:"category"`
	Date         time.Time       `json:"date"`
	MotorcycleID *string         `json:"motorcycleID"`
	Receipt      string          `json:"receipt"`
	Vendor       string          `json:"vendor"`
	UserID       string          `json:"userID"`
	CreatedAt    time.Time       `json:"createdAt"`

	// Joined columns (expenses JOIN motorcycles).
	MotorcycleBrand *string `json:"motorcycleBrand,omitempty"`
	MotorcycleModel *string `json:"motorcycleModel,omitempty"`
	PlateNumber     *string `json:"plateNumber,omitempty"`
}

// Asset is the DB-layer representation of a business asset record.
type Asset struct {
	AssetID      string          `json:"assetID"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Category     string          `json:"category"`
	Value        decimal.Decimal `json:"value"`
	PurchaseDate time.Time       `json:"purchaseDate"`
	Condition    string          `json:"condition"`
	Location     string          `json:"location"`
	UserID       string          `json:"userID"`
	AuditFields
}

package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/sjrent/sjrent_backend/internal/core/domain"
)

// CreateIncomeRequest defines the data needed to record a manual income entry.
type CreateIncomeRequest struct {
	Description string          `json:"description" binding:"required"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Category    string          `json:"category" binding:"required,oneof=RENTAL_PAYMENT DEPOSIT LATE_FEE DAMAGE_FEE OTHER"`
	Source      string          `json:"source"`
	Date        time.Time       `json:"date" binding:"required"`
	RentalID    *string         `json:"rentalID"`
}

// CreateExpenseRequest defines the data needed to record an expense entry.
type CreateExpenseRequest struct {
	Description  string          `json:"description" binding:"required"`
	Amount       decimal.Decimal `json:"amount" binding:"required"`
	Category     string          `json:"category" binding:"required,oneof=FUEL MAINTENANCE INSURANCE REGISTRATION REPAIR SPARE_PARTS CLEANING MARKETING OFFICE OTHER"`
	Date         time.Time       `json:"date" binding:"required"`
	MotorcycleID *string         `json:"motorcycleID"`
	Receipt      string          `json:"receipt"`
	Vendor       string          `json:"vendor"`
}

// CreateAssetRequest defines the data needed to register a business asset.
type CreateAssetRequest struct {
	Name         string          `json:"name" binding:"required"`
	Description  string          `json:"description"`
	Category     string          `json:"category" binding:"required,oneof=MOTORCYCLE EQUIPMENT TOOLS FURNITURE ELECTRONICS PROPERTY OTHER"`
	Value        decimal.Decimal `json:"value" binding:"required"`
	PurchaseDate time.Time       `json:"purchaseDate" binding:"required"`
	Condition    string          `json:"condition"`
	Location     string          `json:"location"`
}

// UpdateAssetRequest defines the data allowed for updating an asset.
type UpdateAssetRequest struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Category    *string          `json:"category" binding:"omitempty,oneof=MOTORCYCLE EQUIPMENT TOOLS FURNITURE ELECTRONICS PROPERTY OTHER"`
	Value       *decimal.Decimal `json:"value"`
	Condition   *string          `json:"condition"`
	Location    *string          `json:"location"`
}

// IncomeResponse defines the data returned for an income entry.
type IncomeResponse struct {
	IncomeID     string    `json:"incomeID"`
	Description  string    `json:"description"`
	Amount       float64   `json:"amount"`
	Category     string    `json:"category"`
	Source       string    `json:"source"`
	Date         time.Time `json:"date"`
	RentalID     *string   `json:"rentalID,omitempty"`
	CustomerName *string   `json:"customerName,omitempty"`
	PlateNumber  *string   `json:"plateNumber,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// ExpenseResponse defines the data returned for an expense entry.
type ExpenseResponse struct {
	ExpenseID    string                     `json:"expenseID"`
	Description  string                     `json:"description"`
	Amount       float64                    `json:"amount"`
	Category     string                     `json:"category"`
	Date         time.Time                  `json:"date"`
	MotorcycleID *string                    `json:"motorcycleID,omitempty"`
	Motorcycle   *MotorcycleSummaryResponse `json:"motorcycle,omitempty"`
	Receipt      string                     `json:"receipt"`
	Vendor       string                     `json:"vendor"`
	CreatedAt    time.Time                  `json:"createdAt"`
}

// AssetResponse defines the data returned for an asset.
type AssetResponse struct {
	AssetID       string    `json:"assetID"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Category      string    `json:"category"`
	Value         float64   `json:"value"`
	PurchaseDate  time.Time `json:"purchaseDate"`
	Condition     string    `json:"condition"`
	Location      string    `json:"location"`
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"`
}

// ListIncomesParams defines query parameters for listing income entries.
type ListIncomesParams struct {
	Limit     int     `form:"limit,default=20"`
	NextToken *string `form:"nextToken"`
	Category  *string `form:"category"`
}

// ListIncomesResponse wraps the paginated list of income entries.
type ListIncomesResponse struct {
	Incomes   []IncomeResponse `json:"incomes"`
	NextToken *string          `json:"nextToken,omitempty"`
}

// ListExpensesParams defines query parameters for listing expense entries.
type ListExpensesParams struct {
	Limit     int     `form:"limit,default=20"`
	NextToken *string `form:"nextToken"`
	Category  *string `form:"category"`
}

// ListExpensesResponse wraps the paginated list of expense entries.
type ListExpensesResponse struct {
	Expenses  []ExpenseResponse `json:"expenses"`
	NextToken *string           `json:"nextToken,omitempty"`
}

// ListAssetsParams defines query parameters for listing assets.
type ListAssetsParams struct {
	Limit     int     `form:"limit,default=20"`
	NextToken *string `form:"nextToken"`
}

// ListAssetsResponse wraps the paginated list of assets.
type ListAssetsResponse struct {
	Assets    []AssetResponse `json:"assets"`
	NextToken *string         `json:"nextToken,omitempty"`
}

// FinancialSummaryParams defines the optional date range for the summary.
type FinancialSummaryParams struct {
	From *time.Time `form:"from" time_format:"2006-01-02"`
	To   *time.Time `form:"to" time_format:"2006-01-02"`
}

// FinancialSummaryResponse defines the aggregate dashboard numbers.
type FinancialSummaryResponse struct {
	TotalIncome          float64 `json:"totalIncome"`
	TotalExpenses        float64 `json:"totalExpenses"`
	NetProfit            float64 `json:"netProfit"`
	TotalAssets          float64 `json:"totalAssets"`
	ActiveRentals        int     `json:"activeRentals"`
	AvailableMotorcycles int     `json:"availableMotorcycles"`
}

// RecentEntriesResponse combines the latest income and expense entries.
type RecentEntriesResponse struct {
	Incomes  []IncomeResponse  `json:"incomes"`
	Expenses []ExpenseResponse `json:"expenses"`
}

// ToIncomeResponse converts a domain.Income to IncomeResponse DTO.
func ToIncomeResponse(in *domain.Income) IncomeResponse {
	return IncomeResponse{
		IncomeID:     in.IncomeID,
		Description:  in.Description,
		Amount:       in.Amount.InexactFloat64(),
		Category:     string(in.Category),
		Source:       in.Source,
		Date:         in.Date,
		RentalID:     in.RentalID,
		CustomerName: in.CustomerName,
		PlateNumber:  in.PlateNumber,
		CreatedAt:    in.CreatedAt,
	}
}

// ToListIncomesResponse converts a slice of domain.Income to ListIncomesResponse.
func ToListIncomesResponse(incomes []domain.Income, nextToken *string) ListIncomesResponse {
	responses := make([]IncomeResponse, len(incomes))
	for i, in := range incomes {
		responses[i] = ToIncomeResponse(&in)
	}
	return ListIncomesResponse{
		Incomes:   responses,
		NextToken: nextToken,
	}
}

// ToExpenseResponse converts a domain.Expense to ExpenseResponse DTO.
func ToExpenseResponse(ex *domain.Expense) ExpenseResponse {
	resp := ExpenseResponse{
		ExpenseID:    ex.ExpenseID,
		Description:  ex.Description,
		Amount:       ex.Amount.InexactFloat64(),
		Category:     string(ex.Category),
		Date:         ex.Date,
		MotorcycleID: ex.MotorcycleID,
		Receipt:      ex.Receipt,
		Vendor:       ex.Vendor,
		CreatedAt:    ex.CreatedAt,
	}
	if ex.Motorcycle != nil {
		resp.Motorcycle = &MotorcycleSummaryResponse{
			Brand:       ex.Motorcycle.Brand,
			Model:       ex.Motorcycle.Model,
			PlateNumber: ex.Motorcycle.PlateNumber,
		}
	}
	return resp
}

// ToListExpensesResponse converts a slice of domain.Expense to ListExpensesResponse.
func ToListExpensesResponse(expenses []domain.Expense, nextToken *string) ListExpensesResponse {
	responses := make([]ExpenseResponse, len(expenses))
	for i, ex := range expenses {
		responses[i] = ToExpenseResponse(&ex)
	}
	return ListExpensesResponse{
		Expenses:  responses,
		NextToken: nextToken,
	}
}

// ToAssetResponse converts a domain.Asset to AssetResponse DTO.
func ToAssetResponse(a *domain.Asset) AssetResponse {
	return AssetResponse{
		AssetID:       a.AssetID,
		Name:          a.Name,
		Description:   a.Description,
		Category:      string(a.Category),
		Value:         a.Value.InexactFloat64(),
		PurchaseDate:  a.PurchaseDate,
		Condition:     a.Condition,
		Location:      a.Location,
		CreatedAt:     a.CreatedAt,
		CreatedBy:     a.CreatedBy,
		LastUpdatedAt: a.LastUpdatedAt,
		LastUpdatedBy: a.LastUpdatedBy,
	}
}

// ToListAssetsResponse converts a slice of domain.Asset to ListAssetsResponse.
func ToListAssetsResponse(assets []domain.Asset, nextToken *string) ListAssetsResponse {
	responses := make([]AssetResponse, len(assets))
	for i, a := range assets {
		responses[i] = ToAssetResponse(&a)
	}
	return ListAssetsResponse{
		Assets:    responses,
		NextToken: nextToken,
	}
}

// ToFinancialSummaryResponse converts a domain.FinancialSummary to its DTO.
func ToFinancialSummaryResponse(s *domain.FinancialSummary) FinancialSummaryResponse {
	return FinancialSummaryResponse{
		TotalIncome:          s.TotalIncome.InexactFloat64(),
		TotalExpenses:        s.TotalExpenses.InexactFloat64(),
		NetProfit:            s.NetProfit.InexactFloat64(),
		TotalAssets:          s.TotalAssets.InexactFloat64(),
		ActiveRentals:        s.ActiveRentals,
		AvailableMotorcycles: s.AvailableMotorcycles,
	}
}

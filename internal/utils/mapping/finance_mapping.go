package mapping

import (
	"github.com/sjrent/sjrent_backend/internal/core/domain"
	"github.com/sjrent/sjrent_backend/internal/models"
)

// ToModelIncome converts a domain Income to a model Income
func ToModelIncome(d domain.Income) models.Income {
	return models.Income{
		IncomeID:    d.IncomeID,
		Description: d.Description,
		Amount:      d.Amount,
		Category:    string(d.Category),
		Source:      d.Source,
		Date:        d.Date,
		RentalID:    d.RentalID,
		UserID:      d.UserID,
		CreatedAt:   d.CreatedAt,
	}
}

// ToDomainIncome converts a model Income to a domain Income
func ToDomainIncome(m models.Income) domain.Income {
	return domain.Income{
		IncomeID:     m.IncomeID,
		Description:  m.Description,
		Amount:       m.Amount,
		Category:     domain.IncomeCategory(m.Category),
		Source:       m.Source,
		Date:         m.Date,
		RentalID:     m.RentalID,
		UserID:       m.UserID,
		CreatedAt:    m.CreatedAt,
		CustomerName: m.CustomerName,
		PlateNumber:  m.PlateNumber,
	}
}

// ToDomainIncomeSlice converts a slice of model Incomes to domain Incomes
func ToDomainIncomeSlice(ms []models.Income) []domain.Income {
	ds := make([]domain.Income, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainIncome(m)
	}
	return ds
}

// ToModelExpense converts a domain Expense to a model Expense
func ToModelExpense(d domain.Expense) models.Expense {
	return models.Expense{
		ExpenseID:    d.ExpenseID,
		Description:  d.Description,
		Amount:       d.Amount,
		Category:     string(d.Category),
		Date:         d.Date,
		MotorcycleID: d.MotorcycleID,
		Receipt:      d.Receipt,
		Vendor:       d.Vendor,
		UserID:       d.UserID,
		CreatedAt:    d.CreatedAt,
	}
}

// ToDomainExpense converts a model Expense to a domain Expense
func ToDomainExpense(m models.Expense) domain.Expense {
	d := domain.Expense{
		ExpenseID:    m.ExpenseID,
		Description:  m.Description,
		Amount:       m.Amount,
		Category:     domain.ExpenseCategory(m.Category),
		Date:         m.Date,
		MotorcycleID: m.MotorcycleID,
		Receipt:      m.Receipt,
		Vendor:       m.Vendor,
		UserID:       m.UserID,
		CreatedAt:    m.CreatedAt,
	}
	if m.PlateNumber != nil {
		d.Motorcycle = &domain.MotorcycleSummary{
			PlateNumber: *m.PlateNumber,
		}
		if m.MotorcycleBrand != nil {
			d.Motorcycle.Brand = *m.MotorcycleBrand
		}
		if m.MotorcycleModel != nil {
			d.Motorcycle.Model = *m.MotorcycleModel
		}
	}
	return d
}

// ToDomainExpenseSlice converts a slice of model Expenses to domain Expenses
func ToDomainExpenseSlice(ms []models.Expense) []domain.Expense {
	ds := make([]domain.Expense, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainExpense(m)
	}
	return ds
}

// ToModelAsset converts a domain Asset to a model Asset
func ToModelAsset(d domain.Asset) models.Asset {
	return models.Asset{
		AssetID:      d.AssetID,
		Name:         d.Name,
		Description:  d.Description,
		Category:     string(d.Category),
		Value:        d.Value,
		PurchaseDate: d.PurchaseDate,
		Condition:    d.Condition,
		Location:     d.Location,
		UserID:       d.UserID,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainAsset converts a model Asset to a domain Asset
func ToDomainAsset(m models.Asset) domain.Asset {
	return domain.Asset{
		AssetID:      m.AssetID,
		Name:         m.Name,
		Description:  m.Description,
		Category:     domain.AssetCategory(m.Category),
		Value:        m.Value,
		PurchaseDate: m.PurchaseDate,
		Condition:    m.Condition,
		Location:     m.Location,
		UserID:       m.UserID,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

package mapping

import (
	"github.com/sjrent/sjrent_backend/internal/core/domain"
	"github.com/sjrent/sjrent_backend/internal/models"
)

// ToModelRental converts a domain Rental to a model Rental
func ToModelRental(d domain.Rental) models.Rental {
	return models.Rental{
		RentalID:       d.RentalID,
		MotorcycleID:   d.MotorcycleID,
		CustomerID:     d.CustomerID,
		StartDate:      d.StartDate,
		PlannedEndDate: d.PlannedEndDate,
		EndDate:        d.EndDate,
		DailyRate:      d.DailyRate,
		Deposit:        d.Deposit,
		TotalAmount:    d.TotalAmount,
		Status:         models.RentalStatus(d.Status),
		Notes:          d.Notes,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainRental converts a model Rental to a domain Rental.
// Joined motorcycle/customer columns become optional summaries.
func ToDomainRental(m models.Rental) domain.Rental {
	d := domain.Rental{
		RentalID:       m.RentalID,
		MotorcycleID:   m.MotorcycleID,
		CustomerID:     m.CustomerID,
		StartDate:      m.StartDate,
		PlannedEndDate: m.PlannedEndDate,
		EndDate:        m.EndDate,
		DailyRate:      m.DailyRate,
		Deposit:        m.Deposit,
		TotalAmount:    m.TotalAmount,
		Status:         domain.RentalStatus(m.Status),
		Notes:          m.Notes,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
	if m.MotorcycleBrand != "" || m.PlateNumber != "" {
		d.Motorcycle = &domain.MotorcycleSummary{
			Brand:       m.MotorcycleBrand,
			Model:       m.MotorcycleModel,
			PlateNumber: m.PlateNumber,
		}
	}
	if m.CustomerName != "" {
		d.Customer = &domain.CustomerSummary{
			Name:  m.CustomerName,
			Phone: m.CustomerPhone,
		}
	}
	return d
}

// ToDomainRentalSlice converts a slice of model Rentals to domain Rentals
func ToDomainRentalSlice(ms []models.Rental) []domain.Rental {
	ds := make([]domain.Rental, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainRental(m)
	}
	return ds
}

package mapping

import (
	"github.com/sjrent/sjrent_backend/internal/core/domain"
	"github.com/sjrent/sjrent_backend/internal/models"
)

// ToModelMotorcycle converts a domain Motorcycle to a model Motorcycle
func ToModelMotorcycle(d domain.Motorcycle) models.Motorcycle {
	return models.Motorcycle{
		MotorcycleID: d.MotorcycleID,
		Brand:        d.Brand,
		Model:        d.Model,
		Year:         d.Year,
		Color:        d.Color,
		PlateNumber:  d.PlateNumber,
		EngineSize:   d.EngineSize,
		Condition:    d.Condition,
		DailyRate:    d.DailyRate,
		Status:       models.MotorcycleStatus(d.Status),
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainMotorcycle converts a model Motorcycle to a domain Motorcycle
func ToDomainMotorcycle(m models.Motorcycle) domain.Motorcycle {
	return domain.Motorcycle{
		MotorcycleID: m.MotorcycleID,
		Brand:        m.Brand,
		Model:        m.Model,
		Year:         m.Year,
		Color:        m.Color,
		PlateNumber:  m.PlateNumber,
		EngineSize:   m.EngineSize,
		Condition:    m.Condition,
		DailyRate:    m.DailyRate,
		Status:       domain.MotorcycleStatus(m.Status),
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainMotorcycleSlice converts a slice of model Motorcycles to domain Motorcycles
func ToDomainMotorcycleSlice(ms []models.Motorcycle) []domain.Motorcycle {
	ds := make([]domain.Motorcycle, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainMotorcycle(m)
	}
	return ds
}

package models

import "github.com/shopspring/decimal"

// MotorcycleStatus mirrors the motorcycles.status column values.
type MotorcycleStatus string

const (
	MotorcycleAvailable    MotorcycleStatus = "AVAILABLE"
	MotorcycleRented       MotorcycleStatus = "RENTED"
	MotorcycleMaintenance  MotorcycleStatus = "MAINTENANCE"
	MotorcycleOutOfService MotorcycleStatus = "OUT_OF_SERVICE"
)

// Motorcycle is the DB-layer representation of a fleet motorcycle.
type Motorcycle struct {
	MotorcycleID string           `json:"motorcycleID"`
	Brand        string           `json:"brand"`
	Model        string           `json:"model"`
	Year         int              `json:"year"`
	Color        string           `json:"color"`
	PlateNumber  string           `json:"plateNumber"`
	EngineSize   int              `json:"engineSize"`
	Condition    string           `json:"condition"`
	DailyRate    decimal.Decimal  `json:"dailyRate"`
	Status       MotorcycleStatus `json:"status"`
	AuditFields
}

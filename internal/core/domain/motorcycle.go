package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// MotorcycleStatus defines the availability state of a motorcycle in the fleet.
type MotorcycleStatus string

const (
	MotorcycleAvailable    MotorcycleStatus = "AVAILABLE"
	MotorcycleRented       MotorcycleStatus = "RENTED"
	MotorcycleMaintenance  MotorcycleStatus = "MAINTENANCE"
	MotorcycleOutOfService MotorcycleStatus = "OUT_OF_SERVICE"
)

// ParseMotorcycleStatus validates a raw status string against the closed set.
// Unknown values are rejected at the boundary instead of being stored verbatim.
func ParseMotorcycleStatus(raw string) (MotorcycleStatus, error) {
	switch MotorcycleStatus(raw) {
	case MotorcycleAvailable, MotorcycleRented, MotorcycleMaintenance, MotorcycleOutOfService:
		return MotorcycleStatus(raw), nil
	default:
		return "", fmt.Errorf("unknown motorcycle status %q", raw)
	}
}

// Motorcycle represents a single vehicle in the rental fleet.
// Status transitions caused by rental activity are owned by the rental service;
// manual maintenance toggling goes through the fleet service directly.
type Motorcycle struct {
	MotorcycleID string           `json:"motorcycleID"` // Primary Key (UUID)
	Brand        string           `json:"brand"`
	Model        string           `json:"model"`
	Year         int              `json:"year"`
	Color        string           `json:"color"`
	PlateNumber  string           `json:"plateNumber"` // Unique registration plate
	EngineSize   int              `json:"engineSize"`  // Displacement in cc
	Condition    string           `json:"condition"`   // Free-form condition notes
	DailyRate    decimal.Decimal  `json:"dailyRate"`
	Status       MotorcycleStatus `json:"status"`
	AuditFields
}

// MotorcycleSummary is the subset of motorcycle fields joined onto rentals
// and financial entries for display.
type MotorcycleSummary struct {
	Brand       string `json:"brand"`
	Model       string `json:"model"`
	PlateNumber string `json:"plateNumber"`
}

package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// RentalStatus mirrors the rentals.status column values.
type RentalStatus string

const (
	RentalActive    RentalStatus = "ACTIVE"
	RentalCompleted RentalStatus = "COMPLETED"
	RentalCancelled RentalStatus = "CANCELLED"
	RentalOverdue   RentalStatus = "OVERDUE"
)

// Rental is the DB-layer representation of a rental booking.
// Joined motorcycle/customer columns are populated by list queries only.
type Rental struct {
	RentalID       string           `json:"rentalID"`
	MotorcycleID   string           `json:"motorcycleID"`
	CustomerID     string           `json:"customerID"`
	StartDate      time.Time        `json:"startDate"`
	PlannedEndDate time.Time        `json:"plannedEndDate"`
	EndDate        *time.Time       `json:"endDate"`
	DailyRate      decimal.Decimal  `json:"dailyRate"`
	Deposit        decimal.Decimal  `json:"deposit"`
	TotalAmount    *decimal.Decimal `json:"totalAmount"`
	Status         RentalStatus     `json:"status"`
	Notes          string           `json:"notes"`
	AuditFields

	// Joined columns (rentals JOIN motorcycles JOIN customers).
	MotorcycleBrand string `json:"motorcycleBrand,omitempty"`
	MotorcycleModel string `json:"motorcycleModel,omitempty"`
	PlateNumber     string `json:"plateNumber,omitempty"`
	CustomerName    string `json:"customerName,omitempty"`
	CustomerPhone   string `json:"customerPhone,omitempty"`
}

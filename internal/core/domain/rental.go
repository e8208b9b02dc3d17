package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// RentalStatus defines the lifecycle state of a rental booking.
type RentalStatus string

const (
	RentalActive    RentalStatus = "ACTIVE"
	RentalCompleted RentalStatus = "COMPLETED"
	RentalCancelled RentalStatus = "CANCELLED"
	RentalOverdue   RentalStatus = "OVERDUE"
)

// ParseRentalStatus validates a raw status string against the closed set.
func ParseRentalStatus(raw string) (RentalStatus, error) {
	switch RentalStatus(raw) {
	case RentalActive, RentalCompleted, RentalCancelled, RentalOverdue:
		return RentalStatus(raw), nil
	default:
		return "", fmt.Errorf("unknown rental status %q", raw)
	}
}

// IsTerminal reports whether the status is final. COMPLETED and CANCELLED
// rentals are immutable; OVERDUE is an open sub-state of ACTIVE, not terminal.
func (s RentalStatus) IsTerminal() bool {
	return s == RentalCompleted || s == RentalCancelled
}

// IsOpen reports whether the rental still holds its motorcycle
// (i.e. the motorcycle must be RENTED while the rental is open).
func (s RentalStatus) IsOpen() bool {
	return s == RentalActive || s == RentalOverdue
}

// Rental represents a booking of one motorcycle by one customer.
//
// DailyRate and Deposit are price snapshots captured at creation time; they do
// not follow later changes to the motorcycle's rate. TotalAmount and EndDate
// stay nil until the rental is completed.
type Rental struct {
	RentalID       string           `json:"rentalID"` // Primary Key (UUID)
	MotorcycleID   string           `json:"motorcycleID"`
	CustomerID     string           `json:"customerID"`
	StartDate      time.Time        `json:"startDate"`
	PlannedEndDate time.Time        `json:"plannedEndDate"`
	EndDate        *time.Time       `json:"endDate"` // Set on completion only
	DailyRate      decimal.Decimal  `json:"dailyRate"`
	Deposit        decimal.Decimal  `json:"deposit"`
	TotalAmount    *decimal.Decimal `json:"totalAmount"` // Set on completion only
	Status         RentalStatus     `json:"status"`
	Notes          string           `json:"notes"`
	AuditFields

	// Joined summaries, populated by list/read queries.
	Motorcycle *MotorcycleSummary `json:"motorcycle,omitempty"`
	Customer   *CustomerSummary   `json:"customer,omitempty"`
}

// FinalPayment returns totalAmount - deposit, the amount still owed at
// completion time. A zero or negative result means the deposit already covers
// the total; no payment entry is recorded in that case.
func (r *Rental) FinalPayment(totalAmount decimal.Decimal) decimal.Decimal {
	return totalAmount.Sub(r.Deposit)
}

package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/sjrent/sjrent_backend/internal/core/domain"
)

// CreateRentalRequest defines the data needed to open a rental.
// DailyRate is optional and defaults to the motorcycle's current rate.
type CreateRentalRequest struct {
	MotorcycleID   string           `json:"motorcycleID" binding:"required"`
	CustomerID     string           `json:"customerID" binding:"required"`
	StartDate      time.Time        `json:"startDate" binding:"required"`
	PlannedEndDate time.Time        `json:"plannedEndDate" binding:"required"`
	DailyRate      *decimal.Decimal `json:"dailyRate"`
	Deposit        decimal.Decimal  `json:"deposit"`
	Notes          string           `json:"notes"`
}

// CompleteRentalRequest defines the payload for closing a rental.
type CompleteRentalRequest struct {
	TotalAmount decimal.Decimal `json:"totalAmount" binding:"required"`
}

// MotorcycleSummaryResponse is the embedded motorcycle view on a rental.
type MotorcycleSummaryResponse struct {
	Brand       string `json:"brand"`
	Model       string `json:"model"`
	PlateNumber string `json:"plateNumber"`
}

// CustomerSummaryResponse is the embedded customer view on a rental.
type CustomerSummaryResponse struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// RentalResponse defines the data returned for a rental.
type RentalResponse struct {
	RentalID       string                     `json:"rentalID"`
	MotorcycleID   string                     `json:"motorcycleID"`
	CustomerID     string                     `json:"customerID"`
	StartDate      time.Time                  `json:"startDate"`
	PlannedEndDate time.Time                  `json:"plannedEndDate"`
	EndDate        *time.Time                 `json:"endDate,omitempty"`
	DailyRate      float64                    `json:"dailyRate"`
	Deposit        float64                    `json:"deposit"`
	TotalAmount    *float64                   `json:"totalAmount,omitempty"`
	Status         string                     `json:"status"`
	Notes          string                     `json:"notes"`
	Motorcycle     *MotorcycleSummaryResponse `json:"motorcycle,omitempty"`
	Customer       *CustomerSummaryResponse   `json:"customer,omitempty"`
	CreatedAt      time.Time                  `json:"createdAt"`
	CreatedBy      string                     `json:"createdBy"`
	LastUpdatedAt  time.Time                  `json:"lastUpdatedAt"`
	LastUpdatedBy  string                     `json:"lastUpdatedBy"`
}

// ListRentalsParams defines query parameters for listing rentals.
type ListRentalsParams struct {
	Limit     int     `form:"limit,default=20"`
	NextToken *string `form:"nextToken"`
	Status    *string `form:"status"`
}

// ListRentalsResponse wraps the paginated list of rentals.
type ListRentalsResponse struct {
	Rentals   []RentalResponse `json:"rentals"`
	NextToken *string          `json:"nextToken,omitempty"`
}

// SweepOverdueResponse reports the outcome of an overdue sweep: how many
// rentals were newly marked and the full overdue set afterwards.
type SweepOverdueResponse struct {
	MarkedOverdue int64            `json:"markedOverdue"`
	Overdue       []RentalResponse `json:"overdue"`
}

// ToSweepOverdueResponse converts the sweep outcome to its DTO.
func ToSweepOverdueResponse(overdue []domain.Rental, marked int64) SweepOverdueResponse {
	responses := make([]RentalResponse, len(overdue))
	for i, r := range overdue {
		responses[i] = ToRentalResponse(&r)
	}
	return SweepOverdueResponse{
		MarkedOverdue: marked,
		Overdue:       responses,
	}
}

// ToRentalResponse converts a domain.Rental to RentalResponse DTO.
func ToRentalResponse(r *domain.Rental) RentalResponse {
	resp := RentalResponse{
		RentalID:       r.RentalID,
		MotorcycleID:   r.MotorcycleID,
		CustomerID:     r.CustomerID,
		StartDate:      r.StartDate,
		PlannedEndDate: r.PlannedEndDate,
		EndDate:        r.EndDate,
		DailyRate:      r.DailyRate.InexactFloat64(),
		Deposit:        r.Deposit.InexactFloat64(),
		Status:         string(r.Status),
		Notes:          r.Notes,
		CreatedAt:      r.CreatedAt,
		CreatedBy:      r.CreatedBy,
		LastUpdatedAt:  r.LastUpdatedAt,
		LastUpdatedBy:  r.LastUpdatedBy,
	}
	if r.TotalAmount != nil {
		total := r.TotalAmount.InexactFloat64()
		resp.TotalAmount = &total
	}
	if r.Motorcycle != nil {
		resp.Motorcycle = &MotorcycleSummaryResponse{
			Brand:       r.Motorcycle.Brand,
			Model:       r.Motorcycle.Model,
			PlateNumber: r.Motorcycle.PlateNumber,
		}
	}
	if r.Customer != nil {
		resp.Customer = &CustomerSummaryResponse{
			Name:  r.Customer.Name,
			Phone: r.Customer.Phone,
		}
	}
	return resp
}

// ToListRentalsResponse converts a slice of domain.Rental to ListRentalsResponse.
func ToListRentalsResponse(rentals []domain.Rental, nextToken *string) ListRentalsResponse {
	responses := make([]RentalResponse, len(rentals))
	for i, r := range rentals {
		responses[i] = ToRentalResponse(&r)
	}
	return ListRentalsResponse{
		Rentals:   responses,
		NextToken: nextToken,
	}
}

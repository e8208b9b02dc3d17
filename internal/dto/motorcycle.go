package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/sjrent/sjrent_backend/internal/core/domain"
)

// CreateMotorcycleRequest defines the data needed to register a motorcycle.
type CreateMotorcycleRequest struct {
	Brand       string          `json:"brand" binding:"required"`
	Model       string          `json:"model" binding:"required"`
	Year        int             `json:"year" binding:"required,gte=1950"`
	Color       string          `json:"color"`
	PlateNumber string          `json:"plateNumber" binding:"required"`
	EngineSize  int             `json:"engineSize"` // Displacement in cc
	Condition   string          `json:"condition"`
	DailyRate   decimal.Decimal `json:"dailyRate" binding:"required"`
}

// UpdateMotorcycleRequest defines the data allowed for updating a motorcycle.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateMotorcycleRequest struct {
	Brand       *string          `json:"brand"`
	Model       *string          `json:"model"`
	Year        *int             `json:"year"`
	Color       *string          `json:"color"`
	PlateNumber *string          `json:"plateNumber"`
	EngineSize  *int             `json:"engineSize"`
	Condition   *string          `json:"condition"`
	DailyRate   *decimal.Decimal `json:"dailyRate"`
}

// SetMotorcycleStatusRequest defines the payload for a status transition.
type SetMotorcycleStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=AVAILABLE RENTED MAINTENANCE OUT_OF_SERVICE"`
}

// MotorcycleResponse defines the data returned for a motorcycle.
type MotorcycleResponse struct {
	MotorcycleID  string    `json:"motorcycleID"`
	Brand         string    `json:"brand"`
	Model         string    `json:"model"`
	Year          int       `json:"year"`
	Color         string    `json:"color"`
	PlateNumber   string    `json:"plateNumber"`
	EngineSize    int       `json:"engineSize"`
	Condition     string    `json:"condition"`
	DailyRate     float64   `json:"dailyRate"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"`
}

// ListMotorcyclesParams defines query parameters for listing motorcycles.
type ListMotorcyclesParams struct {
	Limit     int     `form:"limit,default=20"`
	NextToken *string `form:"nextToken"`
	Status    *string `form:"status"`
}

// ListMotorcyclesResponse wraps the paginated list of motorcycles.
type ListMotorcyclesResponse struct {
	Motorcycles []MotorcycleResponse `json:"motorcycles"`
	NextToken   *string              `json:"nextToken,omitempty"`
}

// ToMotorcycleResponse converts a domain.Motorcycle to MotorcycleResponse DTO.
func ToMotorcycleResponse(m *domain.Motorcycle) MotorcycleResponse {
	return MotorcycleResponse{
		MotorcycleID:  m.MotorcycleID,
		Brand:         m.Brand,
		Model:         m.Model,
		Year:          m.Year,
		Color:         m.Color,
		PlateNumber:   m.PlateNumber,
		EngineSize:    m.EngineSize,
		Condition:     m.Condition,
		DailyRate:     m.DailyRate.InexactFloat64(),
		Status:        string(m.Status),
		CreatedAt:     m.CreatedAt,
		CreatedBy:     m.CreatedBy,
		LastUpdatedAt: m.LastUpdatedAt,
		LastUpdatedBy: m.LastUpdatedBy,
	}
}

// ToListMotorcyclesResponse converts a slice of domain.Motorcycle to ListMotorcyclesResponse.
func ToListMotorcyclesResponse(motorcycles []domain.Motorcycle, nextToken *string) ListMotorcyclesResponse {
	responses := make([]MotorcycleResponse, len(motorcycles))
	for i, m := range motorcycles {
		responses[i] = ToMotorcycleResponse(&m)
	}
	return ListMotorcyclesResponse{
		Motorcycles: responses,
		NextToken:   nextToken,
	}
}

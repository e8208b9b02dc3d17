package domain_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/sjrent/sjrent_backend/internal/core/domain"
)

func TestRentalStatus_IsTerminal(t *testing.T) {
	assert.False(t, domain.RentalActive.IsTerminal())
	assert.False(t, domain.RentalOverdue.IsTerminal())
	assert.True(t, domain.RentalCompleted.IsTerminal())
	assert.True(t, domain.RentalCancelled.IsTerminal())
}

func TestRentalStatus_IsOpen(t *testing.T) {
	assert.True(t, domain.RentalActive.IsOpen())
	assert.True(t, domain.RentalOverdue.IsOpen())
	assert.False(t, domain.RentalCompleted.IsOpen())
	assert.False(t, domain.RentalCancelled.IsOpen())
}

func TestParseRentalStatus(t *testing.T) {
	status, err := domain.ParseRentalStatus("ACTIVE")
	assert.NoError(t, err)
	assert.Equal(t, domain.RentalActive, status)

	_, err = domain.ParseRentalStatus("RUNNING")
	assert.Error(t, err)
}

func TestParseMotorcycleStatus(t *testing.T) {
	status, err := domain.ParseMotorcycleStatus("OUT_OF_SERVICE")
	assert.NoError(t, err)
	assert.Equal(t, domain.MotorcycleOutOfService, status)

	_, err = domain.ParseMotorcycleStatus("PARKED")
	assert.Error(t, err)
}

func TestRental_FinalPayment(t *testing.T) {
	rental := domain.Rental{Deposit: decimal.NewFromInt(150000)}

	remaining := rental.FinalPayment(decimal.NewFromInt(240000))
	assert.True(t, remaining.Equal(decimal.NewFromInt(90000)))

	covered := rental.FinalPayment(decimal.NewFromInt(135000))
	assert.False(t, covered.IsPositive())
}

func TestParseIncomeCategory(t *testing.T) {
	category, err := domain.ParseIncomeCategory("DEPOSIT")
	assert.NoError(t, err)
	assert.Equal(t, domain.IncomeDeposit, category)

	_, err = domain.ParseIncomeCategory("WINDFALL")
	assert.Error(t, err)
}

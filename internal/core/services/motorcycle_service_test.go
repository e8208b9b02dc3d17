package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/sjrent/sjrent_backend/internal/apperrors"
	"github.com/sjrent/sjrent_backend/internal/core/domain"
	portssvc "github.com/sjrent/sjrent_backend/internal/core/ports/services"
	"github.com/sjrent/sjrent_backend/internal/core/services"
	"github.com/sjrent/sjrent_backend/internal/dto"
)

type MotorcycleServiceTestSuite struct {
	suite.Suite
	mockMotorcycleRepo *MockMotorcycleRepository
	mockRentalRepo     *MockRentalRepository
	service            portssvc.MotorcycleSvcFacade
}

func (suite *MotorcycleServiceTestSuite) SetupTest() {
	suite.mockMotorcycleRepo = new(MockMotorcycleRepository)
	suite.mockRentalRepo = new(MockRentalRepository)
	suite.service = services.NewMotorcycleService(suite.mockMotorcycleRepo, suite.mockRentalRepo)
}

func (suite *MotorcycleServiceTestSuite) TestCreateMotorcycle_StartsAvailable() {
	ctx := context.Background()
	creatorUserID := uuid.NewString()
	req := dto.CreateMotorcycleRequest{
		Brand:       "Yamaha",
		Model:       "NMAX",
		Year:        2023,
		PlateNumber: "B5678CD",
		DailyRate:   decimal.NewFromInt(80000),
	}

	suite.mockMotorcycleRepo.On("SaveMotorcycle", ctx, mock.AnythingOfType("domain.Motorcycle")).Return(nil).Once()

	created, err := suite.service.CreateMotorcycle(ctx, req, creatorUserID)

	suite.Require().NoError(err)
	suite.Require().NotNil(created)
	suite.NotEmpty(created.MotorcycleID)
	suite.Equal(domain.MotorcycleAvailable, created.Status)
	suite.Equal(req.PlateNumber, created.PlateNumber)
	suite.Equal(creatorUserID, created.CreatedBy)
	suite.WithinDuration(time.Now(), created.CreatedAt, time.Second)
	suite.mockMotorcycleRepo.AssertExpectations(suite.T())
}

func (suite *MotorcycleServiceTestSuite) TestCreateMotorcycle_NonPositiveRate() {
	ctx := context.Background()
	req := dto.CreateMotorcycleRequest{
		Brand:       "Yamaha",
		Model:       "NMAX",
		Year:        2023,
		PlateNumber: "B5678CD",
		DailyRate:   decimal.Zero,
	}

	created, err := suite.service.CreateMotorcycle(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(created)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockMotorcycleRepo.AssertNotCalled(suite.T(), "SaveMotorcycle", mock.Anything, mock.Anything)
}

func (suite *MotorcycleServiceTestSuite) TestSetMotorcycleStatus_Success() {
	ctx := context.Background()
	requestingUserID := uuid.NewString()
	motorcycle := &domain.Motorcycle{
		MotorcycleID: uuid.NewString(),
		PlateNumber:  "B1357MN",
		Status:       domain.MotorcycleAvailable,
	}

	suite.mockMotorcycleRepo.On("FindMotorcycleByID", ctx, motorcycle.MotorcycleID).Return(motorcycle, nil).Once()
	suite.mockMotorcycleRepo.On("UpdateMotorcycleStatus", ctx, motorcycle.MotorcycleID,
		domain.MotorcycleMaintenance, requestingUserID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	updated, err := suite.service.SetMotorcycleStatus(ctx, motorcycle.MotorcycleID, domain.MotorcycleMaintenance, requestingUserID)

	suite.Require().NoError(err)
	suite.Equal(domain.MotorcycleMaintenance, updated.Status)
	suite.Equal(requestingUserID, updated.LastUpdatedBy)
	suite.mockMotorcycleRepo.AssertExpectations(suite.T())
}

func (suite *MotorcycleServiceTestSuite) TestDeleteMotorcycle_BlockedByOpenRentals() {
	ctx := context.Background()
	motorcycle := &domain.Motorcycle{
		MotorcycleID: uuid.NewString(),
		Status:       domain.MotorcycleRented,
	}
	openRentals := []domain.Rental{
		{RentalID: uuid.NewString(), Status: domain.RentalActive},
	}

	suite.mockMotorcycleRepo.On("FindMotorcycleByID", ctx, motorcycle.MotorcycleID).Return(motorcycle, nil).Once()
	suite.mockRentalRepo.On("ListOpenRentalsByMotorcycle", ctx, motorcycle.MotorcycleID).Return(openRentals, nil).Once()

	err := suite.service.DeleteMotorcycle(ctx, motorcycle.MotorcycleID, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockMotorcycleRepo.AssertNotCalled(suite.T(), "DeleteMotorcycle", mock.Anything, mock.Anything)
}

func (suite *MotorcycleServiceTestSuite) TestDeleteMotorcycle_Success() {
	ctx := context.Background()
	motorcycle := &domain.Motorcycle{
		MotorcycleID: uuid.NewString(),
		Status:       domain.MotorcycleAvailable,
	}

	suite.mockMotorcycleRepo.On("FindMotorcycleByID", ctx, motorcycle.MotorcycleID).Return(motorcycle, nil).Once()
	suite.mockRentalRepo.On("ListOpenRentalsByMotorcycle", ctx, motorcycle.MotorcycleID).Return([]domain.Rental{}, nil).Once()
	suite.mockMotorcycleRepo.On("DeleteMotorcycle", ctx, motorcycle.MotorcycleID).Return(nil).Once()

	err := suite.service.DeleteMotorcycle(ctx, motorcycle.MotorcycleID, uuid.NewString())

	suite.Require().NoError(err)
	suite.mockMotorcycleRepo.AssertExpectations(suite.T())
	suite.mockRentalRepo.AssertExpectations(suite.T())
}

func (suite *MotorcycleServiceTestSuite) TestListMotorcycles_InvalidStatusFilter() {
	ctx := context.Background()
	badStatus := "PARKED"

	result, err := suite.service.ListMotorcycles(ctx, uuid.NewString(), dto.ListMotorcyclesParams{Limit: 20, Status: &badStatus})

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *MotorcycleServiceTestSuite) TestUpdateMotorcycle_RepoError() {
	ctx := context.Background()
	motorcycle := &domain.Motorcycle{
		MotorcycleID: uuid.NewString(),
		DailyRate:    decimal.NewFromInt(50000),
		Status:       domain.MotorcycleAvailable,
	}
	newBrand := "Suzuki"

	suite.mockMotorcycleRepo.On("FindMotorcycleByID", ctx, motorcycle.MotorcycleID).Return(motorcycle, nil).Once()
	suite.mockMotorcycleRepo.On("UpdateMotorcycle", ctx, mock.AnythingOfType("domain.Motorcycle")).Return(assert.AnError).Once()

	updated, err := suite.service.UpdateMotorcycle(ctx, motorcycle.MotorcycleID, dto.UpdateMotorcycleRequest{Brand: &newBrand}, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(updated)
	suite.mockMotorcycleRepo.AssertExpectations(suite.T())
}

func TestMotorcycleServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MotorcycleServiceTestSuite))
}

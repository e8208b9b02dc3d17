package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/sjrent/sjrent_backend/internal/apperrors"
	"github.com/sjrent/sjrent_backend/internal/core/domain"
	portssvc "github.com/sjrent/sjrent_backend/internal/core/ports/services"
	"github.com/sjrent/sjrent_backend/internal/core/services"
	"github.com/sjrent/sjrent_backend/internal/dto"
)

type CustomerServiceTestSuite struct {
	suite.Suite
	mockRepo *MockCustomerRepository
	service  portssvc.CustomerSvcFacade
}

func (suite *CustomerServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockCustomerRepository)
	suite.service = services.NewCustomerService(suite.mockRepo)
}

func (suite *CustomerServiceTestSuite) TestCreateCustomer_Success() {
	ctx := context.Background()
	creatorUserID := uuid.NewString()
	req := dto.CreateCustomerRequest{
		Name:          "Budi Santoso",
		Email:         "budi@example.com",
		Phone:         "+62-812-1111-0001",
		LicenseNumber: "SIM-C-0001",
	}

	suite.mockRepo.On("SaveCustomer", ctx, mock.AnythingOfType("domain.Customer")).Return(nil).Once()

	created, err := suite.service.CreateCustomer(ctx, req, creatorUserID)

	suite.Require().NoError(err)
	suite.Require().NotNil(created)
	suite.NotEmpty(created.CustomerID)
	suite.Equal(req.Name, created.Name)
	suite.Equal(creatorUserID, created.CreatedBy)
	suite.WithinDuration(time.Now(), created.CreatedAt, time.Second)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CustomerServiceTestSuite) TestUpdateCustomer_PartialUpdate() {
	ctx := context.Background()
	requestingUserID := uuid.NewString()
	existing := &domain.Customer{
		CustomerID: uuid.NewString(),
		Name:       "Budi Santoso",
		Phone:      "+62-812-1111-0001",
	}
	newPhone := "+62-812-9999-0001"

	suite.mockRepo.On("FindCustomerByID", ctx, existing.CustomerID).Return(existing, nil).Once()
	suite.mockRepo.On("UpdateCustomer", ctx, mock.MatchedBy(func(c domain.Customer) bool {
		return c.Phone == newPhone && c.Name == "Budi Santoso" && c.LastUpdatedBy == requestingUserID
	})).Return(nil).Once()

	updated, err := suite.service.UpdateCustomer(ctx, existing.CustomerID, dto.UpdateCustomerRequest{Phone: &newPhone}, requestingUserID)

	suite.Require().NoError(err)
	suite.Equal(newPhone, updated.Phone)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CustomerServiceTestSuite) TestDeleteCustomer_NotFound() {
	ctx := context.Background()
	customerID := uuid.NewString()

	suite.mockRepo.On("FindCustomerByID", ctx, customerID).Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.DeleteCustomer(ctx, customerID, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertNotCalled(suite.T(), "DeleteCustomer", mock.Anything, mock.Anything)
}

func (suite *CustomerServiceTestSuite) TestGetCustomerByID_MissingActor() {
	ctx := context.Background()

	customer, err := suite.service.GetCustomerByID(ctx, uuid.NewString(), "")

	suite.Require().Error(err)
	suite.Nil(customer)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func TestCustomerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CustomerServiceTestSuite))
}

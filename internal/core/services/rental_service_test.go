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
	portsrepo "github.com/sjrent/sjrent_backend/internal/core/ports/repositories"
	portssvc "github.com/sjrent/sjrent_backend/internal/core/ports/services"
	"github.com/sjrent/sjrent_backend/internal/core/services"
	"github.com/sjrent/sjrent_backend/internal/dto"
)

// MockRentalRepository is a mock type for the RentalRepositoryFacade interface
type MockRentalRepository struct {
	mock.Mock
}

var _ portsrepo.RentalRepositoryFacade = (*MockRentalRepository)(nil)

func (m *MockRentalRepository) FindRentalByID(ctx context.Context, rentalID string) (*domain.Rental, error) {
	args := m.Called(ctx, rentalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}

func (m *MockRentalRepository) ListRentals(ctx context.Context, limit int, nextToken *string, status *domain.RentalStatus) ([]domain.Rental, *string, error) {
	args := m.Called(ctx, limit, nextToken, status)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return args.Get(0).([]domain.Rental), token, args.Error(2)
}

func (m *MockRentalRepository) ListOpenRentalsByMotorcycle(ctx context.Context, motorcycleID string) ([]domain.Rental, error) {
	args := m.Called(ctx, motorcycleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Rental), args.Error(1)
}

func (m *MockRentalRepository) ListOverdueRentals(ctx context.Context) ([]domain.Rental, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Rental), args.Error(1)
}

func (m *MockRentalRepository) CountRentalsByStatus(ctx context.Context, status domain.RentalStatus) (int, error) {
	args := m.Called(ctx, status)
	return args.Int(0), args.Error(1)
}

func (m *MockRentalRepository) SaveRental(ctx context.Context, rental domain.Rental, depositEntry *domain.Income) error {
	args := m.Called(ctx, rental, depositEntry)
	return args.Error(0)
}

func (m *MockRentalRepository) CompleteRental(ctx context.Context, rentalID string, endDate time.Time, totalAmount decimal.Decimal, finalPaymentEntry *domain.Income, updatedByUserID string, updatedAt time.Time) error {
	args := m.Called(ctx, rentalID, endDate, totalAmount, finalPaymentEntry, updatedByUserID, updatedAt)
	return args.Error(0)
}

func (m *MockRentalRepository) CancelRental(ctx context.Context, rentalID string, updatedByUserID string, updatedAt time.Time) error {
	args := m.Called(ctx, rentalID, updatedByUserID, updatedAt)
	return args.Error(0)
}

func (m *MockRentalRepository) MarkOverdueRentals(ctx context.Context, asOf time.Time, updatedByUserID string, updatedAt time.Time) (int64, error) {
	args := m.Called(ctx, asOf, updatedByUserID, updatedAt)
	return args.Get(0).(int64), args.Error(1)
}

// MockMotorcycleRepository is a mock type for the MotorcycleRepositoryFacade interface
type MockMotorcycleRepository struct {
	mock.Mock
}

var _ portsrepo.MotorcycleRepositoryFacade = (*MockMotorcycleRepository)(nil)

func (m *MockMotorcycleRepository) FindMotorcycleByID(ctx context.Context, motorcycleID string) (*domain.Motorcycle, error) {
	args := m.Called(ctx, motorcycleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Motorcycle), args.Error(1)
}

func (m *MockMotorcycleRepository) ListMotorcycles(ctx context.Context, limit int, nextToken *string, status *domain.MotorcycleStatus) ([]domain.Motorcycle, *string, error) {
	args := m.Called(ctx, limit, nextToken, status)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return args.Get(0).([]domain.Motorcycle), token, args.Error(2)
}

func (m *MockMotorcycleRepository) CountMotorcyclesByStatus(ctx context.Context, status domain.MotorcycleStatus) (int, error) {
	args := m.Called(ctx, status)
	return args.Int(0), args.Error(1)
}

func (m *MockMotorcycleRepository) SaveMotorcycle(ctx context.Context, motorcycle domain.Motorcycle) error {
	args := m.Called(ctx, motorcycle)
	return args.Error(0)
}

func (m *MockMotorcycleRepository) UpdateMotorcycle(ctx context.Context, motorcycle domain.Motorcycle) error {
	args := m.Called(ctx, motorcycle)
	return args.Error(0)
}

func (m *MockMotorcycleRepository) UpdateMotorcycleStatus(ctx context.Context, motorcycleID string, status domain.MotorcycleStatus, updatedByUserID string, updatedAt time.Time) error {
	args := m.Called(ctx, motorcycleID, status, updatedByUserID, updatedAt)
	return args.Error(0)
}

func (m *MockMotorcycleRepository) DeleteMotorcycle(ctx context.Context, motorcycleID string) error {
	args := m.Called(ctx, motorcycleID)
	return args.Error(0)
}

// MockCustomerRepository is a mock type for the CustomerRepositoryFacade interface
type MockCustomerRepository struct {
	mock.Mock
}

var _ portsrepo.CustomerRepositoryFacade = (*MockCustomerRepository)(nil)

func (m *MockCustomerRepository) FindCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *MockCustomerRepository) ListCustomers(ctx context.Context, limit int, nextToken *string) ([]domain.Customer, *string, error) {
	args := m.Called(ctx, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return args.Get(0).([]domain.Customer), token, args.Error(2)
}

func (m *MockCustomerRepository) SaveCustomer(ctx context.Context, customer domain.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *MockCustomerRepository) UpdateCustomer(ctx context.Context, customer domain.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *MockCustomerRepository) DeleteCustomer(ctx context.Context, customerID string) error {
	args := m.Called(ctx, customerID)
	return args.Error(0)
}

// --- Test Suite Setup ---

type RentalServiceTestSuite struct {
	suite.Suite
	mockRentalRepo     *MockRentalRepository
	mockMotorcycleRepo *MockMotorcycleRepository
	mockCustomerRepo   *MockCustomerRepository
	service            portssvc.RentalSvcFacade
}

func (suite *RentalServiceTestSuite) SetupTest() {
	suite.mockRentalRepo = new(MockRentalRepository)
	suite.mockMotorcycleRepo = new(MockMotorcycleRepository)
	suite.mockCustomerRepo = new(MockCustomerRepository)
	suite.service = services.NewRentalService(suite.mockRentalRepo, suite.mockMotorcycleRepo, suite.mockCustomerRepo)
}

func (suite *RentalServiceTestSuite) availableMotorcycle() *domain.Motorcycle {
	return &domain.Motorcycle{
		MotorcycleID: uuid.NewString(),
		Brand:        "Honda",
		Model:        "Beat Street",
		Year:         2022,
		PlateNumber:  "B1234AB",
		DailyRate:    decimal.NewFromInt(45000),
		Status:       domain.MotorcycleAvailable,
	}
}

func (suite *RentalServiceTestSuite) customer() *domain.Customer {
	return &domain.Customer{
		CustomerID: uuid.NewString(),
		Name:       "Budi Santoso",
		Phone:      "+62-812-1111-0001",
	}
}

// --- CreateRental ---

func (suite *RentalServiceTestSuite) TestCreateRental_Success_RecordsDeposit() {
	ctx := context.Background()
	creatorUserID := uuid.NewString()
	motorcycle := suite.availableMotorcycle()
	customer := suite.customer()

	start := time.Date(2024, 10, 1, 0, 0, 0, 0, time.UTC)
	req := dto.CreateRentalRequest{
		MotorcycleID:   motorcycle.MotorcycleID,
		CustomerID:     customer.CustomerID,
		StartDate:      start,
		PlannedEndDate: start.AddDate(0, 0, 4),
		Deposit:        decimal.NewFromInt(200000),
	}

	suite.mockMotorcycleRepo.On("FindMotorcycleByID", ctx, motorcycle.MotorcycleID).Return(motorcycle, nil).Once()
	suite.mockCustomerRepo.On("FindCustomerByID", ctx, customer.CustomerID).Return(customer, nil).Once()
	suite.mockRentalRepo.On("SaveRental", ctx, mock.AnythingOfType("domain.Rental"), mock.MatchedBy(func(entry *domain.Income) bool {
		return entry != nil &&
			entry.Category == domain.IncomeDeposit &&
			entry.Amount.Equal(req.Deposit) &&
			entry.Source == customer.Name &&
			entry.Date.Equal(start) &&
			entry.RentalID != nil
	})).Return(nil).Once()

	created, err := suite.service.CreateRental(ctx, req, creatorUserID)

	suite.Require().NoError(err)
	suite.Require().NotNil(created)
	suite.NotEmpty(created.RentalID)
	suite.Equal(domain.RentalActive, created.Status)
	suite.True(created.DailyRate.Equal(motorcycle.DailyRate))
	suite.Equal(creatorUserID, created.CreatedBy)
	suite.Require().NotNil(created.Motorcycle)
	suite.Equal(motorcycle.PlateNumber, created.Motorcycle.PlateNumber)
	suite.Require().NotNil(created.Customer)
	suite.Equal(customer.Name, created.Customer.Name)

	suite.mockRentalRepo.AssertExpectations(suite.T())
	suite.mockMotorcycleRepo.AssertExpectations(suite.T())
	suite.mockCustomerRepo.AssertExpectations(suite.T())
}

func (suite *RentalServiceTestSuite) TestCreateRental_ZeroDeposit_NoLedgerEntry() {
	ctx := context.Background()
	motorcycle := suite.availableMotorcycle()
	customer := suite.customer()

	start := time.Date(2024, 10, 1, 0, 0, 0, 0, time.UTC)
	req := dto.CreateRentalRequest{
		MotorcycleID:   motorcycle.MotorcycleID,
		CustomerID:     customer.CustomerID,
		StartDate:      start,
		PlannedEndDate: start.AddDate(0, 0, 2),
		Deposit:        decimal.Zero,
	}

	suite.mockMotorcycleRepo.On("FindMotorcycleByID", ctx, motorcycle.MotorcycleID).Return(motorcycle, nil).Once()
	suite.mockCustomerRepo.On("FindCustomerByID", ctx, customer.CustomerID).Return(customer, nil).Once()
	suite.mockRentalRepo.On("SaveRental", ctx, mock.AnythingOfType("domain.Rental"), (*domain.Income)(nil)).Return(nil).Once()

	created, err := suite.service.CreateRental(ctx, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.Require().NotNil(created)
	suite.mockRentalRepo.AssertExpectations(suite.T())
}

func (suite *RentalServiceTestSuite) TestCreateRental_CustomDailyRate() {
	ctx := context.Background()
	motorcycle := suite.availableMotorcycle()
	customer := suite.customer()

	start := time.Date(2024, 10, 1, 0, 0, 0, 0, time.UTC)
	customRate := decimal.NewFromInt(60000)
	req := dto.CreateRentalRequest{
		MotorcycleID:   motorcycle.MotorcycleID,
		CustomerID:     customer.CustomerID,
		StartDate:      start,
		PlannedEndDate: start.AddDate(0, 0, 3),
		DailyRate:      &customRate,
		Deposit:        decimal.Zero,
	}

	suite.mockMotorcycleRepo.On("FindMotorcycleByID", ctx, motorcycle.MotorcycleID).Return(motorcycle, nil).Once()
	suite.mockCustomerRepo.On("FindCustomerByID", ctx, customer.CustomerID).Return(customer, nil).Once()
	suite.mockRentalRepo.On("SaveRental", ctx, mock.MatchedBy(func(r domain.Rental) bool {
		return r.DailyRate.Equal(customRate)
	}), (*domain.Income)(nil)).Return(nil).Once()

	created, err := suite.service.CreateRental(ctx, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.True(created.DailyRate.Equal(customRate))
	suite.mockRentalRepo.AssertExpectations(suite.T())
}

func (suite *RentalServiceTestSuite) TestCreateRental_MotorcycleNotAvailable() {
	ctx := context.Background()
	motorcycle := suite.availableMotorcycle()
	motorcycle.Status = domain.MotorcycleRented

	start := time.Date(2024, 10, 1, 0, 0, 0, 0, time.UTC)
	req := dto.CreateRentalRequest{
		MotorcycleID:   motorcycle.MotorcycleID,
		CustomerID:     uuid.NewString(),
		StartDate:      start,
		PlannedEndDate: start.AddDate(0, 0, 2),
	}

	suite.mockMotorcycleRepo.On("FindMotorcycleByID", ctx, motorcycle.MotorcycleID).Return(motorcycle, nil).Once()

	created, err := suite.service.CreateRental(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(created)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockRentalRepo.AssertNotCalled(suite.T(), "SaveRental", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *RentalServiceTestSuite) TestCreateRental_EndNotAfterStart() {
	ctx := context.Background()
	start := time.Date(2024, 10, 5, 0, 0, 0, 0, time.UTC)
	req := dto.CreateRentalRequest{
		MotorcycleID:   uuid.NewString(),
		CustomerID:     uuid.NewString(),
		StartDate:      start,
		PlannedEndDate: start,
	}

	created, err := suite.service.CreateRental(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(created)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *RentalServiceTestSuite) TestCreateRental_NegativeDeposit() {
	ctx := context.Background()
	start := time.Date(2024, 10, 1, 0, 0, 0, 0, time.UTC)
	req := dto.CreateRentalRequest{
		MotorcycleID:   uuid.NewString(),
		CustomerID:     uuid.NewString(),
		StartDate:      start,
		PlannedEndDate: start.AddDate(0, 0, 2),
		Deposit:        decimal.NewFromInt(-1),
	}

	created, err := suite.service.CreateRental(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(created)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *RentalServiceTestSuite) TestCreateRental_MissingCreator() {
	ctx := context.Background()
	start := time.Date(2024, 10, 1, 0, 0, 0, 0, time.UTC)
	req := dto.CreateRentalRequest{
		MotorcycleID:   uuid.NewString(),
		CustomerID:     uuid.NewString(),
		StartDate:      start,
		PlannedEndDate: start.AddDate(0, 0, 2),
	}

	created, err := suite.service.CreateRental(ctx, req, "")

	suite.Require().Error(err)
	suite.Nil(created)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

// --- CompleteRental ---

func (suite *RentalServiceTestSuite) TestCompleteRental_RecordsRemainingPayment() {
	ctx := context.Background()
	requestingUserID := uuid.NewString()
	rentalID := uuid.NewString()

	rental := &domain.Rental{
		RentalID: rentalID,
		Deposit:  decimal.NewFromInt(150000),
		Status:   domain.RentalActive,
		Motorcycle: &domain.MotorcycleSummary{
			Brand:       "Honda",
			Model:       "Vario 160",
			PlateNumber: "B9012EF",
		},
		Customer: &domain.CustomerSummary{Name: "Siti Nurhaliza"},
	}
	totalAmount := decimal.NewFromInt(240000)

	suite.mockRentalRepo.On("FindRentalByID", ctx, rentalID).Return(rental, nil).Once()
	suite.mockRentalRepo.On("CompleteRental", ctx, rentalID,
		mock.AnythingOfType("time.Time"), totalAmount,
		mock.MatchedBy(func(entry *domain.Income) bool {
			return entry != nil &&
				entry.Category == domain.IncomeRentalPayment &&
				entry.Amount.Equal(decimal.NewFromInt(90000)) &&
				entry.Source == "Siti Nurhaliza"
		}),
		requestingUserID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	completed := *rental
	completed.Status = domain.RentalCompleted
	completed.TotalAmount = &totalAmount
	suite.mockRentalRepo.On("FindRentalByID", ctx, rentalID).Return(&completed, nil).Once()

	result, err := suite.service.CompleteRental(ctx, rentalID, dto.CompleteRentalRequest{TotalAmount: totalAmount}, requestingUserID)

	suite.Require().NoError(err)
	suite.Require().NotNil(result)
	suite.Equal(domain.RentalCompleted, result.Status)
	suite.mockRentalRepo.AssertExpectations(suite.T())
}

func (suite *RentalServiceTestSuite) TestCompleteRental_DepositCoversTotal_NoPaymentEntry() {
	ctx := context.Background()
	requestingUserID := uuid.NewString()
	rentalID := uuid.NewString()

	rental := &domain.Rental{
		RentalID: rentalID,
		Deposit:  decimal.NewFromInt(200000),
		Status:   domain.RentalOverdue,
	}
	totalAmount := decimal.NewFromInt(180000)

	suite.mockRentalRepo.On("FindRentalByID", ctx, rentalID).Return(rental, nil).Once()
	suite.mockRentalRepo.On("CompleteRental", ctx, rentalID,
		mock.AnythingOfType("time.Time"), totalAmount, (*domain.Income)(nil),
		requestingUserID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	completed := *rental
	completed.Status = domain.RentalCompleted
	suite.mockRentalRepo.On("FindRentalByID", ctx, rentalID).Return(&completed, nil).Once()

	result, err := suite.service.CompleteRental(ctx, rentalID, dto.CompleteRentalRequest{TotalAmount: totalAmount}, requestingUserID)

	suite.Require().NoError(err)
	suite.Equal(domain.RentalCompleted, result.Status)
	suite.mockRentalRepo.AssertExpectations(suite.T())
}

func (suite *RentalServiceTestSuite) TestCompleteRental_AlreadyTerminal() {
	ctx := context.Background()
	rentalID := uuid.NewString()

	rental := &domain.Rental{
		RentalID: rentalID,
		Status:   domain.RentalCancelled,
	}

	suite.mockRentalRepo.On("FindRentalByID", ctx, rentalID).Return(rental, nil).Once()

	result, err := suite.service.CompleteRental(ctx, rentalID, dto.CompleteRentalRequest{TotalAmount: decimal.NewFromInt(100000)}, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockRentalRepo.AssertNotCalled(suite.T(), "CompleteRental",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *RentalServiceTestSuite) TestCompleteRental_NegativeTotal() {
	ctx := context.Background()

	result, err := suite.service.CompleteRental(ctx, uuid.NewString(), dto.CompleteRentalRequest{TotalAmount: decimal.NewFromInt(-5)}, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

// --- CancelRental ---

func (suite *RentalServiceTestSuite) TestCancelRental_Success() {
	ctx := context.Background()
	requestingUserID := uuid.NewString()
	rentalID := uuid.NewString()

	rental := &domain.Rental{
		RentalID: rentalID,
		Status:   domain.RentalActive,
	}

	suite.mockRentalRepo.On("FindRentalByID", ctx, rentalID).Return(rental, nil).Once()
	suite.mockRentalRepo.On("CancelRental", ctx, rentalID, requestingUserID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	cancelled := *rental
	cancelled.Status = domain.RentalCancelled
	suite.mockRentalRepo.On("FindRentalByID", ctx, rentalID).Return(&cancelled, nil).Once()

	result, err := suite.service.CancelRental(ctx, rentalID, requestingUserID)

	suite.Require().NoError(err)
	suite.Equal(domain.RentalCancelled, result.Status)
	suite.mockRentalRepo.AssertExpectations(suite.T())
}

func (suite *RentalServiceTestSuite) TestCancelRental_AlreadyTerminal() {
	ctx := context.Background()
	rentalID := uuid.NewString()

	rental := &domain.Rental{
		RentalID: rentalID,
		Status:   domain.RentalCompleted,
	}

	suite.mockRentalRepo.On("FindRentalByID", ctx, rentalID).Return(rental, nil).Once()

	result, err := suite.service.CancelRental(ctx, rentalID, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockRentalRepo.AssertNotCalled(suite.T(), "CancelRental", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// --- ListRentals ---

func (suite *RentalServiceTestSuite) TestListRentals_InvalidStatusFilter() {
	ctx := context.Background()
	badStatus := "RUNNING"

	result, err := suite.service.ListRentals(ctx, uuid.NewString(), dto.ListRentalsParams{Limit: 20, Status: &badStatus})

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *RentalServiceTestSuite) TestListRentals_Success() {
	ctx := context.Background()
	rentals := []domain.Rental{
		{RentalID: uuid.NewString(), Status: domain.RentalActive},
		{RentalID: uuid.NewString(), Status: domain.RentalOverdue},
	}
	token := "next-page"

	suite.mockRentalRepo.On("ListRentals", ctx, 20, (*string)(nil), (*domain.RentalStatus)(nil)).Return(rentals, &token, nil).Once()

	result, err := suite.service.ListRentals(ctx, uuid.NewString(), dto.ListRentalsParams{Limit: 20})

	suite.Require().NoError(err)
	suite.Require().NotNil(result)
	suite.Len(result.Rentals, 2)
	suite.Require().NotNil(result.NextToken)
	suite.Equal(token, *result.NextToken)
	suite.mockRentalRepo.AssertExpectations(suite.T())
}

// --- SweepOverdueRentals ---

func (suite *RentalServiceTestSuite) TestSweepOverdueRentals_ReturnsOverdueSet() {
	ctx := context.Background()
	overdueSet := []domain.Rental{
		{RentalID: uuid.NewString(), Status: domain.RentalOverdue},
		{RentalID: uuid.NewString(), Status: domain.RentalOverdue},
		{RentalID: uuid.NewString(), Status: domain.RentalOverdue},
	}

	suite.mockRentalRepo.On("MarkOverdueRentals", ctx,
		mock.AnythingOfType("time.Time"), services.SweeperUserID, mock.AnythingOfType("time.Time")).Return(int64(2), nil).Once()
	suite.mockRentalRepo.On("ListOverdueRentals", ctx).Return(overdueSet, nil).Once()

	overdue, marked, err := suite.service.SweepOverdueRentals(ctx, services.SweeperUserID)

	suite.Require().NoError(err)
	suite.Equal(int64(2), marked)
	suite.Len(overdue, 3)
	suite.mockRentalRepo.AssertExpectations(suite.T())
}

func (suite *RentalServiceTestSuite) TestSweepOverdueRentals_RepoError() {
	ctx := context.Background()

	suite.mockRentalRepo.On("MarkOverdueRentals", ctx,
		mock.AnythingOfType("time.Time"), services.SweeperUserID, mock.AnythingOfType("time.Time")).Return(int64(0), assert.AnError).Once()

	overdue, marked, err := suite.service.SweepOverdueRentals(ctx, services.SweeperUserID)

	suite.Require().Error(err)
	suite.Nil(overdue)
	suite.Equal(int64(0), marked)
	suite.mockRentalRepo.AssertNotCalled(suite.T(), "ListOverdueRentals", mock.Anything)
}

func (suite *RentalServiceTestSuite) TestSweepOverdueRentals_MissingActor() {
	ctx := context.Background()

	overdue, marked, err := suite.service.SweepOverdueRentals(ctx, "")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.Nil(overdue)
	suite.Equal(int64(0), marked)
}

func TestRentalServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RentalServiceTestSuite))
}

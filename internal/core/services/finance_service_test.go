package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/sjrent/sjrent_backend/internal/apperrors"
	"github.com/sjrent/sjrent_backend/internal/core/domain"
	portsrepo "github.com/sjrent/sjrent_backend/internal/core/ports/repositories"
	portssvc "github.com/sjrent/sjrent_backend/internal/core/ports/services"
	"github.com/sjrent/sjrent_backend/internal/core/services"
	"github.com/sjrent/sjrent_backend/internal/dto"
)

// MockFinanceRepository is a mock type for the FinanceRepositoryFacade interface
type MockFinanceRepository struct {
	mock.Mock
}

var _ portsrepo.FinanceRepositoryFacade = (*MockFinanceRepository)(nil)

func (m *MockFinanceRepository) FindIncomeByID(ctx context.Context, incomeID string) (*domain.Income, error) {
	args := m.Called(ctx, incomeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Income), args.Error(1)
}

func (m *MockFinanceRepository) ListIncomes(ctx context.Context, limit int, nextToken *string, category *domain.IncomeCategory) ([]domain.Income, *string, error) {
	args := m.Called(ctx, limit, nextToken, category)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return args.Get(0).([]domain.Income), token, args.Error(2)
}

func (m *MockFinanceRepository) SumIncome(ctx context.Context, from *time.Time, to *time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockFinanceRepository) SaveIncome(ctx context.Context, income domain.Income) error {
	args := m.Called(ctx, income)
	return args.Error(0)
}

func (m *MockFinanceRepository) DeleteIncome(ctx context.Context, incomeID string) error {
	args := m.Called(ctx, incomeID)
	return args.Error(0)
}

func (m *MockFinanceRepository) FindExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error) {
	args := m.Called(ctx, expenseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Expense), args.Error(1)
}

func (m *MockFinanceRepository) ListExpenses(ctx context.Context, limit int, nextToken *string, category *domain.ExpenseCategory) ([]domain.Expense, *string, error) {
	args := m.Called(ctx, limit, nextToken, category)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return args.Get(0).([]domain.Expense), token, args.Error(2)
}

func (m *MockFinanceRepository) SumExpenses(ctx context.Context, from *time.Time, to *time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockFinanceRepository) SaveExpense(ctx context.Context, expense domain.Expense) error {
	args := m.Called(ctx, expense)
	return args.Error(0)
}

func (m *MockFinanceRepository) DeleteExpense(ctx context.Context, expenseID string) error {
	args := m.Called(ctx, expenseID)
	return args.Error(0)
}

func (m *MockFinanceRepository) FindAssetByID(ctx context.Context, assetID string) (*domain.Asset, error) {
	args := m.Called(ctx, assetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Asset), args.Error(1)
}

func (m *MockFinanceRepository) ListAssets(ctx context.Context, limit int, nextToken *string) ([]domain.Asset, *string, error) {
	args := m.Called(ctx, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return args.Get(0).([]domain.Asset), token, args.Error(2)
}

func (m *MockFinanceRepository) SumAssetValue(ctx context.Context) (decimal.Decimal, error) {
	args := m.Called(ctx)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockFinanceRepository) SaveAsset(ctx context.Context, asset domain.Asset) error {
	args := m.Called(ctx, asset)
	return args.Error(0)
}

func (m *MockFinanceRepository) UpdateAsset(ctx context.Context, asset domain.Asset) error {
	args := m.Called(ctx, asset)
	return args.Error(0)
}

func (m *MockFinanceRepository) DeleteAsset(ctx context.Context, assetID string) error {
	args := m.Called(ctx, assetID)
	return args.Error(0)
}

type FinanceServiceTestSuite struct {
	suite.Suite
	mockFinanceRepo    *MockFinanceRepository
	mockRentalRepo     *MockRentalRepository
	mockMotorcycleRepo *MockMotorcycleRepository
	service            portssvc.FinanceSvcFacade
}

func (suite *FinanceServiceTestSuite) SetupTest() {
	suite.mockFinanceRepo = new(MockFinanceRepository)
	suite.mockRentalRepo = new(MockRentalRepository)
	suite.mockMotorcycleRepo = new(MockMotorcycleRepository)
	suite.service = services.NewFinanceService(suite.mockFinanceRepo, suite.mockRentalRepo, suite.mockMotorcycleRepo)
}

func (suite *FinanceServiceTestSuite) TestCreateIncome_Success() {
	ctx := context.Background()
	creatorUserID := uuid.NewString()
	req := dto.CreateIncomeRequest{
		Description: "Late fee - overdue return",
		Amount:      decimal.NewFromInt(50000),
		Category:    "LATE_FEE",
		Source:      "Budi Santoso",
		Date:        time.Date(2024, 10, 3, 0, 0, 0, 0, time.UTC),
	}

	suite.mockFinanceRepo.On("SaveIncome", ctx, mock.MatchedBy(func(i domain.Income) bool {
		return i.Category == domain.IncomeLateFee && i.Amount.Equal(req.Amount) && i.UserID == creatorUserID
	})).Return(nil).Once()

	created, err := suite.service.CreateIncome(ctx, req, creatorUserID)

	suite.Require().NoError(err)
	suite.Require().NotNil(created)
	suite.NotEmpty(created.IncomeID)
	suite.Equal(domain.IncomeLateFee, created.Category)
	suite.mockFinanceRepo.AssertExpectations(suite.T())
}

func (suite *FinanceServiceTestSuite) TestCreateIncome_InvalidCategory() {
	ctx := context.Background()
	req := dto.CreateIncomeRequest{
		Description: "Mystery money",
		Amount:      decimal.NewFromInt(1000),
		Category:    "WINDFALL",
		Date:        time.Now(),
	}

	created, err := suite.service.CreateIncome(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(created)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *FinanceServiceTestSuite) TestCreateIncome_NonPositiveAmount() {
	ctx := context.Background()
	req := dto.CreateIncomeRequest{
		Description: "Zero entry",
		Amount:      decimal.Zero,
		Category:    "OTHER",
		Date:        time.Now(),
	}

	created, err := suite.service.CreateIncome(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(created)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *FinanceServiceTestSuite) TestCreateExpense_Success() {
	ctx := context.Background()
	creatorUserID := uuid.NewString()
	motorcycleID := uuid.NewString()
	req := dto.CreateExpenseRequest{
		Description:  "Oil change",
		Amount:       decimal.NewFromInt(75000),
		Category:     "MAINTENANCE",
		Date:         time.Date(2024, 10, 2, 0, 0, 0, 0, time.UTC),
		MotorcycleID: &motorcycleID,
		Vendor:       "AHASS Kebon Jeruk",
	}

	suite.mockFinanceRepo.On("SaveExpense", ctx, mock.MatchedBy(func(e domain.Expense) bool {
		return e.Category == domain.ExpenseMaintenance && e.Amount.Equal(req.Amount) && e.MotorcycleID != nil
	})).Return(nil).Once()

	created, err := suite.service.CreateExpense(ctx, req, creatorUserID)

	suite.Require().NoError(err)
	suite.Require().NotNil(created)
	suite.Equal(domain.ExpenseMaintenance, created.Category)
	suite.mockFinanceRepo.AssertExpectations(suite.T())
}

func (suite *FinanceServiceTestSuite) TestDeleteIncome_NotFound() {
	ctx := context.Background()
	incomeID := uuid.NewString()

	suite.mockFinanceRepo.On("FindIncomeByID", ctx, incomeID).Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.DeleteIncome(ctx, incomeID, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockFinanceRepo.AssertNotCalled(suite.T(), "DeleteIncome", mock.Anything, mock.Anything)
}

func (suite *FinanceServiceTestSuite) TestDeleteIncome_ManualEntry() {
	ctx := context.Background()
	incomeID := uuid.NewString()
	income := &domain.Income{
		IncomeID:    incomeID,
		Description: "Helmet rental",
		Amount:      decimal.NewFromInt(25000),
		Category:    domain.IncomeOther,
		Date:        time.Now(),
		UserID:      uuid.NewString(),
	}

	suite.mockFinanceRepo.On("FindIncomeByID", ctx, incomeID).Return(income, nil).Once()
	suite.mockFinanceRepo.On("DeleteIncome", ctx, incomeID).Return(nil).Once()

	err := suite.service.DeleteIncome(ctx, incomeID, uuid.NewString())

	suite.Require().NoError(err)
	suite.mockFinanceRepo.AssertExpectations(suite.T())
}

func (suite *FinanceServiceTestSuite) TestDeleteIncome_RentalLinkedRejected() {
	ctx := context.Background()
	incomeID := uuid.NewString()
	rentalID := uuid.NewString()
	income := &domain.Income{
		IncomeID:    incomeID,
		Description: "Deposit for rental - Honda Beat Street (B1234AB)",
		Amount:      decimal.NewFromInt(150000),
		Category:    domain.IncomeDeposit,
		Date:        time.Now(),
		RentalID:    &rentalID,
		UserID:      uuid.NewString(),
	}

	suite.mockFinanceRepo.On("FindIncomeByID", ctx, incomeID).Return(income, nil).Once()

	err := suite.service.DeleteIncome(ctx, incomeID, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockFinanceRepo.AssertNotCalled(suite.T(), "DeleteIncome", mock.Anything, mock.Anything)
}

func (suite *FinanceServiceTestSuite) TestGetFinancialSummary_ComputesNetProfit() {
	ctx := context.Background()

	totalIncome := decimal.NewFromInt(1250000)
	totalExpenses := decimal.NewFromInt(480000)
	totalAssets := decimal.NewFromInt(95000000)

	suite.mockFinanceRepo.On("SumIncome", ctx, (*time.Time)(nil), (*time.Time)(nil)).Return(totalIncome, nil).Once()
	suite.mockFinanceRepo.On("SumExpenses", ctx, (*time.Time)(nil), (*time.Time)(nil)).Return(totalExpenses, nil).Once()
	suite.mockFinanceRepo.On("SumAssetValue", ctx).Return(totalAssets, nil).Once()
	suite.mockRentalRepo.On("CountRentalsByStatus", ctx, domain.RentalActive).Return(2, nil).Once()
	suite.mockMotorcycleRepo.On("CountMotorcyclesByStatus", ctx, domain.MotorcycleAvailable).Return(5, nil).Once()

	summary, err := suite.service.GetFinancialSummary(ctx, uuid.NewString(), dto.FinancialSummaryParams{})

	suite.Require().NoError(err)
	suite.Require().NotNil(summary)
	suite.True(summary.NetProfit.Equal(decimal.NewFromInt(770000)))
	suite.True(summary.TotalAssets.Equal(totalAssets))
	suite.Equal(2, summary.ActiveRentals)
	suite.Equal(5, summary.AvailableMotorcycles)
	suite.mockFinanceRepo.AssertExpectations(suite.T())
	suite.mockRentalRepo.AssertExpectations(suite.T())
	suite.mockMotorcycleRepo.AssertExpectations(suite.T())
}

func (suite *FinanceServiceTestSuite) TestGetFinancialSummary_HonoursDateRange() {
	ctx := context.Background()

	from := time.Date(2024, 10, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 11, 1, 0, 0, 0, 0, time.UTC)

	suite.mockFinanceRepo.On("SumIncome", ctx, &from, &to).Return(decimal.NewFromInt(300000), nil).Once()
	suite.mockFinanceRepo.On("SumExpenses", ctx, &from, &to).Return(decimal.NewFromInt(100000), nil).Once()
	suite.mockFinanceRepo.On("SumAssetValue", ctx).Return(decimal.Zero, nil).Once()
	suite.mockRentalRepo.On("CountRentalsByStatus", ctx, domain.RentalActive).Return(0, nil).Once()
	suite.mockMotorcycleRepo.On("CountMotorcyclesByStatus", ctx, domain.MotorcycleAvailable).Return(0, nil).Once()

	summary, err := suite.service.GetFinancialSummary(ctx, uuid.NewString(), dto.FinancialSummaryParams{From: &from, To: &to})

	suite.Require().NoError(err)
	suite.True(summary.NetProfit.Equal(decimal.NewFromInt(200000)))
	suite.mockFinanceRepo.AssertExpectations(suite.T())
}

func (suite *FinanceServiceTestSuite) TestGetRecentEntries_DefaultsLimit() {
	ctx := context.Background()

	incomes := []domain.Income{{IncomeID: uuid.NewString(), Amount: decimal.NewFromInt(100000), Category: domain.IncomeDeposit}}
	expenses := []domain.Expense{{ExpenseID: uuid.NewString(), Amount: decimal.NewFromInt(45000), Category: domain.ExpenseFuel}}

	suite.mockFinanceRepo.On("ListIncomes", ctx, 5, (*string)(nil), (*domain.IncomeCategory)(nil)).Return(incomes, nil, nil).Once()
	suite.mockFinanceRepo.On("ListExpenses", ctx, 5, (*string)(nil), (*domain.ExpenseCategory)(nil)).Return(expenses, nil, nil).Once()

	recent, err := suite.service.GetRecentEntries(ctx, uuid.NewString(), 0)

	suite.Require().NoError(err)
	suite.Require().NotNil(recent)
	suite.Len(recent.Incomes, 1)
	suite.Len(recent.Expenses, 1)
	suite.mockFinanceRepo.AssertExpectations(suite.T())
}

func (suite *FinanceServiceTestSuite) TestListExpenses_InvalidCategoryFilter() {
	ctx := context.Background()
	badCategory := "SNACKS"

	result, err := suite.service.ListExpenses(ctx, uuid.NewString(), dto.ListExpensesParams{Limit: 20, Category: &badCategory})

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func TestFinanceServiceTestSuite(t *testing.T) {
	suite.Run(t, new(FinanceServiceTestSuite))
}

package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/sjrent/sjrent_backend/internal/apperrors"
	"github.com/sjrent/sjrent_backend/internal/core/domain"
	portssvc "github.com/sjrent/sjrent_backend/internal/core/ports/services"
	"github.com/sjrent/sjrent_backend/internal/dto"
	"github.com/sjrent/sjrent_backend/internal/handlers"
	"github.com/sjrent/sjrent_backend/internal/middleware"
)

// --- Mock RentalService ---
type MockRentalService struct {
	mock.Mock
}

func (m *MockRentalService) CreateRental(ctx context.Context, req dto.CreateRentalRequest, creatorUserID string) (*domain.Rental, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}

func (m *MockRentalService) GetRentalByID(ctx context.Context, rentalID string, requestingUserID string) (*domain.Rental, error) {
	args := m.Called(ctx, rentalID, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}

func (m *MockRentalService) ListRentals(ctx context.Context, requestingUserID string, params dto.ListRentalsParams) (*dto.ListRentalsResponse, error) {
	args := m.Called(ctx, requestingUserID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListRentalsResponse), args.Error(1)
}

func (m *MockRentalService) CompleteRental(ctx context.Context, rentalID string, req dto.CompleteRentalRequest, requestingUserID string) (*domain.Rental, error) {
	args := m.Called(ctx, rentalID, req, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}

func (m *MockRentalService) CancelRental(ctx context.Context, rentalID string, requestingUserID string) (*domain.Rental, error) {
	args := m.Called(ctx, rentalID, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}

func (m *MockRentalService) SweepOverdueRentals(ctx context.Context, requestingUserID string) ([]domain.Rental, int64, error) {
	args := m.Called(ctx, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]domain.Rental), args.Get(1).(int64), args.Error(2)
}

// Ensure mock implements the interface
var _ portssvc.RentalSvcFacade = (*MockRentalService)(nil)

type RentalHandlerTestSuite struct {
	suite.Suite
	router            *gin.Engine
	mockRentalService *MockRentalService
	jwtSecret         string
}

// generateTestToken creates a dummy JWT for testing.
func (suite *RentalHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "sjrent-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedString, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signedString
}

func (suite *RentalHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))

	suite.mockRentalService = new(MockRentalService)

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterRentalRoutes(v1, suite.mockRentalService)
}

func (suite *RentalHandlerTestSuite) authedRequest(method, target string, body interface{}, userID string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		err := json.NewEncoder(&buf).Encode(body)
		suite.Require().NoError(err)
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))

	rr := httptest.NewRecorder()
	suite.router.ServeHTTP(rr, req)
	return rr
}

// --- Test Cases ---

func (suite *RentalHandlerTestSuite) TestCreateRental_Success() {
	userID := uuid.NewString()
	start := time.Date(2024, 10, 1, 0, 0, 0, 0, time.UTC)
	reqBody := dto.CreateRentalRequest{
		MotorcycleID:   uuid.NewString(),
		CustomerID:     uuid.NewString(),
		StartDate:      start,
		PlannedEndDate: start.AddDate(0, 0, 4),
		Deposit:        decimal.NewFromInt(200000),
	}

	expected := &domain.Rental{
		RentalID:       uuid.NewString(),
		MotorcycleID:   reqBody.MotorcycleID,
		CustomerID:     reqBody.CustomerID,
		StartDate:      start,
		PlannedEndDate: reqBody.PlannedEndDate,
		Deposit:        reqBody.Deposit,
		Status:         domain.RentalActive,
	}

	suite.mockRentalService.On("CreateRental", mock.Anything, mock.AnythingOfType("dto.CreateRentalRequest"), userID).Return(expected, nil).Once()

	rr := suite.authedRequest(http.MethodPost, "/api/v1/rentals", reqBody, userID)

	suite.Equal(http.StatusCreated, rr.Code)
	var resp dto.RentalResponse
	suite.Require().NoError(json.Unmarshal(rr.Body.Bytes(), &resp))
	suite.Equal(expected.RentalID, resp.RentalID)
	suite.Equal(string(domain.RentalActive), resp.Status)
	suite.mockRentalService.AssertExpectations(suite.T())
}

func (suite *RentalHandlerTestSuite) TestCreateRental_MotorcycleConflict() {
	userID := uuid.NewString()
	start := time.Date(2024, 10, 1, 0, 0, 0, 0, time.UTC)
	reqBody := dto.CreateRentalRequest{
		MotorcycleID:   uuid.NewString(),
		CustomerID:     uuid.NewString(),
		StartDate:      start,
		PlannedEndDate: start.AddDate(0, 0, 2),
	}

	conflictErr := apperrors.NewAppError(409, "motorcycle B1234AB is not available for rental", apperrors.ErrConflict)
	suite.mockRentalService.On("CreateRental", mock.Anything, mock.AnythingOfType("dto.CreateRentalRequest"), userID).Return(nil, conflictErr).Once()

	rr := suite.authedRequest(http.MethodPost, "/api/v1/rentals", reqBody, userID)

	suite.Equal(http.StatusConflict, rr.Code)
	suite.mockRentalService.AssertExpectations(suite.T())
}

func (suite *RentalHandlerTestSuite) TestCreateRental_MissingToken() {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/rentals", nil)
	rr := httptest.NewRecorder()
	suite.router.ServeHTTP(rr, req)

	suite.Equal(http.StatusUnauthorized, rr.Code)
	suite.mockRentalService.AssertNotCalled(suite.T(), "CreateRental", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *RentalHandlerTestSuite) TestGetRental_NotFound() {
	userID := uuid.NewString()
	rentalID := uuid.NewString()

	suite.mockRentalService.On("GetRentalByID", mock.Anything, rentalID, userID).Return(nil, apperrors.ErrNotFound).Once()

	rr := suite.authedRequest(http.MethodGet, "/api/v1/rentals/"+rentalID, nil, userID)

	suite.Equal(http.StatusNotFound, rr.Code)
	suite.mockRentalService.AssertExpectations(suite.T())
}

func (suite *RentalHandlerTestSuite) TestListRentals_WithStatusFilter() {
	userID := uuid.NewString()
	status := "OVERDUE"
	expected := &dto.ListRentalsResponse{
		Rentals: []dto.RentalResponse{
			{RentalID: uuid.NewString(), Status: status},
		},
	}

	suite.mockRentalService.On("ListRentals", mock.Anything, userID, mock.MatchedBy(func(p dto.ListRentalsParams) bool {
		return p.Status != nil && *p.Status == status && p.Limit == 20
	})).Return(expected, nil).Once()

	rr := suite.authedRequest(http.MethodGet, fmt.Sprintf("/api/v1/rentals?status=%s", status), nil, userID)

	suite.Equal(http.StatusOK, rr.Code)
	var resp dto.ListRentalsResponse
	suite.Require().NoError(json.Unmarshal(rr.Body.Bytes(), &resp))
	suite.Len(resp.Rentals, 1)
	suite.mockRentalService.AssertExpectations(suite.T())
}

func (suite *RentalHandlerTestSuite) TestCompleteRental_Success() {
	userID := uuid.NewString()
	rentalID := uuid.NewString()
	totalAmount := decimal.NewFromInt(240000)

	completed := &domain.Rental{
		RentalID:    rentalID,
		Status:      domain.RentalCompleted,
		TotalAmount: &totalAmount,
	}

	suite.mockRentalService.On("CompleteRental", mock.Anything, rentalID, mock.MatchedBy(func(r dto.CompleteRentalRequest) bool {
		return r.TotalAmount.Equal(totalAmount)
	}), userID).Return(completed, nil).Once()

	rr := suite.authedRequest(http.MethodPost, "/api/v1/rentals/"+rentalID+"/complete", dto.CompleteRentalRequest{TotalAmount: totalAmount}, userID)

	suite.Equal(http.StatusOK, rr.Code)
	var resp dto.RentalResponse
	suite.Require().NoError(json.Unmarshal(rr.Body.Bytes(), &resp))
	suite.Equal(string(domain.RentalCompleted), resp.Status)
	suite.mockRentalService.AssertExpectations(suite.T())
}

func (suite *RentalHandlerTestSuite) TestCompleteRental_AlreadyTerminal() {
	userID := uuid.NewString()
	rentalID := uuid.NewString()

	conflictErr := apperrors.NewAppError(409, "rental is already COMPLETED", apperrors.ErrConflict)
	suite.mockRentalService.On("CompleteRental", mock.Anything, rentalID, mock.AnythingOfType("dto.CompleteRentalRequest"), userID).Return(nil, conflictErr).Once()

	rr := suite.authedRequest(http.MethodPost, "/api/v1/rentals/"+rentalID+"/complete", dto.CompleteRentalRequest{TotalAmount: decimal.NewFromInt(100000)}, userID)

	suite.Equal(http.StatusConflict, rr.Code)
	suite.mockRentalService.AssertExpectations(suite.T())
}

func (suite *RentalHandlerTestSuite) TestCancelRental_Success() {
	userID := uuid.NewString()
	rentalID := uuid.NewString()

	cancelled := &domain.Rental{
		RentalID: rentalID,
		Status:   domain.RentalCancelled,
	}

	suite.mockRentalService.On("CancelRental", mock.Anything, rentalID, userID).Return(cancelled, nil).Once()

	rr := suite.authedRequest(http.MethodPost, "/api/v1/rentals/"+rentalID+"/cancel", nil, userID)

	suite.Equal(http.StatusOK, rr.Code)
	var resp dto.RentalResponse
	suite.Require().NoError(json.Unmarshal(rr.Body.Bytes(), &resp))
	suite.Equal(string(domain.RentalCancelled), resp.Status)
	suite.mockRentalService.AssertExpectations(suite.T())
}

func (suite *RentalHandlerTestSuite) TestSweepOverdueRentals_Success() {
	userID := uuid.NewString()

	overdueSet := []domain.Rental{
		{RentalID: uuid.NewString(), Status: domain.RentalOverdue},
		{RentalID: uuid.NewString(), Status: domain.RentalOverdue},
	}
	suite.mockRentalService.On("SweepOverdueRentals", mock.Anything, userID).Return(overdueSet, int64(2), nil).Once()

	rr := suite.authedRequest(http.MethodPost, "/api/v1/rentals/sweep-overdue", nil, userID)

	suite.Equal(http.StatusOK, rr.Code)
	var resp dto.SweepOverdueResponse
	suite.Require().NoError(json.Unmarshal(rr.Body.Bytes(), &resp))
	suite.Equal(int64(2), resp.MarkedOverdue)
	suite.Len(resp.Overdue, 2)
	suite.mockRentalService.AssertExpectations(suite.T())
}

func TestRentalHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(RentalHandlerTestSuite))
}

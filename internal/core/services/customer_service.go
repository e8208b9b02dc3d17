package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/sjrent/sjrent_backend/internal/apperrors"
	"github.com/sjrent/sjrent_backend/internal/core/domain"
	portsrepo "github.com/sjrent/sjrent_backend/internal/core/ports/repositories"
	portssvc "github.com/sjrent/sjrent_backend/internal/core/ports/services"
	"github.com/sjrent/sjrent_backend/internal/dto"
	"github.com/sjrent/sjrent_backend/internal/middleware"
)

// customerService provides customer registry operations.
type customerService struct {
	customerRepo portsrepo.CustomerRepositoryFacade
}

// NewCustomerService creates a new CustomerService.
func NewCustomerService(customerRepo portsrepo.CustomerRepositoryFacade) portssvc.CustomerSvcFacade {
	return &customerService{customerRepo: customerRepo}
}

var _ portssvc.CustomerSvcFacade = (*customerService)(nil)

// CreateCustomer registers a new customer.
func (s *customerService) CreateCustomer(ctx context.Context, req dto.CreateCustomerRequest, creatorUserID string) (*domain.Customer, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if creatorUserID == "" {
		return nil, apperrors.ErrUnauthorized
	}

	now := time.Now()
	customer := domain.Customer{
		CustomerID:    uuid.NewString(),
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		Address:       req.Address,
		LicenseNumber: req.LicenseNumber,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.customerRepo.SaveCustomer(ctx, customer); err != nil {
		logger.Error("Failed to save customer", slog.String("error", err.Error()))
		return nil, err
	}

	logger.Info("Customer registered", slog.String("customer_id", customer.CustomerID))
	return &customer, nil
}

// GetCustomerByID retrieves a specific customer by its ID.
func (s *customerService) GetCustomerByID(ctx context.Context, customerID string, requestingUserID string) (*domain.Customer, error) {
	if requestingUserID == "" {
		return nil, apperrors.ErrUnauthorized
	}
	return s.customerRepo.FindCustomerByID(ctx, customerID)
}

// ListCustomers retrieves a paginated list of customers.
func (s *customerService) ListCustomers(ctx context.Context, requestingUserID string, params dto.ListCustomersParams) (*dto.ListCustomersResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if requestingUserID == "" {
		return nil, apperrors.ErrUnauthorized
	}

	customers, nextToken, err := s.customerRepo.ListCustomers(ctx, params.Limit, params.NextToken)
	if err != nil {
		logger.Error("Failed to list customers from repository", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to retrieve customers: %w", err)
	}

	resp := dto.ToListCustomersResponse(customers, nextToken)
	return &resp, nil
}

// UpdateCustomer updates customer details. Fields left nil are untouched.
func (s *customerService) UpdateCustomer(ctx context.Context, customerID string, req dto.UpdateCustomerRequest, requestingUserID string) (*domain.Customer, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if requestingUserID == "" {
		return nil, apperrors.ErrUnauthorized
	}

	customer, err := s.customerRepo.FindCustomerByID(ctx, customerID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		customer.Name = *req.Name
	}
	if req.Email != nil {
		customer.Email = *req.Email
	}
	if req.Phone != nil {
		customer.Phone = *req.Phone
	}
	if req.Address != nil {
		customer.Address = *req.Address
	}
	if req.LicenseNumber != nil {
		customer.LicenseNumber = *req.LicenseNumber
	}
	customer.LastUpdatedAt = time.Now()
	customer.LastUpdatedBy = requestingUserID

	if err := s.customerRepo.UpdateCustomer(ctx, *customer); err != nil {
		logger.Error("Failed to update customer", slog.String("customer_id", customerID), slog.String("error", err.Error()))
		return nil, err
	}

	return customer, nil
}

// DeleteCustomer removes a customer. The database restricts deletion while
// rentals still reference the customer.
func (s *customerService) DeleteCustomer(ctx context.Context, customerID string, requestingUserID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if requestingUserID == "" {
		return apperrors.ErrUnauthorized
	}

	if _, err := s.customerRepo.FindCustomerByID(ctx, customerID); err != nil {
		return err
	}

	if err := s.customerRepo.DeleteCustomer(ctx, customerID); err != nil {
		logger.Error("Failed to delete customer", slog.String("customer_id", customerID), slog.String("error", err.Error()))
		return err
	}

	logger.Info("Customer deleted", slog.String("customer_id", customerID))
	return nil
}

package services

import (
	"context"

	"github.com/sjrent/sjrent_backend/internal/dto"
)

// AuthSvcFacade defines login and registration operations
type AuthSvcFacade interface {
	// Login verifies credentials and issues a signed JWT.
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)

	// Register creates a new user account and issues a signed JWT.
	Register(ctx context.Context, req dto.RegisterRequest) (*dto.LoginResponse, error)
}

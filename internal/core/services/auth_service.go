package services

import (
	"context"
	"log/slog"

	"github.com/sjrent/sjrent_backend/internal/apperrors"
	portssvc "github.com/sjrent/sjrent_backend/internal/core/ports/services"
	"github.com/sjrent/sjrent_backend/internal/dto"
	"github.com/sjrent/sjrent_backend/internal/middleware"
	"github.com/sjrent/sjrent_backend/internal/platform/config"
	"github.com/sjrent/sjrent_backend/internal/utils"
)

// authService issues JWTs on top of the user service.
type authService struct {
	cfg     *config.Config
	userSvc portssvc.UserSvcFacade
}

// NewAuthService creates a new AuthService.
func NewAuthService(cfg *config.Config, userSvc portssvc.UserSvcFacade) portssvc.AuthSvcFacade {
	return &authService{
		cfg:     cfg,
		userSvc: userSvc,
	}
}

var _ portssvc.AuthSvcFacade = (*authService)(nil)

// Login verifies credentials and issues a signed JWT.
func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	user, err := s.userSvc.AuthenticateUser(ctx, req.Email, req.Password)
	if err != nil {
		return nil, err
	}

	token, err := utils.GenerateJWT(user.UserID, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		logger.Error("Failed to sign JWT", slog.String("user_id", user.UserID), slog.String("error", err.Error()))
		return nil, apperrors.NewAppError(500, "failed to issue token", apperrors.ErrInternal)
	}

	logger.Info("User logged in", slog.String("user_id", user.UserID))
	return &dto.LoginResponse{
		Token: token,
		User:  dto.ToUserResponse(user),
	}, nil
}

// Register creates a new user account and issues a signed JWT.
func (s *authService) Register(ctx context.Context, req dto.RegisterRequest) (*dto.LoginResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	user, err := s.userSvc.CreateUser(ctx, dto.CreateUserRequest{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return nil, err
	}

	token, err := utils.GenerateJWT(user.UserID, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		logger.Error("Failed to sign JWT after registration", slog.String("user_id", user.UserID), slog.String("error", err.Error()))
		return nil, apperrors.NewAppError(500, "failed to issue token", apperrors.ErrInternal)
	}

	logger.Info("User registered", slog.String("user_id", user.UserID))
	return &dto.LoginResponse{
		Token: token,
		User:  dto.ToUserResponse(user),
	}, nil
}

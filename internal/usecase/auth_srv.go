package usecase

import (
	"context"
	"fmt"
	"time"

	"pos-backend/internal/data/entity"
	"pos-backend/internal/data/repository"
	"pos-backend/internal/dto/request"
	"pos-backend/internal/dto/response"
	"pos-backend/pkg/token"
	"pos-backend/pkg/utils"

	"go.uber.org/zap"
)

type AuthService interface {
	Login(ctx context.Context, req *request.LoginRequest) (*response.LoginResponse, error)
	Register(ctx context.Context, req *request.RegisterRequest) (*response.UserResponse, error)
}

type authService struct {
	repo   *repository.Repository
	config *utils.Config
	log    *zap.Logger
}

func NewAuthService(
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) AuthService {
	return &authService{
		repo:   repo,
		config: config,
		log:    log,
	}
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.LoginResponse, error) {
	// 1. Find user by email
	user, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to find user by email", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("find user: %w", err)
	}

	// 2. Unknown email and wrong password look the same to the client
	if user == nil {
		s.log.Warn("Login for unknown email", zap.String("email", req.Email))
		return nil, entity.ErrInvalidCredentials
	}

	// 3. Check password
	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.log.Warn("Invalid password", zap.String("user_id", user.ID))
		return nil, entity.ErrInvalidCredentials
	}

	// 4. Issue token
	tok, err := token.Issue(user.ID, string(user.Role), s.config.JWT.Secret)
	if err != nil {
		s.log.Error("Failed to issue token", zap.Error(err), zap.String("user_id", user.ID))
		return nil, fmt.Errorf("issue token: %w", err)
	}

	s.log.Info("User logged in",
		zap.String("user_id", user.ID),
		zap.String("email", user.Email))

	return &response.LoginResponse{
		Token: tok,
		User:  response.UserToResponse(user),
	}, nil
}

func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) (*response.UserResponse, error) {
	// 1. Check email already registered
	exists, err := s.repo.User.ExistsByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to check email", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("check email: %w", err)
	}
	if exists {
		return nil, entity.ErrEmailTaken
	}

	// 2. Hash password
	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("hash password: %w", err)
	}

	// 3. Create user entity
	now := time.Now()
	user := &entity.User{
		Base: entity.Base{
			ID:        utils.GenerateUUIDString(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Email:        req.Email,
		Name:         req.Name,
		PasswordHash: hashedPassword,
		Role:         entity.UserRoleFromString(req.Role),
		IsActive:     true,
	}

	// 4. Save user
	if err := s.repo.User.Create(ctx, user); err != nil {
		s.log.Error("Failed to create user", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("create user: %w", err)
	}

	// 5. Re-fetch the stored row; a miss here is an internal error, not a
	// silent success
	created, err := s.repo.User.FindByID(ctx, user.ID)
	if err != nil {
		s.log.Error("Failed to fetch user after insert", zap.Error(err), zap.String("user_id", user.ID))
		return nil, fmt.Errorf("fetch created user: %w", err)
	}
	if created == nil {
		s.log.Error("User missing after insert", zap.String("user_id", user.ID))
		return nil, fmt.Errorf("user %s missing after insert", user.ID)
	}

	s.log.Info("User registered",
		zap.String("user_id", created.ID),
		zap.String("email", created.Email))

	resp := response.UserToResponse(created)
	return &resp, nil
}

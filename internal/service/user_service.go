package service

import (
	"context"
	"gradebook_backend/internal/model"
	"gradebook_backend/internal/repository"
	"gradebook_backend/pkg/logger"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// CreateUserRequest is the admin form for a new account.
// swagger:model CreateUserRequest
type CreateUserRequest struct {
	Username string   `json:"username" binding:"required,max=150"`
	Password string   `json:"password" binding:"required,min=6"`
	IsAdmin  bool     `json:"isAdmin"`
	Groups   []string `json:"groups"`
}

// UserService handles admin account management.
type UserService struct {
	UserRepo *repository.UserRepository
}

func NewUserService(userRepo *repository.UserRepository) *UserService {
	return &UserService{
		UserRepo: userRepo,
	}
}

func (s *UserService) List(ctx context.Context) ([]model.User, error) {
	return s.UserRepo.List(ctx)
}

func (s *UserService) Create(ctx context.Context, req *CreateUserRequest) (*model.User, error) {
	groups, err := s.UserRepo.FindGroupsByName(ctx, req.Groups)
	if err != nil {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Username: req.Username,
		Password: string(hashedPassword),
		IsAdmin:  req.IsAdmin,
		IsActive: true,
		Groups:   groups,
	}
	if err := s.UserRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	logger.Log.Info("user created",
		zap.String("username", user.Username),
		zap.Bool("isAdmin", user.IsAdmin),
		zap.Strings("groups", req.Groups))
	return user, nil
}

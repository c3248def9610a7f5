package service

import (
	"context"
	"errors"
	"gradebook_backend/internal/config"
	"gradebook_backend/internal/model"
	"gradebook_backend/internal/repository"
	"gradebook_backend/internal/util"
	"gradebook_backend/pkg/logger"
	"gradebook_backend/pkg/monitoring"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// LoginResult carries the signed token for the session cookie.
type LoginResult struct {
	Token     string      `json:"token"`
	ExpiresAt time.Time   `json:"expiresAt"`
	User      *model.User `json:"user"`
}

type AuthService struct {
	UserRepo *repository.UserRepository
	Sessions SessionStore
	Cfg      *config.Config
}

func NewAuthService(userRepo *repository.UserRepository, sessions SessionStore, cfg *config.Config) *AuthService {
	return &AuthService{
		UserRepo: userRepo,
		Sessions: sessions,
		Cfg:      cfg,
	}
}

func (s *AuthService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	result, err := s.login(ctx, username, password)
	if err != nil {
		monitoring.LoginCounter.WithLabelValues("failure").Inc()
		return nil, err
	}
	monitoring.LoginCounter.WithLabelValues("success").Inc()
	return result, nil
}

func (s *AuthService) login(ctx context.Context, username, password string) (*LoginResult, error) {
	user, err := s.UserRepo.FindByUsername(ctx, username)
	if errors.Is(err, util.ErrUserNotFound) {
		return nil, util.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, util.ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, util.ErrAccountDisabled
	}

	ttl := s.Cfg.JWT.ExpireTime
	sessionID, err := s.Sessions.Create(ctx, user.ID, ttl)
	if err != nil {
		return nil, err
	}
	token, err := util.GenerateJWT(user, sessionID, s.Cfg.JWT.Secret, ttl)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if err := s.UserRepo.UpdateLastLogin(ctx, user.ID, now); err != nil {
		logger.Log.Warn("failed to record last login", zap.Uint("userId", user.ID), zap.Error(err))
	}
	logger.Log.Info("user logged in", zap.String("username", user.Username))

	return &LoginResult{Token: token, ExpiresAt: now.Add(ttl), User: user}, nil
}

// Logout revokes the session behind token. An invalid token is not an error.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	claims, err := util.ParseJWT(token, s.Cfg.JWT.Secret)
	if err != nil {
		return nil
	}
	return s.Sessions.Delete(ctx, claims.ID)
}

// Authenticate checks a token against the session store and loads the user
// with groups for role resolution.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*util.Claims, *model.User, error) {
	claims, err := util.ParseJWT(token, s.Cfg.JWT.Secret)
	if err != nil {
		return nil, nil, util.ErrSessionExpired
	}
	userID, err := s.Sessions.Lookup(ctx, claims.ID)
	if err != nil {
		return nil, nil, err
	}
	if userID != claims.UserID {
		return nil, nil, util.ErrSessionExpired
	}

	user, err := s.UserRepo.FindByID(ctx, claims.UserID)
	if errors.Is(err, util.ErrUserNotFound) {
		return nil, nil, util.ErrSessionExpired
	}
	if err != nil {
		return nil, nil, err
	}
	if !user.IsActive {
		return nil, nil, util.ErrAccountDisabled
	}
	return claims, user, nil
}

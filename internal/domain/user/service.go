// internal/domain/user/service.go
package user

import (
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/amanat-silver/storefront-backend/internal/config"
	"github.com/amanat-silver/storefront-backend/internal/pkg/auth"
)

// Service handles user business logic
type Service struct {
	db         *gorm.DB
	config     *config.Config
	jwtManager *auth.JWTManager
	passwords  *auth.PasswordManager
}

// NewService creates a new user service
func NewService(db *gorm.DB, cfg *config.Config) *Service {
	return &Service{
		db:         db,
		config:     cfg,
		jwtManager: auth.NewJWTManager(cfg),
		passwords:  auth.NewPasswordManager(cfg),
	}
}

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse represents a successful login
type LoginResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	User         *User  `json:"user"`
}

// Login authenticates a user and issues tokens
func (s *Service) Login(req *LoginRequest) (*LoginResponse, error) {
	var u User
	err := s.db.Where("email = ?", strings.ToLower(req.Email)).First(&u).Error
	if err == gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("invalid email or password")
	} else if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if !u.IsActive {
		return nil, fmt.Errorf("account is disabled")
	}

	if err := s.passwords.VerifyPassword(req.Password, u.Password); err != nil {
		return nil, fmt.Errorf("invalid email or password")
	}

	accessToken, err := s.jwtManager.GenerateAccessToken(u.ID, u.Email, u.IsAdmin)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, err := s.jwtManager.GenerateRefreshToken(u.ID, u.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	now := time.Now().UTC()
	u.LastLoginAt = &now
	s.db.Model(&u).Update("last_login_at", now)

	return &LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         &u,
	}, nil
}

// RefreshRequest carries a refresh token
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// Refresh exchanges a valid refresh token for a new token pair
func (s *Service) Refresh(req *RefreshRequest) (*LoginResponse, error) {
	claims, err := s.jwtManager.ValidateRefreshToken(req.RefreshToken)
	if err != nil {
		return nil, fmt.Errorf("invalid refresh token")
	}

	var u User
	if err := s.db.First(&u, claims.UserID).Error; err != nil {
		return nil, fmt.Errorf("user not found")
	}
	if !u.IsActive {
		return nil, fmt.Errorf("account is disabled")
	}

	accessToken, err := s.jwtManager.GenerateAccessToken(u.ID, u.Email, u.IsAdmin)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, err := s.jwtManager.GenerateRefreshToken(u.ID, u.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	return &LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         &u,
	}, nil
}

// GetProfile returns the user for an authenticated request
func (s *Service) GetProfile(userID uint) (*User, error) {
	var u User
	if err := s.db.First(&u, userID).Error; err != nil {
		return nil, fmt.Errorf("user not found")
	}
	return &u, nil
}

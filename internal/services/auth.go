package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"jurisight/internal/logger"
	"jurisight/internal/models"
	"jurisight/internal/repository"
	"jurisight/internal/utils"
	"jurisight/internal/workflow"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

type AuthService struct {
	userRepo repository.UserRepo
}

func NewAuthService(userRepo repository.UserRepo) *AuthService {
	return &AuthService{userRepo: userRepo}
}

// RegisterUser creates an account. New accounts start as CONTRIBUTOR;
// elevation is an admin action.
func (s *AuthService) RegisterUser(ctx context.Context, user *models.User, password string) error {
	log := logger.WithCtx(ctx)

	email := strings.ToLower(strings.TrimSpace(user.Email))
	if email == "" || !strings.Contains(email, "@") {
		return &ValidationError{Field: "email", Reason: "a valid email is required"}
	}
	if len(password) < 8 {
		return &ValidationError{Field: "password", Reason: "must be at least 8 characters"}
	}

	taken, err := s.userRepo.IsEmailTaken(ctx, email)
	if err != nil {
		return err
	}
	if taken {
		return &ValidationError{Field: "email", Reason: "is already registered"}
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	user.Email = email
	user.PasswordHash = hash
	user.Role = workflow.RoleContributor
	user.IsActive = true

	if err := s.userRepo.CreateUser(ctx, user); err != nil {
		log.Error("user registration failed (repo)", zap.Error(err))
		return err
	}

	log.Info("user registered", zap.Int64("user_id", user.ID))
	return nil
}

// LoginUser verifies credentials and issues an access/refresh token pair.
func (s *AuthService) LoginUser(ctx context.Context, email, password, secret string, accessTTL, refreshTTL time.Duration) (string, string, error) {
	log := logger.WithCtx(ctx)

	user, err := s.userRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return "", "", errors.New("invalid email or password")
	}
	if !utils.CheckPassword(user.PasswordHash, password) {
		log.Warn("login rejected: bad password", zap.Int64("user_id", user.ID))
		return "", "", errors.New("invalid email or password")
	}
	if !user.IsActive {
		return "", "", &PermissionError{Reason: "account is deactivated"}
	}

	access, err := utils.GenerateToken(secret, user.ID, user.Role, accessTTL)
	if err != nil {
		return "", "", err
	}
	refresh, err := utils.GenerateToken(secret, user.ID, user.Role, refreshTTL)
	if err != nil {
		return "", "", err
	}

	if err := s.userRepo.SaveRefreshToken(ctx, user.ID, refresh); err != nil {
		return "", "", err
	}

	log.Info("user logged in", zap.Int64("user_id", user.ID), zap.String("role", string(user.Role)))
	return access, refresh, nil
}

// Refresh rotates a refresh token and issues a fresh pair.
func (s *AuthService) Refresh(ctx context.Context, refreshToken, secret string, accessTTL, refreshTTL time.Duration) (string, string, error) {
	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(refreshToken, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return "", "", errors.New("invalid or expired refresh token")
	}

	userIDf, ok := claims["user_id"].(float64)
	if !ok {
		return "", "", errors.New("invalid token payload")
	}
	userID := int64(userIDf)

	valid, err := s.userRepo.IsRefreshTokenValid(ctx, userID, refreshToken)
	if err != nil || !valid {
		return "", "", errors.New("invalid or expired refresh token")
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return "", "", err
	}
	if !user.IsActive {
		return "", "", &PermissionError{Reason: "account is deactivated"}
	}

	access, err := utils.GenerateToken(secret, user.ID, user.Role, accessTTL)
	if err != nil {
		return "", "", err
	}
	newRefresh, err := utils.GenerateToken(secret, user.ID, user.Role, refreshTTL)
	if err != nil {
		return "", "", err
	}

	_ = s.userRepo.DeleteRefreshToken(ctx, userID, refreshToken)
	if err := s.userRepo.SaveRefreshToken(ctx, userID, newRefresh); err != nil {
		return "", "", err
	}

	return access, newRefresh, nil
}

// Logout invalidates a refresh token.
func (s *AuthService) Logout(ctx context.Context, userID int64, refreshToken string) error {
	return s.userRepo.DeleteRefreshToken(ctx, userID, refreshToken)
}

func (s *AuthService) GetProfile(ctx context.Context, userID int64) (*models.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

func (s *AuthService) GetUsers(ctx context.Context) ([]*models.User, error) {
	return s.userRepo.GetAllUsers(ctx)
}

// UpdateUser applies admin changes to an account (role, activation, name).
func (s *AuthService) UpdateUser(ctx context.Context, id int64, req models.UpdateUserRequest) error {
	if req.Role != nil {
		if _, err := workflow.ParseRole(*req.Role); err != nil {
			return &ValidationError{Field: "role", Reason: err.Error()}
		}
	}
	return s.userRepo.UpdateUser(ctx, id, req)
}

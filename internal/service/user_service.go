// Package service implements the business logic layer between handlers and
// repositories.
package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Isaac-1-lang/BrainBridge/internal/models"
	"github.com/Isaac-1-lang/BrainBridge/internal/observability"
	"github.com/Isaac-1-lang/BrainBridge/internal/repository"
)

const (
	accessTokenTTL       = 24 * time.Hour
	refreshTokenTTL      = 30 * 24 * time.Hour
	verificationTokenTTL = 24 * time.Hour
)

// UserService handles registration, authentication, and account management.
// It holds the raw DB handle so multi-write operations (registration,
// refresh rotation) run in a single transaction.
type UserService struct {
	db        *gorm.DB
	userRepo  repository.UserRepository
	tokenRepo repository.TokenRepository
	jwtSecret string
}

type RegisterInput struct {
	Email     string
	Username  string
	Password  string
	FirstName string
	LastName  string
}

type LoginInput struct {
	EmailOrUsername string
	Password        string
}

type UpdateUserInput struct {
	UserID          uint
	FirstName       *string
	LastName        *string
	ProfileImageURL *string
}

// AuthResult bundles the authenticated user with a fresh token pair.
type AuthResult struct {
	User         *models.User
	AccessToken  string
	RefreshToken string
}

func NewUserService(db *gorm.DB, userRepo repository.UserRepository, tokenRepo repository.TokenRepository, jwtSecret string) *UserService {
	return &UserService{db: db, userRepo: userRepo, tokenRepo: tokenRepo, jwtSecret: jwtSecret}
}

// Register creates a new account and its email verification token.
// Duplicate email or username is rejected before the insert so the caller
// gets a precise message rather than a constraint error.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	emailTaken, err := s.userRepo.ExistsByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if emailTaken {
		return nil, models.NewBadRequestError("Email already in use")
	}

	usernameTaken, err := s.userRepo.ExistsByUsername(ctx, in.Username)
	if err != nil {
		return nil, err
	}
	if usernameTaken {
		return nil, models.NewBadRequestError("Username already taken")
	}

	user := &models.User{
		Email:     in.Email,
		Username:  in.Username,
		Password:  in.Password,
		FirstName: in.FirstName,
		LastName:  in.LastName,
		IsActive:  true,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		txUsers := repository.NewUserRepository(tx)
		txTokens := repository.NewTokenRepository(tx)

		if err := txUsers.Create(ctx, user); err != nil {
			return err
		}
		return txTokens.CreateVerificationToken(ctx, &models.EmailVerificationToken{
			UserID:    user.ID,
			Token:     uuid.New().String(),
			ExpiresAt: time.Now().Add(verificationTokenTTL),
		})
	})
	if err != nil {
		return nil, err
	}

	observability.UsersRegistered.Inc()
	return user, nil
}

// Login authenticates by email first, falling back to username, and issues a
// fresh token pair.
func (s *UserService) Login(ctx context.Context, in LoginInput) (*AuthResult, error) {
	user, err := s.userRepo.GetByEmail(ctx, in.EmailOrUsername)
	if err != nil {
		return nil, err
	}
	if user == nil {
		user, err = s.userRepo.GetByUsername(ctx, in.EmailOrUsername)
		if err != nil {
			return nil, err
		}
	}
	if user == nil || user.Password != in.Password {
		return nil, models.NewBadRequestError("Invalid email/username or password")
	}
	if !user.IsActive {
		return nil, models.NewBadRequestError("Account is deactivated")
	}

	return s.issueTokens(ctx, user)
}

// Refresh rotates a refresh token: the presented token is consumed and a new
// pair is issued. Expired or unknown tokens are rejected.
func (s *UserService) Refresh(ctx context.Context, refreshToken string) (*AuthResult, error) {
	rt, err := s.tokenRepo.GetRefreshToken(ctx, refreshToken)
	if err != nil {
		return nil, err
	}
	if rt == nil || time.Now().After(rt.ExpiresAt) {
		return nil, models.NewBadRequestError("Invalid or expired refresh token")
	}

	user, err := s.userRepo.GetByID(ctx, rt.UserID)
	if err != nil {
		return nil, err
	}
	if !user.IsActive {
		return nil, models.NewBadRequestError("Account is deactivated")
	}

	accessToken, err := s.generateAccessToken(user.ID, user.Username)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	newRefresh := &models.RefreshToken{
		UserID:    user.ID,
		Token:     uuid.New().String(),
		ExpiresAt: time.Now().Add(refreshTokenTTL),
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		txTokens := repository.NewTokenRepository(tx)
		if err := txTokens.DeleteRefreshToken(ctx, refreshToken); err != nil {
			return err
		}
		return txTokens.CreateRefreshToken(ctx, newRefresh)
	})
	if err != nil {
		return nil, err
	}

	return &AuthResult{User: user, AccessToken: accessToken, RefreshToken: newRefresh.Token}, nil
}

// VerifyEmail consumes a verification token and marks the account verified.
func (s *UserService) VerifyEmail(ctx context.Context, token string) (*models.User, error) {
	vt, err := s.tokenRepo.GetVerificationToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if vt == nil || time.Now().After(vt.ExpiresAt) {
		return nil, models.NewBadRequestError("Invalid or expired verification token")
	}

	user, err := s.userRepo.GetByID(ctx, vt.UserID)
	if err != nil {
		return nil, err
	}
	user.IsEmailVerified = true

	err = s.db.Transaction(func(tx *gorm.DB) error {
		txUsers := repository.NewUserRepository(tx)
		txTokens := repository.NewTokenRepository(tx)
		if err := txUsers.Update(ctx, user); err != nil {
			return err
		}
		return txTokens.DeleteVerificationToken(ctx, token)
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

func (s *UserService) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

func (s *UserService) ListUsers(ctx context.Context, limit, offset int) ([]models.User, error) {
	return s.userRepo.List(ctx, limit, offset)
}

// UpdateUser applies a partial profile update. Nil fields are left untouched.
func (s *UserService) UpdateUser(ctx context.Context, in UpdateUserInput) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	if in.FirstName != nil {
		user.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		user.LastName = *in.LastName
	}
	if in.ProfileImageURL != nil {
		user.ProfileImageURL = *in.ProfileImageURL
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteUser removes the account and revokes its refresh tokens.
func (s *UserService) DeleteUser(ctx context.Context, id uint) error {
	if _, err := s.userRepo.GetByID(ctx, id); err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		txUsers := repository.NewUserRepository(tx)
		txTokens := repository.NewTokenRepository(tx)
		if err := txTokens.DeleteRefreshTokensForUser(ctx, id); err != nil {
			return err
		}
		return txUsers.Delete(ctx, id)
	})
}

func (s *UserService) issueTokens(ctx context.Context, user *models.User) (*AuthResult, error) {
	accessToken, err := s.generateAccessToken(user.ID, user.Username)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	refresh := &models.RefreshToken{
		UserID:    user.ID,
		Token:     uuid.New().String(),
		ExpiresAt: time.Now().Add(refreshTokenTTL),
	}
	if err := s.tokenRepo.CreateRefreshToken(ctx, refresh); err != nil {
		return nil, err
	}

	return &AuthResult{User: user, AccessToken: accessToken, RefreshToken: refresh.Token}, nil
}

// generateAccessToken creates a signed JWT for the given user.
func (s *UserService) generateAccessToken(userID uint, username string) (string, error) {
	if s.jwtSecret == "" {
		return "", fmt.Errorf("JWT secret not configured")
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub":      strconv.FormatUint(uint64(userID), 10),
		"username": username,
		"iss":      "brainbridge-api",
		"aud":      "brainbridge-client",
		"exp":      now.Add(accessTokenTTL).Unix(),
		"iat":      now.Unix(),
		"nbf":      now.Unix(),
		"jti":      fmt.Sprintf("%d-%s", now.Unix(), uuid.New().String()[:8]),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}

package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"atlas-backend/internal/database/models"
	apperrors "atlas-backend/internal/errors"
	"atlas-backend/internal/logger"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserRepository defines the user operations needed by the auth service
type UserRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	TouchLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error
}

// AuthService issues and validates staff access tokens
type AuthService struct {
	config   *AuthConfig
	userRepo UserRepository
	now      func() time.Time
}

// AuthClaims represents JWT token claims
type AuthClaims struct {
	Email                string          `json:"email" example:"reviewer@example.org"`
	Role                 models.UserRole `json:"role" example:"reviewer"`
	jwt.RegisteredClaims `swaggerignore:"true"`
}

// UserID parses the subject claim
func (c *AuthClaims) UserID() (uuid.UUID, error) {
	return uuid.Parse(c.Subject)
}

// LoginRequest represents the credentials posted to the login endpoint
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"reviewer@example.org"`
	Password string `json:"password" binding:"required" example:"correct-horse-battery"`
}

// UserProfile is the public view of the signed-in user
type UserProfile struct {
	ID       uuid.UUID       `json:"id"`
	Email    string          `json:"email"`
	FullName string          `json:"full_name"`
	Role     models.UserRole `json:"role"`
}

// LoginResponse represents a successful login
type LoginResponse struct {
	AccessToken      string      `json:"accessToken"`
	TokenType        string      `json:"tokenType" example:"bearer"`
	ExpiresInSeconds int64       `json:"expiresInSeconds" example:"3600"`
	Profile          UserProfile `json:"profile"`
}

// NewAuthService creates a new authentication service
func NewAuthService(config *AuthConfig, userRepo UserRepository) (*AuthService, error) {
	if err := config.ValidateConfig(); err != nil {
		return nil, fmt.Errorf("invalid auth config: %w", err)
	}
	return &AuthService{config: config, userRepo: userRepo, now: time.Now}, nil
}

// HashPassword hashes a password for storage
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// Login checks the credentials of an active staff user and issues a token.
// Unknown emails and wrong passwords produce the same error.
func (s *AuthService) Login(ctx context.Context, req *LoginRequest) (*LoginResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, strings.TrimSpace(req.Email))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrInvalidCredentials
	}
	if err != nil {
		return nil, apperrors.NewStorageError("load user", err)
	}
	if user.PasswordHash == nil || bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(req.Password)) != nil {
		return nil, apperrors.ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, apperrors.ErrUserInactive
	}
	if !user.Role.CanReview() {
		return nil, apperrors.ErrInsufficientRole
	}

	token, err := s.GenerateJWT(user)
	if err != nil {
		return nil, err
	}
	if err := s.userRepo.TouchLastLogin(ctx, user.ID, s.now().UTC()); err != nil {
		logger.WithContext(ctx).WithField("user_id", user.ID).Warnf("Failed to record last login: %v", err)
	}

	return &LoginResponse{
		AccessToken:      token,
		TokenType:        "bearer",
		ExpiresInSeconds: int64(s.config.TokenTTL.Seconds()),
		Profile:          profileOf(user),
	}, nil
}

// Profile returns the current profile of the token's user
func (s *AuthService) Profile(ctx context.Context, claims *AuthClaims) (*UserProfile, error) {
	id, err := claims.UserID()
	if err != nil {
		return nil, apperrors.NewAuthenticationError("invalid token subject")
	}
	user, err := s.userRepo.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NewAuthenticationError("user no longer exists")
	}
	if err != nil {
		return nil, apperrors.NewStorageError("load user", err)
	}
	profile := profileOf(user)
	return &profile, nil
}

// GenerateJWT signs an HS256 token for user
func (s *AuthService) GenerateJWT(user *models.User) (string, error) {
	now := s.now()
	claims := AuthClaims{
		Email: user.Email,
		Role:  user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.config.Issuer,
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.config.TokenTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.config.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// ValidateJWT parses and validates a token signed by GenerateJWT
func (s *AuthService) ValidateJWT(tokenString string) (*AuthClaims, error) {
	claims := &AuthClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.JWTSecret), nil
	},
		jwt.WithIssuer(s.config.Issuer),
		jwt.WithTimeFunc(s.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, apperrors.NewAuthenticationError(err.Error())
	}
	if !token.Valid {
		return nil, apperrors.ErrInvalidToken
	}
	return claims, nil
}

func profileOf(user *models.User) UserProfile {
	return UserProfile{
		ID:       user.ID,
		Email:    user.Email,
		FullName: user.FullName,
		Role:     user.Role,
	}
}

package service

import (
	"context"
	"errors"

	"atlas-backend/internal/auth"
	"atlas-backend/internal/database/models"
	apperrors "atlas-backend/internal/errors"
	"atlas-backend/internal/logger"
	"atlas-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// StaffAccountRequest describes a reviewer, manager or admin account
type StaffAccountRequest struct {
	Email    string          `json:"email" validate:"required,email,max=255"`
	FullName string          `json:"full_name" validate:"max=200"`
	Password string          `json:"password" validate:"required,min=8,max=72"`
	Role     models.UserRole `json:"role" validate:"required"`
}

// UserService manages staff accounts
type UserService struct {
	repo      repository.UserRepositoryInterface
	validator *validator.Validate
}

// NewUserService creates a new user service
func NewUserService(repo repository.UserRepositoryInterface, validator *validator.Validate) *UserService {
	return &UserService{repo: repo, validator: validator}
}

// EnsureStaff creates the account, or promotes and re-keys an existing user
// with the same email. The boolean reports whether a new user was created.
func (s *UserService) EnsureStaff(ctx context.Context, req *StaffAccountRequest) (*models.User, bool, error) {
	verr := &apperrors.ValidationError{}
	if err := collectValidation(s.validator, req, verr); err != nil {
		return nil, false, err
	}
	if req.Role != "" && (!req.Role.IsValid() || !req.Role.CanReview()) {
		verr.Add("role", "must be one of reviewer, manager, admin")
	}
	if err := verr.OrNil(); err != nil {
		return nil, false, err
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, false, err
	}

	user, err := s.repo.GetByEmail(ctx, req.Email)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		user = &models.User{
			Email:        req.Email,
			FullName:     req.FullName,
			Role:         req.Role,
			PasswordHash: &hash,
			IsActive:     true,
		}
		if err := s.repo.Create(ctx, user); err != nil {
			return nil, false, apperrors.NewStorageError("create user", err)
		}
		logger.WithContext(ctx).WithField("user_id", user.ID).WithField("role", user.Role).Info("Staff account created")
		return user, true, nil
	case err != nil:
		return nil, false, apperrors.NewStorageError("load user", err)
	}

	user.Role = req.Role
	user.PasswordHash = &hash
	user.IsActive = true
	if req.FullName != "" {
		user.FullName = req.FullName
	}
	if err := s.repo.Update(ctx, user); err != nil {
		return nil, false, apperrors.NewStorageError("update user", err)
	}
	logger.WithContext(ctx).WithField("user_id", user.ID).WithField("role", user.Role).Info("Staff account updated")
	return user, false, nil
}

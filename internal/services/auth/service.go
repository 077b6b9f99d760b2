// Package auth signs operators in and out of the console and resolves the
// acting operator for each request.
package auth

import (
	"context"
	"errors"
	"strconv"
	"time"

	apperrors "orusconsole/internal/errors"
	"orusconsole/internal/models"
	"orusconsole/internal/repositories"
	"orusconsole/internal/utils"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type Service interface {
	Login(ctx context.Context, email, password string) (*models.Admin, string, error)
	Logout(ctx context.Context, adminID string) error
	// GetTokenVersion returns the operator's current token version.
	GetTokenVersion(ctx context.Context, adminID string) (int, error)
}

type service struct {
	admins   repositories.AdminRepository
	secret   string
	tokenTTL time.Duration
	logger   *zap.Logger
	now      func() time.Time
}

func NewService(admins repositories.AdminRepository, secret string, tokenTTL time.Duration, logger *zap.Logger) Service {
	return &service{
		admins:   admins,
		secret:   secret,
		tokenTTL: tokenTTL,
		logger:   logger,
		now:      time.Now,
	}
}

func (s *service) Login(ctx context.Context, email, password string) (*models.Admin, string, error) {
	admin, err := s.admins.GetByEmail(ctx, email)
	if err != nil {
		s.logger.Info("login failed: unknown operator", zap.String("email", email))
		return nil, "", apperrors.ErrInvalidCredentials
	}

	if admin.Status != "" && admin.Status != "active" {
		s.logger.Info("login failed: operator disabled", zap.Uint("admin_id", admin.ID))
		return nil, "", apperrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(password)); err != nil {
		s.logger.Info("login failed: wrong password", zap.Uint("admin_id", admin.ID))
		return nil, "", apperrors.ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(&models.AdminClaims{
		AdminID:      strconv.FormatUint(uint64(admin.ID), 10),
		Email:        admin.Email,
		Role:         admin.Role,
		Permissions:  admin.EffectivePermissions(),
		TokenVersion: admin.TokenVersion,
	}, s.secret, s.tokenTTL)
	if err != nil {
		return nil, "", apperrors.Wrap(err, "error generating token")
	}

	if err := s.admins.UpdateLastLogin(ctx, admin.ID, s.now()); err != nil {
		s.logger.Warn("failed to stamp last login", zap.Uint("admin_id", admin.ID), zap.Error(err))
	}
	return admin, token, nil
}

// Logout invalidates every token issued to the operator.
func (s *service) Logout(ctx context.Context, adminID string) error {
	id, err := parseAdminID(adminID)
	if err != nil {
		return err
	}
	return s.admins.IncrementTokenVersion(ctx, id)
}

func (s *service) GetTokenVersion(ctx context.Context, adminID string) (int, error) {
	id, err := parseAdminID(adminID)
	if err != nil {
		return 0, err
	}
	admin, err := s.admins.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrAdminNotFound) {
			return 0, apperrors.ErrAdminNotFound
		}
		return 0, err
	}
	return admin.TokenVersion, nil
}

func parseAdminID(adminID string) (uint, error) {
	id, err := strconv.ParseUint(adminID, 10, 64)
	if err != nil {
		return 0, apperrors.ErrAdminNotFound
	}
	return uint(id), nil
}

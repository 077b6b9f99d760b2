package auth

import (
	"context"
	"testing"
	"time"

	apperrors "orusconsole/internal/errors"
	"orusconsole/internal/models"
	"orusconsole/internal/repositories"
	"orusconsole/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type MockAdminRepository struct {
	mock.Mock
}

func (m *MockAdminRepository) Create(ctx context.Context, admin *models.Admin) error {
	return m.Called(ctx, admin).Error(0)
}

func (m *MockAdminRepository) GetByID(ctx context.Context, id uint) (*models.Admin, error) {
	args := m.Called(ctx, id)
	admin, _ := args.Get(0).(*models.Admin)
	return admin, args.Error(1)
}

func (m *MockAdminRepository) GetByEmail(ctx context.Context, email string) (*models.Admin, error) {
	args := m.Called(ctx, email)
	admin, _ := args.Get(0).(*models.Admin)
	return admin, args.Error(1)
}

func (m *MockAdminRepository) IncrementTokenVersion(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockAdminRepository) UpdateLastLogin(ctx context.Context, id uint, at time.Time) error {
	return m.Called(ctx, id, at).Error(0)
}

const secret = "test-secret"

func operator(t *testing.T, password string) *models.Admin {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return &models.Admin{
		Model:        gorm.Model{ID: 7},
		Email:        "ops@orus.io",
		Password:     string(hash),
		Role:         models.RoleSupport,
		Status:       "active",
		TokenVersion: 3,
	}
}

func TestLogin(t *testing.T) {
	tests := []struct {
		name     string
		password string
		setup    func(*MockAdminRepository, *models.Admin)
		wantErr  error
	}{
		{
			name:     "valid credentials",
			password: "s3cret!pw",
			setup: func(repo *MockAdminRepository, admin *models.Admin) {
				repo.On("GetByEmail", mock.Anything, "ops@orus.io").Return(admin, nil)
				repo.On("UpdateLastLogin", mock.Anything, uint(7), mock.Anything).Return(nil)
			},
		},
		{
			name:     "wrong password",
			password: "guess",
			setup: func(repo *MockAdminRepository, admin *models.Admin) {
				repo.On("GetByEmail", mock.Anything, "ops@orus.io").Return(admin, nil)
			},
			wantErr: apperrors.ErrInvalidCredentials,
		},
		{
			name:     "unknown operator",
			password: "s3cret!pw",
			setup: func(repo *MockAdminRepository, _ *models.Admin) {
				repo.On("GetByEmail", mock.Anything, "ops@orus.io").Return(nil, repositories.ErrAdminNotFound)
			},
			wantErr: apperrors.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockAdminRepository)
			admin := operator(t, "s3cret!pw")
			tt.setup(repo, admin)

			s := NewService(repo, secret, time.Hour, zap.NewNop())
			got, token, err := s.Login(context.Background(), "ops@orus.io", tt.password)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, token)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, admin, got)

			claims, err := utils.ParseToken(token, secret)
			require.NoError(t, err)
			assert.Equal(t, "7", claims.AdminID)
			assert.Equal(t, 3, claims.TokenVersion)
			assert.Equal(t, models.GetDefaultPermissions(models.RoleSupport), claims.Permissions)
			repo.AssertExpectations(t)
		})
	}
}

func TestLogout_BumpsTokenVersion(t *testing.T) {
	repo := new(MockAdminRepository)
	repo.On("IncrementTokenVersion", mock.Anything, uint(7)).Return(nil)

	s := NewService(repo, secret, time.Hour, zap.NewNop())
	require.NoError(t, s.Logout(context.Background(), "7"))
	assert.ErrorIs(t, s.Logout(context.Background(), "not-a-number"), apperrors.ErrAdminNotFound)
	repo.AssertExpectations(t)
}

func TestGetTokenVersion(t *testing.T) {
	repo := new(MockAdminRepository)
	repo.On("GetByID", mock.Anything, uint(7)).Return(&models.Admin{TokenVersion: 4}, nil)
	repo.On("GetByID", mock.Anything, uint(8)).Return(nil, repositories.ErrAdminNotFound)

	s := NewService(repo, secret, time.Hour, zap.NewNop())
	v, err := s.GetTokenVersion(context.Background(), "7")
	require.NoError(t, err)
	assert.Equal(t, 4, v)

	_, err = s.GetTokenVersion(context.Background(), "8")
	assert.ErrorIs(t, err, apperrors.ErrAdminNotFound)
}

func TestAdminIDContext(t *testing.T) {
	assert.Empty(t, AdminIDFromContext(context.Background()))
	ctx := WithAdminID(context.Background(), "7")
	assert.Equal(t, "7", AdminIDFromContext(ctx))
}

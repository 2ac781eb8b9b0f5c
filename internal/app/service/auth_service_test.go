package service

import (
	"context"
	"testing"
	"time"

	"github.com/scentscape/scentscape-backend/config"
	"github.com/scentscape/scentscape-backend/internal/app/model"
	"github.com/scentscape/scentscape-backend/internal/app/repository"
	"github.com/scentscape/scentscape-backend/internal/db"
	"github.com/scentscape/scentscape-backend/pkg/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupAuthServiceTest(t *testing.T) (AuthService, *gorm.DB) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	userRepo := repository.NewUserRepository(testDB)
	jwtCfg := &config.JWTConfig{
		Secret:             "test-secret",
		AccessTokenExpiry:  15 * time.Minute,
		RefreshTokenExpiry: 168 * time.Hour,
	}
	return NewAuthService(userRepo, jwtCfg), testDB
}

func TestAuthService_Register(t *testing.T) {
	authService, _ := setupAuthServiceTest(t)

	user, tokens, err := authService.Register(RegisterInput{
		Email:    "new@example.com",
		Password: "password123",
		Name:     "New User",
	})
	assert.NoError(t, err)
	assert.Equal(t, model.RoleUser, user.Role)
	assert.NotEmpty(t, tokens.AccessToken)
	assert.NotEmpty(t, tokens.RefreshToken)

	// Password is stored hashed
	assert.NotEqual(t, "password123", user.PasswordHash)
	assert.True(t, util.VerifyPassword(user.PasswordHash, "password123"))
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	authService, _ := setupAuthServiceTest(t)

	_, _, err := authService.Register(RegisterInput{
		Email:    "dup@example.com",
		Password: "password123",
		Name:     "First",
	})
	require.NoError(t, err)

	_, _, err = authService.Register(RegisterInput{
		Email:    "dup@example.com",
		Password: "different",
		Name:     "Second",
	})
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
}

func TestAuthService_Login(t *testing.T) {
	authService, _ := setupAuthServiceTest(t)

	_, _, err := authService.Register(RegisterInput{
		Email:    "login@example.com",
		Password: "password123",
		Name:     "Login User",
	})
	require.NoError(t, err)

	user, tokens, err := authService.Login("login@example.com", "password123")
	assert.NoError(t, err)
	assert.Equal(t, "login@example.com", user.Email)
	assert.NotEmpty(t, tokens.AccessToken)

	// Claims carry the role
	claims, err := util.ValidateToken(tokens.AccessToken, "test-secret")
	assert.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, string(model.RoleUser), claims.Role)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	authService, _ := setupAuthServiceTest(t)

	_, _, err := authService.Register(RegisterInput{
		Email:    "login@example.com",
		Password: "password123",
		Name:     "Login User",
	})
	require.NoError(t, err)

	_, _, err = authService.Login("login@example.com", "wrongpassword")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	authService, _ := setupAuthServiceTest(t)

	_, _, err := authService.Login("nobody@example.com", "password123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Login_AdminRole(t *testing.T) {
	authService, testDB := setupAuthServiceTest(t)

	hash, err := util.HashPassword("admin123")
	require.NoError(t, err)
	testDB.Create(&model.User{
		Email:        "admin@scentscape.com",
		PasswordHash: hash,
		Name:         "Store Admin",
		Role:         model.RoleAdmin,
	})

	user, tokens, err := authService.Login("admin@scentscape.com", "admin123")
	assert.NoError(t, err)
	assert.Equal(t, model.RoleAdmin, user.Role)

	claims, err := util.ValidateToken(tokens.AccessToken, "test-secret")
	assert.NoError(t, err)
	assert.Equal(t, string(model.RoleAdmin), claims.Role)
}

func TestAuthService_Logout_WithoutRevocationStore(t *testing.T) {
	authService, _ := setupAuthServiceTest(t)

	// No Redis in tests; logout degrades to a no-op
	err := authService.Logout(context.Background(), "some-token")
	assert.NoError(t, err)
}

func TestAuthService_UpdateProfile(t *testing.T) {
	authService, _ := setupAuthServiceTest(t)

	user, _, err := authService.Register(RegisterInput{
		Email:    "profile@example.com",
		Password: "password123",
		Name:     "Before",
	})
	require.NoError(t, err)

	newName := "After"
	updated, err := authService.UpdateProfile(user.ID, UpdateProfileInput{Name: &newName})
	assert.NoError(t, err)
	assert.Equal(t, "After", updated.Name)
	assert.Equal(t, user.Email, updated.Email)
}

func TestAuthService_GetUserByID_NotFound(t *testing.T) {
	authService, _ := setupAuthServiceTest(t)

	_, err := authService.GetUserByID(9999)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

package service

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/pizzafy/pizzafy/internal/config"
	"github.com/pizzafy/pizzafy/internal/models"
	"github.com/pizzafy/pizzafy/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupAuthServiceTest(t *testing.T) (*AuthService, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:auth_service_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	models.DB = db

	cfg := &config.Config{
		JWT: config.JWTConfig{
			SecretKey:          "auth-service-test-secret-key-0123456789",
			AccessExpireHours:  1,
			RefreshExpireHours: 24,
		},
		Security: config.SecurityConfig{
			PasswordPolicy: config.PasswordPolicyConfig{MinLength: 8},
		},
	}
	return NewAuthService(cfg, repository.NewUserRepository(db)), db
}

func registerAuthTestUser(t *testing.T, svc *AuthService, username string) *models.User {
	t.Helper()
	user, err := svc.Register(RegisterInput{
		Username: username,
		Email:    fmt.Sprintf("%s@example.com", username),
		Password: "pizzafy123",
	})
	if err != nil {
		t.Fatalf("register %s failed: %v", username, err)
	}
	return user
}

func TestRegisterDefaultsToCustomer(t *testing.T) {
	svc, _ := setupAuthServiceTest(t)

	user := registerAuthTestUser(t, svc, "register_default")
	if user.Role != models.RoleCustomer {
		t.Fatalf("role want Customer got %s", user.Role)
	}
	if !user.IsActive {
		t.Fatalf("expected new user active")
	}
	if user.PasswordHash == "pizzafy123" {
		t.Fatalf("password stored in plaintext")
	}
}

func TestRegisterRejectsDuplicatesAndBadInput(t *testing.T) {
	svc, _ := setupAuthServiceTest(t)
	registerAuthTestUser(t, svc, "register_dup")

	if _, err := svc.Register(RegisterInput{
		Username: "register_dup2",
		Email:    "register_dup@example.com",
		Password: "pizzafy123",
	}); !errors.Is(err, ErrEmailExists) {
		t.Fatalf("expected ErrEmailExists, got: %v", err)
	}
	if _, err := svc.Register(RegisterInput{
		Username: "register_dup",
		Email:    "register_dup2@example.com",
		Password: "pizzafy123",
	}); !errors.Is(err, ErrUsernameExists) {
		t.Fatalf("expected ErrUsernameExists, got: %v", err)
	}
	if _, err := svc.Register(RegisterInput{
		Username: "register_role",
		Email:    "register_role@example.com",
		Password: "pizzafy123",
		Role:     "SuperAdmin",
	}); !errors.Is(err, ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole, got: %v", err)
	}
	if _, err := svc.Register(RegisterInput{
		Username: "register_weak",
		Email:    "register_weak@example.com",
		Password: "short",
	}); !errors.Is(err, ErrPasswordTooWeak) {
		t.Fatalf("expected ErrPasswordTooWeak, got: %v", err)
	}
	if _, err := svc.Register(RegisterInput{
		Username: "register_email",
		Email:    "not-an-email",
		Password: "pizzafy123",
	}); !errors.Is(err, ErrInvalidEmail) {
		t.Fatalf("expected ErrInvalidEmail, got: %v", err)
	}
}

func TestLoginIssuesTokenPair(t *testing.T) {
	svc, _ := setupAuthServiceTest(t)
	registerAuthTestUser(t, svc, "login_ok")

	user, pair, err := svc.Login("login_ok", "pizzafy123")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if pair.Access == "" || pair.Refresh == "" {
		t.Fatalf("expected both tokens, got: %+v", pair)
	}
	if user.LastLoginAt == nil {
		t.Fatalf("expected last login timestamp")
	}

	claims, err := svc.ParseToken(pair.Access)
	if err != nil {
		t.Fatalf("parse access token failed: %v", err)
	}
	if claims.UserID != user.ID || claims.TokenType != TokenTypeAccess {
		t.Fatalf("unexpected access claims: %+v", claims)
	}

	// 邮箱登录走同一条路径
	if _, _, err := svc.Login("login_ok@example.com", "pizzafy123"); err != nil {
		t.Fatalf("email login failed: %v", err)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc, db := setupAuthServiceTest(t)
	user := registerAuthTestUser(t, svc, "login_bad")

	if _, _, err := svc.Login("login_bad", "wrong-password"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got: %v", err)
	}
	if _, _, err := svc.Login("nobody", "pizzafy123"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got: %v", err)
	}

	if err := db.Model(&models.User{}).Where("id = ?", user.ID).Update("is_active", false).Error; err != nil {
		t.Fatalf("disable user failed: %v", err)
	}
	if _, _, err := svc.Login("login_bad", "pizzafy123"); !errors.Is(err, ErrUserDisabled) {
		t.Fatalf("expected ErrUserDisabled, got: %v", err)
	}
}

func TestRefreshTokenRequiresRefreshType(t *testing.T) {
	svc, _ := setupAuthServiceTest(t)
	registerAuthTestUser(t, svc, "refresh_user")

	_, pair, err := svc.Login("refresh_user", "pizzafy123")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	if _, _, err := svc.RefreshToken(pair.Access); !errors.Is(err, ErrTokenTypeMismatch) {
		t.Fatalf("expected ErrTokenTypeMismatch, got: %v", err)
	}

	access, expiresAt, err := svc.RefreshToken(pair.Refresh)
	if err != nil {
		t.Fatalf("refresh failed: %v", err)
	}
	if access == "" || !expiresAt.After(time.Now()) {
		t.Fatalf("unexpected refreshed token: %q expires %s", access, expiresAt)
	}
	claims, err := svc.ParseToken(access)
	if err != nil {
		t.Fatalf("parse refreshed token failed: %v", err)
	}
	if claims.TokenType != TokenTypeAccess {
		t.Fatalf("token type want access got %s", claims.TokenType)
	}
}

func TestRefreshTokenRejectedAfterPasswordChange(t *testing.T) {
	svc, _ := setupAuthServiceTest(t)
	user := registerAuthTestUser(t, svc, "refresh_rotate")

	_, pair, err := svc.Login("refresh_rotate", "pizzafy123")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	newPassword := "pizzafy456"
	if _, err := svc.UpdateProfile(Actor{UserID: user.ID, Role: user.Role}, UpdateProfileInput{
		Password: &newPassword,
	}); err != nil {
		t.Fatalf("update password failed: %v", err)
	}

	if _, _, err := svc.RefreshToken(pair.Refresh); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken after password change, got: %v", err)
	}
}

func TestUpdateProfile(t *testing.T) {
	svc, db := setupAuthServiceTest(t)
	user := registerAuthTestUser(t, svc, "profile_user")
	registerAuthTestUser(t, svc, "profile_taken")
	actor := Actor{UserID: user.ID, Role: user.Role}

	if _, err := svc.UpdateProfile(actor, UpdateProfileInput{}); !errors.Is(err, ErrProfileEmpty) {
		t.Fatalf("expected ErrProfileEmpty, got: %v", err)
	}

	taken := "profile_taken"
	if _, err := svc.UpdateProfile(actor, UpdateProfileInput{Username: &taken}); !errors.Is(err, ErrUsernameExists) {
		t.Fatalf("expected ErrUsernameExists, got: %v", err)
	}
	takenEmail := "profile_taken@example.com"
	if _, err := svc.UpdateProfile(actor, UpdateProfileInput{Email: &takenEmail}); !errors.Is(err, ErrEmailExists) {
		t.Fatalf("expected ErrEmailExists, got: %v", err)
	}

	firstName := "Mario"
	newPassword := "pizzafy456"
	updated, err := svc.UpdateProfile(actor, UpdateProfileInput{
		FirstName: &firstName,
		Password:  &newPassword,
	})
	if err != nil {
		t.Fatalf("update profile failed: %v", err)
	}
	if updated.FirstName != "Mario" {
		t.Fatalf("first name want Mario got %s", updated.FirstName)
	}
	if updated.TokenVersion != user.TokenVersion+1 {
		t.Fatalf("token version want %d got %d", user.TokenVersion+1, updated.TokenVersion)
	}

	var stored models.User
	if err := db.First(&stored, user.ID).Error; err != nil {
		t.Fatalf("reload user failed: %v", err)
	}
	if stored.TokenVersion != updated.TokenVersion {
		t.Fatalf("token version not persisted: %d", stored.TokenVersion)
	}

	if _, _, err := svc.Login("profile_user", "pizzafy456"); err != nil {
		t.Fatalf("login with new password failed: %v", err)
	}
}

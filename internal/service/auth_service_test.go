package service

import (
	"errors"
	"testing"

	"github.com/dropmart/dropmart/internal/config"
	"github.com/dropmart/dropmart/internal/constants"
	"github.com/dropmart/dropmart/internal/repository"

	"gorm.io/gorm"
)

func newTestAuthService(db *gorm.DB) *UserAuthService {
	cfg := &config.Config{}
	cfg.JWT.SecretKey = "test-secret-key-for-unit-tests-only!!"
	cfg.JWT.ExpireHours = 1
	cfg.Security.PasswordPolicy = config.PasswordPolicyConfig{
		MinLength:     8,
		RequireUpper:  true,
		RequireLower:  true,
		RequireNumber: true,
	}
	return NewUserAuthService(cfg, repository.NewUserRepository(db))
}

func TestRegisterAssignsRoleAndIssuesToken(t *testing.T) {
	db := setupTestDB(t, "auth_register")
	svc := newTestAuthService(db)

	user, token, _, err := svc.Register(RegisterInput{
		Email:    "Vendor@Test.Dev",
		Password: "Passw0rd123",
		Role:     "Vendor",
	})
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}
	if user.Email != "vendor@test.dev" {
		t.Fatalf("expected normalized email, got %q", user.Email)
	}
	if user.Role != constants.RoleVendor {
		t.Fatalf("expected vendor role, got %q", user.Role)
	}
	if user.DisplayName != "vendor" {
		t.Fatalf("expected nickname from email local part, got %q", user.DisplayName)
	}
	if token == "" {
		t.Fatalf("expected token on register")
	}

	claims, err := svc.ParseUserJWT(token)
	if err != nil {
		t.Fatalf("ParseUserJWT error: %v", err)
	}
	if claims.UserID != user.ID || claims.Role != constants.RoleVendor {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestRegisterRejectsDuplicateEmailAndBadInput(t *testing.T) {
	db := setupTestDB(t, "auth_register_reject")
	svc := newTestAuthService(db)

	if _, _, _, err := svc.Register(RegisterInput{Email: "not-an-email", Password: "Passw0rd123", Role: "customer"}); !errors.Is(err, ErrEmailInvalid) {
		t.Fatalf("expected ErrEmailInvalid, got: %v", err)
	}
	if _, _, _, err := svc.Register(RegisterInput{Email: "a@test.dev", Password: "Passw0rd123", Role: "admin"}); !errors.Is(err, ErrRoleInvalid) {
		t.Fatalf("expected ErrRoleInvalid, got: %v", err)
	}
	if _, _, _, err := svc.Register(RegisterInput{Email: "a@test.dev", Password: "short", Role: "customer"}); !errors.Is(err, ErrWeakPassword) {
		t.Fatalf("expected ErrWeakPassword, got: %v", err)
	}

	if _, _, _, err := svc.Register(RegisterInput{Email: "a@test.dev", Password: "Passw0rd123", Role: "customer"}); err != nil {
		t.Fatalf("first register error: %v", err)
	}
	if _, _, _, err := svc.Register(RegisterInput{Email: "A@test.dev", Password: "Passw0rd123", Role: "customer"}); !errors.Is(err, ErrEmailExists) {
		t.Fatalf("expected ErrEmailExists, got: %v", err)
	}
}

func TestLoginVerifiesCredentialsAndStatus(t *testing.T) {
	db := setupTestDB(t, "auth_login")
	svc := newTestAuthService(db)

	registered, _, _, err := svc.Register(RegisterInput{Email: "buyer@test.dev", Password: "Passw0rd123", Role: "customer"})
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}

	user, token, _, err := svc.Login("buyer@test.dev", "Passw0rd123")
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}
	if user.ID != registered.ID || token == "" {
		t.Fatalf("unexpected login result")
	}

	if _, _, _, err := svc.Login("buyer@test.dev", "WrongPass1"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got: %v", err)
	}
	if _, _, _, err := svc.Login("unknown@test.dev", "Passw0rd123"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown email, got: %v", err)
	}

	registered.Status = constants.UserStatusDisabled
	if err := db.Save(registered).Error; err != nil {
		t.Fatalf("disable user failed: %v", err)
	}
	if _, _, _, err := svc.Login("buyer@test.dev", "Passw0rd123"); !errors.Is(err, ErrUserDisabled) {
		t.Fatalf("expected ErrUserDisabled, got: %v", err)
	}
}

func TestValidatePasswordPolicy(t *testing.T) {
	policy := config.PasswordPolicyConfig{MinLength: 8, RequireUpper: true, RequireLower: true, RequireNumber: true}
	bad := []string{"short1A", "alllowercase1", "ALLUPPERCASE1", "NoNumbersHere"}
	for _, password := range bad {
		if err := validatePassword(policy, password); !errors.Is(err, ErrWeakPassword) {
			t.Fatalf("expected ErrWeakPassword for %q, got: %v", password, err)
		}
	}
	if err := validatePassword(policy, "GoodPass1"); err != nil {
		t.Fatalf("expected valid password, got: %v", err)
	}
}

package service

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/damian-kos/portfolio/internal/db"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupUserServiceTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:user-service-%d?mode=memory&cache=shared", time.Now().UnixNano())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := gdb.AutoMigrate(&db.User{}, &db.Post{}, &db.Comment{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return gdb
}

func TestUserService_FirstRegistrationBecomesAdmin(t *testing.T) {
	gdb := setupUserServiceTestDB(t)
	svc := NewUserService(gdb)

	first, err := svc.Register("Ann", "ann@example.com", "secret")
	if err != nil {
		t.Fatalf("register first user: %v", err)
	}
	if first.Role != db.RoleAdmin {
		t.Fatalf("expected first user role %q, got %q", db.RoleAdmin, first.Role)
	}

	second, err := svc.Register("Ben", "ben@example.com", "secret")
	if err != nil {
		t.Fatalf("register second user: %v", err)
	}
	if second.Role != db.RoleMember {
		t.Fatalf("expected second user role %q, got %q", db.RoleMember, second.Role)
	}
}

func TestUserService_DuplicateEmailLeavesStoreUnchanged(t *testing.T) {
	gdb := setupUserServiceTestDB(t)
	svc := NewUserService(gdb)

	if _, err := svc.Register("Ann", "ann@example.com", "secret"); err != nil {
		t.Fatalf("register: %v", err)
	}

	if _, err := svc.Register("Impostor", "ANN@example.com", "other"); !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}

	var count int64
	if err := gdb.Model(&db.User{}).Count(&count).Error; err != nil {
		t.Fatalf("count users: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 user after duplicate registration, got %d", count)
	}
}

func TestUserService_PasswordIsNeverStoredInPlaintext(t *testing.T) {
	gdb := setupUserServiceTestDB(t)
	svc := NewUserService(gdb)

	user, err := svc.Register("Ann", "ann@example.com", "secret")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if user.Password == "secret" || user.Password == "" {
		t.Fatalf("password stored without hashing: %q", user.Password)
	}
}

func TestUserService_AuthenticateRoundTrip(t *testing.T) {
	gdb := setupUserServiceTestDB(t)
	svc := NewUserService(gdb)

	registered, err := svc.Register("Ann", "ann@example.com", "secret")
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	authenticated, err := svc.Authenticate("ann@example.com", "secret")
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if authenticated.ID != registered.ID {
		t.Fatalf("expected user %d, got %d", registered.ID, authenticated.ID)
	}

	for _, password := range []string{"", "wrong", "secret ", "secretsecret"} {
		if _, err := svc.Authenticate("ann@example.com", password); !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("password %q: expected ErrInvalidCredentials, got %v", password, err)
		}
	}
}

func TestUserService_AuthenticateUnknownEmail(t *testing.T) {
	gdb := setupUserServiceTestDB(t)
	svc := NewUserService(gdb)

	if _, err := svc.Authenticate("nobody@example.com", "secret"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

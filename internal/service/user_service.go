package service

import (
	"errors"
	"strings"

	"github.com/damian-kos/portfolio/internal/db"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrEmailTaken         = errors.New("email is already used")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
)

// UserService wraps account registration and credential checks.
type UserService struct {
	db *gorm.DB
}

// NewUserService creates a UserService instance.
func NewUserService(gdb *gorm.DB) *UserService {
	return &UserService{db: gdb}
}

// Register creates an account with a bcrypt-hashed password. The first
// account ever created becomes the administrator; everyone after that is
// a member. A duplicate email yields ErrEmailTaken.
func (s *UserService) Register(name, email, password string) (*db.User, error) {
	email = normalizeEmail(email)

	user := db.User{
		Name:  strings.TrimSpace(name),
		Email: email,
		Role:  db.RoleMember,
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user.Password = string(hashed)

	if err := s.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&db.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrEmailTaken
		}

		var total int64
		if err := tx.Model(&db.User{}).Count(&total).Error; err != nil {
			return err
		}
		if total == 0 {
			user.Role = db.RoleAdmin
		}

		return tx.Create(&user).Error
	}); err != nil {
		return nil, err
	}

	return &user, nil
}

// Authenticate verifies the submitted credentials. Unknown email and
// wrong password are indistinguishable to the caller.
func (s *UserService) Authenticate(email, password string) (*db.User, error) {
	var user db.User
	if err := s.db.Where("email = ?", normalizeEmail(email)).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return &user, nil
}

// Get fetches a user by id.
func (s *UserService) Get(id uint) (*db.User, error) {
	var user db.User
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

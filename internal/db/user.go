package db

import "gorm.io/gorm"

// Role values stored on User. The earliest-created account is migrated to
// RoleAdmin; this is a deliberate single-admin simplification, not the seed
// of a permission system.
const (
	RoleAdmin  = "admin"
	RoleMember = "member"
)

// User is a registered account. Password holds a bcrypt hash, never the
// plaintext.
type User struct {
	gorm.Model
	Name     string `gorm:"not null"`
	Email    string `gorm:"unique;not null"`
	Password string `gorm:"not null"`
	Role     string `gorm:"not null;default:member"`
	Posts    []Post
}

// IsAdmin reports whether the user may mutate posts.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

package db

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// DB is the shared database handle.
var DB *gorm.DB

// Init opens the sqlite database and runs automigration for the core
// models. databasePath falls back to portfolio.db when empty.
func Init(databasePath string) error {
	path := strings.TrimSpace(databasePath)
	if path == "" {
		path = "portfolio.db"
	}

	if err := ensureParentDir(path); err != nil {
		return err
	}

	var err error
	DB, err = gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return err
	}

	if err = DB.AutoMigrate(
		&User{},
		&Post{},
		&Comment{},
	); err != nil {
		return err
	}

	return MigrateAdminRole(DB)
}

// MigrateAdminRole backfills the role column: the earliest-created user
// keeps the administrator privilege the legacy "user id 1" check implied,
// everyone else becomes a member.
func MigrateAdminRole(gdb *gorm.DB) error {
	if err := gdb.Model(&User{}).
		Where("role = '' OR role IS NULL").
		Update("role", RoleMember).Error; err != nil {
		return err
	}

	var admins int64
	if err := gdb.Model(&User{}).Where("role = ?", RoleAdmin).Count(&admins).Error; err != nil {
		return err
	}
	if admins > 0 {
		return nil
	}

	var first User
	if err := gdb.Order("id asc").First(&first).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}

	return gdb.Model(&User{}).Where("id = ?", first.ID).Update("role", RoleAdmin).Error
}

func ensureParentDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}

	info, err := os.Stat(dir)
	if err == nil {
		if !info.IsDir() {
			return errors.New("database path parent is not a directory")
		}
		return nil
	}

	if os.IsNotExist(err) {
		return os.MkdirAll(dir, 0o755)
	}

	return err
}

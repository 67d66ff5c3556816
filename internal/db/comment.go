package db

import "gorm.io/gorm"

// Comment is reader feedback attached to a post.
type Comment struct {
	gorm.Model
	PostID uint `gorm:"not null;index"`
	UserID uint `gorm:"not null"`
	User   User
	Body   string `gorm:"not null"`
}

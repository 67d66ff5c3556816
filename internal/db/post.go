package db

import "gorm.io/gorm"

// Post categories. Listing pages filter on these; anything else never
// reaches the store because the form layer rejects it.
const (
	CategoryBlog = "blog"
	CategoryTech = "tech"
)

// Post is a published article. CreatedAt doubles as the immutable
// creation date shown on listing pages. Body holds markdown and is
// rendered (and sanitized) at display time.
type Post struct {
	gorm.Model
	UserID       uint   `gorm:"not null"`
	User         User
	Title        string `gorm:"unique;not null"`
	Subtitle     string `gorm:"not null"`
	Body         string `gorm:"not null"`
	ImageURL     string `gorm:"not null"`
	Category     string `gorm:"not null;index"`
	SortPosition int    `gorm:"not null"`
}

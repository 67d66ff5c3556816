// Seed fills a development database with an admin account, a member and a
// handful of posts in both categories.
package main

import (
	"fmt"
	"log"

	"github.com/damian-kos/portfolio/internal/config"
	"github.com/damian-kos/portfolio/internal/db"
	"github.com/damian-kos/portfolio/internal/service"
)

func main() {
	cfg := config.Load()
	if err := db.Init(cfg.DatabasePath); err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	var count int64
	db.DB.Model(&db.User{}).Count(&count)
	if count > 0 {
		fmt.Println("database already has users, nothing to do")
		return
	}

	users := service.NewUserService(db.DB)
	posts := service.NewPostService(db.DB)

	admin, err := users.Register("Damian", "admin@example.com", "admin123")
	if err != nil {
		log.Fatalf("failed to create admin: %v", err)
	}
	if _, err := users.Register("Reader", "reader@example.com", "reader123"); err != nil {
		log.Fatalf("failed to create member: %v", err)
	}

	samples := []service.PostInput{
		{
			Title:        "Hello, World",
			Subtitle:     "First post on the new blog",
			Body:         "Welcome! This is the first post. More to come.",
			ImageURL:     "https://picsum.photos/seed/hello/800/400",
			Category:     db.CategoryBlog,
			SortPosition: 1,
		},
		{
			Title:        "A Week in the Mountains",
			Subtitle:     "Notes from a hiking trip",
			Body:         "Seven days, three summits, one pair of ruined boots.",
			ImageURL:     "https://picsum.photos/seed/mountains/800/400",
			Category:     db.CategoryBlog,
			SortPosition: 2,
		},
		{
			Title:        "Structured Logging in Go",
			Subtitle:     "Why printf debugging stops scaling",
			Body:         "Fields beat format strings once you need to search logs.",
			ImageURL:     "https://picsum.photos/seed/logging/800/400",
			Category:     db.CategoryTech,
			SortPosition: 1,
		},
		{
			Title:        "SQLite in Production",
			Subtitle:     "One file, zero ops",
			Body:         "For a single-server blog, sqlite is all the database you need.",
			ImageURL:     "https://picsum.photos/seed/sqlite/800/400",
			Category:     db.CategoryTech,
			SortPosition: 2,
		},
	}

	for _, input := range samples {
		if _, err := posts.Create(input, admin.ID); err != nil {
			log.Fatalf("failed to create post %q: %v", input.Title, err)
		}
	}

	fmt.Println("seeded database")
	fmt.Println("admin: admin@example.com / admin123")
	fmt.Println("member: reader@example.com / reader123")
	fmt.Printf("posts: %d\n", len(samples))
}

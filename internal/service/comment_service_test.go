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

func setupCommentServiceTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:comment-service-%d?mode=memory&cache=shared", time.Now().UnixNano())
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

func TestCommentService_CreateAndListOldestFirst(t *testing.T) {
	gdb := setupCommentServiceTestDB(t)
	posts := NewPostService(gdb)
	svc := NewCommentService(gdb)
	user := createTestUser(t, gdb, "reader@example.com")

	post, err := posts.Create(samplePostInput("Commented", db.CategoryBlog, 1), user.ID)
	if err != nil {
		t.Fatalf("create post: %v", err)
	}

	first, err := svc.Create(post.ID, user.ID, "First!")
	if err != nil {
		t.Fatalf("create comment: %v", err)
	}
	second, err := svc.Create(post.ID, user.ID, "Second thoughts.")
	if err != nil {
		t.Fatalf("create comment: %v", err)
	}

	listed, err := svc.ListForPost(post.ID)
	if err != nil {
		t.Fatalf("list comments: %v", err)
	}
	if len(listed) != 2 {
		t.Fatalf("expected 2 comments, got %d", len(listed))
	}
	if listed[0].ID != first.ID || listed[1].ID != second.ID {
		t.Fatalf("expected oldest first, got %d then %d", listed[0].ID, listed[1].ID)
	}
}

func TestCommentService_CreateOnMissingPost(t *testing.T) {
	gdb := setupCommentServiceTestDB(t)
	svc := NewCommentService(gdb)
	user := createTestUser(t, gdb, "reader@example.com")

	if _, err := svc.Create(999, user.ID, "Hello?"); !errors.Is(err, ErrPostNotFound) {
		t.Fatalf("expected ErrPostNotFound, got %v", err)
	}
}

func TestCommentService_RejectsEmptyBody(t *testing.T) {
	gdb := setupCommentServiceTestDB(t)
	posts := NewPostService(gdb)
	svc := NewCommentService(gdb)
	user := createTestUser(t, gdb, "reader@example.com")

	post, err := posts.Create(samplePostInput("Quiet", db.CategoryBlog, 1), user.ID)
	if err != nil {
		t.Fatalf("create post: %v", err)
	}

	if _, err := svc.Create(post.ID, user.ID, "   \n\t"); !errors.Is(err, ErrEmptyComment) {
		t.Fatalf("expected ErrEmptyComment, got %v", err)
	}
}

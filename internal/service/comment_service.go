package service

import (
	"errors"
	"strings"

	"github.com/damian-kos/portfolio/internal/db"
	"gorm.io/gorm"
)

var ErrEmptyComment = errors.New("comment body is empty")

// CommentService wraps comment persistence.
type CommentService struct {
	db *gorm.DB
}

// NewCommentService creates a CommentService instance.
func NewCommentService(gdb *gorm.DB) *CommentService {
	return &CommentService{db: gdb}
}

// ListForPost returns a post's comments oldest first.
func (s *CommentService) ListForPost(postID uint) ([]db.Comment, error) {
	var comments []db.Comment
	if err := s.db.Preload("User").
		Where("post_id = ?", postID).
		Order("created_at asc, id asc").
		Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

// Create attaches a comment to an existing post. The post is looked up
// inside the same transaction so a concurrent delete cannot orphan the
// comment.
func (s *CommentService) Create(postID, userID uint, body string) (*db.Comment, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return nil, ErrEmptyComment
	}

	comment := db.Comment{PostID: postID, UserID: userID, Body: body}

	if err := s.db.Transaction(func(tx *gorm.DB) error {
		var post db.Post
		if err := tx.First(&post, postID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrPostNotFound
			}
			return err
		}
		return tx.Create(&comment).Error
	}); err != nil {
		return nil, err
	}

	return &comment, nil
}

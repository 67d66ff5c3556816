package service

import (
	"errors"
	"strings"

	"github.com/damian-kos/portfolio/internal/db"
	"gorm.io/gorm"
)

var (
	ErrPostNotFound = errors.New("post not found")
	ErrTitleTaken   = errors.New("a post with this title already exists")
)

// PostService wraps post related database operations.
type PostService struct {
	db *gorm.DB
}

// PostInput represents validated fields accepted when creating or
// updating a post.
type PostInput struct {
	Title        string
	Subtitle     string
	Body         string
	ImageURL     string
	Category     string
	SortPosition int
}

// NewPostService creates a PostService instance.
func NewPostService(gdb *gorm.DB) *PostService {
	return &PostService{db: gdb}
}

// ListByCategory returns posts in one category ordered by sort position
// descending, with id descending as the stable tie break. An unknown
// category simply matches nothing.
func (s *PostService) ListByCategory(category string) ([]db.Post, error) {
	var posts []db.Post
	if err := s.db.Preload("User").
		Where("category = ?", category).
		Order("sort_position desc, id desc").
		Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// Get fetches a post by id with its author preloaded.
func (s *PostService) Get(id uint) (*db.Post, error) {
	var post db.Post
	if err := s.db.Preload("User").First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	return &post, nil
}

// Create persists a post owned by ownerID. A duplicate title yields
// ErrTitleTaken rather than a bare constraint failure.
func (s *PostService) Create(input PostInput, ownerID uint) (*db.Post, error) {
	post := db.Post{
		UserID:       ownerID,
		Title:        strings.TrimSpace(input.Title),
		Subtitle:     strings.TrimSpace(input.Subtitle),
		Body:         input.Body,
		ImageURL:     strings.TrimSpace(input.ImageURL),
		Category:     input.Category,
		SortPosition: input.SortPosition,
	}

	if err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := ensureTitleFree(tx, post.Title, 0); err != nil {
			return err
		}
		return tx.Create(&post).Error
	}); err != nil {
		return nil, err
	}

	return &post, nil
}

// Update applies validated fields to an existing post inside one
// transaction. Ownership is not touched; the creation date stays as it
// was.
func (s *PostService) Update(id uint, input PostInput) (*db.Post, error) {
	var updated db.Post

	if err := s.db.Transaction(func(tx *gorm.DB) error {
		var existing db.Post
		if err := tx.First(&existing, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrPostNotFound
			}
			return err
		}

		title := strings.TrimSpace(input.Title)
		if err := ensureTitleFree(tx, title, existing.ID); err != nil {
			return err
		}

		existing.Title = title
		existing.Subtitle = strings.TrimSpace(input.Subtitle)
		existing.Body = input.Body
		existing.ImageURL = strings.TrimSpace(input.ImageURL)
		existing.Category = input.Category
		existing.SortPosition = input.SortPosition

		if err := tx.Save(&existing).Error; err != nil {
			return err
		}

		updated = existing
		return nil
	}); err != nil {
		return nil, err
	}

	return &updated, nil
}

// Delete removes a post and its comments. The delete is unscoped: a
// soft-deleted row would keep holding the unique title, and a deleted
// post must free its title for reuse.
func (s *PostService) Delete(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var post db.Post
		if err := tx.First(&post, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrPostNotFound
			}
			return err
		}

		if err := tx.Unscoped().Where("post_id = ?", post.ID).Delete(&db.Comment{}).Error; err != nil {
			return err
		}

		return tx.Unscoped().Delete(&post).Error
	})
}

func ensureTitleFree(tx *gorm.DB, title string, selfID uint) error {
	query := tx.Model(&db.Post{}).Where("title = ?", title)
	if selfID != 0 {
		query = query.Where("id <> ?", selfID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrTitleTaken
	}
	return nil
}

// Package repository provides the data access layer for the content service.
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/Harshalloke/The-Daily-Chronicle/internal/models"
	"gorm.io/gorm"
)

// ErrRecordNotFound is returned when a referenced record does not exist.
var ErrRecordNotFound = errors.New("record not found")

// UserRepository defines the interface for user data operations.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id int64) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
	Update(ctx context.Context, user *models.User) error
	Count(ctx context.Context) (int64, error)
	AddBookmark(ctx context.Context, userID, articleID int64) error
	RemoveBookmark(ctx context.Context, userID, articleID int64) error
	ListBookmarks(ctx context.Context, userID int64) ([]models.Article, error)
	RecordReading(ctx context.Context, entry *models.ReadingHistory) error
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new UserRepository instance.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, fmt.Errorf("failed to find user by email %s: %w", email, err)
	}
	return &user, nil
}

func (r *userRepository) FindByID(ctx context.Context, id int64) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).First(&user, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, fmt.Errorf("failed to find user by id %d: %w", id, err)
	}
	return &user, nil
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func (r *userRepository) Update(ctx context.Context, user *models.User) error {
	if err := r.db.WithContext(ctx).Save(user).Error; err != nil {
		return fmt.Errorf("failed to update user id %d: %w", user.ID, err)
	}
	return nil
}

func (r *userRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.User{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return count, nil
}

func (r *userRepository) AddBookmark(ctx context.Context, userID, articleID int64) error {
	bookmark := models.Bookmark{UserID: userID, ArticleID: articleID}
	err := r.db.WithContext(ctx).FirstOrCreate(&bookmark, bookmark).Error
	if err != nil {
		return fmt.Errorf("failed to add bookmark for user %d: %w", userID, err)
	}
	return nil
}

func (r *userRepository) RemoveBookmark(ctx context.Context, userID, articleID int64) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND article_id = ?", userID, articleID).
		Delete(&models.Bookmark{})
	if result.Error != nil {
		return fmt.Errorf("failed to remove bookmark for user %d: %w", userID, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}

func (r *userRepository) ListBookmarks(ctx context.Context, userID int64) ([]models.Article, error) {
	var articles []models.Article
	err := r.db.WithContext(ctx).
		Joins("JOIN bookmarks ON bookmarks.article_id = articles.id").
		Where("bookmarks.user_id = ?", userID).
		Order("bookmarks.created_at DESC").
		Find(&articles).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list bookmarks for user %d: %w", userID, err)
	}
	return articles, nil
}

func (r *userRepository) RecordReading(ctx context.Context, entry *models.ReadingHistory) error {
	if err := r.db.WithContext(ctx).Create(entry).Error; err != nil {
		return fmt.Errorf("failed to record reading history for user %d: %w", entry.UserID, err)
	}
	return nil
}

package service

import (
	"context"
	"errors"
	"time"

	"github.com/Harshalloke/The-Daily-Chronicle/internal/models"
	"github.com/Harshalloke/The-Daily-Chronicle/internal/repository"
)

// ErrUserNotFound is returned when a referenced user does not exist.
var ErrUserNotFound = errors.New("user not found")

// UserService handles reader profile operations: preferences, bookmarks and
// reading history.
type UserService interface {
	Get(ctx context.Context, id int64) (*models.User, error)
	UpdatePreferences(ctx context.Context, id int64, prefs models.Preferences) (*models.User, error)
	AddBookmark(ctx context.Context, userID, articleID int64) error
	RemoveBookmark(ctx context.Context, userID, articleID int64) error
	ListBookmarks(ctx context.Context, userID int64) ([]models.Article, error)
	RecordReading(ctx context.Context, userID, articleID int64) error
}

type userService struct {
	userRepo    repository.UserRepository
	articleRepo repository.ArticleRepository
}

// NewUserService creates a new UserService instance.
func NewUserService(userRepo repository.UserRepository, articleRepo repository.ArticleRepository) UserService {
	return &userService{
		userRepo:    userRepo,
		articleRepo: articleRepo,
	}
}

func (s *userService) Get(ctx context.Context, id int64) (*models.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) UpdatePreferences(ctx context.Context, id int64, prefs models.Preferences) (*models.User, error) {
	user, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	user.Preferences = prefs
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *userService) AddBookmark(ctx context.Context, userID, articleID int64) error {
	if _, err := s.articleRepo.FindByID(ctx, articleID); err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return ErrArticleNotFound
		}
		return err
	}
	return s.userRepo.AddBookmark(ctx, userID, articleID)
}

func (s *userService) RemoveBookmark(ctx context.Context, userID, articleID int64) error {
	err := s.userRepo.RemoveBookmark(ctx, userID, articleID)
	if errors.Is(err, repository.ErrRecordNotFound) {
		return ErrArticleNotFound
	}
	return err
}

func (s *userService) ListBookmarks(ctx context.Context, userID int64) ([]models.Article, error) {
	return s.userRepo.ListBookmarks(ctx, userID)
}

func (s *userService) RecordReading(ctx context.Context, userID, articleID int64) error {
	return s.userRepo.RecordReading(ctx, &models.ReadingHistory{
		UserID:    userID,
		ArticleID: articleID,
		ReadAt:    time.Now(),
	})
}

package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/Harshalloke/The-Daily-Chronicle/internal/middleware"
	"github.com/Harshalloke/The-Daily-Chronicle/internal/models"
	"github.com/Harshalloke/The-Daily-Chronicle/internal/service"
)

// =============================================================================
// Mock UserService
// =============================================================================

type mockUserService struct {
	getFunc               func(ctx context.Context, id int64) (*models.User, error)
	updatePreferencesFunc func(ctx context.Context, id int64, prefs models.Preferences) (*models.User, error)
	addBookmarkFunc       func(ctx context.Context, userID, articleID int64) error
	removeBookmarkFunc    func(ctx context.Context, userID, articleID int64) error
	listBookmarksFunc     func(ctx context.Context, userID int64) ([]models.Article, error)
	recordReadingFunc     func(ctx context.Context, userID, articleID int64) error
}

func (m *mockUserService) Get(ctx context.Context, id int64) (*models.User, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, id)
	}
	return nil, errors.New("not implemented")
}

func (m *mockUserService) UpdatePreferences(ctx context.Context, id int64, prefs models.Preferences) (*models.User, error) {
	if m.updatePreferencesFunc != nil {
		return m.updatePreferencesFunc(ctx, id, prefs)
	}
	return nil, errors.New("not implemented")
}

func (m *mockUserService) AddBookmark(ctx context.Context, userID, articleID int64) error {
	if m.addBookmarkFunc != nil {
		return m.addBookmarkFunc(ctx, userID, articleID)
	}
	return errors.New("not implemented")
}

func (m *mockUserService) RemoveBookmark(ctx context.Context, userID, articleID int64) error {
	if m.removeBookmarkFunc != nil {
		return m.removeBookmarkFunc(ctx, userID, articleID)
	}
	return errors.New("not implemented")
}

func (m *mockUserService) ListBookmarks(ctx context.Context, userID int64) ([]models.Article, error) {
	if m.listBookmarksFunc != nil {
		return m.listBookmarksFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockUserService) RecordReading(ctx context.Context, userID, articleID int64) error {
	if m.recordReadingFunc != nil {
		return m.recordReadingFunc(ctx, userID, articleID)
	}
	return nil
}

// =============================================================================
// List Handler Tests
// =============================================================================

func TestPublicListHandler(t *testing.T) {
	var gotOpts service.ListOptions
	articleService := &mockArticleService{
		listPublishedFunc: func(ctx context.Context, opts service.ListOptions) (*service.ArticleList, error) {
			gotOpts = opts
			return &service.ArticleList{
				Articles:    []models.Article{{ID: 1, Title: "T", Status: models.StatusPublished}},
				TotalPages:  3,
				CurrentPage: opts.Page,
			}, nil
		},
	}

	handler := NewArticleHandler(articleService, &mockUserService{})
	w, c := createTestContext("GET", "/api/articles?page=2&category=sports", nil)

	handler.List(c)

	if w.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, w.Code)
	}
	if gotOpts.Page != 2 || gotOpts.Category != "sports" {
		t.Errorf("opts = %+v, want page=2 category=sports", gotOpts)
	}

	var list service.ArticleList
	if err := json.Unmarshal(w.Body.Bytes(), &list); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if list.TotalPages != 3 || list.CurrentPage != 2 {
		t.Errorf("list = %+v, want totalPages=3 currentPage=2", list)
	}
}

// =============================================================================
// Get Handler Tests
// =============================================================================

func TestPublicGetHandler(t *testing.T) {
	articleService := &mockArticleService{
		getAndCountViewFunc: func(ctx context.Context, id int64) (*models.Article, error) {
			return &models.Article{ID: id, Title: "T", Status: models.StatusPublished, Views: 6}, nil
		},
	}

	recorded := false
	userService := &mockUserService{
		recordReadingFunc: func(ctx context.Context, userID, articleID int64) error {
			recorded = true
			return nil
		},
	}

	handler := NewArticleHandler(articleService, userService)
	w, c := createTestContext("GET", "/api/articles/5", nil)
	setIDParam(c, "5")

	handler.Get(c)

	if w.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, w.Code)
	}
	if recorded {
		t.Error("anonymous reads must not touch reading history")
	}

	var article models.Article
	if err := json.Unmarshal(w.Body.Bytes(), &article); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if article.Views != 6 {
		t.Errorf("Views = %d, want 6", article.Views)
	}
}

func TestPublicGetHandler_RecordsReadingForAuthenticated(t *testing.T) {
	articleService := &mockArticleService{
		getAndCountViewFunc: func(ctx context.Context, id int64) (*models.Article, error) {
			return &models.Article{ID: id, Status: models.StatusPublished}, nil
		},
	}

	var gotUser, gotArticle int64
	userService := &mockUserService{
		recordReadingFunc: func(ctx context.Context, userID, articleID int64) error {
			gotUser, gotArticle = userID, articleID
			return nil
		},
	}

	handler := NewArticleHandler(articleService, userService)
	w, c := createTestContext("GET", "/api/articles/5", nil)
	setIDParam(c, "5")
	c.Set(middleware.ClaimsKey, &service.Claims{UserID: 9, Email: "a@x.com", Role: models.RoleUser})

	handler.Get(c)

	if w.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, w.Code)
	}
	if gotUser != 9 || gotArticle != 5 {
		t.Errorf("reading recorded for (%d, %d), want (9, 5)", gotUser, gotArticle)
	}
}

func TestPublicGetHandler_NotFound(t *testing.T) {
	tests := []struct {
		name string
		id   string
		err  error
	}{
		{name: "missing article", id: "99", err: service.ErrArticleNotFound},
		{name: "malformed id", id: "abc", err: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			articleService := &mockArticleService{
				getAndCountViewFunc: func(ctx context.Context, id int64) (*models.Article, error) {
					return nil, tt.err
				},
			}

			handler := NewArticleHandler(articleService, &mockUserService{})
			w, c := createTestContext("GET", "/api/articles/"+tt.id, nil)
			setIDParam(c, tt.id)

			handler.Get(c)

			if w.Code != http.StatusNotFound {
				t.Errorf("expected status %d, got %d", http.StatusNotFound, w.Code)
			}
		})
	}
}

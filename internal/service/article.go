package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Harshalloke/The-Daily-Chronicle/internal/models"
	"github.com/Harshalloke/The-Daily-Chronicle/internal/repository"
)

// ErrArticleNotFound is returned when a referenced article does not exist.
var ErrArticleNotFound = errors.New("article not found")

// ValidationError reports a missing or malformed input field.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("field %q is required", e.Field)
}

// ArticleInput carries the editable fields of an article as submitted by the
// admin console. Tags is the raw comma-separated list from the form.
type ArticleInput struct {
	Title         string
	Content       string
	Excerpt       string
	Author        string
	Category      string
	Tags          string
	Status        string
	Featured      bool
	AllowComments bool
	// FeaturedImage is the stored image reference, empty when no new image
	// was uploaded.
	FeaturedImage string
}

// ArticleList is a single page of articles plus pagination totals.
type ArticleList struct {
	Articles    []models.Article `json:"articles"`
	TotalPages  int              `json:"totalPages"`
	CurrentPage int              `json:"currentPage"`
}

// ListOptions narrows a listing request. Public listings ignore Status and
// always see published articles only.
type ListOptions struct {
	Status   string
	Category string
	Page     int
	Limit    int
}

// ArticleService handles the article CRUD and publish workflow.
type ArticleService interface {
	ListPublished(ctx context.Context, opts ListOptions) (*ArticleList, error)
	ListAll(ctx context.Context, opts ListOptions) (*ArticleList, error)
	Get(ctx context.Context, id int64) (*models.Article, error)
	// GetAndCountView fetches an article for public reading and bumps its
	// view counter.
	GetAndCountView(ctx context.Context, id int64) (*models.Article, error)
	Create(ctx context.Context, input ArticleInput) (*models.Article, error)
	Update(ctx context.Context, id int64, input ArticleInput) (*models.Article, error)
	Delete(ctx context.Context, id int64) error
	Publish(ctx context.Context, id int64) (*models.Article, error)
	Unpublish(ctx context.Context, id int64) (*models.Article, error)
}

type articleService struct {
	articleRepo  repository.ArticleRepository
	activityRepo repository.ActivityRepository
}

// NewArticleService creates a new ArticleService instance.
func NewArticleService(articleRepo repository.ArticleRepository, activityRepo repository.ActivityRepository) ArticleService {
	return &articleService{
		articleRepo:  articleRepo,
		activityRepo: activityRepo,
	}
}

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
)

func normalizeListOptions(opts ListOptions) ListOptions {
	if opts.Page < 1 {
		opts.Page = defaultPage
	}
	if opts.Limit < 1 {
		opts.Limit = defaultLimit
	}
	if opts.Limit > maxLimit {
		opts.Limit = maxLimit
	}
	return opts
}

func (s *articleService) ListPublished(ctx context.Context, opts ListOptions) (*ArticleList, error) {
	opts = normalizeListOptions(opts)

	articles, total, err := s.articleRepo.List(ctx, repository.ArticleFilter{
		Status:   models.StatusPublished,
		Category: opts.Category,
		Page:     opts.Page,
		Limit:    opts.Limit,
		OrderBy:  "published_at",
	})
	if err != nil {
		return nil, err
	}

	return buildArticleList(articles, total, opts), nil
}

func (s *articleService) ListAll(ctx context.Context, opts ListOptions) (*ArticleList, error) {
	opts = normalizeListOptions(opts)

	articles, total, err := s.articleRepo.List(ctx, repository.ArticleFilter{
		Status:   opts.Status,
		Category: opts.Category,
		Page:     opts.Page,
		Limit:    opts.Limit,
		OrderBy:  "created_at",
	})
	if err != nil {
		return nil, err
	}

	return buildArticleList(articles, total, opts), nil
}

func buildArticleList(articles []models.Article, total int64, opts ListOptions) *ArticleList {
	totalPages := int((total + int64(opts.Limit) - 1) / int64(opts.Limit))
	if articles == nil {
		articles = []models.Article{}
	}
	return &ArticleList{
		Articles:    articles,
		TotalPages:  totalPages,
		CurrentPage: opts.Page,
	}
}

func (s *articleService) Get(ctx context.Context, id int64) (*models.Article, error) {
	article, err := s.articleRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return nil, ErrArticleNotFound
		}
		return nil, err
	}
	return article, nil
}

func (s *articleService) GetAndCountView(ctx context.Context, id int64) (*models.Article, error) {
	article, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	// Drafts are invisible on public pages.
	if !article.IsPublished() {
		return nil, ErrArticleNotFound
	}

	// The counter is approximate; a lost increment under concurrent reads
	// is acceptable.
	if err := s.articleRepo.IncrementViews(ctx, id); err != nil {
		return nil, err
	}
	article.Views++

	return article, nil
}

func validateInput(input ArticleInput) error {
	switch {
	case strings.TrimSpace(input.Title) == "":
		return &ValidationError{Field: "title"}
	case strings.TrimSpace(input.Content) == "":
		return &ValidationError{Field: "content"}
	case strings.TrimSpace(input.Author) == "":
		return &ValidationError{Field: "author"}
	case strings.TrimSpace(input.Category) == "":
		return &ValidationError{Field: "category"}
	}
	return nil
}

// parseTags splits a comma-separated tag list, trims whitespace and drops
// empties and duplicates.
func parseTags(raw string) []string {
	seen := make(map[string]bool)
	tags := []string{}
	for _, tag := range strings.Split(raw, ",") {
		tag = strings.TrimSpace(tag)
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		tags = append(tags, tag)
	}
	return tags
}

func (s *articleService) Create(ctx context.Context, input ArticleInput) (*models.Article, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	status := input.Status
	if status != models.StatusPublished {
		status = models.StatusDraft
	}

	article := &models.Article{
		Title:         input.Title,
		Content:       input.Content,
		Excerpt:       input.Excerpt,
		Author:        input.Author,
		Category:      input.Category,
		Tags:          parseTags(input.Tags),
		FeaturedImage: input.FeaturedImage,
		Status:        status,
		Featured:      input.Featured,
		AllowComments: input.AllowComments,
	}

	if status == models.StatusPublished {
		now := time.Now()
		article.PublishedAt = &now
	}

	if err := s.articleRepo.Create(ctx, article); err != nil {
		return nil, err
	}

	_ = s.activityRepo.Log(ctx, &models.ActivityLog{
		Type:        models.ActivityArticleCreated,
		Description: fmt.Sprintf("Article created: %s", article.Title),
	})

	return article, nil
}

func (s *articleService) Update(ctx context.Context, id int64, input ArticleInput) (*models.Article, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	article, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	article.Title = input.Title
	article.Content = input.Content
	article.Excerpt = input.Excerpt
	article.Author = input.Author
	article.Category = input.Category
	article.Tags = parseTags(input.Tags)
	article.Featured = input.Featured
	article.AllowComments = input.AllowComments
	if input.FeaturedImage != "" {
		article.FeaturedImage = input.FeaturedImage
	}

	if input.Status == models.StatusPublished && article.Status != models.StatusPublished {
		article.Status = models.StatusPublished
		if article.PublishedAt == nil {
			now := time.Now()
			article.PublishedAt = &now
		}
	} else if input.Status == models.StatusDraft {
		article.Status = models.StatusDraft
	}

	if err := s.articleRepo.Update(ctx, article); err != nil {
		return nil, err
	}

	return article, nil
}

func (s *articleService) Delete(ctx context.Context, id int64) error {
	article, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	if err := s.articleRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return ErrArticleNotFound
		}
		return err
	}

	_ = s.activityRepo.Log(ctx, &models.ActivityLog{
		Type:        models.ActivityArticleDeleted,
		Description: fmt.Sprintf("Article deleted: %s", article.Title),
	})

	return nil
}

// Publish transitions an article to published. Publishing an already
// published article is a no-op success and leaves PublishedAt untouched.
func (s *articleService) Publish(ctx context.Context, id int64) (*models.Article, error) {
	article, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if article.IsPublished() {
		return article, nil
	}

	article.Status = models.StatusPublished
	if article.PublishedAt == nil {
		now := time.Now()
		article.PublishedAt = &now
	}

	if err := s.articleRepo.Update(ctx, article); err != nil {
		return nil, err
	}

	_ = s.activityRepo.Log(ctx, &models.ActivityLog{
		Type:        models.ActivityArticlePublished,
		Description: fmt.Sprintf("Article published: %s", article.Title),
	})

	return article, nil
}

// Unpublish sends an article back to draft. PublishedAt is preserved so the
// original publish date survives a later re-publish.
func (s *articleService) Unpublish(ctx context.Context, id int64) (*models.Article, error) {
	article, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if !article.IsPublished() {
		return article, nil
	}

	article.Status = models.StatusDraft

	if err := s.articleRepo.Update(ctx, article); err != nil {
		return nil, err
	}

	_ = s.activityRepo.Log(ctx, &models.ActivityLog{
		Type:        models.ActivityArticleUnpublished,
		Description: fmt.Sprintf("Article unpublished: %s", article.Title),
	})

	return article, nil
}

package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/Harshalloke/The-Daily-Chronicle/internal/models"
	"gorm.io/gorm"
)

// ArticleFilter narrows article listings. Empty or "all" values match
// everything; Status/Category are exact matches otherwise.
type ArticleFilter struct {
	Status   string
	Category string
	Page     int
	Limit    int
	// OrderBy is the sort column, newest first ("published_at" for public
	// listings, "created_at" for the admin console).
	OrderBy string
}

// ArticleRepository defines the interface for article data operations.
type ArticleRepository interface {
	FindByID(ctx context.Context, id int64) (*models.Article, error)
	List(ctx context.Context, filter ArticleFilter) ([]models.Article, int64, error)
	Create(ctx context.Context, article *models.Article) error
	Update(ctx context.Context, article *models.Article) error
	Delete(ctx context.Context, id int64) error
	IncrementViews(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
	SumViews(ctx context.Context) (int64, error)
}

type articleRepository struct {
	db *gorm.DB
}

// NewArticleRepository creates a new ArticleRepository instance.
func NewArticleRepository(db *gorm.DB) ArticleRepository {
	return &articleRepository{db: db}
}

func (r *articleRepository) FindByID(ctx context.Context, id int64) (*models.Article, error) {
	var article models.Article
	err := r.db.WithContext(ctx).First(&article, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, fmt.Errorf("failed to find article by id %d: %w", id, err)
	}
	return &article, nil
}

func (r *articleRepository) List(ctx context.Context, filter ArticleFilter) ([]models.Article, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Article{})

	if filter.Status != "" && filter.Status != "all" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Category != "" && filter.Category != "all" {
		query = query.Where("category = ?", filter.Category)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count articles: %w", err)
	}

	orderBy := filter.OrderBy
	if orderBy == "" {
		orderBy = "created_at"
	}

	var articles []models.Article
	err := query.
		Order(orderBy + " DESC").
		Limit(filter.Limit).
		Offset((filter.Page - 1) * filter.Limit).
		Find(&articles).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list articles: %w", err)
	}

	return articles, total, nil
}

func (r *articleRepository) Create(ctx context.Context, article *models.Article) error {
	if err := r.db.WithContext(ctx).Create(article).Error; err != nil {
		return fmt.Errorf("failed to create article: %w", err)
	}
	return nil
}

func (r *articleRepository) Update(ctx context.Context, article *models.Article) error {
	if err := r.db.WithContext(ctx).Save(article).Error; err != nil {
		return fmt.Errorf("failed to update article id %d: %w", article.ID, err)
	}
	return nil
}

func (r *articleRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&models.Article{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete article id %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}

// IncrementViews bumps the view counter in a single UPDATE. Concurrent
// increments may interleave with reads; the counter is approximate.
func (r *articleRepository) IncrementViews(ctx context.Context, id int64) error {
	err := r.db.WithContext(ctx).
		Model(&models.Article{}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + 1")).Error
	if err != nil {
		return fmt.Errorf("failed to increment views for article %d: %w", id, err)
	}
	return nil
}

func (r *articleRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Article{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count articles: %w", err)
	}
	return count, nil
}

func (r *articleRepository) SumViews(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&models.Article{}).
		Select("COALESCE(SUM(views), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, fmt.Errorf("failed to sum article views: %w", err)
	}
	return total, nil
}

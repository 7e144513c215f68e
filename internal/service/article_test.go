package service

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"testing"
	"time"

	"github.com/Harshalloke/The-Daily-Chronicle/internal/models"
	"github.com/Harshalloke/The-Daily-Chronicle/internal/repository"
)

// =============================================================================
// In-memory ArticleRepository
// =============================================================================

// fakeArticleRepo implements repository.ArticleRepository over a slice,
// mirroring the store's filter and pagination behavior.
type fakeArticleRepo struct {
	articles []models.Article
	nextID   int64
}

func newFakeArticleRepo() *fakeArticleRepo {
	return &fakeArticleRepo{nextID: 1}
}

func (r *fakeArticleRepo) FindByID(ctx context.Context, id int64) (*models.Article, error) {
	for i := range r.articles {
		if r.articles[i].ID == id {
			article := r.articles[i]
			return &article, nil
		}
	}
	return nil, repository.ErrRecordNotFound
}

func (r *fakeArticleRepo) List(ctx context.Context, filter repository.ArticleFilter) ([]models.Article, int64, error) {
	var matching []models.Article
	for _, a := range r.articles {
		if filter.Status != "" && filter.Status != "all" && a.Status != filter.Status {
			continue
		}
		if filter.Category != "" && filter.Category != "all" && a.Category != filter.Category {
			continue
		}
		matching = append(matching, a)
	}

	total := int64(len(matching))
	start := (filter.Page - 1) * filter.Limit
	if start >= len(matching) {
		return nil, total, nil
	}
	end := start + filter.Limit
	if end > len(matching) {
		end = len(matching)
	}
	return matching[start:end], total, nil
}

func (r *fakeArticleRepo) Create(ctx context.Context, article *models.Article) error {
	article.ID = r.nextID
	r.nextID++
	article.CreatedAt = time.Now()
	r.articles = append(r.articles, *article)
	return nil
}

func (r *fakeArticleRepo) Update(ctx context.Context, article *models.Article) error {
	for i := range r.articles {
		if r.articles[i].ID == article.ID {
			r.articles[i] = *article
			return nil
		}
	}
	return repository.ErrRecordNotFound
}

func (r *fakeArticleRepo) Delete(ctx context.Context, id int64) error {
	for i := range r.articles {
		if r.articles[i].ID == id {
			r.articles = append(r.articles[:i], r.articles[i+1:]...)
			return nil
		}
	}
	return repository.ErrRecordNotFound
}

func (r *fakeArticleRepo) IncrementViews(ctx context.Context, id int64) error {
	for i := range r.articles {
		if r.articles[i].ID == id {
			r.articles[i].Views++
			return nil
		}
	}
	return nil
}

func (r *fakeArticleRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(r.articles)), nil
}

func (r *fakeArticleRepo) SumViews(ctx context.Context) (int64, error) {
	var total int64
	for _, a := range r.articles {
		total += a.Views
	}
	return total, nil
}

// =============================================================================
// Test Helpers
// =============================================================================

func setupTestArticleService(t *testing.T) (ArticleService, *fakeArticleRepo, *mockActivityRepository) {
	t.Helper()
	repo := newFakeArticleRepo()
	activity := &mockActivityRepository{}
	return NewArticleService(repo, activity), repo, activity
}

func validArticleInput() ArticleInput {
	return ArticleInput{
		Title:         "Breaking News",
		Content:       "Something happened.",
		Excerpt:       "Something",
		Author:        "Jane Reporter",
		Category:      "news",
		Tags:          "politics, economy",
		Status:        models.StatusDraft,
		AllowComments: true,
	}
}

// =============================================================================
// Create Tests
// =============================================================================

func TestCreate_Draft(t *testing.T) {
	service, _, activity := setupTestArticleService(t)

	article, err := service.Create(context.Background(), validArticleInput())
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if article.Status != models.StatusDraft {
		t.Errorf("Status = %q, want draft", article.Status)
	}
	if article.PublishedAt != nil {
		t.Error("draft article must not have PublishedAt set")
	}
	if len(activity.logged) != 1 || activity.logged[0].Type != models.ActivityArticleCreated {
		t.Error("Create() should log an article_created activity entry")
	}
}

func TestCreate_PublishedStampsPublishedAt(t *testing.T) {
	service, _, _ := setupTestArticleService(t)

	input := validArticleInput()
	input.Status = models.StatusPublished

	before := time.Now()
	article, err := service.Create(context.Background(), input)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if article.Status != models.StatusPublished {
		t.Errorf("Status = %q, want published", article.Status)
	}
	if article.PublishedAt == nil {
		t.Fatal("published article must have PublishedAt set")
	}
	if article.PublishedAt.Before(before) || article.PublishedAt.After(time.Now()) {
		t.Errorf("PublishedAt = %v, want within the call window", article.PublishedAt)
	}
}

func TestCreate_MissingRequiredFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ArticleInput)
		field  string
	}{
		{name: "missing title", mutate: func(i *ArticleInput) { i.Title = "" }, field: "title"},
		{name: "whitespace title", mutate: func(i *ArticleInput) { i.Title = "   " }, field: "title"},
		{name: "missing content", mutate: func(i *ArticleInput) { i.Content = "" }, field: "content"},
		{name: "missing author", mutate: func(i *ArticleInput) { i.Author = "" }, field: "author"},
		{name: "missing category", mutate: func(i *ArticleInput) { i.Category = "" }, field: "category"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo, _ := setupTestArticleService(t)

			input := validArticleInput()
			tt.mutate(&input)

			_, err := service.Create(context.Background(), input)

			var validationErr *ValidationError
			if !errors.As(err, &validationErr) {
				t.Fatalf("Create() error = %v, want *ValidationError", err)
			}
			if validationErr.Field != tt.field {
				t.Errorf("ValidationError.Field = %q, want %q", validationErr.Field, tt.field)
			}
			if len(repo.articles) != 0 {
				t.Error("failed Create() must not add a record")
			}
		})
	}
}

func TestCreate_TagNormalization(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{name: "trims whitespace", raw: " go ,  web,api", want: []string{"go", "web", "api"}},
		{name: "drops empties", raw: "go,,web,", want: []string{"go", "web"}},
		{name: "drops duplicates", raw: "go,web,go", want: []string{"go", "web"}},
		{name: "empty list", raw: "", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, _, _ := setupTestArticleService(t)

			input := validArticleInput()
			input.Tags = tt.raw

			article, err := service.Create(context.Background(), input)
			if err != nil {
				t.Fatalf("Create() error = %v", err)
			}
			if !reflect.DeepEqual(article.Tags, tt.want) {
				t.Errorf("Tags = %v, want %v", article.Tags, tt.want)
			}
		})
	}
}

// =============================================================================
// Publish / Unpublish Tests
// =============================================================================

func TestPublish_Idempotent(t *testing.T) {
	service, _, _ := setupTestArticleService(t)

	article, err := service.Create(context.Background(), validArticleInput())
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	first, err := service.Publish(context.Background(), article.ID)
	if err != nil {
		t.Fatalf("Publish() error = %v", err)
	}
	if first.Status != models.StatusPublished || first.PublishedAt == nil {
		t.Fatal("first Publish() must set status and PublishedAt")
	}
	firstPublishedAt := *first.PublishedAt

	second, err := service.Publish(context.Background(), article.ID)
	if err != nil {
		t.Fatalf("second Publish() error = %v", err)
	}
	if second.Status != models.StatusPublished {
		t.Errorf("Status = %q, want published", second.Status)
	}
	if second.PublishedAt == nil || !second.PublishedAt.Equal(firstPublishedAt) {
		t.Error("second Publish() must leave PublishedAt unchanged")
	}
}

func TestPublish_NotFound(t *testing.T) {
	service, _, _ := setupTestArticleService(t)

	if _, err := service.Publish(context.Background(), 999); !errors.Is(err, ErrArticleNotFound) {
		t.Errorf("Publish() error = %v, want ErrArticleNotFound", err)
	}
}

func TestUnpublish_PreservesPublishedAt(t *testing.T) {
	service, _, _ := setupTestArticleService(t)

	input := validArticleInput()
	input.Status = models.StatusPublished
	article, err := service.Create(context.Background(), input)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	publishedAt := *article.PublishedAt

	unpublished, err := service.Unpublish(context.Background(), article.ID)
	if err != nil {
		t.Fatalf("Unpublish() error = %v", err)
	}

	if unpublished.Status != models.StatusDraft {
		t.Errorf("Status = %q, want draft", unpublished.Status)
	}
	if unpublished.PublishedAt == nil || !unpublished.PublishedAt.Equal(publishedAt) {
		t.Error("Unpublish() must preserve the original publish date")
	}

	// Re-publishing keeps the first publish date.
	republished, err := service.Publish(context.Background(), article.ID)
	if err != nil {
		t.Fatalf("Publish() error = %v", err)
	}
	if !republished.PublishedAt.Equal(publishedAt) {
		t.Error("re-publish must keep the first publish date")
	}
}

// =============================================================================
// Listing and Pagination Tests
// =============================================================================

func seedArticles(t *testing.T, service ArticleService, n int, status string) {
	t.Helper()
	for i := 0; i < n; i++ {
		input := validArticleInput()
		input.Title = fmt.Sprintf("Article %d", i+1)
		input.Status = status
		if _, err := service.Create(context.Background(), input); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}
}

func TestListPublished_Pagination(t *testing.T) {
	service, _, _ := setupTestArticleService(t)
	seedArticles(t, service, 25, models.StatusPublished)

	tests := []struct {
		name      string
		page      int
		wantItems int
		wantPages int
	}{
		{name: "first page", page: 1, wantItems: 10, wantPages: 3},
		{name: "middle page", page: 2, wantItems: 10, wantPages: 3},
		{name: "last partial page", page: 3, wantItems: 5, wantPages: 3},
		{name: "page beyond range", page: 4, wantItems: 0, wantPages: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list, err := service.ListPublished(context.Background(), ListOptions{Page: tt.page, Limit: 10})
			if err != nil {
				t.Fatalf("ListPublished() error = %v", err)
			}
			if len(list.Articles) != tt.wantItems {
				t.Errorf("len(Articles) = %d, want %d", len(list.Articles), tt.wantItems)
			}
			if list.TotalPages != tt.wantPages {
				t.Errorf("TotalPages = %d, want %d", list.TotalPages, tt.wantPages)
			}
			if list.CurrentPage != tt.page {
				t.Errorf("CurrentPage = %d, want %d", list.CurrentPage, tt.page)
			}
		})
	}
}

func TestListPublished_ExcludesDrafts(t *testing.T) {
	service, _, _ := setupTestArticleService(t)
	seedArticles(t, service, 3, models.StatusPublished)
	seedArticles(t, service, 2, models.StatusDraft)

	list, err := service.ListPublished(context.Background(), ListOptions{Page: 1, Limit: 10})
	if err != nil {
		t.Fatalf("ListPublished() error = %v", err)
	}
	if len(list.Articles) != 3 {
		t.Errorf("len(Articles) = %d, want 3 (drafts excluded)", len(list.Articles))
	}
}

func TestListAll_StatusFilter(t *testing.T) {
	service, _, _ := setupTestArticleService(t)
	seedArticles(t, service, 3, models.StatusPublished)
	seedArticles(t, service, 2, models.StatusDraft)

	tests := []struct {
		name   string
		status string
		want   int
	}{
		{name: "all statuses", status: "all", want: 5},
		{name: "empty means all", status: "", want: 5},
		{name: "drafts only", status: models.StatusDraft, want: 2},
		{name: "published only", status: models.StatusPublished, want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list, err := service.ListAll(context.Background(), ListOptions{Status: tt.status, Page: 1, Limit: 10})
			if err != nil {
				t.Fatalf("ListAll() error = %v", err)
			}
			if len(list.Articles) != tt.want {
				t.Errorf("len(Articles) = %d, want %d", len(list.Articles), tt.want)
			}
		})
	}
}

// =============================================================================
// Draft Visibility Scenario
// =============================================================================

func TestDraftInvisibleUntilPublished(t *testing.T) {
	service, _, _ := setupTestArticleService(t)

	input := validArticleInput()
	input.Title = "Draft A"
	article, err := service.Create(context.Background(), input)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	list, err := service.ListPublished(context.Background(), ListOptions{Page: 1, Limit: 10})
	if err != nil {
		t.Fatalf("ListPublished() error = %v", err)
	}
	if len(list.Articles) != 0 {
		t.Fatal("draft must not appear in the public list")
	}

	if _, err := service.GetAndCountView(context.Background(), article.ID); !errors.Is(err, ErrArticleNotFound) {
		t.Errorf("GetAndCountView() on draft error = %v, want ErrArticleNotFound", err)
	}

	if _, err := service.Publish(context.Background(), article.ID); err != nil {
		t.Fatalf("Publish() error = %v", err)
	}

	list, err = service.ListPublished(context.Background(), ListOptions{Page: 1, Limit: 10})
	if err != nil {
		t.Fatalf("ListPublished() error = %v", err)
	}
	if len(list.Articles) != 1 {
		t.Fatal("published article must appear in the public list")
	}
	if list.Articles[0].PublishedAt == nil {
		t.Error("published article must carry a non-nil PublishedAt")
	}
}

// =============================================================================
// Get / Delete / Views Tests
// =============================================================================

func TestGet_NotFound(t *testing.T) {
	service, _, _ := setupTestArticleService(t)

	if _, err := service.Get(context.Background(), 42); !errors.Is(err, ErrArticleNotFound) {
		t.Errorf("Get() error = %v, want ErrArticleNotFound", err)
	}
}

func TestDelete(t *testing.T) {
	service, repo, activity := setupTestArticleService(t)

	article, err := service.Create(context.Background(), validArticleInput())
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if err := service.Delete(context.Background(), article.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if len(repo.articles) != 0 {
		t.Error("Delete() must remove the record")
	}
	if err := service.Delete(context.Background(), article.ID); !errors.Is(err, ErrArticleNotFound) {
		t.Errorf("second Delete() error = %v, want ErrArticleNotFound", err)
	}

	var deleted bool
	for _, entry := range activity.logged {
		if entry.Type == models.ActivityArticleDeleted {
			deleted = true
		}
	}
	if !deleted {
		t.Error("Delete() should log an article_deleted activity entry")
	}
}

func TestGetAndCountView_IncrementsViews(t *testing.T) {
	service, repo, _ := setupTestArticleService(t)

	input := validArticleInput()
	input.Status = models.StatusPublished
	article, err := service.Create(context.Background(), input)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	for i := 1; i <= 3; i++ {
		got, err := service.GetAndCountView(context.Background(), article.ID)
		if err != nil {
			t.Fatalf("GetAndCountView() error = %v", err)
		}
		if got.Views != int64(i) {
			t.Errorf("Views = %d, want %d", got.Views, i)
		}
	}

	stored, _ := repo.FindByID(context.Background(), article.ID)
	if stored.Views != 3 {
		t.Errorf("stored Views = %d, want 3", stored.Views)
	}
}

// =============================================================================
// Update Tests
// =============================================================================

func TestUpdate_ReplacesImageOnlyWhenProvided(t *testing.T) {
	service, _, _ := setupTestArticleService(t)

	input := validArticleInput()
	input.FeaturedImage = "/uploads/first.jpg"
	article, err := service.Create(context.Background(), input)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	// Update without a new image keeps the old reference.
	update := validArticleInput()
	updated, err := service.Update(context.Background(), article.ID, update)
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if updated.FeaturedImage != "/uploads/first.jpg" {
		t.Errorf("FeaturedImage = %q, want /uploads/first.jpg", updated.FeaturedImage)
	}

	// Update with a new image replaces it.
	update.FeaturedImage = "/uploads/second.jpg"
	updated, err = service.Update(context.Background(), article.ID, update)
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if updated.FeaturedImage != "/uploads/second.jpg" {
		t.Errorf("FeaturedImage = %q, want /uploads/second.jpg", updated.FeaturedImage)
	}
}

func TestUpdate_NotFound(t *testing.T) {
	service, _, _ := setupTestArticleService(t)

	if _, err := service.Update(context.Background(), 123, validArticleInput()); !errors.Is(err, ErrArticleNotFound) {
		t.Errorf("Update() error = %v, want ErrArticleNotFound", err)
	}
}

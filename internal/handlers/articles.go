package handlers

import (
	"net/http"
	"strconv"

	"github.com/Harshalloke/The-Daily-Chronicle/internal/metrics"
	"github.com/Harshalloke/The-Daily-Chronicle/internal/middleware"
	"github.com/Harshalloke/The-Daily-Chronicle/internal/service"
	"github.com/gin-gonic/gin"
)

// ArticleHandler handles the public article browsing endpoints.
type ArticleHandler struct {
	articleService service.ArticleService
	userService    service.UserService
}

// NewArticleHandler creates a new ArticleHandler instance.
func NewArticleHandler(articleService service.ArticleService, userService service.UserService) *ArticleHandler {
	return &ArticleHandler{
		articleService: articleService,
		userService:    userService,
	}
}

func parseListOptions(c *gin.Context) service.ListOptions {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	return service.ListOptions{
		Status:   c.Query("status"),
		Category: c.Query("category"),
		Page:     page,
		Limit:    limit,
	}
}

func parseIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		RespondError(c, http.StatusNotFound, "Article not found")
		return 0, false
	}
	return id, true
}

// List godoc
// @Summary List published articles
// @Description Paginated list of published articles, newest first
// @Tags articles
// @Produce json
// @Param category query string false "Category filter"
// @Param page query int false "1-based page number"
// @Param limit query int false "Page size"
// @Success 200 {object} service.ArticleList
// @Router /articles [get]
func (h *ArticleHandler) List(c *gin.Context) {
	list, err := h.articleService.ListPublished(c.Request.Context(), parseListOptions(c))
	if err != nil {
		RespondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}

// Get godoc
// @Summary Read a single article
// @Description Fetch one article and count the view. Authenticated readers
// also get the read appended to their reading history.
// @Tags articles
// @Produce json
// @Param id path int true "Article ID"
// @Success 200 {object} models.Article
// @Failure 404 {object} map[string]string
// @Router /articles/{id} [get]
func (h *ArticleHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	article, err := h.articleService.GetAndCountView(c.Request.Context(), id)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	metrics.ArticleViews.Inc()

	// Reading history only for logged-in readers; anonymous reads still count
	// the view.
	if claims, ok := middleware.GetClaims(c); ok {
		_ = h.userService.RecordReading(c.Request.Context(), claims.UserID, id)
	}

	c.JSON(http.StatusOK, article)
}

package handlers

import (
	"errors"
	"net/http"

	"github.com/Harshalloke/The-Daily-Chronicle/internal/service"
	"github.com/Harshalloke/The-Daily-Chronicle/internal/storage"
	"github.com/gin-gonic/gin"
)

// AdminHandler handles the role-gated content-management endpoints.
type AdminHandler struct {
	articleService service.ArticleService
	adminService   service.AdminService
	images         *storage.ImageStore
}

// NewAdminHandler creates a new AdminHandler instance.
func NewAdminHandler(articleService service.ArticleService, adminService service.AdminService, images *storage.ImageStore) *AdminHandler {
	return &AdminHandler{
		articleService: articleService,
		adminService:   adminService,
		images:         images,
	}
}

// articleInputFromForm reads the multipart article fields and stores an
// uploaded featured image, if any.
func (h *AdminHandler) articleInputFromForm(c *gin.Context) (service.ArticleInput, error) {
	input := service.ArticleInput{
		Title:         c.PostForm("title"),
		Content:       c.PostForm("content"),
		Excerpt:       c.PostForm("excerpt"),
		Author:        c.PostForm("author"),
		Category:      c.PostForm("category"),
		Tags:          c.PostForm("tags"),
		Status:        c.PostForm("status"),
		Featured:      c.PostForm("featured") == "true",
		AllowComments: c.DefaultPostForm("allowComments", "true") == "true",
	}

	file, err := c.FormFile("featuredImage")
	if err != nil {
		// No image attached is fine.
		return input, nil
	}

	path, err := h.images.Save(file)
	if err != nil {
		return input, err
	}
	input.FeaturedImage = path

	return input, nil
}

// Dashboard godoc
// @Summary Admin dashboard statistics
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Success 200 {object} service.DashboardStats
// @Router /admin/dashboard [get]
func (h *AdminHandler) Dashboard(c *gin.Context) {
	stats, err := h.adminService.DashboardStats(c.Request.Context())
	if err != nil {
		RespondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// Activity godoc
// @Summary Recent site activity
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Success 200 {array} models.ActivityLog
// @Router /admin/activity [get]
func (h *AdminHandler) Activity(c *gin.Context) {
	entries, err := h.adminService.RecentActivity(c.Request.Context())
	if err != nil {
		RespondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, entries)
}

// List godoc
// @Summary List articles for the admin console
// @Description Any status/category filter, newest first by creation time
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Param page query int false "1-based page number"
// @Param limit query int false "Page size"
// @Param status query string false "Status filter (draft, published, all)"
// @Param category query string false "Category filter"
// @Success 200 {object} service.ArticleList
// @Router /admin/articles [get]
func (h *AdminHandler) List(c *gin.Context) {
	list, err := h.articleService.ListAll(c.Request.Context(), parseListOptions(c))
	if err != nil {
		RespondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}

// Get godoc
// @Summary Fetch a single article regardless of status
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Param id path int true "Article ID"
// @Success 200 {object} models.Article
// @Failure 404 {object} map[string]string
// @Router /admin/articles/{id} [get]
func (h *AdminHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	article, err := h.articleService.Get(c.Request.Context(), id)
	if err != nil {
		RespondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, article)
}

// Create godoc
// @Summary Create an article
// @Description Multipart body with article fields and an optional featuredImage file
// @Tags admin
// @Security BearerAuth
// @Accept mpfd
// @Produce json
// @Success 201 {object} models.Article
// @Failure 400 {object} map[string]string
// @Router /admin/articles [post]
func (h *AdminHandler) Create(c *gin.Context) {
	input, err := h.articleInputFromForm(c)
	if err != nil {
		if errors.Is(err, storage.ErrUnsupportedImageType) {
			RespondError(c, http.StatusBadRequest, err.Error())
			return
		}
		RespondServiceError(c, err)
		return
	}

	article, err := h.articleService.Create(c.Request.Context(), input)
	if err != nil {
		RespondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, article)
}

// Update godoc
// @Summary Update an article
// @Description Multipart body; a new featuredImage replaces the previous one
// @Tags admin
// @Security BearerAuth
// @Accept mpfd
// @Produce json
// @Param id path int true "Article ID"
// @Success 200 {object} models.Article
// @Failure 404 {object} map[string]string
// @Router /admin/articles/{id} [put]
func (h *AdminHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	input, err := h.articleInputFromForm(c)
	if err != nil {
		if errors.Is(err, storage.ErrUnsupportedImageType) {
			RespondError(c, http.StatusBadRequest, err.Error())
			return
		}
		RespondServiceError(c, err)
		return
	}

	article, err := h.articleService.Update(c.Request.Context(), id, input)
	if err != nil {
		RespondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, article)
}

// Delete godoc
// @Summary Delete an article
// @Tags admin
// @Security BearerAuth
// @Param id path int true "Article ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/articles/{id} [delete]
func (h *AdminHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.articleService.Delete(c.Request.Context(), id); err != nil {
		RespondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Article deleted"})
}

// Publish godoc
// @Summary Publish an article
// @Description Idempotent; publishing an already published article succeeds
// @Tags admin
// @Security BearerAuth
// @Param id path int true "Article ID"
// @Success 200 {object} models.Article
// @Failure 404 {object} map[string]string
// @Router /admin/articles/{id}/publish [patch]
func (h *AdminHandler) Publish(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	article, err := h.articleService.Publish(c.Request.Context(), id)
	if err != nil {
		RespondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, article)
}

// Unpublish godoc
// @Summary Unpublish an article
// @Description Returns the article to draft; the publish date is preserved
// @Tags admin
// @Security BearerAuth
// @Param id path int true "Article ID"
// @Success 200 {object} models.Article
// @Failure 404 {object} map[string]string
// @Router /admin/articles/{id}/unpublish [patch]
func (h *AdminHandler) Unpublish(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	article, err := h.articleService.Unpublish(c.Request.Context(), id)
	if err != nil {
		RespondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, article)
}

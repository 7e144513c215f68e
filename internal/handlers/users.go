package handlers

import (
	"net/http"
	"strconv"

	"github.com/Harshalloke/The-Daily-Chronicle/internal/middleware"
	"github.com/Harshalloke/The-Daily-Chronicle/internal/models"
	"github.com/Harshalloke/The-Daily-Chronicle/internal/service"
	"github.com/gin-gonic/gin"
)

// UserHandler handles the authenticated reader profile endpoints.
type UserHandler struct {
	userService service.UserService
}

// NewUserHandler creates a new UserHandler instance.
func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// PreferencesRequest represents the preference update payload.
type PreferencesRequest struct {
	Categories    []string `json:"categories"`
	Notifications []string `json:"notifications"`
}

func currentUserID(c *gin.Context) (int64, bool) {
	claims, ok := middleware.GetClaims(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, "No token provided")
		return 0, false
	}
	return claims.UserID, true
}

// Me godoc
// @Summary Current user profile
// @Tags users
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.User
// @Router /users/me [get]
func (h *UserHandler) Me(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	user, err := h.userService.Get(c.Request.Context(), userID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// UpdatePreferences godoc
// @Summary Update category and notification preferences
// @Tags users
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body PreferencesRequest true "Preferences"
// @Success 200 {object} models.User
// @Router /users/me/preferences [put]
func (h *UserHandler) UpdatePreferences(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req PreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.userService.UpdatePreferences(c.Request.Context(), userID, models.Preferences{
		Categories:    req.Categories,
		Notifications: req.Notifications,
	})
	if err != nil {
		RespondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// ListBookmarks godoc
// @Summary List bookmarked articles
// @Tags users
// @Security BearerAuth
// @Produce json
// @Success 200 {array} models.Article
// @Router /users/me/bookmarks [get]
func (h *UserHandler) ListBookmarks(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	articles, err := h.userService.ListBookmarks(c.Request.Context(), userID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, articles)
}

// AddBookmark godoc
// @Summary Bookmark an article
// @Tags users
// @Security BearerAuth
// @Param articleID path int true "Article ID"
// @Success 201 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /users/me/bookmarks/{articleID} [post]
func (h *UserHandler) AddBookmark(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	articleID, err := strconv.ParseInt(c.Param("articleID"), 10, 64)
	if err != nil || articleID < 1 {
		RespondError(c, http.StatusNotFound, "Article not found")
		return
	}

	if err := h.userService.AddBookmark(c.Request.Context(), userID, articleID); err != nil {
		RespondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Bookmark added"})
}

// RemoveBookmark godoc
// @Summary Remove a bookmark
// @Tags users
// @Security BearerAuth
// @Param articleID path int true "Article ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /users/me/bookmarks/{articleID} [delete]
func (h *UserHandler) RemoveBookmark(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	articleID, err := strconv.ParseInt(c.Param("articleID"), 10, 64)
	if err != nil || articleID < 1 {
		RespondError(c, http.StatusNotFound, "Article not found")
		return
	}

	if err := h.userService.RemoveBookmark(c.Request.Context(), userID, articleID); err != nil {
		RespondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Bookmark removed"})
}

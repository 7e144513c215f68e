// Package handlers contains HTTP request handlers for the content service.
package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/Harshalloke/The-Daily-Chronicle/internal/service"
	"github.com/gin-gonic/gin"
)

// RespondError writes a JSON error body with the given status code.
func RespondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"message": message})
}

// RespondServiceError maps a service-layer error onto its HTTP status code.
// Unrecognized errors are logged and reported as a generic 500.
func RespondServiceError(c *gin.Context, err error) {
	var validationErr *service.ValidationError

	switch {
	case errors.As(err, &validationErr):
		RespondError(c, http.StatusBadRequest, validationErr.Error())
	case errors.Is(err, service.ErrDuplicateEmail):
		RespondError(c, http.StatusBadRequest, "User already exists")
	case errors.Is(err, service.ErrInvalidCredentials):
		RespondError(c, http.StatusBadRequest, "Invalid credentials")
	case errors.Is(err, service.ErrInvalidToken):
		RespondError(c, http.StatusUnauthorized, "Invalid token")
	case errors.Is(err, service.ErrArticleNotFound):
		RespondError(c, http.StatusNotFound, "Article not found")
	case errors.Is(err, service.ErrUserNotFound):
		RespondError(c, http.StatusNotFound, "User not found")
	default:
		log.Printf("internal error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Server error")
	}
}

package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/andriamanitra/portfolio-api/internal/store"
)

// validationMessages flattens a binding error into one message per violated
// constraint, so a bad payload reports every problem at once.
func validationMessages(err error) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{err.Error()}
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fieldMessage(fe))
	}
	return msgs
}

// storeError maps a gateway failure to a 500 response, distinguishing a
// missing connection from an operation that failed against a live store.
func storeError(c *gin.Context, err error, fallback string) {
	if errors.Is(err, store.ErrUnavailable) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database not available"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
}

func fieldMessage(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "url":
		return fmt.Sprintf("%s must be a well-formed URL", field)
	default:
		return fmt.Sprintf("%s failed %s validation", field, fe.Tag())
	}
}

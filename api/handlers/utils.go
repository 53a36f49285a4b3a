package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// bindError writes a 400 response for a failed JSON bind. Validator errors
// become a field-level error map; anything else (malformed JSON) a plain
// error string.
func bindError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make(map[string][]string, len(verrs))
		for _, fe := range verrs {
			name := strings.ToLower(fe.Field())
			fields[name] = append(fields[name], fieldErrorMessage(fe))
		}
		c.JSON(http.StatusBadRequest, gin.H{"errors": fields})
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}

// blankTitle rejects an explicitly empty title on partial updates, which the
// omitempty binding tag would otherwise let through. Writes the 400 response
// and returns true when the title is present but blank.
func blankTitle(c *gin.Context, title *string) bool {
	if title != nil && *title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"errors": gin.H{"title": []string{"This field may not be blank."}}})
		return true
	}
	return false
}

func fieldErrorMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "max":
		return fmt.Sprintf("Ensure this field has no more than %s characters.", fe.Param())
	case "min":
		return "This field may not be blank."
	default:
		return fmt.Sprintf("Invalid value (%s).", fe.Tag())
	}
}

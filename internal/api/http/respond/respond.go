// Package respond writes apperr failures as JSON responses.
package respond

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kiokosk/CustomerProjectManagement/internal/apperr"
)

const msgInvalidBody = "Invalid request body!"

// Error writes err with the status for its kind. Not-found failures use a
// "message" key, everything else uses "error".
func Error(c *gin.Context, err error) {
	var e *apperr.Error
	if !errors.As(err, &e) {
		e = apperr.Persistence(err)
	}

	switch e.Kind {
	case apperr.KindNotFound:
		c.JSON(http.StatusNotFound, gin.H{"message": e.Error()})
	case apperr.KindValidation:
		body := gin.H{"error": e.Error()}
		if len(e.EmptyFields) > 0 {
			body["emptyFields"] = e.EmptyFields
		}
		c.JSON(http.StatusBadRequest, body)
	case apperr.KindConflict:
		c.JSON(http.StatusBadRequest, gin.H{"error": e.Error()})
	default:
		log.Printf("[err] method=%s path=%s error=%v", c.Request.Method, c.Request.URL.Path, e)
		c.JSON(http.StatusBadRequest, gin.H{"error": e.Error()})
	}
}

func InvalidBody(c *gin.Context) {
	c.JSON(http.StatusBadRequest, gin.H{"error": msgInvalidBody})
}

func Deleted(c *gin.Context, msg string) {
	c.JSON(http.StatusOK, gin.H{"message": msg})
}

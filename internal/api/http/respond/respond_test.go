package respond

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/kiokosk/CustomerProjectManagement/internal/apperr"
)

func write(err error) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)

	rr := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rr)
	c.Request = httptest.NewRequest(http.MethodGet, "/x", nil)
	Error(c, err)
	return rr
}

func TestError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		body   string
	}{
		{
			name:   "not found uses message",
			err:    apperr.NotFound("Customer not found!"),
			status: http.StatusNotFound,
			body:   `{"message":"Customer not found!"}`,
		},
		{
			name:   "validation lists empty fields",
			err:    apperr.Validation("Please fill in all the fields!", "name", "email"),
			status: http.StatusBadRequest,
			body:   `{"error":"Please fill in all the fields!","emptyFields":["name","email"]}`,
		},
		{
			name:   "validation without fields",
			err:    apperr.Validation("Please enter a valid email address!"),
			status: http.StatusBadRequest,
			body:   `{"error":"Please enter a valid email address!"}`,
		},
		{
			name:   "conflict",
			err:    apperr.Conflict("Customer with that email already exists!", errors.New("dup")),
			status: http.StatusBadRequest,
			body:   `{"error":"Customer with that email already exists!"}`,
		},
		{
			name:   "plain errors are persistence failures",
			err:    errors.New("disk full"),
			status: http.StatusBadRequest,
			body:   `{"error":"disk full"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := write(tt.err)
			assert.Equal(t, tt.status, rr.Code)
			assert.JSONEq(t, tt.body, rr.Body.String())
		})
	}
}

func TestInvalidBodyAndDeleted(t *testing.T) {
	gin.SetMode(gin.TestMode)

	rr := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rr)
	InvalidBody(c)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"error":"Invalid request body!"}`, rr.Body.String())

	rr = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(rr)
	Deleted(c, "Project deleted successfully!")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"message":"Project deleted successfully!"}`, rr.Body.String())
}

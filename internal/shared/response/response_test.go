package response_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"catalog-admin/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestNewMeta(t *testing.T) {
	assert.Equal(t, &response.Meta{Page: 0, Limit: 10, Total: 21, TotalPages: 3}, response.NewMeta(0, 10, 21))
	assert.Equal(t, 0, response.NewMeta(0, 0, 5).TotalPages)
	assert.Equal(t, 0, response.NewMeta(0, 10, 0).TotalPages)
}

func TestValidationFailed(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	response.ValidationFailed(c, []string{"'name' should not be null"})

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var body struct {
		Success bool `json:"success"`
		Error   struct {
			Code    string   `json:"code"`
			Details []string `json:"details"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, "VALIDATION_ERROR", body.Error.Code)
	assert.Equal(t, []string{"'name' should not be null"}, body.Error.Details)
}

func TestUnauthorizedAborts(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	response.Unauthorized(c, "missing token")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.True(t, c.IsAborted())
}

package responses

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext() (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	return c, w
}

func TestSendErrorStatusText(t *testing.T) {
	c, w := newTestContext()
	SendError(c, http.StatusConflict, "already exists", nil)

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "error", body.Status)
	assert.Equal(t, http.StatusConflict, body.Code)
	assert.True(t, c.IsAborted())

	c, w = newTestContext()
	SendError(c, http.StatusInternalServerError, "boom", nil)

	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "fail", body.Status)
}

func TestSendErrorCarriesDetails(t *testing.T) {
	c, w := newTestContext()
	SendError(c, http.StatusBadRequest, "Validation failed", map[string]string{"name": "required"})

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	errs, ok := body["errors"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "required", errs["name"])
}

func TestSendPaginatedMath(t *testing.T) {
	c, w := newTestContext()
	SendPaginated(c, http.StatusOK, "", []string{"a", "b"}, 25, 2, 10)

	var body PaginatedResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, int64(25), body.Pagination.TotalItems)
	assert.Equal(t, 3, body.Pagination.TotalPages)
	assert.True(t, body.Pagination.HasNextPage)
	assert.True(t, body.Pagination.HasPrevPage)
	require.NotNil(t, body.Pagination.NextPage)
	assert.Equal(t, 3, *body.Pagination.NextPage)
	require.NotNil(t, body.Pagination.PreviousPage)
	assert.Equal(t, 1, *body.Pagination.PreviousPage)
}

func TestSendPaginatedLastPage(t *testing.T) {
	c, w := newTestContext()
	SendPaginated(c, http.StatusOK, "", []string{"a"}, 11, 2, 10)

	var body PaginatedResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 2, body.Pagination.TotalPages)
	assert.False(t, body.Pagination.HasNextPage)
	assert.Nil(t, body.Pagination.NextPage)
}

func TestForbiddenCarriesDetails(t *testing.T) {
	c, w := newTestContext()
	Forbidden(c, "", gin.H{"role": "Sponsor", "module": "rechnungen"})

	assert.Equal(t, http.StatusForbidden, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Access to this resource is forbidden", body["message"])
	errs, ok := body["errors"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Sponsor", errs["role"])
}

func TestUnauthorizedDefaultMessage(t *testing.T) {
	c, w := newTestContext()
	Unauthorized(c, "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Unauthorized access", body.Message)
}

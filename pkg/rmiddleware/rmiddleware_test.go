package rmiddleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clubhaus-app/clubhaus/internal/access"
	"github.com/clubhaus-app/clubhaus/internal/middleware"
)

type emptyAccessRepository struct{}

func (emptyAccessRepository) LoadConfiguration() (access.RolesConfiguration, error) { return nil, nil }
func (emptyAccessRepository) SaveConfiguration(access.RolesConfiguration) error     { return nil }

func newTestContext(role string) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	if role != "" {
		c.Set(middleware.AuthRoleKey, role)
	}
	return c, w
}

func TestModuleMiddlewareAllowsGrantedRole(t *testing.T) {
	gate := access.NewGate(emptyAccessRepository{})
	handler := ModuleMiddleware(gate, access.ModuleSponsors)

	c, _ := newTestContext(access.RoleSponsor)
	handler(c)

	assert.False(t, c.IsAborted())
}

func TestModuleMiddlewareDenialCarriesRoleAndModule(t *testing.T) {
	gate := access.NewGate(emptyAccessRepository{})
	handler := ModuleMiddleware(gate, access.ModuleInvoices)

	c, w := newTestContext(access.RoleSponsor)
	handler(c)

	assert.True(t, c.IsAborted())
	assert.Equal(t, http.StatusForbidden, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, access.RoleSponsor, body["role"])
	assert.Equal(t, access.ModuleInvoices, body["module"])
}

func TestModuleMiddlewareRejectsMissingRole(t *testing.T) {
	gate := access.NewGate(emptyAccessRepository{})
	handler := ModuleMiddleware(gate, access.ModuleDashboard)

	c, w := newTestContext("")
	handler(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

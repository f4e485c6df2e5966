package access

import (
	"net/http"
	"strings"

	"github.com/clubhaus-app/clubhaus/internal/middleware"
	"github.com/clubhaus-app/clubhaus/pkg/responses"
	"github.com/gin-gonic/gin"
)

// AccessController handles navigation and roles-configuration requests.
type AccessController struct {
	gate *Gate
}

// NewAccessController creates a new AccessController.
func NewAccessController(gate *Gate) *AccessController {
	return &AccessController{gate: gate}
}

// SaveRolesConfigurationRequest carries the full replacement mapping.
type SaveRolesConfigurationRequest struct {
	Configuration map[string][]string `json:"configuration" binding:"required"`
}

// GetNavigation godoc
// @Summary Get the caller's navigation
// @Description Returns the navigation items visible to the authenticated role, optionally restricted to specific sections.
// @Tags Access
// @Produce json
// @Param sections query string false "Comma-separated section names to include"
// @Success 200 {object} responses.SuccessResponse{data=[]NavigationItem}
// @Failure 401 {object} responses.ErrorResponse "Unauthorized"
// @Router /navigation [get]
// @Security BearerAuth
func (ac *AccessController) GetNavigation(c *gin.Context) {
	role, err := middleware.GetRoleFromContext(c)
	if err != nil {
		responses.Unauthorized(c, err.Error())
		return
	}

	var visibleSections []string
	if raw := c.Query("sections"); raw != "" {
		visibleSections = strings.Split(raw, ",")
	}

	items := ac.gate.FilterNavItems(role, DefaultNavigation(), visibleSections)
	responses.SendSuccess(c, http.StatusOK, "Navigation retrieved successfully", items)
}

// GetRolesConfiguration godoc
// @Summary Get the resolved roles configuration
// @Description Returns the effective role-to-module mapping. Requires access to the settings module.
// @Tags Access
// @Produce json
// @Success 200 {object} responses.SuccessResponse{data=RolesConfiguration}
// @Failure 403 {object} responses.ErrorResponse "Forbidden"
// @Router /settings/roles [get]
// @Security BearerAuth
func (ac *AccessController) GetRolesConfiguration(c *gin.Context) {
	role, err := middleware.GetRoleFromContext(c)
	if err != nil {
		responses.Unauthorized(c, err.Error())
		return
	}

	if !ac.gate.HasModuleAccess(role, ModuleSettings) {
		responses.Forbidden(c, "You don't have permission to view the roles configuration", gin.H{
			"role":   role,
			"module": ModuleSettings,
		})
		return
	}

	cfg := ResolveConfiguration(nil)
	if persisted, loadErr := ac.gate.repo.LoadConfiguration(); loadErr == nil {
		cfg = ResolveConfiguration(persisted)
	}
	responses.SendSuccess(c, http.StatusOK, "Roles configuration retrieved successfully", cfg)
}

// SaveRolesConfiguration godoc
// @Summary Replace the roles configuration
// @Description Super-Admin only. Replaces the persisted role-to-module mapping wholesale.
// @Tags Access
// @Accept json
// @Produce json
// @Param configuration body SaveRolesConfigurationRequest true "Full replacement mapping"
// @Success 200 {object} responses.SuccessResponse
// @Failure 400 {object} responses.ErrorResponse "Validation error"
// @Failure 403 {object} responses.ErrorResponse "Requester is not Super-Admin"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /settings/roles [put]
// @Security BearerAuth
func (ac *AccessController) SaveRolesConfiguration(c *gin.Context) {
	role, err := middleware.GetRoleFromContext(c)
	if err != nil {
		responses.Unauthorized(c, err.Error())
		return
	}

	var req SaveRolesConfigurationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Validation failed", gin.H{"error": err.Error()})
		return
	}

	if err := ac.gate.SaveConfiguration(role, RolesConfiguration(req.Configuration)); err != nil {
		if IsPermissionDenied(err) {
			responses.Forbidden(c, "Only the Super-Admin may change the roles configuration", gin.H{
				"role":   role,
				"module": ModuleSettings,
			})
			return
		}
		responses.SendError(c, http.StatusInternalServerError, "Failed to save roles configuration", err.Error())
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Roles configuration saved successfully", nil)
}

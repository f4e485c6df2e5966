package team

import (
	"net/http"
	"strconv"

	"github.com/clubhaus-app/clubhaus/pkg/responses"
	"github.com/clubhaus-app/clubhaus/pkg/validator"
	"github.com/gin-gonic/gin"
)

// TeamController handles team-related HTTP requests
type TeamController struct {
	repo TeamRepository
}

// NewTeamController creates a new team controller
func NewTeamController(repo TeamRepository) *TeamController {
	return &TeamController{repo: repo}
}

// --- DTOs for requests ---

type CreateTeamRequest struct {
	Name     string `json:"name" binding:"required,min=3,max=100"`
	Category string `json:"category" binding:"required,max=20"`
	ClubID   uint   `json:"club_id" binding:"required"`
}

type UpdateTeamRequest struct {
	Name     *string `json:"name" binding:"omitempty,min=3,max=100"`
	Category *string `json:"category" binding:"omitempty,max=20"`
	Status   *string `json:"status" binding:"omitempty,oneof=Aktiv Archiviert"`
}

// CreateTeam godoc
// @Summary Create a new team
// @Description Creates a new team in the given club.
// @Tags Teams
// @Accept json
// @Produce json
// @Param team body CreateTeamRequest true "Team creation request"
// @Success 201 {object} responses.SuccessResponse{data=Team}
// @Failure 400 {object} responses.ErrorResponse "Validation error or bad request"
// @Failure 409 {object} responses.ErrorResponse "Team with this name already exists"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /teams [post]
// @Security BearerAuth
func (tc *TeamController) CreateTeam(c *gin.Context) {
	var req CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Validation failed", validator.ParseError(err))
		return
	}

	existing, _ := tc.repo.GetTeamByName(req.Name)
	if existing != nil {
		responses.SendError(c, http.StatusConflict, "Team with this name already exists", nil)
		return
	}

	team := Team{
		Name:     req.Name,
		Category: req.Category,
		Status:   StatusActive,
		ClubID:   req.ClubID,
	}

	if err := tc.repo.CreateTeam(&team); err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to create team", err.Error())
		return
	}

	responses.SendSuccess(c, http.StatusCreated, "Team created successfully", team)
}

// GetAllTeams godoc
// @Summary Get all teams
// @Description Get a paginated list of teams, filterable by status, category and club.
// @Tags Teams
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Number of items per page" default(10)
// @Param status query string false "Filter by status (Aktiv or Archiviert)"
// @Param category query string false "Filter by category"
// @Param club_id query int false "Filter by club"
// @Success 200 {object} responses.PaginatedResponse{data=[]Team}
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /teams [get]
// @Security BearerAuth
func (tc *TeamController) GetAllTeams(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "10"))

	filters := map[string]interface{}{}
	if status := c.Query("status"); status != "" {
		filters["status"] = status
	}
	if category := c.Query("category"); category != "" {
		filters["category"] = category
	}
	if clubID := c.Query("club_id"); clubID != "" {
		if id, err := strconv.ParseUint(clubID, 10, 32); err == nil {
			filters["club_id"] = uint(id)
		}
	}

	teams, total, err := tc.repo.GetAllTeams(page, pageSize, filters)
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to retrieve teams", err.Error())
		return
	}

	responses.SendPaginated(c, http.StatusOK, "Teams retrieved successfully", teams, total, page, pageSize)
}

// GetTeamByID godoc
// @Summary Get a team by ID
// @Description Get details of a specific team by its ID
// @Tags Teams
// @Produce json
// @Param team_id path int true "Team ID"
// @Success 200 {object} responses.SuccessResponse{data=Team}
// @Failure 404 {object} responses.ErrorResponse "Team not found"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /teams/{team_id} [get]
// @Security BearerAuth
func (tc *TeamController) GetTeamByID(c *gin.Context) {
	teamID, err := strconv.ParseUint(c.Param("team_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid team ID format", nil)
		return
	}

	team, err := tc.repo.GetTeamByID(uint(teamID))
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to retrieve team", err.Error())
		return
	}
	if team == nil {
		responses.SendError(c, http.StatusNotFound, "Team not found", nil)
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Team retrieved successfully", team)
}

// UpdateTeam godoc
// @Summary Update a team
// @Description Update an existing team's name, category or status.
// @Tags Teams
// @Accept json
// @Produce json
// @Param team_id path int true "Team ID"
// @Param team body UpdateTeamRequest true "Team update request"
// @Success 200 {object} responses.SuccessResponse{data=Team}
// @Failure 400 {object} responses.ErrorResponse "Validation error or bad request"
// @Failure 404 {object} responses.ErrorResponse "Team not found"
// @Failure 409 {object} responses.ErrorResponse "Another team with this name already exists"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /teams/{team_id} [put]
// @Security BearerAuth
func (tc *TeamController) UpdateTeam(c *gin.Context) {
	teamID, err := strconv.ParseUint(c.Param("team_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid team ID format", nil)
		return
	}

	var req UpdateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Validation failed", validator.ParseError(err))
		return
	}

	team, err := tc.repo.GetTeamByID(uint(teamID))
	if err != nil || team == nil {
		responses.SendError(c, http.StatusNotFound, "Team not found", nil)
		return
	}

	if req.Name != nil && *req.Name != team.Name {
		existing, _ := tc.repo.GetTeamByName(*req.Name)
		if existing != nil && existing.ID != team.ID {
			responses.SendError(c, http.StatusConflict, "Another team with this name already exists", nil)
			return
		}
		team.Name = *req.Name
	}
	if req.Category != nil {
		team.Category = *req.Category
	}
	if req.Status != nil {
		team.Status = *req.Status
	}

	if err := tc.repo.UpdateTeam(team); err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to update team", err.Error())
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Team updated successfully", team)
}

// DeleteTeam godoc
// @Summary Delete a team
// @Description Deletes a team. Archived teams are usually kept; deletion is for mistakes.
// @Tags Teams
// @Produce json
// @Param team_id path int true "Team ID"
// @Success 200 {object} responses.SuccessResponse "Team deleted successfully"
// @Failure 400 {object} responses.ErrorResponse "Invalid team ID"
// @Failure 404 {object} responses.ErrorResponse "Team not found"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /teams/{team_id} [delete]
// @Security BearerAuth
func (tc *TeamController) DeleteTeam(c *gin.Context) {
	teamID, err := strconv.ParseUint(c.Param("team_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid team ID format", nil)
		return
	}

	team, err := tc.repo.GetTeamByID(uint(teamID))
	if err != nil || team == nil {
		responses.SendError(c, http.StatusNotFound, "Team not found to delete", nil)
		return
	}

	if err := tc.repo.DeleteTeam(uint(teamID)); err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to delete team", err.Error())
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Team deleted successfully", nil)
}

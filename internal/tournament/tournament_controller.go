package tournament

import (
	"net/http"
	"strconv"
	"time"

	"github.com/clubhaus-app/clubhaus/internal/access"
	mw "github.com/clubhaus-app/clubhaus/internal/middleware"
	"github.com/clubhaus-app/clubhaus/internal/team"
	"github.com/clubhaus-app/clubhaus/pkg/responses"
	"github.com/clubhaus-app/clubhaus/pkg/validator"
	"github.com/gin-gonic/gin"
)

// TournamentController handles tournament-related HTTP requests
type TournamentController struct {
	repo     TournamentRepository
	teamRepo team.TeamRepository
}

// NewTournamentController creates a new tournament controller
func NewTournamentController(repo TournamentRepository, teamRepo team.TeamRepository) *TournamentController {
	return &TournamentController{repo: repo, teamRepo: teamRepo}
}

type CreateTournamentRequest struct {
	Name      string    `json:"name" binding:"required,min=2,max=150"`
	Location  string    `json:"location" binding:"omitempty,max=200"`
	StartDate time.Time `json:"start_date" binding:"required"`
	EndDate   time.Time `json:"end_date" binding:"required,gtefield=StartDate"`
	MaxTeams  int       `json:"max_teams" binding:"omitempty,min=2,max=128"`
}

type UpdateTournamentRequest struct {
	Name         *string    `json:"name" binding:"omitempty,min=2,max=150"`
	Location     *string    `json:"location" binding:"omitempty,max=200"`
	StartDate    *time.Time `json:"start_date"`
	EndDate      *time.Time `json:"end_date"`
	MaxTeams     *int       `json:"max_teams" binding:"omitempty,min=2,max=128"`
	Registration *string    `json:"registration" binding:"omitempty,oneof=offen geschlossen abgeschlossen"`
}

type CreateEntryRequest struct {
	TeamID uint `json:"team_id" binding:"required"`
}

func (tc *TournamentController) canManage(c *gin.Context, t *Tournament) bool {
	role, _ := mw.GetRoleFromContext(c)
	if role == access.RoleSuperAdmin {
		return true
	}
	userID, err := mw.GetUserIDFromContext(c)
	return err == nil && t.OrganizerID == userID
}

// CreateTournament godoc
// @Summary Create a new tournament
// @Tags Tournaments
// @Accept json
// @Produce json
// @Param tournament body CreateTournamentRequest true "Tournament creation request"
// @Success 201 {object} responses.SuccessResponse{data=Tournament}
// @Failure 400 {object} responses.ErrorResponse "Validation error"
// @Failure 409 {object} responses.ErrorResponse "Tournament with this name already exists"
// @Router /tournaments [post]
// @Security BearerAuth
func (tc *TournamentController) CreateTournament(c *gin.Context) {
	var req CreateTournamentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Validation failed", validator.ParseError(err))
		return
	}

	existing, _ := tc.repo.GetTournamentByName(req.Name)
	if existing != nil {
		responses.SendError(c, http.StatusConflict, "Tournament with this name already exists", nil)
		return
	}

	userID, _ := mw.GetUserIDFromContext(c)

	tournament := Tournament{
		Name:         req.Name,
		Location:     req.Location,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		MaxTeams:     req.MaxTeams,
		Registration: RegistrationOpen,
		OrganizerID:  userID,
	}
	if tournament.MaxTeams == 0 {
		tournament.MaxTeams = 16
	}

	if err := tc.repo.CreateTournament(&tournament); err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to create tournament", err.Error())
		return
	}

	responses.SendSuccess(c, http.StatusCreated, "Tournament created successfully", tournament)
}

// GetAllTournaments godoc
// @Summary Get all tournaments
// @Tags Tournaments
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Number of items per page" default(10)
// @Param registration query string false "Filter by registration status"
// @Success 200 {object} responses.PaginatedResponse{data=[]Tournament}
// @Router /tournaments [get]
// @Security BearerAuth
func (tc *TournamentController) GetAllTournaments(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "10"))

	filters := map[string]interface{}{}
	if registration := c.Query("registration"); registration != "" {
		filters["registration"] = registration
	}
	if organizerID := c.Query("organizer_id"); organizerID != "" {
		if id, err := strconv.ParseUint(organizerID, 10, 32); err == nil {
			filters["organizer_id"] = uint(id)
		}
	}

	tournaments, total, err := tc.repo.GetAllTournaments(page, pageSize, filters)
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to retrieve tournaments", err.Error())
		return
	}

	responses.SendPaginated(c, http.StatusOK, "Tournaments retrieved successfully", tournaments, total, page, pageSize)
}

// GetTournamentByID godoc
// @Summary Get a tournament by ID
// @Tags Tournaments
// @Produce json
// @Param tournament_id path int true "Tournament ID"
// @Success 200 {object} responses.SuccessResponse{data=Tournament}
// @Failure 404 {object} responses.ErrorResponse "Tournament not found"
// @Router /tournaments/{tournament_id} [get]
// @Security BearerAuth
func (tc *TournamentController) GetTournamentByID(c *gin.Context) {
	tournamentID, err := strconv.ParseUint(c.Param("tournament_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid tournament ID format", nil)
		return
	}

	tournament, err := tc.repo.GetTournamentByID(uint(tournamentID))
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to retrieve tournament", err.Error())
		return
	}
	if tournament == nil {
		responses.SendError(c, http.StatusNotFound, "Tournament not found", nil)
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Tournament retrieved successfully", tournament)
}

// UpdateTournament godoc
// @Summary Update a tournament
// @Tags Tournaments
// @Accept json
// @Produce json
// @Param tournament_id path int true "Tournament ID"
// @Param tournament body UpdateTournamentRequest true "Tournament update request"
// @Success 200 {object} responses.SuccessResponse{data=Tournament}
// @Failure 403 {object} responses.ErrorResponse "Not the organizer of this tournament"
// @Failure 404 {object} responses.ErrorResponse "Tournament not found"
// @Router /tournaments/{tournament_id} [put]
// @Security BearerAuth
func (tc *TournamentController) UpdateTournament(c *gin.Context) {
	tournamentID, err := strconv.ParseUint(c.Param("tournament_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid tournament ID format", nil)
		return
	}

	var req UpdateTournamentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Validation failed", validator.ParseError(err))
		return
	}

	tournament, err := tc.repo.GetTournamentByID(uint(tournamentID))
	if err != nil || tournament == nil {
		responses.SendError(c, http.StatusNotFound, "Tournament not found", nil)
		return
	}

	if !tc.canManage(c, tournament) {
		responses.SendError(c, http.StatusForbidden, "Not the organizer of this tournament", nil)
		return
	}

	if req.Name != nil && *req.Name != tournament.Name {
		existing, _ := tc.repo.GetTournamentByName(*req.Name)
		if existing != nil && existing.ID != tournament.ID {
			responses.SendError(c, http.StatusConflict, "Another tournament with this name already exists", nil)
			return
		}
		tournament.Name = *req.Name
	}
	if req.Location != nil {
		tournament.Location = *req.Location
	}
	if req.StartDate != nil {
		tournament.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		tournament.EndDate = *req.EndDate
	}
	if tournament.EndDate.Before(tournament.StartDate) {
		responses.SendError(c, http.StatusBadRequest, "End date must not be before start date", nil)
		return
	}
	if req.MaxTeams != nil {
		tournament.MaxTeams = *req.MaxTeams
	}
	if req.Registration != nil {
		tournament.Registration = *req.Registration
	}

	if err := tc.repo.UpdateTournament(tournament); err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to update tournament", err.Error())
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Tournament updated successfully", tournament)
}

// DeleteTournament godoc
// @Summary Delete a tournament
// @Tags Tournaments
// @Produce json
// @Param tournament_id path int true "Tournament ID"
// @Success 200 {object} responses.SuccessResponse "Tournament deleted successfully"
// @Failure 403 {object} responses.ErrorResponse "Not the organizer of this tournament"
// @Failure 404 {object} responses.ErrorResponse "Tournament not found"
// @Router /tournaments/{tournament_id} [delete]
// @Security BearerAuth
func (tc *TournamentController) DeleteTournament(c *gin.Context) {
	tournamentID, err := strconv.ParseUint(c.Param("tournament_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid tournament ID format", nil)
		return
	}

	tournament, err := tc.repo.GetTournamentByID(uint(tournamentID))
	if err != nil || tournament == nil {
		responses.SendError(c, http.StatusNotFound, "Tournament not found to delete", nil)
		return
	}

	if !tc.canManage(c, tournament) {
		responses.SendError(c, http.StatusForbidden, "Not the organizer of this tournament", nil)
		return
	}

	if err := tc.repo.DeleteTournament(uint(tournamentID)); err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to delete tournament", err.Error())
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Tournament deleted successfully", nil)
}

// RegisterTeam godoc
// @Summary Register a team for a tournament
// @Tags Tournaments
// @Accept json
// @Produce json
// @Param tournament_id path int true "Tournament ID"
// @Param entry body CreateEntryRequest true "Entry request"
// @Success 201 {object} responses.SuccessResponse{data=TournamentEntry}
// @Failure 404 {object} responses.ErrorResponse "Tournament or team not found"
// @Failure 409 {object} responses.ErrorResponse "Registration closed, full or duplicate"
// @Router /tournaments/{tournament_id}/entries [post]
// @Security BearerAuth
func (tc *TournamentController) RegisterTeam(c *gin.Context) {
	tournamentID, err := strconv.ParseUint(c.Param("tournament_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid tournament ID format", nil)
		return
	}

	var req CreateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Validation failed", validator.ParseError(err))
		return
	}

	tournament, err := tc.repo.GetTournamentByID(uint(tournamentID))
	if err != nil || tournament == nil {
		responses.SendError(c, http.StatusNotFound, "Tournament not found", nil)
		return
	}

	if tournament.Registration != RegistrationOpen {
		responses.SendError(c, http.StatusConflict, "Registration for this tournament is closed", nil)
		return
	}

	registeredTeam, err := tc.teamRepo.GetTeamByID(req.TeamID)
	if err != nil || registeredTeam == nil {
		responses.SendError(c, http.StatusNotFound, "Team not found", nil)
		return
	}
	if registeredTeam.Status != team.StatusActive {
		responses.SendError(c, http.StatusConflict, "Archived teams cannot be registered", nil)
		return
	}

	duplicate, _ := tc.repo.GetEntryByTeam(tournament.ID, registeredTeam.ID)
	if duplicate != nil {
		responses.SendError(c, http.StatusConflict, "Team is already registered for this tournament", nil)
		return
	}

	count, err := tc.repo.CountEntries(tournament.ID)
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to check tournament capacity", err.Error())
		return
	}
	if count >= int64(tournament.MaxTeams) {
		responses.SendError(c, http.StatusConflict, "Tournament has reached its team limit", nil)
		return
	}

	entry := TournamentEntry{
		TournamentID: tournament.ID,
		TeamID:       registeredTeam.ID,
		TeamName:     registeredTeam.Name,
		ClubID:       registeredTeam.ClubID,
	}
	if err := tc.repo.CreateEntry(&entry); err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to register team", err.Error())
		return
	}

	responses.SendSuccess(c, http.StatusCreated, "Team registered successfully", entry)
}

// GetEntries godoc
// @Summary Get all entries of a tournament
// @Tags Tournaments
// @Produce json
// @Param tournament_id path int true "Tournament ID"
// @Success 200 {object} responses.SuccessResponse{data=[]TournamentEntry}
// @Failure 404 {object} responses.ErrorResponse "Tournament not found"
// @Router /tournaments/{tournament_id}/entries [get]
// @Security BearerAuth
func (tc *TournamentController) GetEntries(c *gin.Context) {
	tournamentID, err := strconv.ParseUint(c.Param("tournament_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid tournament ID format", nil)
		return
	}

	tournament, err := tc.repo.GetTournamentByID(uint(tournamentID))
	if err != nil || tournament == nil {
		responses.SendError(c, http.StatusNotFound, "Tournament not found", nil)
		return
	}

	entries, err := tc.repo.GetEntries(tournament.ID)
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to retrieve entries", err.Error())
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Entries retrieved successfully", entries)
}

// WithdrawEntry godoc
// @Summary Withdraw a team entry from a tournament
// @Tags Tournaments
// @Produce json
// @Param tournament_id path int true "Tournament ID"
// @Param entry_id path int true "Entry ID"
// @Success 200 {object} responses.SuccessResponse "Entry withdrawn successfully"
// @Failure 404 {object} responses.ErrorResponse "Tournament or entry not found"
// @Router /tournaments/{tournament_id}/entries/{entry_id} [delete]
// @Security BearerAuth
func (tc *TournamentController) WithdrawEntry(c *gin.Context) {
	tournamentID, err := strconv.ParseUint(c.Param("tournament_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid tournament ID format", nil)
		return
	}
	entryID, err := strconv.ParseUint(c.Param("entry_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid entry ID format", nil)
		return
	}

	tournament, err := tc.repo.GetTournamentByID(uint(tournamentID))
	if err != nil || tournament == nil {
		responses.SendError(c, http.StatusNotFound, "Tournament not found", nil)
		return
	}

	if err := tc.repo.DeleteEntry(uint(entryID)); err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to withdraw entry", err.Error())
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Entry withdrawn successfully", nil)
}

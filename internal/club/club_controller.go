package club

import (
	"net/http"
	"strconv"

	"github.com/clubhaus-app/clubhaus/internal/models"
	"github.com/clubhaus-app/clubhaus/pkg/responses"
	"github.com/clubhaus-app/clubhaus/pkg/validator"
	"github.com/gin-gonic/gin"
)

// ClubController handles club-related HTTP requests
type ClubController struct {
	repo ClubRepository
}

// NewClubController creates a new club controller
func NewClubController(repo ClubRepository) *ClubController {
	return &ClubController{repo: repo}
}

type CreateClubRequest struct {
	Name    string                 `json:"name" binding:"required,min=3,max=150"`
	City    string                 `json:"city" binding:"omitempty,max=100"`
	Season  string                 `json:"season" binding:"omitempty,max=20"`
	Contact *models.ContactDetails `json:"contact"`
}

type UpdateClubRequest struct {
	Name    *string                `json:"name" binding:"omitempty,min=3,max=150"`
	City    *string                `json:"city" binding:"omitempty,max=100"`
	Season  *string                `json:"season" binding:"omitempty,max=20"`
	Contact *models.ContactDetails `json:"contact"`
}

// CreateClub godoc
// @Summary Create a new club
// @Description Creates a new club tenant.
// @Tags Clubs
// @Accept json
// @Produce json
// @Param club body CreateClubRequest true "Club creation request"
// @Success 201 {object} responses.SuccessResponse{data=Club}
// @Failure 400 {object} responses.ErrorResponse "Validation error"
// @Failure 409 {object} responses.ErrorResponse "Club with this name already exists"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /clubs [post]
// @Security BearerAuth
func (cc *ClubController) CreateClub(c *gin.Context) {
	var req CreateClubRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Validation failed", validator.ParseError(err))
		return
	}

	existing, _ := cc.repo.GetClubByName(req.Name)
	if existing != nil {
		responses.SendError(c, http.StatusConflict, "Club with this name already exists", nil)
		return
	}

	club := Club{
		Name:   req.Name,
		City:   req.City,
		Season: req.Season,
	}
	if req.Contact != nil {
		club.Contact = *req.Contact
	}

	if err := cc.repo.CreateClub(&club); err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to create club", err.Error())
		return
	}

	responses.SendSuccess(c, http.StatusCreated, "Club created successfully", club)
}

// GetAllClubs godoc
// @Summary Get all clubs
// @Tags Clubs
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Number of items per page" default(10)
// @Success 200 {object} responses.PaginatedResponse{data=[]Club}
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /clubs [get]
// @Security BearerAuth
func (cc *ClubController) GetAllClubs(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "10"))

	clubs, total, err := cc.repo.GetAllClubs(page, pageSize)
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to retrieve clubs", err.Error())
		return
	}

	responses.SendPaginated(c, http.StatusOK, "Clubs retrieved successfully", clubs, total, page, pageSize)
}

// GetClubByID godoc
// @Summary Get a club by ID
// @Tags Clubs
// @Produce json
// @Param club_id path int true "Club ID"
// @Success 200 {object} responses.SuccessResponse{data=Club}
// @Failure 404 {object} responses.ErrorResponse "Club not found"
// @Router /clubs/{club_id} [get]
// @Security BearerAuth
func (cc *ClubController) GetClubByID(c *gin.Context) {
	clubID, err := strconv.ParseUint(c.Param("club_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid club ID format", nil)
		return
	}

	club, err := cc.repo.GetClubByID(uint(clubID))
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to retrieve club", err.Error())
		return
	}
	if club == nil {
		responses.SendError(c, http.StatusNotFound, "Club not found", nil)
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Club retrieved successfully", club)
}

// UpdateClub godoc
// @Summary Update a club
// @Tags Clubs
// @Accept json
// @Produce json
// @Param club_id path int true "Club ID"
// @Param club body UpdateClubRequest true "Club update request"
// @Success 200 {object} responses.SuccessResponse{data=Club}
// @Failure 404 {object} responses.ErrorResponse "Club not found"
// @Failure 409 {object} responses.ErrorResponse "Another club with this name already exists"
// @Router /clubs/{club_id} [put]
// @Security BearerAuth
func (cc *ClubController) UpdateClub(c *gin.Context) {
	clubID, err := strconv.ParseUint(c.Param("club_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid club ID format", nil)
		return
	}

	var req UpdateClubRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Validation failed", validator.ParseError(err))
		return
	}

	club, err := cc.repo.GetClubByID(uint(clubID))
	if err != nil || club == nil {
		responses.SendError(c, http.StatusNotFound, "Club not found", nil)
		return
	}

	if req.Name != nil && *req.Name != club.Name {
		existing, _ := cc.repo.GetClubByName(*req.Name)
		if existing != nil && existing.ID != club.ID {
			responses.SendError(c, http.StatusConflict, "Another club with this name already exists", nil)
			return
		}
		club.Name = *req.Name
	}
	if req.City != nil {
		club.City = *req.City
	}
	if req.Season != nil {
		club.Season = *req.Season
	}
	if req.Contact != nil {
		club.Contact = *req.Contact
	}

	if err := cc.repo.UpdateClub(club); err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to update club", err.Error())
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Club updated successfully", club)
}

// DeleteClub godoc
// @Summary Delete a club
// @Tags Clubs
// @Produce json
// @Param club_id path int true "Club ID"
// @Success 200 {object} responses.SuccessResponse "Club deleted successfully"
// @Failure 404 {object} responses.ErrorResponse "Club not found"
// @Router /clubs/{club_id} [delete]
// @Security BearerAuth
func (cc *ClubController) DeleteClub(c *gin.Context) {
	clubID, err := strconv.ParseUint(c.Param("club_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid club ID format", nil)
		return
	}

	club, err := cc.repo.GetClubByID(uint(clubID))
	if err != nil || club == nil {
		responses.SendError(c, http.StatusNotFound, "Club not found to delete", nil)
		return
	}

	if err := cc.repo.DeleteClub(uint(clubID)); err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to delete club", err.Error())
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Club deleted successfully", nil)
}

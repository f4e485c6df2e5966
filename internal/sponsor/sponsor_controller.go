package sponsor

import (
	"net/http"
	"strconv"

	"github.com/clubhaus-app/clubhaus/internal/models"
	"github.com/clubhaus-app/clubhaus/pkg/responses"
	"github.com/clubhaus-app/clubhaus/pkg/validator"
	"github.com/gin-gonic/gin"
)

// SponsorController handles sponsor-related HTTP requests
type SponsorController struct {
	repo SponsorRepository
}

// NewSponsorController creates a new sponsor controller
func NewSponsorController(repo SponsorRepository) *SponsorController {
	return &SponsorController{repo: repo}
}

type CreateSponsorRequest struct {
	Name    string                 `json:"name" binding:"required,min=2,max=150"`
	Tier    string                 `json:"tier" binding:"omitempty,oneof=gold silber bronze"`
	ClubID  uint                   `json:"club_id" binding:"required"`
	Contact *models.ContactDetails `json:"contact"`
}

type UpdateSponsorRequest struct {
	Name    *string                `json:"name" binding:"omitempty,min=2,max=150"`
	Tier    *string                `json:"tier" binding:"omitempty,oneof=gold silber bronze"`
	Contact *models.ContactDetails `json:"contact"`
	Active  *bool                  `json:"active"`
}

// CreateSponsor godoc
// @Summary Create a new sponsor
// @Tags Sponsors
// @Accept json
// @Produce json
// @Param sponsor body CreateSponsorRequest true "Sponsor creation request"
// @Success 201 {object} responses.SuccessResponse{data=Sponsor}
// @Failure 400 {object} responses.ErrorResponse "Validation error"
// @Failure 409 {object} responses.ErrorResponse "Sponsor with this name already exists"
// @Router /sponsors [post]
// @Security BearerAuth
func (sc *SponsorController) CreateSponsor(c *gin.Context) {
	var req CreateSponsorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Validation failed", validator.ParseError(err))
		return
	}

	existing, _ := sc.repo.GetSponsorByName(req.Name)
	if existing != nil {
		responses.SendError(c, http.StatusConflict, "Sponsor with this name already exists", nil)
		return
	}

	sponsor := Sponsor{
		Name:   req.Name,
		Tier:   req.Tier,
		ClubID: req.ClubID,
		Active: true,
	}
	if sponsor.Tier == "" {
		sponsor.Tier = TierBronze
	}
	if req.Contact != nil {
		sponsor.Contact = *req.Contact
	}

	if err := sc.repo.CreateSponsor(&sponsor); err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to create sponsor", err.Error())
		return
	}

	responses.SendSuccess(c, http.StatusCreated, "Sponsor created successfully", sponsor)
}

// GetAllSponsors godoc
// @Summary Get all sponsors
// @Tags Sponsors
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Number of items per page" default(10)
// @Param tier query string false "Filter by tier"
// @Param club_id query int false "Filter by club"
// @Param active query boolean false "Filter by active status"
// @Success 200 {object} responses.PaginatedResponse{data=[]Sponsor}
// @Router /sponsors [get]
// @Security BearerAuth
func (sc *SponsorController) GetAllSponsors(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "10"))

	filters := map[string]interface{}{}
	if tier := c.Query("tier"); tier != "" {
		filters["tier"] = tier
	}
	if clubID := c.Query("club_id"); clubID != "" {
		if id, err := strconv.ParseUint(clubID, 10, 32); err == nil {
			filters["club_id"] = uint(id)
		}
	}
	if active := c.Query("active"); active != "" {
		if val, err := strconv.ParseBool(active); err == nil {
			filters["active"] = val
		}
	}

	sponsors, total, err := sc.repo.GetAllSponsors(page, pageSize, filters)
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to retrieve sponsors", err.Error())
		return
	}

	responses.SendPaginated(c, http.StatusOK, "Sponsors retrieved successfully", sponsors, total, page, pageSize)
}

// GetSponsorByID godoc
// @Summary Get a sponsor by ID
// @Tags Sponsors
// @Produce json
// @Param sponsor_id path int true "Sponsor ID"
// @Success 200 {object} responses.SuccessResponse{data=Sponsor}
// @Failure 404 {object} responses.ErrorResponse "Sponsor not found"
// @Router /sponsors/{sponsor_id} [get]
// @Security BearerAuth
func (sc *SponsorController) GetSponsorByID(c *gin.Context) {
	sponsorID, err := strconv.ParseUint(c.Param("sponsor_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid sponsor ID format", nil)
		return
	}

	sponsor, err := sc.repo.GetSponsorByID(uint(sponsorID))
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to retrieve sponsor", err.Error())
		return
	}
	if sponsor == nil {
		responses.SendError(c, http.StatusNotFound, "Sponsor not found", nil)
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Sponsor retrieved successfully", sponsor)
}

// UpdateSponsor godoc
// @Summary Update a sponsor
// @Tags Sponsors
// @Accept json
// @Produce json
// @Param sponsor_id path int true "Sponsor ID"
// @Param sponsor body UpdateSponsorRequest true "Sponsor update request"
// @Success 200 {object} responses.SuccessResponse{data=Sponsor}
// @Failure 404 {object} responses.ErrorResponse "Sponsor not found"
// @Failure 409 {object} responses.ErrorResponse "Another sponsor with this name already exists"
// @Router /sponsors/{sponsor_id} [put]
// @Security BearerAuth
func (sc *SponsorController) UpdateSponsor(c *gin.Context) {
	sponsorID, err := strconv.ParseUint(c.Param("sponsor_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid sponsor ID format", nil)
		return
	}

	var req UpdateSponsorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Validation failed", validator.ParseError(err))
		return
	}

	sponsor, err := sc.repo.GetSponsorByID(uint(sponsorID))
	if err != nil || sponsor == nil {
		responses.SendError(c, http.StatusNotFound, "Sponsor not found", nil)
		return
	}

	if req.Name != nil && *req.Name != sponsor.Name {
		existing, _ := sc.repo.GetSponsorByName(*req.Name)
		if existing != nil && existing.ID != sponsor.ID {
			responses.SendError(c, http.StatusConflict, "Another sponsor with this name already exists", nil)
			return
		}
		sponsor.Name = *req.Name
	}
	if req.Tier != nil {
		sponsor.Tier = *req.Tier
	}
	if req.Contact != nil {
		sponsor.Contact = *req.Contact
	}
	if req.Active != nil {
		sponsor.Active = *req.Active
	}

	if err := sc.repo.UpdateSponsor(sponsor); err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to update sponsor", err.Error())
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Sponsor updated successfully", sponsor)
}

// DeleteSponsor godoc
// @Summary Delete a sponsor
// @Tags Sponsors
// @Produce json
// @Param sponsor_id path int true "Sponsor ID"
// @Success 200 {object} responses.SuccessResponse "Sponsor deleted successfully"
// @Failure 404 {object} responses.ErrorResponse "Sponsor not found"
// @Router /sponsors/{sponsor_id} [delete]
// @Security BearerAuth
func (sc *SponsorController) DeleteSponsor(c *gin.Context) {
	sponsorID, err := strconv.ParseUint(c.Param("sponsor_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid sponsor ID format", nil)
		return
	}

	sponsor, err := sc.repo.GetSponsorByID(uint(sponsorID))
	if err != nil || sponsor == nil {
		responses.SendError(c, http.StatusNotFound, "Sponsor not found to delete", nil)
		return
	}

	if err := sc.repo.DeleteSponsor(uint(sponsorID)); err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to delete sponsor", err.Error())
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Sponsor deleted successfully", nil)
}

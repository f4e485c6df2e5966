package member

import (
	"net/http"
	"strconv"
	"time"

	"github.com/clubhaus-app/clubhaus/internal/models"
	"github.com/clubhaus-app/clubhaus/pkg/responses"
	"github.com/clubhaus-app/clubhaus/pkg/validator"
	"github.com/gin-gonic/gin"
)

// MemberController handles member-related HTTP requests
type MemberController struct {
	repo MemberRepository
}

// NewMemberController creates a new member controller
func NewMemberController(repo MemberRepository) *MemberController {
	return &MemberController{repo: repo}
}

// --- DTOs for requests ---

type CreateMemberRequest struct {
	FirstName string     `json:"first_name" binding:"required,max=100"`
	LastName  string     `json:"last_name" binding:"required,max=100"`
	Email     string     `json:"email" binding:"required,email"`
	Phone     string     `json:"phone" binding:"omitempty,max=30"`
	Birthdate *time.Time `json:"birthdate"`
	ClubID    uint       `json:"club_id" binding:"required"`
	Teams     []string   `json:"teams"`
}

type UpdateMemberRequest struct {
	FirstName *string    `json:"first_name" binding:"omitempty,max=100"`
	LastName  *string    `json:"last_name" binding:"omitempty,max=100"`
	Email     *string    `json:"email" binding:"omitempty,email"`
	Phone     *string    `json:"phone" binding:"omitempty,max=30"`
	Birthdate *time.Time `json:"birthdate"`
	Teams     *[]string  `json:"teams"`
}

// CreateMember godoc
// @Summary Create a new member
// @Description Creates a new club member. The legacy single-team field is derived from the team list.
// @Tags Members
// @Accept json
// @Produce json
// @Param member body CreateMemberRequest true "Member creation request"
// @Success 201 {object} responses.SuccessResponse{data=Member}
// @Failure 400 {object} responses.ErrorResponse "Validation error or bad request"
// @Failure 409 {object} responses.ErrorResponse "Member with this email already exists"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /members [post]
// @Security BearerAuth
func (mc *MemberController) CreateMember(c *gin.Context) {
	var req CreateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Validation failed", validator.ParseError(err))
		return
	}

	existing, _ := mc.repo.GetMemberByEmail(req.Email)
	if existing != nil {
		responses.SendError(c, http.StatusConflict, "Member with this email already exists", nil)
		return
	}

	member := Member{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Birthdate: req.Birthdate,
		ClubID:    req.ClubID,
		Teams:     models.StringSlice(req.Teams),
	}

	if err := mc.repo.CreateMember(&member); err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to create member", err.Error())
		return
	}

	responses.SendSuccess(c, http.StatusCreated, "Member created successfully", member)
}

// GetAllMembers godoc
// @Summary Get all members
// @Description Get a paginated list of members, filterable by club and (legacy) primary team.
// @Tags Members
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Number of items per page" default(10)
// @Param club_id query int false "Filter by club"
// @Param team query string false "Filter by legacy primary team name"
// @Success 200 {object} responses.PaginatedResponse{data=[]Member}
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /members [get]
// @Security BearerAuth
func (mc *MemberController) GetAllMembers(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "10"))

	filters := map[string]interface{}{}
	if clubID := c.Query("club_id"); clubID != "" {
		if id, err := strconv.ParseUint(clubID, 10, 32); err == nil {
			filters["club_id"] = uint(id)
		}
	}
	if teamName := c.Query("team"); teamName != "" {
		filters["team"] = teamName
	}

	members, total, err := mc.repo.GetAllMembers(page, pageSize, filters)
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to retrieve members", err.Error())
		return
	}

	responses.SendPaginated(c, http.StatusOK, "Members retrieved successfully", members, total, page, pageSize)
}

// GetMemberByID godoc
// @Summary Get a member by ID
// @Description Get details of a specific member by their ID
// @Tags Members
// @Produce json
// @Param member_id path int true "Member ID"
// @Success 200 {object} responses.SuccessResponse{data=Member}
// @Failure 404 {object} responses.ErrorResponse "Member not found"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /members/{member_id} [get]
// @Security BearerAuth
func (mc *MemberController) GetMemberByID(c *gin.Context) {
	memberID, err := strconv.ParseUint(c.Param("member_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid member ID format", nil)
		return
	}

	member, err := mc.repo.GetMemberByID(uint(memberID))
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to retrieve member", err.Error())
		return
	}
	if member == nil {
		responses.SendError(c, http.StatusNotFound, "Member not found", nil)
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Member retrieved successfully", member)
}

// UpdateMember godoc
// @Summary Update a member
// @Description Update an existing member. Replacing the team list also resets the legacy single-team field.
// @Tags Members
// @Accept json
// @Produce json
// @Param member_id path int true "Member ID"
// @Param member body UpdateMemberRequest true "Member update request"
// @Success 200 {object} responses.SuccessResponse{data=Member}
// @Failure 400 {object} responses.ErrorResponse "Validation error or bad request"
// @Failure 404 {object} responses.ErrorResponse "Member not found"
// @Failure 409 {object} responses.ErrorResponse "Another member with this email already exists"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /members/{member_id} [put]
// @Security BearerAuth
func (mc *MemberController) UpdateMember(c *gin.Context) {
	memberID, err := strconv.ParseUint(c.Param("member_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid member ID format", nil)
		return
	}

	var req UpdateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Validation failed", validator.ParseError(err))
		return
	}

	member, err := mc.repo.GetMemberByID(uint(memberID))
	if err != nil || member == nil {
		responses.SendError(c, http.StatusNotFound, "Member not found", nil)
		return
	}

	if req.Email != nil && *req.Email != member.Email {
		existing, _ := mc.repo.GetMemberByEmail(*req.Email)
		if existing != nil && existing.ID != member.ID {
			responses.SendError(c, http.StatusConflict, "Another member with this email already exists", nil)
			return
		}
		member.Email = *req.Email
	}
	if req.FirstName != nil {
		member.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		member.LastName = *req.LastName
	}
	if req.Phone != nil {
		member.Phone = *req.Phone
	}
	if req.Birthdate != nil {
		member.Birthdate = req.Birthdate
	}
	if req.Teams != nil {
		member.Teams = models.StringSlice(*req.Teams)
	}

	if err := mc.repo.UpdateMember(member); err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to update member", err.Error())
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Member updated successfully", member)
}

// DeleteMember godoc
// @Summary Delete a member
// @Description Deletes a member record.
// @Tags Members
// @Produce json
// @Param member_id path int true "Member ID"
// @Success 200 {object} responses.SuccessResponse "Member deleted successfully"
// @Failure 400 {object} responses.ErrorResponse "Invalid member ID"
// @Failure 404 {object} responses.ErrorResponse "Member not found"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /members/{member_id} [delete]
// @Security BearerAuth
func (mc *MemberController) DeleteMember(c *gin.Context) {
	memberID, err := strconv.ParseUint(c.Param("member_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid member ID format", nil)
		return
	}

	member, err := mc.repo.GetMemberByID(uint(memberID))
	if err != nil || member == nil {
		responses.SendError(c, http.StatusNotFound, "Member not found to delete", nil)
		return
	}

	if err := mc.repo.DeleteMember(uint(memberID)); err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to delete member", err.Error())
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Member deleted successfully", nil)
}

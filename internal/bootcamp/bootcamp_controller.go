package bootcamp

import (
	"net/http"
	"strconv"
	"time"

	"github.com/clubhaus-app/clubhaus/internal/access"
	"github.com/clubhaus-app/clubhaus/internal/middleware"
	"github.com/clubhaus-app/clubhaus/pkg/responses"
	"github.com/clubhaus-app/clubhaus/pkg/validator"
	"github.com/gin-gonic/gin"
)

// BootcampController handles bootcamp-related HTTP requests
type BootcampController struct {
	repo BootcampRepository
}

// NewBootcampController creates a new bootcamp controller
func NewBootcampController(repo BootcampRepository) *BootcampController {
	return &BootcampController{repo: repo}
}

type CreateBootcampRequest struct {
	Name         string    `json:"name" binding:"required,min=3,max=150"`
	Location     string    `json:"location" binding:"required,max=150"`
	Description  string    `json:"description" binding:"omitempty,max=5000"`
	StartDate    time.Time `json:"start_date" binding:"required"`
	EndDate      time.Time `json:"end_date" binding:"required,gtfield=StartDate"`
	Capacity     int       `json:"capacity" binding:"gte=0"`
	PricePerHead float64   `json:"price_per_head" binding:"gte=0"`
}

type UpdateBootcampRequest struct {
	Name         *string    `json:"name" binding:"omitempty,min=3,max=150"`
	Location     *string    `json:"location" binding:"omitempty,max=150"`
	Description  *string    `json:"description" binding:"omitempty,max=5000"`
	StartDate    *time.Time `json:"start_date"`
	EndDate      *time.Time `json:"end_date"`
	Capacity     *int       `json:"capacity" binding:"omitempty,gte=0"`
	PricePerHead *float64   `json:"price_per_head" binding:"omitempty,gte=0"`
}

type CreateBookingRequest struct {
	ClubID       uint   `json:"club_id" binding:"required"`
	Participants int    `json:"participants" binding:"required,gte=1"`
	Notes        string `json:"notes" binding:"omitempty,max=1000"`
}

// canManage reports whether the caller may edit the offering: the owning
// provider or the Super-Admin.
func canManage(c *gin.Context, bootcamp *Bootcamp) bool {
	role, _ := middleware.GetRoleFromContext(c)
	if role == access.RoleSuperAdmin {
		return true
	}
	userID, err := middleware.GetUserIDFromContext(c)
	return err == nil && bootcamp.ProviderID == userID
}

// CreateBootcamp godoc
// @Summary Create a bootcamp offering
// @Description Publishes a new training-camp offering owned by the authenticated provider.
// @Tags Bootcamps
// @Accept json
// @Produce json
// @Param bootcamp body CreateBootcampRequest true "Bootcamp creation request"
// @Success 201 {object} responses.SuccessResponse{data=Bootcamp}
// @Failure 400 {object} responses.ErrorResponse "Validation error"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /bootcamps [post]
// @Security BearerAuth
func (bc *BootcampController) CreateBootcamp(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, err.Error())
		return
	}

	var req CreateBootcampRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Validation failed", validator.ParseError(err))
		return
	}

	bootcamp := Bootcamp{
		Name:         req.Name,
		Location:     req.Location,
		Description:  req.Description,
		ProviderID:   userID,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		Capacity:     req.Capacity,
		PricePerHead: req.PricePerHead,
	}

	if err := bc.repo.CreateBootcamp(&bootcamp); err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to create bootcamp", err.Error())
		return
	}

	responses.SendSuccess(c, http.StatusCreated, "Bootcamp created successfully", bootcamp)
}

// GetAllBootcamps godoc
// @Summary Get all bootcamp offerings
// @Tags Bootcamps
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Number of items per page" default(10)
// @Param mine query boolean false "Only offerings owned by the caller"
// @Success 200 {object} responses.PaginatedResponse{data=[]Bootcamp}
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /bootcamps [get]
// @Security BearerAuth
func (bc *BootcampController) GetAllBootcamps(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "10"))

	var providerID *uint
	if mine, _ := strconv.ParseBool(c.DefaultQuery("mine", "false")); mine {
		userID, err := middleware.GetUserIDFromContext(c)
		if err != nil {
			responses.Unauthorized(c, err.Error())
			return
		}
		providerID = &userID
	}

	bootcamps, total, err := bc.repo.GetAllBootcamps(page, pageSize, providerID)
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to retrieve bootcamps", err.Error())
		return
	}

	responses.SendPaginated(c, http.StatusOK, "Bootcamps retrieved successfully", bootcamps, total, page, pageSize)
}

// GetBootcampByID godoc
// @Summary Get a bootcamp by ID
// @Tags Bootcamps
// @Produce json
// @Param bootcamp_id path int true "Bootcamp ID"
// @Success 200 {object} responses.SuccessResponse{data=Bootcamp}
// @Failure 404 {object} responses.ErrorResponse "Bootcamp not found"
// @Router /bootcamps/{bootcamp_id} [get]
// @Security BearerAuth
func (bc *BootcampController) GetBootcampByID(c *gin.Context) {
	bootcampID, err := strconv.ParseUint(c.Param("bootcamp_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid bootcamp ID format", nil)
		return
	}

	bootcamp, err := bc.repo.GetBootcampByID(uint(bootcampID))
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to retrieve bootcamp", err.Error())
		return
	}
	if bootcamp == nil {
		responses.SendError(c, http.StatusNotFound, "Bootcamp not found", nil)
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Bootcamp retrieved successfully", bootcamp)
}

// UpdateBootcamp godoc
// @Summary Update a bootcamp offering
// @Description Only the owning provider or the Super-Admin may update an offering.
// @Tags Bootcamps
// @Accept json
// @Produce json
// @Param bootcamp_id path int true "Bootcamp ID"
// @Param bootcamp body UpdateBootcampRequest true "Bootcamp update request"
// @Success 200 {object} responses.SuccessResponse{data=Bootcamp}
// @Failure 403 {object} responses.ErrorResponse "Not the owner"
// @Failure 404 {object} responses.ErrorResponse "Bootcamp not found"
// @Router /bootcamps/{bootcamp_id} [put]
// @Security BearerAuth
func (bc *BootcampController) UpdateBootcamp(c *gin.Context) {
	bootcampID, err := strconv.ParseUint(c.Param("bootcamp_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid bootcamp ID format", nil)
		return
	}

	var req UpdateBootcampRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Validation failed", validator.ParseError(err))
		return
	}

	bootcamp, err := bc.repo.GetBootcampByID(uint(bootcampID))
	if err != nil || bootcamp == nil {
		responses.SendError(c, http.StatusNotFound, "Bootcamp not found", nil)
		return
	}

	if !canManage(c, bootcamp) {
		responses.Forbidden(c, "Only the owning provider may update this offering", nil)
		return
	}

	if req.Name != nil {
		bootcamp.Name = *req.Name
	}
	if req.Location != nil {
		bootcamp.Location = *req.Location
	}
	if req.Description != nil {
		bootcamp.Description = *req.Description
	}
	if req.StartDate != nil {
		bootcamp.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		bootcamp.EndDate = *req.EndDate
	}
	if req.Capacity != nil {
		bootcamp.Capacity = *req.Capacity
	}
	if req.PricePerHead != nil {
		bootcamp.PricePerHead = *req.PricePerHead
	}

	if err := bc.repo.UpdateBootcamp(bootcamp); err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to update bootcamp", err.Error())
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Bootcamp updated successfully", bootcamp)
}

// DeleteBootcamp godoc
// @Summary Delete a bootcamp offering
// @Tags Bootcamps
// @Produce json
// @Param bootcamp_id path int true "Bootcamp ID"
// @Success 200 {object} responses.SuccessResponse "Bootcamp deleted successfully"
// @Failure 403 {object} responses.ErrorResponse "Not the owner"
// @Failure 404 {object} responses.ErrorResponse "Bootcamp not found"
// @Router /bootcamps/{bootcamp_id} [delete]
// @Security BearerAuth
func (bc *BootcampController) DeleteBootcamp(c *gin.Context) {
	bootcampID, err := strconv.ParseUint(c.Param("bootcamp_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid bootcamp ID format", nil)
		return
	}

	bootcamp, err := bc.repo.GetBootcampByID(uint(bootcampID))
	if err != nil || bootcamp == nil {
		responses.SendError(c, http.StatusNotFound, "Bootcamp not found to delete", nil)
		return
	}

	if !canManage(c, bootcamp) {
		responses.Forbidden(c, "Only the owning provider may delete this offering", nil)
		return
	}

	if err := bc.repo.DeleteBootcamp(uint(bootcampID)); err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to delete bootcamp", err.Error())
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Bootcamp deleted successfully", nil)
}

// CreateBooking godoc
// @Summary Book a bootcamp
// @Description Creates a pending booking for a club.
// @Tags Bootcamps
// @Accept json
// @Produce json
// @Param bootcamp_id path int true "Bootcamp ID"
// @Param booking body CreateBookingRequest true "Booking request"
// @Success 201 {object} responses.SuccessResponse{data=Booking}
// @Failure 404 {object} responses.ErrorResponse "Bootcamp not found"
// @Router /bootcamps/{bootcamp_id}/bookings [post]
// @Security BearerAuth
func (bc *BootcampController) CreateBooking(c *gin.Context) {
	bootcampID, err := strconv.ParseUint(c.Param("bootcamp_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid bootcamp ID format", nil)
		return
	}

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Validation failed", validator.ParseError(err))
		return
	}

	bootcamp, err := bc.repo.GetBootcampByID(uint(bootcampID))
	if err != nil || bootcamp == nil {
		responses.SendError(c, http.StatusNotFound, "Bootcamp not found", nil)
		return
	}

	booking := Booking{
		BootcampID:   uint(bootcampID),
		ClubID:       req.ClubID,
		Participants: req.Participants,
		Status:       BookingPending,
		Notes:        req.Notes,
	}

	if err := bc.repo.CreateBooking(&booking); err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to create booking", err.Error())
		return
	}

	responses.SendSuccess(c, http.StatusCreated, "Booking created successfully", booking)
}

// GetBookings godoc
// @Summary List bookings of a bootcamp
// @Description Only the owning provider or the Super-Admin may list bookings.
// @Tags Bootcamps
// @Produce json
// @Param bootcamp_id path int true "Bootcamp ID"
// @Param status query string false "Filter by booking status"
// @Success 200 {object} responses.SuccessResponse{data=[]Booking}
// @Failure 403 {object} responses.ErrorResponse "Not the owner"
// @Failure 404 {object} responses.ErrorResponse "Bootcamp not found"
// @Router /bootcamps/{bootcamp_id}/bookings [get]
// @Security BearerAuth
func (bc *BootcampController) GetBookings(c *gin.Context) {
	bootcampID, err := strconv.ParseUint(c.Param("bootcamp_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid bootcamp ID format", nil)
		return
	}

	bootcamp, err := bc.repo.GetBootcampByID(uint(bootcampID))
	if err != nil || bootcamp == nil {
		responses.SendError(c, http.StatusNotFound, "Bootcamp not found", nil)
		return
	}

	if !canManage(c, bootcamp) {
		responses.Forbidden(c, "Only the owning provider may view bookings", nil)
		return
	}

	bookings, err := bc.repo.GetBookingsByBootcampID(uint(bootcampID), c.Query("status"))
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to retrieve bookings", err.Error())
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Bookings retrieved successfully", bookings)
}

// RespondToBooking godoc
// @Summary Confirm or cancel a booking
// @Tags Bootcamps
// @Produce json
// @Param bootcamp_id path int true "Bootcamp ID"
// @Param booking_id path int true "Booking ID"
// @Param action path string true "Action: confirm or cancel"
// @Success 200 {object} responses.SuccessResponse{data=Booking}
// @Failure 400 {object} responses.ErrorResponse "Unknown action"
// @Failure 403 {object} responses.ErrorResponse "Not the owner"
// @Failure 404 {object} responses.ErrorResponse "Booking not found"
// @Router /bootcamps/{bootcamp_id}/bookings/{booking_id}/{action} [put]
// @Security BearerAuth
func (bc *BootcampController) RespondToBooking(c *gin.Context) {
	bootcampID, err := strconv.ParseUint(c.Param("bootcamp_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid bootcamp ID format", nil)
		return
	}
	bookingID, err := strconv.ParseUint(c.Param("booking_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid booking ID format", nil)
		return
	}

	var status string
	switch c.Param("action") {
	case "confirm":
		status = BookingConfirmed
	case "cancel":
		status = BookingCancelled
	default:
		responses.SendError(c, http.StatusBadRequest, "Unknown action, expected confirm or cancel", nil)
		return
	}

	bootcamp, err := bc.repo.GetBootcampByID(uint(bootcampID))
	if err != nil || bootcamp == nil {
		responses.SendError(c, http.StatusNotFound, "Bootcamp not found", nil)
		return
	}
	if !canManage(c, bootcamp) {
		responses.Forbidden(c, "Only the owning provider may respond to bookings", nil)
		return
	}

	booking, err := bc.repo.GetBookingByID(uint(bookingID))
	if err != nil || booking == nil || booking.BootcampID != uint(bootcampID) {
		responses.SendError(c, http.StatusNotFound, "Booking not found", nil)
		return
	}

	booking.Status = status
	if err := bc.repo.UpdateBooking(booking); err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to update booking", err.Error())
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Booking updated successfully", booking)
}

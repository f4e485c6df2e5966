package invoice

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/clubhaus-app/clubhaus/pkg/mailer"
	"github.com/clubhaus-app/clubhaus/pkg/responses"
	"github.com/clubhaus-app/clubhaus/pkg/validator"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// InvoiceController handles invoice-related HTTP requests
type InvoiceController struct {
	repo InvoiceRepository
	mail mailer.Mailer
}

// NewInvoiceController creates a new invoice controller
func NewInvoiceController(repo InvoiceRepository, mail mailer.Mailer) *InvoiceController {
	return &InvoiceController{repo: repo, mail: mail}
}

type CreateInvoiceRequest struct {
	ClubID         uint      `json:"club_id" binding:"required"`
	RecipientEmail string    `json:"recipient_email" binding:"required,email"`
	Description    string    `json:"description" binding:"omitempty,max=500"`
	AmountCents    int64     `json:"amount_cents" binding:"required,gt=0"`
	Currency       string    `json:"currency" binding:"omitempty,len=3"`
	DueDate        time.Time `json:"due_date" binding:"required"`
}

// newInvoiceNumber builds a number like RE-2026-5f3a8c1d.
func newInvoiceNumber(now time.Time) string {
	short := strings.Split(uuid.NewString(), "-")[0]
	return fmt.Sprintf("RE-%d-%s", now.Year(), short)
}

// CreateInvoice godoc
// @Summary Issue a new invoice
// @Tags Invoices
// @Accept json
// @Produce json
// @Param invoice body CreateInvoiceRequest true "Invoice creation request"
// @Success 201 {object} responses.SuccessResponse{data=Invoice}
// @Failure 400 {object} responses.ErrorResponse "Validation error"
// @Router /invoices [post]
// @Security BearerAuth
func (ic *InvoiceController) CreateInvoice(c *gin.Context) {
	var req CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Validation failed", validator.ParseError(err))
		return
	}

	invoice := Invoice{
		Number:         newInvoiceNumber(time.Now()),
		ClubID:         req.ClubID,
		RecipientEmail: req.RecipientEmail,
		Description:    req.Description,
		AmountCents:    req.AmountCents,
		Currency:       strings.ToUpper(req.Currency),
		Status:         StatusOpen,
		DueDate:        req.DueDate,
	}
	if invoice.Currency == "" {
		invoice.Currency = "EUR"
	}

	if err := ic.repo.CreateInvoice(&invoice); err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to create invoice", err.Error())
		return
	}

	subject := fmt.Sprintf("Neue Rechnung %s", invoice.Number)
	body := fmt.Sprintf(
		"<p>Es liegt eine neue Rechnung über %.2f %s vor.</p><p>Fällig am %s.</p>",
		float64(invoice.AmountCents)/100, invoice.Currency, invoice.DueDate.Format("02.01.2006"),
	)
	ic.mail.SendBestEffort(c.Request.Context(), []string{invoice.RecipientEmail}, subject, body)

	responses.SendSuccess(c, http.StatusCreated, "Invoice created successfully", invoice)
}

// GetAllInvoices godoc
// @Summary Get all invoices
// @Tags Invoices
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Number of items per page" default(10)
// @Param status query string false "Filter by status"
// @Param club_id query int false "Filter by club"
// @Success 200 {object} responses.PaginatedResponse{data=[]Invoice}
// @Router /invoices [get]
// @Security BearerAuth
func (ic *InvoiceController) GetAllInvoices(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "10"))

	filters := map[string]interface{}{}
	if status := c.Query("status"); status != "" {
		filters["status"] = status
	}
	if clubID := c.Query("club_id"); clubID != "" {
		if id, err := strconv.ParseUint(clubID, 10, 32); err == nil {
			filters["club_id"] = uint(id)
		}
	}

	invoices, total, err := ic.repo.GetAllInvoices(page, pageSize, filters)
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to retrieve invoices", err.Error())
		return
	}

	responses.SendPaginated(c, http.StatusOK, "Invoices retrieved successfully", invoices, total, page, pageSize)
}

// GetInvoiceByID godoc
// @Summary Get an invoice by ID
// @Tags Invoices
// @Produce json
// @Param invoice_id path int true "Invoice ID"
// @Success 200 {object} responses.SuccessResponse{data=Invoice}
// @Failure 404 {object} responses.ErrorResponse "Invoice not found"
// @Router /invoices/{invoice_id} [get]
// @Security BearerAuth
func (ic *InvoiceController) GetInvoiceByID(c *gin.Context) {
	invoiceID, err := strconv.ParseUint(c.Param("invoice_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid invoice ID format", nil)
		return
	}

	invoice, err := ic.repo.GetInvoiceByID(uint(invoiceID))
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to retrieve invoice", err.Error())
		return
	}
	if invoice == nil {
		responses.SendError(c, http.StatusNotFound, "Invoice not found", nil)
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Invoice retrieved successfully", invoice)
}

// MarkInvoicePaid godoc
// @Summary Mark an invoice as paid
// @Tags Invoices
// @Produce json
// @Param invoice_id path int true "Invoice ID"
// @Success 200 {object} responses.SuccessResponse{data=Invoice}
// @Failure 404 {object} responses.ErrorResponse "Invoice not found"
// @Failure 409 {object} responses.ErrorResponse "Invoice is not open"
// @Router /invoices/{invoice_id}/pay [put]
// @Security BearerAuth
func (ic *InvoiceController) MarkInvoicePaid(c *gin.Context) {
	invoiceID, err := strconv.ParseUint(c.Param("invoice_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid invoice ID format", nil)
		return
	}

	invoice, err := ic.repo.GetInvoiceByID(uint(invoiceID))
	if err != nil || invoice == nil {
		responses.SendError(c, http.StatusNotFound, "Invoice not found", nil)
		return
	}

	if invoice.Status != StatusOpen {
		responses.SendError(c, http.StatusConflict, "Only open invoices can be marked as paid", nil)
		return
	}

	now := time.Now()
	invoice.Status = StatusPaid
	invoice.PaidAt = &now

	if err := ic.repo.UpdateInvoice(invoice); err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to update invoice", err.Error())
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Invoice marked as paid", invoice)
}

// CancelInvoice godoc
// @Summary Cancel an invoice
// @Tags Invoices
// @Produce json
// @Param invoice_id path int true "Invoice ID"
// @Success 200 {object} responses.SuccessResponse{data=Invoice}
// @Failure 404 {object} responses.ErrorResponse "Invoice not found"
// @Failure 409 {object} responses.ErrorResponse "Paid invoices cannot be cancelled"
// @Router /invoices/{invoice_id}/cancel [put]
// @Security BearerAuth
func (ic *InvoiceController) CancelInvoice(c *gin.Context) {
	invoiceID, err := strconv.ParseUint(c.Param("invoice_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid invoice ID format", nil)
		return
	}

	invoice, err := ic.repo.GetInvoiceByID(uint(invoiceID))
	if err != nil || invoice == nil {
		responses.SendError(c, http.StatusNotFound, "Invoice not found", nil)
		return
	}

	if invoice.Status == StatusPaid {
		responses.SendError(c, http.StatusConflict, "Paid invoices cannot be cancelled", nil)
		return
	}

	invoice.Status = StatusCancelled

	if err := ic.repo.UpdateInvoice(invoice); err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to update invoice", err.Error())
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Invoice cancelled", invoice)
}

package invoice

import (
	"github.com/clubhaus-app/clubhaus/internal/access"
	mw "github.com/clubhaus-app/clubhaus/internal/middleware"
	"github.com/clubhaus-app/clubhaus/pkg/mailer"
	"github.com/clubhaus-app/clubhaus/pkg/rmiddleware"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RegisterInvoiceRoutes sets up all invoice-related routes
func RegisterInvoiceRoutes(router *gin.RouterGroup, db *gorm.DB, gate *access.Gate, mail mailer.Mailer, jwtSecret string) {
	invoiceRepo := NewInvoiceRepository(db)
	invoiceController := NewInvoiceController(invoiceRepo, mail)

	invoices := router.Group("/invoices")
	invoices.Use(mw.AuthMiddleware(jwtSecret))
	invoices.Use(rmiddleware.ModuleMiddleware(gate, access.ModuleInvoices))
	{
		invoices.GET("", invoiceController.GetAllInvoices)
		invoices.GET("/:invoice_id", invoiceController.GetInvoiceByID)
		invoices.POST("", invoiceController.CreateInvoice)
		invoices.PUT("/:invoice_id/pay", invoiceController.MarkInvoicePaid)
		invoices.PUT("/:invoice_id/cancel", invoiceController.CancelInvoice)
	}
}

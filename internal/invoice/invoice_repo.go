package invoice

import (
	"errors"

	"gorm.io/gorm"
)

// InvoiceRepository defines the interface for invoice data operations
type InvoiceRepository interface {
	CreateInvoice(invoice *Invoice) error
	GetInvoiceByID(id uint) (*Invoice, error)
	GetInvoiceByNumber(number string) (*Invoice, error)
	GetAllInvoices(page, limit int, filters map[string]interface{}) ([]Invoice, int64, error)
	UpdateInvoice(invoice *Invoice) error
}

type invoiceRepository struct {
	db *gorm.DB
}

// NewInvoiceRepository creates a new instance of InvoiceRepository
func NewInvoiceRepository(db *gorm.DB) InvoiceRepository {
	return &invoiceRepository{db: db}
}

func (r *invoiceRepository) CreateInvoice(invoice *Invoice) error {
	return r.db.Create(invoice).Error
}

func (r *invoiceRepository) GetInvoiceByID(id uint) (*Invoice, error) {
	var invoice Invoice
	if err := r.db.First(&invoice, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &invoice, nil
}

func (r *invoiceRepository) GetInvoiceByNumber(number string) (*Invoice, error) {
	var invoice Invoice
	if err := r.db.Where("number = ?", number).First(&invoice).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &invoice, nil
}

func (r *invoiceRepository) GetAllInvoices(page, limit int, filters map[string]interface{}) ([]Invoice, int64, error) {
	var invoices []Invoice
	var total int64

	query := r.db.Model(&Invoice{})

	if status, ok := filters["status"]; ok {
		query = query.Where("status = ?", status)
	}
	if clubID, ok := filters["club_id"]; ok {
		query = query.Where("club_id = ?", clubID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if err := query.Order("created_at DESC").Offset(offset).Limit(limit).Find(&invoices).Error; err != nil {
		return nil, 0, err
	}
	return invoices, total, nil
}

func (r *invoiceRepository) UpdateInvoice(invoice *Invoice) error {
	return r.db.Save(invoice).Error
}

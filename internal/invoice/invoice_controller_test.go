package invoice

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubInvoiceRepository struct {
	invoices map[uint]*Invoice
	nextID   uint
}

func newStubInvoiceRepository() *stubInvoiceRepository {
	return &stubInvoiceRepository{invoices: map[uint]*Invoice{}, nextID: 1}
}

func (s *stubInvoiceRepository) CreateInvoice(invoice *Invoice) error {
	invoice.ID = s.nextID
	s.nextID++
	stored := *invoice
	s.invoices[invoice.ID] = &stored
	return nil
}

func (s *stubInvoiceRepository) GetInvoiceByID(id uint) (*Invoice, error) {
	inv, ok := s.invoices[id]
	if !ok {
		return nil, nil
	}
	copy := *inv
	return &copy, nil
}

func (s *stubInvoiceRepository) GetInvoiceByNumber(number string) (*Invoice, error) {
	for _, inv := range s.invoices {
		if inv.Number == number {
			copy := *inv
			return &copy, nil
		}
	}
	return nil, nil
}

func (s *stubInvoiceRepository) GetAllInvoices(page, limit int, filters map[string]interface{}) ([]Invoice, int64, error) {
	var out []Invoice
	for _, inv := range s.invoices {
		out = append(out, *inv)
	}
	return out, int64(len(out)), nil
}

func (s *stubInvoiceRepository) UpdateInvoice(invoice *Invoice) error {
	stored := *invoice
	s.invoices[invoice.ID] = &stored
	return nil
}

// failingMailer always fails underneath; SendBestEffort swallows the error,
// matching the production contract.
type failingMailer struct {
	attempts int
}

func (m *failingMailer) Send(ctx context.Context, to []string, subject, html string) error {
	m.attempts++
	return errors.New("smtp down")
}

func (m *failingMailer) SendBestEffort(ctx context.Context, to []string, subject, html string) {
	_ = m.Send(ctx, to, subject, html)
}

func setupRouter(repo InvoiceRepository, mail *failingMailer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	controller := NewInvoiceController(repo, mail)
	r := gin.New()
	r.POST("/invoices", controller.CreateInvoice)
	r.PUT("/invoices/:invoice_id/pay", controller.MarkInvoicePaid)
	r.PUT("/invoices/:invoice_id/cancel", controller.CancelInvoice)
	return r
}

func TestCreateInvoiceSurvivesMailerFailure(t *testing.T) {
	repo := newStubInvoiceRepository()
	mail := &failingMailer{}
	r := setupRouter(repo, mail)

	body, _ := json.Marshal(gin.H{
		"club_id":         1,
		"recipient_email": "verein@example.com",
		"amount_cents":    12500,
		"due_date":        time.Now().AddDate(0, 1, 0).Format(time.RFC3339),
	})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/invoices", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, 1, mail.attempts)

	stored, err := repo.GetInvoiceByID(1)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, StatusOpen, stored.Status)
	assert.Equal(t, "EUR", stored.Currency)
	assert.True(t, strings.HasPrefix(stored.Number, "RE-"))
}

func TestInvoiceStatusLifecycle(t *testing.T) {
	repo := newStubInvoiceRepository()
	r := setupRouter(repo, &failingMailer{})

	require.NoError(t, repo.CreateInvoice(&Invoice{
		Number: "RE-2026-test", RecipientEmail: "verein@example.com",
		AmountCents: 100, Currency: "EUR", Status: StatusOpen,
	}))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/invoices/1/pay", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	stored, _ := repo.GetInvoiceByID(1)
	assert.Equal(t, StatusPaid, stored.Status)
	require.NotNil(t, stored.PaidAt)

	// Paid invoices cannot be cancelled or paid again.
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/invoices/1/cancel", nil))
	assert.Equal(t, http.StatusConflict, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/invoices/1/pay", nil))
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestCancelOpenInvoice(t *testing.T) {
	repo := newStubInvoiceRepository()
	r := setupRouter(repo, &failingMailer{})

	require.NoError(t, repo.CreateInvoice(&Invoice{
		Number: "RE-2026-test2", RecipientEmail: "verein@example.com",
		AmountCents: 100, Currency: "EUR", Status: StatusOpen,
	}))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/invoices/1/cancel", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	stored, _ := repo.GetInvoiceByID(1)
	assert.Equal(t, StatusCancelled, stored.Status)
	assert.Nil(t, stored.PaidAt)
}

package schemas

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fieldsolutions/backend/internal/models"
)

// InvoiceCreate is the shape accepted by POST /api/invoices. Tax amount
// defaults to zero, status to draft and the issued date to now.
type InvoiceCreate struct {
	AccountID     int64                `json:"account_id" validate:"required,gt=0"`
	JobID         int64                `json:"job_id" validate:"required,gt=0"`
	InvoiceNumber string               `json:"invoice_number" validate:"required"`
	Description   *string              `json:"description"`
	Amount        *decimal.Decimal     `json:"amount" validate:"required"`
	TaxAmount     *decimal.Decimal     `json:"tax_amount"`
	TotalAmount   *decimal.Decimal     `json:"total_amount" validate:"required"`
	Status        models.InvoiceStatus `json:"status" validate:"omitempty,oneof=draft sent paid overdue cancelled"`
	DueDate       *time.Time           `json:"due_date"`
	Notes         *string              `json:"notes"`
}

func (c InvoiceCreate) Validate() error {
	return Check(c)
}

func (c InvoiceCreate) Model() models.Invoice {
	tax := decimal.Zero
	if c.TaxAmount != nil {
		tax = *c.TaxAmount
	}
	status := c.Status
	if status == "" {
		status = models.InvoiceDraft
	}
	return models.Invoice{
		AccountID:     c.AccountID,
		JobID:         c.JobID,
		InvoiceNumber: c.InvoiceNumber,
		Description:   c.Description,
		Amount:        *c.Amount,
		TaxAmount:     tax,
		TotalAmount:   *c.TotalAmount,
		Status:        status,
		IssuedDate:    time.Now().UTC(),
		DueDate:       c.DueDate,
		Notes:         c.Notes,
	}
}

// InvoiceUpdate is the shape accepted by PATCH /api/invoices/{id}.
// The invoice number is updatable; the unique index re-checks it on write.
type InvoiceUpdate struct {
	InvoiceNumber Optional[string]               `json:"invoice_number"`
	Description   Optional[string]               `json:"description"`
	Amount        Optional[decimal.Decimal]      `json:"amount"`
	TaxAmount     Optional[decimal.Decimal]      `json:"tax_amount"`
	TotalAmount   Optional[decimal.Decimal]      `json:"total_amount"`
	Status        Optional[models.InvoiceStatus] `json:"status"`
	DueDate       Optional[time.Time]            `json:"due_date"`
	PaidDate      Optional[time.Time]            `json:"paid_date"`
	Notes         Optional[string]               `json:"notes"`
}

func (u InvoiceUpdate) Changes() (map[string]any, error) {
	c := newChanges()
	apply(c, "invoice_number", "invoice_number", u.InvoiceNumber, false)
	apply(c, "description", "description", u.Description, true)
	apply(c, "amount", "amount", u.Amount, false)
	apply(c, "tax_amount", "tax_amount", u.TaxAmount, false)
	apply(c, "total_amount", "total_amount", u.TotalAmount, false)
	apply(c, "status", "status", u.Status, false, validInvoiceStatus)
	apply(c, "due_date", "due_date", u.DueDate, true)
	apply(c, "paid_date", "paid_date", u.PaidDate, true)
	apply(c, "notes", "notes", u.Notes, true)
	return c.result()
}

func validInvoiceStatus(s models.InvoiceStatus) error {
	if !s.Valid() {
		return errors.New("value must be one of: draft sent paid overdue cancelled")
	}
	return nil
}

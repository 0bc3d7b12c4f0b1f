package sqlite

import (
	"database/sql"

	"log/slog"

	"github.com/fieldsolutions/backend/internal/db"
	"github.com/fieldsolutions/backend/internal/models"
	"github.com/fieldsolutions/backend/pkg/repository"
)

var _ repository.Store[models.Invoice] = (*Table[models.Invoice])(nil)

// Invoices returns the invoice store.
func Invoices(d *db.DB, logger *slog.Logger) *Table[models.Invoice] {
	return newTable(d, logger, "invoice", "invoices",
		[]string{"account_id", "job_id", "invoice_number", "description", "amount", "tax_amount", "total_amount", "status", "issued_date", "due_date", "paid_date", "notes"},
		func(i models.Invoice) []any {
			return []any{i.AccountID, i.JobID, i.InvoiceNumber, i.Description, i.Amount, i.TaxAmount, i.TotalAmount, i.Status, i.IssuedDate, i.DueDate, i.PaidDate, i.Notes}
		},
		scanInvoice,
	)
}

func scanInvoice(s scanner) (models.Invoice, error) {
	var (
		i                  models.Invoice
		description, notes sql.NullString
		status             string
		issued             int64
		due, paid          sql.NullInt64
		created, updated   int64
	)
	if err := s.Scan(&i.ID, &i.AccountID, &i.JobID, &i.InvoiceNumber, &description, &i.Amount, &i.TaxAmount, &i.TotalAmount, &status, &issued, &due, &paid, &notes, &created, &updated); err != nil {
		return i, err
	}
	i.Description = strPtr(description)
	i.Status = models.InvoiceStatus(status)
	i.IssuedDate = msTime(issued)
	i.DueDate = msTimePtr(due)
	i.PaidDate = msTimePtr(paid)
	i.Notes = strPtr(notes)
	i.CreatedAt = msTime(created)
	i.UpdatedAt = msTime(updated)
	return i, nil
}

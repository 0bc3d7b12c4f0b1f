// Package models holds the persisted entities of the field-service domain.
// These structs double as the read shapes returned by the API; they are only
// ever populated from validated, persisted rows.
package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type JobStatus string

const (
	JobPending    JobStatus = "pending"
	JobInProgress JobStatus = "in_progress"
	JobCompleted  JobStatus = "completed"
	JobCancelled  JobStatus = "cancelled"
)

func (s JobStatus) Valid() bool {
	switch s {
	case JobPending, JobInProgress, JobCompleted, JobCancelled:
		return true
	}
	return false
}

type InvoiceStatus string

const (
	InvoiceDraft     InvoiceStatus = "draft"
	InvoiceSent      InvoiceStatus = "sent"
	InvoicePaid      InvoiceStatus = "paid"
	InvoiceOverdue   InvoiceStatus = "overdue"
	InvoiceCancelled InvoiceStatus = "cancelled"
)

func (s InvoiceStatus) Valid() bool {
	switch s {
	case InvoiceDraft, InvoiceSent, InvoicePaid, InvoiceOverdue, InvoiceCancelled:
		return true
	}
	return false
}

// Account is a customer account owning technicians, jobs and invoices.
type Account struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     *string   `json:"phone"`
	Address   *string   `json:"address"`
	City      *string   `json:"city"`
	State     *string   `json:"state"`
	ZipCode   *string   `json:"zip_code"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Technician belongs to exactly one account.
type Technician struct {
	ID             int64     `json:"id"`
	AccountID      int64     `json:"account_id"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	Email          string    `json:"email"`
	Phone          *string   `json:"phone"`
	Specialization *string   `json:"specialization"`
	LicenseNumber  *string   `json:"license_number"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// Job is a unit of field work for an account, optionally assigned to a
// technician.
type Job struct {
	ID            int64      `json:"id"`
	AccountID     int64      `json:"account_id"`
	TechnicianID  *int64     `json:"technician_id"`
	Title         string     `json:"title"`
	Description   *string    `json:"description"`
	Address       string     `json:"address"`
	City          string     `json:"city"`
	State         string     `json:"state"`
	ZipCode       string     `json:"zip_code"`
	Status        JobStatus  `json:"status"`
	ScheduledDate *time.Time `json:"scheduled_date"`
	CompletedDate *time.Time `json:"completed_date"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// Invoice bills an account for a job. Monetary fields are fixed-point
// decimals, never binary floats.
type Invoice struct {
	ID            int64           `json:"id"`
	AccountID     int64           `json:"account_id"`
	JobID         int64           `json:"job_id"`
	InvoiceNumber string          `json:"invoice_number"`
	Description   *string         `json:"description"`
	Amount        decimal.Decimal `json:"amount"`
	TaxAmount     decimal.Decimal `json:"tax_amount"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	Status        InvoiceStatus   `json:"status"`
	IssuedDate    time.Time       `json:"issued_date"`
	DueDate       *time.Time      `json:"due_date"`
	PaidDate      *time.Time      `json:"paid_date"`
	Notes         *string         `json:"notes"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

package schemas_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/fieldsolutions/backend/internal/apperr"
	"github.com/fieldsolutions/backend/internal/models"
	"github.com/fieldsolutions/backend/internal/schemas"
)

func validationFields(t *testing.T, err error) []string {
	t.Helper()
	var ae *apperr.Error
	if !errors.As(err, &ae) {
		t.Fatalf("expected *apperr.Error, got %v", err)
	}
	if ae.Kind != apperr.KindValidation {
		t.Fatalf("expected validation kind, got %v", ae.Kind)
	}
	fields := make([]string, 0, len(ae.Details))
	for _, d := range ae.Details {
		fields = append(fields, d.Field)
	}
	return fields
}

func TestAccountCreate_Validate(t *testing.T) {
	c := schemas.AccountCreate{Name: "Acme", Email: "a@acme.com"}
	if err := c.Validate(); err != nil {
		t.Fatalf("valid create rejected: %v", err)
	}

	missing := schemas.AccountCreate{Email: "a@acme.com"}
	fields := validationFields(t, missing.Validate())
	if len(fields) != 1 || fields[0] != "name" {
		t.Fatalf("expected offending field name, got %v", fields)
	}

	badEmail := schemas.AccountCreate{Name: "Acme", Email: "not-an-email"}
	fields = validationFields(t, badEmail.Validate())
	if len(fields) != 1 || fields[0] != "email" {
		t.Fatalf("expected offending field email, got %v", fields)
	}
}

func TestAccountCreate_Defaults(t *testing.T) {
	c := schemas.AccountCreate{Name: "Acme", Email: "a@acme.com"}
	m := c.Model()
	if !m.IsActive {
		t.Fatalf("is_active must default to true")
	}

	inactive := false
	c.IsActive = &inactive
	if c.Model().IsActive {
		t.Fatalf("explicit is_active=false must be honoured")
	}
}

func TestAccountUpdate_Changes(t *testing.T) {
	// empty update: no changes and no error
	set, err := schemas.AccountUpdate{}.Changes()
	if err != nil {
		t.Fatalf("empty update rejected: %v", err)
	}
	if len(set) != 0 {
		t.Fatalf("empty update must produce no changes, got %v", set)
	}

	u := schemas.AccountUpdate{
		Name:  schemas.Set("New Name"),
		Phone: schemas.SetNull[string](),
	}
	set, err = u.Changes()
	if err != nil {
		t.Fatalf("update rejected: %v", err)
	}
	if set["name"] != "New Name" {
		t.Fatalf("name change missing: %v", set)
	}
	if v, ok := set["phone"]; !ok || v != nil {
		t.Fatalf("explicit null must clear phone, got %v (ok=%v)", v, ok)
	}

	// null into a non-nullable column names the field
	bad := schemas.AccountUpdate{Name: schemas.SetNull[string]()}
	fields := validationFields(t, func() error { _, err := bad.Changes(); return err }())
	if len(fields) != 1 || fields[0] != "name" {
		t.Fatalf("expected offending field name, got %v", fields)
	}
}

func TestTechnicianUpdate_EmailChecked(t *testing.T) {
	u := schemas.TechnicianUpdate{Email: schemas.Set("nope")}
	if _, err := u.Changes(); apperr.KindOf(err) != apperr.KindValidation {
		t.Fatalf("expected validation error for malformed email, got %v", err)
	}

	ok := schemas.TechnicianUpdate{Email: schemas.Set("t@x.com")}
	set, err := ok.Changes()
	if err != nil {
		t.Fatalf("valid email rejected: %v", err)
	}
	if set["email"] != "t@x.com" {
		t.Fatalf("email change missing: %v", set)
	}
}

func TestJobCreate_StatusDefaultsToPending(t *testing.T) {
	c := schemas.JobCreate{
		AccountID: 1,
		Title:     "Repair",
		Address:   "1 Main St",
		City:      "X",
		State:     "Y",
		ZipCode:   "00000",
	}
	if err := c.Validate(); err != nil {
		t.Fatalf("valid create rejected: %v", err)
	}
	if got := c.Model().Status; got != models.JobPending {
		t.Fatalf("expected pending default, got %q", got)
	}
}

func TestJobCreate_RejectsBadStatusAndMissingAccount(t *testing.T) {
	c := schemas.JobCreate{
		Title:   "Repair",
		Address: "1 Main St",
		City:    "X",
		State:   "Y",
		ZipCode: "00000",
		Status:  "unknown",
	}
	fields := validationFields(t, c.Validate())
	want := map[string]bool{"account_id": true, "status": true}
	for _, f := range fields {
		if !want[f] {
			t.Fatalf("unexpected offending field %q in %v", f, fields)
		}
		delete(want, f)
	}
	if len(want) != 0 {
		t.Fatalf("missing offending fields: %v", want)
	}
}

func TestJobUpdate_TechnicianUnassign(t *testing.T) {
	u := schemas.JobUpdate{TechnicianID: schemas.SetNull[int64]()}
	set, err := u.Changes()
	if err != nil {
		t.Fatalf("unassign rejected: %v", err)
	}
	if v, ok := set["technician_id"]; !ok || v != nil {
		t.Fatalf("expected technician_id null, got %v (ok=%v)", v, ok)
	}

	bad := schemas.JobUpdate{TechnicianID: schemas.Set(int64(-1))}
	if _, err := bad.Changes(); apperr.KindOf(err) != apperr.KindValidation {
		t.Fatalf("expected validation error for non-positive id, got %v", err)
	}
}

func TestInvoiceCreate_DefaultsAndValidation(t *testing.T) {
	amount := decimal.RequireFromString("100.50")
	total := decimal.RequireFromString("110.55")
	c := schemas.InvoiceCreate{
		AccountID:     1,
		JobID:         1,
		InvoiceNumber: "INV-001",
		Amount:        &amount,
		TotalAmount:   &total,
	}
	if err := c.Validate(); err != nil {
		t.Fatalf("valid create rejected: %v", err)
	}
	m := c.Model()
	if !m.TaxAmount.Equal(decimal.Zero) {
		t.Fatalf("tax_amount must default to 0, got %s", m.TaxAmount)
	}
	if m.Status != models.InvoiceDraft {
		t.Fatalf("status must default to draft, got %q", m.Status)
	}
	if m.IssuedDate.IsZero() {
		t.Fatalf("issued_date must be defaulted")
	}

	missing := schemas.InvoiceCreate{AccountID: 1, JobID: 1, InvoiceNumber: "INV-002"}
	fields := validationFields(t, missing.Validate())
	want := map[string]bool{"amount": true, "total_amount": true}
	for _, f := range fields {
		if !want[f] {
			t.Fatalf("unexpected offending field %q in %v", f, fields)
		}
		delete(want, f)
	}
	if len(want) != 0 {
		t.Fatalf("missing offending fields: %v", want)
	}
}

func TestInvoiceCreate_RejectsNonNumericAmount(t *testing.T) {
	var c schemas.InvoiceCreate
	err := json.Unmarshal([]byte(`{"account_id":1,"job_id":1,"invoice_number":"INV-003","amount":"not a number","total_amount":"10"}`), &c)
	if err == nil {
		t.Fatalf("expected decode error for non-numeric amount")
	}
}

func TestInvoiceUpdate_Changes(t *testing.T) {
	u := schemas.InvoiceUpdate{
		Status: schemas.Set(models.InvoicePaid),
		Amount: schemas.Set(decimal.RequireFromString("42.00")),
		Notes:  schemas.SetNull[string](),
	}
	set, err := u.Changes()
	if err != nil {
		t.Fatalf("update rejected: %v", err)
	}
	if set["status"] != models.InvoicePaid {
		t.Fatalf("status change missing: %v", set)
	}
	if v, ok := set["notes"]; !ok || v != nil {
		t.Fatalf("expected notes null, got %v (ok=%v)", v, ok)
	}

	bad := schemas.InvoiceUpdate{Status: schemas.Set(models.InvoiceStatus("nope"))}
	if _, err := bad.Changes(); apperr.KindOf(err) != apperr.KindValidation {
		t.Fatalf("expected validation error for bad status, got %v", err)
	}
}

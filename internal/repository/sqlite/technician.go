package sqlite

import (
	"database/sql"

	"log/slog"

	"github.com/fieldsolutions/backend/internal/db"
	"github.com/fieldsolutions/backend/internal/models"
	"github.com/fieldsolutions/backend/pkg/repository"
)

var _ repository.Store[models.Technician] = (*Table[models.Technician])(nil)

// Technicians returns the technician store.
func Technicians(d *db.DB, logger *slog.Logger) *Table[models.Technician] {
	return newTable(d, logger, "technician", "technicians",
		[]string{"account_id", "first_name", "last_name", "email", "phone", "specialization", "license_number", "is_active"},
		func(t models.Technician) []any {
			return []any{t.AccountID, t.FirstName, t.LastName, t.Email, t.Phone, t.Specialization, t.LicenseNumber, t.IsActive}
		},
		scanTechnician,
	)
}

func scanTechnician(s scanner) (models.Technician, error) {
	var (
		t                             models.Technician
		phone, specialization, licNum sql.NullString
		created, updated              int64
	)
	if err := s.Scan(&t.ID, &t.AccountID, &t.FirstName, &t.LastName, &t.Email, &phone, &specialization, &licNum, &t.IsActive, &created, &updated); err != nil {
		return t, err
	}
	t.Phone = strPtr(phone)
	t.Specialization = strPtr(specialization)
	t.LicenseNumber = strPtr(licNum)
	t.CreatedAt = msTime(created)
	t.UpdatedAt = msTime(updated)
	return t, nil
}

package sqlite

import (
	"database/sql"

	"log/slog"

	"github.com/fieldsolutions/backend/internal/db"
	"github.com/fieldsolutions/backend/internal/models"
	"github.com/fieldsolutions/backend/pkg/repository"
)

var _ repository.Store[models.Account] = (*Table[models.Account])(nil)

// Accounts returns the account store.
func Accounts(d *db.DB, logger *slog.Logger) *Table[models.Account] {
	return newTable(d, logger, "account", "accounts",
		[]string{"name", "email", "phone", "address", "city", "state", "zip_code", "is_active"},
		func(a models.Account) []any {
			return []any{a.Name, a.Email, a.Phone, a.Address, a.City, a.State, a.ZipCode, a.IsActive}
		},
		scanAccount,
	)
}

func scanAccount(s scanner) (models.Account, error) {
	var (
		a                                models.Account
		phone, address, city, state, zip sql.NullString
		created, updated                 int64
	)
	if err := s.Scan(&a.ID, &a.Name, &a.Email, &phone, &address, &city, &state, &zip, &a.IsActive, &created, &updated); err != nil {
		return a, err
	}
	a.Phone = strPtr(phone)
	a.Address = strPtr(address)
	a.City = strPtr(city)
	a.State = strPtr(state)
	a.ZipCode = strPtr(zip)
	a.CreatedAt = msTime(created)
	a.UpdatedAt = msTime(updated)
	return a, nil
}

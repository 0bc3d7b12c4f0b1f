package schemas

import (
	"github.com/fieldsolutions/backend/internal/models"
)

// TechnicianCreate is the shape accepted by POST /api/technicians.
type TechnicianCreate struct {
	AccountID      int64   `json:"account_id" validate:"required,gt=0"`
	FirstName      string  `json:"first_name" validate:"required"`
	LastName       string  `json:"last_name" validate:"required"`
	Email          string  `json:"email" validate:"required,email"`
	Phone          *string `json:"phone"`
	Specialization *string `json:"specialization"`
	LicenseNumber  *string `json:"license_number"`
	IsActive       *bool   `json:"is_active"`
}

func (c TechnicianCreate) Validate() error {
	return Check(c)
}

func (c TechnicianCreate) Model() models.Technician {
	active := true
	if c.IsActive != nil {
		active = *c.IsActive
	}
	return models.Technician{
		AccountID:      c.AccountID,
		FirstName:      c.FirstName,
		LastName:       c.LastName,
		Email:          c.Email,
		Phone:          c.Phone,
		Specialization: c.Specialization,
		LicenseNumber:  c.LicenseNumber,
		IsActive:       active,
	}
}

// TechnicianUpdate is the shape accepted by PATCH /api/technicians/{id}.
// Email is updatable; the unique index re-checks it on write.
type TechnicianUpdate struct {
	FirstName      Optional[string] `json:"first_name"`
	LastName       Optional[string] `json:"last_name"`
	Email          Optional[string] `json:"email"`
	Phone          Optional[string] `json:"phone"`
	Specialization Optional[string] `json:"specialization"`
	LicenseNumber  Optional[string] `json:"license_number"`
	IsActive       Optional[bool]   `json:"is_active"`
}

func (u TechnicianUpdate) Changes() (map[string]any, error) {
	c := newChanges()
	apply(c, "first_name", "first_name", u.FirstName, false)
	apply(c, "last_name", "last_name", u.LastName, false)
	apply(c, "email", "email", u.Email, false, validEmail)
	apply(c, "phone", "phone", u.Phone, true)
	apply(c, "specialization", "specialization", u.Specialization, true)
	apply(c, "license_number", "license_number", u.LicenseNumber, true)
	apply(c, "is_active", "is_active", u.IsActive, false)
	return c.result()
}

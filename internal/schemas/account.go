package schemas

import (
	"github.com/fieldsolutions/backend/internal/models"
)

// AccountCreate is the shape accepted by POST /api/accounts.
type AccountCreate struct {
	Name     string  `json:"name" validate:"required"`
	Email    string  `json:"email" validate:"required,email"`
	Phone    *string `json:"phone"`
	Address  *string `json:"address"`
	City     *string `json:"city"`
	State    *string `json:"state"`
	ZipCode  *string `json:"zip_code"`
	IsActive *bool   `json:"is_active"`
}

func (c AccountCreate) Validate() error {
	return Check(c)
}

func (c AccountCreate) Model() models.Account {
	active := true
	if c.IsActive != nil {
		active = *c.IsActive
	}
	return models.Account{
		Name:     c.Name,
		Email:    c.Email,
		Phone:    c.Phone,
		Address:  c.Address,
		City:     c.City,
		State:    c.State,
		ZipCode:  c.ZipCode,
		IsActive: active,
	}
}

// AccountUpdate is the shape accepted by PATCH /api/accounts/{id}. Email is
// deliberately not updatable.
type AccountUpdate struct {
	Name     Optional[string] `json:"name"`
	Phone    Optional[string] `json:"phone"`
	Address  Optional[string] `json:"address"`
	City     Optional[string] `json:"city"`
	State    Optional[string] `json:"state"`
	ZipCode  Optional[string] `json:"zip_code"`
	IsActive Optional[bool]   `json:"is_active"`
}

func (u AccountUpdate) Changes() (map[string]any, error) {
	c := newChanges()
	apply(c, "name", "name", u.Name, false)
	apply(c, "phone", "phone", u.Phone, true)
	apply(c, "address", "address", u.Address, true)
	apply(c, "city", "city", u.City, true)
	apply(c, "state", "state", u.State, true)
	apply(c, "zip_code", "zip_code", u.ZipCode, true)
	apply(c, "is_active", "is_active", u.IsActive, false)
	return c.result()
}

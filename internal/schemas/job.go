package schemas

import (
	"errors"
	"time"

	"github.com/fieldsolutions/backend/internal/models"
)

// JobCreate is the shape accepted by POST /api/jobs. Status defaults to
// pending.
type JobCreate struct {
	AccountID     int64            `json:"account_id" validate:"required,gt=0"`
	TechnicianID  *int64           `json:"technician_id" validate:"omitempty,gt=0"`
	Title         string           `json:"title" validate:"required"`
	Description   *string          `json:"description"`
	Address       string           `json:"address" validate:"required"`
	City          string           `json:"city" validate:"required"`
	State         string           `json:"state" validate:"required"`
	ZipCode       string           `json:"zip_code" validate:"required"`
	Status        models.JobStatus `json:"status" validate:"omitempty,oneof=pending in_progress completed cancelled"`
	ScheduledDate *time.Time       `json:"scheduled_date"`
}

func (c JobCreate) Validate() error {
	return Check(c)
}

func (c JobCreate) Model() models.Job {
	status := c.Status
	if status == "" {
		status = models.JobPending
	}
	return models.Job{
		AccountID:     c.AccountID,
		TechnicianID:  c.TechnicianID,
		Title:         c.Title,
		Description:   c.Description,
		Address:       c.Address,
		City:          c.City,
		State:         c.State,
		ZipCode:       c.ZipCode,
		Status:        status,
		ScheduledDate: c.ScheduledDate,
	}
}

// JobUpdate is the shape accepted by PATCH /api/jobs/{id}. Setting
// technician_id to null unassigns the technician.
type JobUpdate struct {
	TechnicianID  Optional[int64]            `json:"technician_id"`
	Title         Optional[string]           `json:"title"`
	Description   Optional[string]           `json:"description"`
	Address       Optional[string]           `json:"address"`
	City          Optional[string]           `json:"city"`
	State         Optional[string]           `json:"state"`
	ZipCode       Optional[string]           `json:"zip_code"`
	Status        Optional[models.JobStatus] `json:"status"`
	ScheduledDate Optional[time.Time]        `json:"scheduled_date"`
	CompletedDate Optional[time.Time]        `json:"completed_date"`
}

func (u JobUpdate) Changes() (map[string]any, error) {
	c := newChanges()
	apply(c, "technician_id", "technician_id", u.TechnicianID, true, positiveID)
	apply(c, "title", "title", u.Title, false)
	apply(c, "description", "description", u.Description, true)
	apply(c, "address", "address", u.Address, false)
	apply(c, "city", "city", u.City, false)
	apply(c, "state", "state", u.State, false)
	apply(c, "zip_code", "zip_code", u.ZipCode, false)
	apply(c, "status", "status", u.Status, false, validJobStatus)
	apply(c, "scheduled_date", "scheduled_date", u.ScheduledDate, true)
	apply(c, "completed_date", "completed_date", u.CompletedDate, true)
	return c.result()
}

func positiveID(id int64) error {
	if id <= 0 {
		return errors.New("value must be greater than 0")
	}
	return nil
}

func validJobStatus(s models.JobStatus) error {
	if !s.Valid() {
		return errors.New("value must be one of: pending in_progress completed cancelled")
	}
	return nil
}

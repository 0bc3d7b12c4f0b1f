package sqlite

import (
	"database/sql"

	"log/slog"

	"github.com/fieldsolutions/backend/internal/db"
	"github.com/fieldsolutions/backend/internal/models"
	"github.com/fieldsolutions/backend/pkg/repository"
)

var _ repository.Store[models.Job] = (*Table[models.Job])(nil)

// Jobs returns the job store.
func Jobs(d *db.DB, logger *slog.Logger) *Table[models.Job] {
	return newTable(d, logger, "job", "jobs",
		[]string{"account_id", "technician_id", "title", "description", "address", "city", "state", "zip_code", "status", "scheduled_date", "completed_date"},
		func(j models.Job) []any {
			return []any{j.AccountID, j.TechnicianID, j.Title, j.Description, j.Address, j.City, j.State, j.ZipCode, j.Status, j.ScheduledDate, j.CompletedDate}
		},
		scanJob,
	)
}

func scanJob(s scanner) (models.Job, error) {
	var (
		j                    models.Job
		technicianID         sql.NullInt64
		description          sql.NullString
		scheduled, completed sql.NullInt64
		status               string
		created, updated     int64
	)
	if err := s.Scan(&j.ID, &j.AccountID, &technicianID, &j.Title, &description, &j.Address, &j.City, &j.State, &j.ZipCode, &status, &scheduled, &completed, &created, &updated); err != nil {
		return j, err
	}
	j.TechnicianID = intPtr(technicianID)
	j.Description = strPtr(description)
	j.Status = models.JobStatus(status)
	j.ScheduledDate = msTimePtr(scheduled)
	j.CompletedDate = msTimePtr(completed)
	j.CreatedAt = msTime(created)
	j.UpdatedAt = msTime(updated)
	return j, nil
}

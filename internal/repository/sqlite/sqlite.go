// Package sqlite implements the repository contracts on the sqlite store.
// All four resources share one generic Table implementation; the per-entity
// files only supply column lists and row scanners.
package sqlite

import (
	"database/sql"
	"time"
)

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func msTime(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}

func msTimePtr(v sql.NullInt64) *time.Time {
	if !v.Valid {
		return nil
	}
	t := time.UnixMilli(v.Int64).UTC()
	return &t
}

func strPtr(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	s := v.String
	return &s
}

func intPtr(v sql.NullInt64) *int64 {
	if !v.Valid {
		return nil
	}
	n := v.Int64
	return &n
}

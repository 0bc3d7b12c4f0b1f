package sqlite

import (
	"errors"
	"fmt"
	"strings"

	sqlite "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/fieldsolutions/backend/internal/apperr"
)

// translate maps sqlite constraint violations onto the error taxonomy:
// unique violations become conflicts, foreign key violations become
// reference errors. Anything else is wrapped as-is.
func translate(resource string, err error) error {
	if err == nil {
		return nil
	}

	var se *sqlite.Error
	if errors.As(err, &se) {
		switch se.Code() {
		case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
			return apperr.Conflict(fmt.Sprintf("%s %s already in use", resource, constraintColumn(se.Error())))
		case sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY:
			return apperr.Reference(fmt.Sprintf("%s references a row that does not exist", resource))
		}
	}
	return fmt.Errorf("%s write failed: %w", resource, err)
}

// constraintColumn pulls the column name out of messages like
// "UNIQUE constraint failed: accounts.email (2067)". This relies on the
// driver's message shape; an unrecognized shape degrades to "value", it
// never fails the translation.
func constraintColumn(msg string) string {
	idx := strings.LastIndex(msg, "failed: ")
	if idx < 0 {
		return "value"
	}
	rest := msg[idx+len("failed: "):]
	if j := strings.IndexByte(rest, ' '); j >= 0 {
		rest = rest[:j]
	}
	if j := strings.LastIndexByte(rest, '.'); j >= 0 {
		rest = rest[j+1:]
	}
	if rest == "" {
		return "value"
	}
	return rest
}

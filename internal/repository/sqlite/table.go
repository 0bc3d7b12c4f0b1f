package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"log/slog"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/fieldsolutions/backend/internal/apperr"
	"github.com/fieldsolutions/backend/internal/db"
	"github.com/fieldsolutions/backend/internal/models"
	"github.com/fieldsolutions/backend/pkg/repository"
)

// Table is the generic CRUD store backing one entity table. Identity and the
// created_at/updated_at timestamps are store-assigned; uniqueness and
// reference constraints are never pre-checked, the write is attempted and a
// constraint violation raised by sqlite is translated instead.
type Table[M any] struct {
	db      *db.DB
	logger  *slog.Logger
	name    string   // singular resource name, used in error messages
	table   string
	columns []string // data columns, insert/select order, without id and timestamps
	values  func(M) []any
	scan    func(scanner) (M, error)
}

func newTable[M any](d *db.DB, logger *slog.Logger, name, table string, columns []string, values func(M) []any, scan func(scanner) (M, error)) *Table[M] {
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return &Table[M]{db: d, logger: logger, name: name, table: table, columns: columns, values: values, scan: scan}
}

func (t *Table[M]) selectSQL() string {
	return fmt.Sprintf("SELECT id, %s, created_at, updated_at FROM %s", strings.Join(t.columns, ", "), t.table)
}

func (t *Table[M]) insertSQL() string {
	cols := strings.Join(t.columns, ", ") + ", created_at, updated_at"
	ph := strings.TrimSuffix(strings.Repeat("?, ", len(t.columns)+2), ", ")
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", t.table, cols, ph)
}

// Create persists a new row and returns it as stored. created_at and
// updated_at are set to the same instant.
func (t *Table[M]) Create(ctx context.Context, m M) (M, error) {
	var out M
	err := t.db.WithTx(ctx, func(tx *db.Tx) error {
		now := time.Now().UTC().UnixMilli()
		args := make([]any, 0, len(t.columns)+2)
		for _, v := range t.values(m) {
			args = append(args, encodeArg(v))
		}
		args = append(args, now, now)

		res, err := tx.Exec(ctx, t.insertSQL(), args...)
		if err != nil {
			return translate(t.name, err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("last insert id: %w", err)
		}

		out, err = t.scan(tx.QueryRow(ctx, t.selectSQL()+" WHERE id = ?", id))
		if err != nil {
			return fmt.Errorf("read back %s: %w", t.name, err)
		}
		t.logger.Debug("created", slog.String("resource", t.name), slog.Int64("id", id))
		return nil
	})
	if err != nil {
		var zero M
		return zero, err
	}
	return out, nil
}

// Get returns the row with the given identity.
func (t *Table[M]) Get(ctx context.Context, id int64) (M, error) {
	m, err := t.scan(t.db.QueryRow(ctx, t.selectSQL()+" WHERE id = ?", id))
	if err != nil {
		var zero M
		if errors.Is(err, sql.ErrNoRows) {
			return zero, apperr.NotFound(t.name, id)
		}
		return zero, fmt.Errorf("get %s: %w", t.name, err)
	}
	return m, nil
}

// List returns rows in ascending identity order. An offset beyond the total
// yields an empty slice, never an error.
func (t *Table[M]) List(ctx context.Context, page repository.Page, filter repository.Filter) ([]M, error) {
	q := t.selectSQL()
	args := make([]any, 0, len(filter)+2)
	if len(filter) > 0 {
		cols := lo.Keys(filter)
		sort.Strings(cols)
		preds := lo.Map(cols, func(c string, _ int) string { return c + " = ?" })
		for _, c := range cols {
			args = append(args, encodeArg(filter[c]))
		}
		q += " WHERE " + strings.Join(preds, " AND ")
	}
	q += " ORDER BY id ASC LIMIT ? OFFSET ?"
	args = append(args, page.Limit, page.Offset)

	rows, err := t.db.Query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", t.name, err)
	}
	defer rows.Close()

	out := make([]M, 0)
	for rows.Next() {
		m, err := t.scan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan %s row: %w", t.name, err)
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list %s: %w", t.name, err)
	}
	return out, nil
}

// Update applies only the supplied column assignments, refreshes updated_at
// and returns the row as stored. An empty set still refreshes updated_at;
// the stamp is clamped to one past the stored value so it strictly advances
// even when two writes land in the same millisecond.
func (t *Table[M]) Update(ctx context.Context, id int64, set map[string]any) (M, error) {
	var out M
	err := t.db.WithTx(ctx, func(tx *db.Tx) error {
		cols := lo.Keys(set)
		sort.Strings(cols)

		assigns := lo.Map(cols, func(c string, _ int) string { return c + " = ?" })
		args := make([]any, 0, len(cols)+2)
		for _, c := range cols {
			args = append(args, encodeArg(set[c]))
		}
		assigns = append(assigns, "updated_at = MAX(?, updated_at + 1)")
		args = append(args, time.Now().UTC().UnixMilli(), id)

		res, err := tx.Exec(ctx, fmt.Sprintf("UPDATE %s SET %s WHERE id = ?", t.table, strings.Join(assigns, ", ")), args...)
		if err != nil {
			return translate(t.name, err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("rows affected: %w", err)
		}
		if n == 0 {
			return apperr.NotFound(t.name, id)
		}

		out, err = t.scan(tx.QueryRow(ctx, t.selectSQL()+" WHERE id = ?", id))
		if err != nil {
			return fmt.Errorf("read back %s: %w", t.name, err)
		}
		return nil
	})
	if err != nil {
		var zero M
		return zero, err
	}
	return out, nil
}

// Delete removes the row. Hard delete with RESTRICT semantics: a row still
// referenced by dependent rows is refused with a conflict.
func (t *Table[M]) Delete(ctx context.Context, id int64) error {
	res, err := t.db.Exec(ctx, "DELETE FROM "+t.table+" WHERE id = ?", id)
	if err != nil {
		err = translate(t.name, err)
		if apperr.KindOf(err) == apperr.KindReference {
			return apperr.Conflict(fmt.Sprintf("%s %d is still referenced by dependent rows", t.name, id))
		}
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return apperr.NotFound(t.name, id)
	}
	t.logger.Debug("deleted", slog.String("resource", t.name), slog.Int64("id", id))
	return nil
}

// encodeArg maps model field values onto their storage representation:
// times become unix milliseconds, decimals their canonical string form.
func encodeArg(v any) any {
	switch x := v.(type) {
	case nil:
		return nil
	case time.Time:
		return x.UTC().UnixMilli()
	case *time.Time:
		if x == nil {
			return nil
		}
		return x.UTC().UnixMilli()
	case decimal.Decimal:
		return x.String()
	case *decimal.Decimal:
		if x == nil {
			return nil
		}
		return x.String()
	case models.JobStatus:
		return string(x)
	case models.InvoiceStatus:
		return string(x)
	case *string:
		if x == nil {
			return nil
		}
		return *x
	case *int64:
		if x == nil {
			return nil
		}
		return *x
	default:
		return v
	}
}

package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"thexempt/internal/database"

	"github.com/google/uuid"
)

type recordedCall struct {
	op    string
	inTx  bool
	query string
	args  []any
}

// scriptedDB records every statement and answers QueryRow calls from rows in order.
type scriptedDB struct {
	calls   []recordedCall
	rows    []database.Row
	execErr error
}

func (d *scriptedDB) record(op string, inTx bool, query string, args []any) {
	d.calls = append(d.calls, recordedCall{op: op, inTx: inTx, query: strings.Join(strings.Fields(query), " "), args: args})
}

func (d *scriptedDB) nextRow() database.Row {
	if len(d.rows) == 0 {
		return rowFunc(func(...any) error { return fmt.Errorf("no scripted row left") })
	}
	r := d.rows[0]
	d.rows = d.rows[1:]
	return r
}

func (d *scriptedDB) Ping(context.Context) error { return nil }
func (d *scriptedDB) Close() error               { return nil }
func (d *scriptedDB) SQLDB() *sql.DB             { return nil }

func (d *scriptedDB) Exec(_ context.Context, q string, args ...any) (int64, error) {
	d.record("exec", false, q, args)
	return 1, d.execErr
}

func (d *scriptedDB) Query(_ context.Context, q string, args ...any) (database.Rows, error) {
	d.record("query", false, q, args)
	return nil, fmt.Errorf("query not scripted")
}

func (d *scriptedDB) QueryRow(_ context.Context, q string, args ...any) database.Row {
	d.record("queryrow", false, q, args)
	return d.nextRow()
}

func (d *scriptedDB) Begin(context.Context) (database.Tx, error) {
	d.record("begin", false, "", nil)
	return &scriptedTx{db: d}, nil
}

type scriptedTx struct {
	db *scriptedDB
}

func (t *scriptedTx) Exec(_ context.Context, q string, args ...any) (int64, error) {
	t.db.record("exec", true, q, args)
	return 1, t.db.execErr
}

func (t *scriptedTx) Query(_ context.Context, q string, args ...any) (database.Rows, error) {
	t.db.record("query", true, q, args)
	return nil, fmt.Errorf("query not scripted")
}

func (t *scriptedTx) QueryRow(_ context.Context, q string, args ...any) database.Row {
	t.db.record("queryrow", true, q, args)
	return t.db.nextRow()
}

func (t *scriptedTx) Commit(context.Context) error {
	t.db.record("commit", true, "", nil)
	return nil
}

func (t *scriptedTx) Rollback(context.Context) error {
	t.db.record("rollback", true, "", nil)
	return nil
}

func (d *scriptedDB) ops() []string {
	out := make([]string, 0, len(d.calls))
	for _, c := range d.calls {
		out = append(out, c.op)
	}
	return out
}

// indexOf returns the position of the first call whose query contains fragment.
func (d *scriptedDB) indexOf(fragment string) int {
	for i, c := range d.calls {
		if strings.Contains(c.query, fragment) {
			return i
		}
	}
	return -1
}

type rowFunc func(dest ...any) error

func (f rowFunc) Scan(dest ...any) error { return f(dest...) }

func rowOf(vals ...any) database.Row {
	return rowFunc(func(dest ...any) error { return fill(dest, vals...) })
}

func errRow(err error) database.Row {
	return rowFunc(func(...any) error { return err })
}

func fill(dest []any, vals ...any) error {
	if len(dest) != len(vals) {
		return fmt.Errorf("scan: %d destinations, %d values", len(dest), len(vals))
	}
	for i, d := range dest {
		switch p := d.(type) {
		case *uuid.UUID:
			*p = vals[i].(uuid.UUID)
		case *string:
			*p = vals[i].(string)
		case *int:
			*p = vals[i].(int)
		case *time.Time:
			*p = vals[i].(time.Time)
		case *[]string:
			*p = vals[i].([]string)
		default:
			return fmt.Errorf("scan: unsupported destination %T", d)
		}
	}
	return nil
}

package services_test

import (
	"context"
	"fmt"
	"reflect"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// fakeStore scripts the three Store methods per test. Unscripted calls fail
// the test immediately.
type fakeStore struct {
	t        *testing.T
	queryRow func(sql string, args []any) pgx.Row
	query    func(sql string, args []any) (pgx.Rows, error)
	exec     func(sql string, args []any) (pgconn.CommandTag, error)
}

func (f *fakeStore) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	f.t.Helper()
	if f.exec == nil {
		f.t.Fatalf("unexpected Exec: %s", sql)
	}
	return f.exec(sql, args)
}

func (f *fakeStore) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	f.t.Helper()
	if f.query == nil {
		f.t.Fatalf("unexpected Query: %s", sql)
	}
	return f.query(sql, args)
}

func (f *fakeStore) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	f.t.Helper()
	if f.queryRow == nil {
		f.t.Fatalf("unexpected QueryRow: %s", sql)
	}
	return f.queryRow(sql, args)
}

// fakeRow is a single scripted result row.
type fakeRow struct {
	vals []any
	err  error
}

func (r *fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	return scanInto(dest, r.vals)
}

// fakeRows is a scripted pgx.Rows result set.
type fakeRows struct {
	rows [][]any
	idx  int
	err  error
}

func (r *fakeRows) Close()                                       {}
func (r *fakeRows) Err() error                                   { return r.err }
func (r *fakeRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *fakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeRows) Values() ([]any, error)                       { return nil, nil }
func (r *fakeRows) RawValues() [][]byte                          { return nil }
func (r *fakeRows) Conn() *pgx.Conn                              { return nil }

func (r *fakeRows) Next() bool {
	if r.idx >= len(r.rows) {
		return false
	}
	r.idx++
	return true
}

func (r *fakeRows) Scan(dest ...any) error {
	return scanInto(dest, r.rows[r.idx-1])
}

// scanInto assigns scripted values to scan destinations. A nil value leaves
// the destination zeroed, matching a SQL NULL into a pointer field.
func scanInto(dest []any, vals []any) error {
	if len(dest) != len(vals) {
		return fmt.Errorf("scan: %d destinations for %d values", len(dest), len(vals))
	}
	for i, v := range vals {
		dv := reflect.ValueOf(dest[i]).Elem()
		if v == nil {
			dv.Set(reflect.Zero(dv.Type()))
			continue
		}
		sv := reflect.ValueOf(v)
		if !sv.Type().ConvertibleTo(dv.Type()) {
			return fmt.Errorf("scan: cannot assign %T to %s", v, dv.Type())
		}
		dv.Set(sv.Convert(dv.Type()))
	}
	return nil
}

func ptr[T any](v T) *T { return &v }

package store

import (
	"context"
	"errors"
	"testing"
)

// fakeRows serves canned rows whose cells are positional values
type fakeRows struct {
	cols []string
	data [][]any
	i    int
	err  error
}

func (f *fakeRows) Next() bool {
	if f.i >= len(f.data) {
		return false
	}
	f.i++
	return true
}

func (f *fakeRows) Scan(dest ...any) error {
	row := f.data[f.i-1]
	if len(dest) > len(row) {
		return errors.New("scan arity mismatch")
	}
	for i := range dest {
		switch d := dest[i].(type) {
		case *string:
			*d = row[i].(string)
		case *int64:
			*d = row[i].(int64)
		case *uint64:
			*d = row[i].(uint64)
		case *float64:
			*d = row[i].(float64)
		default:
			return errors.New("unsupported scan type")
		}
	}
	return nil
}

func (f *fakeRows) Err() error        { return f.err }
func (f *fakeRows) Close()            {}
func (f *fakeRows) Columns() []string { return f.cols }

// fakeWarehouse returns one canned result set per call
type fakeWarehouse struct {
	rows Rows
	err  error
}

func (f *fakeWarehouse) Query(context.Context, string, ...any) (Rows, *ScanStats, error) {
	if f.err != nil {
		return nil, &ScanStats{}, f.err
	}
	return f.rows, &ScanStats{Rows: 1, Bytes: 64}, nil
}

func TestGuardAndCloseNilSafe(t *testing.T) {
	t.Parallel()

	var s *Store
	if err := s.Guard(context.Background()); err == nil {
		t.Fatalf("nil store Guard expected error")
	}

	empty := &Store{}
	if err := empty.Guard(context.Background()); err != nil {
		t.Fatalf("empty store Guard = %v", err)
	}
	if err := empty.Close(context.Background()); err != nil {
		t.Fatalf("empty store Close = %v", err)
	}
}

func TestScalar(t *testing.T) {
	t.Parallel()

	q := &fakeWarehouse{rows: &fakeRows{cols: []string{"n"}, data: [][]any{{int64(42)}}}}
	got, err := Scalar[int64](context.Background(), q, "SELECT count() FROM creator_profiles")
	if err != nil || got != 42 {
		t.Fatalf("Scalar = %d, %v", got, err)
	}

	// empty result maps to not found
	q = &fakeWarehouse{rows: &fakeRows{cols: []string{"n"}}}
	if _, err := Scalar[int64](context.Background(), q, "SELECT 1"); err == nil {
		t.Fatalf("Scalar on empty rows expected error")
	}
}

func TestMany(t *testing.T) {
	t.Parallel()

	type pair struct {
		Key string
		N   int64
	}
	scan := func(r Row) (pair, error) {
		var p pair
		err := r.Scan(&p.Key, &p.N)
		return p, err
	}

	q := &fakeWarehouse{rows: &fakeRows{
		cols: []string{"tag", "cnt"},
		data: [][]any{{"glowskin", int64(120)}, {"retinol", int64(88)}},
	}}
	out, err := Many(context.Background(), q, scan, "SELECT tag, cnt")
	if err != nil {
		t.Fatalf("Many err: %v", err)
	}
	if len(out) != 2 || out[0].Key != "glowskin" || out[1].N != 88 {
		t.Fatalf("Many rows mismatch: %+v", out)
	}

	// query error propagates
	q = &fakeWarehouse{err: errors.New("boom")}
	if _, err := Many(context.Background(), q, scan, "SELECT 1"); err == nil {
		t.Fatalf("Many with query error expected error")
	}
}

package store

import (
	"context"
	"errors"

	"trendlens/internal/platform/store/ch"
)

// newWarehouseAdapter wraps an existing *ch.CH behind the store.Warehouse seam
// it also emits a scan stats log line per query in the slow query log style
func newWarehouseAdapter(c *ch.CH, s *Store) Warehouse {
	return &warehouseAdapter{inner: c, store: s}
}

type warehouseAdapter struct {
	inner *ch.CH
	store *Store
}

var _ Warehouse = (*warehouseAdapter)(nil)

func (a *warehouseAdapter) Query(ctx context.Context, sql string, args ...any) (Rows, *ScanStats, error) {
	rows, st, err := a.inner.Query(ctx, sql, args...)
	stats := &ScanStats{}
	if err != nil {
		if st != nil {
			stats.Elapsed = st.Elapsed.Microseconds()
		}
		return nil, stats, err
	}
	return &rowsAdapter{r: rows, src: st, dst: stats, emit: a.emit}, stats, nil
}

func (a *warehouseAdapter) Close() error { return a.inner.Close() }

// Ping verifies connectivity with the warehouse
func (a *warehouseAdapter) Ping(ctx context.Context) error {
	if a == nil || a.inner == nil {
		return errors.New("store: nil warehouse adapter")
	}
	return a.inner.Ping(ctx)
}

// emit logs final scan accounting once the result set is closed
func (a *warehouseAdapter) emit(ctx context.Context, st *ScanStats) {
	if a.store == nil {
		return
	}
	a.store.Log.Debug().
		Uint64("rows_read", st.Rows).
		Uint64("bytes_read", st.Bytes).
		Int64("elapsed_us", st.Elapsed).
		Msg("warehouse scan")
	_ = ctx
}

// rowsAdapter wraps ch.Rows as store.Rows and settles stats on Close
type rowsAdapter struct {
	r    ch.Rows
	src  *ch.Stats
	dst  *ScanStats
	emit func(context.Context, *ScanStats)
	done bool
}

func (r *rowsAdapter) Next() bool             { return r.r.Next() }
func (r *rowsAdapter) Scan(dest ...any) error { return r.r.Scan(dest...) }
func (r *rowsAdapter) Err() error             { return r.r.Err() }
func (r *rowsAdapter) Columns() []string      { return r.r.Columns() }

func (r *rowsAdapter) Close() {
	if r.done {
		return
	}
	r.done = true
	_ = r.r.Close()
	if r.src != nil {
		r.dst.Rows = r.src.Rows
		r.dst.Bytes = r.src.Bytes
		r.dst.Elapsed = r.src.Elapsed.Microseconds()
	}
	if r.emit != nil {
		r.emit(context.Background(), r.dst)
	}
}

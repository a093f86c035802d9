package repokit

import "context"

// QueryHook runs before every query on a hooked Queryer
// useful for deadline stamping or per operation accounting
type QueryHook func(ctx context.Context, sql string, args []any) error

// WithQueryHooks wraps a Queryer and runs hooks before each Query
func WithQueryHooks(inner Queryer, hooks ...QueryHook) Queryer {
	return hookedQ{inner: inner, hooks: hooks}
}

type hookedQ struct {
	inner Queryer
	hooks []QueryHook
}

func (h hookedQ) Query(ctx context.Context, sql string, args ...any) (Rows, *ScanStats, error) {
	for _, hk := range h.hooks {
		if err := hk(ctx, sql, args); err != nil {
			return nil, nil, err
		}
	}
	return h.inner.Query(ctx, sql, args...)
}

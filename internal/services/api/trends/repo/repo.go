// Package repo provides warehouse access for trends operations
package repo

import (
	"context"
	"time"

	"trendlens/internal/core/queryplan"
	"trendlens/internal/modkit/repokit"
	"trendlens/internal/platform/store"
)

// Repo is the minimal warehouse surface for trends
//
// The two window operations all reduce to keyed counts, so one scanner
// serves emerging hashtags, ingredients, categories, formats and keywords
type Repo interface {
	KeyCounts(ctx context.Context, p queryplan.Plan) ([]KeyCount, error)
	History(ctx context.Context, p queryplan.Plan) ([]HistoryRow, error)
	Seasonality(ctx context.Context, p queryplan.Plan) ([]SeasonalityRow, error)
}

// KeyCount is one keyed post count within a single window
type KeyCount struct {
	Key   string
	Posts uint64
}

// HistoryRow is one day of post volume
type HistoryRow struct {
	Day   time.Time
	Posts uint64
}

// SeasonalityRow is post volume for one day of week, 1 is Monday
type SeasonalityRow struct {
	Dow   uint8
	Posts uint64
}

// WH provides a warehouse backed repo
type WH struct{}

// NewWH constructs a warehouse repo binder
func NewWH() repokit.Binder[Repo] { return WH{} }

// Bind wires a Queryer to the repo
func (WH) Bind(q repokit.Queryer) Repo { return &queries{q: q} }

type queries struct{ q repokit.Queryer }

func (r *queries) KeyCounts(ctx context.Context, p queryplan.Plan) ([]KeyCount, error) {
	return store.Many(ctx, r.q, func(row store.Row) (KeyCount, error) {
		var v KeyCount
		err := row.Scan(&v.Key, &v.Posts)
		return v, err
	}, p.SQL, p.Args...)
}

func (r *queries) History(ctx context.Context, p queryplan.Plan) ([]HistoryRow, error) {
	return store.Many(ctx, r.q, func(row store.Row) (HistoryRow, error) {
		var v HistoryRow
		err := row.Scan(&v.Day, &v.Posts)
		return v, err
	}, p.SQL, p.Args...)
}

func (r *queries) Seasonality(ctx context.Context, p queryplan.Plan) ([]SeasonalityRow, error) {
	return store.Many(ctx, r.q, func(row store.Row) (SeasonalityRow, error) {
		var v SeasonalityRow
		err := row.Scan(&v.Dow, &v.Posts)
		return v, err
	}, p.SQL, p.Args...)
}

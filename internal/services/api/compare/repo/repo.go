// Package repo provides warehouse access for compare operations
package repo

import (
	"context"

	"trendlens/internal/core/queryplan"
	"trendlens/internal/modkit/repokit"
	"trendlens/internal/platform/store"
)

// Repo is the minimal warehouse surface for compare
type Repo interface {
	// EntityStats scans key, posts, likes, comments, creators
	EntityStats(ctx context.Context, p queryplan.Plan) ([]StatsRow, error)
	// EntityTotals scans key, posts, likes, comments
	EntityTotals(ctx context.Context, p queryplan.Plan) ([]TotalsRow, error)
	// EntityCounts scans key, posts
	EntityCounts(ctx context.Context, p queryplan.Plan) ([]CountRow, error)
	// EntityEngagement scans key, posts, likes, comments, avg followers
	EntityEngagement(ctx context.Context, p queryplan.Plan) ([]EngagementRow, error)
}

// StatsRow is per entity volume with distinct creator reach
type StatsRow struct {
	Key      string
	Posts    uint64
	Likes    uint64
	Comments uint64
	Creators uint64
}

// TotalsRow is per entity volume without reach
type TotalsRow struct {
	Key      string
	Posts    uint64
	Likes    uint64
	Comments uint64
}

// CountRow is a bare per entity post count
type CountRow struct {
	Key   string
	Posts uint64
}

// EngagementRow carries the inputs for a per entity engagement rate
type EngagementRow struct {
	Key          string
	Posts        uint64
	Likes        uint64
	Comments     uint64
	AvgFollowers float64
}

// WH provides a warehouse backed repo
type WH struct{}

// NewWH constructs a warehouse repo binder
func NewWH() repokit.Binder[Repo] { return WH{} }

// Bind wires a Queryer to the repo
func (WH) Bind(q repokit.Queryer) Repo { return &queries{q: q} }

type queries struct{ q repokit.Queryer }

func (r *queries) EntityStats(ctx context.Context, p queryplan.Plan) ([]StatsRow, error) {
	return store.Many(ctx, r.q, func(row store.Row) (StatsRow, error) {
		var v StatsRow
		err := row.Scan(&v.Key, &v.Posts, &v.Likes, &v.Comments, &v.Creators)
		return v, err
	}, p.SQL, p.Args...)
}

func (r *queries) EntityTotals(ctx context.Context, p queryplan.Plan) ([]TotalsRow, error) {
	return store.Many(ctx, r.q, func(row store.Row) (TotalsRow, error) {
		var v TotalsRow
		err := row.Scan(&v.Key, &v.Posts, &v.Likes, &v.Comments)
		return v, err
	}, p.SQL, p.Args...)
}

func (r *queries) EntityCounts(ctx context.Context, p queryplan.Plan) ([]CountRow, error) {
	return store.Many(ctx, r.q, func(row store.Row) (CountRow, error) {
		var v CountRow
		err := row.Scan(&v.Key, &v.Posts)
		return v, err
	}, p.SQL, p.Args...)
}

func (r *queries) EntityEngagement(ctx context.Context, p queryplan.Plan) ([]EngagementRow, error) {
	return store.Many(ctx, r.q, func(row store.Row) (EngagementRow, error) {
		var v EngagementRow
		err := row.Scan(&v.Key, &v.Posts, &v.Likes, &v.Comments, &v.AvgFollowers)
		return v, err
	}, p.SQL, p.Args...)
}

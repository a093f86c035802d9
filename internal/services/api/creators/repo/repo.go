// Package repo provides warehouse access for creators operations
package repo

import (
	"context"
	"time"

	"trendlens/internal/core/queryplan"
	"trendlens/internal/modkit/repokit"
	"trendlens/internal/platform/store"
)

// Repo is the minimal warehouse surface for creators
// Every method executes one compiled plan and scans its rows
type Repo interface {
	Search(ctx context.Context, p queryplan.Plan) ([]SearchRow, error)
	Profile(ctx context.Context, p queryplan.Plan) ([]ProfileRow, error)
	Metrics(ctx context.Context, p queryplan.Plan) ([]MetricRow, error)
	EngagementRates(ctx context.Context, p queryplan.Plan) ([]float64, error)
	GeoCounts(ctx context.Context, p queryplan.Plan) ([]GeoRow, error)
	Demographics(ctx context.Context, p queryplan.Plan) ([]DemoRow, error)
	Growth(ctx context.Context, p queryplan.Plan) ([]GrowthRow, error)
	Tiers(ctx context.Context, p queryplan.Plan) ([]TierRow, error)
	Beauty(ctx context.Context, p queryplan.Plan) ([]BeautyRow, error)
	Similar(ctx context.Context, p queryplan.Plan) ([]SimilarRow, error)
	ContentSummary(ctx context.Context, p queryplan.Plan) ([]CategoryRow, error)
	RecentPosts(ctx context.Context, p queryplan.Plan) ([]PostRow, error)
}

// SearchRow is one matched creator with headline metrics
type SearchRow struct {
	CreatorID      string
	Handle         string
	DisplayName    string
	Country        string
	Tier           string
	Followers      uint64
	EngagementRate float64
}

// ProfileRow is the full profile projection
type ProfileRow struct {
	CreatorID      string
	Handle         string
	DisplayName    string
	Country        string
	Gender         string
	AgeBracket     string
	Interests      []string
	Tier           string
	Followers      uint64
	AvgLikes       float64
	AvgComments    float64
	FollowerGrowth float64
}

// MetricRow carries the raw per creator metric sample
type MetricRow struct {
	Followers      uint64
	AvgLikes       float64
	AvgComments    float64
	EngagementRate float64
}

// GeoRow is a creators per country count
type GeoRow struct {
	Country  string
	Creators uint64
}

// DemoRow is a creators per gender and age bracket count
type DemoRow struct {
	Gender     string
	AgeBracket string
	Creators   uint64
}

// GrowthRow is one creator ranked by follower growth
type GrowthRow struct {
	CreatorID      string
	Handle         string
	Country        string
	Tier           string
	Followers      uint64
	FollowerGrowth float64
}

// TierRow aggregates creators per collaboration tier
type TierRow struct {
	Tier          string
	Creators      uint64
	AvgFollowers  float64
	AvgEngagement float64
}

// BeautyRow is one beauty specialist match
type BeautyRow struct {
	CreatorID     string
	Handle        string
	Country       string
	SkinType      string
	PersonalColor string
	BrandTier     string
	Followers     uint64
}

// SimilarRow is one similar creator candidate
type SimilarRow struct {
	CreatorID      string
	Handle         string
	Country        string
	Interests      []string
	Tier           string
	Followers      uint64
	EngagementRate float64
}

// CategoryRow aggregates content per category
type CategoryRow struct {
	Category string
	Posts    uint64
	Likes    uint64
	Comments uint64
}

// PostRow is one recent content item
type PostRow struct {
	CreatorID string
	EventDate time.Time
	Category  string
	Format    string
	Caption   string
	Likes     uint64
	Comments  uint64
	Views     uint64
	Thumbnail string
}

type (
	// WH is a binder that can bind the repo to a warehouse Queryer
	WH struct{}
	// queries implements the Repo interface
	queries struct{ q repokit.Queryer }
)

// NewWH returns a binder that can bind the repo to a Queryer
func NewWH() repokit.Binder[Repo] { return WH{} }

// Bind wires a Queryer to the repo
func (WH) Bind(q repokit.Queryer) Repo { return &queries{q: q} }

func (r *queries) Search(ctx context.Context, p queryplan.Plan) ([]SearchRow, error) {
	return store.Many(ctx, r.q, func(row store.Row) (SearchRow, error) {
		var v SearchRow
		err := row.Scan(&v.CreatorID, &v.Handle, &v.DisplayName, &v.Country, &v.Tier, &v.Followers, &v.EngagementRate)
		return v, err
	}, p.SQL, p.Args...)
}

func (r *queries) Profile(ctx context.Context, p queryplan.Plan) ([]ProfileRow, error) {
	return store.Many(ctx, r.q, func(row store.Row) (ProfileRow, error) {
		var v ProfileRow
		err := row.Scan(
			&v.CreatorID, &v.Handle, &v.DisplayName, &v.Country, &v.Gender, &v.AgeBracket,
			&v.Interests, &v.Tier, &v.Followers, &v.AvgLikes, &v.AvgComments, &v.FollowerGrowth,
		)
		return v, err
	}, p.SQL, p.Args...)
}

func (r *queries) Metrics(ctx context.Context, p queryplan.Plan) ([]MetricRow, error) {
	return store.Many(ctx, r.q, func(row store.Row) (MetricRow, error) {
		var v MetricRow
		err := row.Scan(&v.Followers, &v.AvgLikes, &v.AvgComments, &v.EngagementRate)
		return v, err
	}, p.SQL, p.Args...)
}

func (r *queries) EngagementRates(ctx context.Context, p queryplan.Plan) ([]float64, error) {
	return store.Many(ctx, r.q, func(row store.Row) (float64, error) {
		var v float64
		err := row.Scan(&v)
		return v, err
	}, p.SQL, p.Args...)
}

func (r *queries) GeoCounts(ctx context.Context, p queryplan.Plan) ([]GeoRow, error) {
	return store.Many(ctx, r.q, func(row store.Row) (GeoRow, error) {
		var v GeoRow
		err := row.Scan(&v.Country, &v.Creators)
		return v, err
	}, p.SQL, p.Args...)
}

func (r *queries) Demographics(ctx context.Context, p queryplan.Plan) ([]DemoRow, error) {
	return store.Many(ctx, r.q, func(row store.Row) (DemoRow, error) {
		var v DemoRow
		err := row.Scan(&v.Gender, &v.AgeBracket, &v.Creators)
		return v, err
	}, p.SQL, p.Args...)
}

func (r *queries) Growth(ctx context.Context, p queryplan.Plan) ([]GrowthRow, error) {
	return store.Many(ctx, r.q, func(row store.Row) (GrowthRow, error) {
		var v GrowthRow
		err := row.Scan(&v.CreatorID, &v.Handle, &v.Country, &v.Tier, &v.Followers, &v.FollowerGrowth)
		return v, err
	}, p.SQL, p.Args...)
}

func (r *queries) Tiers(ctx context.Context, p queryplan.Plan) ([]TierRow, error) {
	return store.Many(ctx, r.q, func(row store.Row) (TierRow, error) {
		var v TierRow
		err := row.Scan(&v.Tier, &v.Creators, &v.AvgFollowers, &v.AvgEngagement)
		return v, err
	}, p.SQL, p.Args...)
}

func (r *queries) Beauty(ctx context.Context, p queryplan.Plan) ([]BeautyRow, error) {
	return store.Many(ctx, r.q, func(row store.Row) (BeautyRow, error) {
		var v BeautyRow
		err := row.Scan(&v.CreatorID, &v.Handle, &v.Country, &v.SkinType, &v.PersonalColor, &v.BrandTier, &v.Followers)
		return v, err
	}, p.SQL, p.Args...)
}

func (r *queries) Similar(ctx context.Context, p queryplan.Plan) ([]SimilarRow, error) {
	return store.Many(ctx, r.q, func(row store.Row) (SimilarRow, error) {
		var v SimilarRow
		err := row.Scan(&v.CreatorID, &v.Handle, &v.Country, &v.Interests, &v.Tier, &v.Followers, &v.EngagementRate)
		return v, err
	}, p.SQL, p.Args...)
}

func (r *queries) ContentSummary(ctx context.Context, p queryplan.Plan) ([]CategoryRow, error) {
	return store.Many(ctx, r.q, func(row store.Row) (CategoryRow, error) {
		var v CategoryRow
		err := row.Scan(&v.Category, &v.Posts, &v.Likes, &v.Comments)
		return v, err
	}, p.SQL, p.Args...)
}

func (r *queries) RecentPosts(ctx context.Context, p queryplan.Plan) ([]PostRow, error) {
	return store.Many(ctx, r.q, func(row store.Row) (PostRow, error) {
		var v PostRow
		err := row.Scan(&v.CreatorID, &v.EventDate, &v.Category, &v.Format, &v.Caption, &v.Likes, &v.Comments, &v.Views)
		return v, err
	}, p.SQL, p.Args...)
}

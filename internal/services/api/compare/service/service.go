// Package service contains compare workflows
package service

import (
	"context"
	"time"

	"trendlens/internal/core/aggregate"
	"trendlens/internal/core/filterspec"
	"trendlens/internal/core/materialize"
	"trendlens/internal/core/opspec"
	"trendlens/internal/core/queryplan"
	"trendlens/internal/modkit/repokit"
	perr "trendlens/internal/platform/errors"
	"trendlens/internal/platform/logger"
	"trendlens/internal/platform/store"
	"trendlens/internal/services/api/compare/domain"
	"trendlens/internal/services/api/compare/repo"
	"trendlens/internal/services/api/shared"
)

// Service defines the compare service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the compare service
type Svc struct {
	Repo  repo.Repo
	sink  store.ObjectSink
	log   logger.Logger
	nowFn func() time.Time
}

// Option mutates the service during construction
type Option func(*Svc)

// WithNow overrides the clock, tests only
func WithNow(fn func() time.Time) Option { return func(s *Svc) { s.nowFn = fn } }

// New constructs a compare service
func New(q repokit.Queryer, binder repokit.Binder[repo.Repo], sink store.ObjectSink, log logger.Logger, opts ...Option) *Svc {
	if binder == nil {
		panic("compare.Service requires a non nil Repo binder")
	}
	s := &Svc{
		Repo:  repokit.MustBind(binder, q),
		sink:  sink,
		log:   log.With().Str("component", "compare").Logger(),
		nowFn: time.Now,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// plan normalizes the input and compiles the comparison query
func (s *Svc) plan(op string, in domain.Input) (opspec.Descriptor, filterspec.Spec, queryplan.Plan, error) {
	d, ok := opspec.Lookup(op)
	if !ok {
		return opspec.Descriptor{}, filterspec.Spec{}, queryplan.Plan{}, perr.Compilationf("unknown operation %s", op)
	}
	spec, err := filterspec.Normalize(in.Params(), d.Bounds)
	if err != nil {
		return opspec.Descriptor{}, filterspec.Spec{}, queryplan.Plan{}, err
	}
	p, err := queryplan.Compile(d, spec, s.nowFn())
	if err != nil {
		return opspec.Descriptor{}, filterspec.Spec{}, queryplan.Plan{}, err
	}
	return d, spec, p, nil
}

// finish materializes the table and shapes the operation result
func (s *Svc) finish(ctx context.Context, d opspec.Descriptor, p queryplan.Plan, tbl materialize.Table, soft ...error) domain.Result {
	res := materialize.Materialize(ctx, s.sink, d.Name, tbl, d.Preview, s.nowFn())
	if res.ExportErr != nil {
		s.log.Warn().Err(res.ExportErr).Str("op", d.Name).Msg("export degraded")
	}
	logger.C(ctx).Debug().Str("op", d.Name).Int("rows", res.TotalCount).Str("plan", p.Summary()).Msg("operation done")
	return shared.FromMaterialized(res, p.Summary(), soft...)
}

// missing returns the requested keys that produced no rows, in canonical order
// every compared entity appears in the output even when it matched nothing
func missing(requested []string, seen map[string]bool) []string {
	var out []string
	for _, k := range requested {
		if !seen[k] {
			out = append(out, k)
		}
	}
	return out
}

// Regions compares post volume and interaction across audience countries
func (s *Svc) Regions(ctx context.Context, in domain.Input) (domain.Result, error) {
	d, spec, p, err := s.plan("compare.regions", in)
	if err != nil {
		return domain.Result{}, err
	}
	rows, err := s.Repo.EntityStats(ctx, p)
	if err != nil {
		return domain.Result{}, perr.AsWarehouse(err, d.Name)
	}
	tbl := materialize.Table{Columns: []string{"country", "posts", "likes", "comments", "creators"}}
	seen := make(map[string]bool, len(rows))
	for _, r := range rows {
		seen[r.Key] = true
		tbl.Rows = append(tbl.Rows, []any{r.Key, r.Posts, r.Likes, r.Comments, r.Creators})
	}
	for _, k := range missing(spec.Countries, seen) {
		tbl.Rows = append(tbl.Rows, []any{k, uint64(0), uint64(0), uint64(0), uint64(0)})
	}
	return s.finish(ctx, d, p, tbl), nil
}

// Brands compares post volume and interaction across brand mentions
func (s *Svc) Brands(ctx context.Context, in domain.Input) (domain.Result, error) {
	d, spec, p, err := s.plan("compare.brands", in)
	if err != nil {
		return domain.Result{}, err
	}
	rows, err := s.Repo.EntityTotals(ctx, p)
	if err != nil {
		return domain.Result{}, perr.AsWarehouse(err, d.Name)
	}
	tbl := materialize.Table{Columns: []string{"brand", "posts", "likes", "comments"}}
	seen := make(map[string]bool, len(rows))
	for _, r := range rows {
		seen[r.Key] = true
		tbl.Rows = append(tbl.Rows, []any{r.Key, r.Posts, r.Likes, r.Comments})
	}
	for _, k := range missing(spec.Brands, seen) {
		tbl.Rows = append(tbl.Rows, []any{k, uint64(0), uint64(0), uint64(0)})
	}
	return s.finish(ctx, d, p, tbl), nil
}

// Tiers compares post volume and interaction across collaboration tiers
func (s *Svc) Tiers(ctx context.Context, in domain.Input) (domain.Result, error) {
	d, spec, p, err := s.plan("compare.tiers", in)
	if err != nil {
		return domain.Result{}, err
	}
	rows, err := s.Repo.EntityStats(ctx, p)
	if err != nil {
		return domain.Result{}, perr.AsWarehouse(err, d.Name)
	}
	tbl := materialize.Table{Columns: []string{"tier", "posts", "likes", "comments", "creators"}}
	seen := make(map[string]bool, len(rows))
	for _, r := range rows {
		seen[r.Key] = true
		tbl.Rows = append(tbl.Rows, []any{r.Key, r.Posts, r.Likes, r.Comments, r.Creators})
	}
	for _, k := range missing(spec.Tiers, seen) {
		tbl.Rows = append(tbl.Rows, []any{k, uint64(0), uint64(0), uint64(0), uint64(0)})
	}
	return s.finish(ctx, d, p, tbl), nil
}

// Categories compares post volume and interaction across creator interests
func (s *Svc) Categories(ctx context.Context, in domain.Input) (domain.Result, error) {
	d, spec, p, err := s.plan("compare.categories", in)
	if err != nil {
		return domain.Result{}, err
	}
	rows, err := s.Repo.EntityTotals(ctx, p)
	if err != nil {
		return domain.Result{}, perr.AsWarehouse(err, d.Name)
	}
	tbl := materialize.Table{Columns: []string{"interest", "posts", "likes", "comments"}}
	seen := make(map[string]bool, len(rows))
	for _, r := range rows {
		seen[r.Key] = true
		tbl.Rows = append(tbl.Rows, []any{r.Key, r.Posts, r.Likes, r.Comments})
	}
	for _, k := range missing(spec.Interests, seen) {
		tbl.Rows = append(tbl.Rows, []any{k, uint64(0), uint64(0), uint64(0)})
	}
	return s.finish(ctx, d, p, tbl), nil
}

// BrandShare reports each compared brand's share of total mention volume
func (s *Svc) BrandShare(ctx context.Context, in domain.Input) (domain.Result, error) {
	d, spec, p, err := s.plan("compare.brand_share", in)
	if err != nil {
		return domain.Result{}, err
	}
	rows, err := s.Repo.EntityCounts(ctx, p)
	if err != nil {
		return domain.Result{}, perr.AsWarehouse(err, d.Name)
	}

	entries := make([]aggregate.Entry, 0, len(rows))
	for _, r := range rows {
		entries = append(entries, aggregate.Entry{Key: r.Key, Count: int64(r.Posts)})
	}
	shares := aggregate.Share(entries)

	tbl := materialize.Table{Columns: []string{"brand", "posts", "share_pct"}}
	seen := make(map[string]bool, len(rows))
	for _, r := range rows {
		seen[r.Key] = true
		tbl.Rows = append(tbl.Rows, []any{r.Key, r.Posts, shares[r.Key]})
	}
	for _, k := range missing(spec.Brands, seen) {
		tbl.Rows = append(tbl.Rows, []any{k, uint64(0), float64(0)})
	}
	return s.finish(ctx, d, p, tbl), nil
}

// BrandEngagement reports the per post engagement rate each compared brand earns
func (s *Svc) BrandEngagement(ctx context.Context, in domain.Input) (domain.Result, error) {
	d, spec, p, err := s.plan("compare.brand_engagement", in)
	if err != nil {
		return domain.Result{}, err
	}
	rows, err := s.Repo.EntityEngagement(ctx, p)
	if err != nil {
		return domain.Result{}, perr.AsWarehouse(err, d.Name)
	}

	tbl := materialize.Table{Columns: []string{"brand", "posts", "likes", "comments", "avg_followers", "engagement_rate"}}
	seen := make(map[string]bool, len(rows))
	for _, r := range rows {
		seen[r.Key] = true
		tbl.Rows = append(tbl.Rows, []any{r.Key, r.Posts, r.Likes, r.Comments, r.AvgFollowers, brandRate(r)})
	}
	for _, k := range missing(spec.Brands, seen) {
		tbl.Rows = append(tbl.Rows, []any{k, uint64(0), uint64(0), uint64(0), float64(0), float64(0)})
	}
	return s.finish(ctx, d, p, tbl), nil
}

// brandRate is the mean per post interaction relative to the mean audience,
// as a percentage
func brandRate(r repo.EngagementRow) float64 {
	if r.Posts == 0 {
		return 0
	}
	followers := r.AvgFollowers
	if followers < 1 {
		followers = 1
	}
	perPost := float64(r.Likes+r.Comments) / float64(r.Posts)
	return perPost / followers * 100
}

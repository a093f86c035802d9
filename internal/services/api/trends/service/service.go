// Package service contains trends workflows
package service

import (
	"context"
	"time"

	"trendlens/internal/core/aggregate"
	"trendlens/internal/core/engine"
	"trendlens/internal/core/filterspec"
	"trendlens/internal/core/materialize"
	"trendlens/internal/core/opspec"
	"trendlens/internal/core/queryplan"
	"trendlens/internal/modkit/repokit"
	perr "trendlens/internal/platform/errors"
	"trendlens/internal/platform/logger"
	"trendlens/internal/platform/store"
	"trendlens/internal/services/api/shared"
	"trendlens/internal/services/api/trends/domain"
	"trendlens/internal/services/api/trends/repo"
)

// Service defines the trends service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the trends service
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

// New constructs a trends service
func New(q repokit.Queryer, binder repokit.Binder[repo.Repo], sink store.ObjectSink, log logger.Logger, opts ...Option) *Svc {
	if binder == nil {
		panic("trends.Service requires a non nil Repo binder")
	}
	s := &Svc{
		Repo:  repokit.MustBind(binder, q),
		sink:  sink,
		log:   log.With().Str("component", "trends").Logger(),
		nowFn: time.Now,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// plan normalizes the input and compiles a single window query
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

// planPair compiles the adjacent current and previous window queries
func (s *Svc) planPair(op string, in domain.Input) (opspec.Descriptor, filterspec.Spec, queryplan.Pair, error) {
	d, ok := opspec.Lookup(op)
	if !ok {
		return opspec.Descriptor{}, filterspec.Spec{}, queryplan.Pair{}, perr.Compilationf("unknown operation %s", op)
	}
	spec, err := filterspec.Normalize(in.Params(), d.Bounds)
	if err != nil {
		return opspec.Descriptor{}, filterspec.Spec{}, queryplan.Pair{}, err
	}
	pair, err := queryplan.CompilePair(d, spec, s.nowFn())
	if err != nil {
		return opspec.Descriptor{}, filterspec.Spec{}, queryplan.Pair{}, err
	}
	return d, spec, pair, nil
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

// entries converts keyed counts into the comparison input shape
func entries(rows []repo.KeyCount) []aggregate.Entry {
	out := make([]aggregate.Entry, 0, len(rows))
	for _, r := range rows {
		out = append(out, aggregate.Entry{Key: r.Key, Count: int64(r.Posts)})
	}
	return out
}

// comparison runs both windows concurrently and ranks the joined counts
func (s *Svc) comparison(ctx context.Context, op, keyCol string, in domain.Input) (domain.Result, error) {
	d, spec, pair, err := s.planPair(op, in)
	if err != nil {
		return domain.Result{}, err
	}
	cur, prev, err := engine.RunPair(ctx,
		func(ctx context.Context) ([]repo.KeyCount, error) { return s.Repo.KeyCounts(ctx, pair.Current) },
		func(ctx context.Context) ([]repo.KeyCount, error) { return s.Repo.KeyCounts(ctx, pair.Previous) },
	)
	if err != nil {
		return domain.Result{}, perr.AsWarehouse(err, d.Name)
	}

	cs := aggregate.Compare(entries(cur), entries(prev), spec.MinGrowthRate)
	if len(cs) > pair.Current.Limit {
		cs = cs[:pair.Current.Limit]
	}

	tbl := materialize.Table{Columns: []string{keyCol, "current", "previous", "growth", "new"}}
	for _, c := range cs {
		tbl.Rows = append(tbl.Rows, []any{c.Key, c.Current, c.Previous, c.Growth, c.New})
	}
	return s.finish(ctx, d, pair.Current, tbl), nil
}

// EmergingHashtags ranks hashtags by growth against the prior window
func (s *Svc) EmergingHashtags(ctx context.Context, in domain.Input) (domain.Result, error) {
	return s.comparison(ctx, "trends.emerging_hashtags", "tag", in)
}

// EmergingIngredients ranks ingredient mentions by growth against the prior window
func (s *Svc) EmergingIngredients(ctx context.Context, in domain.Input) (domain.Result, error) {
	return s.comparison(ctx, "trends.emerging_ingredients", "ingredient", in)
}

// RisingCategories ranks content categories by growth against the prior window
func (s *Svc) RisingCategories(ctx context.Context, in domain.Input) (domain.Result, error) {
	return s.comparison(ctx, "trends.rising_categories", "category", in)
}

// KeywordMomentum ranks caller supplied keywords by caption mention growth
func (s *Svc) KeywordMomentum(ctx context.Context, in domain.Input) (domain.Result, error) {
	if len(in.Keywords) == 0 {
		return domain.Result{}, perr.Validationf("keyword momentum requires at least one keyword")
	}
	return s.comparison(ctx, "trends.keyword_momentum", "keyword", in)
}

// HashtagHistory returns daily post volume for the requested hashtags
func (s *Svc) HashtagHistory(ctx context.Context, in domain.Input) (domain.Result, error) {
	if len(in.Hashtags) == 0 {
		return domain.Result{}, perr.Validationf("hashtag history requires at least one hashtag")
	}
	d, _, p, err := s.plan("trends.hashtag_history", in)
	if err != nil {
		return domain.Result{}, err
	}
	rows, err := s.Repo.History(ctx, p)
	if err != nil {
		return domain.Result{}, perr.AsWarehouse(err, d.Name)
	}
	tbl := materialize.Table{Columns: []string{"day", "posts"}}
	for _, r := range rows {
		tbl.Rows = append(tbl.Rows, []any{r.Day, r.Posts})
	}
	return s.finish(ctx, d, p, tbl), nil
}

// FormatShare compares format volume across windows and adds each
// format's share of the current window
func (s *Svc) FormatShare(ctx context.Context, in domain.Input) (domain.Result, error) {
	d, spec, pair, err := s.planPair("trends.format_share", in)
	if err != nil {
		return domain.Result{}, err
	}
	cur, prev, err := engine.RunPair(ctx,
		func(ctx context.Context) ([]repo.KeyCount, error) { return s.Repo.KeyCounts(ctx, pair.Current) },
		func(ctx context.Context) ([]repo.KeyCount, error) { return s.Repo.KeyCounts(ctx, pair.Previous) },
	)
	if err != nil {
		return domain.Result{}, perr.AsWarehouse(err, d.Name)
	}

	curEntries := entries(cur)
	shares := aggregate.Share(curEntries)
	cs := aggregate.Compare(curEntries, entries(prev), spec.MinGrowthRate)

	tbl := materialize.Table{Columns: []string{"format", "current", "previous", "growth", "share_pct", "new"}}
	for _, c := range cs {
		tbl.Rows = append(tbl.Rows, []any{c.Key, c.Current, c.Previous, c.Growth, shares[c.Key], c.New})
	}
	return s.finish(ctx, d, pair.Current, tbl), nil
}

// dowNames maps ClickHouse toDayOfWeek output, Monday first
var dowNames = [7]string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

// WeeklySeasonality returns post volume per day of week with every day
// present even when it saw no posts
func (s *Svc) WeeklySeasonality(ctx context.Context, in domain.Input) (domain.Result, error) {
	d, _, p, err := s.plan("trends.weekly_seasonality", in)
	if err != nil {
		return domain.Result{}, err
	}
	rows, err := s.Repo.Seasonality(ctx, p)
	if err != nil {
		return domain.Result{}, perr.AsWarehouse(err, d.Name)
	}

	var counts [7]uint64
	for _, r := range rows {
		if r.Dow >= 1 && r.Dow <= 7 {
			counts[r.Dow-1] = r.Posts
		}
	}
	tbl := materialize.Table{Columns: []string{"day_of_week", "posts"}}
	for i, name := range dowNames {
		tbl.Rows = append(tbl.Rows, []any{name, counts[i]})
	}
	return s.finish(ctx, d, p, tbl), nil
}

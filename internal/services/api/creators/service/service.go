// Package service contains creators workflows
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
	"trendlens/internal/services/api/creators/domain"
	"trendlens/internal/services/api/creators/repo"
	"trendlens/internal/services/api/shared"
)

// enrichLimit bounds the imagery fan out per invocation
const enrichLimit = 8

// Service defines the creators service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the creators service
type Svc struct {
	Repo    repo.Repo
	sink    store.ObjectSink
	log     logger.Logger
	imagery domain.ImageryPort
	nowFn   func() time.Time
}

// Option mutates the service during construction
type Option func(*Svc)

// WithImagery overrides the imagery port
func WithImagery(p domain.ImageryPort) Option { return func(s *Svc) { s.imagery = p } }

// WithNow overrides the clock, tests only
func WithNow(fn func() time.Time) Option { return func(s *Svc) { s.nowFn = fn } }

// New constructs a creators service
func New(q repokit.Queryer, binder repokit.Binder[repo.Repo], sink store.ObjectSink, log logger.Logger, opts ...Option) *Svc {
	if binder == nil {
		panic("creators.Service requires a non nil Repo binder")
	}
	s := &Svc{
		Repo:    repokit.MustBind(binder, q),
		sink:    sink,
		log:     log.With().Str("component", "creators").Logger(),
		imagery: cdnImagery{},
		nowFn:   time.Now,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// cdnImagery derives a deterministic thumbnail location
// the real provider is injected by the dispatcher when one exists
type cdnImagery struct{}

func (cdnImagery) Thumbnail(_ context.Context, creatorID string) (string, error) {
	return "https://cdn.trendlens.dev/thumbs/" + creatorID + ".jpg", nil
}

// plan normalizes the input and compiles the operation's query
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

// Search finds creators matching the filter set ranked by follower count
func (s *Svc) Search(ctx context.Context, in domain.Input) (domain.Result, error) {
	d, _, p, err := s.plan("creators.search", in)
	if err != nil {
		return domain.Result{}, err
	}
	rows, err := s.Repo.Search(ctx, p)
	if err != nil {
		return domain.Result{}, perr.AsWarehouse(err, d.Name)
	}
	tbl := materialize.Table{
		Columns: []string{"creator_id", "handle", "display_name", "country", "tier", "followers", "engagement_rate"},
	}
	for _, r := range rows {
		tbl.Rows = append(tbl.Rows, []any{r.CreatorID, r.Handle, r.DisplayName, r.Country, r.Tier, r.Followers, r.EngagementRate})
	}
	return s.finish(ctx, d, p, tbl), nil
}

// Profile returns the full projection for a narrow match
func (s *Svc) Profile(ctx context.Context, in domain.Input) (domain.Result, error) {
	d, _, p, err := s.plan("creators.profile", in)
	if err != nil {
		return domain.Result{}, err
	}
	rows, err := s.Repo.Profile(ctx, p)
	if err != nil {
		return domain.Result{}, perr.AsWarehouse(err, d.Name)
	}
	tbl := materialize.Table{
		Columns: []string{
			"creator_id", "handle", "display_name", "country", "gender", "age_bracket",
			"interests", "tier", "followers", "avg_likes", "avg_comments", "follower_growth",
		},
	}
	for _, r := range rows {
		tbl.Rows = append(tbl.Rows, []any{
			r.CreatorID, r.Handle, r.DisplayName, r.Country, r.Gender, r.AgeBracket,
			r.Interests, r.Tier, r.Followers, r.AvgLikes, r.AvgComments, r.FollowerGrowth,
		})
	}
	return s.finish(ctx, d, p, tbl), nil
}

// PercentileStats reduces the matched cohort to per metric percentile rows
func (s *Svc) PercentileStats(ctx context.Context, in domain.Input) (domain.Result, error) {
	d, _, p, err := s.plan("creators.percentile_stats", in)
	if err != nil {
		return domain.Result{}, err
	}
	rows, err := s.Repo.Metrics(ctx, p)
	if err != nil {
		return domain.Result{}, perr.AsWarehouse(err, d.Name)
	}

	metrics := []struct {
		name string
		vals []float64
	}{
		{name: "followers"}, {name: "avg_likes"}, {name: "avg_comments"}, {name: "engagement_rate"},
	}
	for _, r := range rows {
		metrics[0].vals = append(metrics[0].vals, float64(r.Followers))
		metrics[1].vals = append(metrics[1].vals, r.AvgLikes)
		metrics[2].vals = append(metrics[2].vals, r.AvgComments)
		metrics[3].vals = append(metrics[3].vals, r.EngagementRate)
	}

	ps := []int{10, 25, 50, 75, 90}
	tbl := materialize.Table{
		Columns: []string{"metric", "count", "mean", "p10", "p25", "p50", "p75", "p90"},
	}
	for _, m := range metrics {
		q := aggregate.Percentiles(m.vals, ps)
		tbl.Rows = append(tbl.Rows, []any{
			m.name, len(m.vals), aggregate.Mean(m.vals), q[10], q[25], q[50], q[75], q[90],
		})
	}
	return s.finish(ctx, d, p, tbl), nil
}

// EngagementDistribution buckets the cohort's engagement rates
func (s *Svc) EngagementDistribution(ctx context.Context, in domain.Input) (domain.Result, error) {
	d, _, p, err := s.plan("creators.engagement_distribution", in)
	if err != nil {
		return domain.Result{}, err
	}
	rates, err := s.Repo.EngagementRates(ctx, p)
	if err != nil {
		return domain.Result{}, perr.AsWarehouse(err, d.Name)
	}

	const buckets = 10
	const width = 1.0
	counts := aggregate.Bucket(rates, 0, width, buckets)
	tbl := materialize.Table{Columns: []string{"bucket", "from", "to", "creators"}}
	for i := 0; i < buckets; i++ {
		tbl.Rows = append(tbl.Rows, []any{i, float64(i) * width, float64(i+1) * width, counts[i]})
	}
	tbl.Rows = append(tbl.Rows, []any{buckets, float64(buckets) * width, "", counts[buckets]})
	return s.finish(ctx, d, p, tbl), nil
}

// AudienceGeo counts creators per country with zero fill for requested codes
func (s *Svc) AudienceGeo(ctx context.Context, in domain.Input) (domain.Result, error) {
	d, spec, p, err := s.plan("creators.audience_geo", in)
	if err != nil {
		return domain.Result{}, err
	}
	rows, err := s.Repo.GeoCounts(ctx, p)
	if err != nil {
		return domain.Result{}, perr.AsWarehouse(err, d.Name)
	}

	tbl := materialize.Table{Columns: []string{"country", "creators"}}
	if len(spec.Countries) > 0 {
		entries := make([]aggregate.Entry, 0, len(rows))
		for _, r := range rows {
			entries = append(entries, aggregate.Entry{Key: r.Country, Count: int64(r.Creators)})
		}
		for _, e := range aggregate.ZeroFill(spec.Countries, entries) {
			tbl.Rows = append(tbl.Rows, []any{e.Key, e.Count})
		}
	} else {
		for _, r := range rows {
			tbl.Rows = append(tbl.Rows, []any{r.Country, r.Creators})
		}
	}
	return s.finish(ctx, d, p, tbl), nil
}

// Demographics counts creators per gender and age bracket
func (s *Svc) Demographics(ctx context.Context, in domain.Input) (domain.Result, error) {
	d, _, p, err := s.plan("creators.demographics", in)
	if err != nil {
		return domain.Result{}, err
	}
	rows, err := s.Repo.Demographics(ctx, p)
	if err != nil {
		return domain.Result{}, perr.AsWarehouse(err, d.Name)
	}
	tbl := materialize.Table{Columns: []string{"gender", "age_bracket", "creators"}}
	for _, r := range rows {
		tbl.Rows = append(tbl.Rows, []any{r.Gender, r.AgeBracket, r.Creators})
	}
	return s.finish(ctx, d, p, tbl), nil
}

// GrowthRanking ranks creators by follower growth
// min_growth_rate filters inclusively when supplied
func (s *Svc) GrowthRanking(ctx context.Context, in domain.Input) (domain.Result, error) {
	d, spec, p, err := s.plan("creators.growth_ranking", in)
	if err != nil {
		return domain.Result{}, err
	}
	rows, err := s.Repo.Growth(ctx, p)
	if err != nil {
		return domain.Result{}, perr.AsWarehouse(err, d.Name)
	}
	tbl := materialize.Table{
		Columns: []string{"creator_id", "handle", "country", "tier", "followers", "follower_growth"},
	}
	for _, r := range rows {
		if spec.MinGrowthRate > 0 && r.FollowerGrowth < spec.MinGrowthRate {
			continue
		}
		tbl.Rows = append(tbl.Rows, []any{r.CreatorID, r.Handle, r.Country, r.Tier, r.Followers, r.FollowerGrowth})
	}
	return s.finish(ctx, d, p, tbl), nil
}

// TierBreakdown aggregates the cohort per collaboration tier
// Requested tiers absent from the result still appear with zero metrics
func (s *Svc) TierBreakdown(ctx context.Context, in domain.Input) (domain.Result, error) {
	d, spec, p, err := s.plan("creators.tier_breakdown", in)
	if err != nil {
		return domain.Result{}, err
	}
	rows, err := s.Repo.Tiers(ctx, p)
	if err != nil {
		return domain.Result{}, perr.AsWarehouse(err, d.Name)
	}

	want := spec.Tiers
	if len(want) == 0 {
		want = filterspec.Tiers
	}
	byTier := make(map[string]repo.TierRow, len(rows))
	for _, r := range rows {
		byTier[r.Tier] = r
	}
	tbl := materialize.Table{Columns: []string{"tier", "creators", "avg_followers", "avg_engagement"}}
	for _, tier := range want {
		r := byTier[tier]
		tbl.Rows = append(tbl.Rows, []any{tier, r.Creators, r.AvgFollowers, r.AvgEngagement})
	}
	return s.finish(ctx, d, p, tbl), nil
}

// BeautySearch finds beauty specialists via the specialized profile table
func (s *Svc) BeautySearch(ctx context.Context, in domain.Input) (domain.Result, error) {
	d, _, p, err := s.plan("creators.beauty_search", in)
	if err != nil {
		return domain.Result{}, err
	}
	rows, err := s.Repo.Beauty(ctx, p)
	if err != nil {
		return domain.Result{}, perr.AsWarehouse(err, d.Name)
	}
	tbl := materialize.Table{
		Columns: []string{"creator_id", "handle", "country", "skin_type", "personal_color", "brand_tier", "followers"},
	}
	for _, r := range rows {
		tbl.Rows = append(tbl.Rows, []any{r.CreatorID, r.Handle, r.Country, r.SkinType, r.PersonalColor, r.BrandTier, r.Followers})
	}
	return s.finish(ctx, d, p, tbl), nil
}

// Similar finds creators sharing the supplied interest set
func (s *Svc) Similar(ctx context.Context, in domain.Input) (domain.Result, error) {
	if len(in.Interests) == 0 {
		return domain.Result{}, perr.Validationf("similar creators requires at least one interest")
	}
	d, _, p, err := s.plan("creators.similar", in)
	if err != nil {
		return domain.Result{}, err
	}
	rows, err := s.Repo.Similar(ctx, p)
	if err != nil {
		return domain.Result{}, perr.AsWarehouse(err, d.Name)
	}
	tbl := materialize.Table{
		Columns: []string{"creator_id", "handle", "country", "interests", "tier", "followers", "engagement_rate"},
	}
	for _, r := range rows {
		tbl.Rows = append(tbl.Rows, []any{r.CreatorID, r.Handle, r.Country, r.Interests, r.Tier, r.Followers, r.EngagementRate})
	}
	return s.finish(ctx, d, p, tbl), nil
}

// ContentSummary aggregates the cohort's content per category
func (s *Svc) ContentSummary(ctx context.Context, in domain.Input) (domain.Result, error) {
	d, _, p, err := s.plan("creators.content_summary", in)
	if err != nil {
		return domain.Result{}, err
	}
	rows, err := s.Repo.ContentSummary(ctx, p)
	if err != nil {
		return domain.Result{}, perr.AsWarehouse(err, d.Name)
	}
	tbl := materialize.Table{Columns: []string{"category", "posts", "likes", "comments"}}
	for _, r := range rows {
		tbl.Rows = append(tbl.Rows, []any{r.Category, r.Posts, r.Likes, r.Comments})
	}
	return s.finish(ctx, d, p, tbl), nil
}

// RecentPosts lists recent content with bounded imagery enrichment
// A failed thumbnail fetch degrades its row, never the batch
func (s *Svc) RecentPosts(ctx context.Context, in domain.Input) (domain.Result, error) {
	d, _, p, err := s.plan("creators.recent_posts", in)
	if err != nil {
		return domain.Result{}, err
	}
	rows, err := s.Repo.RecentPosts(ctx, p)
	if err != nil {
		return domain.Result{}, perr.AsWarehouse(err, d.Name)
	}

	failed := engine.Enrich(ctx, rows, enrichLimit, func(ctx context.Context, item *repo.PostRow) error {
		url, err := s.imagery.Thumbnail(ctx, item.CreatorID)
		if err != nil {
			return err
		}
		item.Thumbnail = url
		return nil
	})

	tbl := materialize.Table{
		Columns: []string{"creator_id", "event_date", "category", "format", "caption", "likes", "comments", "views", "thumbnail"},
	}
	for _, r := range rows {
		tbl.Rows = append(tbl.Rows, []any{
			r.CreatorID, r.EventDate, r.Category, r.Format, r.Caption, r.Likes, r.Comments, r.Views, r.Thumbnail,
		})
	}
	return s.finish(ctx, d, p, tbl, engine.PartialErr(failed, len(rows))), nil
}

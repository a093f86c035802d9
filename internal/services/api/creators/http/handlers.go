// Package http provides http transport for creators
package http

import (
	stdhttp "net/http"

	"trendlens/internal/modkit/httpkit"
	"trendlens/internal/services/api/creators/domain"
	svc "trendlens/internal/services/api/creators/service"
)

// Register mounts creators endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	httpkit.PostJSON[domain.Input](r, "/search", h.search)
	httpkit.PostJSON[domain.Input](r, "/profile", h.profile)
	httpkit.PostJSON[domain.Input](r, "/percentiles", h.percentiles)
	httpkit.PostJSON[domain.Input](r, "/engagement", h.engagement)
	httpkit.PostJSON[domain.Input](r, "/geo", h.geo)
	httpkit.PostJSON[domain.Input](r, "/demographics", h.demographics)
	httpkit.PostJSON[domain.Input](r, "/growth", h.growth)
	httpkit.PostJSON[domain.Input](r, "/tiers", h.tiers)
	httpkit.PostJSON[domain.Input](r, "/beauty", h.beauty)
	httpkit.PostJSON[domain.Input](r, "/similar", h.similar)
	httpkit.PostJSON[domain.Input](r, "/content", h.content)
	httpkit.PostJSON[domain.Input](r, "/posts", h.posts)
}

type handlers struct{ svc svc.Service }

// @Summary Search creators by filter set
// @Tags Creators
// @Accept json
// @Produce json
// @Param payload body domain.Input true "Filters"
// @Success 200 {object} domain.Result "ok"
// @Router /creators/search [post]
func (h *handlers) search(r *stdhttp.Request, in domain.Input) (any, error) {
	return h.svc.Search(r.Context(), in)
}

// @Summary Full profile projection
// @Tags Creators
// @Accept json
// @Produce json
// @Param payload body domain.Input true "Filters"
// @Success 200 {object} domain.Result "ok"
// @Router /creators/profile [post]
func (h *handlers) profile(r *stdhttp.Request, in domain.Input) (any, error) {
	return h.svc.Profile(r.Context(), in)
}

// @Summary Percentile statistics for the matched cohort
// @Tags Creators
// @Accept json
// @Produce json
// @Param payload body domain.Input true "Filters"
// @Success 200 {object} domain.Result "ok"
// @Router /creators/percentiles [post]
func (h *handlers) percentiles(r *stdhttp.Request, in domain.Input) (any, error) {
	return h.svc.PercentileStats(r.Context(), in)
}

// @Summary Engagement rate distribution
// @Tags Creators
// @Accept json
// @Produce json
// @Param payload body domain.Input true "Filters"
// @Success 200 {object} domain.Result "ok"
// @Router /creators/engagement [post]
func (h *handlers) engagement(r *stdhttp.Request, in domain.Input) (any, error) {
	return h.svc.EngagementDistribution(r.Context(), in)
}

// @Summary Audience geography breakdown
// @Tags Creators
// @Accept json
// @Produce json
// @Param payload body domain.Input true "Filters"
// @Success 200 {object} domain.Result "ok"
// @Router /creators/geo [post]
func (h *handlers) geo(r *stdhttp.Request, in domain.Input) (any, error) {
	return h.svc.AudienceGeo(r.Context(), in)
}

// @Summary Demographic breakdown
// @Tags Creators
// @Accept json
// @Produce json
// @Param payload body domain.Input true "Filters"
// @Success 200 {object} domain.Result "ok"
// @Router /creators/demographics [post]
func (h *handlers) demographics(r *stdhttp.Request, in domain.Input) (any, error) {
	return h.svc.Demographics(r.Context(), in)
}

// @Summary Creators ranked by follower growth
// @Tags Creators
// @Accept json
// @Produce json
// @Param payload body domain.Input true "Filters"
// @Success 200 {object} domain.Result "ok"
// @Router /creators/growth [post]
func (h *handlers) growth(r *stdhttp.Request, in domain.Input) (any, error) {
	return h.svc.GrowthRanking(r.Context(), in)
}

// @Summary Collaboration tier breakdown
// @Tags Creators
// @Accept json
// @Produce json
// @Param payload body domain.Input true "Filters"
// @Success 200 {object} domain.Result "ok"
// @Router /creators/tiers [post]
func (h *handlers) tiers(r *stdhttp.Request, in domain.Input) (any, error) {
	return h.svc.TierBreakdown(r.Context(), in)
}

// @Summary Beauty specialist search
// @Tags Creators
// @Accept json
// @Produce json
// @Param payload body domain.Input true "Filters"
// @Success 200 {object} domain.Result "ok"
// @Router /creators/beauty [post]
func (h *handlers) beauty(r *stdhttp.Request, in domain.Input) (any, error) {
	return h.svc.BeautySearch(r.Context(), in)
}

// @Summary Similar creators by interest overlap
// @Tags Creators
// @Accept json
// @Produce json
// @Param payload body domain.Input true "Filters"
// @Success 200 {object} domain.Result "ok"
// @Router /creators/similar [post]
func (h *handlers) similar(r *stdhttp.Request, in domain.Input) (any, error) {
	return h.svc.Similar(r.Context(), in)
}

// @Summary Content summary by category
// @Tags Creators
// @Accept json
// @Produce json
// @Param payload body domain.Input true "Filters"
// @Success 200 {object} domain.Result "ok"
// @Router /creators/content [post]
func (h *handlers) content(r *stdhttp.Request, in domain.Input) (any, error) {
	return h.svc.ContentSummary(r.Context(), in)
}

// @Summary Recent posts with imagery enrichment
// @Tags Creators
// @Accept json
// @Produce json
// @Param payload body domain.Input true "Filters"
// @Success 200 {object} domain.Result "ok"
// @Router /creators/posts [post]
func (h *handlers) posts(r *stdhttp.Request, in domain.Input) (any, error) {
	return h.svc.RecentPosts(r.Context(), in)
}

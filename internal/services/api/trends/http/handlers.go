// Package http provides http transport for trends
package http

import (
	stdhttp "net/http"

	"trendlens/internal/modkit/httpkit"
	"trendlens/internal/services/api/trends/domain"
	svc "trendlens/internal/services/api/trends/service"
)

// Register mounts trends endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	httpkit.PostJSON[domain.Input](r, "/hashtags", h.hashtags)
	httpkit.PostJSON[domain.Input](r, "/ingredients", h.ingredients)
	httpkit.PostJSON[domain.Input](r, "/history", h.history)
	httpkit.PostJSON[domain.Input](r, "/formats", h.formats)
	httpkit.PostJSON[domain.Input](r, "/categories", h.categories)
	httpkit.PostJSON[domain.Input](r, "/keywords", h.keywords)
	httpkit.PostJSON[domain.Input](r, "/seasonality", h.seasonality)
}

type handlers struct{ svc svc.Service }

// @Summary Emerging hashtags ranked by window over window growth
// @Tags Trends
// @Accept json
// @Produce json
// @Param payload body domain.Input true "Filters"
// @Success 200 {object} domain.Result "ok"
// @Router /trends/hashtags [post]
func (h *handlers) hashtags(r *stdhttp.Request, in domain.Input) (any, error) {
	return h.svc.EmergingHashtags(r.Context(), in)
}

// @Summary Emerging ingredient mentions ranked by growth
// @Tags Trends
// @Accept json
// @Produce json
// @Param payload body domain.Input true "Filters"
// @Success 200 {object} domain.Result "ok"
// @Router /trends/ingredients [post]
func (h *handlers) ingredients(r *stdhttp.Request, in domain.Input) (any, error) {
	return h.svc.EmergingIngredients(r.Context(), in)
}

// @Summary Daily post volume for the requested hashtags
// @Tags Trends
// @Accept json
// @Produce json
// @Param payload body domain.Input true "Filters"
// @Success 200 {object} domain.Result "ok"
// @Router /trends/history [post]
func (h *handlers) history(r *stdhttp.Request, in domain.Input) (any, error) {
	return h.svc.HashtagHistory(r.Context(), in)
}

// @Summary Format volume comparison with current window share
// @Tags Trends
// @Accept json
// @Produce json
// @Param payload body domain.Input true "Filters"
// @Success 200 {object} domain.Result "ok"
// @Router /trends/formats [post]
func (h *handlers) formats(r *stdhttp.Request, in domain.Input) (any, error) {
	return h.svc.FormatShare(r.Context(), in)
}

// @Summary Content categories ranked by growth
// @Tags Trends
// @Accept json
// @Produce json
// @Param payload body domain.Input true "Filters"
// @Success 200 {object} domain.Result "ok"
// @Router /trends/categories [post]
func (h *handlers) categories(r *stdhttp.Request, in domain.Input) (any, error) {
	return h.svc.RisingCategories(r.Context(), in)
}

// @Summary Caption keyword momentum across adjacent windows
// @Tags Trends
// @Accept json
// @Produce json
// @Param payload body domain.Input true "Filters"
// @Success 200 {object} domain.Result "ok"
// @Router /trends/keywords [post]
func (h *handlers) keywords(r *stdhttp.Request, in domain.Input) (any, error) {
	return h.svc.KeywordMomentum(r.Context(), in)
}

// @Summary Post volume by day of week
// @Tags Trends
// @Accept json
// @Produce json
// @Param payload body domain.Input true "Filters"
// @Success 200 {object} domain.Result "ok"
// @Router /trends/seasonality [post]
func (h *handlers) seasonality(r *stdhttp.Request, in domain.Input) (any, error) {
	return h.svc.WeeklySeasonality(r.Context(), in)
}

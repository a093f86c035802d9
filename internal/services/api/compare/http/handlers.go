// Package http provides http transport for compare
package http

import (
	stdhttp "net/http"

	"trendlens/internal/modkit/httpkit"
	"trendlens/internal/services/api/compare/domain"
	svc "trendlens/internal/services/api/compare/service"
)

// Register mounts compare endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	httpkit.PostJSON[domain.Input](r, "/regions", h.regions)
	httpkit.PostJSON[domain.Input](r, "/brands", h.brands)
	httpkit.PostJSON[domain.Input](r, "/tiers", h.tiers)
	httpkit.PostJSON[domain.Input](r, "/categories", h.categories)
	httpkit.PostJSON[domain.Input](r, "/brand-share", h.brandShare)
	httpkit.PostJSON[domain.Input](r, "/brand-engagement", h.brandEngagement)
}

type handlers struct{ svc svc.Service }

// @Summary Compare post volume across audience countries
// @Tags Compare
// @Accept json
// @Produce json
// @Param payload body domain.Input true "Filters"
// @Success 200 {object} domain.Result "ok"
// @Router /compare/regions [post]
func (h *handlers) regions(r *stdhttp.Request, in domain.Input) (any, error) {
	return h.svc.Regions(r.Context(), in)
}

// @Summary Compare post volume across brand mentions
// @Tags Compare
// @Accept json
// @Produce json
// @Param payload body domain.Input true "Filters"
// @Success 200 {object} domain.Result "ok"
// @Router /compare/brands [post]
func (h *handlers) brands(r *stdhttp.Request, in domain.Input) (any, error) {
	return h.svc.Brands(r.Context(), in)
}

// @Summary Compare post volume across collaboration tiers
// @Tags Compare
// @Accept json
// @Produce json
// @Param payload body domain.Input true "Filters"
// @Success 200 {object} domain.Result "ok"
// @Router /compare/tiers [post]
func (h *handlers) tiers(r *stdhttp.Request, in domain.Input) (any, error) {
	return h.svc.Tiers(r.Context(), in)
}

// @Summary Compare post volume across creator interests
// @Tags Compare
// @Accept json
// @Produce json
// @Param payload body domain.Input true "Filters"
// @Success 200 {object} domain.Result "ok"
// @Router /compare/categories [post]
func (h *handlers) categories(r *stdhttp.Request, in domain.Input) (any, error) {
	return h.svc.Categories(r.Context(), in)
}

// @Summary Share of mention volume per compared brand
// @Tags Compare
// @Accept json
// @Produce json
// @Param payload body domain.Input true "Filters"
// @Success 200 {object} domain.Result "ok"
// @Router /compare/brand-share [post]
func (h *handlers) brandShare(r *stdhttp.Request, in domain.Input) (any, error) {
	return h.svc.BrandShare(r.Context(), in)
}

// @Summary Engagement rate per compared brand
// @Tags Compare
// @Accept json
// @Produce json
// @Param payload body domain.Input true "Filters"
// @Success 200 {object} domain.Result "ok"
// @Router /compare/brand-engagement [post]
func (h *handlers) brandEngagement(r *stdhttp.Request, in domain.Input) (any, error) {
	return h.svc.BrandEngagement(r.Context(), in)
}

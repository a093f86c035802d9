package module

import (
	"context"

	"trendlens/internal/services/api/compare/domain"
	comparesvc "trendlens/internal/services/api/compare/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

type adaptComparePort struct{ svc comparesvc.Service }

// Regions compares post volume across audience countries
func (a adaptComparePort) Regions(ctx context.Context, in domain.Input) (domain.Result, error) {
	return a.svc.Regions(ctx, in)
}

// Brands compares post volume across brand mentions
func (a adaptComparePort) Brands(ctx context.Context, in domain.Input) (domain.Result, error) {
	return a.svc.Brands(ctx, in)
}

// Tiers compares post volume across collaboration tiers
func (a adaptComparePort) Tiers(ctx context.Context, in domain.Input) (domain.Result, error) {
	return a.svc.Tiers(ctx, in)
}

// Categories compares post volume across creator interests
func (a adaptComparePort) Categories(ctx context.Context, in domain.Input) (domain.Result, error) {
	return a.svc.Categories(ctx, in)
}

// BrandShare reports per brand share of mention volume
func (a adaptComparePort) BrandShare(ctx context.Context, in domain.Input) (domain.Result, error) {
	return a.svc.BrandShare(ctx, in)
}

// BrandEngagement reports per brand engagement rate
func (a adaptComparePort) BrandEngagement(ctx context.Context, in domain.Input) (domain.Result, error) {
	return a.svc.BrandEngagement(ctx, in)
}

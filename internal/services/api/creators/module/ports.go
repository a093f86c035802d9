package module

import (
	"context"

	"trendlens/internal/services/api/creators/domain"
	creatorssvc "trendlens/internal/services/api/creators/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

type adaptCreatorsPort struct{ svc creatorssvc.Service }

// Search runs the creator search operation
func (a adaptCreatorsPort) Search(ctx context.Context, in domain.Input) (domain.Result, error) {
	return a.svc.Search(ctx, in)
}

// Profile runs the full profile projection
func (a adaptCreatorsPort) Profile(ctx context.Context, in domain.Input) (domain.Result, error) {
	return a.svc.Profile(ctx, in)
}

// PercentileStats runs cohort percentile statistics
func (a adaptCreatorsPort) PercentileStats(ctx context.Context, in domain.Input) (domain.Result, error) {
	return a.svc.PercentileStats(ctx, in)
}

// EngagementDistribution runs the engagement rate histogram
func (a adaptCreatorsPort) EngagementDistribution(ctx context.Context, in domain.Input) (domain.Result, error) {
	return a.svc.EngagementDistribution(ctx, in)
}

// AudienceGeo runs the audience geography breakdown
func (a adaptCreatorsPort) AudienceGeo(ctx context.Context, in domain.Input) (domain.Result, error) {
	return a.svc.AudienceGeo(ctx, in)
}

// Demographics runs the demographic breakdown
func (a adaptCreatorsPort) Demographics(ctx context.Context, in domain.Input) (domain.Result, error) {
	return a.svc.Demographics(ctx, in)
}

// GrowthRanking ranks creators by follower growth
func (a adaptCreatorsPort) GrowthRanking(ctx context.Context, in domain.Input) (domain.Result, error) {
	return a.svc.GrowthRanking(ctx, in)
}

// TierBreakdown runs the collaboration tier breakdown
func (a adaptCreatorsPort) TierBreakdown(ctx context.Context, in domain.Input) (domain.Result, error) {
	return a.svc.TierBreakdown(ctx, in)
}

// BeautySearch runs the beauty specialist search
func (a adaptCreatorsPort) BeautySearch(ctx context.Context, in domain.Input) (domain.Result, error) {
	return a.svc.BeautySearch(ctx, in)
}

// Similar finds creators by interest overlap
func (a adaptCreatorsPort) Similar(ctx context.Context, in domain.Input) (domain.Result, error) {
	return a.svc.Similar(ctx, in)
}

// ContentSummary runs the content summary by category
func (a adaptCreatorsPort) ContentSummary(ctx context.Context, in domain.Input) (domain.Result, error) {
	return a.svc.ContentSummary(ctx, in)
}

// RecentPosts runs recent post retrieval with imagery enrichment
func (a adaptCreatorsPort) RecentPosts(ctx context.Context, in domain.Input) (domain.Result, error) {
	return a.svc.RecentPosts(ctx, in)
}

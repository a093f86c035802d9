package domain

import "context"

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	Search(ctx context.Context, in Input) (Result, error)
	Profile(ctx context.Context, in Input) (Result, error)
	PercentileStats(ctx context.Context, in Input) (Result, error)
	EngagementDistribution(ctx context.Context, in Input) (Result, error)
	AudienceGeo(ctx context.Context, in Input) (Result, error)
	Demographics(ctx context.Context, in Input) (Result, error)
	GrowthRanking(ctx context.Context, in Input) (Result, error)
	TierBreakdown(ctx context.Context, in Input) (Result, error)
	BeautySearch(ctx context.Context, in Input) (Result, error)
	Similar(ctx context.Context, in Input) (Result, error)
	ContentSummary(ctx context.Context, in Input) (Result, error)
	RecentPosts(ctx context.Context, in Input) (Result, error)
}

// ImageryPort resolves representative imagery for a creator
// Failures degrade single rows, never the batch
type ImageryPort interface {
	Thumbnail(ctx context.Context, creatorID string) (string, error)
}

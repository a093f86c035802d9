package domain

import "context"

// ServicePort exposes the compare operations to other modules
type ServicePort interface {
	Regions(ctx context.Context, in Input) (Result, error)
	Brands(ctx context.Context, in Input) (Result, error)
	Tiers(ctx context.Context, in Input) (Result, error)
	Categories(ctx context.Context, in Input) (Result, error)
	BrandShare(ctx context.Context, in Input) (Result, error)
	BrandEngagement(ctx context.Context, in Input) (Result, error)
}

package domain

import "context"

// ServicePort exposes the trends operations to other modules
type ServicePort interface {
	EmergingHashtags(ctx context.Context, in Input) (Result, error)
	EmergingIngredients(ctx context.Context, in Input) (Result, error)
	HashtagHistory(ctx context.Context, in Input) (Result, error)
	FormatShare(ctx context.Context, in Input) (Result, error)
	RisingCategories(ctx context.Context, in Input) (Result, error)
	KeywordMomentum(ctx context.Context, in Input) (Result, error)
	WeeklySeasonality(ctx context.Context, in Input) (Result, error)
}

package module

import (
	"context"

	"trendlens/internal/services/api/trends/domain"
	trendssvc "trendlens/internal/services/api/trends/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

type adaptTrendsPort struct{ svc trendssvc.Service }

// EmergingHashtags ranks hashtags by window over window growth
func (a adaptTrendsPort) EmergingHashtags(ctx context.Context, in domain.Input) (domain.Result, error) {
	return a.svc.EmergingHashtags(ctx, in)
}

// EmergingIngredients ranks ingredient mentions by growth
func (a adaptTrendsPort) EmergingIngredients(ctx context.Context, in domain.Input) (domain.Result, error) {
	return a.svc.EmergingIngredients(ctx, in)
}

// HashtagHistory returns daily volume for the requested hashtags
func (a adaptTrendsPort) HashtagHistory(ctx context.Context, in domain.Input) (domain.Result, error) {
	return a.svc.HashtagHistory(ctx, in)
}

// FormatShare compares format volume across windows
func (a adaptTrendsPort) FormatShare(ctx context.Context, in domain.Input) (domain.Result, error) {
	return a.svc.FormatShare(ctx, in)
}

// RisingCategories ranks categories by growth
func (a adaptTrendsPort) RisingCategories(ctx context.Context, in domain.Input) (domain.Result, error) {
	return a.svc.RisingCategories(ctx, in)
}

// KeywordMomentum ranks caller keywords by caption mention growth
func (a adaptTrendsPort) KeywordMomentum(ctx context.Context, in domain.Input) (domain.Result, error) {
	return a.svc.KeywordMomentum(ctx, in)
}

// WeeklySeasonality returns post volume by day of week
func (a adaptTrendsPort) WeeklySeasonality(ctx context.Context, in domain.Input) (domain.Result, error) {
	return a.svc.WeeklySeasonality(ctx, in)
}

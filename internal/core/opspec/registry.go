package opspec

import "trendlens/internal/core/filterspec"

// bounds is shorthand for the common clamp shape
func bounds(defWin, maxWin, defLimit, maxLimit int) filterspec.Bounds {
	return filterspec.Bounds{
		DefaultWindowDays: defWin,
		MaxWindowDays:     maxWin,
		DefaultLimit:      defLimit,
		MaxLimit:          maxLimit,
	}
}

func compare(b filterspec.Bounds, set filterspec.CompareSet) filterspec.Bounds {
	b.Compare = set
	b.MinCompare = 2
	return b
}

func init() {
	// creators: discovery and profile analytics over the base tables

	register(Descriptor{
		Name:         "creators.search",
		Agg:          KindSearch,
		NeedsMetrics: true,
		Select: []string{
			"p.creator_id AS creator_id", "p.handle AS handle", "p.display_name AS display_name",
			"p.country AS country", "p.tier AS tier",
			"m.followers AS followers", "m.engagement_rate AS engagement_rate",
		},
		OrderBy: []string{"followers DESC", "creator_id ASC"},
		Bounds:  bounds(30, 90, 100, 500),
		Preview: 20,
	})

	register(Descriptor{
		Name:         "creators.profile",
		Agg:          KindSearch,
		NeedsMetrics: true,
		Select: []string{
			"p.creator_id AS creator_id", "p.handle AS handle", "p.display_name AS display_name",
			"p.country AS country", "p.gender AS gender", "p.age_bracket AS age_bracket",
			"p.interests AS interests", "p.tier AS tier",
			"m.followers AS followers", "m.avg_likes AS avg_likes", "m.avg_comments AS avg_comments",
			"m.follower_growth AS follower_growth",
		},
		OrderBy: []string{"followers DESC", "creator_id ASC"},
		Bounds:  bounds(30, 90, 1, 20),
		Preview: 20,
	})

	register(Descriptor{
		Name:         "creators.percentile_stats",
		Agg:          KindWindow,
		NeedsMetrics: true,
		Select: []string{
			"m.followers AS followers", "m.avg_likes AS avg_likes",
			"m.avg_comments AS avg_comments", "m.engagement_rate AS engagement_rate",
		},
		OrderBy: []string{"p.creator_id ASC"},
		Bounds:  bounds(30, 365, 5000, 10000),
		Preview: 100,
	})

	register(Descriptor{
		Name:         "creators.engagement_distribution",
		Agg:          KindWindow,
		NeedsMetrics: true,
		Select: []string{
			"m.engagement_rate AS engagement_rate",
		},
		OrderBy: []string{"p.creator_id ASC"},
		Bounds:  bounds(30, 365, 5000, 10000),
		Preview: 100,
	})

	register(Descriptor{
		Name: "creators.audience_geo",
		Agg:  KindWindow,
		Select: []string{
			"p.country AS country", "count() AS creators",
		},
		GroupBy: []string{"p.country"},
		OrderBy: []string{"creators DESC", "country ASC"},
		Key:     "country",
		Bounds:  bounds(30, 365, 100, 300),
		Preview: 50,
	})

	register(Descriptor{
		Name: "creators.demographics",
		Agg:  KindWindow,
		Select: []string{
			"p.gender AS gender", "p.age_bracket AS age_bracket", "count() AS creators",
		},
		GroupBy: []string{"p.gender", "p.age_bracket"},
		OrderBy: []string{"creators DESC", "gender ASC", "age_bracket ASC"},
		Bounds:  bounds(30, 365, 100, 300),
		Preview: 50,
	})

	register(Descriptor{
		Name:         "creators.growth_ranking",
		Agg:          KindWindow,
		NeedsMetrics: true,
		Select: []string{
			"p.creator_id AS creator_id", "p.handle AS handle", "p.country AS country",
			"p.tier AS tier", "m.followers AS followers", "m.follower_growth AS follower_growth",
		},
		OrderBy: []string{"follower_growth DESC", "followers DESC", "creator_id ASC"},
		Bounds:  bounds(30, 90, 100, 500),
		Preview: 20,
	})

	register(Descriptor{
		Name:         "creators.tier_breakdown",
		Agg:          KindWindow,
		NeedsMetrics: true,
		Select: []string{
			"p.tier AS tier", "count() AS creators", "avg(m.followers) AS avg_followers",
			"avg(m.engagement_rate) AS avg_engagement",
		},
		GroupBy: []string{"p.tier"},
		OrderBy: []string{"creators DESC", "tier ASC"},
		Key:     "tier",
		Bounds:  bounds(30, 365, 10, 10),
		Preview: 10,
	})

	register(Descriptor{
		Name:            "creators.beauty_search",
		Agg:             KindSearch,
		NeedsMetrics:    true,
		ForceBeautyJoin: true,
		Select: []string{
			"p.creator_id AS creator_id", "p.handle AS handle", "p.country AS country",
			"b.skin_type AS skin_type", "b.personal_color AS personal_color",
			"b.brand_tier AS brand_tier", "m.followers AS followers",
		},
		OrderBy: []string{"followers DESC", "creator_id ASC"},
		Bounds:  bounds(30, 90, 100, 500),
		Preview: 20,
	})

	register(Descriptor{
		Name:         "creators.similar",
		Agg:          KindSearch,
		NeedsMetrics: true,
		Select: []string{
			"p.creator_id AS creator_id", "p.handle AS handle", "p.country AS country",
			"p.interests AS interests", "p.tier AS tier",
			"m.followers AS followers", "m.engagement_rate AS engagement_rate",
		},
		OrderBy: []string{"engagement_rate DESC", "creator_id ASC"},
		Bounds:  bounds(30, 90, 50, 200),
		Preview: 20,
	})

	register(Descriptor{
		Name:    "creators.content_summary",
		Agg:     KindWindow,
		Content: ContentUnion,
		Select: []string{
			"c.category AS category", "count() AS posts",
			"sum(c.likes) AS likes", "sum(c.comments) AS comments",
		},
		GroupBy: []string{"c.category"},
		OrderBy: []string{"posts DESC", "category ASC"},
		Key:     "category",
		Bounds:  bounds(30, 90, 100, 300),
		Preview: 50,
	})

	register(Descriptor{
		Name:    "creators.recent_posts",
		Agg:     KindSearch,
		Content: ContentUnion,
		Select: []string{
			"c.creator_id AS creator_id", "c.event_date AS event_date", "c.category AS category",
			"c.format AS format", "c.caption AS caption",
			"c.likes AS likes", "c.comments AS comments", "c.views AS views",
		},
		OrderBy: []string{"event_date DESC", "creator_id ASC"},
		Bounds:  bounds(7, 30, 50, 200),
		Preview: 20,
	})

	// trends: time partitioned content trends

	register(Descriptor{
		Name:    "trends.emerging_hashtags",
		Agg:     KindTwoWindow,
		Content: ContentUnion,
		Select: []string{
			"arrayJoin(c.hashtags) AS tag", "count() AS posts",
		},
		GroupBy: []string{"tag"},
		OrderBy: []string{"posts DESC", "tag ASC"},
		Key:     "tag",
		Bounds:  bounds(7, 30, 1000, 5000),
		Preview: 20,
	})

	register(Descriptor{
		Name:    "trends.emerging_ingredients",
		Agg:     KindTwoWindow,
		Content: ContentUnion,
		Select: []string{
			"arrayJoin(c.ingredients) AS ingredient", "count() AS posts",
		},
		GroupBy: []string{"ingredient"},
		OrderBy: []string{"posts DESC", "ingredient ASC"},
		Key:     "ingredient",
		Bounds:  bounds(7, 30, 1000, 5000),
		Preview: 20,
	})

	register(Descriptor{
		Name:    "trends.hashtag_history",
		Agg:     KindWindow,
		Content: ContentUnion,
		Select: []string{
			"c.event_date AS day", "count() AS posts",
		},
		GroupBy: []string{"c.event_date"},
		OrderBy: []string{"day ASC"},
		Key:     "day",
		Bounds:  bounds(30, 365, 365, 365),
		Preview: 100,
	})

	register(Descriptor{
		Name:    "trends.format_share",
		Agg:     KindTwoWindow,
		Content: ContentUnion,
		Select: []string{
			"c.format AS format", "count() AS posts",
		},
		GroupBy: []string{"c.format"},
		OrderBy: []string{"posts DESC", "format ASC"},
		Key:     "format",
		Bounds:  bounds(7, 90, 10, 10),
		Preview: 10,
	})

	register(Descriptor{
		Name:    "trends.rising_categories",
		Agg:     KindTwoWindow,
		Content: ContentUnion,
		Select: []string{
			"c.category AS category", "count() AS posts",
		},
		GroupBy: []string{"c.category"},
		OrderBy: []string{"posts DESC", "category ASC"},
		Key:     "category",
		Bounds:  bounds(7, 90, 100, 300),
		Preview: 20,
	})

	register(Descriptor{
		Name:    "trends.keyword_momentum",
		Agg:     KindTwoWindow,
		Content: ContentUnion,
		Entity:  EntityKeywords,
		Select: []string{
			"kw AS keyword", "count() AS posts",
		},
		GroupBy: []string{"kw"},
		OrderBy: []string{"posts DESC", "keyword ASC"},
		Key:     "keyword",
		Bounds:  bounds(7, 90, 100, 300),
		Preview: 20,
	})

	register(Descriptor{
		Name:    "trends.weekly_seasonality",
		Agg:     KindWindow,
		Content: ContentUnion,
		Select: []string{
			"toDayOfWeek(c.event_date) AS dow", "count() AS posts",
		},
		GroupBy: []string{"dow"},
		OrderBy: []string{"dow ASC"},
		Key:     "dow",
		Bounds:  bounds(90, 365, 7, 7),
		Preview: 7,
	})

	// compare: multi entity comparisons, every requested entity appears in
	// the output even when it matched zero rows

	register(Descriptor{
		Name:         "compare.regions",
		Agg:          KindMultiEntity,
		Content:      ContentUnion,
		NeedsProfile: true,
		Entity:       EntityCountries,
		Select: []string{
			"p.country AS country", "count() AS posts",
			"sum(c.likes) AS likes", "sum(c.comments) AS comments",
			"uniqExact(c.creator_id) AS creators",
		},
		GroupBy: []string{"p.country"},
		OrderBy: []string{"posts DESC", "country ASC"},
		Key:     "country",
		Bounds:  compare(bounds(30, 90, 50, 100), filterspec.CompareCountries),
		Preview: 50,
	})

	register(Descriptor{
		Name:    "compare.brands",
		Agg:     KindMultiEntity,
		Content: ContentUnion,
		Entity:  EntityBrands,
		Select: []string{
			"bq AS brand", "count() AS posts",
			"sum(c.likes) AS likes", "sum(c.comments) AS comments",
		},
		GroupBy: []string{"bq"},
		OrderBy: []string{"posts DESC", "brand ASC"},
		Key:     "brand",
		Bounds:  compare(bounds(30, 90, 50, 100), filterspec.CompareBrands),
		Preview: 50,
	})

	register(Descriptor{
		Name:         "compare.tiers",
		Agg:          KindMultiEntity,
		Content:      ContentUnion,
		NeedsProfile: true,
		Entity:       EntityTiers,
		Select: []string{
			"p.tier AS tier", "count() AS posts",
			"sum(c.likes) AS likes", "sum(c.comments) AS comments",
			"uniqExact(c.creator_id) AS creators",
		},
		GroupBy: []string{"p.tier"},
		OrderBy: []string{"posts DESC", "tier ASC"},
		Key:     "tier",
		Bounds:  compare(bounds(30, 90, 10, 10), filterspec.CompareTiers),
		Preview: 10,
	})

	register(Descriptor{
		Name:         "compare.categories",
		Agg:          KindMultiEntity,
		Content:      ContentUnion,
		NeedsProfile: true,
		Entity:       EntityInterests,
		Select: []string{
			"iq AS interest", "count() AS posts",
			"sum(c.likes) AS likes", "sum(c.comments) AS comments",
		},
		GroupBy: []string{"iq"},
		OrderBy: []string{"posts DESC", "interest ASC"},
		Key:     "interest",
		Bounds:  compare(bounds(30, 90, 50, 100), filterspec.CompareInterests),
		Preview: 50,
	})

	register(Descriptor{
		Name:    "compare.brand_share",
		Agg:     KindMultiEntity,
		Content: ContentUnion,
		Entity:  EntityBrands,
		Select: []string{
			"bq AS brand", "count() AS posts",
		},
		GroupBy: []string{"bq"},
		OrderBy: []string{"posts DESC", "brand ASC"},
		Key:     "brand",
		Bounds:  compare(bounds(30, 90, 50, 100), filterspec.CompareBrands),
		Preview: 50,
	})

	register(Descriptor{
		Name:         "compare.brand_engagement",
		Agg:          KindMultiEntity,
		Content:      ContentUnion,
		NeedsProfile: true,
		NeedsMetrics: true,
		Entity:       EntityBrands,
		Select: []string{
			"bq AS brand", "count() AS posts",
			"sum(c.likes) AS likes", "sum(c.comments) AS comments",
			"avg(m.followers) AS avg_followers",
		},
		GroupBy: []string{"bq"},
		OrderBy: []string{"posts DESC", "brand ASC"},
		Key:     "brand",
		Bounds:  compare(bounds(30, 90, 50, 100), filterspec.CompareBrands),
		Preview: 50,
	})
}

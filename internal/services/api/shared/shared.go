// Package shared holds the request and response DTOs common to every
// analytic operation endpoint
package shared

import (
	"trendlens/internal/core/filterspec"
	"trendlens/internal/core/materialize"
)

// FilterInput is the raw parameter object every operation accepts
// Deep validation happens in filterspec; the tags here only reject
// payloads that are structurally hopeless before they reach the core
type FilterInput struct {
	Countries      []string `json:"countries,omitempty" validate:"omitempty,max=50,dive,len=2" example:"KR"`
	Genders        []string `json:"genders,omitempty" validate:"omitempty,max=4" example:"female"`
	AgeBrackets    []string `json:"age_brackets,omitempty" validate:"omitempty,max=6" example:"18-24"`
	Ethnicities    []string `json:"ethnicities,omitempty" validate:"omitempty,max=8" example:"asian"`
	Interests      []string `json:"interests,omitempty" validate:"omitempty,max=45" example:"beauty"`
	Tiers          []string `json:"tiers,omitempty" validate:"omitempty,max=5" example:"micro"`
	SkinTypes      []string `json:"skin_types,omitempty" validate:"omitempty,max=5" example:"oily"`
	SkinConcerns   []string `json:"skin_concerns,omitempty" validate:"omitempty,max=8" example:"acne"`
	PersonalColors []string `json:"personal_colors,omitempty" validate:"omitempty,max=4" example:"summer_cool"`
	BrandTiers     []string `json:"brand_tiers,omitempty" validate:"omitempty,max=5" example:"luxury"`
	Brands         []string `json:"brands,omitempty" validate:"omitempty,max=20,dive,min=1,max=100" example:"glowskin"`
	Hashtags       []string `json:"hashtags,omitempty" validate:"omitempty,max=20,dive,min=1,max=100" example:"kbeauty"`
	Keywords       []string `json:"keywords,omitempty" validate:"omitempty,max=20,dive,min=1,max=100" example:"retinol"`
	MinFollowers   int64    `json:"min_followers,omitempty" validate:"omitempty,min=0" example:"10000"`
	MaxFollowers   int64    `json:"max_followers,omitempty" validate:"omitempty,min=0" example:"500000"`
	MinGrowthRate  float64  `json:"min_growth_rate,omitempty" validate:"omitempty,min=0" example:"2.0"`
	KCulture       *bool    `json:"k_culture,omitempty" example:"true"`
	WindowDays     int      `json:"window_days,omitempty" example:"30"`
	Limit          int      `json:"limit,omitempty" example:"100"`
}

// Params converts the transport DTO into the core parameter record
func (f FilterInput) Params() filterspec.Params {
	return filterspec.Params{
		Countries:      f.Countries,
		Genders:        f.Genders,
		AgeBrackets:    f.AgeBrackets,
		Ethnicities:    f.Ethnicities,
		Interests:      f.Interests,
		Tiers:          f.Tiers,
		SkinTypes:      f.SkinTypes,
		SkinConcerns:   f.SkinConcerns,
		PersonalColors: f.PersonalColors,
		BrandTiers:     f.BrandTiers,
		Brands:         f.Brands,
		Hashtags:       f.Hashtags,
		Keywords:       f.Keywords,
		MinFollowers:   f.MinFollowers,
		MaxFollowers:   f.MaxFollowers,
		MinGrowthRate:  f.MinGrowthRate,
		KCulture:       f.KCulture,
		WindowDays:     f.WindowDays,
		Limit:          f.Limit,
	}
}

// OpResult is the discriminated success payload every operation returns
// The envelope's error path carries the failure kind and message
type OpResult struct {
	Columns     []string `json:"columns"`
	Preview     [][]any  `json:"preview"`
	TotalCount  int      `json:"total_count" example:"420"`
	ExportURL   string   `json:"export_url,omitempty" example:"https://objects.test/exports/creators.search/2026-03-15/a.csv"`
	PlanSummary string   `json:"plan_summary" example:"op=creators.search tables=creator_profiles+creator_metrics limit=100 args=3"`
	Warnings    []string `json:"warnings,omitempty"`
}

// FromMaterialized shapes a materialized result plus soft errors into the
// response payload. Soft errors become warnings, never failures
func FromMaterialized(res materialize.Result, planSummary string, soft ...error) OpResult {
	out := OpResult{
		Columns:     res.Preview.Columns,
		Preview:     res.Preview.Rows,
		TotalCount:  res.TotalCount,
		ExportURL:   res.ExportURL,
		PlanSummary: planSummary,
	}
	if out.Preview == nil {
		out.Preview = [][]any{}
	}
	if res.ExportErr != nil {
		out.Warnings = append(out.Warnings, res.ExportErr.Error())
	}
	for _, e := range soft {
		if e != nil {
			out.Warnings = append(out.Warnings, e.Error())
		}
	}
	return out
}

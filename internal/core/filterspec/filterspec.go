// Package filterspec validates and canonicalizes raw operation parameters
// into an immutable filter specification
//
// Set valued filters are either absent or non empty; absent means no
// restriction, never match nothing. Window and limit values are clamped to
// the operation bounds instead of rejected so an out of range but harmless
// request still runs with a bounded scan cost
package filterspec

import (
	"sort"
	"strings"

	perr "trendlens/internal/platform/errors"

	"trendlens/internal/core/normalize"
)

// AbsMaxWindowDays caps every lookback window regardless of operation bounds
const AbsMaxWindowDays = 365

// CompareSet names the filter set an operation compares across
type CompareSet int

// Comparison set kinds
const (
	CompareNone CompareSet = iota
	CompareCountries
	CompareBrands
	CompareTiers
	CompareInterests
)

// Bounds carries the per operation clamp ranges and cardinality requirements
type Bounds struct {
	DefaultWindowDays int
	MaxWindowDays     int
	DefaultLimit      int
	MaxLimit          int
	Compare           CompareSet
	MinCompare        int
}

// Params carries the raw untrusted key values for one invocation
type Params struct {
	Countries      []string `json:"countries,omitempty"`
	Genders        []string `json:"genders,omitempty"`
	AgeBrackets    []string `json:"age_brackets,omitempty"`
	Ethnicities    []string `json:"ethnicities,omitempty"`
	Interests      []string `json:"interests,omitempty"`
	Tiers          []string `json:"tiers,omitempty"`
	SkinTypes      []string `json:"skin_types,omitempty"`
	SkinConcerns   []string `json:"skin_concerns,omitempty"`
	PersonalColors []string `json:"personal_colors,omitempty"`
	BrandTiers     []string `json:"brand_tiers,omitempty"`
	Brands         []string `json:"brands,omitempty"`
	Hashtags       []string `json:"hashtags,omitempty"`
	Keywords       []string `json:"keywords,omitempty"`
	MinFollowers   int64    `json:"min_followers,omitempty"`
	MaxFollowers   int64    `json:"max_followers,omitempty"`
	MinGrowthRate  float64  `json:"min_growth_rate,omitempty"`
	KCulture       *bool    `json:"k_culture,omitempty"`
	WindowDays     int      `json:"window_days,omitempty"`
	Limit          int      `json:"limit,omitempty"`
}

// Spec is the canonical validated filter specification
// Set fields are deduped and sorted so downstream compilation is deterministic
type Spec struct {
	Countries      []string
	Genders        []string
	AgeBrackets    []string
	Ethnicities    []string
	Interests      []string
	Tiers          []string
	SkinTypes      []string
	SkinConcerns   []string
	PersonalColors []string
	BrandTiers     []string
	Brands         []string
	Hashtags       []string
	Keywords       []string
	MinFollowers   int64
	MaxFollowers   int64
	MinGrowthRate  float64
	KCulture       *bool
	WindowDays     int
	Limit          int
}

// NeedsBeautyJoin reports whether any beauty sub filter is present
// This is the only inter filter coupling the compiler consumes
func (s Spec) NeedsBeautyJoin() bool {
	return len(s.SkinTypes) > 0 || len(s.SkinConcerns) > 0 ||
		len(s.PersonalColors) > 0 || len(s.BrandTiers) > 0
}

var norm = normalize.New()

// Normalize validates p against the closed enums, canonicalizes every set,
// and clamps window and limit to b. Any invalid enum value fails the whole
// invocation with a validation error naming the offending field
func Normalize(p Params, b Bounds) (Spec, error) {
	var s Spec
	var err error

	if s.Countries, err = canonCountries(p.Countries); err != nil {
		return Spec{}, err
	}
	if s.Genders, err = canonEnum("genders", p.Genders, genderSet); err != nil {
		return Spec{}, err
	}
	if s.AgeBrackets, err = canonEnum("age_brackets", p.AgeBrackets, ageBracketSet); err != nil {
		return Spec{}, err
	}
	if s.Ethnicities, err = canonEnum("ethnicities", p.Ethnicities, ethnicitySet); err != nil {
		return Spec{}, err
	}
	if s.Interests, err = canonEnum("interests", p.Interests, interestSet); err != nil {
		return Spec{}, err
	}
	if s.Tiers, err = canonEnum("tiers", p.Tiers, tierSet); err != nil {
		return Spec{}, err
	}
	if s.SkinTypes, err = canonEnum("skin_types", p.SkinTypes, skinTypeSet); err != nil {
		return Spec{}, err
	}
	if s.SkinConcerns, err = canonEnum("skin_concerns", p.SkinConcerns, skinConcernSet); err != nil {
		return Spec{}, err
	}
	if s.PersonalColors, err = canonEnum("personal_colors", p.PersonalColors, personalColorSet); err != nil {
		return Spec{}, err
	}
	if s.BrandTiers, err = canonEnum("brand_tiers", p.BrandTiers, brandTierSet); err != nil {
		return Spec{}, err
	}

	s.Brands = canonTerms(p.Brands, norm.Term)
	s.Keywords = canonTerms(p.Keywords, norm.Term)
	s.Hashtags = canonTerms(p.Hashtags, norm.Hashtag)

	if p.MinFollowers < 0 || p.MaxFollowers < 0 {
		return Spec{}, perr.Validationf("follower bounds must be non negative")
	}
	if p.MaxFollowers > 0 && p.MaxFollowers < p.MinFollowers {
		return Spec{}, perr.Validationf("max_followers %d is below min_followers %d", p.MaxFollowers, p.MinFollowers)
	}
	s.MinFollowers = p.MinFollowers
	s.MaxFollowers = p.MaxFollowers

	if p.MinGrowthRate < 0 {
		return Spec{}, perr.Validationf("min_growth_rate must be non negative")
	}
	s.MinGrowthRate = p.MinGrowthRate
	s.KCulture = p.KCulture

	s.WindowDays = clampWindow(p.WindowDays, b)
	s.Limit = clampLimit(p.Limit, b)

	if err := checkCompare(s, b); err != nil {
		return Spec{}, err
	}
	return s, nil
}

func checkCompare(s Spec, b Bounds) error {
	if b.Compare == CompareNone {
		return nil
	}
	min := b.MinCompare
	if min < 2 {
		min = 2
	}
	var name string
	var got int
	switch b.Compare {
	case CompareCountries:
		name, got = "countries", len(s.Countries)
	case CompareBrands:
		name, got = "brands", len(s.Brands)
	case CompareTiers:
		name, got = "tiers", len(s.Tiers)
	case CompareInterests:
		name, got = "interests", len(s.Interests)
	}
	if got < min {
		return perr.Validationf("comparison requires at least %d %s, got %d", min, name, got)
	}
	return nil
}

// clampWindow treats 0 as use the default, then clamps to [1, min(max, 365)]
func clampWindow(days int, b Bounds) int {
	max := b.MaxWindowDays
	if max <= 0 || max > AbsMaxWindowDays {
		max = AbsMaxWindowDays
	}
	if days == 0 {
		days = b.DefaultWindowDays
	}
	if days < 1 {
		days = 1
	}
	if days > max {
		days = max
	}
	return days
}

// clampLimit treats 0 as use the default, then clamps to [1, max]
// 0 never means zero rows
func clampLimit(limit int, b Bounds) int {
	max := b.MaxLimit
	if max <= 0 {
		max = 500
	}
	if limit == 0 {
		limit = b.DefaultLimit
	}
	if limit < 1 {
		limit = 1
	}
	if limit > max {
		limit = max
	}
	return limit
}

func canonEnum(field string, vals []string, allowed map[string]struct{}) ([]string, error) {
	if len(vals) == 0 {
		return nil, nil
	}
	seen := make(map[string]struct{}, len(vals))
	out := make([]string, 0, len(vals))
	for _, v := range vals {
		c := strings.ToLower(strings.TrimSpace(v))
		if c == "" {
			continue
		}
		if _, ok := allowed[c]; !ok {
			return nil, perr.Validationf("%s: invalid value %q", field, v)
		}
		if _, dup := seen[c]; dup {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	if len(out) == 0 {
		return nil, nil
	}
	sort.Strings(out)
	return out, nil
}

func canonCountries(vals []string) ([]string, error) {
	if len(vals) == 0 {
		return nil, nil
	}
	seen := make(map[string]struct{}, len(vals))
	out := make([]string, 0, len(vals))
	for _, v := range vals {
		c := strings.ToUpper(strings.TrimSpace(v))
		if c == "" {
			continue
		}
		if len(c) != 2 || c[0] < 'A' || c[0] > 'Z' || c[1] < 'A' || c[1] > 'Z' {
			return nil, perr.Validationf("countries: invalid ISO code %q", v)
		}
		if _, dup := seen[c]; dup {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	if len(out) == 0 {
		return nil, nil
	}
	sort.Strings(out)
	return out, nil
}

// canonTerms normalizes free text values, drops empties, dedupes and sorts
func canonTerms(vals []string, fn func(string) string) []string {
	if len(vals) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(vals))
	out := make([]string, 0, len(vals))
	for _, v := range vals {
		c := fn(v)
		if c == "" {
			continue
		}
		if _, dup := seen[c]; dup {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	if len(out) == 0 {
		return nil
	}
	sort.Strings(out)
	return out
}

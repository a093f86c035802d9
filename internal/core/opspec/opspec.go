// Package opspec holds the static descriptor table for every analytic
// operation the engine supports
//
// Descriptors are compiled in metadata, never user supplied. The plan
// compiler consumes a descriptor plus a filter specification and nothing
// else, so the set of reachable query shapes is fixed and enumerable
package opspec

import (
	"sort"

	"trendlens/internal/core/filterspec"
)

// Kind is the aggregation family of an operation
type Kind int

// Aggregation kinds
const (
	KindSearch Kind = iota
	KindWindow
	KindTwoWindow
	KindMultiEntity
)

// ContentMode selects which content tables an operation scans
type ContentMode int

// Content modes
const (
	ContentNone ContentMode = iota
	ContentFeed
	ContentShorts
	ContentUnion
)

// EntityDim is the bound entity dimension a multi entity operation fans
// its grouping across
type EntityDim int

// Entity dimensions
const (
	EntityNone EntityDim = iota
	EntityCountries
	EntityTiers
	EntityBrands
	EntityInterests
	EntityKeywords
	EntityHashtags
)

// Descriptor is the static metadata for one operation
//
// Select, GroupBy and OrderBy are SQL fragments over the fixed aliases the
// compiler emits: p creator_profiles, b beauty_profiles, m creator_metrics,
// c unioned content
type Descriptor struct {
	Name string
	Agg  Kind

	Content         ContentMode
	NeedsMetrics    bool
	NeedsProfile    bool
	ForceBeautyJoin bool
	Entity          EntityDim

	Select  []string
	GroupBy []string
	OrderBy []string

	// Key is the output column the comparison engine aligns on
	Key string

	Bounds  filterspec.Bounds
	Preview int
}

// registry maps operation name to descriptor; populated in registry.go
var registry = map[string]Descriptor{}

func register(d Descriptor) {
	if d.Name == "" {
		panic("opspec: descriptor without a name")
	}
	if _, dup := registry[d.Name]; dup {
		panic("opspec: duplicate descriptor " + d.Name)
	}
	registry[d.Name] = d
}

// Lookup returns the descriptor for an operation name
func Lookup(name string) (Descriptor, bool) {
	d, ok := registry[name]
	return d, ok
}

// Names returns every registered operation name sorted
func Names() []string {
	out := make([]string, 0, len(registry))
	for n := range registry {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

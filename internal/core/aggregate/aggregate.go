// Package aggregate post processes warehouse result sets into derived
// metrics: percentiles, engagement ratios, growth comparisons, rankings
// and distributions
package aggregate

import (
	"math"
	"sort"
)

// Entry is one keyed count from a single window result set
type Entry struct {
	Key   string
	Count int64
}

// Comparison joins a current and previous count on a shared key
//
// Growth is current over previous when previous is positive. An entity with
// no prior baseline but current activity is classified new instead of being
// handed an undefined ratio. Entities with zero activity in both windows
// are dropped before ranking
type Comparison struct {
	Key      string  `json:"key"`
	Current  int64   `json:"current"`
	Previous int64   `json:"previous"`
	Growth   float64 `json:"growth"`
	New      bool    `json:"new"`
}

// Compare aligns current against previous on the shared key with left join
// semantics: every current key is kept even when absent from the prior
// window. minGrowth filters established entities inclusively; new entities
// always pass since they have no ratio to test
func Compare(current, previous []Entry, minGrowth float64) []Comparison {
	prev := make(map[string]int64, len(previous))
	for _, e := range previous {
		prev[e.Key] = e.Count
	}

	out := make([]Comparison, 0, len(current))
	for _, e := range current {
		p := prev[e.Key]
		if e.Count == 0 && p == 0 {
			continue
		}
		c := Comparison{Key: e.Key, Current: e.Count, Previous: p}
		switch {
		case p > 0:
			c.Growth = float64(e.Count) / float64(p)
			if minGrowth > 0 && c.Growth < minGrowth {
				continue
			}
		case e.Count > 0:
			c.New = true
		}
		out = append(out, c)
	}

	Rank(out)
	return out
}

// Rank orders comparisons by growth rate descending with ties broken by
// current count descending. New entities sort ahead of any finite growth.
// The tie break policy is fixed, not configurable
func Rank(cs []Comparison) {
	sort.SliceStable(cs, func(i, j int) bool {
		a, b := cs[i], cs[j]
		if a.New != b.New {
			return a.New
		}
		if a.Growth != b.Growth {
			return a.Growth > b.Growth
		}
		if a.Current != b.Current {
			return a.Current > b.Current
		}
		return a.Key < b.Key
	})
}

// ZeroFill returns entries covering every requested key so a caller sees a
// complete comparison, not a sparse one. Keys missing from got appear with
// zero valued metrics. Order follows keys
func ZeroFill(keys []string, got []Entry) []Entry {
	byKey := make(map[string]int64, len(got))
	for _, e := range got {
		byKey[e.Key] = e.Count
	}
	out := make([]Entry, 0, len(keys))
	for _, k := range keys {
		out = append(out, Entry{Key: k, Count: byKey[k]})
	}
	return out
}

// Engagement derives the engagement rate percentage, never dividing by zero
func Engagement(likes, comments, followers int64) float64 {
	f := followers
	if f < 1 {
		f = 1
	}
	return float64(likes+comments) / float64(f) * 100
}

// Percentiles computes rank based percentile values for ps in [0,100]
// The estimate interpolates between closest ranks, matching the
// approximate quantile semantics of the warehouse rather than an exact
// order statistic
func Percentiles(vals []float64, ps []int) map[int]float64 {
	out := make(map[int]float64, len(ps))
	if len(vals) == 0 {
		for _, p := range ps {
			out[p] = 0
		}
		return out
	}
	sorted := append([]float64(nil), vals...)
	sort.Float64s(sorted)

	for _, p := range ps {
		out[p] = quantile(sorted, float64(p)/100)
	}
	return out
}

// quantile interpolates on pre sorted data
func quantile(sorted []float64, q float64) float64 {
	if q <= 0 {
		return sorted[0]
	}
	if q >= 1 {
		return sorted[len(sorted)-1]
	}
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}

// Mean returns the arithmetic mean, zero for empty input
func Mean(vals []float64) float64 {
	if len(vals) == 0 {
		return 0
	}
	var sum float64
	for _, v := range vals {
		sum += v
	}
	return sum / float64(len(vals))
}

// Share converts keyed counts into percentage shares of their total
// Entries keep their order; a zero total yields all zero shares
func Share(entries []Entry) map[string]float64 {
	var total int64
	for _, e := range entries {
		total += e.Count
	}
	out := make(map[string]float64, len(entries))
	for _, e := range entries {
		if total == 0 {
			out[e.Key] = 0
			continue
		}
		out[e.Key] = float64(e.Count) / float64(total) * 100
	}
	return out
}

// Bucket histograms values into fixed width buckets between min and max
// Returned counts have one slot per bucket plus an overflow slot at the end
func Bucket(vals []float64, min, width float64, n int) []int64 {
	counts := make([]int64, n+1)
	for _, v := range vals {
		idx := int((v - min) / width)
		if v < min {
			idx = 0
		}
		if idx >= n {
			idx = n
		}
		counts[idx]++
	}
	return counts
}

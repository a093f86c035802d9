// Package queryplan compiles a filter specification plus an operation
// descriptor into an executable warehouse query
//
// Compilation is a pure function: identical inputs yield byte identical SQL
// and an identical argument list. User supplied values only ever travel as
// bound arguments, never inside the query text. Every content table branch
// carries its own partition date predicate so pruning applies to each side
// of the union independently
package queryplan

import (
	"fmt"
	"strings"
	"time"

	perr "trendlens/internal/platform/errors"

	"trendlens/internal/core/filterspec"
	"trendlens/internal/core/opspec"
)

// Plan is the compiled single use representation of one warehouse request
type Plan struct {
	Op         string
	SQL        string
	Args       []any
	WindowDays int
	Limit      int
	Tables     []string
}

// Pair holds the two plans of a period over period comparison
// Previous covers the window immediately before Current with equal length
type Pair struct {
	Current  Plan
	Previous Plan
}

// Summary renders a short human readable account of what the plan scans
func (p Plan) Summary() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "op=%s tables=%s", p.Op, strings.Join(p.Tables, "+"))
	if p.WindowDays > 0 {
		fmt.Fprintf(&sb, " window=%dd", p.WindowDays)
	}
	fmt.Fprintf(&sb, " limit=%d args=%d", p.Limit, len(p.Args))
	return sb.String()
}

// window is a half open date range; empty until means unbounded above
type window struct {
	since time.Time
	until time.Time
}

func (w window) bounded() bool { return !w.until.IsZero() }

// Compile produces the plan for a single window operation
func Compile(d opspec.Descriptor, s filterspec.Spec, now time.Time) (Plan, error) {
	w := window{since: dayStart(now).AddDate(0, 0, -s.WindowDays)}
	return compile(d, s, w)
}

// CompilePair produces the current and prior window plans for a two window
// comparison. Both plans share shape and differ only in their date bounds
func CompilePair(d opspec.Descriptor, s filterspec.Spec, now time.Time) (Pair, error) {
	if d.Agg != opspec.KindTwoWindow {
		return Pair{}, perr.Compilationf("operation %s is not a two window comparison", d.Name)
	}
	edge := dayStart(now)
	cur := window{since: edge.AddDate(0, 0, -s.WindowDays)}
	prev := window{
		since: edge.AddDate(0, 0, -2*s.WindowDays),
		until: edge.AddDate(0, 0, -s.WindowDays),
	}
	c, err := compile(d, s, cur)
	if err != nil {
		return Pair{}, err
	}
	p, err := compile(d, s, prev)
	if err != nil {
		return Pair{}, err
	}
	return Pair{Current: c, Previous: p}, nil
}

func dayStart(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func compile(d opspec.Descriptor, s filterspec.Spec, w window) (Plan, error) {
	if len(d.Select) == 0 {
		return Plan{}, compileErr(d, "descriptor has no select list")
	}
	if d.Agg == opspec.KindTwoWindow && d.Content == opspec.ContentNone {
		return Plan{}, compileErr(d, "two window comparison requires a content source")
	}
	if err := checkEntity(d, s); err != nil {
		return Plan{}, err
	}

	b := &builder{}
	hasContent := d.Content != opspec.ContentNone

	joinProfile := hasContent && (d.NeedsProfile || hasProfileFilter(s))
	joinBeauty := d.ForceBeautyJoin || s.NeedsBeautyJoin()
	joinMetrics := d.NeedsMetrics || s.MinFollowers > 0 || s.MaxFollowers > 0
	if hasContent && joinBeauty && !joinProfile {
		// the beauty table hangs off the profile key, keep the join chain intact
		joinProfile = true
	}

	b.line("SELECT " + strings.Join(d.Select, ", "))

	tables := []string{}
	switch {
	case hasContent:
		sub, subTables := b.contentSource(d.Content, s, w)
		b.line("FROM (")
		b.raw(sub)
		b.line(") AS c")
		tables = append(tables, subTables...)
	default:
		b.line("FROM creator_profiles AS p")
		tables = append(tables, "creator_profiles")
	}

	if hasContent && joinProfile {
		b.line("INNER JOIN creator_profiles AS p ON p.creator_id = c.creator_id")
		tables = append(tables, "creator_profiles")
	}
	if joinBeauty {
		b.line("INNER JOIN beauty_profiles AS b ON b.creator_id = p.creator_id")
		tables = append(tables, "beauty_profiles")
	}
	if joinMetrics {
		on := "p.creator_id"
		if hasContent && !joinProfile {
			on = "c.creator_id"
		}
		b.line("INNER JOIN creator_metrics AS m ON m.creator_id = " + on)
		tables = append(tables, "creator_metrics")
	}

	b.entityJoin(d, s)

	preds := b.outerPredicates(d, s, joinProfile || !hasContent)
	if len(preds) > 0 {
		b.line("WHERE " + strings.Join(preds, "\nAND "))
	}
	if len(d.GroupBy) > 0 {
		b.line("GROUP BY " + strings.Join(d.GroupBy, ", "))
	}
	if len(d.OrderBy) > 0 {
		b.line("ORDER BY " + strings.Join(d.OrderBy, ", "))
	}
	b.line("LIMIT ?")
	b.args = append(b.args, s.Limit)

	windowDays := 0
	if hasContent {
		windowDays = s.WindowDays
	}
	return Plan{
		Op:         d.Name,
		SQL:        b.sql(),
		Args:       b.args,
		WindowDays: windowDays,
		Limit:      s.Limit,
		Tables:     tables,
	}, nil
}

func checkEntity(d opspec.Descriptor, s filterspec.Spec) error {
	switch d.Entity {
	case opspec.EntityBrands:
		if len(s.Brands) == 0 {
			return compileErr(d, "entity dimension brands has no bound values")
		}
	case opspec.EntityInterests:
		if len(s.Interests) == 0 {
			return compileErr(d, "entity dimension interests has no bound values")
		}
	case opspec.EntityKeywords:
		if len(s.Keywords) == 0 {
			return compileErr(d, "entity dimension keywords has no bound values")
		}
	case opspec.EntityCountries:
		if len(s.Countries) == 0 {
			return compileErr(d, "entity dimension countries has no bound values")
		}
	case opspec.EntityTiers:
		if len(s.Tiers) == 0 {
			return compileErr(d, "entity dimension tiers has no bound values")
		}
	}
	return nil
}

func compileErr(d opspec.Descriptor, msg string) error {
	return perr.Compilationf("compile %s: %s", d.Name, msg)
}

func hasProfileFilter(s filterspec.Spec) bool {
	return len(s.Countries) > 0 || len(s.Genders) > 0 || len(s.AgeBrackets) > 0 ||
		len(s.Ethnicities) > 0 || len(s.Interests) > 0 || len(s.Tiers) > 0 ||
		s.KCulture != nil
}

type builder struct {
	lines []string
	args  []any
}

func (b *builder) line(s string) { b.lines = append(b.lines, s) }

func (b *builder) raw(s string) { b.lines = append(b.lines, s) }

func (b *builder) sql() string { return strings.Join(b.lines, "\n") }

// contentSource renders the union subquery with every branch carrying its
// own partition predicate, and returns the SQL plus the scanned table names
func (b *builder) contentSource(mode opspec.ContentMode, s filterspec.Spec, w window) (string, []string) {
	branchPreds, branchArgs := contentBranchFilters(s)

	branch := func(table, partCol string) string {
		preds := make([]string, 0, len(branchPreds)+2)
		preds = append(preds, partCol+" >= ?")
		b.args = append(b.args, w.since.Format("2006-01-02"))
		if w.bounded() {
			preds = append(preds, partCol+" < ?")
			b.args = append(b.args, w.until.Format("2006-01-02"))
		}
		preds = append(preds, branchPreds...)
		b.args = append(b.args, branchArgs...)

		return "SELECT creator_id, " + partCol + " AS event_date, hashtags, ingredients, brand, caption," +
			" category, '" + formatOf(table) + "' AS format, likes, comments, views" +
			"\nFROM " + table +
			"\nWHERE " + strings.Join(preds, " AND ")
	}

	switch mode {
	case opspec.ContentFeed:
		return branch("feed_posts", "post_date"), []string{"feed_posts"}
	case opspec.ContentShorts:
		return branch("short_posts", "published_on"), []string{"short_posts"}
	default:
		sql := branch("feed_posts", "post_date") +
			"\nUNION ALL\n" +
			branch("short_posts", "published_on")
		return sql, []string{"feed_posts", "short_posts"}
	}
}

func formatOf(table string) string {
	if table == "short_posts" {
		return "short"
	}
	return "feed"
}

// contentBranchFilters builds the predicates pushed into each union branch
// column names are unqualified because they run inside the branch select
func contentBranchFilters(s filterspec.Spec) ([]string, []any) {
	var preds []string
	var args []any

	if len(s.Hashtags) > 0 {
		p, a := hasAny("hashtags", s.Hashtags)
		preds = append(preds, p)
		args = append(args, a...)
	}
	if len(s.Brands) > 0 {
		p, a := matchAny("brand", s.Brands)
		preds = append(preds, p)
		args = append(args, a...)
	}
	if len(s.Keywords) > 0 {
		p, a := matchAny("caption", s.Keywords)
		preds = append(preds, p)
		args = append(args, a...)
	}
	return preds, args
}

// entityJoin emits the bound set array join for multi entity dimensions
func (b *builder) entityJoin(d opspec.Descriptor, s filterspec.Spec) {
	switch d.Entity {
	case opspec.EntityBrands:
		b.line("ARRAY JOIN ? AS bq")
		b.args = append(b.args, s.Brands)
	case opspec.EntityInterests:
		b.line("ARRAY JOIN ? AS iq")
		b.args = append(b.args, s.Interests)
	case opspec.EntityKeywords:
		b.line("ARRAY JOIN ? AS kw")
		b.args = append(b.args, s.Keywords)
	}
}

// outerPredicates builds the WHERE clause over the joined shape
// order is fixed so compilation stays deterministic
func (b *builder) outerPredicates(d opspec.Descriptor, s filterspec.Spec, profileJoined bool) []string {
	var preds []string

	add := func(p string, a []any) {
		preds = append(preds, p)
		b.args = append(b.args, a...)
	}

	switch d.Entity {
	case opspec.EntityBrands:
		preds = append(preds, "positionCaseInsensitive(c.brand, bq) > 0")
	case opspec.EntityInterests:
		preds = append(preds, "has(p.interests, iq)")
	case opspec.EntityKeywords:
		preds = append(preds, "positionCaseInsensitive(c.caption, kw) > 0")
	}

	if profileJoined {
		if len(s.Countries) > 0 {
			add(in("p.country", len(s.Countries)), toAnys(s.Countries))
		}
		if len(s.Genders) > 0 {
			add(in("p.gender", len(s.Genders)), toAnys(s.Genders))
		}
		if len(s.AgeBrackets) > 0 {
			add(in("p.age_bracket", len(s.AgeBrackets)), toAnys(s.AgeBrackets))
		}
		if len(s.Ethnicities) > 0 {
			add(in("p.ethnicity", len(s.Ethnicities)), toAnys(s.Ethnicities))
		}
		if len(s.Interests) > 0 && d.Entity != opspec.EntityInterests {
			p, a := hasAny("p.interests", s.Interests)
			add(p, a)
		}
		if len(s.Tiers) > 0 {
			add(in("p.tier", len(s.Tiers)), toAnys(s.Tiers))
		}
		if s.KCulture != nil {
			v := uint8(0)
			if *s.KCulture {
				v = 1
			}
			add("p.k_culture = ?", []any{v})
		}
	}

	if d.ForceBeautyJoin || s.NeedsBeautyJoin() {
		if len(s.SkinTypes) > 0 {
			add(in("b.skin_type", len(s.SkinTypes)), toAnys(s.SkinTypes))
		}
		if len(s.SkinConcerns) > 0 {
			p, a := hasAny("b.concerns", s.SkinConcerns)
			add(p, a)
		}
		if len(s.PersonalColors) > 0 {
			add(in("b.personal_color", len(s.PersonalColors)), toAnys(s.PersonalColors))
		}
		if len(s.BrandTiers) > 0 {
			add(in("b.brand_tier", len(s.BrandTiers)), toAnys(s.BrandTiers))
		}
	}

	if s.MinFollowers > 0 {
		add("m.followers >= ?", []any{s.MinFollowers})
	}
	if s.MaxFollowers > 0 {
		add("m.followers <= ?", []any{s.MaxFollowers})
	}

	return preds
}

// in renders a scalar membership test with one placeholder per value
func in(col string, n int) string {
	return col + " IN (" + placeholders(n) + ")"
}

// hasAny renders the array column membership rule: an OR of has tests
func hasAny(col string, vals []string) (string, []any) {
	parts := make([]string, len(vals))
	for i := range vals {
		parts[i] = "has(" + col + ", ?)"
	}
	p := strings.Join(parts, " OR ")
	if len(parts) > 1 {
		p = "(" + p + ")"
	}
	return p, toAnys(vals)
}

// matchAny renders a case insensitive substring test per value, OR joined
func matchAny(col string, vals []string) (string, []any) {
	parts := make([]string, len(vals))
	for i := range vals {
		parts[i] = "positionCaseInsensitive(" + col + ", ?) > 0"
	}
	p := strings.Join(parts, " OR ")
	if len(parts) > 1 {
		p = "(" + p + ")"
	}
	return p, toAnys(vals)
}

func placeholders(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat("?, ", n-1) + "?"
}

func toAnys(vals []string) []any {
	out := make([]any, len(vals))
	for i, v := range vals {
		out[i] = v
	}
	return out
}

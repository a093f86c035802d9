package shared

import (
	"errors"
	"testing"

	"trendlens/internal/core/materialize"
)

func TestFromMaterialized(t *testing.T) {
	t.Parallel()

	t.Run("shapes payload", func(t *testing.T) {
		t.Parallel()
		res := materialize.Result{
			Preview: materialize.Table{
				Columns: []string{"tag", "posts"},
				Rows:    [][]any{{"kbeauty", uint64(42)}},
			},
			TotalCount: 120,
			ExportURL:  "https://objects.test/exports/x.csv",
		}
		out := FromMaterialized(res, "op=trends.emerging_hashtags")
		if out.TotalCount != 120 || out.ExportURL == "" {
			t.Fatalf("unexpected payload: %+v", out)
		}
		if len(out.Columns) != 2 || len(out.Preview) != 1 {
			t.Fatalf("preview not carried: %+v", out)
		}
		if out.Warnings != nil {
			t.Fatalf("expected no warnings, got %v", out.Warnings)
		}
	})

	t.Run("nil preview becomes empty slice", func(t *testing.T) {
		t.Parallel()
		out := FromMaterialized(materialize.Result{}, "")
		if out.Preview == nil {
			t.Fatalf("preview must never be nil")
		}
	})

	t.Run("soft errors become warnings", func(t *testing.T) {
		t.Parallel()
		res := materialize.Result{ExportErr: errors.New("sink down")}
		out := FromMaterialized(res, "", errors.New("2 of 9 rows degraded to a narrower field set"), nil)
		if len(out.Warnings) != 2 {
			t.Fatalf("expected export and enrichment warnings, got %v", out.Warnings)
		}
	})
}

// Package materialize splits a final result set into a bounded preview and
// a full export handed to the object sink
package materialize

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"time"

	"github.com/google/uuid"

	perr "trendlens/internal/platform/errors"
	"trendlens/internal/platform/store"
)

// Table is the flat tabular shape every operation reduces to before the
// response is assembled
type Table struct {
	Columns []string
	Rows    [][]any
}

// Len returns the row count
func (t Table) Len() int { return len(t.Rows) }

// Preview returns the first n rows of t. The preview is always a prefix of
// the ranked result so identical invocations return identical previews
func (t Table) Preview(n int) Table {
	if n < 0 {
		n = 0
	}
	if n > len(t.Rows) {
		n = len(t.Rows)
	}
	return Table{Columns: t.Columns, Rows: t.Rows[:n]}
}

// CSV serializes the full table, header first
func (t Table) CSV() ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(t.Columns); err != nil {
		return nil, err
	}
	rec := make([]string, len(t.Columns))
	for _, row := range t.Rows {
		for i := range rec {
			rec[i] = ""
			if i < len(row) {
				rec[i] = cell(row[i])
			}
		}
		if err := w.Write(rec); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func cell(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case time.Time:
		return x.Format("2006-01-02")
	case float64:
		return fmt.Sprintf("%.4f", x)
	case float32:
		return fmt.Sprintf("%.4f", x)
	default:
		return fmt.Sprintf("%v", x)
	}
}

// ExportName builds the write once object name for an operation's export
func ExportName(op string, now time.Time) string {
	return fmt.Sprintf("exports/%s/%s/%s.csv", op, now.UTC().Format("2006-01-02"), uuid.NewString())
}

// Result is the materialized outcome of one invocation
type Result struct {
	Preview    Table
	TotalCount int
	ExportURL  string
	ExportErr  error
}

// Materialize builds the preview and always attempts the full export, even
// when the preview already covers every row, so the response contract stays
// uniform. A sink failure degrades to a preview only success; the export
// error is carried for the caller to surface, never escalated
func Materialize(ctx context.Context, sink store.ObjectSink, op string, t Table, previewN int, now time.Time) Result {
	res := Result{
		Preview:    t.Preview(previewN),
		TotalCount: t.Len(),
	}

	if sink == nil {
		res.ExportErr = perr.Exportf("export sink not configured")
		return res
	}

	body, err := t.CSV()
	if err != nil {
		res.ExportErr = perr.Exportf("serialize export: %v", err)
		return res
	}
	url, err := sink.Put(ctx, ExportName(op, now), "text/csv", body)
	if err != nil {
		res.ExportErr = perr.Exportf("export sink: %v", err)
		return res
	}
	res.ExportURL = url
	return res
}

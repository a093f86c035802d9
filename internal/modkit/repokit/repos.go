// Package repokit provides common types and helpers for repository implementations
package repokit

import (
	"context"

	"trendlens/internal/platform/store"
)

// Queryer is the minimal read surface for warehouse repos
type Queryer = store.Querier

type (
	// Rows are the result set of a query
	Rows = store.Rows

	// Row is a single row result from a query
	Row = store.Row

	// ScanStats reports the cost of answering a query
	ScanStats = store.ScanStats
)

// WH exposes a warehouse Queryer without importing a driver
func WH(_ context.Context, q store.Querier) store.Querier { return q }

// Sink exposes the export sink seam if a repo needs one
func Sink(_ context.Context, s store.ObjectSink) store.ObjectSink { return s }

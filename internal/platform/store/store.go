// Package store provides a unified interface to the warehouse and export backends
package store

import (
	"context"
	"errors"
	"fmt"

	"trendlens/internal/platform/logger"
)

// Store is the facade for optional backends
// zero value is safe but does nothing
type Store struct {
	// Log is the logger used by subclients
	// zero means a no op zerolog logger
	Log logger.Logger

	// WH is the analytic warehouse seam, nil when disabled
	WH Warehouse

	// Sink is the export sink seam, nil when disabled
	Sink ObjectSink
}

// Rows exposes the minimal iteration and scan for a result set
type Rows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close()
	Columns() []string
}

// ScanStats reports what a single warehouse query cost to answer
// Bytes is best effort until the result set is closed
type ScanStats struct {
	Rows    uint64
	Bytes   uint64
	Elapsed int64 // microseconds
}

// Warehouse is the read only seam for the analytic warehouse
// every call carries query text plus bound parameters, never interpolated values
type Warehouse interface {
	Query(ctx context.Context, sql string, args ...any) (Rows, *ScanStats, error)
	Close() error
}

// ObjectSink accepts a tabular byte stream and returns a time bounded retrieval URL
// the sink, not this core, enforces URL expiry
type ObjectSink interface {
	Put(ctx context.Context, name, contentType string, body []byte) (string, error)
}

// Pinger is any seam that can report readiness
type Pinger interface{ Ping(context.Context) error }

// Open constructs a Store with the requested backends
// backends not enabled in cfg remain nil on the Store
func Open(ctx context.Context, cfg Config, opts ...Option) (*Store, error) {
	s := &Store{}
	for _, o := range opts {
		if err := o(s); err != nil {
			return nil, err
		}
	}

	// defaults for zero logger to avoid nil checks
	s.Log = s.Log.With().Logger()

	if cfg.CH.Enabled {
		wh, err := openCH(ctx, cfg, s)
		if err != nil {
			return nil, err
		}
		s.WH = wh
	}

	if cfg.Obj.Enabled {
		sink, err := openObj(cfg, s)
		if err != nil {
			return nil, err
		}
		s.Sink = sink
	}

	return s, nil
}

// Guard verifies all configured seams the Store knows about
func (s *Store) Guard(ctx context.Context) error {
	if s == nil {
		return errors.New("nil store")
	}
	var errs []error
	if s.WH != nil {
		if p, ok := any(s.WH).(Pinger); ok {
			if err := p.Ping(ctx); err != nil {
				errs = append(errs, fmt.Errorf("warehouse: %w", err))
			}
		}
	}
	return errors.Join(errs...)
}

// Close closes all initialized backends gracefully
// nil backends are ignored
func (s *Store) Close(_ context.Context) error {
	var errs []error

	if s.WH != nil {
		if e := s.WH.Close(); e != nil {
			errs = append(errs, e)
		}
	}

	return errors.Join(errs...)
}

package store

import (
	"context"
	"fmt"
	"time"

	chx "trendlens/internal/platform/store/ch"
	objx "trendlens/internal/platform/store/obj"
)

// openCH opens clickhouse and wraps it with our warehouse adapter
// the pool is published only after a successful ping so callers never see a half open seam
func openCH(ctx context.Context, cfg Config, s *Store) (Warehouse, error) {
	c, err := chx.Open(ctx, chx.Config{
		URL:                 cfg.CH.URL,
		ClientName:          cfg.CH.ClientName,
		ClientTag:           cfg.CH.ClientTag,
		MaxExecutionSeconds: cfg.CH.MaxExecutionSeconds,
	})
	if err != nil {
		return nil, err
	}

	maxAttempts := cfg.CH.ConnectRetries
	if maxAttempts <= 0 {
		maxAttempts = 20
	}
	pingTimeout := cfg.CH.PingTimeout
	if pingTimeout <= 0 {
		pingTimeout = 3 * time.Second
	}
	const (
		backoffStart   = 150 * time.Millisecond
		backoffCeiling = 2 * time.Second
	)

	var lastErr error
	backoff := backoffStart
	for i := 0; i < maxAttempts; i++ {
		toCtx, cancel := context.WithTimeout(ctx, pingTimeout)
		lastErr = c.Ping(toCtx)
		cancel()

		if lastErr == nil {
			a := newWarehouseAdapter(c, s)
			if v, err := Scalar[string](ctx, a, "SELECT version()"); err == nil {
				s.Log.Info().Str("server_version", v).Msg("warehouse connected")
			}
			return a, nil
		}
		if ctx.Err() != nil {
			_ = c.Close()
			return nil, ctx.Err()
		}
		time.Sleep(backoff)
		if backoff < backoffCeiling {
			backoff *= 2
			if backoff > backoffCeiling {
				backoff = backoffCeiling
			}
		}
	}

	_ = c.Close()
	return nil, fmt.Errorf("clickhouse ping failed after %d attempts: %w", maxAttempts, lastErr)
}

// openObj opens the export sink; no ping, the first Put surfaces any misconfiguration
func openObj(cfg Config, _ *Store) (ObjectSink, error) {
	return objx.Open(objx.Config{
		Endpoint:  cfg.Obj.Endpoint,
		AccessKey: cfg.Obj.AccessKey,
		SecretKey: cfg.Obj.SecretKey,
		Bucket:    cfg.Obj.Bucket,
		UseSSL:    cfg.Obj.UseSSL,
		URLExpiry: cfg.Obj.URLExpiry,
	})
}

//go:build integration_ch
// +build integration_ch

package ch

import (
	"context"
	"fmt"
	"testing"
	"time"

	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// startClickHouse gives generous timeouts for the first image pull
func startClickHouse(t *testing.T) (dsn string, stop func()) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)

	req := tc.ContainerRequest{
		Image:        "clickhouse/clickhouse-server:24.8-alpine",
		ExposedPorts: []string{"9000/tcp"},
		Env: map[string]string{
			"CLICKHOUSE_USER":     "default",
			"CLICKHOUSE_PASSWORD": "default",
			"CLICKHOUSE_DB":       "default",
		},
		WaitingFor: wait.ForAll(
			wait.ForListeningPort("9000/tcp"),
			wait.ForLog("Ready for connections"),
		).WithDeadline(2 * time.Minute),
	}
	c, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		cancel()
		t.Fatalf("failed to start clickhouse container: %v", err)
	}

	host, err := c.Host(ctx)
	if err != nil {
		_ = c.Terminate(context.Background())
		cancel()
		t.Fatalf("failed to get container host: %v", err)
	}
	mapped, err := c.MappedPort(ctx, "9000/tcp")
	if err != nil {
		_ = c.Terminate(context.Background())
		cancel()
		t.Fatalf("failed to get mapped port: %v", err)
	}

	dsn = fmt.Sprintf("clickhouse://default:default@%s:%s/default", host, mapped.Port())
	stop = func() {
		_ = c.Terminate(context.Background())
		cancel()
	}
	return dsn, stop
}

func TestOpen_And_BasicQueries_Integration(t *testing.T) {
	dsn, stop := startClickHouse(t)
	defer stop()

	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	defer cancel()

	c, err := Open(ctx, Config{
		URL:        dsn,
		ClientName: "trendlens-ch-integration",
		ClientTag:  "test",
	})
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer func() { _ = c.Close() }()

	if err := c.Ping(ctx); err != nil {
		t.Fatalf("Ping failed: %v", err)
	}

	t.Run("scalar select", func(t *testing.T) {
		rows, stats, err := c.Query(ctx, "SELECT toUInt64(1) AS one")
		if err != nil {
			t.Fatalf("Query failed: %v", err)
		}
		defer func() { _ = rows.Close() }()

		if !rows.Next() {
			t.Fatalf("expected one row")
		}
		var one uint64
		if err := rows.Scan(&one); err != nil {
			t.Fatalf("Scan failed: %v", err)
		}
		if one != 1 {
			t.Fatalf("expected 1, got %d", one)
		}
		if stats == nil {
			t.Fatalf("expected stats")
		}
	})

	t.Run("array bind", func(t *testing.T) {
		rows, _, err := c.Query(ctx,
			"SELECT count() FROM (SELECT arrayJoin(?) AS v) WHERE v != ''",
			[]string{"glow", "serum", "spf"},
		)
		if err != nil {
			t.Fatalf("Query failed: %v", err)
		}
		defer func() { _ = rows.Close() }()

		if !rows.Next() {
			t.Fatalf("expected one row")
		}
		var n uint64
		if err := rows.Scan(&n); err != nil {
			t.Fatalf("Scan failed: %v", err)
		}
		if n != 3 {
			t.Fatalf("expected 3 joined values, got %d", n)
		}
	})

	t.Run("partitioned table round trip", func(t *testing.T) {
		ddl := `CREATE TABLE IF NOT EXISTS feed_posts_it (
			creator_id String,
			post_date  Date,
			likes      UInt64
		) ENGINE = MergeTree PARTITION BY toYYYYMM(post_date) ORDER BY (post_date, creator_id)`
		if rows, _, err := c.Query(ctx, ddl); err != nil {
			t.Fatalf("create table failed: %v", err)
		} else {
			_ = rows.Close()
		}

		ins := "INSERT INTO feed_posts_it VALUES ('c1', '2026-03-01', 10), ('c2', '2026-03-02', 20)"
		if rows, _, err := c.Query(ctx, ins); err != nil {
			t.Fatalf("insert failed: %v", err)
		} else {
			_ = rows.Close()
		}

		rows, _, err := c.Query(ctx,
			"SELECT creator_id, likes FROM feed_posts_it WHERE post_date >= ? ORDER BY creator_id",
			time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		)
		if err != nil {
			t.Fatalf("select failed: %v", err)
		}
		defer func() { _ = rows.Close() }()

		var got []string
		for rows.Next() {
			var id string
			var likes uint64
			if err := rows.Scan(&id, &likes); err != nil {
				t.Fatalf("Scan failed: %v", err)
			}
			got = append(got, fmt.Sprintf("%s=%d", id, likes))
		}
		if err := rows.Err(); err != nil {
			t.Fatalf("rows err: %v", err)
		}
		if len(got) != 2 || got[0] != "c1=10" || got[1] != "c2=20" {
			t.Fatalf("unexpected rows: %v", got)
		}
	})
}

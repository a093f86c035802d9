package net_test

import (
	"context"
	"testing"

	pnet "trendlens/internal/platform/net"
)

func TestWithRequest(t *testing.T) {
	t.Parallel()

	t.Run("sets both ids", func(t *testing.T) {
		t.Parallel()
		ctx := pnet.WithRequest(context.Background(), "req-123", "creators.search")
		if got := pnet.RequestID(ctx); got != "req-123" {
			t.Fatalf("RequestID got %q want %q", got, "req-123")
		}
		if got := pnet.Operation(ctx); got != "creators.search" {
			t.Fatalf("Operation got %q want %q", got, "creators.search")
		}
	})

	t.Run("empty values set nothing", func(t *testing.T) {
		t.Parallel()
		ctx := pnet.WithRequest(context.Background(), "", "")
		if got := pnet.RequestID(ctx); got != "" {
			t.Fatalf("RequestID got %q want empty", got)
		}
		if got := pnet.Operation(ctx); got != "" {
			t.Fatalf("Operation got %q want empty", got)
		}
	})

	t.Run("sets only operation", func(t *testing.T) {
		t.Parallel()
		ctx := pnet.WithRequest(context.Background(), "", "trends.hashtags")
		if got := pnet.RequestID(ctx); got != "" {
			t.Fatalf("RequestID got %q want empty", got)
		}
		if got := pnet.Operation(ctx); got != "trends.hashtags" {
			t.Fatalf("Operation got %q want %q", got, "trends.hashtags")
		}
	})
}

func TestWithOperation(t *testing.T) {
	t.Parallel()

	ctx := pnet.WithOperation(context.Background(), "compare.cohorts")
	if got := pnet.Operation(ctx); got != "compare.cohorts" {
		t.Fatalf("Operation got %q want %q", got, "compare.cohorts")
	}

	same := pnet.WithOperation(ctx, "")
	if got := pnet.Operation(same); got != "compare.cohorts" {
		t.Fatalf("empty operation should not clear, got %q", got)
	}
}

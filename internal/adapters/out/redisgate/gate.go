// Package redisgate implements the shipment notification gate on Redis.
package redisgate

import (
	"context"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/shipment"
	"fulfillment/internal/core/ports"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "fulfillment:notification:shipped:"

var _ ports.NotificationGate = (*Gate)(nil)

// Gate marks a package as notified with SETNX, so that of two concurrent callers only
// one dispatches. The package's own flag is consulted first.
type Gate struct {
	client *redis.Client
	ttl    time.Duration
}

// NewClient parses a redis:// URL.
func NewClient(redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}
	return redis.NewClient(opts), nil
}

// NewGate creates a gate. Marks expire after ttl; zero keeps them forever.
func NewGate(client *redis.Client, ttl time.Duration) *Gate {
	return &Gate{client: client, ttl: ttl}
}

// Key returns the Redis key that marks pkg as notified.
func Key(pkg *shipment.Package) string {
	return keyPrefix + pkg.ID().String()
}

// HasSent reports whether the notification for pkg was already dispatched.
func (g *Gate) HasSent(ctx context.Context, pkg *shipment.Package) (bool, error) {
	if pkg.NotificationSent() {
		return true, nil
	}

	n, err := g.client.Exists(ctx, Key(pkg)).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check key %s: %w", Key(pkg), err)
	}
	return n > 0, nil
}

// MarkSent claims the notification for pkg. It returns false when the key already existed.
func (g *Gate) MarkSent(ctx context.Context, pkg *shipment.Package, at time.Time) (bool, error) {
	ok, err := g.client.SetNX(ctx, Key(pkg), at.UTC().Format(time.RFC3339), g.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("failed to set key %s: %w", Key(pkg), err)
	}
	return ok, nil
}

// Ping checks if Redis is reachable.
func (g *Gate) Ping(ctx context.Context) error {
	return g.client.Ping(ctx).Err()
}

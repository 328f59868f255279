// Package cache provides Valkey (Redis-compatible) client initialization and
// full-page HTML caching for the public site.
package cache

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// connectTimeout bounds the startup ping so a missing Valkey never stalls
// server boot; the caller degrades to an uncached site instead.
const connectTimeout = 5 * time.Second

// ConnectValkey dials Valkey at addr (host:port) and verifies the
// connection with a ping before handing the client out.
func ConnectValkey(addr, password string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	})

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("valkey ping %s: %w", addr, err)
	}

	slog.Info("valkey connected", "addr", addr)
	return client, nil
}

// Package usercache is a redis read-through cache in front of a
// ports.UserDirectory. Each user is cached on its own key with a TTL, so a
// lookup only reaches the identity service for ids not seen recently.
package usercache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"

	"github.com/jsamuelsen11/project-service/internal/ports"
)

const keyPrefix = "usercache:"

// Compile-time check that Cache implements ports.UserDirectory.
var _ ports.UserDirectory = (*Cache)(nil)

// Cache decorates a UserDirectory. Redis failures are logged and bypass
// the cache; they never fail a lookup the directory can serve.
type Cache struct {
	next   ports.UserDirectory
	client goredis.UniversalClient
	ttl    time.Duration
	logger *slog.Logger
}

// New creates a Cache. A nil logger discards output.
func New(next ports.UserDirectory, client goredis.UniversalClient, ttl time.Duration, logger *slog.Logger) *Cache {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Cache{next: next, client: client, ttl: ttl, logger: logger}
}

type entry struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
}

func key(id uuid.UUID) string { return keyPrefix + id.String() }

// GetUserInfo returns cached users and fetches the rest from the wrapped
// directory. Results follow the order of ids.
func (c *Cache) GetUserInfo(ctx context.Context, ids []uuid.UUID) ([]ports.UserInfo, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	found := c.lookup(ctx, ids)

	var missing []uuid.UUID
	for _, id := range ids {
		if _, ok := found[id]; !ok {
			missing = append(missing, id)
		}
	}

	if len(missing) > 0 {
		fetched, err := c.next.GetUserInfo(ctx, missing)
		if err != nil {
			return nil, err
		}
		for _, u := range fetched {
			found[u.ID] = u
		}
		c.store(ctx, fetched)
	}

	out := make([]ports.UserInfo, 0, len(ids))
	for _, id := range ids {
		if u, ok := found[id]; ok {
			out = append(out, u)
		}
	}
	return out, nil
}

func (c *Cache) lookup(ctx context.Context, ids []uuid.UUID) map[uuid.UUID]ports.UserInfo {
	found := make(map[uuid.UUID]ports.UserInfo, len(ids))

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = key(id)
	}

	values, err := c.client.MGet(ctx, keys...).Result()
	if err != nil {
		c.logger.WarnContext(ctx, "user cache read failed",
			slog.String("operation", "usercache.lookup"),
			slog.Any("error", err),
		)
		return found
	}

	for _, v := range values {
		raw, ok := v.(string)
		if !ok {
			continue
		}
		var e entry
		if err := json.Unmarshal([]byte(raw), &e); err != nil {
			continue
		}
		found[e.ID] = ports.UserInfo{ID: e.ID, Username: e.Username}
	}
	return found
}

func (c *Cache) store(ctx context.Context, users []ports.UserInfo) {
	if len(users) == 0 {
		return
	}

	pipe := c.client.Pipeline()
	for _, u := range users {
		payload, err := json.Marshal(entry{ID: u.ID, Username: u.Username})
		if err != nil {
			continue
		}
		pipe.Set(ctx, key(u.ID), payload, c.ttl)
	}
	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, goredis.Nil) {
		c.logger.WarnContext(ctx, "user cache write failed",
			slog.String("operation", "usercache.store"),
			slog.Int("users", len(users)),
			slog.Any("error", err),
		)
	}
}

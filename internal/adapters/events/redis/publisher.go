// Package redis publishes domain events to redis pub/sub. Each event is
// sent as JSON on the channel "{prefix}.{topic}".
package redis

import (
	"context"
	"encoding/json"
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"github.com/jsamuelsen11/project-service/internal/domain"
	"github.com/jsamuelsen11/project-service/internal/ports"
)

// Compile-time checks that Publisher implements the ports it serves.
var (
	_ ports.EventPublisher = (*Publisher)(nil)
	_ ports.HealthChecker  = (*Publisher)(nil)
)

// Publisher sends events with PUBLISH. Delivery is at most once: redis
// drops messages no subscriber is listening for.
type Publisher struct {
	client goredis.UniversalClient
	prefix string
}

// NewPublisher creates a Publisher. An empty prefix publishes on the bare
// topic name.
func NewPublisher(client goredis.UniversalClient, prefix string) *Publisher {
	return &Publisher{client: client, prefix: prefix}
}

// Channel returns the channel an event topic is published on.
func (p *Publisher) Channel(topic string) string {
	if p.prefix == "" {
		return topic
	}
	return p.prefix + "." + topic
}

func (p *Publisher) Publish(ctx context.Context, event ports.Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encoding %s event: %w", event.Topic(), err)
	}
	if err := p.client.Publish(ctx, p.Channel(event.Topic()), payload).Err(); err != nil {
		return fmt.Errorf("publishing %s: %w: %w", event.Topic(), domain.ErrUnavailable, err)
	}
	return nil
}

// HealthCheck pings redis.
func (p *Publisher) HealthCheck(ctx context.Context) error {
	if err := p.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("ping redis: %w: %w", domain.ErrUnavailable, err)
	}
	return nil
}

// Name returns the health check name.
func (p *Publisher) Name() string { return "redis" }

package realtime

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"pawtrack/config"
	"pawtrack/internal/domain/service"
	"pawtrack/internal/errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// redisRelay publishes events to Redis so that every instance delivers them
// into its own hub. Events for users with no session anywhere are dropped.
type redisRelay struct {
	client *redis.Client
	hub    *Hub
	prefix string
	logger *slog.Logger

	sub  *redis.PubSub
	wg   sync.WaitGroup
	once sync.Once
}

func newRedisRelay(ctx context.Context, cfg *config.RedisConfig, hub *Hub, logger *slog.Logger) (*redisRelay, error) {
	if cfg == nil {
		return nil, errors.New("redis configuration is required for redis realtime provider")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()

		return nil, errors.Wrap(err, "redis connection failed")
	}

	prefix := cfg.KeyPrefix
	if prefix == "" {
		prefix = "pawtrack"
	}

	relay := &redisRelay{
		client: client,
		hub:    hub,
		prefix: prefix,
		logger: logger,
	}
	relay.sub = client.PSubscribe(ctx, prefix+":user:*")
	// Wait for the subscription confirmation so no event published after
	// startup is missed.
	if _, err := relay.sub.Receive(ctx); err != nil {
		_ = relay.sub.Close()
		_ = client.Close()

		return nil, errors.Wrap(err, "redis psubscribe failed")
	}

	relay.wg.Add(1)
	go relay.consume()

	return relay, nil
}

func (r *redisRelay) channel(userID uuid.UUID) string {
	return r.prefix + ":" + userRoom(userID)
}

// userFromChannel extracts the user id from a relay channel name.
func userFromChannel(prefix, channel string) (uuid.UUID, bool) {
	rest, ok := strings.CutPrefix(channel, prefix+":user:")
	if !ok {
		return uuid.Nil, false
	}
	userID, err := uuid.Parse(rest)
	if err != nil {
		return uuid.Nil, false
	}

	return userID, true
}

// Publish hands the event to Redis. Local delivery happens when this
// instance receives its own message back.
func (r *redisRelay) Publish(ctx context.Context, userID uuid.UUID, event *service.RealtimeEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return errors.Wrap(err, "failed to encode realtime event")
	}
	if err := r.client.Publish(ctx, r.channel(userID), payload).Err(); err != nil {
		return errors.Wrap(err, "failed to publish realtime event")
	}

	return nil
}

func (r *redisRelay) consume() {
	defer r.wg.Done()

	for msg := range r.sub.Channel() {
		userID, ok := userFromChannel(r.prefix, msg.Channel)
		if !ok {
			r.logger.Warn("ignoring realtime message on unexpected channel", slog.String("channel", msg.Channel))

			continue
		}

		var envelope struct {
			Event string `json:"event"`
		}
		if err := json.Unmarshal([]byte(msg.Payload), &envelope); err != nil {
			r.logger.Warn("ignoring malformed realtime message", slog.Any("error", err))

			continue
		}

		r.hub.deliver(userRoom(userID), envelope.Event, []byte(msg.Payload))
	}
}

// Close stops the subscription, then the hub.
func (r *redisRelay) Close() error {
	var err error
	r.once.Do(func() {
		err = errors.Join(r.sub.Close(), r.client.Close())
		r.wg.Wait()
		err = errors.Join(err, r.hub.Close())
	})

	return err
}

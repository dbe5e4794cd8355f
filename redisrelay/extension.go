package redisrelay

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/xraph/cadence/ext"
	"github.com/xraph/cadence/lane"
	"github.com/xraph/cadence/request"
)

// DefaultChannel is the Pub/Sub channel events are published to unless
// overridden with WithChannel.
const DefaultChannel = "cadence:events"

// Publisher is the slice of the Redis API the extension needs.
// *redis.Client, *redis.ClusterClient, and anything implementing
// redis.Cmdable satisfy it.
type Publisher interface {
	Publish(ctx context.Context, channel string, message any) *redis.IntCmd
}

// Compile-time interface checks.
var (
	_ ext.Extension         = (*Extension)(nil)
	_ ext.RequestEnqueued   = (*Extension)(nil)
	_ ext.LaneTrimmed       = (*Extension)(nil)
	_ ext.DispatchStarted   = (*Extension)(nil)
	_ ext.DispatchCompleted = (*Extension)(nil)
	_ ext.DispatchRetrying  = (*Extension)(nil)
	_ ext.DispatchFailed    = (*Extension)(nil)
	_ ext.DispatchCancelled = (*Extension)(nil)
	_ ext.Shutdown          = (*Extension)(nil)
)

// Extension publishes scheduler lifecycle events to a Redis Pub/Sub
// channel as JSON. Each lifecycle hook maps to one event type.
type Extension struct {
	client  Publisher
	channel string
	enabled map[string]bool // nil = all enabled
}

// New creates an Extension that publishes lifecycle events through the
// provided Redis client.
func New(client Publisher, opts ...Option) *Extension {
	h := &Extension{client: client, channel: DefaultChannel}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Name implements ext.Extension.
func (h *Extension) Name() string { return "redis-relay" }

// Channel returns the Pub/Sub channel events are published to.
func (h *Extension) Channel() string { return h.channel }

// OnRequestEnqueued implements ext.RequestEnqueued.
func (h *Extension) OnRequestEnqueued(ctx context.Context, model string, class lane.Class, req request.Request) error {
	return h.publish(ctx, &Event{
		Type:        EventRequestEnqueued,
		Model:       model,
		Lane:        class.String(),
		RequestType: req.Type(),
	})
}

// OnLaneTrimmed implements ext.LaneTrimmed.
func (h *Extension) OnLaneTrimmed(ctx context.Context, model string, dropped int) error {
	return h.publish(ctx, &Event{
		Type:    EventLaneTrimmed,
		Model:   model,
		Lane:    lane.GroupNormal.String(),
		Dropped: dropped,
	})
}

// OnDispatchStarted implements ext.DispatchStarted.
func (h *Extension) OnDispatchStarted(ctx context.Context, model string, req request.Request) error {
	return h.publish(ctx, h.dispatchEvent(EventDispatchStarted, model, req))
}

// OnDispatchCompleted implements ext.DispatchCompleted.
func (h *Extension) OnDispatchCompleted(ctx context.Context, model string, req request.Request, elapsed time.Duration) error {
	e := h.dispatchEvent(EventDispatchCompleted, model, req)
	e.ElapsedMs = elapsed.Milliseconds()
	return h.publish(ctx, e)
}

// OnDispatchRetrying implements ext.DispatchRetrying.
func (h *Extension) OnDispatchRetrying(ctx context.Context, model string, req request.Request, attempt int) error {
	e := h.dispatchEvent(EventDispatchRetrying, model, req)
	e.Attempt = attempt
	return h.publish(ctx, e)
}

// OnDispatchFailed implements ext.DispatchFailed.
func (h *Extension) OnDispatchFailed(ctx context.Context, model string, req request.Request, dispatchErr error) error {
	e := h.dispatchEvent(EventDispatchFailed, model, req)
	e.Error = dispatchErr.Error()
	return h.publish(ctx, e)
}

// OnDispatchCancelled implements ext.DispatchCancelled.
func (h *Extension) OnDispatchCancelled(ctx context.Context, model string, req request.Request) error {
	return h.publish(ctx, h.dispatchEvent(EventDispatchCancelled, model, req))
}

// OnShutdown implements ext.Shutdown.
func (h *Extension) OnShutdown(ctx context.Context) error {
	return h.publish(ctx, &Event{Type: EventShutdown})
}

func (h *Extension) dispatchEvent(typ, model string, req request.Request) *Event {
	return &Event{
		Type:        typ,
		Model:       model,
		RequestType: req.Type(),
		RetryCount:  req.RetryCount(),
	}
}

func (h *Extension) publish(ctx context.Context, e *Event) error {
	if h.enabled != nil && !h.enabled[e.Type] {
		return nil
	}
	e.Timestamp = time.Now().UTC()

	payload, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("marshal %s event: %w", e.Type, err)
	}
	if err := h.client.Publish(ctx, h.channel, payload).Err(); err != nil {
		return fmt.Errorf("publish %s event: %w", e.Type, err)
	}
	return nil
}

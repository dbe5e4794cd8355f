// Package redisrelay bridges scheduler lifecycle events to a Redis
// Pub/Sub channel. When registered as an extension, it publishes typed
// JSON events (cadence.dispatch.completed, cadence.lane.trimmed, etc.)
// at every lifecycle point, letting external consumers observe a
// scheduler without linking against it.
//
// Usage:
//
//	client := redis.NewClient(&redis.Options{Addr: "localhost:6379"})
//
//	s, _ := cadence.New(
//	    cadence.WithExtension(redisrelay.New(client)),
//	)
//
// To restrict which events are published:
//
//	hook := redisrelay.New(client,
//	    redisrelay.WithEvents(
//	        redisrelay.EventDispatchFailed,
//	        redisrelay.EventLaneTrimmed,
//	    ),
//	)
package redisrelay

// Package cadence provides an outbound-request admission and dispatch
// scheduler for rate-limited model backends.
//
// Cadence sits between many producers of "call this model backend"
// work items and a single asynchronous execution callback per process.
// It never dispatches to a model faster than that model's configured
// cadence, interleaves six priority classes of traffic fairly, retries
// failed calls a bounded number of times with top priority, and shuts
// down without losing track of work already in flight.
//
// Cadence is a library, not a service. Create a Scheduler, admit
// requests, and supply a handler:
//
//	s, err := cadence.New(
//	    cadence.WithMaxRetries(3),
//	    cadence.WithIntervals(map[string]time.Duration{
//	        "gpt-x": 2 * time.Second,
//	    }),
//	)
//	s.AddPrivateRequest(req, "gpt-x")
//	s.Start(func(ctx context.Context, req request.Request) error {
//	    return backend.Send(ctx, req)
//	})
//	defer s.Stop(context.Background())
//
// # Architecture
//
// Each model name owns six FIFO lanes (retry, superadmin, private,
// group-mention, group-normal, background) and one scheduler loop.
// A loop departs exactly one dispatch decision per interval — the
// "train departs" cadence — whether or not any lane has ready work.
// Dispatches are fire-and-forget flights registered in a process-wide
// in-flight tracker so Stop can cancel and join every one of them.
//
// Requests are opaque, producer-owned records; the scheduler reads
// only the "type" field and manages its own retry counter.
package cadence

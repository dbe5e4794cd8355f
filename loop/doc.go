// Package loop implements the per-model scheduler loop and the flight
// executor.
//
// Each model runs exactly one Loop goroutine. A cycle selects at most
// one request — retry lane first, then a weighted round robin over the
// four fair lanes, then background — and fires it off as a tracked,
// fire-and-forget flight. The loop then holds its cadence: the next
// cycle departs no sooner than the model's configured interval after
// the previous one, whether or not any lane had work.
package loop

// Package lane implements the per-model priority lanes: six independent
// FIFO queues distinguished by traffic class, bundled into a Set.
//
// Producers append from any goroutine; only the model's scheduler loop
// pops. Appends always succeed — lanes are unbounded except for the
// group-normal trim policy, which caps ambient chat traffic by dropping
// the oldest undispatched items on overflow.
package lane

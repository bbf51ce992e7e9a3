package register

import "sync/atomic"

// Event is a single-slot, one-shot, edge-triggered command register. A Post
// overwrites any unconsumed value (latest command wins, no queue); a
// successful Consume delivers the value exactly once under the intended
// single-producer/single-consumer contract.
//
// The zero value is an empty, ready-to-use channel. An Event must not be
// copied after first use.
//
// With multiple concurrent consumers the same value may be delivered more
// than once before the flag clears; that is a caller constraint, never
// corruption.
type Event[T any] struct {
	val   T
	ready atomic.Bool
}

// Post publishes v and marks the channel ready. The value store happens
// before the flag store, so a consumer that observes ready also observes v.
func (e *Event[T]) Post(v T) {
	e.val = v
	e.ready.Store(true)
}

// Consume delivers the pending value, if any, and clears the readiness flag.
// It reports false, returning the zero value, when nothing is pending.
func (e *Event[T]) Consume() (v T, ok bool) {
	if !e.ready.Load() {
		return v, false
	}
	v = e.val
	e.ready.Store(false)
	return v, true
}

// Pending reports whether a posted value is waiting, without consuming it.
func (e *Event[T]) Pending() bool { return e.ready.Load() }

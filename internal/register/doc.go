// Package register implements the lock-free single-writer registers that back
// regbus channels: a double-buffered latest-value register (Snapshot) and a
// single-slot edge-triggered command register (Event).
//
// Both registers are fixed-size value types whose zero value is ready to use.
// No operation in this package locks, blocks, allocates, or calls into the
// scheduler; the package imports nothing outside the standard library and
// must stay that way (a guardrail test enforces it).
//
// Memory-ordering note: Snapshot readers copy the payload while the writer
// may be filling the other slot. The seqlock-style validation (selector and
// stamp re-checks) discards any copy that overlapped a slot flip or a second
// write to the same slot, so a successful Read always returns one complete
// write. The payload copy itself is a plain (non-atomic) copy, which Go's
// race detector flags as a data race even though the validation protocol
// makes a torn result unobservable; concurrency hammer tests therefore skip
// themselves under -race.
package register

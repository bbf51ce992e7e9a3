// Package regbus is an in-process, allocation-free data-exchange layer for
// single-writer/multi-reader real-time loops. A producer publishes
// timestamped state or discrete commands; any number of consumers observe
// the latest coherent value without blocking the producer or each other.
//
// Two channel primitives carry all data. Snapshot is a double-buffered
// latest-value register: Write is wait-free, Read validates its copy against
// the slot selector and sequence stamp and retries if a write overlapped it,
// so a successful Read always returns one complete write. Event is a
// single-slot, one-shot, edge-triggered command register: Post overwrites
// any unconsumed value and Consume delivers it exactly once under the
// single-consumer contract. Payloads must be fixed-size, copy-by-value
// types with no owned indirection; CheckPayload verifies that at test time.
//
// A bus aggregates channels under a closed key set. Declare the keys in a
// manifest and run regbus-gen to get a struct with one field and one typed
// accessor per key: key resolution is direct field access, an undeclared key
// or a kind-mismatched operation is a compile error, and Footprint reports
// the bus's fixed storage cost. Hand-declared bus structs work identically;
// the generator is convenience, not a runtime dependency.
//
// # Monitoring
//
// The Monitor is an optional, out-of-band observability service. It sweeps
// registered bus probes on a timer and exposes the samples as structured
// logs, Prometheus metrics, sample hooks, and a JSON debug API. It never
// sits between producers and consumers; probes are lock-free observers and
// a monitor outage cannot affect channel operations.
//
// # Caveats
//
// Snapshot's validated read intentionally copies a payload the writer may be
// overwriting in the other slot; the validation protocol discards any
// overlapped copy, but Go's race detector reports the copy as a race. Run
// data-plane hammer tests without -race or skip them under it.
package regbus

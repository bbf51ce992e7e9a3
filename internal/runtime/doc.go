// Package runtime hosts the regbus monitor: an out-of-band observability
// service that periodically samples registered bus probes and exposes the
// results through structured logs, Prometheus metrics, sample hooks, and an
// optional debug API.
//
// The monitor never sits on the data plane. Producers and consumers operate
// on channels directly; probes are lock-free observers whose sweeps cannot
// block or slow a channel operation.
package runtime

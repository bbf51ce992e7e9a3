package register

import "sync/atomic"

// Snapshot is a double-buffered latest-value register for a single producer
// and any number of concurrent readers. T must be a fixed-size value type
// with no owned indirection (no pointers, slices, maps, strings, channels,
// funcs, or interfaces anywhere inside it); it is copied whole on every
// operation.
//
// The zero value is an empty, ready-to-use channel. A Snapshot must not be
// copied after first use.
//
// The single-producer rule is a caller contract, not enforced at runtime:
// concurrent writers can publish stale or interleaved values but can never
// corrupt a reader's result.
type Snapshot[T any] struct {
	buf [2]T
	seq [2]atomic.Uint32
	ctr atomic.Uint32
	idx atomic.Uint32
	has atomic.Bool
}

// Write publishes v as the new latest value. Wait-free and constant time:
// it never blocks, never fails, and never touches the slot a reader might
// currently be copying from. Producer role only.
func (s *Snapshot[T]) Write(v T) {
	// The inactive slot is by construction not the one readers are copying.
	nxt := s.idx.Load() ^ 1
	s.buf[nxt] = v
	s.seq[nxt].Store(s.ctr.Add(1))
	// Stamp and payload must be visible before the selector flips; Go's
	// atomic stores are sequentially consistent, so program order holds.
	s.idx.Store(nxt)
	s.has.Store(true)
}

// Read returns the most recently published value together with its sequence
// stamp. It reports false only if no Write has ever completed. Lock-free:
// concurrent readers never block each other or the writer.
//
// The validation loop re-checks the slot selector and the slot's stamp after
// copying; a mismatch means the copy overlapped a write and the copy is
// discarded and retried. The loop has no hard bound, but each retry races
// only against a fixed-size copy in the writer, so it terminates after very
// few iterations in practice.
func (s *Snapshot[T]) Read() (v T, seq uint32, ok bool) {
	if !s.has.Load() {
		return v, 0, false
	}
	for {
		i1 := s.idx.Load()
		s1 := s.seq[i1].Load()
		tmp := s.buf[i1]
		if s.idx.Load() != i1 {
			// Selector flipped mid-copy.
			continue
		}
		if s.seq[i1].Load() != s1 {
			// Copy straddled two writes into the same slot.
			continue
		}
		return tmp, s1, true
	}
}

// Has reports whether any Write has ever completed.
func (s *Snapshot[T]) Has() bool { return s.has.Load() }

// Writes returns the number of completed writes, i.e. the sequence stamp the
// most recent Write assigned. Lock-free; intended for observers such as the
// monitor, not for the read path.
func (s *Snapshot[T]) Writes() uint32 { return s.ctr.Load() }

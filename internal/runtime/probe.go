package runtime

import (
	"time"

	"github.com/Mrunmoy/regbus/internal/register"
)

// Probe is a lock-free observer over a single channel of a bus. Generated
// bus types build one per key; hand-declared busses can do the same. Probes
// are sampled by the monitor's sweep loop and never touch payload data.
type Probe struct {
	// Key is the channel's key name within its bus.
	Key string
	// Kind reports whether the channel is a data or command register.
	Kind register.Kind
	// Size is the channel's fixed storage footprint in bytes.
	Size uintptr
	// Ready reports Has() for data channels and Pending() for command
	// channels. Must be lock-free and safe to call from the monitor
	// goroutine.
	Ready func() bool
	// Writes reports the channel's completed write count. Nil for command
	// channels.
	Writes func() uint32
}

// KeyStatus is the sampled state of one channel.
type KeyStatus struct {
	Key    string `json:"key"`
	Kind   string `json:"kind"`
	Ready  bool   `json:"ready"`
	Writes uint32 `json:"writes"`
}

// BusStatus is a point-in-time view of one registered bus.
type BusStatus struct {
	Name           string      `json:"name"`
	FootprintBytes uint64      `json:"footprint_bytes"`
	Keys           []KeyStatus `json:"keys"`
	SampledAt      time.Time   `json:"sampled_at"`
}

func sampleProbe(p Probe) KeyStatus {
	st := KeyStatus{
		Key:   p.Key,
		Kind:  p.Kind.String(),
		Ready: p.Ready != nil && p.Ready(),
	}
	if p.Writes != nil {
		st.Writes = p.Writes()
	}
	return st
}

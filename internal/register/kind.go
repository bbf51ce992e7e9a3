package register

// Kind classifies a channel as continuous data or discrete command, which
// determines its legal operation set.
type Kind uint8

const (
	// KindData marks a double-buffered latest-value channel (Snapshot).
	KindData Kind = iota
	// KindCmd marks a one-shot edge-triggered command channel (Event).
	KindCmd
)

func (k Kind) String() string {
	switch k {
	case KindData:
		return "data"
	case KindCmd:
		return "cmd"
	default:
		return "unknown"
	}
}

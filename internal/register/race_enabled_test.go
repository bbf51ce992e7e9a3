//go:build race

package register

// raceEnabled reports whether the race detector is active. The concurrency
// hammer tests skip under -race: the seqlock payload copy intentionally
// races with the writer and relies on validation, which the detector cannot
// model.
const raceEnabled = true

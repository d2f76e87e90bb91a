package prand

// streamState is the capability set every backend's state must expose to
// the façade, letting Generator dispatch without knowing which concrete
// backend it holds — the "trait/interface over a capability set" dynamic
// dispatch option.
type streamState interface {
	next() uint64
	nextDouble() float64
	nextDoublePos() float64
	jump(step uint64) error
	clone() streamState
	reseed(seed uint64) streamState
}

package prand

import (
	"github.com/chronoseed/prandgo/pkg/prand/mrg32k3a"
	"github.com/chronoseed/prandgo/pkg/prand/mt19937"
)

// mrg32k3aStream and mt19937Stream are same-package adapters over each
// backend's *State: Go does not allow a foreign package's method to return
// an interface type defined in the importing package, so clone()'s return
// type of streamState has to be produced here rather than in mrg32k3a or
// mt19937 themselves.
type mrg32k3aStream struct{ s *mrg32k3a.State }
type mt19937Stream struct{ s *mt19937.State }

func (a mrg32k3aStream) next() uint64            { return a.s.Next() }
func (a mrg32k3aStream) nextDouble() float64     { return a.s.NextDouble() }
func (a mrg32k3aStream) nextDoublePos() float64  { return a.s.NextDoublePos() }
func (a mrg32k3aStream) jump(step uint64) error  { return a.s.Jump(step) }
func (a mrg32k3aStream) clone() streamState      { return mrg32k3aStream{a.s.Clone()} }
func (a mrg32k3aStream) reseed(seed uint64) streamState {
	return mrg32k3aStream{mrg32k3a.New(seed)}
}

func (a mt19937Stream) next() uint64            { return a.s.Next() }
func (a mt19937Stream) nextDouble() float64     { return a.s.NextDouble() }
func (a mt19937Stream) nextDoublePos() float64  { return a.s.NextDoublePos() }
func (a mt19937Stream) jump(step uint64) error  { return a.s.Jump(step) }
func (a mt19937Stream) clone() streamState      { return mt19937Stream{a.s.Clone()} }
func (a mt19937Stream) reseed(seed uint64) streamState {
	return mt19937Stream{mt19937.New(seed)}
}

// buildStreams seeds stream 0 from seed (substituting the default seed and
// reporting a warning when seed == 0) and populates streams 1..n-1 by
// advancing stream i-1 by step, computing the jump-ahead operator once and
// reusing it across the whole batch. step == 0 means every stream is an
// exact duplicate of stream 0 — ComputeStep(0) is not called for this case,
// since both cores fall back to a one-step advance (A^1 / t^1) rather than
// an identity when handed a zero step, matching the reference's own
// callers, which never invoke get_poly/matrix_pow for a zero step and
// instead copy stream 0 directly.
func buildStreams(backend Backend, seed uint64, n int, step uint64) ([]streamState, error, bool) {
	defaulted := false
	if seed == 0 {
		seed = 1
		defaulted = true
	}

	streams := make([]streamState, n)

	switch backend {
	case MRG32k3a:
		streams[0] = mrg32k3aStream{mrg32k3a.New(seed)}
		if n > 1 && step == 0 {
			for i := 1; i < n; i++ {
				streams[i] = mrg32k3aStream{streams[0].(mrg32k3aStream).s.Clone()}
			}
		} else if n > 1 {
			op, err := mrg32k3a.ComputeStep(step)
			if err != nil {
				return nil, err, false
			}
			prev := streams[0].(mrg32k3aStream).s
			for i := 1; i < n; i++ {
				next := prev.Advance(op)
				streams[i] = mrg32k3aStream{next}
				prev = next
			}
		}
	case MT19937:
		streams[0] = mt19937Stream{mt19937.New(seed)}
		if n > 1 && step == 0 {
			for i := 1; i < n; i++ {
				streams[i] = mt19937Stream{streams[0].(mt19937Stream).s.Clone()}
			}
		} else if n > 1 {
			op, err := mt19937.ComputeStep(step)
			if err != nil {
				return nil, err, false
			}
			prev := streams[0].(mt19937Stream).s
			for i := 1; i < n; i++ {
				next := prev.Advance(op)
				streams[i] = mt19937Stream{next}
				prev = next
			}
		}
	default:
		return nil, newCodeError("New", ErrUndefinedBackend), false
	}

	return streams, nil, defaulted
}

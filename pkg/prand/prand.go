// Package prand is a uniform façade over multiple pseudo-random number
// generator backends (MRG32k3a, MT19937), each of which can jump ahead by a
// fixed step to produce N parallel, non-overlapping streams from a single
// seed. It carries no logging or I/O of its own — construction, drawing,
// and jump-ahead are the entire surface.
package prand

import (
	"github.com/chronoseed/prandgo/pkg/prand/mrg32k3a"
	"github.com/chronoseed/prandgo/pkg/prand/mt19937"
)

// Backend identifies which generator core a Generator dispatches to.
type Backend int

const (
	MRG32k3a Backend = iota
	MT19937
)

func (b Backend) String() string {
	switch b {
	case MRG32k3a:
		return "mrg32k3a"
	case MT19937:
		return "mt19937"
	default:
		return "undefined"
	}
}

// MaxStep is the largest single jump either backend's precomputed base-8
// digit tables cover: 8^21 - 1 = 2^63 - 1.
const MaxStep = uint64(1)<<63 - 1

// Generator owns N independent, parallel streams of one backend, all
// derived from a common seed by jumping ahead a fixed number of positions
// per stream. Stream indices are stable for the Generator's lifetime.
//
// Concurrent Get/Jump/Reset calls on the *same* stream index race; calls on
// distinct stream indices are race-free as long as JumpAll/ResetAll are not
// in flight, since those mutate every stream. A common usage pattern is to
// hand each worker goroutine its own stream index for the Generator's
// lifetime.
type Generator struct {
	backend Backend
	streams []streamState
}

// New allocates a Generator with nstream parallel streams of backend,
// seeded from seed and spaced step positions apart. nstream <= 0 is treated
// as 1. step must not exceed MaxStep.
//
// If seed == 0, the default seed (1) is substituted and New returns both a
// valid, fully usable *Generator and ErrSeedDefaulted wrapped in a
// *codeError — the returned handle is safe to use immediately; the error is
// a warning, not a construction failure. Any other non-nil error means
// construction failed and the returned *Generator is nil.
func New(backend Backend, seed uint64, nstream int, step uint64) (*Generator, error) {
	if backend != MRG32k3a && backend != MT19937 {
		return nil, newCodeError("New", ErrUndefinedBackend)
	}
	if step > MaxStep {
		return nil, newCodeError("New", ErrStepTooLarge)
	}
	if nstream <= 0 {
		nstream = 1
	}

	streams, err, defaulted := buildStreams(backend, seed, nstream, step)
	if err != nil {
		return nil, err
	}

	g := &Generator{backend: backend, streams: streams}
	if defaulted {
		return g, newCodeError("New", ErrSeedDefaulted)
	}
	return g, nil
}

// Close releases g's reference to its streams. It exists for parity with
// the reference implementation's explicit destroy() call and to let a
// caller state "I am done with this handle"; Go's garbage collector
// reclaims the memory regardless.
func (g *Generator) Close() {
	g.streams = nil
}

// Backend reports which generator core g dispatches to.
func (g *Generator) Backend() Backend { return g.backend }

// NStream reports the number of parallel streams g owns.
func (g *Generator) NStream() int { return len(g.streams) }

// Min is the smallest value Get can return.
func (g *Generator) Min() uint64 {
	switch g.backend {
	case MRG32k3a:
		return mrg32k3a.Min
	default:
		return mt19937.Min
	}
}

// Max is the largest value Get can return.
func (g *Generator) Max() uint64 {
	switch g.backend {
	case MRG32k3a:
		return mrg32k3a.Max
	default:
		return mt19937.Max
	}
}

func (g *Generator) stream(op string, i int) (streamState, error) {
	if i < 0 || i >= len(g.streams) {
		return nil, invalidStreamError(op, i)
	}
	return g.streams[i], nil
}

// Get draws the next integer in [Min, Max] from stream i.
func (g *Generator) Get(i int) (uint64, error) {
	s, err := g.stream("Get", i)
	if err != nil {
		return 0, err
	}
	return s.next(), nil
}

// GetDouble draws the next value in [0, 1) from stream i.
func (g *Generator) GetDouble(i int) (float64, error) {
	s, err := g.stream("GetDouble", i)
	if err != nil {
		return 0, err
	}
	return s.nextDouble(), nil
}

// GetDoublePos draws the next value in (0, 1) from stream i.
func (g *Generator) GetDoublePos(i int) (float64, error) {
	s, err := g.stream("GetDoublePos", i)
	if err != nil {
		return 0, err
	}
	return s.nextDoublePos(), nil
}

// Jump advances stream i in place by step positions.
func (g *Generator) Jump(i int, step uint64) error {
	s, err := g.stream("Jump", i)
	if err != nil {
		return err
	}
	if step > MaxStep {
		return newCodeError("Jump", ErrStepTooLarge)
	}
	return s.jump(step)
}

// JumpAll advances every stream in place by step positions, computing the
// jump-ahead operator once and reusing it across every stream rather than
// recomputing it per stream. It must not race with any other operation
// on g.
func (g *Generator) JumpAll(step uint64) error {
	if step > MaxStep {
		return newCodeError("JumpAll", ErrStepTooLarge)
	}
	if step == 0 {
		return nil
	}

	switch g.backend {
	case MRG32k3a:
		op, err := mrg32k3a.ComputeStep(step)
		if err != nil {
			return err
		}
		for _, s := range g.streams {
			st := s.(mrg32k3aStream).s
			*st = *st.Advance(op)
		}
	case MT19937:
		op, err := mt19937.ComputeStep(step)
		if err != nil {
			return err
		}
		for _, s := range g.streams {
			st := s.(mt19937Stream).s
			*st = *st.Advance(op)
		}
	}
	return nil
}

// Reset re-seeds stream i with seed (substituting the default and
// returning ErrSeedDefaulted as a warning if seed == 0) and advances it by
// step positions from that freshly seeded state.
func (g *Generator) Reset(i int, seed, step uint64) error {
	s, err := g.stream("Reset", i)
	if err != nil {
		return err
	}
	if step > MaxStep {
		return newCodeError("Reset", ErrStepTooLarge)
	}

	defaulted := seed == 0
	if defaulted {
		seed = 1
	}
	fresh := s.reseed(seed)
	if step > 0 {
		if err := fresh.jump(step); err != nil {
			return err
		}
	}
	g.streams[i] = fresh
	if defaulted {
		return newCodeError("Reset", ErrSeedDefaulted)
	}
	return nil
}

// ResetAll re-seeds stream 0 with seed and rebuilds streams 1..N-1 exactly
// as New does, advancing each from the previous by step. As in New, a zero
// seed is replaced by the default and ErrSeedDefaulted is returned as a
// warning, with every stream rebuilt and usable. It does not change
// NStream or Backend. It must not race with any other operation on g.
func (g *Generator) ResetAll(seed, step uint64) error {
	if step > MaxStep {
		return newCodeError("ResetAll", ErrStepTooLarge)
	}
	streams, err, defaulted := buildStreams(g.backend, seed, len(g.streams), step)
	if err != nil {
		return err
	}
	g.streams = streams
	if defaulted {
		return newCodeError("ResetAll", ErrSeedDefaulted)
	}
	return nil
}

// Package mrg32k3a implements L'Ecuyer's MRG32k3a combined multiple
// recursive generator, together with matrix-exponentiation jump-ahead so
// that independent streams can be spawned at equally spaced offsets of the
// same underlying sequence.
package mrg32k3a

import "errors"

const (
	m1 = 4294967087 // 2^32 - 209
	m2 = 4294944443 // 2^32 - 22853

	a12 = 1403580
	a13 = -810728
	a21 = 527612
	a23 = -1370589

	// add1/add2 keep the transition's intermediate products non-negative:
	// add1 = m1 * |a13|, add2 = m2 * |a23|.
	add1 = 3482050076509336
	add2 = 5886603609186927

	normRange    = 0x1p-32               // 2^-32
	normPosRange = 0x1.000000cf0000ap-32 // 1 / (m1 + 2)

	defaultSeed = 1

	// MaxStep is the largest single jump the precomputed base-8 digit
	// tables cover: 8^21 - 1 = 2^63 - 1.
	MaxStep = uint64(1)<<63 - 1
)

// Min and Max bound every value State.Next returns.
const (
	Min uint64 = 0
	Max uint64 = m1 - 1
)

// ErrStepTooLarge is returned by ComputeStep and Jump when step exceeds
// MaxStep.
var ErrStepTooLarge = errors.New("mrg32k3a: jump step exceeds the maximum supported step")

// State is the six-word MRG32k3a state: three words for each of the two
// component recurrences mod m1 and m2.
type State struct {
	s10, s11, s12 int64
	s20, s21, s22 int64
}

// New seeds a fresh state from seed using the six-iteration LCG
// x <- 69069x+1 (mod 2^32), reducing the first three outputs mod m1 and
// the last three mod m2.
func New(seed uint64) *State {
	x := seed & 0xffffffff
	lcg := func() int64 {
		x = (69069*x + 1) & 0xffffffff
		return int64(x)
	}

	s := &State{}
	s.s10 = lcg() % m1
	s.s11 = lcg() % m1
	s.s12 = lcg() % m1
	s.s20 = lcg() % m2
	s.s21 = lcg() % m2
	s.s22 = lcg() % m2
	return s
}

// Clone returns an independent copy of s.
func (s *State) Clone() *State {
	c := *s
	return &c
}

// Next advances the state by one step and returns the combined output in
// [Min, Max].
func (s *State) Next() uint64 {
	p1 := (a12*s.s11 + a13*s.s10 + add1) % m1
	s.s10, s.s11, s.s12 = s.s11, s.s12, p1

	p2 := (a21*s.s22 + a23*s.s20 + add2) % m2
	s.s20, s.s21, s.s22 = s.s21, s.s22, p2

	if p1 <= p2 {
		return uint64(p1 - p2 + m1)
	}
	return uint64(p1 - p2)
}

// NextDouble returns a draw uniform in [0, 1).
func (s *State) NextDouble() float64 {
	return float64(s.Next()) * normRange
}

// NextDoublePos returns a draw uniform in (0, 1).
func (s *State) NextDoublePos() float64 {
	return (float64(s.Next()) + 1) * normPosRange
}

// Jump advances s in place by step positions using matrix exponentiation.
// step == 0 is a no-op; step > MaxStep leaves s unchanged and returns
// ErrStepTooLarge.
func (s *State) Jump(step uint64) error {
	if step == 0 {
		return nil
	}
	op, err := ComputeStep(step)
	if err != nil {
		return err
	}
	*s = *s.Advance(op)
	return nil
}

// Advance returns a new state equal to s advanced by the step previously
// computed into op, leaving s untouched.
func (s *State) Advance(op *Step) *State {
	out := &State{}
	v0, v1, v2 := matVec(op.a1, uint64(s.s10), uint64(s.s11), uint64(s.s12), uint64(m1))
	out.s10, out.s11, out.s12 = int64(v0), int64(v1), int64(v2)
	v0, v1, v2 = matVec(op.a2, uint64(s.s20), uint64(s.s21), uint64(s.s22), uint64(m2))
	out.s20, out.s21, out.s22 = int64(v0), int64(v1), int64(v2)
	return out
}

// matVec applies a jump-ahead matrix to a state vector mod m. Both matrix
// residues and state words are in [0, m), so their product can reach
// nearly (2^32)^2, which overflows int64 arithmetic; uint64 is required,
// matching the reference's state_forward.
func matVec(a matrix, v0, v1, v2, m uint64) (uint64, uint64, uint64) {
	s0 := (a[0]*v0%m + a[1]*v1%m + a[2]*v2%m) % m
	s1 := (a[3]*v0%m + a[4]*v1%m + a[5]*v2%m) % m
	s2 := (a[6]*v0%m + a[7]*v1%m + a[8]*v2%m) % m
	return s0, s1, s2
}

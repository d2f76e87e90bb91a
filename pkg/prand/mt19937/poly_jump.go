package mt19937

import (
	"sync"

	"github.com/chronoseed/prandgo/pkg/prand/gf2poly"
)

const polyDegree = 19937 // K in the reference

// Step is a precomputed GF(2) polynomial representing a fixed number of
// jump-ahead steps, reusable across many States (e.g. building N streams
// from one base seed only needs a single Step for the whole batch).
type Step struct {
	poly [n]uint32
}

// table holds, for each of the 21 base-8 digit positions i and each digit
// value g in [1,7], the polynomial t^(g * 8^i) mod phi, where t is the
// indeterminate representing one step of the state-transition recurrence
// and phi is MT19937's minimal polynomial. Built once, lazily, by repeated
// squaring from the base polynomial t^1 — see SPEC_FULL.md/DESIGN.md for
// why these are computed rather than transcribed as literal constants.
var (
	tableOnce sync.Once
	table     [21][7][n]uint32
)

func polyMulMod(a, b [n]uint32) [n]uint32 {
	prod := gf2poly.Mul(a[:], b[:])
	buf := make([]uint32, len(prod)+64)
	copy(buf, prod)
	return gf2poly.ModPhi(buf)
}

func polySquareMod(a [n]uint32) [n]uint32 {
	return polyMulMod(a, a)
}

func buildTable() {
	// base = t^1, i.e. the polynomial "x".
	var base [n]uint32
	base[0] = 2

	for i := 0; i < 21; i++ {
		g := base
		for d := 0; d < 7; d++ {
			table[i][d] = g
			g = polyMulMod(g, base)
		}
		// base <- base^8, by squaring three times, to advance the digit
		// position.
		base = polySquareMod(base)
		base = polySquareMod(base)
		base = polySquareMod(base)
	}
}

func ensureTable() {
	tableOnce.Do(buildTable)
}

// ComputeStep builds the jump-ahead polynomial for step positions, by
// decomposing step in base 8 and multiplying together the corresponding
// table entries modulo phi.
func ComputeStep(step uint64) (*Step, error) {
	if step > MaxStep {
		return nil, ErrStepTooLarge
	}
	ensureTable()

	var op Step
	init := false
	s := step
	for i := 0; s != 0; i++ {
		j := s & 7
		if j != 0 {
			if !init {
				op.poly = table[i][j-1]
				init = true
			} else {
				op.poly = polyMulMod(op.poly, table[i][j-1])
			}
		}
		s >>= 3
	}
	if !init {
		op.poly = table[0][0]
	}
	return &op, nil
}

func coef(x []uint32, i int) uint32 {
	return (x[i>>5] >> uint(i&0x1f)) & 1
}

// Advance returns a new state equal to s advanced by the step previously
// computed into op, leaving s untouched. It follows the Haramoto,
// Matsumoto & L'Ecuyer state-reconstruction algorithm: clone s, collect 2K
// raw recurrence bits by stepping the clone, multiply that bitstream's
// polynomial by the precomputed jump polynomial, extract the middle K
// coefficients, then rebuild the 624-word state Horner-style from them.
func (s *State) Advance(op *Step) *State {
	out := s.Clone()

	const k2 = 2 * polyDegree
	pm := make([]uint32, 2*n) // MulUnbalanced requires len(a) == 2*len(op.poly)
	for i := k2 - 1; i >= 0; i-- {
		bit := out.nextRaw() & 1
		pm[i>>5] |= bit << uint(i&0x1f)
	}

	ph := gf2poly.MulUnbalanced(pm, op.poly[:])

	pmid := make([]uint32, n)
	for i := 0; i <= polyDegree; i++ {
		j := k2 - 1 - i
		var bit uint32
		if j >= 0 && j>>5 < len(ph) {
			bit = coef(ph, j)
		}
		pmid[i>>5] |= bit << uint(i&0x1f)
	}

	recoverState(out, pmid)
	return out
}

// recoverState reconstructs the 624-word state array from a polynomial
// whose coefficients encode the recurrence's bit history, mirroring the
// reference's recover_state.
func recoverState(s *State, poly []uint32) {
	const k = polyDegree

	for i := k - n + 1; i <= k; i++ {
		s.mt[i%n] = coef(poly, i)
	}

	var y0 uint32
	for i := k + 1; i >= n-1; i-- {
		y1 := s.mt[i%n] ^ s.mt[(i+m)%n]
		if coef(poly, i-n+1) != 0 {
			y1 = ((y1 ^ matrixA) << 1) | 1
		} else {
			y1 <<= 1
		}
		s.mt[(i+1)%n] = (y0 & upperMask) | (y1 & lowerMask)
		y0 = y1
	}
	s.idx = 0
}

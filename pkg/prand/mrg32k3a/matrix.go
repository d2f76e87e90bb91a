package mrg32k3a

import "sync"

// matrix is a row-major flattened 3x3 matrix of residues.
type matrix [9]uint64

// baseA1 and baseA2 are the companion matrices of the two component
// recurrences: applying them once to a state vector is equivalent to one
// call to State.Next's per-component transition.
var (
	baseA1 = matrix{
		0, 1, 0,
		0, 0, 1,
		uint64(mod(a13, m1)), uint64(mod(a12, m1)), 0,
	}
	baseA2 = matrix{
		0, 1, 0,
		0, 0, 1,
		uint64(mod(a23, m2)), 0, uint64(mod(a21, m2)),
	}
)

func mod(v, m int64) int64 {
	r := v % m
	if r < 0 {
		r += m
	}
	return r
}

func matMul(a, b matrix, m uint64) matrix {
	var out matrix
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			var sum uint64
			for k := 0; k < 3; k++ {
				sum = (sum + (a[r*3+k]*b[k*3+c])%m) % m
			}
			out[r*3+c] = sum
		}
	}
	return out
}

// Step is a precomputed pair of jump-ahead matrices for a fixed number of
// steps, reusable across many States (e.g. building N streams from one
// base seed only needs a single Step for the whole batch).
type Step struct {
	a1, a2 matrix
}

// table1 and table2 hold, for each of the 21 base-8 digit positions i and each
// digit value g in [1,7], the matrices A_k^(g * 8^i) mod m_k. Built once,
// lazily, by repeated squaring from the base companion matrices — see
// SPEC_FULL.md/DESIGN.md for why these are computed rather than
// transcribed as literal constants.
var (
	tablesOnce sync.Once
	table1     [21][7]matrix
	table2     [21][7]matrix
)

// pow8 raises a matrix to the 8th power via three successive squarings.
func pow8(a matrix, m uint64) matrix {
	sq := matMul(a, a, m)   // a^2
	sq = matMul(sq, sq, m)  // a^4
	sq = matMul(sq, sq, m)  // a^8
	return sq
}

func buildTables() {
	base1, base2 := baseA1, baseA2
	for i := 0; i < 21; i++ {
		g1, g2 := base1, base2
		for g := 0; g < 7; g++ {
			table1[i][g] = g1
			table2[i][g] = g2
			g1 = matMul(g1, base1, m1)
			g2 = matMul(g2, base2, m2)
		}
		base1 = pow8(base1, m1) // base1 <- base1^8, by squaring three times
		base2 = pow8(base2, m2)
	}
}

func ensureTables() {
	tablesOnce.Do(buildTables)
}

// ComputeStep builds the jump-ahead matrix pair for step positions, by
// decomposing step in base 8 and multiplying together the corresponding
// table entries — see spec §4.2.
func ComputeStep(step uint64) (*Step, error) {
	if step > MaxStep {
		return nil, ErrStepTooLarge
	}
	ensureTables()

	var op Step
	init := false
	n := step
	for i := 0; n != 0; i++ {
		j := n & 7
		if j != 0 {
			if !init {
				op.a1 = table1[i][j-1]
				op.a2 = table2[i][j-1]
				init = true
			} else {
				op.a1 = matMul(table1[i][j-1], op.a1, m1)
				op.a2 = matMul(table2[i][j-1], op.a2, m2)
			}
		}
		n >>= 3
	}
	if !init {
		op.a1 = table1[0][0]
		op.a2 = table2[0][0]
	}
	return &op, nil
}

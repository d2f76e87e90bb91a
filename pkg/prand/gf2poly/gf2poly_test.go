package gf2poly

import "testing"

func TestMulWordIdentity(t *testing.T) {
	lo, hi := MulWord(1, 0x12345678)
	if lo != 0x12345678 || hi != 0 {
		t.Fatalf("1*b should equal b: got lo=%#x hi=%#x", lo, hi)
	}
}

func TestMulWordCommutative(t *testing.T) {
	a, b := uint32(0xdeadbeef), uint32(0x13572468)
	lo1, hi1 := MulWord(a, b)
	lo2, hi2 := MulWord(b, a)
	if lo1 != lo2 || hi1 != hi2 {
		t.Fatalf("GF(2) multiply should be commutative: (%#x,%#x) vs (%#x,%#x)", lo1, hi1, lo2, hi2)
	}
}

// mulNaive multiplies two word slices by testing every bit pair, used as a
// reference oracle for the recursive Karatsuba implementation.
func mulNaive(a, b []uint32) []uint32 {
	n := len(a)
	r := make([]uint32, 2*n)
	coef := func(s []uint32, i int) uint32 {
		if i < 0 || i/32 >= len(s) {
			return 0
		}
		return (s[i/32] >> uint(i%32)) & 1
	}
	setXor := func(i int, v uint32) {
		if v == 0 {
			return
		}
		r[i/32] ^= v << uint(i%32)
	}
	for i := 0; i < n*32; i++ {
		if coef(a, i) == 0 {
			continue
		}
		for j := 0; j < n*32; j++ {
			if coef(b, j) == 1 {
				setXor(i+j, 1)
			}
		}
	}
	return r
}

func TestMulAgainstNaiveOracle(t *testing.T) {
	for _, n := range []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 15, 16, 17} {
		a := make([]uint32, n)
		b := make([]uint32, n)
		for i := range a {
			a[i] = uint32(0x9e3779b9*(i+1)) ^ uint32(n)
			b[i] = uint32(0x85ebca6b*(i+3)) ^ uint32(n*7)
		}
		got := Mul(a, b)
		want := mulNaive(a, b)
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("n=%d: word %d mismatch: got %#x want %#x", n, i, got[i], want[i])
			}
		}
	}
}

func TestMulUnbalancedMatchesBalanced(t *testing.T) {
	n := 6
	a := make([]uint32, 2*n)
	b := make([]uint32, n)
	for i := range a {
		a[i] = uint32(i*131071 + 7)
	}
	for i := range b {
		b[i] = uint32(i*65537 + 3)
	}

	got := MulUnbalanced(a, b)

	// Reference via two balanced multiplies combined by hand.
	low := Mul(a[:n], b)
	high := Mul(a[n:], b)
	want := make([]uint32, 3*n)
	copy(want, low)
	for i := 0; i < n; i++ {
		want[n+i] ^= high[i]
	}
	copy(want[2*n:], high[n:])

	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("word %d mismatch: got %#x want %#x", i, got[i], want[i])
		}
	}
}

func TestModPhiReducesDegree(t *testing.T) {
	// phi has degree 19937: x^19937 must reduce to something of degree < 19937.
	p := make([]uint32, 1300)
	p[19937/32] |= 1 << uint(19937%32)

	reduced := ModPhi(p)
	// Bit 19937 itself must be gone from the reduced (624-word, <19937-bit) result.
	if 19937/32 < len(reduced) {
		if reduced[19937/32]&(1<<uint(19937%32)) != 0 {
			t.Fatalf("ModPhi left bit 19937 set")
		}
	}
}

func TestModPhiIsIdempotentBelowDegree(t *testing.T) {
	// A polynomial already of degree < 19937 should reduce to itself.
	p := make([]uint32, 1300)
	p[0] = 0xabcdef01
	p[10] = 0x12345678

	reduced := ModPhi(p)
	var want [624]uint32
	copy(want[:], p[:624])
	if reduced != want {
		t.Fatalf("ModPhi changed a polynomial already below phi's degree")
	}
}

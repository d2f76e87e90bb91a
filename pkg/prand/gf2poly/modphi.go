package gf2poly

// Properties of phi, the minimal polynomial of the MT19937 linear
// recurrence (degree 19937, 135 nonzero terms: the leading term plus the
// 134 positions below). Taken from the reference implementation, which in
// turn credits the fast sparse-reduction algorithm to the Boost library
// (random/detail/polynomial.hpp, Steven Watanabe 2014, Boost Software
// License 1.0) and the base-2 exponent decomposition to Haramoto,
// Matsumoto & L'Ecuyer (2008), doi:10.1007/978-3-540-85912-3_26.
const polyDegree = 19937

var phiBitPos = [134]int{
	0, 1189, 1416, 1585, 1643, 1870, 2493, 2773, 3000, 3227, 3454, 3681, 3908, 4135,
	4362, 4753, 5661, 6337, 6569, 7129, 7477, 7525, 7583, 7752, 7979, 8206,
	9505, 9901, 9969, 10128, 10693, 10761, 10920, 11089, 11147, 11157, 11215, 11321,
	11374, 11384, 11485, 11611, 11712, 11717, 11838, 11881, 11944, 11997, 12277, 12335,
	12393, 12504, 12509, 12620, 12673, 12731, 12736, 12789, 12905, 12958, 12963, 13137,
	13185, 13190, 13243, 13301, 13412, 13528, 13533, 13639, 13697, 13760, 13813, 13866,
	14093, 14151, 14209, 14320, 14325, 14436, 14547, 14552, 14605, 14721, 14774, 14779,
	14953, 15001, 15006, 15059, 15117, 15228, 15344, 15349, 15455, 15513, 15576, 15629,
	15682, 15909, 15967, 16025, 16136, 16141, 16252, 16363, 16368, 16421, 16537, 16590,
	16595, 16817, 16822, 16875, 16933, 17044, 17160, 17271, 17329, 17445, 17498, 17725,
	17783, 17841, 17952, 18068, 18179, 18237, 18406, 18633, 18691, 18860, 19087, 19314,
}

var phiBlockPos = [34]int{
	39875, 39252, 38629, 38006, 37383, 36760, 36137, 35514, 34891, 34268, 33645, 33022,
	32399, 31776, 31153, 30530, 29907, 29284, 28661, 28038, 27415, 26792, 26169,
	25546, 24923, 24300, 23677, 23054, 22431, 21808, 21185, 20562, 19939, 19937,
}

func divWord(x int) int { return x >> 5 }
func modWord(x int) int { return x & 0x1f }

// copyBits extracts bits [start, end) of a (little-endian word slice) into
// a freshly-sized output slice, mirroring the reference's copy_bits.
// Indices past the end of a are treated as zero, matching the generous
// zero-padded scratch buffers the reference allocates for this purpose.
func copyBits(a []uint32, start, end int) []uint32 {
	left := modWord(start)
	right := 32 - left
	length := end - start
	n := divWord(length)
	off := divWord(start)
	r := make([]uint32, n+1)

	wordAt := func(i int) uint32 {
		if i < 0 || i >= len(a) {
			return 0
		}
		return a[i]
	}

	if left != 0 {
		for i := 0; i < n; i++ {
			r[i] = (wordAt(off+i) >> left) | (wordAt(off+i+1) << right)
		}
	} else {
		for i := 0; i < n; i++ {
			r[i] = wordAt(off + i)
		}
	}

	if rem := modWord(length); rem != 0 {
		val := wordAt(off+n) >> left
		if left != 0 && modWord(end) != 0 {
			val |= wordAt(off+n+1) << right
		}
		val &= (uint32(1) << uint(rem)) - 1
		r[n] = val
		return r[:n+1]
	}
	return r[:n]
}

// shiftedAdd computes dst[off:] ^= src << shift, where shift < 32,
// mirroring the reference's shifted_add. dst must have room for
// off+len(src)+1 words.
func shiftedAdd(dst []uint32, off int, src []uint32, shift int) {
	if shift == 0 {
		for i, v := range src {
			dst[off+i] ^= v
		}
		return
	}
	right := 32 - shift
	var prev uint32
	for i, v := range src {
		dst[off+i] ^= (v << uint(shift)) | (prev >> uint(right))
		prev = v
	}
	dst[off+len(src)] ^= prev >> uint(right)
}

// ModPhi reduces p modulo phi, the MT19937 minimal polynomial, and returns
// the 624-word (19968-bit, of which only the low 19937 bits are
// meaningful) residue. p is reduced in place; the caller's slice must be
// long enough to cover the input's degree plus a few guard words (ModPhi
// works correctly when p is sized generously, e.g. 1300 words, matching
// the reference's over-allocated scratch buffers).
func ModPhi(p []uint32) [624]uint32 {
	for i := 0; i < len(phiBlockPos)-1; i++ {
		start := phiBlockPos[i+1]
		end := phiBlockPos[i]

		tmp := copyBits(p, start, end)
		for _, bit := range phiBitPos {
			pos := bit + start - polyDegree
			shiftedAdd(p, divWord(pos), tmp, modWord(pos))
		}
		shiftedAdd(p, divWord(start), tmp, modWord(start))
	}

	var out [624]uint32
	copy(out[:], p[:624])
	return out
}

package mt19937

import "testing"

func TestNextStaysInRange(t *testing.T) {
	s := New(1)
	for i := 0; i < 10000; i++ {
		v := s.Next()
		if v > Max {
			t.Fatalf("draw %d exceeded Max: %d > %d", i, v, Max)
		}
	}
}

func TestSeedOneFirstDraws(t *testing.T) {
	// Known-good reference outputs for the 2002 MT19937 seeding with
	// seed=1 (genrand_int32 sequence).
	want := []uint32{1791095845, 4282876139, 3093770124, 4005303368, 491263}
	s := New(1)
	for i, w := range want {
		if got := uint32(s.Next()); got != w {
			t.Fatalf("draw %d: got %d want %d", i, got, w)
		}
	}
}

func TestDoubleRanges(t *testing.T) {
	s := New(1)
	for i := 0; i < 1000; i++ {
		d := s.NextDouble()
		if d < 0 || d >= 1 {
			t.Fatalf("NextDouble out of [0,1): %v", d)
		}
	}
	s2 := New(1)
	for i := 0; i < 1000; i++ {
		d := s2.NextDoublePos()
		if d <= 0 || d >= 1 {
			t.Fatalf("NextDoublePos out of (0,1): %v", d)
		}
	}
}

func TestJumpZeroIsNoOp(t *testing.T) {
	s := New(42)
	before := *s
	if err := s.Jump(0); err != nil {
		t.Fatalf("Jump(0) returned error: %v", err)
	}
	if *s != before {
		t.Fatalf("Jump(0) mutated state")
	}
}

func TestJumpTooLargeLeavesStateUnchanged(t *testing.T) {
	s := New(42)
	before := *s
	err := s.Jump(MaxStep + 1)
	if err != ErrStepTooLarge {
		t.Fatalf("expected ErrStepTooLarge, got %v", err)
	}
	if *s != before {
		t.Fatalf("Jump with too-large step mutated state")
	}
}

func TestJumpMatchesRepeatedNext(t *testing.T) {
	const step = 701
	slow := New(7)
	for i := 0; i < step; i++ {
		slow.Next()
	}

	fast := New(7)
	if err := fast.Jump(step); err != nil {
		t.Fatalf("Jump: %v", err)
	}

	if slow.Next() != fast.Next() {
		t.Fatalf("jump-ahead does not match repeated Next()")
	}
}

func TestJumpComposition(t *testing.T) {
	a, b := uint64(321), uint64(987)
	s1 := New(99)
	if err := s1.Jump(a); err != nil {
		t.Fatal(err)
	}
	if err := s1.Jump(b); err != nil {
		t.Fatal(err)
	}

	s2 := New(99)
	if err := s2.Jump(a + b); err != nil {
		t.Fatal(err)
	}

	if s1.Next() != s2.Next() {
		t.Fatalf("jump(a) then jump(b) should equal jump(a+b)")
	}
}

func TestMultiStreamConcordance(t *testing.T) {
	const (
		seed = 1
		n    = 4
		step = 500
	)
	single := New(seed)
	var expected [n]uint64
	pos := 0
	for i := 0; i < n; i++ {
		for pos < i*step {
			single.Next()
			pos++
		}
		expected[i] = single.Clone().Next()
	}

	streams := make([]*State, n)
	streams[0] = New(seed)
	op, err := ComputeStep(step)
	if err != nil {
		t.Fatal(err)
	}
	for i := 1; i < n; i++ {
		streams[i] = streams[i-1].Advance(op)
	}

	for i := 0; i < n; i++ {
		if got := streams[i].Next(); got != expected[i] {
			t.Fatalf("stream %d: got %d want %d", i, got, expected[i])
		}
	}
}

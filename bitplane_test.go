package cubecodec

import "testing"

// TestEncodeBitPlanesZeroPrecisionWritesNothing checks the maxprec==0
// early return leaves the buffer untouched.
func TestEncodeBitPlanesZeroPrecisionWritesNothing(t *testing.T) {
	words := make([]uint64, 2)
	w := NewBlockWriter(words, 64, 0)
	u := []uint32{5, 6, 7, 8}
	encodeBitPlanes(w, u, 32, 0)
	if w.CurrentBit() != 0 {
		t.Errorf("CurrentBit() = %d, want 0", w.CurrentBit())
	}
	for _, word := range words {
		if word != 0 {
			t.Errorf("buffer was written to despite maxprec=0")
		}
	}
}

// TestEncodeBitPlanesAllZeroBlockIsCheap checks that an all-zero
// coefficient block, given a generous budget, terminates using far fewer bits than
// the budget (every plane's group test immediately reports "nothing
// significant" and stops).
func TestEncodeBitPlanesAllZeroBlockIsCheap(t *testing.T) {
	words := make([]uint64, 4)
	const maxbits = 200
	w := NewBlockWriter(words, maxbits, 0)
	u := make([]uint32, 16)
	encodeBitPlanes(w, u, 32, 32)
	if w.CurrentBit() >= maxbits {
		t.Errorf("CurrentBit() = %d, an all-zero block should terminate well short of the %d-bit budget", w.CurrentBit(), maxbits)
	}
	// Every plane should cost exactly one bit (the group-test "no"), so
	// the total should be at most intprec bits.
	if w.CurrentBit() > 32 {
		t.Errorf("CurrentBit() = %d, want at most 32 (one group-test bit per plane)", w.CurrentBit())
	}
}

// TestEncodeBitPlanesRespectsExhaustion checks a tiny budget stops the
// encoder without panicking or writing out of range, even for a block
// with plenty of significant bits.
func TestEncodeBitPlanesRespectsExhaustion(t *testing.T) {
	words := make([]uint64, 2)
	const maxbits = 5
	w := NewBlockWriter(words, maxbits, 0)
	u := []uint32{0xFFFFFFFF, 0x1, 0x2, 0x3}
	encodeBitPlanes(w, u, 32, 32)
	if w.CurrentBit() != maxbits {
		t.Errorf("CurrentBit() = %d, want %d", w.CurrentBit(), maxbits)
	}
	if !w.Exhausted() {
		t.Errorf("writer should report exhausted")
	}
}

// TestEncodeBitPlanesSingleSurvivorSkipsFinalBit checks the "only one
// coefficient left in the tail" special case: once the group test
// confirms significance and every other coefficient has already been
// ruled in or out, the last one is implied and costs no bit to name.
func TestEncodeBitPlanesSingleSurvivorSkipsFinalBit(t *testing.T) {
	words := make([]uint64, 4)
	w := NewBlockWriter(words, 256, 0)
	// Three zero coefficients and one nonzero one: at the plane where
	// the nonzero one first becomes significant, it will eventually be
	// the sole survivor of the tail scan.
	u := []uint32{0, 0, 0, 1}
	encodeBitPlanes(w, u, 4, 4)
	// Planes 3..1 cost one group-test bit each (3 bits). Plane 0 costs
	// the group-test bit plus one 0 bit for each of coefficients 0..2
	// (4 bits); coefficient 3 is then implied. Total 7, not 8.
	if w.CurrentBit() != 7 {
		t.Errorf("CurrentBit() = %d, want 7 (final survivor costs no bit)", w.CurrentBit())
	}
}

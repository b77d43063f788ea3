package cubecodec

import "testing"

// TestPermForIsPermutation is P4: for every supported dimensionality,
// permFor returns a bijection on 0..BlockSize-1.
func TestPermForIsPermutation(t *testing.T) {
	for _, dim := range []BlockDim{Dim1, Dim2, Dim3, Dim4} {
		perm := permFor(dim)
		n := dim.BlockSize()
		if len(perm) != n {
			t.Fatalf("dim=%d: len(perm) = %d, want %d", dim, len(perm), n)
		}
		seen := make([]bool, n)
		for _, p := range perm {
			if p < 0 || p >= n {
				t.Fatalf("dim=%d: perm entry %d out of range [0,%d)", dim, p, n)
			}
			if seen[p] {
				t.Fatalf("dim=%d: perm entry %d appears more than once", dim, p)
			}
			seen[p] = true
		}
	}
}

// TestPermForOrdersByCoordSum checks that permFor's output is sorted
// by ascending L1 distance from the DC corner, the ordering spec.md I5
// requires (index 0 must be the DC coefficient itself).
func TestPermForOrdersByCoordSum(t *testing.T) {
	for _, dim := range []BlockDim{Dim1, Dim2, Dim3, Dim4} {
		perm := permFor(dim)
		strides := dim.Strides()
		if coordSum(perm[0], strides) != 0 {
			t.Errorf("dim=%d: perm[0] = %d has coordSum %d, want the DC index (coordSum 0)", dim, perm[0], coordSum(perm[0], strides))
		}
		prev := -1
		for _, p := range perm {
			s := coordSum(p, strides)
			if s < prev {
				t.Fatalf("dim=%d: coordSum sequence not ascending at perm entry %d (%d then %d)", dim, p, prev, s)
			}
			prev = s
		}
	}
}

// TestPermForDeterministic checks permFor's cached table is identical
// to a freshly built one, satisfying the "fixed table" half of I5.
func TestPermForDeterministic(t *testing.T) {
	for _, dim := range []BlockDim{Dim1, Dim2, Dim3, Dim4} {
		a := permFor(dim)
		b := buildPerm(dim)
		if len(a) != len(b) {
			t.Fatalf("dim=%d: length mismatch", dim)
		}
		for i := range a {
			if a[i] != b[i] {
				t.Fatalf("dim=%d: permFor and a fresh buildPerm disagree at index %d: %d vs %d", dim, i, a[i], b[i])
			}
		}
	}
}

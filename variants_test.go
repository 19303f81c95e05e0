package sparse

import "testing"

func TestUpperTriangularRejectsBelowDiagonal(t *testing.T) {
	u := NewUpperTriangularCSR2D[uint](3)
	if err := u.Add(0, 1); err != nil {
		t.Fatalf("Add(0,1): %v", err)
	}
	if err := u.Add(1, 0); err == nil {
		t.Errorf("Add(1,0) on upper-triangular matrix should fail")
	}
}

func TestSquareTracksDiagonalCount(t *testing.T) {
	s := NewSquareCSR2D[uint](3)
	_ = s.Add(0, 0)
	_ = s.Add(1, 2)
	_ = s.Add(2, 2)
	if got := s.NumberOfDefinedDiagonalValues(); got != 2 {
		t.Errorf("NumberOfDefinedDiagonalValues() = %d, want 2", got)
	}
}

func TestSymmetrizeIsSymmetric(t *testing.T) {
	ut := NewUpperTriangularCSR2D[uint](3)
	_ = ut.Add(0, 1)
	_ = ut.Add(0, 2)
	_ = ut.Add(1, 1)
	values := []float64{1.5, 2.5, 3.5}

	sym := FromUpperTriangularValued(ut, values)

	for r := uint(0); r < 3; r++ {
		for c := uint(0); c < 3; c++ {
			if sym.HasEntry(r, c) != sym.HasEntry(c, r) {
				t.Errorf("symmetrize not symmetric at (%d,%d)", r, c)
			}
		}
	}
	if !sym.HasEntry(2, 0) {
		t.Errorf("expected mirrored entry (2,0)")
	}
	if got := sym.NumberOfDefinedValues(); got != 5 { // 2 strict-upper * 2 + 1 diagonal
		t.Errorf("NumberOfDefinedValues() = %d, want 5", got)
	}
}

package sparse

import "testing"

func TestCompactifyEliminatesEmptyRowsAndColumns(t *testing.T) {
	m := NewValuedCSR2D[uint](4, 4)
	_ = m.Add(0, 1, 1.0)
	_ = m.Add(2, 3, 2.0)
	// row 1 and row 3 are empty; column 0 and column 2 are never referenced.

	compact := Compactify(m)

	if got, want := compact.Matrix.NumberOfRows(), uint(2); got != want {
		t.Errorf("compact rows = %d, want %d", got, want)
	}
	if got, want := compact.Matrix.NumberOfColumns(), uint(2); got != want {
		t.Errorf("compact columns = %d, want %d", got, want)
	}
	if got, want := compact.RowMap, []uint{0, 2}; !equalUints(got, want) {
		t.Errorf("RowMap = %v, want %v", got, want)
	}
	if got, want := compact.ColMap, []uint{1, 3}; !equalUints(got, want) {
		t.Errorf("ColMap = %v, want %v", got, want)
	}
	if v, ok := compact.Matrix.Value(0, 0); !ok || v != 1.0 {
		t.Errorf("compact value (0,0) = (%v,%v), want (1.0,true)", v, ok)
	}
	if v, ok := compact.Matrix.Value(1, 1); !ok || v != 2.0 {
		t.Errorf("compact value (1,1) = (%v,%v), want (2.0,true)", v, ok)
	}
}

func TestCompactifyEmptyMatrix(t *testing.T) {
	m := NewValuedCSR2D[uint](3, 3)
	compact := Compactify(m)
	if compact.Matrix.NumberOfRows() != 0 || compact.Matrix.NumberOfColumns() != 0 {
		t.Errorf("compactify of empty matrix should be 0x0")
	}
}

func equalUints(a, b []uint) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

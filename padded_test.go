package sparse

import "testing"

func TestPaddedMatrix2DImputesMissingDiagonal(t *testing.T) {
	m := NewValuedCSR2D[uint](2, 3)
	_ = m.Add(0, 1, 5.0)
	_ = m.Add(1, 1, 9.0)

	padded, err := NewPaddedMatrix2D(m, func(row uint) float64 { return 100.0 + float64(row) })
	if err != nil {
		t.Fatalf("NewPaddedMatrix2D: %v", err)
	}
	if got, want := padded.Side(), uint(3); got != want {
		t.Fatalf("Side() = %d, want %d", got, want)
	}

	if !padded.HasEntry(2, 2) {
		t.Errorf("HasEntry(2,2) = false, want true (padded view has no holes)")
	}
	if got, want := padded.Value(0, 1), 5.0; got != want {
		t.Errorf("Value(0,1) = %v, want %v (materialized)", got, want)
	}
	if got, want := padded.Value(0, 0), 100.0; got != want {
		t.Errorf("Value(0,0) = %v, want %v (imputed)", got, want)
	}
	if !padded.IsImputed(0, 0) {
		t.Errorf("IsImputed(0,0) = false, want true")
	}
	if padded.IsImputed(0, 1) {
		t.Errorf("IsImputed(0,1) = true, want false (materialized)")
	}
	if !padded.IsImputed(2, 2) {
		t.Errorf("IsImputed(2,2) = false, want true (outside original shape)")
	}
}

func TestRowIterCrossingGuardPreservesMultiset(t *testing.T) {
	cols := []uint{1, 3, 5, 7, 9}

	// interleave Next and NextBack and verify every element is seen exactly once.
	it := NewRowIter(cols)
	seen := make(map[uint]int)
	order := []bool{true, false, true, true, false}
	for _, forward := range order {
		var v uint
		var ok bool
		if forward {
			v, ok = it.Next()
		} else {
			v, ok = it.NextBack()
		}
		if !ok {
			t.Fatalf("iterator exhausted early")
		}
		seen[v]++
	}
	if _, ok := it.Next(); ok {
		t.Errorf("expected exhaustion after consuming all 5 elements")
	}
	for _, c := range cols {
		if seen[c] != 1 {
			t.Errorf("element %d seen %d times, want 1", c, seen[c])
		}
	}
}

func TestPaddedRowIterMergesDiagonal(t *testing.T) {
	m := NewValuedCSR2D[uint](3, 3)
	_ = m.Add(1, 0, 1.0)
	_ = m.Add(1, 2, 2.0)

	it := NewPaddedRowIter(m, 1, 42.0)
	var got []uint
	for {
		v, ok := it.Next()
		if !ok {
			break
		}
		got = append(got, v)
	}
	want := []uint{0, 1, 2}
	if len(got) != len(want) {
		t.Fatalf("merged columns = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("merged columns = %v, want %v", got, want)
		}
	}
	if it.Value(1) != 42.0 {
		t.Errorf("imputed diagonal value = %v, want 42.0", it.Value(1))
	}
	if it.Value(0) != 1.0 || it.Value(2) != 2.0 {
		t.Errorf("materialized values wrong: Value(0)=%v Value(2)=%v", it.Value(0), it.Value(2))
	}
}

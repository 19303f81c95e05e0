package sparse

// SquareCSR2D wraps a CSR2D whose row and column counts are equal, additionally
// tracking the number of defined diagonal values incrementally as entries are added.
// Grounded on original_source's squared_csr2d.rs.
type SquareCSR2D[I Index] struct {
	matrix                       *CSR2D[I]
	numberOfDefinedDiagonalValues I
}

// NewSquareCSR2D returns an empty square matrix of the given order.
func NewSquareCSR2D[I Index](order I) *SquareCSR2D[I] {
	return &SquareCSR2D[I]{matrix: NewCSR2D[I](order, order)}
}

// Order returns the number of rows (== number of columns).
func (s *SquareCSR2D[I]) Order() I { return s.matrix.NumberOfRows() }

// Matrix exposes the underlying CSR2D.
func (s *SquareCSR2D[I]) Matrix() *CSR2D[I] { return s.matrix }

// NumberOfDefinedDiagonalValues returns how many (r, r) entries have been added.
func (s *SquareCSR2D[I]) NumberOfDefinedDiagonalValues() I { return s.numberOfDefinedDiagonalValues }

// Add appends (row, column), bumping the diagonal counter when row == column.
func (s *SquareCSR2D[I]) Add(row, column I) error {
	if err := s.matrix.Add(row, column); err != nil {
		return err
	}
	if row == column {
		s.numberOfDefinedDiagonalValues++
	}
	return nil
}

func (s *SquareCSR2D[I]) HasEntry(row, column I) bool { return s.matrix.HasEntry(row, column) }
func (s *SquareCSR2D[I]) SparseRow(row I) []I         { return s.matrix.SparseRow(row) }

// UpperTriangularCSR2D wraps a SquareCSR2D and rejects any entry below the diagonal.
// Grounded on original_source's upper_triangular_csr2d.rs.
type UpperTriangularCSR2D[I Index] struct {
	matrix *SquareCSR2D[I]
}

// NewUpperTriangularCSR2D returns an empty upper-triangular matrix of the given order.
func NewUpperTriangularCSR2D[I Index](order I) *UpperTriangularCSR2D[I] {
	return &UpperTriangularCSR2D[I]{matrix: NewSquareCSR2D[I](order)}
}

// Add appends (row, column). Entries with row > column are rejected as out of bounds
// for the upper-triangular shape.
func (u *UpperTriangularCSR2D[I]) Add(row, column I) error {
	if row > column {
		return &OutOfBoundsError{
			Row: int(row), Column: int(column),
			Rows: int(u.matrix.Order()), Cols: int(u.matrix.Order()),
			Context: "upper-triangular matrix rejects row > column",
		}
	}
	return u.matrix.Add(row, column)
}

func (u *UpperTriangularCSR2D[I]) Order() I              { return u.matrix.Order() }
func (u *UpperTriangularCSR2D[I]) Matrix() *CSR2D[I]     { return u.matrix.Matrix() }
func (u *UpperTriangularCSR2D[I]) HasEntry(r, c I) bool  { return u.matrix.HasEntry(r, c) }
func (u *UpperTriangularCSR2D[I]) SparseRow(row I) []I   { return u.matrix.SparseRow(row) }

// SymmetricCSR2D is the logical view where every off-diagonal (r,c) entry implies an
// (c,r) entry of equal value. Physically both halves are materialized.
type SymmetricCSR2D[I Index] struct {
	matrix *SquareCSR2D[I]
	values []float64
}

// FromUpperTriangularValued builds the symmetric materialization of a valued
// upper-triangular matrix in three passes (count, prefix-sum, scatter), mirroring the
// transpose algorithm in csr2d.go. Every strict upper-triangle edge (r,c) yields both
// (r,c) and (c,r); diagonal entries are copied once.
func FromUpperTriangularValued[I Index](ut *UpperTriangularCSR2D[I], values []float64) *SymmetricCSR2D[I] {
	order := ut.Order()
	degree := make([]I, int(order)+1)

	type edge struct {
		r, c I
		v    float64
	}
	var edges []edge
	k := 0
	for r := I(0); r < order; r++ {
		for _, c := range ut.SparseRow(r) {
			edges = append(edges, edge{r, c, values[k]})
			degree[r+1]++
			if r != c {
				degree[c+1]++
			}
			k++
		}
	}
	for i := 1; i < len(degree); i++ {
		degree[i] += degree[i-1]
	}

	total := int(degree[len(degree)-1])
	cols := make([]I, total)
	vals := make([]float64, total)
	cursor := append([]I(nil), degree...)

	place := func(r, c I, v float64) {
		cols[cursor[r]] = c
		vals[cursor[r]] = v
		cursor[r]++
	}
	for _, e := range edges {
		place(e.r, e.c, e.v)
		if e.r != e.c {
			place(e.c, e.r, e.v)
		}
	}

	// Each row's slice must be sorted by column for HasEntry/SparseRow to be valid.
	// The scatter places each row's mirrored (lower) entries before its own upper
	// entries, both ascending, so rows come out sorted; the per-row insertion sort
	// below keeps that guarantee independent of the scatter order.
	sym := &SquareCSR2D[I]{matrix: NewCSR2D[I](order, order)}
	sym.matrix.offsets = append([]I(nil), degree...)
	sym.matrix.columnIndices = cols
	sortRowsByColumn(sym.matrix, vals)

	return &SymmetricCSR2D[I]{matrix: sym, values: vals}
}

func sortRowsByColumn[I Index](m *CSR2D[I], values []float64) {
	for r := 0; r < len(m.offsets)-1; r++ {
		lo, hi := m.offsets[r], m.offsets[r+1]
		cols := m.columnIndices[lo:hi]
		vals := values[lo:hi]
		// insertion sort: rows are short relative to the whole graph in practice and
		// this keeps cols/vals in lockstep without allocating index slices.
		for i := 1; i < len(cols); i++ {
			cj, vj := cols[i], vals[i]
			j := i - 1
			for j >= 0 && cols[j] > cj {
				cols[j+1] = cols[j]
				vals[j+1] = vals[j]
				j--
			}
			cols[j+1] = cj
			vals[j+1] = vj
		}
	}
}

func (s *SymmetricCSR2D[I]) Order() I             { return s.matrix.Order() }
func (s *SymmetricCSR2D[I]) Matrix() *CSR2D[I]    { return s.matrix.Matrix() }
func (s *SymmetricCSR2D[I]) HasEntry(r, c I) bool { return s.matrix.HasEntry(r, c) }
func (s *SymmetricCSR2D[I]) SparseRow(row I) []I  { return s.matrix.SparseRow(row) }

// SparseRowValues returns the values parallel to SparseRow(row).
func (s *SymmetricCSR2D[I]) SparseRowValues(row I) []float64 {
	r := int(row)
	if r+1 >= len(s.matrix.matrix.offsets) {
		return nil
	}
	return s.values[s.matrix.matrix.offsets[r]:s.matrix.matrix.offsets[r+1]]
}

// NumberOfDefinedValues returns 2*|strict upper| + |diagonal|.
func (s *SymmetricCSR2D[I]) NumberOfDefinedValues() I { return I(len(s.values)) }

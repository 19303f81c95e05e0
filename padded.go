package sparse

// PaddedMatrix2D is a view over a sparse valued matrix that presents a dense
// rectangular matrix of side N = max(rows, columns): any unmaterialized coordinate
// returns an imputed value from a user-supplied function of the row. It owns no
// storage beyond the closure. Grounded on original_source's padded_matrix2d.rs.
type PaddedMatrix2D[I Index] struct {
	matrix *ValuedCSR2D[I]
	pad    func(row I) float64
	side   I
}

// NewPaddedMatrix2D constructs a padded view. Returns ErrPaddedShapeOverflow if
// max(rows, columns) cannot be represented by I — the Go-idiomatic replacement for
// the source's call-time panic on overflow (spec.md §9's Open Question guidance).
func NewPaddedMatrix2D[I Index](matrix *ValuedCSR2D[I], pad func(row I) float64) (*PaddedMatrix2D[I], error) {
	rows, cols := matrix.NumberOfRows(), matrix.NumberOfColumns()
	side := rows
	if cols > side {
		side = cols
	}
	if side < rows || side < cols {
		return nil, ErrPaddedShapeOverflow
	}
	return &PaddedMatrix2D[I]{matrix: matrix, pad: pad, side: side}, nil
}

// Side returns N = max(rows, columns).
func (p *PaddedMatrix2D[I]) Side() I { return p.side }

// HasEntry is always true within the padded square: every (r,c) with r,c < Side() is
// present, either materialized or imputed.
func (p *PaddedMatrix2D[I]) HasEntry(row, column I) bool {
	return row < p.side && column < p.side
}

// Value returns the underlying value if materialized, else pad(row).
func (p *PaddedMatrix2D[I]) Value(row, column I) float64 {
	if row < p.matrix.NumberOfRows() && column < p.matrix.NumberOfColumns() {
		if v, ok := p.matrix.Value(row, column); ok {
			return v
		}
	}
	return p.pad(row)
}

// IsImputed reports whether (row, column) is not materialized in the underlying
// matrix, or lies outside its original shape.
func (p *PaddedMatrix2D[I]) IsImputed(row, column I) bool {
	if row >= p.matrix.NumberOfRows() || column >= p.matrix.NumberOfColumns() {
		return true
	}
	return !p.matrix.HasEntry(row, column)
}

/*
Package sparse provides a compressed sparse row substrate for graph algorithms: a
generic CSR2D adjacency structure (and the ValuedCSR2D, SquareCSR2D,
UpperTriangularCSR2D, SymmetricCSR2D, PaddedMatrix2D, CompactMatrix and
SubsetSquareMatrix types built on top of it) aimed at the assignment, community,
dag and graph packages rather than general linear algebra.

Construction is strict and append-only: entries must be added in row-major,
column-increasing order, and any violation is a typed error rather than a panic.
On top of that base, rank and select resolve between a (row, column) coordinate and
its position in nonzero-order, transpose and symmetrize rebuild the structure with
the opposite or mirrored orientation, and compactify eliminates empty rows and
columns for rectangular assignment problems.
*/
package sparse

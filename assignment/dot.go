package assignment

import (
	"fmt"
	"io"
)

// WriteDOT renders a matching result as a Graphviz DOT bipartite graph: one node per
// row (prefixed "r") and column (prefixed "c"), with an edge for every assignment.
// Writes directly to an io.Writer and returns the byte count written alongside any
// write error.
func WriteDOT(w io.Writer, assignments []Assignment) (int, error) {
	var n int

	nn, err := io.WriteString(w, "graph assignment {\n")
	n += nn
	if err != nil {
		return n, err
	}

	for _, a := range assignments {
		nn, err = fmt.Fprintf(w, "\tr%d -- c%d;\n", a.Row, a.Column)
		n += nn
		if err != nil {
			return n, err
		}
	}

	nn, err = io.WriteString(w, "}\n")
	n += nn
	return n, err
}

// Package graph implements linear-time structural predicates — connected
// components, cycle detection, simple-path recognition, and root/sink/singleton
// classification — over monopartite graphs backed by the sparsegraph CSR substrate.
package graph

import "fmt"

// ErrTooManyComponents is returned by ConnectedComponents when the component marker
// would overflow its counter before every node has been labelled.
var ErrTooManyComponents = fmt.Errorf("graph: component count exceeds marker capacity")

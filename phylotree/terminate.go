package phylotree

// Terminate closes the final three active logical rows i, j, m with a
// single anonymous vertex v and the three closing edges, per spec.md
// section 4.3. dvi, dvj, dvm are the three-way closing distances computed
// by the caller (nj's terminateCanonical / terminatePruned):
//
//	d_vi = (d(i,j) + d(i,m) - d(j,m)) / 2
//	d_vj = (d(i,j) + d(j,m) - d(i,m)) / 2
//	d_vm = (d(i,m) + d(j,m) - d(i,j)) / 2
//
// Complexity: O(1).
func (t *Tree) Terminate(i, j, m int, dvi, dvj, dvm float64) error {
	vi, ok := t.nodes[i]
	if !ok {
		return ErrUnknownLogicalID
	}
	vj, ok := t.nodes[j]
	if !ok {
		return ErrUnknownLogicalID
	}
	vm, ok := t.nodes[m]
	if !ok {
		return ErrUnknownLogicalID
	}

	v := t.allocVertex("")
	t.addEdge(v, vi, dvi)
	t.addEdge(v, vj, dvj)
	t.addEdge(v, vm, dvm)

	return nil
}

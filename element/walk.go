package element

// AssignIDs walks root's subtree in pre-order, assigning each node a
// monotonic integer ID starting at start. It returns the next unused ID,
// so callers composing several subtrees (e.g. a canvas's implicit column
// container wrapping a caller-supplied element list) can chain calls.
//
// This stands in for reference identity in a host language, per the
// "parent pointers and identity" design note in spec.md §9: the intrinsic
// size map is keyed by these IDs rather than by *Node pointer equality,
// so a caller who deep-copies a subtree between MeasureAllIntrinsics and
// ComputeLayout still gets consistent lookups as long as IDs are
// reassigned consistently.
func AssignIDs(root *Node, start int) int {
	if root == nil {
		return start
	}
	next := start
	var walk func(n *Node)
	walk = func(n *Node) {
		n.ID = next
		next++
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(root)
	return next
}

// Walk visits every node in root's subtree in pre-order, calling visit on
// each.
func Walk(root *Node, visit func(*Node)) {
	if root == nil {
		return
	}
	visit(root)
	for _, c := range root.Children {
		Walk(c, visit)
	}
}

package ast

import "iter"

// Walk returns an iterator that yields root and every descendant in pre-order, parents before children.
// Users can iterate over the results using a for loop and break out at any time.
func Walk(root Node) iter.Seq[Node] {
	return func(yield func(Node) bool) {
		if root == nil {
			return
		}
		walk(root, yield)
	}
}

func walk(n Node, yield func(Node) bool) bool {
	if !yield(n) {
		return false
	}

	for _, child := range n.Children() {
		if child == nil {
			continue
		}
		if !walk(child, yield) {
			return false
		}
	}

	return true
}

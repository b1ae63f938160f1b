package treemap

type color int8

const (
	red color = iota + 1
	black
)

// node is a tree vertex. The map exclusively owns every node reachable
// from its root, the parent link is a non-owning back-reference used
// only for navigation.
type node[K, V any] struct {
	parent *node[K, V]
	left   *node[K, V]
	right  *node[K, V]
	hue    color
	key    K
	value  V
}

func isred[K, V any](nd *node[K, V]) bool {
	if nd == nil {
		return false
	}
	return nd.hue == red
}

func isblack[K, V any](nd *node[K, V]) bool {
	return !isred(nd)
}

func (nd *node[K, V]) isleaf() bool {
	return nd.left == nil && nd.right == nil
}

func (nd *node[K, V]) isroot() bool {
	return nd.parent == nil
}

// sibling return the parent's other child, nil for the root.
func (nd *node[K, V]) sibling() *node[K, V] {
	if nd.parent == nil {
		return nil
	} else if nd.parent.left == nd {
		return nd.parent.right
	}
	return nd.parent.left
}

// uncle return the grandparent's other child.
func (nd *node[K, V]) uncle() *node[K, V] {
	if nd.parent == nil {
		return nil
	}
	return nd.parent.sibling()
}

// leftmost descend along left links, the subtree's smallest key.
func (nd *node[K, V]) leftmost() *node[K, V] {
	for nd.left != nil {
		nd = nd.left
	}
	return nd
}

// rightmost descend along right links, the subtree's largest key.
func (nd *node[K, V]) rightmost() *node[K, V] {
	for nd.right != nil {
		nd = nd.right
	}
	return nd
}

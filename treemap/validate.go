package treemap

import "fmt"
import "math"

// Validate walk the entire tree and panic on the first broken
// invariant. Meant for tests and tools, it holds a read lock for the
// full walk and touches every node.
//
// Checked invariants:
//   - the root is black.
//   - no red node has a red child.
//   - every root to leaf path crosses the same number of black nodes.
//   - every child points back at its parent.
//   - keys are in strict ascending order.
//   - node count matches the map's count and the allocator's books.
//   - height is bounded by 2*log2(n+1).
func (t *TreeMap[K, V]) Validate() {
	t.rw.RLock()
	defer t.rw.RUnlock()

	if isred(t.root) {
		panic(fmt.Errorf("Validate(): root is red"))
	}
	count := t.validatetree(t.root)
	if n := t.Count(); count != n {
		panic(fmt.Errorf("Validate(): walked %v nodes, count says %v", count, n))
	}
	t.validateorder()

	if count > 0 {
		maxheight := 2 * int64(math.Ceil(math.Log2(float64(count+1))))
		if height := t.height(); height > maxheight {
			fmsg := "Validate(): height %v exceeds %v for %v nodes"
			panic(fmt.Errorf(fmsg, height, maxheight, count))
		}
	}

	_, allocated, _, _, _ := t.malloc.Info()
	if allocated != count*t.nodesize {
		fmsg := "Validate(): allocated %v, expected %v"
		panic(fmt.Errorf(fmsg, allocated, count*t.nodesize))
	}
}

// validatetree return the number of nodes under nd, panicking on
// red-red edges, unbalanced black heights or stale parent references.
func (t *TreeMap[K, V]) validatetree(nd *node[K, V]) (count int64) {
	var walk func(nd *node[K, V]) int64
	walk = func(nd *node[K, V]) int64 {
		if nd == nil {
			return 1
		}
		count++
		if isred(nd) && (isred(nd.left) || isred(nd.right)) {
			panic(fmt.Errorf("Validate(): red node with red child"))
		}
		if nd.left != nil && nd.left.parent != nd {
			panic(fmt.Errorf("Validate(): left child with stale parent"))
		}
		if nd.right != nil && nd.right.parent != nd {
			panic(fmt.Errorf("Validate(): right child with stale parent"))
		}
		lh, rh := walk(nd.left), walk(nd.right)
		if lh != rh {
			fmsg := "Validate(): black height %v on left, %v on right"
			panic(fmt.Errorf(fmsg, lh, rh))
		}
		if isblack(nd) {
			lh++
		}
		return lh
	}
	if nd != nil && nd.parent != nil {
		panic(fmt.Errorf("Validate(): root with a parent"))
	}
	walk(nd)
	return count
}

// validateorder confirm an in-order walk yields strictly ascending
// keys.
func (t *TreeMap[K, V]) validateorder() {
	var prev *node[K, V]
	var walk func(nd *node[K, V])
	walk = func(nd *node[K, V]) {
		if nd == nil {
			return
		}
		walk(nd.left)
		if prev != nil && t.compare(prev.key, nd.key) >= 0 {
			panic(fmt.Errorf("Validate(): keys out of order"))
		}
		prev = nd
		walk(nd.right)
	}
	walk(t.root)
}

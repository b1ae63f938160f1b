package treemap

import "fmt"
import "sync/atomic"

import "github.com/bnclabs/gods/api"
import "github.com/bnclabs/gods/vector"

// Order of traversal for Iterate.
type Order byte

const (
	// Inorder emit entries in ascending key order.
	Inorder Order = iota + 1
	// Preorder emit a node before either of its subtrees.
	Preorder
	// Postorder emit both subtrees of a node before the node.
	Postorder
)

// Iterator walk over the map's entries without recursion, holding an
// explicit stack of pending nodes and a cursor to the last node
// emitted. Not safe across goroutines.
type Iterator[K, V any] struct {
	t      *TreeMap[K, V]
	order  Order
	stack  *vector.Vector[*node[K, V]]
	last   *node[K, V]
	closed bool
}

// Iterate acquire a read lock on the map and return an iterator over a
// consistent snapshot, in the requested traversal order. Writers block
// until every open iterator is closed, always call Close() when done.
func (t *TreeMap[K, V]) Iterate(order Order) *Iterator[K, V] {
	switch order {
	case Inorder, Preorder, Postorder:
	default:
		panic(fmt.Errorf("Iterate(): invalid order %v", order))
	}
	t.rw.RLock()
	atomic.AddInt64(&t.n_ranges, 1)
	atomic.AddInt64(&t.n_activeiter, 1)

	iter := t.getiterator()
	iter.order, iter.last, iter.closed = order, nil, false
	iter.stack.Reset()
	if t.root != nil {
		iter.stack.Pushfront(t.root)
	}
	return iter
}

// Next return the next entry in the traversal, ok turns false exactly
// once the sequence is exhausted. Calling Next on a closed iterator
// panics.
func (iter *Iterator[K, V]) Next() (key K, value V, ok bool) {
	if iter.closed {
		panic(api.ErrorClosed)
	}
	if iter.stack.Isempty() {
		return
	}
	var nd *node[K, V]
	switch iter.order {
	case Inorder:
		nd = iter.inorder()
	case Preorder:
		nd = iter.preorder()
	case Postorder:
		nd = iter.postorder()
	}
	iter.last = nd
	return nd.key, nd.value, true
}

// Close release the iterator and its read lock on the map. Close is
// idempotent.
func (iter *Iterator[K, V]) Close() {
	if iter.closed {
		return
	}
	t := iter.t
	iter.closed = true
	iter.stack.Reset()
	iter.last, iter.t = nil, nil
	t.putiterator(iter)
	atomic.AddInt64(&t.n_activeiter, -1)
	t.rw.RUnlock()
}

// emit the node at the top of the stack, then stack its right and left
// subtrees so the left one surfaces first.
func (iter *Iterator[K, V]) preorder() *node[K, V] {
	nd := iter.stack.Popfront()
	if nd.right != nil {
		iter.stack.Pushfront(nd.right)
	}
	if nd.left != nil {
		iter.stack.Pushfront(nd.left)
	}
	return nd
}

// a node surfaces twice, once on the way down when its left subtree is
// still pending and once after that subtree drained. The cursor
// distinguishes the visits, the node's in-order predecessor is the
// last entry emitted before the node itself is due.
func (iter *Iterator[K, V]) inorder() *node[K, V] {
	for {
		nd := iter.stack.Popfront()
		var pred *node[K, V]
		if nd.left != nil {
			pred = nd.left.rightmost()
		}
		if pred == nil || pred == iter.last {
			if nd.right != nil {
				iter.stack.Pushfront(nd.right)
			}
			return nd
		}
		iter.stack.Pushfront(nd)
		iter.stack.Pushfront(nd.left)
	}
}

// a node is due once both subtrees have drained, which is when the
// cursor points to one of its children, or right away for a leaf.
func (iter *Iterator[K, V]) postorder() *node[K, V] {
	for {
		nd := iter.stack.Front()
		if nd.isleaf() || nd.left == iter.last || nd.right == iter.last {
			return iter.stack.Popfront()
		}
		if nd.right != nil {
			iter.stack.Pushfront(nd.right)
		}
		if nd.left != nil {
			iter.stack.Pushfront(nd.left)
		}
	}
}

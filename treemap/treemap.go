package treemap

import "fmt"
import "sync"
import "sync/atomic"
import "unsafe"

import "github.com/bnclabs/gods/api"
import "github.com/bnclabs/gods/lib"
import "github.com/bnclabs/gods/list"
import "github.com/bnclabs/gods/malloc"
import "github.com/bnclabs/gods/vector"
import s "github.com/bnclabs/gosettings"

// TreeMap manage a single instance of in-memory sorted index using a
// red-black tree. Entries are ordered by a caller supplied comparator.
// All operations are thread safe behind one reader-writer lock per
// instance, readers share, writers exclude everyone.
type TreeMap[K, V any] struct {
	// 64-bit aligned
	n_count      int64
	n_inserts    int64
	n_updates    int64
	n_deletes    int64
	n_lookups    int64
	n_misses     int64
	n_ranges     int64
	n_nodes      int64
	n_frees      int64
	n_clones     int64
	n_activeiter int64

	// can be unaligned fields
	name     string
	root     *node[K, V]
	compare  func(a, b K) int
	tostring func(key K, value V) string
	rw       sync.RWMutex
	malloc   api.Mallocer
	nodesize int64
	iterpool chan *Iterator[K, V]
	h_depth  *lib.AverageInt64
	dead     bool
	setts    s.Settings
	logprefix string

	// settings
	iterpoolsize int64 // iterpool.size
	allocapacity int64 // allocator.capacity
}

// New create an empty map. `compare` defines the total order over keys
// and is mandatory, its absence panics.
func New[K, V any](name string, compare func(a, b K) int, setts s.Settings) *TreeMap[K, V] {
	if compare == nil {
		panic(fmt.Errorf("New(): missing compare function"))
	}
	t := &TreeMap[K, V]{name: name, compare: compare}
	t.logprefix = fmt.Sprintf("TreeMap [%s]", name)

	setts = make(s.Settings).Mixin(Defaultsettings(), setts)
	t.readsettings(setts)
	t.iterpool = make(chan *Iterator[K, V], t.iterpoolsize)
	t.malloc = malloc.New(name, s.Settings{"capacity": t.allocapacity})
	t.nodesize = int64(unsafe.Sizeof(node[K, V]{}))
	t.h_depth = &lib.AverageInt64{}
	t.setts = setts

	infof("%v started ...\n", t.logprefix)
	return t
}

// Setstringer install an optional stringifier for entries, used only
// by the diagnostic renderings Fprint and Dotdump. Without it entries
// render with % v formatting.
func (t *TreeMap[K, V]) Setstringer(tostring func(key K, value V) string) {
	t.tostring = tostring
}

// ID implement api.Container interface.
func (t *TreeMap[K, V]) ID() string {
	return t.name
}

// Count implement api.Container interface.
func (t *TreeMap[K, V]) Count() int64 {
	return atomic.LoadInt64(&t.n_count)
}

// Isempty implement api.Container interface.
func (t *TreeMap[K, V]) Isempty() bool {
	return t.Count() == 0
}

// Isactive implement api.Container interface.
func (t *TreeMap[K, V]) Isactive() bool {
	return t.dead == false
}

// Get the value for key, acquires a read lock.
func (t *TreeMap[K, V]) Get(key K) (value V, ok bool) {
	t.rw.RLock()
	defer t.rw.RUnlock()
	atomic.AddInt64(&t.n_lookups, 1)

	nd, cmp, _ := t.getnode(key)
	if nd == nil || cmp != 0 {
		atomic.AddInt64(&t.n_misses, 1)
		return
	}
	return nd.value, true
}

// Has return whether key is present, acquires a read lock.
func (t *TreeMap[K, V]) Has(key K) bool {
	_, ok := t.Get(key)
	return ok
}

// Min return the entry with the smallest key, acquires a read lock.
func (t *TreeMap[K, V]) Min() (key K, value V, ok bool) {
	t.rw.RLock()
	defer t.rw.RUnlock()
	atomic.AddInt64(&t.n_lookups, 1)

	if t.root == nil {
		return
	}
	nd := t.root.leftmost()
	return nd.key, nd.value, true
}

// Max return the entry with the largest key, acquires a read lock.
func (t *TreeMap[K, V]) Max() (key K, value V, ok bool) {
	t.rw.RLock()
	defer t.rw.RUnlock()
	atomic.AddInt64(&t.n_lookups, 1)

	if t.root == nil {
		return
	}
	nd := t.root.rightmost()
	return nd.key, nd.value, true
}

// Set insert or overwrite the entry for key, acquires a write lock.
// A duplicate key overwrites the value in place, the tree shape does
// not change and the old value is returned with updated as true.
func (t *TreeMap[K, V]) Set(key K, value V) (oldvalue V, updated bool) {
	t.rw.Lock()
	defer t.rw.Unlock()

	parent, cmp, depth := t.getnode(key)
	if parent == nil { // first entry becomes a black root, no fixup
		t.root = t.newnode(key, value, black)
		t.h_depth.Add(1)
		t.n_count++
		t.n_inserts++
		return
	}
	if cmp == 0 {
		t.h_depth.Add(depth)
		oldvalue, parent.value = parent.value, value
		t.n_updates++
		return oldvalue, true
	}

	t.h_depth.Add(depth + 1)
	child := t.newnode(key, value, red)
	child.parent = parent
	if cmp < 0 {
		parent.left = child
	} else {
		parent.right = child
	}
	t.afterinsert(child)
	t.n_count++
	t.n_inserts++
	return
}

// Delete remove the entry for key, acquires a write lock. A missing
// key is a no-op and returns ok as false.
func (t *TreeMap[K, V]) Delete(key K) (deleted V, ok bool) {
	t.rw.Lock()
	defer t.rw.Unlock()

	nd, cmp, _ := t.getnode(key)
	if nd == nil || cmp != 0 {
		atomic.AddInt64(&t.n_misses, 1)
		return
	}
	deleted = nd.value
	t.deletenode(nd)
	t.n_count--
	t.n_deletes++
	return deleted, true
}

// Reset implement api.Container interface. Remove all entries, the map
// remains usable. Acquires a write lock.
func (t *TreeMap[K, V]) Reset() {
	t.rw.Lock()
	defer t.rw.Unlock()
	t.reset()
}

// Destroy implement api.Container interface. Refuses to die while
// iterators are active on this map.
func (t *TreeMap[K, V]) Destroy() error {
	if n := atomic.LoadInt64(&t.n_activeiter); n > 0 {
		infof("%v n_activeiter: %v\n", t.logprefix, n)
		return api.ErrorActiveIterators
	}
	t.rw.Lock()
	defer t.rw.Unlock()

	if t.dead {
		panic(api.ErrorClosed)
	}
	t.reset()
	t.malloc.Release()
	t.setts = nil
	t.dead = true
	infof("%v destroyed\n", t.logprefix)
	return nil
}

// Clone deep copy this map into a new map, acquires a read lock on the
// source for the duration. Nodes are freshly built for the clone, key
// and value references carry over as is.
func (t *TreeMap[K, V]) Clone(name string) *TreeMap[K, V] {
	t.rw.RLock()
	defer t.rw.RUnlock()

	newt := New[K, V](name, t.compare, t.setts)
	newt.tostring = t.tostring

	// pre-order replay, the clone's own Set reshapes as it goes and
	// takes the clone's lock, never this instance's.
	stack := vector.New[*node[K, V]](32)
	if t.root != nil {
		stack.Pushfront(t.root)
	}
	for stack.Isempty() == false {
		nd := stack.Popfront()
		newt.Set(nd.key, nd.value)
		if nd.right != nil {
			stack.Pushfront(nd.right)
		}
		if nd.left != nil {
			stack.Pushfront(nd.left)
		}
	}
	atomic.AddInt64(&t.n_clones, 1)
	return newt
}

// Height return the number of levels in the tree, acquires a read
// lock. Height is O(log n) for any reachable state.
func (t *TreeMap[K, V]) Height() int64 {
	t.rw.RLock()
	defer t.rw.RUnlock()
	return t.height()
}

//---- local functions

// getnode search for key without locking. Returns the exact node when
// cmp is zero, otherwise the would-be parent and the comparison
// against it, so that callers distinguish "found" from "adjacent" in
// one pass. depth counts nodes visited, 1 for the root.
func (t *TreeMap[K, V]) getnode(key K) (nd *node[K, V], cmp int, depth int64) {
	nd = t.root
	if nd == nil {
		return nil, 0, 0
	}
	depth = 1
	for {
		cmp = t.compare(key, nd.key)
		if cmp < 0 && nd.left != nil {
			nd, depth = nd.left, depth+1
		} else if cmp > 0 && nd.right != nil {
			nd, depth = nd.right, depth+1
		} else {
			return nd, cmp, depth
		}
	}
}

func (t *TreeMap[K, V]) newnode(key K, value V, hue color) *node[K, V] {
	if err := t.malloc.Zeroedalloc(1, t.nodesize); err != nil {
		panic(err)
	}
	t.n_nodes++
	return &node[K, V]{key: key, value: value, hue: hue}
}

func (t *TreeMap[K, V]) freenode(nd *node[K, V]) {
	if nd != nil {
		nd.parent, nd.left, nd.right = nil, nil, nil
		t.malloc.Free(t.nodesize)
		t.n_frees++
	}
}

// rotate lift the left or right child of nd into nd's position, nd
// becomes that child's outward child and adopts the child's other
// subtree in exchange. One routine handles both directions and keeps
// every parent back-reference consistent, including the root.
func (t *TreeMap[K, V]) rotate(nd *node[K, V], toleft bool) {
	var child *node[K, V]
	if toleft {
		child = nd.right
	} else {
		child = nd.left
	}
	if child == nil {
		panic(fmt.Errorf("rotate(): rotating over nil, call the programmer"))
	}

	parent := nd.parent
	child.parent = parent
	if parent == nil {
		t.root = child
	} else if parent.left == nd {
		parent.left = child
	} else {
		parent.right = child
	}
	if toleft {
		nd.right = child.left
		if child.left != nil {
			child.left.parent = nd
		}
		child.left = nd
	} else {
		nd.left = child.right
		if child.right != nil {
			child.right.parent = nd
		}
		child.right = nd
	}
	nd.parent = child
}

// afterinsert restore the red-red invariant starting from a freshly
// linked red child, walking upward as recolorings propagate.
func (t *TreeMap[K, V]) afterinsert(child *node[K, V]) {
	for {
		parent := child.parent
		if parent == nil || isblack(parent) {
			return
		}
		// a red parent is never the root, the grandparent exists.
		grand, uncle := parent.parent, child.uncle()

		if isred(uncle) { // recolor and climb
			parent.hue, uncle.hue = black, black
			if grand.isroot() {
				return
			}
			grand.hue = red
			child = grand
			continue
		}

		pleft := grand.left == parent
		if pleft != (parent.left == child) { // zig-zag, straighten it out first
			t.rotate(parent, pleft)
			parent = child
		}
		// zig-zig, one rotation at the grandparent terminates
		t.rotate(grand, !pleft)
		grand.hue, parent.hue = red, black
		return
	}
}

// deletenode remove nd from the tree. A node with two children trades
// places with its in-order successor first, the successor's key and
// value migrate upward and deletion retargets onto the successor which
// has at most one child. A black non-root leaves a black-height
// deficit at its position, resolved by afterdelete before the node is
// physically unlinked.
func (t *TreeMap[K, V]) deletenode(nd *node[K, V]) {
	if nd.left != nil && nd.right != nil {
		succ := nd.right.leftmost()
		nd.key, nd.value = succ.key, succ.value
		nd = succ
	}

	if isblack(nd) && nd.parent != nil {
		t.afterdelete(nd)
	}

	// splice out, promoting the lone child if any.
	child := nd.left
	if child == nil {
		child = nd.right
	}
	parent := nd.parent
	switch {
	case parent == nil:
		t.root = child
		if child != nil {
			child.hue = black
		}
	case parent.left == nd:
		parent.left = child
	default:
		parent.right = child
	}
	if child != nil {
		child.parent = parent
	}
	t.freenode(nd)
}

// afterdelete absorb the black-height deficit at nd's position. The
// parent, sibling and both nephews are recomputed at the top of every
// pass, rotations from the previous pass invalidate older references.
func (t *TreeMap[K, V]) afterdelete(nd *node[K, V]) {
	for {
		parent := nd.parent
		if parent == nil { // deficit absorbed at the root
			return
		}
		sibling := nd.sibling()
		if sibling == nil {
			panic(fmt.Errorf("afterdelete(): missing sibling, call the programmer"))
		}
		var near, far *node[K, V]
		if parent.left == nd {
			near, far = sibling.left, sibling.right
		} else {
			near, far = sibling.right, sibling.left
		}

		switch {
		case isred(sibling) && isblack(parent) && isblack(near) && isblack(far):
			// demote the red sibling and retry underneath it.
			t.rotate(parent, parent.left == nd)
			parent.hue, sibling.hue = red, black

		case isblack(parent) && isblack(sibling) && isblack(near) && isblack(far):
			// deficit propagates one level up.
			sibling.hue = red
			if parent.isroot() {
				return
			}
			nd = parent

		case isred(parent) && isblack(sibling) && isblack(near) && isblack(far):
			parent.hue, sibling.hue = black, red
			return

		case isred(near) && isblack(far):
			// fold the near nephew outward, reducing to the next case.
			t.rotate(sibling, parent.right == nd)
			near.hue, sibling.hue = black, red

		case isred(far):
			hue := parent.hue
			t.rotate(parent, parent.left == nd)
			sibling.hue = hue
			if sibling.isroot() {
				sibling.hue = black
			}
			parent.hue, far.hue = black, black
			return

		default:
			panic(fmt.Errorf("afterdelete(): impossible shape, call the programmer"))
		}
	}
}

// reset free every node, children before their parent.
func (t *TreeMap[K, V]) reset() {
	stack := vector.New[*node[K, V]](32)
	if t.root != nil {
		stack.Pushfront(t.root)
	}
	var last *node[K, V]
	for stack.Isempty() == false {
		nd := stack.Front()
		if nd.isleaf() || nd.left == last || nd.right == last {
			stack.Popfront()
			last = nd
			t.freenode(nd)
			continue
		}
		if nd.right != nil {
			stack.Pushfront(nd.right)
		}
		if nd.left != nil {
			stack.Pushfront(nd.left)
		}
	}
	t.root = nil
	atomic.StoreInt64(&t.n_count, 0)
}

func (t *TreeMap[K, V]) height() int64 {
	if t.root == nil {
		return 0
	}
	queue := list.New[*node[K, V]]()
	queue.Pushback(t.root)
	height := int64(0)
	for queue.Isempty() == false {
		// loop over every node on this level.
		for nodes := queue.Count(); nodes > 0; nodes-- {
			nd := queue.Popfront()
			if nd.left != nil {
				queue.Pushback(nd.left)
			}
			if nd.right != nil {
				queue.Pushback(nd.right)
			}
		}
		height++
	}
	return height
}

func (t *TreeMap[K, V]) getiterator() (iter *Iterator[K, V]) {
	select {
	case iter = <-t.iterpool:
	default:
		iter = &Iterator[K, V]{stack: vector.New[*node[K, V]](32)}
	}
	iter.t = t
	return iter
}

func (t *TreeMap[K, V]) putiterator(iter *Iterator[K, V]) {
	select {
	case t.iterpool <- iter:
	default: // left for the GC
	}
}

var _ api.Container = (*TreeMap[int, int])(nil)
var _ api.Statser = (*TreeMap[int, int])(nil)

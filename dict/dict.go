// Package dict implement an unordered key,value store on a separate
// chaining hash table. Keys spread over buckets by a caller supplied
// hash function, collisions chain into a linked list per bucket and
// the table doubles once chains grow past the configured load factor.
//
// Same concurrency discipline as treemap, one reader-writer lock per
// instance. Entries come out in no particular order, reach for treemap
// when order matters.
package dict

import "fmt"
import "sync"
import "sync/atomic"

import "github.com/bnclabs/gods/api"
import "github.com/bnclabs/gods/list"
import s "github.com/bnclabs/gosettings"

type entry[K, V any] struct {
	key   K
	value V
}

// Dict manage a single hash table instance.
type Dict[K, V any] struct {
	n_count   int64
	n_inserts int64
	n_updates int64
	n_deletes int64
	n_lookups int64
	n_misses  int64

	name      string
	buckets   []*list.List[*entry[K, V]]
	hash      func(key K) uint64
	compare   func(a, b K) int
	rw        sync.RWMutex
	dead      bool
	logprefix string

	// settings
	nbuckets   int64 // buckets.initial
	loadfactor int64 // loadfactor
}

// New create an empty table. `hash` spreads keys over buckets,
// `compare` resolves collisions within a bucket, both are mandatory
// and their absence panics.
func New[K, V any](name string, hash func(key K) uint64, compare func(a, b K) int, setts s.Settings) *Dict[K, V] {
	if hash == nil {
		panic(fmt.Errorf("New(): missing hash function"))
	} else if compare == nil {
		panic(fmt.Errorf("New(): missing compare function"))
	}
	d := &Dict[K, V]{name: name, hash: hash, compare: compare}
	d.logprefix = fmt.Sprintf("Dict [%s]", name)

	setts = make(s.Settings).Mixin(Defaultsettings(), setts)
	d.readsettings(setts)
	d.buckets = makebuckets[K, V](d.nbuckets)

	infof("%v started ...\n", d.logprefix)
	return d
}

// ID implement api.Container interface.
func (d *Dict[K, V]) ID() string {
	return d.name
}

// Count implement api.Container interface.
func (d *Dict[K, V]) Count() int64 {
	return atomic.LoadInt64(&d.n_count)
}

// Isempty implement api.Container interface.
func (d *Dict[K, V]) Isempty() bool {
	return d.Count() == 0
}

// Isactive implement api.Container interface.
func (d *Dict[K, V]) Isactive() bool {
	return d.dead == false
}

// Get the value for key, acquires a read lock.
func (d *Dict[K, V]) Get(key K) (value V, ok bool) {
	d.rw.RLock()
	defer d.rw.RUnlock()
	atomic.AddInt64(&d.n_lookups, 1)

	if en := d.getentry(key); en != nil {
		return en.value, true
	}
	atomic.AddInt64(&d.n_misses, 1)
	return
}

// Has return whether key is present, acquires a read lock.
func (d *Dict[K, V]) Has(key K) bool {
	_, ok := d.Get(key)
	return ok
}

// Set insert or overwrite the entry for key, acquires a write lock.
func (d *Dict[K, V]) Set(key K, value V) (oldvalue V, updated bool) {
	d.rw.Lock()
	defer d.rw.Unlock()

	if en := d.getentry(key); en != nil {
		oldvalue, en.value = en.value, value
		d.n_updates++
		return oldvalue, true
	}
	if d.n_count >= d.loadfactor*int64(len(d.buckets)) {
		d.rehash(int64(len(d.buckets)) * 2)
	}
	chain := d.buckets[d.hash(key)%uint64(len(d.buckets))]
	chain.Pushfront(&entry[K, V]{key: key, value: value})
	d.n_count++
	d.n_inserts++
	return
}

// Delete remove the entry for key, acquires a write lock. A missing
// key is a no-op and returns ok as false.
func (d *Dict[K, V]) Delete(key K) (deleted V, ok bool) {
	d.rw.Lock()
	defer d.rw.Unlock()

	chain := d.buckets[d.hash(key)%uint64(len(d.buckets))]
	removed := chain.Remove(func(en *entry[K, V]) bool {
		if d.compare(en.key, key) == 0 {
			deleted = en.value
			return true
		}
		return false
	})
	if removed == false {
		atomic.AddInt64(&d.n_misses, 1)
		return
	}
	d.n_count--
	d.n_deletes++
	return deleted, true
}

// Each call `fn` for every entry, in no particular order, until `fn`
// returns false. Holds a read lock for the full walk, `fn` must not
// call back into this instance's write operations.
func (d *Dict[K, V]) Each(fn func(key K, value V) bool) {
	d.rw.RLock()
	defer d.rw.RUnlock()

	for _, chain := range d.buckets {
		stop := false
		chain.Each(func(en *entry[K, V]) bool {
			if fn(en.key, en.value) == false {
				stop = true
			}
			return stop == false
		})
		if stop {
			return
		}
	}
}

// Reset implement api.Container interface. Remove all entries, the
// table shrinks back to its initial bucket count.
func (d *Dict[K, V]) Reset() {
	d.rw.Lock()
	defer d.rw.Unlock()

	d.buckets = makebuckets[K, V](d.nbuckets)
	atomic.StoreInt64(&d.n_count, 0)
}

// Destroy implement api.Container interface.
func (d *Dict[K, V]) Destroy() error {
	d.rw.Lock()
	defer d.rw.Unlock()

	if d.dead {
		panic(api.ErrorClosed)
	}
	d.buckets = nil
	d.dead = true
	infof("%v destroyed\n", d.logprefix)
	return nil
}

// Stats return a snapshot of the table's counters.
func (d *Dict[K, V]) Stats() map[string]interface{} {
	d.rw.RLock()
	defer d.rw.RUnlock()

	maxchain := int64(0)
	for _, chain := range d.buckets {
		if n := chain.Count(); n > maxchain {
			maxchain = n
		}
	}
	return map[string]interface{}{
		"n_count":   atomic.LoadInt64(&d.n_count),
		"n_inserts": atomic.LoadInt64(&d.n_inserts),
		"n_updates": atomic.LoadInt64(&d.n_updates),
		"n_deletes": atomic.LoadInt64(&d.n_deletes),
		"n_lookups": atomic.LoadInt64(&d.n_lookups),
		"n_misses":  atomic.LoadInt64(&d.n_misses),
		"n_buckets": int64(len(d.buckets)),
		"maxchain":  maxchain,
	}
}

//---- local functions

func (d *Dict[K, V]) getentry(key K) (found *entry[K, V]) {
	chain := d.buckets[d.hash(key)%uint64(len(d.buckets))]
	chain.Each(func(en *entry[K, V]) bool {
		if d.compare(en.key, key) == 0 {
			found = en
			return false
		}
		return true
	})
	return found
}

func (d *Dict[K, V]) rehash(nbuckets int64) {
	buckets := makebuckets[K, V](nbuckets)
	for _, chain := range d.buckets {
		chain.Each(func(en *entry[K, V]) bool {
			buckets[d.hash(en.key)%uint64(nbuckets)].Pushfront(en)
			return true
		})
	}
	d.buckets = buckets
	debugf("%v rehashed into %v buckets\n", d.logprefix, nbuckets)
}

func makebuckets[K, V any](n int64) []*list.List[*entry[K, V]] {
	buckets := make([]*list.List[*entry[K, V]], n)
	for i := range buckets {
		buckets[i] = list.New[*entry[K, V]]()
	}
	return buckets
}

var _ api.Container = (*Dict[int, int])(nil)
var _ api.Statser = (*Dict[int, int])(nil)

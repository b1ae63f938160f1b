package treemap

import "sync/atomic"

import humanize "github.com/dustin/go-humanize"

// Stats return a snapshot of the map's counters.
//
// "n_count"        current number of entries.
// "n_inserts"      cumulative number of keys inserted.
// "n_updates"      cumulative number of keys overwritten in place.
// "n_deletes"      cumulative number of keys deleted.
// "n_lookups"      cumulative number of point lookups.
// "n_misses"       lookups and deletes that found no entry.
// "n_ranges"       number of iterations started.
// "n_nodes"        cumulative number of nodes built.
// "n_frees"        cumulative number of nodes released.
// "n_clones"       number of times this map was cloned.
// "n_activeiter"   iterators currently open.
// "h_depth"        histogram of depths seen by writes.
// "node.capacity"  allocator capacity in bytes.
// "node.alloc"     bytes currently allocated.
// "node.highwater" allocator high water mark in bytes.
func (t *TreeMap[K, V]) Stats() map[string]interface{} {
	stats := map[string]interface{}{
		"n_count":      atomic.LoadInt64(&t.n_count),
		"n_inserts":    atomic.LoadInt64(&t.n_inserts),
		"n_updates":    atomic.LoadInt64(&t.n_updates),
		"n_deletes":    atomic.LoadInt64(&t.n_deletes),
		"n_lookups":    atomic.LoadInt64(&t.n_lookups),
		"n_misses":     atomic.LoadInt64(&t.n_misses),
		"n_ranges":     atomic.LoadInt64(&t.n_ranges),
		"n_nodes":      atomic.LoadInt64(&t.n_nodes),
		"n_frees":      atomic.LoadInt64(&t.n_frees),
		"n_clones":     atomic.LoadInt64(&t.n_clones),
		"n_activeiter": atomic.LoadInt64(&t.n_activeiter),
		"h_depth":      t.h_depth.Stats(),
	}
	capacity, allocated, highwater, _, _ := t.malloc.Info()
	stats["node.capacity"] = capacity
	stats["node.alloc"] = allocated
	stats["node.highwater"] = highwater
	return stats
}

// Log vital information about this map.
func (t *TreeMap[K, V]) Log() {
	t.rw.RLock()
	defer t.rw.RUnlock()

	stats := t.Stats()
	fmsg := "%v entries %v, inserts %v, updates %v, deletes %v\n"
	infof(
		fmsg, t.logprefix, stats["n_count"], stats["n_inserts"],
		stats["n_updates"], stats["n_deletes"],
	)
	alloc := humanize.Bytes(uint64(stats["node.alloc"].(int64)))
	highwater := humanize.Bytes(uint64(stats["node.highwater"].(int64)))
	fmsg = "%v memory %v allocated, highwater %v\n"
	infof(fmsg, t.logprefix, alloc, highwater)
}

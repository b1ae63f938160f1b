// Package malloc implement tracked memory accounting for in-memory
// containers. Raw memory is managed by the go runtime, but every node a
// container creates or destroys is accounted through a Tracker, so that
// lifecycle bugs show up as non-zero live bytes and capacity overruns
// surface as a recognizable error instead of runtime pressure.
//
// Trackers are injectable and test-scoped, there is no process wide
// accounting state. All counters are thread safe.
package malloc

import "fmt"
import "sync/atomic"

import "github.com/bnclabs/gods/api"
import "github.com/bnclabs/golog"
import s "github.com/bnclabs/gosettings"
import humanize "github.com/dustin/go-humanize"

// Tracker implement api.Mallocer. One tracker per container instance.
type Tracker struct {
	// 64-bit aligned
	allocated int64
	highwater int64
	n_allocs  int64
	n_frees   int64
	dead      int64

	name      string
	capacity  int64
	logprefix string
}

// New create a tracker for a container. Capacity comes from settings,
// refer to Defaultsettings() for a description of configurable
// parameters.
func New(name string, setts s.Settings) *Tracker {
	setts = make(s.Settings).Mixin(Defaultsettings(), setts)
	t := &Tracker{name: name, logprefix: fmt.Sprintf("malloc [%s]", name)}
	t.capacity = setts.Int64("capacity")
	if t.capacity == 0 {
		_, _, free := getsysmem()
		t.capacity = int64(free)
	}
	log.Infof("%v started with capacity %v\n",
		t.logprefix, humanize.Bytes(uint64(t.capacity)))
	return t
}

// Alloc implement api.Mallocer interface.
func (t *Tracker) Alloc(n int64) error {
	if atomic.LoadInt64(&t.dead) == 1 {
		panic(fmt.Errorf("Alloc(): released tracker %q", t.name))
	} else if n <= 0 {
		panic(fmt.Errorf("Alloc(): invalid size %v", n))
	}
	allocated := atomic.AddInt64(&t.allocated, n)
	if allocated > t.capacity {
		atomic.AddInt64(&t.allocated, -n)
		log.Errorf("%v exhausted: %v over capacity %v\n",
			t.logprefix, allocated, t.capacity)
		return api.ErrorOutofMemory
	}
	atomic.AddInt64(&t.n_allocs, 1)
	for {
		highwater := atomic.LoadInt64(&t.highwater)
		if allocated <= highwater {
			break
		} else if atomic.CompareAndSwapInt64(&t.highwater, highwater, allocated) {
			break
		}
	}
	return nil
}

// Zeroedalloc implement api.Mallocer interface.
func (t *Tracker) Zeroedalloc(count, size int64) error {
	if count <= 0 || size <= 0 {
		panic(fmt.Errorf("Zeroedalloc(): invalid args {%v,%v}", count, size))
	}
	return t.Alloc(count * size)
}

// Free implement api.Mallocer interface.
func (t *Tracker) Free(n int64) {
	if atomic.LoadInt64(&t.dead) == 1 {
		panic(fmt.Errorf("Free(): released tracker %q", t.name))
	} else if n <= 0 {
		panic(fmt.Errorf("Free(): invalid size %v", n))
	}
	if atomic.AddInt64(&t.allocated, -n) < 0 {
		panic(api.ErrorFreeUnderflow)
	}
	atomic.AddInt64(&t.n_frees, 1)
}

// Allocated implement api.Mallocer interface.
func (t *Tracker) Allocated() int64 {
	return atomic.LoadInt64(&t.allocated)
}

// Info implement api.Mallocer interface.
func (t *Tracker) Info() (capacity, allocated, highwater, allocs, frees int64) {
	capacity = t.capacity
	allocated = atomic.LoadInt64(&t.allocated)
	highwater = atomic.LoadInt64(&t.highwater)
	allocs = atomic.LoadInt64(&t.n_allocs)
	frees = atomic.LoadInt64(&t.n_frees)
	return
}

// Release implement api.Mallocer interface. Live bytes at release time
// are leaked nodes, they are logged and forgotten.
func (t *Tracker) Release() {
	if atomic.CompareAndSwapInt64(&t.dead, 0, 1) == false {
		panic(fmt.Errorf("Release(): already release tracker %q", t.name))
	}
	if allocated := atomic.LoadInt64(&t.allocated); allocated > 0 {
		log.Warnf("%v released with %v live\n",
			t.logprefix, humanize.Bytes(uint64(allocated)))
		return
	}
	log.Infof("%v released\n", t.logprefix)
}

// Log accounting counters in human readable form.
func (t *Tracker) Log() {
	capacity, allocated, highwater, allocs, frees := t.Info()
	fmsg := "%v capacity %v, live %v, highwater %v, allocs %v, frees %v\n"
	log.Infof(fmsg, t.logprefix,
		humanize.Bytes(uint64(capacity)), humanize.Bytes(uint64(allocated)),
		humanize.Bytes(uint64(highwater)), allocs, frees)
}

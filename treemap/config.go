package treemap

import s "github.com/bnclabs/gosettings"

// Defaultsettings for treemap instance.
//
// "iterpool.size" (int64, default: 8)
//		Number of iterators kept pooled for reuse. Each Iterate call
//		takes an instance from the pool, Close returns it.
//
// "allocator.capacity" (int64, default: 0)
//		Capacity, in bytes, for the map's node accounting. Inserting
//		beyond the capacity panics with api.ErrorOutofMemory. Zero
//		derives the capacity from the system's free memory.
func Defaultsettings() s.Settings {
	return s.Settings{
		"iterpool.size":      int64(8),
		"allocator.capacity": int64(0),
	}
}

func (t *TreeMap[K, V]) readsettings(setts s.Settings) {
	t.iterpoolsize = setts.Int64("iterpool.size")
	t.allocapacity = setts.Int64("allocator.capacity")
}

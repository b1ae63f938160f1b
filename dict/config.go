package dict

import s "github.com/bnclabs/gosettings"

// Defaultsettings for dict instance.
//
// "buckets.initial" (int64, default: 16)
//		Number of buckets the table starts with, also the size it
//		shrinks back to on Reset.
//
// "loadfactor" (int64, default: 4)
//		Average chain length tolerated before the table doubles its
//		bucket count.
func Defaultsettings() s.Settings {
	return s.Settings{
		"buckets.initial": int64(16),
		"loadfactor":      int64(4),
	}
}

func (d *Dict[K, V]) readsettings(setts s.Settings) {
	d.nbuckets = setts.Int64("buckets.initial")
	d.loadfactor = setts.Int64("loadfactor")
}

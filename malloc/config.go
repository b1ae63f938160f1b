package malloc

import s "github.com/bnclabs/gosettings"
import "github.com/cloudfoundry/gosigar"

// Defaultsettings for memory accounting.
//
// "capacity" (int64, default: 0)
//		Maximum number of live bytes the tracker will account before
//		allocations fail with api.ErrorOutofMemory. Zero means derive
//		the capacity from the system's free memory.
func Defaultsettings() s.Settings {
	return s.Settings{
		"capacity": int64(0),
	}
}

func getsysmem() (total, used, free uint64) {
	mem := sigar.Mem{}
	mem.Get()
	return mem.Total, mem.Used, mem.Free
}

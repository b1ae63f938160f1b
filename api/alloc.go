package api

// Mallocer interface for tracked memory accounting. Containers don't
// manage raw memory, the go runtime does, but every node a container
// creates or destroys is accounted through a Mallocer so that leaks
// show up as non-zero live bytes.
type Mallocer interface {
	// Alloc account a chunk of `n` bytes. Returns ErrorOutofMemory
	// if the accounted capacity would be exceeded.
	Alloc(n int64) error

	// Zeroedalloc account `count` chunks of `size` bytes each,
	// equivalent of calloc.
	Zeroedalloc(count, size int64) error

	// Free account release of a chunk of `n` bytes. Freeing more than
	// was allocated is a programmer error and panics.
	Free(n int64)

	// Allocated return the number of live bytes.
	Allocated() int64

	// Info of memory accounting for this allocator.
	Info() (capacity, allocated, highwater, allocs, frees int64)

	// Release the allocator, after which accounting calls panic.
	Release()
}

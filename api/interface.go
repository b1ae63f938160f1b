// Package api define types and interfaces common to all container
// algorithms implemented by this module.
package api

// Container interface common to all keyed containers.
type Container interface {
	// ID return the name supplied when the container was created.
	ID() string

	// Count return the number of entries held by the container.
	Count() int64

	// Isempty return true if the container has no entries.
	Isempty() bool

	// Isactive return false once the container is destroyed.
	Isactive() bool

	// Reset remove all entries, the container remains usable.
	Reset()

	// Destroy the container and release its allocator. Containers
	// cannot be destroyed while iterators are active on them.
	Destroy() error
}

// Statser interface for containers that maintain operational statistics.
type Statser interface {
	// Stats return a set of counters describing the container's life
	// so far. Keys are implementation defined.
	Stats() map[string]interface{}
}

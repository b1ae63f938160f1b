// Package vector implement a growable circular buffer of items,
// supporting O(1) operations on both its front and its back. Items are
// held in a single contiguous slab that doubles when full. Vectors
// double up as stacks, queues and deques for the other containers in
// this module. Not thread safe.
package vector

import "fmt"

// Minslab smallest slab allocated by a vector, item count.
const Minslab = int64(8)

// Vector of items backed by a circular buffer.
type Vector[T any] struct {
	slab  []T
	head  int64 // index into slab of the front item
	count int64
}

// New create an empty vector with at least `capacity` item slots
// pre-allocated.
func New[T any](capacity int64) *Vector[T] {
	if capacity < Minslab {
		capacity = Minslab
	}
	return &Vector[T]{slab: make([]T, capacity)}
}

// Count return the number of items held.
func (v *Vector[T]) Count() int64 {
	return v.count
}

// Isempty return true if the vector holds no items.
func (v *Vector[T]) Isempty() bool {
	return v.count == 0
}

// Front return the first item, without removing it.
func (v *Vector[T]) Front() T {
	if v.count == 0 {
		panic(fmt.Errorf("Front(): empty vector"))
	}
	return v.slab[v.head]
}

// Back return the last item, without removing it.
func (v *Vector[T]) Back() T {
	if v.count == 0 {
		panic(fmt.Errorf("Back(): empty vector"))
	}
	return v.slab[v.index(v.count-1)]
}

// Pushfront prepend item before the front.
func (v *Vector[T]) Pushfront(item T) {
	if v.count == int64(len(v.slab)) {
		v.grow()
	}
	v.head = (v.head - 1 + int64(len(v.slab))) % int64(len(v.slab))
	v.slab[v.head] = item
	v.count++
}

// Pushback append item after the back.
func (v *Vector[T]) Pushback(item T) {
	if v.count == int64(len(v.slab)) {
		v.grow()
	}
	v.slab[v.index(v.count)] = item
	v.count++
}

// Popfront remove and return the first item.
func (v *Vector[T]) Popfront() T {
	if v.count == 0 {
		panic(fmt.Errorf("Popfront(): empty vector"))
	}
	var zero T
	item := v.slab[v.head]
	v.slab[v.head] = zero
	v.head = v.index(1)
	v.count--
	if v.count == 0 {
		v.head = 0
	}
	return item
}

// Popback remove and return the last item.
func (v *Vector[T]) Popback() T {
	if v.count == 0 {
		panic(fmt.Errorf("Popback(): empty vector"))
	}
	var zero T
	at := v.index(v.count - 1)
	item := v.slab[at]
	v.slab[at] = zero
	v.count--
	if v.count == 0 {
		v.head = 0
	}
	return item
}

// At return the item at position `i`, 0 is the front.
func (v *Vector[T]) At(i int64) T {
	if i < 0 || i >= v.count {
		panic(fmt.Errorf("At(): index %v out of bounds {0,%v}", i, v.count))
	}
	return v.slab[v.index(i)]
}

// Reset drop all items, the slab is retained for reuse.
func (v *Vector[T]) Reset() {
	var zero T
	for i := int64(0); i < v.count; i++ {
		v.slab[v.index(i)] = zero
	}
	v.head, v.count = 0, 0
}

// index map a logical offset from head to a slab index, wrapping
// around the slab boundary.
func (v *Vector[T]) index(i int64) int64 {
	return (v.head + i) % int64(len(v.slab))
}

// grow double the slab, unwinding the wrap-around so that head starts
// at slab offset zero.
func (v *Vector[T]) grow() {
	slab := make([]T, int64(len(v.slab))*2)
	for i := int64(0); i < v.count; i++ {
		slab[i] = v.slab[v.index(i)]
	}
	v.slab, v.head = slab, 0
}

// Package list implement a doubly linked list of items with O(1)
// operations on both ends. Lists serve as work queues for the breadth
// first walks done by the keyed containers in this module. Not thread
// safe.
package list

import "fmt"

type listnode[T any] struct {
	next, prev *listnode[T]
	item       T
}

// List of items linked in both directions.
type List[T any] struct {
	head, tail *listnode[T]
	count      int64
}

// New create an empty list.
func New[T any]() *List[T] {
	return &List[T]{}
}

// Count return the number of items held.
func (l *List[T]) Count() int64 {
	return l.count
}

// Isempty return true if the list holds no items.
func (l *List[T]) Isempty() bool {
	return l.count == 0
}

// Front return the first item, without removing it.
func (l *List[T]) Front() T {
	if l.head == nil {
		panic(fmt.Errorf("Front(): empty list"))
	}
	return l.head.item
}

// Back return the last item, without removing it.
func (l *List[T]) Back() T {
	if l.tail == nil {
		panic(fmt.Errorf("Back(): empty list"))
	}
	return l.tail.item
}

// Pushfront prepend item before the front.
func (l *List[T]) Pushfront(item T) {
	nd := &listnode[T]{item: item, next: l.head}
	if l.head != nil {
		l.head.prev = nd
	} else {
		l.tail = nd
	}
	l.head = nd
	l.count++
}

// Pushback append item after the back.
func (l *List[T]) Pushback(item T) {
	nd := &listnode[T]{item: item, prev: l.tail}
	if l.tail != nil {
		l.tail.next = nd
	} else {
		l.head = nd
	}
	l.tail = nd
	l.count++
}

// Popfront remove and return the first item.
func (l *List[T]) Popfront() T {
	if l.head == nil {
		panic(fmt.Errorf("Popfront(): empty list"))
	}
	nd := l.head
	l.unlink(nd)
	return nd.item
}

// Popback remove and return the last item.
func (l *List[T]) Popback() T {
	if l.tail == nil {
		panic(fmt.Errorf("Popback(): empty list"))
	}
	nd := l.tail
	l.unlink(nd)
	return nd.item
}

// Remove the first item for which `fn` returns true. Return false if
// no item matched.
func (l *List[T]) Remove(fn func(item T) bool) bool {
	for nd := l.head; nd != nil; nd = nd.next {
		if fn(nd.item) {
			l.unlink(nd)
			return true
		}
	}
	return false
}

// Each call `fn` for every item, front to back, until `fn` returns
// false.
func (l *List[T]) Each(fn func(item T) bool) {
	for nd := l.head; nd != nil; nd = nd.next {
		if fn(nd.item) == false {
			return
		}
	}
}

// Reset drop all items.
func (l *List[T]) Reset() {
	l.head, l.tail, l.count = nil, nil, 0
}

func (l *List[T]) unlink(nd *listnode[T]) {
	if nd.prev != nil {
		nd.prev.next = nd.next
	} else {
		l.head = nd.next
	}
	if nd.next != nil {
		nd.next.prev = nd.prev
	} else {
		l.tail = nd.prev
	}
	nd.next, nd.prev = nil, nil
	l.count--
}

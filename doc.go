// Package gods implement a collection of generic, thread-safe
// in-memory containers and necessary tools and libraries.
//
// api:
//
// Interface specification and error taxonomy common to all containers
// in this module.
//
// dict:
//
// Unordered {key,value} store on a separate chaining hash table, with
// caller supplied hash and comparison functions.
//
// lib:
//
// Convenience types usable by other packages. Package shall not import
// packages other than golang's standard packages.
//
// list:
//
// Doubly linked list with O(1) operations on both ends, used as work
// queue by the container packages.
//
// malloc:
//
// Tracked memory accounting for container nodes, with a configurable
// capacity defaulted from the system's free memory.
//
// treemap:
//
// Ordered {key,value} store on a red-black tree, with O(log n) point
// operations and lazy iterators in three traversal orders.
//
// vector:
//
// Growable circular buffer with O(1) operations on both ends, used as
// the explicit stack behind non-recursive tree walks.
package gods

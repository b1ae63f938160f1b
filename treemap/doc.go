// Package treemap implements an in-memory sorted key/value store on a
// red-black tree. Keys are ordered by a caller supplied comparator,
// lookups, inserts and deletes are O(log n) and rebalancing keeps the
// tree within twice the ideal height.
//
// Concurrency is one reader-writer lock per map, any number of readers
// or exactly one writer. Iterators pin the read lock until closed,
// giving them a consistent view while they run.
//
//	compare := func(a, b int) int { return a - b }
//	t := treemap.New[int, string]("users", compare, nil)
//	t.Set(10, "alice")
//	iter := t.Iterate(treemap.Inorder)
//	for key, value, ok := iter.Next(); ok; key, value, ok = iter.Next() {
//		// entries arrive in ascending key order.
//	}
//	iter.Close()
package treemap

package treemap

import "math/rand"
import "testing"

func buildseven() *TreeMap[int, int] {
	tm := New[int, int]("seven", cmpint, nil)
	// shapes into a full tree of three levels, 50 at the root.
	for _, key := range []int{50, 30, 70, 20, 40, 60, 80} {
		tm.Set(key, key)
	}
	return tm
}

func collect(iter *Iterator[int, int]) []int {
	keys := []int{}
	for key, _, ok := iter.Next(); ok; key, _, ok = iter.Next() {
		keys = append(keys, key)
	}
	return keys
}

func TestInorder(t *testing.T) {
	tm := buildseven()
	defer tm.Destroy()

	iter := tm.Iterate(Inorder)
	keys := collect(iter)
	iter.Close()

	ref := []int{20, 30, 40, 50, 60, 70, 80}
	if len(keys) != len(ref) {
		t.Errorf("unexpected %v", keys)
	}
	for i, key := range ref {
		if keys[i] != key {
			t.Errorf("unexpected %v at %v", keys[i], i)
		}
	}
}

func TestPreorder(t *testing.T) {
	tm := buildseven()
	defer tm.Destroy()

	iter := tm.Iterate(Preorder)
	keys := collect(iter)
	iter.Close()

	ref := []int{50, 30, 20, 40, 70, 60, 80}
	if len(keys) != len(ref) {
		t.Errorf("unexpected %v", keys)
	}
	for i, key := range ref {
		if keys[i] != key {
			t.Errorf("unexpected %v at %v", keys[i], i)
		}
	}
}

func TestPostorder(t *testing.T) {
	tm := buildseven()
	defer tm.Destroy()

	iter := tm.Iterate(Postorder)
	keys := collect(iter)
	iter.Close()

	ref := []int{20, 40, 30, 60, 80, 70, 50}
	if len(keys) != len(ref) {
		t.Errorf("unexpected %v", keys)
	}
	for i, key := range ref {
		if keys[i] != key {
			t.Errorf("unexpected %v at %v", keys[i], i)
		}
	}
}

func TestInorderRandom(t *testing.T) {
	tm := New[int, int]("inorderrand", cmpint, nil)
	defer tm.Destroy()

	n := 2048
	for _, key := range rand.Perm(n) {
		tm.Set(key, key*10)
	}

	iter := tm.Iterate(Inorder)
	defer iter.Close()
	count, prev := 0, -1
	for key, value, ok := iter.Next(); ok; key, value, ok = iter.Next() {
		if key <= prev {
			t.Errorf("unexpected %v after %v", key, prev)
		} else if value != key*10 {
			t.Errorf("unexpected %v for %v", value, key)
		}
		prev, count = key, count+1
	}
	if count != n {
		t.Errorf("unexpected %v", count)
	}
}

func TestIterateSize(t *testing.T) {
	tm := New[int, int]("itersize", cmpint, nil)
	defer tm.Destroy()

	for _, key := range rand.Perm(777) {
		tm.Set(key, key)
	}
	for _, order := range []Order{Inorder, Preorder, Postorder} {
		iter := tm.Iterate(order)
		if keys := collect(iter); len(keys) != 777 {
			t.Errorf("unexpected %v for order %v", len(keys), order)
		}
		iter.Close()
	}
}

func TestIterateEmpty(t *testing.T) {
	tm := New[int, int]("iterempty", cmpint, nil)
	defer tm.Destroy()

	iter := tm.Iterate(Inorder)
	defer iter.Close()
	if _, _, ok := iter.Next(); ok {
		t.Errorf("unexpected entry")
	}
}

func TestIterateExhausted(t *testing.T) {
	tm := New[int, int]("iterdone", cmpint, nil)
	defer tm.Destroy()

	tm.Set(1, 1)
	iter := tm.Iterate(Inorder)
	defer iter.Close()
	iter.Next()
	// an exhausted iterator does not restart.
	for i := 0; i < 3; i++ {
		if _, _, ok := iter.Next(); ok {
			t.Errorf("unexpected entry")
		}
	}
}

func TestIterateClosed(t *testing.T) {
	tm := New[int, int]("iterclosed", cmpint, nil)
	defer tm.Destroy()

	tm.Set(1, 1)
	iter := tm.Iterate(Inorder)
	iter.Close()
	iter.Close() // idempotent

	defer func() {
		if recover() == nil {
			t.Errorf("expected panic")
		}
	}()
	iter.Next()
}

func TestIterateBadOrder(t *testing.T) {
	tm := New[int, int]("iterbad", cmpint, nil)
	defer tm.Destroy()

	defer func() {
		if recover() == nil {
			t.Errorf("expected panic")
		}
	}()
	tm.Iterate(Order(42))
}

func TestIterpool(t *testing.T) {
	tm := New[int, int]("iterpool", cmpint, nil)
	defer tm.Destroy()

	tm.Set(1, 1)
	iter := tm.Iterate(Inorder)
	iter.Close()
	if again := tm.Iterate(Inorder); again != iter {
		t.Errorf("expected a pooled iterator")
	} else {
		again.Close()
	}
}

func BenchmarkInorder(b *testing.B) {
	tm := New[int, int]("benchinorder", cmpint, nil)
	defer tm.Destroy()
	for i := 0; i < 10000; i++ {
		tm.Set(i, i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		iter := tm.Iterate(Inorder)
		for _, _, ok := iter.Next(); ok; _, _, ok = iter.Next() {
		}
		iter.Close()
	}
}

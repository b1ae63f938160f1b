package treemap

import "math/rand"
import "sync"
import "testing"
import "time"

func TestConcurrentReaders(t *testing.T) {
	tm := New[int, int]("concur", cmpint, nil)
	defer tm.Destroy()

	n := 1000
	for _, key := range rand.Perm(n) {
		tm.Set(key, key)
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(seed int64) {
			defer wg.Done()
			r := rand.New(rand.NewSource(seed))
			for j := 0; j < 10000; j++ {
				key := r.Intn(n)
				if value, ok := tm.Get(key); ok == false || value != key {
					t.Errorf("unexpected %v %v for %v", value, ok, key)
					return
				}
			}
		}(int64(i))
	}
	wg.Wait()
}

func TestReadersAndWriter(t *testing.T) {
	tm := New[int, int]("rw", cmpint, nil)
	defer tm.Destroy()

	n := 1000
	for key := 0; key < n; key++ {
		tm.Set(key, key)
	}

	var wg sync.WaitGroup
	done := make(chan struct{})

	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func(seed int64) {
			defer wg.Done()
			r := rand.New(rand.NewSource(seed))
			for {
				select {
				case <-done:
					return
				default:
				}
				key := r.Intn(n)
				// values track keys, any present entry is consistent.
				if value, ok := tm.Get(key); ok && value != key {
					t.Errorf("unexpected %v for %v", value, key)
					return
				}
			}
		}(int64(i))
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		r := rand.New(rand.NewSource(42))
		for i := 0; i < 20000; i++ {
			key := r.Intn(n)
			if i%2 == 0 {
				tm.Set(key, key)
			} else {
				tm.Delete(key)
			}
		}
		close(done)
	}()

	wg.Wait()
	tm.Validate()
}

func TestConcurrentIterators(t *testing.T) {
	tm := New[int, int]("iterconcur", cmpint, nil)
	defer tm.Destroy()

	n := 500
	for _, key := range rand.Perm(n) {
		tm.Set(key, key)
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				iter := tm.Iterate(Inorder)
				count, prev := 0, -1
				for key, _, ok := iter.Next(); ok; key, _, ok = iter.Next() {
					if key <= prev {
						t.Errorf("unexpected %v after %v", key, prev)
					}
					prev, count = key, count+1
				}
				iter.Close()
				if count != n {
					t.Errorf("unexpected %v", count)
				}
			}
		}()
	}
	wg.Wait()
}

func TestIteratorBlocksWriter(t *testing.T) {
	tm := New[int, int]("iterblock", cmpint, nil)
	defer tm.Destroy()

	for key := 0; key < 100; key++ {
		tm.Set(key, key)
	}

	iter := tm.Iterate(Inorder)
	written := make(chan struct{})
	go func() {
		tm.Set(1000, 1000)
		close(written)
	}()

	select {
	case <-written:
		t.Errorf("writer went through an open iterator")
	case <-time.After(10 * time.Millisecond):
	}
	iter.Close()
	select {
	case <-written:
	case <-time.After(100 * time.Millisecond):
		t.Errorf("writer still blocked")
	}
}

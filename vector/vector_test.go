package vector

import "testing"

func TestVectorEmpty(t *testing.T) {
	v := New[int](0)
	if v.Isempty() == false {
		t.Errorf("unexpected false")
	} else if v.Count() != 0 {
		t.Errorf("unexpected %v", v.Count())
	}

	func() {
		defer func() {
			if recover() == nil {
				t.Errorf("expected panic")
			}
		}()
		v.Front()
	}()
	func() {
		defer func() {
			if recover() == nil {
				t.Errorf("expected panic")
			}
		}()
		v.Popback()
	}()
}

func TestVectorStack(t *testing.T) {
	v := New[int](4)
	for i := 1; i <= 100; i++ {
		v.Pushfront(i)
		if x := v.Front(); x != i {
			t.Errorf("expected %v, got %v", i, x)
		}
	}
	if v.Count() != 100 {
		t.Errorf("unexpected %v", v.Count())
	} else if v.Back() != 1 {
		t.Errorf("unexpected %v", v.Back())
	}
	for i := 100; i >= 1; i-- {
		if x := v.Popfront(); x != i {
			t.Errorf("expected %v, got %v", i, x)
		}
	}
	if v.Isempty() == false {
		t.Errorf("unexpected false")
	}
}

func TestVectorQueue(t *testing.T) {
	v := New[string](0)
	items := []string{"one", "two", "three", "four", "five"}
	for _, item := range items {
		v.Pushback(item)
	}
	for _, item := range items {
		if x := v.Popfront(); x != item {
			t.Errorf("expected %v, got %v", item, x)
		}
	}
	if v.Isempty() == false {
		t.Errorf("unexpected false")
	}
}

func TestVectorWraparound(t *testing.T) {
	// churn both ends so that head wraps across the slab boundary.
	v := New[int](8)
	for i := 0; i < 1000; i++ {
		v.Pushback(i)
		v.Pushfront(-i)
		if x := v.Popback(); x != i {
			t.Errorf("expected %v, got %v", i, x)
		}
		if x := v.Front(); x != -i {
			t.Errorf("expected %v, got %v", -i, x)
		}
	}
	if v.Count() != 1000 {
		t.Errorf("unexpected %v", v.Count())
	}
	for i := 999; i >= 0; i-- {
		if x := v.Popfront(); x != -i {
			t.Errorf("expected %v, got %v", -i, x)
		}
	}
}

func TestVectorAt(t *testing.T) {
	v := New[int](0)
	for i := 0; i < 64; i++ {
		v.Pushback(i)
	}
	v.Popfront()
	v.Pushback(64)
	for i := int64(0); i < v.Count(); i++ {
		if x := v.At(i); int64(x) != i+1 {
			t.Errorf("expected %v, got %v", i+1, x)
		}
	}
	func() {
		defer func() {
			if recover() == nil {
				t.Errorf("expected panic")
			}
		}()
		v.At(v.Count())
	}()
}

func TestVectorReset(t *testing.T) {
	v := New[int](0)
	for i := 0; i < 100; i++ {
		v.Pushback(i)
	}
	v.Reset()
	if v.Isempty() == false {
		t.Errorf("unexpected false")
	} else if v.Count() != 0 {
		t.Errorf("unexpected %v", v.Count())
	}
	v.Pushback(10)
	if x := v.Front(); x != 10 {
		t.Errorf("expected 10, got %v", x)
	}
}

func BenchmarkVectorPushback(b *testing.B) {
	v := New[int](0)
	for i := 0; i <= b.N; i++ {
		v.Pushback(i)
	}
}

func BenchmarkVectorPushfront(b *testing.B) {
	v := New[int](0)
	for i := 0; i <= b.N; i++ {
		v.Pushfront(i)
	}
}

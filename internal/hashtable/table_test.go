package hashtable

import (
	"math/rand"
	"testing"
)

func TestCrossCheckAgainstBuiltinMap(t *testing.T) {
	std := make(map[int]int)
	tbl := New[int, int](1, DefaultHasher[int]())

	const nops = 2000
	for i := 0; i < nops; i++ {
		key := rand.Intn(64)
		val := rand.Int()

		switch rand.Intn(3) {
		case 0:
			std[key] = val
			tbl.Put(key, val)
		case 1:
			delete(std, key)
			tbl.Remove(key)
		case 2:
			sv, sok := std[key]
			tv, tok := tbl.Get(key)
			if sok != tok || (sok && sv != tv) {
				t.Fatalf("mismatch on key %d: std=(%d,%v) table=(%d,%v)", key, sv, sok, tv, tok)
			}
		}
	}

	if tbl.Len() != len(std) {
		t.Fatalf("length mismatch: table=%d std=%d", tbl.Len(), len(std))
	}
	for k, v := range std {
		tv, ok := tbl.Get(k)
		if !ok || tv != v {
			t.Fatalf("final mismatch on key %d", k)
		}
	}
}

func TestPutReplacesAndReturnsOld(t *testing.T) {
	tbl := New[string, int](4, DefaultHasher[string]())
	if _, replaced := tbl.Put("a", 1); replaced {
		t.Fatal("first put should not report a replacement")
	}
	prev, replaced := tbl.Put("a", 2)
	if !replaced || prev != 1 {
		t.Fatalf("expected replaced=true prev=1, got %v %d", replaced, prev)
	}
	v, ok := tbl.Get("a")
	if !ok || v != 2 {
		t.Fatalf("expected 2, got %d %v", v, ok)
	}
}

func TestRemoveOfAbsentIsNoop(t *testing.T) {
	tbl := New[int, int](4, DefaultHasher[int]())
	tbl.Put(1, 1)
	if _, ok := tbl.Remove(2); ok {
		t.Fatal("removing an absent key should report false")
	}
	if tbl.Len() != 1 {
		t.Fatalf("expected length 1, got %d", tbl.Len())
	}
}

func TestReserveGrowsCapacity(t *testing.T) {
	tbl := New[int, int](1, DefaultHasher[int]())
	tbl.Reserve(100)
	if tbl.Capacity() < 100 {
		t.Fatalf("expected capacity >= 100, got %d", tbl.Capacity())
	}
}

func TestShrinkToRespectsLength(t *testing.T) {
	tbl := New[int, int](1, DefaultHasher[int]())
	for i := 0; i < 20; i++ {
		tbl.Put(i, i)
	}
	tbl.ShrinkTo(0)
	if tbl.Capacity() < tbl.Len() {
		t.Fatalf("shrink dropped capacity below length: cap=%d len=%d", tbl.Capacity(), tbl.Len())
	}
	for i := 0; i < 20; i++ {
		if _, ok := tbl.Get(i); !ok {
			t.Fatalf("lost key %d across shrink", i)
		}
	}
}

func TestEachVisitsEveryEntry(t *testing.T) {
	tbl := New[int, int](1, DefaultHasher[int]())
	want := map[int]int{}
	for i := 0; i < 50; i++ {
		tbl.Put(i, i*i)
		want[i] = i * i
	}
	got := map[int]int{}
	tbl.Each(func(k, v int) {
		got[k] = v
	})
	if len(got) != len(want) {
		t.Fatalf("expected %d entries, got %d", len(want), len(got))
	}
	for k, v := range want {
		if got[k] != v {
			t.Fatalf("mismatch for key %d", k)
		}
	}
}

func TestClear(t *testing.T) {
	tbl := New[int, int](1, DefaultHasher[int]())
	tbl.Put(1, 1)
	tbl.Put(2, 2)
	tbl.Clear()
	if tbl.Len() != 0 {
		t.Fatalf("expected length 0 after clear, got %d", tbl.Len())
	}
	if _, ok := tbl.Get(1); ok {
		t.Fatal("expected key to be gone after clear")
	}
}

func TestSafeCapacityOverflow(t *testing.T) {
	if _, ok := SafeCapacity(1 << 63); ok {
		t.Fatal("expected overflow to be detected")
	}
	if cap, ok := SafeCapacity(10); !ok || cap < 10 {
		t.Fatalf("expected a safe capacity >= 10, got %d ok=%v", cap, ok)
	}
}

package iter_test

import (
	"fmt"
	"testing"

	"github.com/zyedidia/lru-mem/internal/iter"
)

func Example() {
	it := iter.Slice([]int{1, 2, 3})
	it.For(func(i int) {
		fmt.Println(i)
	})
	// Output:
	// 1
	// 2
	// 3
}

func TestForBreak(t *testing.T) {
	it := iter.Slice([]int{1, 2, 3, 4})
	var seen []int
	it.ForBreak(func(i int) bool {
		seen = append(seen, i)
		return i < 2
	})
	if len(seen) != 2 {
		t.Fatalf("expected 2 items before break, got %d", len(seen))
	}
}

func TestSliceCollect(t *testing.T) {
	it := iter.Slice([]string{"a", "b"})
	got := it.Slice()
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Fatalf("unexpected result %v", got)
	}
}

func TestFused(t *testing.T) {
	it := iter.Slice([]int{1})
	it()
	if _, ok := it(); ok {
		t.Fatal("expected exhausted iterator to stay exhausted")
	}
	if _, ok := it(); ok {
		t.Fatal("expected exhausted iterator to stay exhausted on repeated calls")
	}
}

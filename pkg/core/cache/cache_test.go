package cache

import (
	"errors"
	"testing"
	"time"
)

func TestCache_SetGet(t *testing.T) {
	c := New[int](DefaultConfig())

	c.Set("a", 1)
	if v, ok := c.Get("a"); !ok || v != 1 {
		t.Errorf("Expected (1, true), got (%d, %v)", v, ok)
	}
	if _, ok := c.Get("missing"); ok {
		t.Error("Expected miss for unknown key")
	}

	hits, misses, rate := c.Stats()
	if hits != 1 || misses != 1 {
		t.Errorf("Expected 1 hit and 1 miss, got %d/%d", hits, misses)
	}
	if rate != 50 {
		t.Errorf("Expected hit rate 50, got %v", rate)
	}
}

func TestCache_EvictsOldestInsert(t *testing.T) {
	c := New[string](Config{MaxItems: 2})

	c.Set("first", "1")
	c.Set("second", "2")
	c.Set("third", "3")

	if c.Size() != 2 {
		t.Fatalf("Expected size 2, got %d", c.Size())
	}
	if _, ok := c.Get("first"); ok {
		t.Error("Expected first entry to be evicted")
	}
	if _, ok := c.Get("third"); !ok {
		t.Error("Expected newest entry to be present")
	}

	// Overwriting an existing key must not evict
	c.Set("third", "3b")
	if c.Size() != 2 {
		t.Errorf("Expected size 2 after overwrite, got %d", c.Size())
	}
	if _, ok := c.Get("second"); !ok {
		t.Error("Overwrite should not evict other entries")
	}
}

func TestCache_Expiration(t *testing.T) {
	c := New[int](DefaultConfig())

	c.SetWithTTL("short", 1, time.Millisecond)
	c.Set("forever", 2)
	time.Sleep(5 * time.Millisecond)

	if _, ok := c.Get("short"); ok {
		t.Error("Expected expired entry to be gone")
	}
	if _, ok := c.Get("forever"); !ok {
		t.Error("Entry without TTL should not expire")
	}
}

func TestCache_GetOrSet(t *testing.T) {
	c := New[int](DefaultConfig())
	calls := 0
	fn := func() (int, error) {
		calls++
		return 42, nil
	}

	for i := 0; i < 3; i++ {
		v, err := c.GetOrSet("answer", fn)
		if err != nil || v != 42 {
			t.Fatalf("Expected (42, nil), got (%d, %v)", v, err)
		}
	}
	if calls != 1 {
		t.Errorf("Expected fn to run once, ran %d times", calls)
	}

	failure := errors.New("boom")
	if _, err := c.GetOrSet("bad", func() (int, error) { return 0, failure }); !errors.Is(err, failure) {
		t.Errorf("Expected boom, got %v", err)
	}
	if _, ok := c.Get("bad"); ok {
		t.Error("Errors must not be cached")
	}
}

func TestCache_DeleteClear(t *testing.T) {
	c := New[int](DefaultConfig())
	c.Set("a", 1)
	c.Set("b", 2)

	c.Delete("a")
	if c.Size() != 1 {
		t.Errorf("Expected size 1, got %d", c.Size())
	}
	c.Clear()
	if c.Size() != 0 {
		t.Errorf("Expected size 0, got %d", c.Size())
	}
}

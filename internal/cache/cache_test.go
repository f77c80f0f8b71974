package cache

import (
	"testing"
	"time"
)

func TestEmbeddingKey(t *testing.T) {
	k1 := EmbeddingKey("nomic-embed-text", "some text")
	k2 := EmbeddingKey("nomic-embed-text", "some text")
	if k1 != k2 {
		t.Error("same inputs must produce the same key")
	}

	if EmbeddingKey("model-a", "text") == EmbeddingKey("model-b", "text") {
		t.Error("different models must produce different keys")
	}
	if EmbeddingKey("model", "text-a") == EmbeddingKey("model", "text-b") {
		t.Error("different texts must produce different keys")
	}

	// The separator prevents ambiguous (model, text) concatenations.
	if EmbeddingKey("ab", "c") == EmbeddingKey("a", "bc") {
		t.Error("key must not be ambiguous across the model/text boundary")
	}
}

func TestMemoryCache(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)

	if _, found := c.Get("missing"); found {
		t.Error("Get on empty cache returned a value")
	}

	if err := c.Set("k", []byte("v"), 0); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if val, found := c.Get("k"); !found || string(val) != "v" {
		t.Errorf("Get = %q, %v", val, found)
	}

	if err := c.Delete("k"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, found := c.Get("k"); found {
		t.Error("value survived Delete")
	}
}

func TestMemoryCacheExpiry(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)

	if err := c.Set("k", []byte("v"), 10*time.Millisecond); err != nil {
		t.Fatalf("Set: %v", err)
	}
	time.Sleep(30 * time.Millisecond)

	if _, found := c.Get("k"); found {
		t.Error("value survived its TTL")
	}
}

func TestDiskCache(t *testing.T) {
	c := NewDiskCache(t.TempDir(), time.Minute)

	if err := c.Set(EmbeddingKey("m", "t"), []byte(`[1,2,3]`), 0); err != nil {
		t.Fatalf("Set: %v", err)
	}

	val, found := c.Get(EmbeddingKey("m", "t"))
	if !found || string(val) != `[1,2,3]` {
		t.Errorf("Get = %q, %v", val, found)
	}

	if err := c.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if _, found := c.Get(EmbeddingKey("m", "t")); found {
		t.Error("value survived Clear")
	}
}

func TestDiskCacheExpiry(t *testing.T) {
	c := NewDiskCache(t.TempDir(), time.Minute)

	if err := c.Set("k", []byte("v"), 10*time.Millisecond); err != nil {
		t.Fatalf("Set: %v", err)
	}
	time.Sleep(30 * time.Millisecond)

	if _, found := c.Get("k"); found {
		t.Error("value survived its TTL")
	}
}

func TestLayeredCachePromotes(t *testing.T) {
	dir := t.TempDir()
	c := NewLayeredCache(time.Minute, dir, time.Minute)

	if err := c.Set("k", []byte("v"), 0); err != nil {
		t.Fatalf("Set: %v", err)
	}

	// A second layered cache over the same directory has a cold
	// memory layer; the value must come back from disk.
	c2 := NewLayeredCache(time.Minute, dir, time.Minute)
	val, found := c2.Get("k")
	if !found || string(val) != "v" {
		t.Fatalf("Get through cold memory layer = %q, %v", val, found)
	}

	// Now present in c2's memory layer as well.
	if _, found := c2.memory.Get("k"); !found {
		t.Error("disk hit was not promoted into memory")
	}
}

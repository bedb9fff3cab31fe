package imagecache

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"
)

func TestFileCacheRoundTrip(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}

	data := []byte{0x89, 'P', 'N', 'G', 0x01, 0x02}
	if err := c.Set(ctx, "img:abc", data, 0); err != nil {
		t.Fatalf("Set: %v", err)
	}

	got, ok, err := c.Get(ctx, "img:abc")
	if err != nil || !ok {
		t.Fatalf("Get = (%v, %v, %v), want hit", got, ok, err)
	}
	if string(got) != string(data) {
		t.Errorf("Get returned %v, want %v", got, data)
	}
}

func TestFileCacheMiss(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}

	_, ok, err := c.Get(ctx, "img:nope")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if ok {
		t.Error("Get on empty cache should miss")
	}
}

func TestFileCacheExpiry(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}

	if err := c.Set(ctx, "img:ttl", []byte("x"), time.Nanosecond); err != nil {
		t.Fatalf("Set: %v", err)
	}
	time.Sleep(time.Millisecond)

	_, ok, err := c.Get(ctx, "img:ttl")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if ok {
		t.Error("expired entry should be a miss")
	}
}

func TestFileCacheDelete(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}

	if err := c.Set(ctx, "img:del", []byte("x"), 0); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := c.Delete(ctx, "img:del"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, ok, _ := c.Get(ctx, "img:del"); ok {
		t.Error("deleted entry should be a miss")
	}

	// Deleting a missing key is not an error.
	if err := c.Delete(ctx, "img:never"); err != nil {
		t.Errorf("Delete(missing) = %v, want nil", err)
	}
}

func TestMemoryCache(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache()

	if err := c.Set(ctx, "k", []byte("v"), 0); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, ok, err := c.Get(ctx, "k")
	if err != nil || !ok || string(got) != "v" {
		t.Errorf("Get = (%q, %v, %v), want hit with %q", got, ok, err, "v")
	}
	if c.Len() != 1 {
		t.Errorf("Len() = %d, want 1", c.Len())
	}

	if err := c.Set(ctx, "ttl", []byte("v"), time.Nanosecond); err != nil {
		t.Fatalf("Set: %v", err)
	}
	time.Sleep(time.Millisecond)
	if _, ok, _ := c.Get(ctx, "ttl"); ok {
		t.Error("expired memory entry should be a miss")
	}
}

func TestMemoryCacheConcurrent(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache()

	// Hammer the same keys from many goroutines the way a prefetch pool
	// does. Run with -race to catch unsynchronized map access.
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				key := fmt.Sprintf("img:%d", i%4)
				if err := c.Set(ctx, key, []byte{byte(g), byte(i)}, time.Minute); err != nil {
					t.Errorf("Set: %v", err)
				}
				if _, _, err := c.Get(ctx, key); err != nil {
					t.Errorf("Get: %v", err)
				}
				if i%10 == 0 {
					if err := c.Delete(ctx, key); err != nil {
						t.Errorf("Delete: %v", err)
					}
				}
				c.Len()
			}
		}(g)
	}
	wg.Wait()
}

func TestNullCacheAlwaysMisses(t *testing.T) {
	ctx := context.Background()
	c := NewNullCache()

	if err := c.Set(ctx, "k", []byte("v"), 0); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if _, ok, _ := c.Get(ctx, "k"); ok {
		t.Error("null cache must never hit")
	}
}

func TestKeyer(t *testing.T) {
	k := NewDefaultKeyer()

	orig := k.OriginalKey("https://example.com/a.png")
	thumb := k.ThumbKey("https://example.com/a.png", 320, 240)

	if orig == thumb {
		t.Error("original and thumb keys must differ")
	}
	if k.OriginalKey("https://example.com/a.png") != orig {
		t.Error("keys must be deterministic")
	}
	if k.OriginalKey("https://example.com/b.png") == orig {
		t.Error("different URLs must produce different keys")
	}
	if k.ThumbKey("https://example.com/a.png", 100, 100) == thumb {
		t.Error("different sizes must produce different thumb keys")
	}
}

func TestScopedKeyer(t *testing.T) {
	a := NewScopedKeyer(nil, "gallery-a:")
	b := NewScopedKeyer(nil, "gallery-b:")

	if a.OriginalKey("u") == b.OriginalKey("u") {
		t.Error("scoped keyers must isolate namespaces")
	}
	if a.OriginalKey("u")[:10] != "gallery-a:" {
		t.Errorf("scoped key %q should carry its prefix", a.OriginalKey("u"))
	}
}

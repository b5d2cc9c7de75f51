package cache

import (
	"bytes"
	"testing"
	"time"

	"github.com/jtoivan/statnews/internal/model"
)

func TestForConfigSelectsBackend(t *testing.T) {
	m, err := ForConfig(model.CacheConfig{Backend: "memory", TTL: time.Minute, CleanupInterval: time.Minute})
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := m.(*MemoryCache); !ok {
		t.Errorf("memory backend built %T", m)
	}

	l, err := ForConfig(model.CacheConfig{Backend: "layered", Dir: t.TempDir(), TTL: time.Minute, CleanupInterval: time.Minute})
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := l.(*LayeredCache); !ok {
		t.Errorf("layered backend built %T", l)
	}

	if _, err := ForConfig(model.CacheConfig{Backend: "disk"}); err == nil {
		t.Error("disk backend without a directory must fail")
	}
	if _, err := ForConfig(model.CacheConfig{Backend: "redis"}); err == nil {
		t.Error("unknown backend must fail")
	}
}

func TestArticleKeyDistinguishesSelections(t *testing.T) {
	a := ArticleKey("en", "cphi", "FI", "country")
	b := ArticleKey("fi", "cphi", "FI", "country")
	c := ArticleKey("en", "cphi", "SE", "country")
	if a == b || a == c || b == c {
		t.Error("different selections must map to different keys")
	}
	if a != ArticleKey("en", "cphi", "FI", "country") {
		t.Error("keys must be stable")
	}
}

func TestMemoryCacheRoundTrip(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)
	key := ArticleKey("en", "cphi", "FI", "country")

	if _, found := c.Get(key); found {
		t.Fatal("empty cache reported a hit")
	}
	if err := c.Set(key, []byte("<p>article</p>"), time.Minute); err != nil {
		t.Fatal(err)
	}
	got, found := c.Get(key)
	if !found || !bytes.Equal(got, []byte("<p>article</p>")) {
		t.Fatalf("got %q, found=%v", got, found)
	}

	if err := c.Delete(key); err != nil {
		t.Fatal(err)
	}
	if _, found := c.Get(key); found {
		t.Error("deleted key still present")
	}
}

func TestDiskCacheRoundTrip(t *testing.T) {
	c := NewDiskCache(t.TempDir(), time.Minute)
	key := ArticleKey("en", "cphi", "FI", "country")

	if err := c.Set(key, []byte("body"), time.Minute); err != nil {
		t.Fatal(err)
	}
	got, found := c.Get(key)
	if !found || string(got) != "body" {
		t.Fatalf("got %q, found=%v", got, found)
	}
}

func TestDiskCacheExpiry(t *testing.T) {
	c := NewDiskCache(t.TempDir(), time.Minute)
	key := ArticleKey("en", "cphi", "FI", "country")

	if err := c.Set(key, []byte("body"), -time.Second); err != nil {
		t.Fatal(err)
	}
	if _, found := c.Get(key); found {
		t.Error("expired entry served")
	}
}

func TestLayeredCachePromotesDiskHits(t *testing.T) {
	dir := t.TempDir()
	c := NewLayeredCache(
		NewMemoryCache(time.Minute, time.Minute),
		NewDiskCache(dir, time.Minute),
	)
	key := ArticleKey("en", "cphi", "FI", "country")

	// Seed only the disk layer, as a fresh process would see it.
	if err := NewDiskCache(dir, time.Minute).Set(key, []byte("body"), time.Minute); err != nil {
		t.Fatal(err)
	}

	got, found := c.Get(key)
	if !found || string(got) != "body" {
		t.Fatalf("got %q, found=%v", got, found)
	}
	if _, found := c.memory.Get(key); !found {
		t.Error("disk hit was not promoted to memory")
	}
}

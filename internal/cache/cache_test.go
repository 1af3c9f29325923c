// ABOUTME: Tests for the TTL cache
// ABOUTME: Verifies hit/miss, expiry, overwrite, and stop behavior

package cache

import (
	"testing"
	"time"
)

func TestCache_SetGet(t *testing.T) {
	c := New(time.Minute)
	defer c.Stop()

	if _, ok := c.Get("missing"); ok {
		t.Error("expected miss for absent key")
	}

	c.Set("settings", "value-1")
	val, ok := c.Get("settings")
	if !ok {
		t.Fatal("expected hit after set")
	}
	if val != "value-1" {
		t.Errorf("expected value-1, got %v", val)
	}

	c.Set("settings", "value-2")
	val, _ = c.Get("settings")
	if val != "value-2" {
		t.Errorf("expected overwritten value-2, got %v", val)
	}
}

func TestCache_Expiry(t *testing.T) {
	c := New(time.Minute)
	defer c.Stop()

	c.SetWithTTL("short", "gone soon", 10*time.Millisecond)
	time.Sleep(20 * time.Millisecond)

	if _, ok := c.Get("short"); ok {
		t.Error("expected expired entry to miss")
	}
}

func TestCache_Delete(t *testing.T) {
	c := New(time.Minute)
	defer c.Stop()

	c.Set("k", "v")
	c.Delete("k")
	if _, ok := c.Get("k"); ok {
		t.Error("expected miss after delete")
	}
}

func TestCache_StopIdempotent(t *testing.T) {
	c := New(time.Minute)
	c.Stop()
	c.Stop()
}

package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
)

func newTestRedis(t *testing.T) Cache {
	t.Helper()
	srv := miniredis.RunT(t)
	c, err := NewRedisCache(context.Background(), "redis://"+srv.Addr())
	if err != nil {
		t.Fatalf("NewRedisCache error: %v", err)
	}
	t.Cleanup(func() { c.Close() })
	return c
}

func TestRedisCache_GetSet(t *testing.T) {
	ctx := context.Background()
	c := newTestRedis(t)

	if err := c.Set(ctx, "pypi:flask", []byte(`{"name":"Flask"}`), time.Hour); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	got, hit, err := c.Get(ctx, "pypi:flask")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if !hit {
		t.Fatal("expected cache hit")
	}
	if string(got) != `{"name":"Flask"}` {
		t.Errorf("Get = %q", got)
	}
}

func TestRedisCache_Miss(t *testing.T) {
	c := newTestRedis(t)
	_, hit, err := c.Get(context.Background(), "missing")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if hit {
		t.Error("expected miss for unknown key")
	}
}

func TestRedisCache_Delete(t *testing.T) {
	ctx := context.Background()
	c := newTestRedis(t)

	c.Set(ctx, "key", []byte("value"), time.Hour)
	if err := c.Delete(ctx, "key"); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if _, hit, _ := c.Get(ctx, "key"); hit {
		t.Error("expected miss after delete")
	}
}

func TestNewRedisCache_BadURL(t *testing.T) {
	if _, err := NewRedisCache(context.Background(), "not-a-url"); err == nil {
		t.Error("expected error for invalid URL")
	}
}

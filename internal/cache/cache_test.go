// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package cache

import (
	"context"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"adforge/internal/models"
)

// testValkeyClient returns a Redis client for tests.
// Skips if Valkey is unavailable.
func testValkeyClient(t *testing.T) *redis.Client {
	t.Helper()

	host := envOr("VALKEY_HOST", "localhost")
	port := envOr("VALKEY_PORT", "6379")
	password := os.Getenv("VALKEY_PASSWORD")

	client := redis.NewClient(&redis.Options{
		Addr:     host + ":" + port,
		Password: password,
		DB:       15, // Use DB 15 for tests.
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		t.Skipf("skipping integration test: Valkey not reachable: %v", err)
	}

	t.Cleanup(func() {
		keys, _ := client.Keys(ctx, "render:*").Result()
		if len(keys) > 0 {
			client.Del(ctx, keys...)
		}
		client.Close()
	})

	return client
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func TestConnectValkey(t *testing.T) {
	host := envOr("VALKEY_HOST", "localhost")
	port := envOr("VALKEY_PORT", "6379")

	client, err := ConnectValkey(host, port, "")
	if err != nil {
		t.Skipf("skipping: Valkey not available: %v", err)
	}
	defer client.Close()

	ctx := context.Background()
	pong, err := client.Ping(ctx).Result()
	if err != nil {
		t.Fatalf("Ping: %v", err)
	}
	if pong != "PONG" {
		t.Errorf("expected PONG, got %q", pong)
	}
}

// ---------- Key (pure, no Valkey needed) ----------

// keyKit returns a brand kit with a fixed id and update time for key tests.
func keyKit() *models.BrandKit {
	return &models.BrandKit{
		ID:        uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8"),
		UpdatedAt: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestKey(t *testing.T) {
	t.Run("deterministic", func(t *testing.T) {
		a := Key("banner/summer-sale", "big launch", keyKit())
		b := Key("banner/summer-sale", "big launch", keyKit())
		if a != b {
			t.Errorf("same inputs produced different keys: %q vs %q", a, b)
		}
	})

	t.Run("prompt changes the key", func(t *testing.T) {
		a := Key("banner/summer-sale", "big launch", keyKit())
		b := Key("banner/summer-sale", "other prompt", keyKit())
		if a == b {
			t.Error("different prompts produced the same key")
		}
	})

	t.Run("kit changes the key", func(t *testing.T) {
		a := Key("banner/summer-sale", "big launch", keyKit())
		b := Key("banner/summer-sale", "big launch", nil)
		if a == b {
			t.Error("themed and unthemed requests produced the same key")
		}
	})

	t.Run("kit edit changes the key", func(t *testing.T) {
		before := keyKit()
		after := keyKit()
		after.UpdatedAt = after.UpdatedAt.Add(time.Second)

		a := Key("banner/summer-sale", "big launch", before)
		b := Key("banner/summer-sale", "big launch", after)
		if a == b {
			t.Error("updated kit produced the same key as its old version")
		}
	})

	t.Run("prompt text never lands in the key", func(t *testing.T) {
		prompt := "spaces and\nnewlines and {weird} chars"
		key := Key("banner/summer-sale", prompt, nil)
		if strings.Contains(key, "spaces") || strings.Contains(key, "\n") {
			t.Errorf("raw prompt leaked into key: %q", key)
		}
		if !strings.HasPrefix(key, "banner/summer-sale:") {
			t.Errorf("key missing template prefix: %q", key)
		}
	})
}

// ---------- RenderCache (integration) ----------

func TestRenderCacheSetAndGet(t *testing.T) {
	client := testValkeyClient(t)
	rc := NewRenderCache(client, 1*time.Minute)

	ctx := context.Background()
	key := Key("banner/test-tmpl", "test prompt", nil)

	// Miss.
	if got := rc.Get(ctx, key); got != nil {
		t.Errorf("expected miss, got %v", got)
	}

	gen := &models.GeneratedContent{
		HTMLContent:  "<h1>Big Launch</h1>",
		Placeholders: map[string]string{"HEADLINE": "Big Launch"},
	}
	rc.Set(ctx, key, gen)

	// Hit.
	got := rc.Get(ctx, key)
	if got == nil {
		t.Fatal("expected hit, got nil")
	}
	if got.HTMLContent != gen.HTMLContent {
		t.Errorf("HTMLContent: got %q, want %q", got.HTMLContent, gen.HTMLContent)
	}
	if got.Placeholders["HEADLINE"] != "Big Launch" {
		t.Errorf("Placeholders: got %v", got.Placeholders)
	}
}

func TestRenderCacheCorruptEntry(t *testing.T) {
	client := testValkeyClient(t)
	rc := NewRenderCache(client, 1*time.Minute)

	ctx := context.Background()
	key := Key("banner/corrupt", "prompt", nil)

	// Plant garbage under the cache's key; Get must fail soft.
	if err := client.Set(ctx, "render:"+key, "{not json", time.Minute).Err(); err != nil {
		t.Fatalf("plant corrupt entry: %v", err)
	}
	if got := rc.Get(ctx, key); got != nil {
		t.Errorf("corrupt entry returned %v, want nil", got)
	}
}

func TestRenderCacheInvalidateTemplate(t *testing.T) {
	client := testValkeyClient(t)
	rc := NewRenderCache(client, 1*time.Minute)

	ctx := context.Background()
	gen := &models.GeneratedContent{HTMLContent: "<p>x</p>"}

	keyA1 := Key("banner/tmpl-a", "prompt one", nil)
	keyA2 := Key("banner/tmpl-a", "prompt two", keyKit())
	keyB := Key("banner/tmpl-b", "prompt one", nil)
	rc.Set(ctx, keyA1, gen)
	rc.Set(ctx, keyA2, gen)
	rc.Set(ctx, keyB, gen)

	rc.InvalidateTemplate(ctx, "banner/tmpl-a")

	if rc.Get(ctx, keyA1) != nil || rc.Get(ctx, keyA2) != nil {
		t.Error("tmpl-a entries survived invalidation")
	}
	if rc.Get(ctx, keyB) == nil {
		t.Error("tmpl-b entry was dropped by tmpl-a invalidation")
	}
}

func TestRenderCacheInvalidateAll(t *testing.T) {
	client := testValkeyClient(t)
	rc := NewRenderCache(client, 1*time.Minute)

	ctx := context.Background()
	gen := &models.GeneratedContent{HTMLContent: "<p>x</p>"}

	keyA := Key("banner/tmpl-a", "prompt", nil)
	keyB := Key("social/tmpl-b", "prompt", nil)
	rc.Set(ctx, keyA, gen)
	rc.Set(ctx, keyB, gen)

	rc.InvalidateAll(ctx)

	if rc.Get(ctx, keyA) != nil || rc.Get(ctx, keyB) != nil {
		t.Error("entries survived InvalidateAll")
	}
}

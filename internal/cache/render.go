// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// render.go provides a Valkey-backed cache for generated template output.
// Heuristic synthesis is deterministic, so identical (template, prompt,
// brand kit) requests produce identical markup — caching the result skips
// the whole synthesis and theming pass on repeat requests.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"adforge/internal/models"
)

const (
	// renderKeyPrefix is the Valkey key prefix for cached generations.
	renderKeyPrefix = "render:"

	// DefaultRenderTTL is how long a generated result stays cached.
	DefaultRenderTTL = 5 * time.Minute
)

// RenderCache stores generated content in Valkey. All operations fail
// soft: a cache hiccup degrades to a regeneration, never an error.
type RenderCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRenderCache creates a render cache backed by the given Valkey client.
func NewRenderCache(client *redis.Client, ttl time.Duration) *RenderCache {
	if ttl == 0 {
		ttl = DefaultRenderTTL
	}
	return &RenderCache{client: client, ttl: ttl}
}

// Key derives the cache key for a generation request. The prompt is
// digested so arbitrary user text never lands in a Valkey key. The kit
// component carries the kit's update time, so editing a kit's colors or
// font starts a fresh key instead of serving the previously themed
// output for the rest of the TTL.
func Key(templateID, prompt string, kit *models.BrandKit) string {
	sum := sha256.Sum256([]byte(prompt))
	kitPart := ""
	if kit != nil {
		kitPart = kit.ID.String() + "@" + strconv.FormatInt(kit.UpdatedAt.UnixNano(), 10)
	}
	return templateID + ":" + hex.EncodeToString(sum[:8]) + ":" + kitPart
}

// Get retrieves a cached generation. Returns nil on miss.
func (rc *RenderCache) Get(ctx context.Context, key string) *models.GeneratedContent {
	val, err := rc.client.Get(ctx, renderKeyPrefix+key).Bytes()
	if err == redis.Nil {
		return nil
	}
	if err != nil {
		slog.Warn("render cache get error", "key", key, "error", err)
		return nil
	}

	var gen models.GeneratedContent
	if err := json.Unmarshal(val, &gen); err != nil {
		slog.Warn("render cache entry corrupt", "key", key, "error", err)
		return nil
	}
	slog.Debug("render cache hit", "key", key)
	return &gen
}

// Set stores a generated result with the configured TTL.
func (rc *RenderCache) Set(ctx context.Context, key string, gen *models.GeneratedContent) {
	payload, err := json.Marshal(gen)
	if err != nil {
		slog.Warn("render cache marshal error", "key", key, "error", err)
		return
	}
	if err := rc.client.Set(ctx, renderKeyPrefix+key, payload, rc.ttl).Err(); err != nil {
		slog.Warn("render cache set error", "key", key, "error", err)
	}
}

// InvalidateTemplate removes all cached generations for one template by
// scanning for its key prefix. Called after a template is re-saved.
func (rc *RenderCache) InvalidateTemplate(ctx context.Context, templateID string) {
	rc.invalidatePattern(ctx, renderKeyPrefix+templateID+":*")
}

// InvalidateAll removes every cached generation.
func (rc *RenderCache) InvalidateAll(ctx context.Context) {
	rc.invalidatePattern(ctx, renderKeyPrefix+"*")
}

func (rc *RenderCache) invalidatePattern(ctx context.Context, pattern string) {
	var cursor uint64
	var deleted int
	for {
		keys, nextCursor, err := rc.client.Scan(ctx, cursor, pattern, 100).Result()
		if err != nil {
			slog.Warn("render cache scan error", "error", err)
			return
		}
		if len(keys) > 0 {
			if err := rc.client.Del(ctx, keys...).Err(); err != nil {
				slog.Warn("render cache bulk delete error", "error", err)
			}
			deleted += len(keys)
		}
		cursor = nextCursor
		if cursor == 0 {
			break
		}
	}
	if deleted > 0 {
		slog.Info("render cache cleared", "pattern", pattern, "deleted", deleted)
	}
}

package helper

import (
	"context"
	"fmt"
	"time"

	"resto_manager/database"
)

const menuCacheTTL = 60 * time.Second

func menuCacheKey(slug string) string {
	return fmt.Sprintf("menu:%s", slug)
}

// GetCachedMenu returns the cached public-menu JSON for a slug, or false on
// miss or any redis error (fail open: the handler falls back to the DB).
func GetCachedMenu(ctx context.Context, slug string) ([]byte, bool) {
	if database.Redis == nil {
		return nil, false
	}
	payload, err := database.Redis.Get(ctx, menuCacheKey(slug)).Bytes()
	if err != nil {
		return nil, false
	}
	return payload, true
}

func SetCachedMenu(ctx context.Context, slug string, payload []byte) {
	if database.Redis == nil {
		return
	}
	database.Redis.Set(ctx, menuCacheKey(slug), payload, menuCacheTTL)
}

// InvalidateMenuCache drops the cached menu after a menu mutation so the
// public page never serves a stale dish list longer than one write.
func InvalidateMenuCache(ctx context.Context, slug string) {
	if database.Redis == nil {
		return
	}
	database.Redis.Del(ctx, menuCacheKey(slug))
}

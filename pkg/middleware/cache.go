package middleware

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/yangliu6605/react-ems/pkg/logger"
)

// CacheConfig holds response cache configuration
type CacheConfig struct {
	DefaultTTL      time.Duration
	CacheableStatus []int
}

// DefaultCacheConfig returns default cache configuration
func DefaultCacheConfig() CacheConfig {
	return CacheConfig{
		DefaultTTL:      30 * time.Second,
		CacheableStatus: []int{200, 203, 204},
	}
}

// cacheRecorder captures the response so it can be stored in Redis
type cacheRecorder struct {
	http.ResponseWriter
	statusCode int
	body       bytes.Buffer
}

func (r *cacheRecorder) WriteHeader(code int) {
	r.statusCode = code
	r.ResponseWriter.WriteHeader(code)
}

func (r *cacheRecorder) Write(b []byte) (int, error) {
	r.body.Write(b)
	return r.ResponseWriter.Write(b)
}

// Cache wraps a handler with a Redis response cache for GET requests.
// With a nil client the middleware is a pass-through.
func Cache(redisClient *redis.Client, cfg CacheConfig, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if redisClient == nil || r.Method != http.MethodGet {
			next.ServeHTTP(w, r)
			return
		}

		cacheKey := generateCacheKey(r)
		ctx := r.Context()

		cached, err := redisClient.Get(ctx, cacheKey).Bytes()
		if err == nil && len(cached) > 0 {
			logger.Logger.Debug().
				Str("path", r.URL.Path).
				Str("cache_key", cacheKey).
				Msg("Cache hit")

			w.Header().Set("X-Cache", "HIT")
			w.Header().Set("Content-Type", "application/json")
			w.Write(cached)
			return
		}

		rec := &cacheRecorder{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rec, r)

		if !isStatusCacheable(rec.statusCode, cfg.CacheableStatus) {
			return
		}

		if err := redisClient.Set(ctx, cacheKey, rec.body.Bytes(), cfg.DefaultTTL).Err(); err != nil {
			logger.Logger.Warn().
				Err(err).
				Str("cache_key", cacheKey).
				Msg("Failed to cache response")
			return
		}

		logger.Logger.Debug().
			Str("path", r.URL.Path).
			Str("cache_key", cacheKey).
			Dur("ttl", cfg.DefaultTTL).
			Int("size", rec.body.Len()).
			Msg("Response cached")
	})
}

func generateCacheKey(r *http.Request) string {
	raw := fmt.Sprintf("%s:%s?%s", r.Method, r.URL.Path, r.URL.RawQuery)
	sum := sha256.Sum256([]byte(raw))
	return "httpcache:" + hex.EncodeToString(sum[:])
}

func isStatusCacheable(status int, cacheable []int) bool {
	for _, s := range cacheable {
		if s == status {
			return true
		}
	}
	return false
}

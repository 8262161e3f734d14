package config

import (
    "os"
    "strings"
    "time"
)

// CacheConfig defines settings for the response cache middleware that sits in
// front of the blog listing.  When Enabled is false or no Redis client is
// configured, caching will be disabled.  Methods lists the HTTP methods to
// cache (only GET makes sense for this API).  TTL defines the lifetime of
// cache entries; a short TTL keeps freshly added posts from being hidden for
// long.  Prefix namespaces the keys so other applications can share the
// Redis instance.
type CacheConfig struct {
    Enabled      bool
    Methods      map[string]bool
    TTL          time.Duration
    Prefix       string
    MaxBodyBytes int
}

// LoadCacheConfig reads environment variables to build a CacheConfig.
// Defaults are used when variables are not set.
func LoadCacheConfig() CacheConfig {
    return CacheConfig{
        Enabled:      getenv("CACHE_ENABLED", "true") == "true",
        Methods:      parseMethods(getenv("CACHE_METHODS", "GET")),
        TTL:          parseDur(getenv("CACHE_TTL", "60s")),
        Prefix:       getenv("CACHE_PREFIX", "blogcache"),
        MaxBodyBytes: envInt("CACHE_MAX_BODY_BYTES", 1048576),
    }
}

func parseMethods(s string) map[string]bool {
    m := map[string]bool{}
    for _, p := range strings.Split(s, ",") {
        p = strings.TrimSpace(strings.ToUpper(p))
        if p != "" {
            m[p] = true
        }
    }
    return m
}

func getenv(key, def string) string {
    if v := os.Getenv(key); v != "" {
        return v
    }
    return def
}

func parseDur(s string) time.Duration {
    d, err := time.ParseDuration(s)
    if err != nil {
        return time.Second
    }
    return d
}

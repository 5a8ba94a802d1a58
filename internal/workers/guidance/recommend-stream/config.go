// internal/workers/guidance/recommend-stream/config.go
package recommendstream

import (
	"fmt"
	"time"
)

type Config struct {
	Timeout     time.Duration
	CacheTTL    time.Duration
	CachePrefix string
}

func DefaultConfig() *Config {
	return &Config{
		Timeout:     30 * time.Second,
		CacheTTL:    time.Hour,
		CachePrefix: "recommendation:session:",
	}
}

// Validate allows a zero CacheTTL, which stores entries without expiry.
func (c *Config) Validate() error {
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive")
	}
	if c.CacheTTL < 0 {
		return fmt.Errorf("cache_ttl must not be negative")
	}
	if c.CachePrefix == "" {
		return fmt.Errorf("cache_prefix is required")
	}
	return nil
}

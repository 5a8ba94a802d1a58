// internal/workers/guidance/archive-recommendation/config.go
package archiverecommendation

import (
	"fmt"
	"time"
)

type Config struct {
	Timeout time.Duration
	Index   string
}

func DefaultConfig() *Config {
	return &Config{
		Timeout: 10 * time.Second,
		Index:   "stream-recommendations",
	}
}

func (c *Config) Validate() error {
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive")
	}
	if c.Index == "" {
		return fmt.Errorf("index is required")
	}
	return nil
}

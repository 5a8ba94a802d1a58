// internal/workers/guidance/notify-recommendation/config.go
package notifyrecommendation

import (
	"fmt"
	"time"
)

type Config struct {
	EmailEnabled bool
	SMSEnabled   bool
	FromEmail    string
	Subject      string
	SenderID     string
	Timeout      time.Duration
}

func DefaultConfig() *Config {
	return &Config{
		EmailEnabled: true,
		Subject:      "Your stream recommendation is ready",
		Timeout:      30 * time.Second,
	}
}

func (c *Config) Validate() error {
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive")
	}
	if c.EmailEnabled && c.FromEmail == "" {
		return fmt.Errorf("from_email is required when email is enabled")
	}
	return nil
}

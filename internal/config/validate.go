package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.Auth.SessionTTL <= 0 {
		return fmt.Errorf("auth.session_ttl must be > 0 (got %v)", c.Auth.SessionTTL)
	}

	if c.Auth.PasswordHashCost < 4 || c.Auth.PasswordHashCost > 31 {
		return fmt.Errorf("auth.password_hash_cost must be between 4 and 31 (got %d)", c.Auth.PasswordHashCost)
	}

	keys := ParseAPIKeys(c.LLM.APIKeysRaw)
	if len(keys) == 0 {
		return fmt.Errorf("llm.api_keys must contain at least one key")
	}
	c.LLM.APIKeys = keys

	if c.LLM.RequestTimeout <= 0 {
		return fmt.Errorf("llm.request_timeout must be > 0 (got %v)", c.LLM.RequestTimeout)
	}

	if c.RateLimit.PerMinute <= 0 || c.RateLimit.AIPerMinute <= 0 {
		return fmt.Errorf("rate_limit limits must be > 0 (got %d, %d)",
			c.RateLimit.PerMinute, c.RateLimit.AIPerMinute)
	}

	return nil
}

// ParseAPIKeys splits a comma-separated key list, trimming whitespace and
// dropping empty items. Order is preserved: it is the failover order.
func ParseAPIKeys(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	keys := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		keys = append(keys, p)
	}

	return keys
}

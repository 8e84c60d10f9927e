// Package timeouts provides centralized timeout values for handler operations.
//
// Every store call and connectivity probe runs under a context.WithTimeout
// built from one of these values, so a slow or unreachable MongoDB fails the
// request instead of hanging it.
//
// Guidelines for choosing a timeout:
//   - Ping: health checks and connectivity verification
//   - Short: single-document reads and the dedup precheck
//   - Medium: the insert path and the /debug listing
package timeouts

import (
	"os"
	"sync"
	"time"
)

// Default timeout values (used if the environment does not override them).
const (
	DefaultPing   = 2 * time.Second
	DefaultShort  = 5 * time.Second
	DefaultMedium = 10 * time.Second
)

var (
	mu     sync.RWMutex
	ping   = DefaultPing
	short  = DefaultShort
	medium = DefaultMedium
)

// Ping returns the timeout for health checks and connectivity verification.
func Ping() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return ping
}

// Short returns the timeout for simple single-document operations.
func Short() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return short
}

// Medium returns the timeout for inserts and bounded list queries.
func Medium() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return medium
}

// ConfigureFromEnv reads timeout overrides from the environment:
//
//	HIREHUB_TIMEOUT_PING, HIREHUB_TIMEOUT_SHORT, HIREHUB_TIMEOUT_MEDIUM
//
// Values use time.ParseDuration syntax ("2s", "500ms"). Unset or invalid
// values keep the defaults. Returns how many overrides were applied.
func ConfigureFromEnv() int {
	mu.Lock()
	defer mu.Unlock()
	applied := 0
	for _, e := range []struct {
		key string
		dst *time.Duration
	}{
		{"HIREHUB_TIMEOUT_PING", &ping},
		{"HIREHUB_TIMEOUT_SHORT", &short},
		{"HIREHUB_TIMEOUT_MEDIUM", &medium},
	} {
		if v := os.Getenv(e.key); v != "" {
			if d, err := time.ParseDuration(v); err == nil && d > 0 {
				*e.dst = d
				applied++
			}
		}
	}
	return applied
}

// Reset restores all timeouts to their default values. Useful for testing.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	ping = DefaultPing
	short = DefaultShort
	medium = DefaultMedium
}

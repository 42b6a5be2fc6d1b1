package plugin

import (
	"log/slog"
	"time"
)

// Config carries factory settings. Values usually come from viper, so
// numbers and durations may arrive as strings, ints or floats.
type Config map[string]any

// String returns cfg[key] as a string, or def when absent or empty.
func (c Config) String(key, def string) string {
	if s, ok := c[key].(string); ok && s != "" {
		return s
	}
	return def
}

// Int returns cfg[key] as an int, or def.
func (c Config) Int(key string, def int) int {
	switch v := c[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	}
	return def
}

// Int64 returns cfg[key] as an int64, or def.
func (c Config) Int64(key string, def int64) int64 {
	switch v := c[key].(type) {
	case int:
		return int64(v)
	case int64:
		return v
	case float64:
		return int64(v)
	}
	return def
}

// Duration returns cfg[key] as a duration, or def. Strings are parsed with
// time.ParseDuration.
func (c Config) Duration(key string, def time.Duration) time.Duration {
	switch v := c[key].(type) {
	case time.Duration:
		return v
	case string:
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	case int:
		return time.Duration(v) * time.Second
	}
	return def
}

// Logger returns the *slog.Logger stored under "logger", or slog.Default().
func (c Config) Logger() *slog.Logger {
	if l, ok := c["logger"].(*slog.Logger); ok && l != nil {
		return l
	}
	return slog.Default()
}

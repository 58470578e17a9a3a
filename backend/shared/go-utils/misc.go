package utils

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// GetEnv returns the trimmed env var or def when unset/blank.
func GetEnv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

// GetEnvBool parses key as a bool, falling back to def on absence or garbage.
func GetEnvBool(key string, def bool) bool {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		Logger.Warnf("Invalid bool for %s=%q, using %t", key, v, def)
		return def
	}
	return b
}

// GetEnvDuration parses key with time.ParseDuration.
func GetEnvDuration(key string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		Logger.Warnf("Invalid duration for %s=%q, using %s", key, v, def)
		return def
	}
	return d
}

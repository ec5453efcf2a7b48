// Package config reads the service configuration from the environment,
// with working defaults for local use.
package config

import (
	"os"
	"strconv"
)

type Config struct {
	Addr string

	// Wordlist locations. An explicitly empty value disables that list.
	// When WordlistBucket is set, both are treated as S3 object keys.
	WeakWordlist   string
	BannedWordlist string
	WordlistBucket string

	// Rate limiting is enabled only when Redis is configured, either as a
	// full URL or as split addr/user/password fields.
	RedisURL      string
	RedisAddr     string
	RedisUser     string
	RedisPassword string
	RatePerSecond float64
	RateBurst     int

	MaxBodyBytes int64
}

func Load() Config {
	return Config{
		Addr:           loadEnvString("ADDR", ":8080"),
		WeakWordlist:   loadEnvString("WEAK_WORDLIST", "./weak_passwords.txt"),
		BannedWordlist: loadEnvString("BANNED_WORDLIST", "./banned_passwords.txt"),
		WordlistBucket: loadEnvString("WORDLIST_BUCKET", ""),
		RedisURL:       loadEnvString("REDIS_URL", ""),
		RedisAddr:      loadEnvString("REDIS_ADDR", ""),
		RedisUser:      loadEnvString("REDIS_USER", ""),
		RedisPassword:  loadEnvString("REDIS_PASSWORD", ""),
		RatePerSecond:  loadEnvFloat("RATE_PER_SECOND", 5),
		RateBurst:      loadEnvInt("RATE_BURST", 20),
		MaxBodyBytes:   int64(loadEnvInt("MAX_BODY_SIZE", 1<<20)),
	}
}

// RedisConfigured reports whether any Redis settings are present.
func (c Config) RedisConfigured() bool {
	return c.RedisURL != "" || c.RedisAddr != ""
}

func loadEnvString(key, def string) string {
	// Present-but-empty is meaningful (it disables a wordlist), so
	// LookupEnv rather than Getenv.
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return def
}

func loadEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func loadEnvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	if cfg.Addr != ":8080" {
		t.Errorf("Addr = %q, want :8080", cfg.Addr)
	}
	if cfg.WeakWordlist != "./weak_passwords.txt" {
		t.Errorf("WeakWordlist = %q", cfg.WeakWordlist)
	}
	if cfg.RedisConfigured() {
		t.Error("Redis must not be configured by default")
	}
}

func TestLoad_EmptyWordlistDisables(t *testing.T) {
	t.Setenv("WEAK_WORDLIST", "")

	cfg := Load()
	if cfg.WeakWordlist != "" {
		t.Errorf("Present-but-empty WEAK_WORDLIST must disable the list, got %q", cfg.WeakWordlist)
	}
}

func TestLoad_InvalidNumbersFallBack(t *testing.T) {
	t.Setenv("RATE_BURST", "not-a-number")
	t.Setenv("RATE_PER_SECOND", "nope")

	cfg := Load()
	if cfg.RateBurst != 20 {
		t.Errorf("RateBurst = %d, want default 20", cfg.RateBurst)
	}
	if cfg.RatePerSecond != 5 {
		t.Errorf("RatePerSecond = %v, want default 5", cfg.RatePerSecond)
	}
}

func TestRedisConfigured(t *testing.T) {
	t.Setenv("REDIS_ADDR", "localhost:6379")

	if !Load().RedisConfigured() {
		t.Error("REDIS_ADDR must enable Redis")
	}
}

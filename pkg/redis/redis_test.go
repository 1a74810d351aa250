package redis

import (
	"testing"
	"time"
)

func TestOptions(t *testing.T) {
	cfg := Config{URL: "redis://:secret@cache.internal:6380/2", ReadTimeout: 4, DialTimeout: 7}

	opts, err := cfg.Options()
	if err != nil {
		t.Fatalf("Options: %v", err)
	}
	if opts.Addr != "cache.internal:6380" {
		t.Errorf("Addr = %q", opts.Addr)
	}
	if opts.DB != 2 || opts.Password != "secret" {
		t.Errorf("DB = %d, Password = %q", opts.DB, opts.Password)
	}
	if opts.ReadTimeout != 4*time.Second || opts.DialTimeout != 7*time.Second {
		t.Errorf("timeouts = %v/%v", opts.ReadTimeout, opts.DialTimeout)
	}
}

func TestOptionsInvalidURL(t *testing.T) {
	if _, err := (Config{URL: "http://nope"}).Options(); err == nil {
		t.Error("expected error for non-redis scheme")
	}
}

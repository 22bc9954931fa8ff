package redis

import (
	"context"
	"testing"

	"github.com/haniwa/cfdrisk/pkg/config"
)

func TestNewClient_Disabled(t *testing.T) {
	cfg := &config.Config{
		Redis: config.RedisConfig{
			Enabled: false,
		},
	}

	client, err := New(context.Background(), cfg)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if client.Enabled() {
		t.Error("Expected client to be disabled")
	}
}

func TestCache_Disabled(t *testing.T) {
	cfg := &config.Config{
		Redis: config.RedisConfig{
			Enabled: false,
		},
	}

	client, _ := New(context.Background(), cfg)
	cache := NewCache(client, "cfdrisk")

	// When Redis is disabled, cache operations should be no-ops
	var result string
	found, err := cache.Get(context.Background(), "key", &result)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if found {
		t.Error("Expected cache miss when Redis disabled")
	}

	if err := cache.Set(context.Background(), "key", "value", TTLShort); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := cache.Delete(context.Background(), "key"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
}

func TestCacheKeys(t *testing.T) {
	tests := []struct {
		name     string
		fn       func() string
		expected string
	}{
		{
			name:     "LatestVaRKey",
			fn:       func() string { return LatestVaRKey("historical", 0.95) },
			expected: "var:latest:historical:0.95",
		},
		{
			name:     "LatestPortfolioKey",
			fn:       func() string { return LatestPortfolioKey(0.99) },
			expected: "portfolio:latest:0.99",
		},
		{
			name:     "ValidationKey",
			fn:       func() string { return ValidationKey("parametric", 0.95) },
			expected: "validation:parametric:0.95",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.fn(); got != tt.expected {
				t.Errorf("got %q, want %q", got, tt.expected)
			}
		})
	}
}

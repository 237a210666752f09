package redis

import (
	"context"
	"os"
	"testing"
	"time"
)

// getTestConfig returns config for testing
func getTestConfig() *Config {
	cfg := DefaultConfig()

	if host := os.Getenv("TEST_REDIS_HOST"); host != "" {
		cfg.Host = host
	}
	if password := os.Getenv("TEST_REDIS_PASSWORD"); password != "" {
		cfg.Password = password
	}

	return cfg
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Host != "localhost" {
		t.Errorf("Host = %s, want localhost", cfg.Host)
	}
	if cfg.Port != 6379 {
		t.Errorf("Port = %d, want 6379", cfg.Port)
	}
	if cfg.MaxRetries != 3 {
		t.Errorf("MaxRetries = %d, want 3", cfg.MaxRetries)
	}
	if cfg.DialTimeout != 5*time.Second {
		t.Errorf("DialTimeout = %v, want 5s", cfg.DialTimeout)
	}
}

func TestConfig_Addr(t *testing.T) {
	cfg := &Config{Host: "redis.internal", Port: 6380}

	if addr := cfg.Addr(); addr != "redis.internal:6380" {
		t.Errorf("Addr() = %s, want redis.internal:6380", addr)
	}
}

func TestNewClient_InvalidConfig(t *testing.T) {
	cfg := &Config{
		Host:          "nonexistent-host-for-test",
		Port:          6379,
		DialTimeout:   100 * time.Millisecond,
		MaxRetries:    0,
		RetryInterval: time.Millisecond,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	client, err := NewClient(ctx, cfg)
	if err == nil {
		client.Close()
		t.Fatal("expected connection error for nonexistent host")
	}
}

func TestClient_BasicOperations_Integration(t *testing.T) {
	if os.Getenv("TEST_REDIS_HOST") == "" {
		t.Skip("TEST_REDIS_HOST not set, skipping integration test")
	}

	ctx := context.Background()
	client, err := NewClient(ctx, getTestConfig())
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}
	defer client.Close()

	key := "test:basic:key"
	defer client.Del(ctx, key)

	if err := client.Set(ctx, key, "value", time.Minute).Err(); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	val, err := client.Get(ctx, key).Result()
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if val != "value" {
		t.Errorf("Get = %s, want value", val)
	}

	if err := client.Del(ctx, key).Err(); err != nil {
		t.Fatalf("Del failed: %v", err)
	}

	exists, err := client.Exists(ctx, key).Result()
	if err != nil {
		t.Fatalf("Exists failed: %v", err)
	}
	if exists != 0 {
		t.Errorf("Exists = %d after Del, want 0", exists)
	}
}

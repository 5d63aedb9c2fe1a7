package redisclient

import (
	"context"
	"testing"

	miniredis "github.com/alicebob/miniredis/v2"

	"github.com/ncecere/judgment-tools/internal/config"
)

func TestNewDisabledWithoutURL(t *testing.T) {
	client, err := New(config.RedisConfig{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if client != nil {
		t.Fatal("expected nil client when redis is not configured")
	}
	if err := Ping(context.Background(), client); err != nil {
		t.Fatalf("ping on nil client should be a no-op: %v", err)
	}
}

func TestNewRejectsBadURL(t *testing.T) {
	if _, err := New(config.RedisConfig{URL: "http://not-redis"}); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestNewAndPing(t *testing.T) {
	server, err := miniredis.Run()
	if err != nil {
		t.Fatalf("start miniredis: %v", err)
	}
	defer server.Close()

	client, err := New(config.RedisConfig{URL: "redis://" + server.Addr(), PoolSize: 2})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	defer client.Close()

	if err := Ping(context.Background(), client); err != nil {
		t.Fatalf("ping: %v", err)
	}
}

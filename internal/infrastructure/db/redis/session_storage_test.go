package redis

import (
	"testing"

	"github.com/redis/go-redis/v9"
)

func TestSessionStorage_KeyIsPrefixed(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "localhost:0"})
	defer client.Close()

	s := NewSessionStorage(client)
	if got := s.key("demo_user"); got != "leadflow:demo_user" {
		t.Fatalf("expected leadflow:demo_user, got %q", got)
	}
}
